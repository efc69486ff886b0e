// Package errs declares the translation keys and sentinel errors of the optarg library.
package errs

const (
	prefixKey = "optarg"
)

const (
	ErrorPrefixKey   = prefixKey + ".error"
	MessagePrefixKey = prefixKey + ".msg"
)

// Specification errors, raised while options are declared
const (
	ErrOptionExistsKey        = ErrorPrefixKey + ".option_exists"
	ErrInvalidOptionFormatKey = ErrorPrefixKey + ".invalid_option_format"
	ErrUnsupportedTypeKey     = ErrorPrefixKey + ".unsupported_type"
	ErrBindNilKey             = ErrorPrefixKey + ".bind_nil"
	ErrInvalidDelimiterKey    = ErrorPrefixKey + ".invalid_delimiter"
	ErrNoImplicitValueKey     = ErrorPrefixKey + ".no_implicit_value"
	ErrStructBindingKey       = ErrorPrefixKey + ".struct_binding"
)

// Parse errors, raised while a token stream is parsed or a result is queried
const (
	ErrOptionNotExistsKey        = ErrorPrefixKey + ".option_not_exists"
	ErrMissingArgumentKey        = ErrorPrefixKey + ".missing_argument"
	ErrOptionRequiresArgumentKey = ErrorPrefixKey + ".option_requires_argument"
	ErrOptionNotHasArgumentKey   = ErrorPrefixKey + ".option_not_has_argument"
	ErrArgumentIncorrectTypeKey  = ErrorPrefixKey + ".argument_incorrect_type"
	ErrOptionSyntaxKey           = ErrorPrefixKey + ".option_syntax"
	ErrOptionNotPresentKey       = ErrorPrefixKey + ".option_not_present"
	ErrTypeMismatchKey           = ErrorPrefixKey + ".type_mismatch"
	ErrNoValueKey                = ErrorPrefixKey + ".no_value"
	ErrSplitArgumentsKey         = ErrorPrefixKey + ".split_arguments"
)

// Help text labels
const (
	MsgUsageKey        = MessagePrefixKey + ".usage"
	MsgGroupOptionsKey = MessagePrefixKey + ".group_options"
	MsgDefaultKey      = MessagePrefixKey + ".default"
	MsgArgKey          = MessagePrefixKey + ".arg"
)
