package errs

import (
	"errors"

	"github.com/napalu/optarg/i18n"
)

// Declaration errors
var (
	ErrOptionExists        = i18n.NewError(ErrOptionExistsKey)
	ErrInvalidOptionFormat = i18n.NewError(ErrInvalidOptionFormatKey)
	ErrUnsupportedType     = i18n.NewError(ErrUnsupportedTypeKey)
	ErrBindNil             = i18n.NewError(ErrBindNilKey)
	ErrInvalidDelimiter    = i18n.NewError(ErrInvalidDelimiterKey)
	ErrNoImplicitValue     = i18n.NewError(ErrNoImplicitValueKey)
	ErrStructBinding       = i18n.NewError(ErrStructBindingKey)
)

// Parse errors
var (
	ErrOptionNotExists        = i18n.NewError(ErrOptionNotExistsKey)
	ErrMissingArgument        = i18n.NewError(ErrMissingArgumentKey)
	ErrOptionRequiresArgument = i18n.NewError(ErrOptionRequiresArgumentKey)
	ErrOptionNotHasArgument   = i18n.NewError(ErrOptionNotHasArgumentKey)
	ErrArgumentIncorrectType  = i18n.NewError(ErrArgumentIncorrectTypeKey)
	ErrOptionSyntax           = i18n.NewError(ErrOptionSyntaxKey)
	ErrOptionNotPresent       = i18n.NewError(ErrOptionNotPresentKey)
	ErrTypeMismatch           = i18n.NewError(ErrTypeMismatchKey)
	ErrNoValue                = i18n.NewError(ErrNoValueKey)
	ErrSplitArguments         = i18n.NewError(ErrSplitArgumentsKey)
)

var specErrors = []error{
	ErrOptionExists,
	ErrInvalidOptionFormat,
	ErrUnsupportedType,
	ErrBindNil,
	ErrInvalidDelimiter,
	ErrNoImplicitValue,
	ErrStructBinding,
}

var parseErrors = []error{
	ErrOptionNotExists,
	ErrMissingArgument,
	ErrOptionRequiresArgument,
	ErrOptionNotHasArgument,
	ErrArgumentIncorrectType,
	ErrOptionSyntax,
	ErrOptionNotPresent,
	ErrTypeMismatch,
	ErrNoValue,
	ErrSplitArguments,
}

// IsSpecError reports whether err was raised while options were being declared
func IsSpecError(err error) bool {
	return matchesAny(err, specErrors)
}

// IsParseError reports whether err was raised while parsing arguments or reading a parse result
func IsParseError(err error) bool {
	return matchesAny(err, parseErrors)
}

// IsOptionError reports whether err belongs to the optarg error taxonomy at all
func IsOptionError(err error) bool {
	return IsSpecError(err) || IsParseError(err)
}

// UpdateMessageProvider changes the provider used to render every built-in error.
//
// Example:
//
//	bundle, _ := i18n.NewBundle()
//	errs.UpdateMessageProvider(i18n.NewMessageProvider(bundle, language.German))
func UpdateMessageProvider(provider i18n.MessageProvider) {
	i18n.SetDefaultMessageProvider(provider)
}

func matchesAny(err error, targets []error) bool {
	if err == nil {
		return false
	}
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}

	return false
}
