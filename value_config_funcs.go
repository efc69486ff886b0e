package optarg

import (
	"unicode"
	"unicode/utf8"

	"github.com/napalu/optarg/errs"
)

// WithDefaultValue sets the text parsed into an option that was not given on the command line
func WithDefaultValue(text string) ConfigureValueFunc {
	return func(config *ValueConfig, err *error) {
		config.DefaultValue = text
		config.HasDefault = true
	}
}

// WithImplicitValue sets the text used when the option is given without an argument. An option with an
// implicit value never consumes the following argument; its value can only be given as --name=value.
func WithImplicitValue(text string) ConfigureValueFunc {
	return func(config *ValueConfig, err *error) {
		config.ImplicitValue = text
		config.HasImplicit = true
	}
}

// WithNoImplicitValue removes the implicit value, so a boolean option requires an explicit argument
func WithNoImplicitValue() ConfigureValueFunc {
	return func(config *ValueConfig, err *error) {
		config.ImplicitValue = ""
		config.HasImplicit = false
	}
}

// WithNoArgument makes the option a pure switch: it is filled with its implicit value and --name=value is rejected
func WithNoArgument() ConfigureValueFunc {
	return func(config *ValueConfig, err *error) {
		config.NoArgument = true
	}
}

// WithDelimiter sets the character splitting one argument into list elements
func WithDelimiter(delimiter rune) ConfigureValueFunc {
	return func(config *ValueConfig, err *error) {
		if delimiter == 0 || delimiter == utf8.RuneError || !unicode.IsPrint(delimiter) {
			*err = errs.ErrInvalidDelimiter.WithArgs(delimiter)
			return
		}
		config.Delimiter = delimiter
	}
}
