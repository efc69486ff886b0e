package optarg

import (
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/napalu/optarg/i18n"
	"github.com/napalu/optarg/internal/util"
	"golang.org/x/term"
	"golang.org/x/text/language"
)

// WithHelpString sets the text printed before the usage line
func WithHelpString(help string) ConfigureOptionsFunc {
	return func(options *Options, err *error) {
		options.SetHelpString(help)
	}
}

// WithCustomHelp replaces "[OPTION...]" in the usage line
func WithCustomHelp(help string) ConfigureOptionsFunc {
	return func(options *Options, err *error) {
		options.SetCustomHelp(help)
	}
}

// WithPositionalHelp replaces "positional parameters" in the usage line
func WithPositionalHelp(help string) ConfigureOptionsFunc {
	return func(options *Options, err *error) {
		options.SetPositionalHelp(help)
	}
}

func WithShowPositionalHelp(show bool) ConfigureOptionsFunc {
	return func(options *Options, err *error) {
		options.SetShowPositionalHelp(show)
	}
}

// WithAllowUnrecognised keeps unknown options in the unmatched arguments instead of failing
func WithAllowUnrecognised(allow bool) ConfigureOptionsFunc {
	return func(options *Options, err *error) {
		options.SetAllowUnrecognised(allow)
	}
}

// WithOption is a wrapper for AddOption declaring an option in the default group
func WithOption(specifier, description string, value Value, argHelp string) ConfigureOptionsFunc {
	return WithGroupOption("", specifier, description, value, argHelp)
}

// WithGroupOption is a wrapper for AddOption
func WithGroupOption(group, specifier, description string, value Value, argHelp string) ConfigureOptionsFunc {
	return func(options *Options, err *error) {
		*err = options.AddOption(group, specifier, description, value, argHelp)
	}
}

// WithPositional is a wrapper for SetPositional
func WithPositional(names ...string) ConfigureOptionsFunc {
	return func(options *Options, err *error) {
		options.SetPositional(names...)
	}
}

// WithStruct is a wrapper for AddStruct
func WithStruct(group string, target any) ConfigureOptionsFunc {
	return func(options *Options, err *error) {
		*err = options.AddStruct(group, target)
	}
}

// WithLogger traces declarations and parsing at trace level. A nil logger disables tracing.
func WithLogger(logger hclog.Logger) ConfigureOptionsFunc {
	return func(options *Options, err *error) {
		if logger == nil {
			logger = hclog.NewNullLogger()
		}
		options.logger = logger
	}
}

// WithStderr sets the writer MustParse reports errors to
func WithStderr(w io.Writer) ConfigureOptionsFunc {
	return func(options *Options, err *error) {
		options.stderr = w
	}
}

// WithExitFunc sets the function MustParse calls after reporting an error. Defaults to os.Exit.
func WithExitFunc(exit func(code int)) ConfigureOptionsFunc {
	return func(options *Options, err *error) {
		options.exit = exit
	}
}

// WithLanguage sets the language of help labels. Errors are rendered through errs.UpdateMessageProvider.
func WithLanguage(lang language.Tag) ConfigureOptionsFunc {
	return func(options *Options, err *error) {
		options.lang = lang
	}
}

// WithBundle replaces the message bundle help labels are read from
func WithBundle(bundle *i18n.Bundle) ConfigureOptionsFunc {
	return func(options *Options, err *error) {
		if bundle != nil {
			options.bundle = bundle
		}
	}
}

// WithRenderer replaces the help renderer
func WithRenderer(renderer Renderer) ConfigureOptionsFunc {
	return func(options *Options, err *error) {
		if renderer != nil {
			options.renderer = renderer
		}
	}
}

// WithHelpWidth sets the total width of help lines. Widths too narrow for the option column are raised to the minimum.
func WithHelpWidth(width int) ConfigureOptionsFunc {
	return func(options *Options, err *error) {
		options.helpWidth = util.Max(width, minHelpWidth)
	}
}

// WithTerminalHelpWidth sizes help lines to the terminal f is attached to. The width is left unchanged when f is
// not a terminal.
func WithTerminalHelpWidth(f *os.File) ConfigureOptionsFunc {
	return func(options *Options, err *error) {
		if f == nil {
			return
		}
		fd := int(f.Fd())
		if !term.IsTerminal(fd) {
			return
		}
		if width, _, sizeErr := term.GetSize(fd); sizeErr == nil && width > 0 {
			// the last column is left free so lines never wrap in the terminal
			options.helpWidth = util.Max(width-1, minHelpWidth)
		}
	}
}
