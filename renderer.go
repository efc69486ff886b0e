package optarg

import (
	"strings"
	"unicode/utf8"

	"github.com/napalu/optarg/errs"
	"github.com/napalu/optarg/internal/util"
)

// Renderer turns the registry's help metadata into text. It has no influence on parsing.
type Renderer interface {
	// FormatOption renders the option column, e.g. "  -o, --output FILE"
	FormatOption(o HelpOptionDetails) string
	// FormatDescription renders the description wrapped to width; continuation lines are indented by start
	FormatDescription(o HelpOptionDetails, start, width int) string
	// Render renders the usage line followed by the given groups
	Render(groups []string) string
}

type DefaultRenderer struct {
	options *Options
}

func NewRenderer(options *Options) *DefaultRenderer {
	return &DefaultRenderer{options: options}
}

// FormatOption renders the short and long names followed by the argument label. Non-boolean options with an
// implicit value show it as [=ARG(=implicit)].
func (r *DefaultRenderer) FormatOption(o HelpOptionDetails) string {
	var sb strings.Builder

	sb.WriteString("  ")
	if o.Short != "" {
		sb.WriteString("-" + o.Short + ",")
	} else {
		sb.WriteString("   ")
	}
	if o.Long != "" {
		sb.WriteString(" --" + o.Long)
	}

	arg := o.ArgHelp
	if arg == "" {
		arg = r.t(errs.MsgArgKey)
	}
	if !o.IsBoolean {
		if o.HasImplicit {
			sb.WriteString(" [=" + arg + "(=" + o.ImplicitValue + ")]")
		} else {
			sb.WriteString(" " + arg)
		}
	}

	return sb.String()
}

// FormatDescription appends the default value unless the option is a boolean defaulting to false
func (r *DefaultRenderer) FormatDescription(o HelpOptionDetails, start, width int) string {
	desc := o.Description
	if o.HasDefault && (!o.IsBoolean || o.DefaultValue != "false") {
		shown := o.DefaultValue
		if shown == "" {
			shown = `""`
		}
		if desc != "" {
			desc += " "
		}
		desc += "(" + r.t(errs.MsgDefaultKey, shown) + ")"
	}

	return strings.Join(wrap(desc, width), "\n"+strings.Repeat(" ", start))
}

func (r *DefaultRenderer) Render(groups []string) string {
	o := r.options

	var sb strings.Builder
	sb.WriteString(o.helpString)
	sb.WriteString("\n" + r.t(errs.MsgUsageKey) + "\n  " + o.program + " " + o.customHelp)
	if len(o.positional) > 0 && o.positionalHelp != "" {
		sb.WriteString(" " + o.positionalHelp)
	}
	sb.WriteString("\n\n")

	for i, group := range groups {
		text := r.renderGroup(group)
		if text == "" {
			continue
		}
		sb.WriteString(text)
		if i < len(groups)-1 {
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

func (r *DefaultRenderer) renderGroup(group string) string {
	o := r.options
	details, found := o.GroupHelp(group)
	if !found {
		return ""
	}

	var sb strings.Builder
	if group != "" {
		sb.WriteString(" " + r.t(errs.MsgGroupOptionsKey, group) + "\n")
	}

	shown := make([]HelpOptionDetails, 0, len(details.Options))
	columns := make([]string, 0, len(details.Options))
	longest := 0
	for _, opt := range details.Options {
		if !o.showPositional && o.isPositionalName(opt.Short, opt.Long) {
			continue
		}
		column := o.renderer.FormatOption(opt)
		longest = util.Max(longest, utf8.RuneCountInString(column))
		shown = append(shown, opt)
		columns = append(columns, column)
	}

	longest = util.Min(longest, OptionLongest)
	start := longest + DescriptionGap
	allowed := util.Max(o.helpWidth-start, 1)

	for i, opt := range shown {
		column := columns[i]
		sb.WriteString(column)
		if n := utf8.RuneCountInString(column); n > longest {
			sb.WriteString("\n" + strings.Repeat(" ", start))
		} else {
			sb.WriteString(strings.Repeat(" ", start-n))
		}
		sb.WriteString(o.renderer.FormatDescription(opt, start, allowed))
		sb.WriteString("\n")
	}

	return sb.String()
}

func (r *DefaultRenderer) t(key string, args ...interface{}) string {
	return r.options.bundle.TL(r.options.lang, key, args...)
}

// wrap breaks text into lines of at most width characters. Existing line breaks are kept and words longer
// than width are split.
func wrap(text string, width int) []string {
	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		before := len(lines)
		line := ""
		for _, word := range strings.Fields(paragraph) {
			for utf8.RuneCountInString(word) > width {
				if line != "" {
					lines = append(lines, line)
					line = ""
				}
				runes := []rune(word)
				lines = append(lines, string(runes[:width]))
				word = string(runes[width:])
			}
			switch {
			case word == "":
			case line == "":
				line = word
			case utf8.RuneCountInString(line)+1+utf8.RuneCountInString(word) <= width:
				line += " " + word
			default:
				lines = append(lines, line)
				line = word
			}
		}
		if line != "" || len(lines) == before {
			lines = append(lines, line)
		}
	}

	return lines
}
