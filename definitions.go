package optarg

import (
	"io"

	"github.com/hashicorp/go-hclog"
	"github.com/napalu/optarg/i18n"
	orderedmap "github.com/wk8/go-ordered-map"
	"golang.org/x/text/language"
)

// ConfigureOptionsFunc is used when configuring Options through NewOptionsWith
type ConfigureOptionsFunc func(options *Options, err *error)

// ConfigureValueFunc is used when defining the Value of an option
type ConfigureValueFunc func(config *ValueConfig, err *error)

const (
	// DefaultDelimiter separates the elements of a list value given as one argument
	DefaultDelimiter = ','
	// DefaultCustomHelp follows the program name in the usage line
	DefaultCustomHelp = "[OPTION...]"
	// DefaultPositionalHelp follows the custom help in the usage line
	DefaultPositionalHelp = "positional parameters"
)

// Help layout
const (
	// OptionLongest caps the width of the option column
	OptionLongest = 30
	// DescriptionGap separates the option column from the description
	DescriptionGap = 2
	// DefaultHelpWidth is the total width of a help line
	DefaultHelpWidth = 76
	// minHelpWidth leaves room for at least a few words of description next to a full option column
	minHelpWidth = OptionLongest + DescriptionGap + 10
)

// ValueConfig holds the metadata every Value carries besides its storage
type ValueConfig struct {
	// DefaultValue is parsed into the option after scanning when the option was not given
	DefaultValue string
	HasDefault   bool
	// ImplicitValue is used when the option is given without an argument
	ImplicitValue string
	HasImplicit   bool
	// NoArgument rejects --name=value; the option can only be filled with its implicit value
	NoArgument bool
	// Delimiter splits one argument into the elements of a list value
	Delimiter rune
}

// Option is a declared command-line option. At least one of the short and long names is set.
type Option struct {
	short       string
	long        string
	description string
	argHelp     string
	group       string
	value       Value
}

// Short returns the one-character name or ""
func (o *Option) Short() string {
	return o.short
}

// Long returns the long name or ""
func (o *Option) Long() string {
	return o.long
}

// Name returns the long name, or the short name when the option has none
func (o *Option) Name() string {
	if o.long != "" {
		return o.long
	}
	return o.short
}

func (o *Option) Description() string {
	return o.description
}

// ArgHelp returns the label shown for the option's argument in help output
func (o *Option) ArgHelp() string {
	return o.argHelp
}

func (o *Option) Group() string {
	return o.group
}

// Value returns the option's template value. Parsing never modifies the template.
func (o *Option) Value() Value {
	return o.value
}

// HelpOptionDetails is the metadata of one option as consumed by a Renderer
type HelpOptionDetails struct {
	Short         string
	Long          string
	Description   string
	ArgHelp       string
	HasDefault    bool
	DefaultValue  string
	HasImplicit   bool
	ImplicitValue string
	IsContainer   bool
	IsBoolean     bool
}

// HelpGroupDetails lists the options of one group in declaration order
type HelpGroupDetails struct {
	Name    string
	Options []HelpOptionDetails
}

// Options is the registry of declared options. Declare options first, then parse; the registry must not be modified
// while a Parse is running. Any number of parses may run concurrently against an Options that is no longer modified.
type Options struct {
	program           string
	helpString        string
	customHelp        string
	positionalHelp    string
	showPositional    bool
	allowUnrecognised bool
	// names maps short and long names to *Option
	names *orderedmap.OrderedMap
	// declared holds every option once, in declaration order
	declared []*Option
	// groups maps group names to *HelpGroupDetails in declaration order
	groups     *orderedmap.OrderedMap
	positional []string
	logger     hclog.Logger
	stderr     io.Writer
	exit       func(code int)
	bundle     *i18n.Bundle
	lang       language.Tag
	renderer   Renderer
	helpWidth  int
}
