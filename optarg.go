// Copyright 2021-2024, Florent Heyworth. All rights reserved.
// Use of this source code is governed by the MIT licensee
// which can be found in the LICENSE file.

// Package optarg parses command-line arguments against a registry of declared options.
//
// Options are declared with a specifier naming a one-character short form, a long form or both ("v,verbose",
// "v", "verbose") and a typed Value. The parser accepts
//
//	--name, --name=value     long options
//	-x, -xyz                 short options, bundled when each but the last has an implicit value
//	--                       ends option processing
//
// Arguments that are not options fill the options designated with SetPositional, in order. Whatever is not
// consumed is returned by ParseResult.Unmatched, preceded by the program name.
package optarg

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/napalu/optarg/errs"
	"github.com/napalu/optarg/i18n"
	"github.com/napalu/optarg/internal/parse"
	orderedmap "github.com/wk8/go-ordered-map"
	"golang.org/x/text/language"
)

// NewOptions creates an empty registry for program
func NewOptions(program string) *Options {
	o := &Options{
		program:        program,
		customHelp:     DefaultCustomHelp,
		positionalHelp: DefaultPositionalHelp,
		names:          orderedmap.New(),
		groups:         orderedmap.New(),
		logger:         hclog.NewNullLogger(),
		stderr:         os.Stderr,
		exit:           os.Exit,
		bundle:         i18n.Default(),
		lang:           language.English,
		helpWidth:      DefaultHelpWidth,
	}
	o.renderer = NewRenderer(o)

	return o
}

// NewOptionsWith creates a registry for program and applies configs in order. The caller should always test for
// error on return because Options will be nil when an error occurs during initialization.
//
// Configuration example:
//
//	opts, err := NewOptionsWith("tester",
//		WithHelpString("Exercises the parser"),
//		WithOption("v,verbose", "print more", nil, ""),
//		WithGroupOption("Output", "o,output", "output file", NewValue[string](), "FILE"),
//		WithOption("input", "input files", NewValue[[]string](), "FILE"),
//		WithPositional("input"))
func NewOptionsWith(program string, configs ...ConfigureOptionsFunc) (*Options, error) {
	o := NewOptions(program)

	var err error
	for _, config := range configs {
		config(o, &err)
		if err != nil {
			return nil, err
		}
	}

	return o, nil
}

// Program returns the program name shown in help output
func (o *Options) Program() string {
	return o.program
}

// AddOption declares an option in group ("" is the default group). specifier is "s,long", "s" or "long" where s is
// one alphanumeric character and long an alphanumeric followed by alphanumerics, '-' or '_'. A nil value declares a
// boolean flag. argHelp labels the argument in help output.
//
// Short and long names share one namespace; declaring a name twice fails with errs.ErrOptionExists and leaves the
// registry unchanged.
func (o *Options) AddOption(group, specifier, description string, value Value, argHelp string) error {
	short, long, ok := parse.ParseSpecifier(specifier)
	if !ok {
		return errs.ErrInvalidOptionFormat.WithArgs(specifier)
	}

	if value == nil {
		value = Bool()
	}
	if iv, ok := value.(invalidValue); ok && iv.configError() != nil {
		return iv.configError()
	}

	for _, name := range []string{short, long} {
		if name == "" {
			continue
		}
		if _, found := o.names.Get(name); found {
			return errs.ErrOptionExists.WithArgs(name)
		}
	}

	opt := &Option{
		short:       short,
		long:        long,
		description: description,
		argHelp:     argHelp,
		group:       group,
		value:       value,
	}

	if short != "" {
		o.names.Set(short, opt)
	}
	if long != "" {
		o.names.Set(long, opt)
	}
	o.declared = append(o.declared, opt)

	details := o.groupDetails(group)
	details.Options = append(details.Options, helpDetails(opt))

	o.logger.Trace("option declared", "short", short, "long", long, "group", group, "kind", value.Kind().String())

	return nil
}

// OptionAdder chains the declaration of several options in one group. The first error stops further declarations
// and is returned by Err.
type OptionAdder struct {
	options *Options
	group   string
	err     error
}

// AddOptions returns an adder declaring options in group
//
// Example:
//
//	err := opts.AddOptions("").
//		Add("v,verbose", "print more", nil).
//		Add("o,output", "output file", NewValue[string](), "FILE").
//		Err()
func (o *Options) AddOptions(group string) *OptionAdder {
	return &OptionAdder{options: o, group: group}
}

// Add declares one option; argHelp is optional
func (a *OptionAdder) Add(specifier, description string, value Value, argHelp ...string) *OptionAdder {
	if a.err != nil {
		return a
	}

	help := ""
	if len(argHelp) > 0 {
		help = argHelp[0]
	}
	a.err = a.options.AddOption(a.group, specifier, description, value, help)

	return a
}

// Err returns the first error encountered by Add
func (a *OptionAdder) Err() error {
	return a.err
}

// Lookup returns the option declared under name, which may be its short or long name
func (o *Options) Lookup(name string) (*Option, bool) {
	v, found := o.names.Get(name)
	if !found {
		return nil, false
	}

	return v.(*Option), true
}

// Declared returns all options in declaration order
func (o *Options) Declared() []*Option {
	declared := make([]*Option, len(o.declared))
	copy(declared, o.declared)

	return declared
}

// SetPositional designates the options receiving positional arguments, in order. Names are resolved while parsing,
// so an unknown name fails with errs.ErrOptionNotExists once a positional argument reaches it.
func (o *Options) SetPositional(names ...string) {
	o.positional = append([]string(nil), names...)
}

// Positional returns the names set with SetPositional
func (o *Options) Positional() []string {
	return append([]string(nil), o.positional...)
}

// SetAllowUnrecognised keeps unknown options in the unmatched arguments instead of failing
func (o *Options) SetAllowUnrecognised(allow bool) {
	o.allowUnrecognised = allow
}

// SetHelpString sets the text printed before the usage line
func (o *Options) SetHelpString(help string) {
	o.helpString = help
}

// SetCustomHelp sets the text following the program name in the usage line
func (o *Options) SetCustomHelp(help string) {
	o.customHelp = help
}

// SetPositionalHelp sets the text following the custom help in the usage line
func (o *Options) SetPositionalHelp(help string) {
	o.positionalHelp = help
}

// SetShowPositionalHelp lists positional options in the help output, which hides them by default
func (o *Options) SetShowPositionalHelp(show bool) {
	o.showPositional = show
}

// Groups returns the group names in declaration order
func (o *Options) Groups() []string {
	groups := make([]string, 0, o.groups.Len())
	for pair := o.groups.Oldest(); pair != nil; pair = pair.Next() {
		groups = append(groups, pair.Key.(string))
	}

	return groups
}

// GroupHelp returns the help metadata of a group
func (o *Options) GroupHelp(group string) (HelpGroupDetails, bool) {
	v, found := o.groups.Get(group)
	if !found {
		return HelpGroupDetails{}, false
	}

	details := v.(*HelpGroupDetails)
	return HelpGroupDetails{
		Name:    details.Name,
		Options: append([]HelpOptionDetails(nil), details.Options...),
	}, true
}

// Parse parses args, whose first element is the program name. Parse does not modify args or the registry. On error,
// no result is returned.
func (o *Options) Parse(args []string) (*ParseResult, error) {
	p := newParser(o, args)
	if err := p.run(); err != nil {
		o.logger.Trace("parse failed", "error", err)
		return nil, err
	}

	return p.result, nil
}

// ParseString splits commandLine using shell quoting rules and parses the result. commandLine does not include the
// program name.
func (o *Options) ParseString(commandLine string) (*ParseResult, error) {
	args, err := parse.Split(commandLine)
	if err != nil {
		return nil, errs.ErrSplitArguments.WithArgs(commandLine).Wrap(err)
	}

	return o.Parse(append([]string{o.program}, args...))
}

// MustParse parses args and, on error, writes the error to the configured error writer and calls the configured exit
// function with status 1
func (o *Options) MustParse(args []string) *ParseResult {
	result, err := o.Parse(args)
	if err != nil {
		_, _ = fmt.Fprintln(o.stderr, err)
		o.exit(1)
		return nil
	}

	return result
}

// Help renders the help text for groups, or for all groups in declaration order when none are given
func (o *Options) Help(groups ...string) string {
	if len(groups) == 0 {
		groups = o.Groups()
	}

	return o.renderer.Render(groups)
}

// PrintHelp writes the help text for groups to w
func (o *Options) PrintHelp(w io.Writer, groups ...string) error {
	_, err := io.WriteString(w, o.Help(groups...))
	return err
}

func (o *Options) isPositionalName(short, long string) bool {
	for _, name := range o.positional {
		if name != "" && (name == short || name == long) {
			return true
		}
	}

	return false
}

func (o *Options) groupDetails(group string) *HelpGroupDetails {
	if v, found := o.groups.Get(group); found {
		return v.(*HelpGroupDetails)
	}

	details := &HelpGroupDetails{Name: group}
	o.groups.Set(group, details)

	return details
}

func helpDetails(opt *Option) HelpOptionDetails {
	v := opt.value
	return HelpOptionDetails{
		Short:         opt.short,
		Long:          opt.long,
		Description:   opt.description,
		ArgHelp:       opt.argHelp,
		HasDefault:    v.HasDefault(),
		DefaultValue:  v.DefaultValue(),
		HasImplicit:   v.HasImplicit(),
		ImplicitValue: v.ImplicitValue(),
		IsContainer:   v.IsContainer(),
		IsBoolean:     v.IsBoolean(),
	}
}
