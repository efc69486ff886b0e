package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/napalu/optarg"
)

type options struct {
	*optarg.Options
	apple bool
}

func newOptions(program string) (*options, error) {
	o := &options{}

	opts, err := optarg.NewOptionsWith(program,
		optarg.WithHelpString(" - example command line options"),
		optarg.WithPositionalHelp("[optional args]"),
		optarg.WithShowPositionalHelp(true),
		optarg.WithAllowUnrecognised(true),
		optarg.WithTerminalHelpWidth(os.Stdout))
	if err != nil {
		return nil, err
	}

	err = opts.AddOptions("").
		Add("a,apple", "an apple", optarg.BindValue(&o.apple)).
		Add("b,bob", "Bob", nil).
		Add("char", "A character", optarg.Char()).
		Add("t,true", "True", optarg.Bool(optarg.WithDefaultValue("true"))).
		Add("f, file", "File", optarg.NewValue[[]string](), "FILE").
		Add("i,input", "Input", optarg.NewValue[string]()).
		Add("o,output", "Output file", optarg.NewValue[string](
			optarg.WithDefaultValue("a.out"), optarg.WithImplicitValue("b.def")), "BIN").
		Add("positional", "Positional arguments: these are the arguments that are entered without an option",
			optarg.NewValue[[]string]()).
		Add("long-description", "thisisareallylongwordthattakesupthewholelineandcannotbebrokenataspace", nil).
		Add("help", "Print help", nil).
		Add("int", "An integer", optarg.NewValue[int](), "N").
		Add("float", "A floating point number", optarg.NewValue[float32]()).
		Add("vector", "A list of doubles", optarg.NewValue[[]float64]()).
		Add("option_that_is_too_long_for_the_help", "A very long option", nil).
		Add("unicode", "A help option with non-ascii: à. Here the size of the string should be correct", nil).
		Err()
	if err != nil {
		return nil, err
	}

	err = opts.AddOptions("Group").
		Add("c,compile", "compile", nil).
		Add("d,drop", "drop", optarg.NewValue[[]string]()).
		Err()
	if err != nil {
		return nil, err
	}

	opts.SetPositional("input", "output", "positional")
	o.Options = opts

	return o, nil
}

// run parses args and reports what it saw to w. It returns false when --help was given.
func run(args []string, w io.Writer) (bool, error) {
	program := "optarg-example"
	if len(args) > 0 {
		program = args[0]
	}

	o, err := newOptions(program)
	if err != nil {
		return false, err
	}

	result, err := o.Parse(args)
	if err != nil {
		return false, err
	}

	if result.Count("help") > 0 {
		_, _ = fmt.Fprintln(w, o.Help("", "Group"))
		return false, nil
	}

	if o.apple {
		_, _ = fmt.Fprintf(w, "Saw option ‘a’ %d times\n", result.Count("a"))
	}
	if result.Count("b") > 0 {
		_, _ = fmt.Fprintln(w, "Saw option ‘b’")
	}
	if result.Count("char") > 0 {
		c, err := optarg.ValueOf[rune](result, "char")
		if err != nil {
			return false, err
		}
		_, _ = fmt.Fprintf(w, "Saw a character ‘%c’\n", c)
	}
	if result.Count("f") > 0 {
		files, err := optarg.ValueOf[[]string](result, "f")
		if err != nil {
			return false, err
		}
		_, _ = fmt.Fprintln(w, "Files")
		for _, f := range files {
			_, _ = fmt.Fprintln(w, f)
		}
	}
	if result.Count("input") > 0 {
		input, err := optarg.ValueOf[string](result, "input")
		if err != nil {
			return false, err
		}
		_, _ = fmt.Fprintf(w, "Input = %s\n", input)
	}
	if result.Count("output") > 0 {
		output, err := optarg.ValueOf[string](result, "output")
		if err != nil {
			return false, err
		}
		_, _ = fmt.Fprintf(w, "Output = %s\n", output)
	}
	if result.Count("positional") > 0 {
		positional, err := optarg.ValueOf[[]string](result, "positional")
		if err != nil {
			return false, err
		}
		_, _ = fmt.Fprintf(w, "Positional = {%s}\n", strings.Join(positional, ", "))
	}
	if result.Count("int") > 0 {
		n, err := optarg.ValueOf[int](result, "int")
		if err != nil {
			return false, err
		}
		_, _ = fmt.Fprintf(w, "int = %d\n", n)
	}
	if result.Count("float") > 0 {
		f, err := optarg.ValueOf[float32](result, "float")
		if err != nil {
			return false, err
		}
		_, _ = fmt.Fprintf(w, "float = %g\n", f)
	}
	if result.Count("vector") > 0 {
		values, err := optarg.ValueOf[[]float64](result, "vector")
		if err != nil {
			return false, err
		}
		parts := make([]string, len(values))
		for i, v := range values {
			parts[i] = fmt.Sprintf("%g", v)
		}
		_, _ = fmt.Fprintf(w, "vector = %s\n", strings.Join(parts, ", "))
	}

	_, _ = fmt.Fprintf(w, "Arguments remain = %d\n", len(result.Unmatched()))
	_, _ = fmt.Fprintf(w, "Saw %d arguments\n", len(result.Arguments()))

	return true, nil
}

func main() {
	if _, err := run(os.Args, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error parsing options: %v\n", err)
		os.Exit(1)
	}
}
