package optarg

import (
	"bytes"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/napalu/optarg/errs"
	"github.com/napalu/optarg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOptions(t *testing.T) *Options {
	t.Helper()

	opts := NewOptions("tester")
	err := opts.AddOptions("").
		Add("v,verbose", "print more", nil).
		Add("o,output", "output file", NewValue[string](), "FILE").
		Add("n,count", "number of retries", NewValue[int](WithDefaultValue("3")), "N").
		Add("level", "log level", NewValue[int](WithImplicitValue("1"))).
		Add("l,list", "list of names", NewValue[[]string]()).
		Add("input", "input files", NewValue[[]string]()).
		Err()
	require.NoError(t, err)

	return opts
}

func TestOptions_AddOption(t *testing.T) {
	opts := NewOptions("tester")

	assert.NoError(t, opts.AddOption("", "a,all", "", nil, ""))
	assert.NoError(t, opts.AddOption("", "b, both", "", nil, ""))
	assert.NoError(t, opts.AddOption("", "c", "", nil, ""))
	assert.NoError(t, opts.AddOption("", "long_name-2", "", nil, ""))

	opt, found := opts.Lookup("a")
	require.True(t, found)
	assert.Equal(t, "a", opt.Short())
	assert.Equal(t, "all", opt.Long())
	same, found := opts.Lookup("all")
	require.True(t, found)
	assert.Same(t, opt, same, "short and long names should resolve to the same option")

	opt, found = opts.Lookup("both")
	require.True(t, found)
	assert.Equal(t, "b", opt.Short())

	opt, found = opts.Lookup("c")
	require.True(t, found)
	assert.Equal(t, "", opt.Long())
	assert.Equal(t, "c", opt.Name())
	assert.True(t, opt.Value().IsBoolean(), "a nil value declares a boolean flag")

	assert.Len(t, opts.Declared(), 4)
}

func TestOptions_AddOptionDuplicate(t *testing.T) {
	opts := NewOptions("tester")
	require.NoError(t, opts.AddOption("", "a,all", "", nil, ""))

	err := opts.AddOption("", "all", "", nil, "")
	assert.ErrorIs(t, err, errs.ErrOptionExists)

	err = opts.AddOption("", "x,all", "", nil, "")
	assert.ErrorIs(t, err, errs.ErrOptionExists)
	_, found := opts.Lookup("x")
	assert.False(t, found, "a failed declaration should not register any name")

	err = opts.AddOption("Other", "a,another", "", nil, "")
	assert.ErrorIs(t, err, errs.ErrOptionExists, "names are unique across groups")
	_, found = opts.Lookup("another")
	assert.False(t, found)

	assert.Len(t, opts.Declared(), 1)
	assert.Equal(t, []string{""}, opts.Groups())
}

func TestOptions_AddOptionInvalidFormat(t *testing.T) {
	opts := NewOptions("tester")

	for _, specifier := range []string{"", ",", "-a", "--all", "a,b", "ab,cd", "a,-long", "a b", "é"} {
		err := opts.AddOption("", specifier, "", nil, "")
		assert.ErrorIs(t, err, errs.ErrInvalidOptionFormat, "specifier %q", specifier)
		assert.True(t, errs.IsSpecError(err))
	}
	assert.Empty(t, opts.Declared())
}

func TestOptions_AddOptionInvalidValue(t *testing.T) {
	opts := NewOptions("tester")

	err := opts.AddOption("", "c,chan", "", NewValue[chan int](), "")
	assert.ErrorIs(t, err, errs.ErrUnsupportedType)

	err = opts.AddOption("", "p,ptr", "", BindValue[string](nil), "")
	assert.ErrorIs(t, err, errs.ErrBindNil)

	err = opts.AddOption("", "d,delim", "", NewValue[[]string](WithDelimiter(0)), "")
	assert.ErrorIs(t, err, errs.ErrInvalidDelimiter)

	err = opts.AddOption("", "s,switch", "", NewValue[string](WithNoArgument()), "")
	assert.ErrorIs(t, err, errs.ErrNoImplicitValue)

	assert.Empty(t, opts.Declared())
}

func TestOptions_OptionAdderStopsAtFirstError(t *testing.T) {
	opts := NewOptions("tester")

	err := opts.AddOptions("").
		Add("a,all", "", nil).
		Add("all", "", nil).
		Add("b,both", "", nil).
		Err()
	assert.ErrorIs(t, err, errs.ErrOptionExists)
	_, found := opts.Lookup("both")
	assert.False(t, found)
}

func TestOptions_Parse(t *testing.T) {
	opts := newTestOptions(t)

	result, err := opts.Parse([]string{"tester", "-v", "--output", "out.txt", "file1"})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Count("v"))
	assert.Equal(t, 1, result.Count("verbose"))
	verbose, err := ValueOf[bool](result, "verbose")
	assert.NoError(t, err)
	assert.True(t, verbose)

	output, err := ValueOf[string](result, "o")
	assert.NoError(t, err)
	assert.Equal(t, "out.txt", output)

	count, err := result.Get("count")
	require.NoError(t, err)
	assert.Equal(t, 0, count.Count())
	assert.True(t, count.HasDefault())
	n, err := As[int](count)
	assert.NoError(t, err)
	assert.Equal(t, 3, n)

	assert.Equal(t, []string{"tester", "file1"}, result.Unmatched())
}

func TestOptions_ParseLongWithValue(t *testing.T) {
	opts := newTestOptions(t)

	result, err := opts.Parse([]string{"tester", "--output=a=b", "--verbose=false", "--count="})
	assert.ErrorIs(t, err, errs.ErrArgumentIncorrectType, "an empty integer should not parse")
	assert.Nil(t, result)

	result, err = opts.Parse([]string{"tester", "--output=a=b", "--verbose=false", "--list="})
	require.NoError(t, err)

	output, _ := ValueOf[string](result, "output")
	assert.Equal(t, "a=b", output, "only the first '=' separates name and value")
	verbose, _ := ValueOf[bool](result, "verbose")
	assert.False(t, verbose)
	assert.Equal(t, 1, result.Count("verbose"))
	list, _ := ValueOf[[]string](result, "list")
	assert.Equal(t, []string{""}, list)
}

func TestOptions_ParseShortBundle(t *testing.T) {
	opts := NewOptions("tester")
	require.NoError(t, opts.AddOptions("").
		Add("a", "", nil).
		Add("b", "", nil).
		Add("f,file", "", NewValue[string]()).
		Err())

	result, err := opts.Parse([]string{"tester", "-abf", "x.txt", "rest"})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Count("a"))
	assert.Equal(t, 1, result.Count("b"))
	file, _ := ValueOf[string](result, "file")
	assert.Equal(t, "x.txt", file)
	assert.Equal(t, []string{"tester", "rest"}, result.Unmatched())

	_, err = opts.Parse([]string{"tester", "-fab", "x.txt"})
	assert.ErrorIs(t, err, errs.ErrOptionRequiresArgument)
	assert.Equal(t, "Option ‘f’ requires an argument", err.Error())

	result, err = opts.Parse([]string{"tester", "-aaa"})
	require.NoError(t, err)
	assert.Equal(t, 3, result.Count("a"))
	assert.Len(t, result.Arguments(), 3)
}

func TestOptions_ParseImplicitValue(t *testing.T) {
	opts := newTestOptions(t)

	result, err := opts.Parse([]string{"tester", "--level", "5"})
	require.NoError(t, err)
	level, _ := ValueOf[int](result, "level")
	assert.Equal(t, 1, level, "an implicit value never consumes the next argument")
	assert.Equal(t, []string{"tester", "5"}, result.Unmatched())

	result, err = opts.Parse([]string{"tester", "--level=5"})
	require.NoError(t, err)
	level, _ = ValueOf[int](result, "level")
	assert.Equal(t, 5, level)
}

func TestOptions_ParseConsumesNextArgument(t *testing.T) {
	opts := newTestOptions(t)

	result, err := opts.Parse([]string{"tester", "--count", "-5", "-o", "--verbose"})
	require.NoError(t, err)
	count, _ := ValueOf[int](result, "count")
	assert.Equal(t, -5, count)
	output, _ := ValueOf[string](result, "output")
	assert.Equal(t, "--verbose", output, "the argument of an option is taken as is")
	assert.Equal(t, 0, result.Count("verbose"))
}

func TestOptions_ParseMissingArgument(t *testing.T) {
	opts := newTestOptions(t)

	_, err := opts.Parse([]string{"tester", "--output"})
	assert.ErrorIs(t, err, errs.ErrMissingArgument)
	assert.Equal(t, "Option ‘output’ is missing an argument", err.Error())

	_, err = opts.Parse([]string{"tester", "-vo"})
	assert.ErrorIs(t, err, errs.ErrMissingArgument)
}

func TestOptions_ParseUnknownOption(t *testing.T) {
	opts := newTestOptions(t)

	_, err := opts.Parse([]string{"tester", "--nope"})
	assert.ErrorIs(t, err, errs.ErrOptionNotExists)
	assert.Equal(t, "Option ‘nope’ does not exist", err.Error())

	_, err = opts.Parse([]string{"tester", "-vz"})
	assert.ErrorIs(t, err, errs.ErrOptionNotExists)
	assert.True(t, errs.IsParseError(err))
}

func TestOptions_ParseSyntaxError(t *testing.T) {
	opts := newTestOptions(t)

	for _, arg := range []string{"--x", "---", "-v-", "--=value", "-é"} {
		_, err := opts.Parse([]string{"tester", arg})
		assert.ErrorIs(t, err, errs.ErrOptionSyntax, "argument %q", arg)
	}

	result, err := opts.Parse([]string{"tester", "-"})
	require.NoError(t, err, "a lone '-' is a positional argument")
	assert.Equal(t, []string{"tester", "-"}, result.Unmatched())
}

func TestOptions_ParseAllowUnrecognised(t *testing.T) {
	opts := newTestOptions(t)
	opts.SetAllowUnrecognised(true)

	result, err := opts.Parse([]string{"tester", "--nope", "-zv", "x", "--x", "--nope=1"})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Count("verbose"), "known options of a bundle are still parsed")
	assert.Equal(t, []string{"tester", "--nope", "x", "--x", "--nope=1"}, result.Unmatched())
}

func TestOptions_ParseRepeatedOption(t *testing.T) {
	opts := newTestOptions(t)

	result, err := opts.Parse([]string{"tester", "--output", "a", "-o", "b", "--list", "x,y", "-l", "z"})
	require.NoError(t, err)

	output, _ := ValueOf[string](result, "output")
	assert.Equal(t, "b", output, "the last occurrence of a scalar wins")
	assert.Equal(t, 2, result.Count("output"))

	list, _ := ValueOf[[]string](result, "list")
	assert.Equal(t, []string{"x", "y", "z"}, list)
	assert.Equal(t, 2, result.Count("list"))
}

func TestOptions_ParseListDefault(t *testing.T) {
	opts := NewOptions("tester")
	require.NoError(t, opts.AddOption("", "n,nums", "", NewValue[[]int](WithDefaultValue("1,2"), WithDelimiter(';')), ""))

	_, err := opts.Parse([]string{"tester"})
	assert.ErrorIs(t, err, errs.ErrArgumentIncorrectType, "defaults are split on the configured delimiter")

	opts = NewOptions("tester")
	require.NoError(t, opts.AddOption("", "n,nums", "", NewValue[[]int](WithDefaultValue("1;2"), WithDelimiter(';')), ""))

	result, err := opts.Parse([]string{"tester"})
	require.NoError(t, err)
	nums, _ := ValueOf[[]int](result, "nums")
	assert.Equal(t, []int{1, 2}, nums)

	result, err = opts.Parse([]string{"tester", "-n", "3;4", "-n", "5"})
	require.NoError(t, err)
	nums, _ = ValueOf[[]int](result, "nums")
	assert.Equal(t, []int{3, 4, 5}, nums, "given values replace the default")

	_, err = opts.Parse([]string{"tester", "-n", "3;;4"})
	assert.ErrorIs(t, err, errs.ErrArgumentIncorrectType, "empty segments are parsed too")
}

func TestOptions_ParseIncorrectType(t *testing.T) {
	opts := NewOptions("tester")
	require.NoError(t, opts.AddOptions("").
		Add("small", "", NewValue[int8]()).
		Add("unsigned", "", NewValue[uint]()).
		Add("ratio", "", NewValue[float64]()).
		Add("c,char", "", Char()).
		Err())

	tests := []struct {
		args []string
	}{
		{[]string{"tester", "--small", "128"}},
		{[]string{"tester", "--small", "abc"}},
		{[]string{"tester", "--unsigned", "-1"}},
		{[]string{"tester", "--ratio", "1.2.3"}},
		{[]string{"tester", "-c", "xy"}},
		{[]string{"tester", "-c", ""}},
	}
	for _, tt := range tests {
		_, err := opts.Parse(tt.args)
		assert.ErrorIs(t, err, errs.ErrArgumentIncorrectType, "args %v", tt.args)
	}

	result, err := opts.Parse([]string{"tester", "--small", "-128", "--unsigned", "0x1F", "--ratio", "2.5", "-c", "é"})
	require.NoError(t, err)
	small, _ := ValueOf[int8](result, "small")
	assert.Equal(t, int8(-128), small)
	unsigned, _ := ValueOf[uint](result, "unsigned")
	assert.Equal(t, uint(31), unsigned)
	ratio, _ := ValueOf[float64](result, "ratio")
	assert.Equal(t, 2.5, ratio)
	char, _ := ValueOf[rune](result, "char")
	assert.Equal(t, 'é', char)
}

func TestOptions_ParseNoArgument(t *testing.T) {
	opts := NewOptions("tester")
	require.NoError(t, opts.AddOption("", "s,switch", "", NewValue[string](WithImplicitValue("on"), WithNoArgument()), ""))

	result, err := opts.Parse([]string{"tester", "--switch"})
	require.NoError(t, err)
	s, _ := ValueOf[string](result, "switch")
	assert.Equal(t, "on", s)

	_, err = opts.Parse([]string{"tester", "--switch=off"})
	assert.ErrorIs(t, err, errs.ErrOptionNotHasArgument)
	assert.Equal(t, "Option ‘switch’ does not take an argument, but argument ‘off’ given", err.Error())
}

func TestOptions_ParsePositional(t *testing.T) {
	opts := NewOptions("tester")
	require.NoError(t, opts.AddOptions("").
		Add("v,verbose", "", nil).
		Add("first", "", NewValue[string]()).
		Add("rest", "", NewValue[[]string]()).
		Err())
	opts.SetPositional("first", "rest")

	result, err := opts.Parse([]string{"tester", "a", "-v", "b", "c"})
	require.NoError(t, err)
	first, _ := ValueOf[string](result, "first")
	assert.Equal(t, "a", first)
	rest, _ := ValueOf[[]string](result, "rest")
	assert.Equal(t, []string{"b", "c"}, rest)
	assert.Equal(t, 2, result.Count("rest"))
	assert.Equal(t, []string{"tester"}, result.Unmatched())

	result, err = opts.Parse([]string{"tester", "--first", "x", "a", "b"})
	require.NoError(t, err)
	first, _ = ValueOf[string](result, "first")
	assert.Equal(t, "x", first, "positional arguments skip options that already hold a value")
	rest, _ = ValueOf[[]string](result, "rest")
	assert.Equal(t, []string{"a", "b"}, rest)
}

func TestOptions_ParsePositionalExhausted(t *testing.T) {
	opts := NewOptions("tester")
	require.NoError(t, opts.AddOption("", "file", "", NewValue[string](), ""))
	opts.SetPositional("file")

	result, err := opts.Parse([]string{"tester", "a", "b", "c"})
	require.NoError(t, err)
	file, _ := ValueOf[string](result, "file")
	assert.Equal(t, "a", file)
	assert.Equal(t, []string{"tester", "b", "c"}, result.Unmatched())
}

func TestOptions_ParsePositionalUnknownName(t *testing.T) {
	opts := NewOptions("tester")
	opts.SetPositional("nope")

	result, err := opts.Parse([]string{"tester"})
	require.NoError(t, err, "positional names are only resolved when an argument reaches them")
	assert.Equal(t, []string{"tester"}, result.Unmatched())

	_, err = opts.Parse([]string{"tester", "a"})
	assert.ErrorIs(t, err, errs.ErrOptionNotExists)
}

func TestOptions_ParseTerminator(t *testing.T) {
	opts := newTestOptions(t)
	opts.SetPositional("input")

	result, err := opts.Parse([]string{"tester", "a", "--", "-v", "--output", "b"})
	require.NoError(t, err)
	input, _ := ValueOf[[]string](result, "input")
	assert.Equal(t, []string{"a", "-v", "--output", "b"}, input)
	assert.Equal(t, 0, result.Count("verbose"))
	assert.Equal(t, []string{"tester"}, result.Unmatched())

	opts = NewOptions("tester")
	require.NoError(t, opts.AddOption("", "file", "", NewValue[string](WithDefaultValue("default.txt")), ""))
	opts.SetPositional("file")

	result, err = opts.Parse([]string{"tester", "--", "x", "y", "z"})
	require.NoError(t, err)
	file, err := result.Get("file")
	require.NoError(t, err)
	assert.Equal(t, "x", file.Get())
	assert.False(t, file.HasDefault(), "an argument after -- replaces the default")
	assert.Equal(t, []string{"tester", "y", "z"}, result.Unmatched())

	result, err = opts.Parse([]string{"tester", "--"})
	require.NoError(t, err)
	file, _ = result.Get("file")
	assert.True(t, file.HasDefault())
	assert.Equal(t, "default.txt", file.Get())
}

func TestOptions_ParseTerminatorWithoutPositional(t *testing.T) {
	opts := newTestOptions(t)

	result, err := opts.Parse([]string{"tester", "-v", "--", "--", "-x"})
	require.NoError(t, err)
	assert.Equal(t, []string{"tester", "--", "-x"}, result.Unmatched())
}

func TestOptions_ParseEmpty(t *testing.T) {
	opts := newTestOptions(t)

	result, err := opts.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, []string{}, result.Unmatched())
	count, _ := ValueOf[int](result, "count")
	assert.Equal(t, 3, count)

	result, err = opts.Parse([]string{"tester"})
	require.NoError(t, err)
	assert.Equal(t, []string{"tester"}, result.Unmatched())
	assert.Empty(t, result.Arguments())
}

func TestOptions_ParseArguments(t *testing.T) {
	opts := newTestOptions(t)

	result, err := opts.Parse([]string{"tester", "-v", "--output", "x", "--level", "-l", "a,b"})
	require.NoError(t, err)
	assert.Equal(t, []types.KeyValue[string, string]{
		{Key: "verbose", Value: "true"},
		{Key: "output", Value: "x"},
		{Key: "level", Value: "1"},
		{Key: "list", Value: "a,b"},
	}, result.Arguments(), "defaults are not recorded")
}

func TestOptions_ParseDoesNotModifyInputs(t *testing.T) {
	opts := newTestOptions(t)
	opts.SetPositional("input")
	args := []string{"tester", "-v", "--output", "x", "a", "--", "b"}
	saved := append([]string(nil), args...)

	first, err := opts.Parse(args)
	require.NoError(t, err)
	assert.Equal(t, saved, args)

	opt, _ := opts.Lookup("output")
	assert.Equal(t, "", opt.Value().Get(), "the declared value is a template")

	second, err := opts.Parse([]string{"tester", "c"})
	require.NoError(t, err)
	input, _ := ValueOf[[]string](first, "input")
	assert.Equal(t, []string{"a", "b"}, input, "results are independent of later parses")
	input, _ = ValueOf[[]string](second, "input")
	assert.Equal(t, []string{"c"}, input)
}

func TestOptions_ParseConcurrent(t *testing.T) {
	opts := newTestOptions(t)
	opts.SetPositional("input")

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			name := fmt.Sprintf("file%d", i)
			result, err := opts.Parse([]string{"tester", "--count", fmt.Sprint(i), name})
			if !assert.NoError(t, err) {
				return
			}
			count, _ := ValueOf[int](result, "count")
			assert.Equal(t, i, count)
			input, _ := ValueOf[[]string](result, "input")
			assert.Equal(t, []string{name}, input)
		}(i)
	}
	wg.Wait()
}

func TestOptions_ParseBoundValues(t *testing.T) {
	var (
		output  string
		names   = []string{"preset"}
		verbose bool
	)
	opts := NewOptions("tester")
	require.NoError(t, opts.AddOptions("").
		Add("v,verbose", "", BindValue(&verbose)).
		Add("o,output", "", BindValue(&output)).
		Add("n,names", "", BindValue(&names)).
		Err())

	_, err := opts.Parse([]string{"tester", "-v", "-o", "x", "-n", "a", "-n", "b,c"})
	require.NoError(t, err)
	assert.True(t, verbose)
	assert.Equal(t, "x", output)
	assert.Equal(t, []string{"a", "b", "c"}, names, "the first occurrence replaces the bound contents")
}

func TestOptions_ParseString(t *testing.T) {
	opts := newTestOptions(t)
	opts.SetPositional("input")

	result, err := opts.ParseString(`--output "out file.txt" -v 'a b' c`)
	require.NoError(t, err)
	output, _ := ValueOf[string](result, "output")
	assert.Equal(t, "out file.txt", output)
	input, _ := ValueOf[[]string](result, "input")
	assert.Equal(t, []string{"a b", "c"}, input)
	assert.Equal(t, []string{"tester"}, result.Unmatched())

	_, err = opts.ParseString(`--output "unterminated`)
	assert.ErrorIs(t, err, errs.ErrSplitArguments)
}

func TestOptions_MustParse(t *testing.T) {
	var stderr bytes.Buffer
	code := -1
	opts, err := NewOptionsWith("tester",
		WithOption("v,verbose", "", nil, ""),
		WithStderr(&stderr),
		WithExitFunc(func(c int) { code = c }))
	require.NoError(t, err)

	result := opts.MustParse([]string{"tester", "-v"})
	require.NotNil(t, result)
	assert.Equal(t, -1, code)
	assert.Empty(t, stderr.String())

	result = opts.MustParse([]string{"tester", "--nope"})
	assert.Nil(t, result)
	assert.Equal(t, 1, code)
	assert.Equal(t, "Option ‘nope’ does not exist\n", stderr.String())
}

func TestOptions_NewOptionsWith(t *testing.T) {
	opts, err := NewOptionsWith("tester",
		WithHelpString("Exercises the parser"),
		WithOption("v,verbose", "print more", nil, ""),
		WithGroupOption("Output", "o,output", "output file", NewValue[string](), "FILE"),
		WithOption("input", "input files", NewValue[[]string](), "FILE"),
		WithPositional("input"),
		WithAllowUnrecognised(true))
	require.NoError(t, err)
	assert.Equal(t, "tester", opts.Program())
	assert.Equal(t, []string{"", "Output"}, opts.Groups())
	assert.Equal(t, []string{"input"}, opts.Positional())

	result, err := opts.Parse([]string{"tester", "--nope", "a"})
	require.NoError(t, err)
	assert.Equal(t, []string{"tester", "--nope"}, result.Unmatched())

	opts, err = NewOptionsWith("tester",
		WithOption("v,verbose", "", nil, ""),
		WithOption("v", "", nil, ""))
	assert.Nil(t, opts)
	assert.ErrorIs(t, err, errs.ErrOptionExists)
}

func TestOptions_Logger(t *testing.T) {
	var buf bytes.Buffer
	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "optarg",
		Level:  hclog.Trace,
		Output: &buf,
	})

	opts, err := NewOptionsWith("tester",
		WithLogger(logger),
		WithOption("v,verbose", "", nil, ""))
	require.NoError(t, err)

	_, err = opts.Parse([]string{"tester", "-v", "rest"})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "option declared")
	assert.Contains(t, out, "parse complete")
	assert.Contains(t, out, "unmatched=1")
	assert.Contains(t, out, "args=3")
	assert.Contains(t, out, "long=verbose")

	buf.Reset()
	_, err = opts.Parse(nil)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "unmatched=0")
	assert.NotContains(t, buf.String(), "unmatched=-1")

	buf.Reset()
	_, err = opts.Parse([]string{"tester", "--nope"})
	require.Error(t, err)
	assert.True(t, strings.Contains(buf.String(), "parse failed"))
}
