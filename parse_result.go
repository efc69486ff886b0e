package optarg

import (
	"reflect"

	"github.com/napalu/optarg/errs"
	"github.com/napalu/optarg/types"
)

// ParseResult is the outcome of one successful Parse. It is not modified after Parse returns.
type ParseResult struct {
	names      map[string]*Option
	values     map[*Option]*OptionValue
	sequential []types.KeyValue[string, string]
	unmatched  []string
}

// OptionValue holds what one parse stored for one option
type OptionValue struct {
	option    *Option
	value     Value
	count     int
	defaulted bool
}

func newParseResult(o *Options) *ParseResult {
	r := &ParseResult{
		names:  make(map[string]*Option, o.names.Len()),
		values: make(map[*Option]*OptionValue, len(o.declared)),
	}

	for pair := o.names.Oldest(); pair != nil; pair = pair.Next() {
		r.names[pair.Key.(string)] = pair.Value.(*Option)
	}
	for _, opt := range o.declared {
		r.values[opt] = &OptionValue{option: opt, value: opt.value.Clone()}
	}

	return r
}

// Count returns how many times the option was given, counting every name in a bundle of short options and every
// positional argument it received. Unknown names count 0.
func (r *ParseResult) Count(name string) int {
	opt, found := r.names[name]
	if !found {
		return 0
	}

	return r.values[opt].count
}

// Get returns the value stored for the option declared under name. An undeclared name fails with
// errs.ErrOptionNotPresent.
func (r *ParseResult) Get(name string) (*OptionValue, error) {
	opt, found := r.names[name]
	if !found {
		return nil, errs.ErrOptionNotPresent.WithArgs(name)
	}

	return r.values[opt], nil
}

// Arguments returns every explicit occurrence in command-line order as (name, text) pairs. The name is the long
// name, or the short name of options without one. Defaults are not included.
func (r *ParseResult) Arguments() []types.KeyValue[string, string] {
	return append([]types.KeyValue[string, string](nil), r.sequential...)
}

// Unmatched returns the program name followed by every argument that was not consumed, in command-line order.
// The slice is a copy and is never nil; it is empty only when Parse was given no arguments at all.
func (r *ParseResult) Unmatched() []string {
	return append([]string{}, r.unmatched...)
}

// Count returns the number of explicit occurrences
func (v *OptionValue) Count() int {
	return v.count
}

// HasDefault reports whether the value was filled from the option's default
func (v *OptionValue) HasDefault() bool {
	return v.defaulted
}

// HasValue reports whether the option was given or filled from its default
func (v *OptionValue) HasValue() bool {
	return v.count > 0 || v.defaulted
}

func (v *OptionValue) Option() *Option {
	return v.option
}

// Get returns the stored value, or nil when HasValue is false. Slices are copied.
func (v *OptionValue) Get() any {
	if !v.HasValue() {
		return nil
	}
	return copySlice(v.value.Get())
}

func (v *OptionValue) parse(text string) error {
	if err := v.value.Parse(text); err != nil {
		return err
	}
	v.count++
	v.defaulted = false

	return nil
}

func (v *OptionValue) parseDefault() error {
	if err := v.value.ParseDefault(); err != nil {
		return err
	}
	v.defaulted = true

	return nil
}

// As returns the value of v as T, which must be the type the option was declared with. Slices are copied.
//
// Example:
//
//	v, err := result.Get("count")
//	if err != nil {
//		return err
//	}
//	n, err := optarg.As[int](v)
func As[T any](v *OptionValue) (T, error) {
	var zero T
	if v == nil {
		return zero, errs.ErrOptionNotPresent.WithArgs("")
	}

	want := reflect.TypeOf((*T)(nil)).Elem()
	if have := v.value.Type(); have != want {
		return zero, errs.ErrTypeMismatch.WithArgs(v.option.Name(), typeName(have), typeName(want))
	}
	if !v.HasValue() {
		return zero, errs.ErrNoValue.WithArgs(v.option.Name())
	}

	result, ok := v.value.Get().(T)
	if !ok {
		return zero, errs.ErrTypeMismatch.WithArgs(v.option.Name(), typeName(v.value.Type()), typeName(want))
	}

	return copySlice(result), nil
}

// ValueOf is a shortcut for Get followed by As
func ValueOf[T any](r *ParseResult, name string) (T, error) {
	v, err := r.Get(name)
	if err != nil {
		var zero T
		return zero, err
	}

	return As[T](v)
}

// copySlice returns a shallow copy of v when it holds a non-nil slice and v unchanged otherwise
func copySlice[T any](v T) T {
	rv := reflect.ValueOf(&v).Elem()
	if rv.Kind() == reflect.Interface {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Slice || rv.IsNil() {
		return v
	}

	c := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
	reflect.Copy(c, rv)

	return c.Interface().(T)
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}
