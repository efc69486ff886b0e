package optarg

import (
	"reflect"

	"github.com/napalu/optarg/errs"
	"github.com/napalu/optarg/internal/util"
	"github.com/napalu/optarg/types"
)

// Value converts argument text into typed storage and describes how an option is filled.
//
// The Value given to AddOption is a template: every parse works on its own Clone, so a template is never
// modified by parsing. A clone of a Value bound to caller-owned storage writes to that same storage.
type Value interface {
	// Parse converts text and stores it. List values append every element of text split on the delimiter;
	// the first Parse after Clone or ParseDefault replaces the previous contents.
	Parse(text string) error
	// ParseDefault stores the default value
	ParseDefault() error
	// Clone returns an independent copy with the same configuration and fresh storage, unless the value is bound
	Clone() Value
	Config() ValueConfig
	HasDefault() bool
	DefaultValue() string
	HasImplicit() bool
	ImplicitValue() string
	// TakesArgument reports whether an explicit argument (--name=value) is accepted
	TakesArgument() bool
	IsContainer() bool
	IsBoolean() bool
	// Kind is the kind of the value, or of its elements for list values
	Kind() types.Kind
	// Type is the Go type stored, []T for list values
	Type() reflect.Type
	// Get returns the stored value
	Get() any
}

// invalidValue is implemented by values whose construction failed; AddOption reports the error
type invalidValue interface {
	configError() error
}

var runeType = reflect.TypeOf(rune(0))

type value struct {
	cfg       ValueConfig
	typ       reflect.Type
	kind      types.Kind
	convert   util.Converter
	container bool
	target    reflect.Value
	bound     bool
	started   bool
	err       error
}

// NewValue returns a Value of type T with storage owned by each parse result. Slice types other than those
// implementing encoding.TextUnmarshaler are list values.
//
// Example:
//
//	opts.AddOption("", "n,count", "number of retries", optarg.NewValue[int](optarg.WithDefaultValue("3")), "N")
func NewValue[T any](configs ...ConfigureValueFunc) Value {
	return newValue(reflect.TypeOf((*T)(nil)).Elem(), reflect.Value{}, false, configs)
}

// BindValue returns a Value of type T writing into *ptr. Parsing overwrites *ptr; a list value is replaced by the
// first occurrence on the command line and extended by later ones.
func BindValue[T any](ptr *T, configs ...ConfigureValueFunc) Value {
	typ := reflect.TypeOf((*T)(nil)).Elem()
	if ptr == nil {
		v := newValue(typ, reflect.Value{}, false, configs)
		v.err = errs.ErrBindNil
		return v
	}

	return newValue(typ, reflect.ValueOf(ptr).Elem(), false, configs)
}

// Bool returns a boolean Value defaulting to false with an implicit value of true
func Bool(configs ...ConfigureValueFunc) Value {
	return NewValue[bool](configs...)
}

// Char returns a Value accepting exactly one character
func Char(configs ...ConfigureValueFunc) Value {
	return newValue(runeType, reflect.Value{}, true, configs)
}

// BindChar returns a Value writing exactly one character into *ptr
func BindChar(ptr *rune, configs ...ConfigureValueFunc) Value {
	if ptr == nil {
		v := newValue(runeType, reflect.Value{}, true, configs)
		v.err = errs.ErrBindNil
		return v
	}

	return newValue(runeType, reflect.ValueOf(ptr).Elem(), true, configs)
}

// ParseText converts text to T following the rules option values use
func ParseText[T any](text string) (T, error) {
	var result T
	v := newValue(reflect.TypeOf((*T)(nil)).Elem(), reflect.ValueOf(&result).Elem(), false, nil)
	if v.err != nil {
		return result, v.err
	}
	err := v.Parse(text)

	return result, err
}

func newValue(typ reflect.Type, target reflect.Value, char bool, configs []ConfigureValueFunc) *value {
	v := &value{
		typ:       typ,
		container: util.IsContainerType(typ),
		cfg:       ValueConfig{Delimiter: DefaultDelimiter},
	}

	elem := typ
	if v.container {
		elem = typ.Elem()
	}

	var ok bool
	if char {
		v.convert, ok = util.CharConverter(elem)
		v.kind = types.KindChar
	} else {
		v.convert, v.kind, ok = util.ConverterFor(elem)
	}
	if !ok {
		v.kind = types.KindUnsupported
		v.err = errs.ErrUnsupportedType.WithArgs(typ.String())
	}

	if v.IsBoolean() {
		v.cfg.DefaultValue, v.cfg.HasDefault = "false", true
		v.cfg.ImplicitValue, v.cfg.HasImplicit = "true", true
	}

	for _, config := range configs {
		var err error
		config(&v.cfg, &err)
		if err != nil && v.err == nil {
			v.err = err
		}
	}

	if v.err == nil && v.cfg.NoArgument && !v.cfg.HasImplicit {
		v.err = errs.ErrNoImplicitValue
	}

	if target.IsValid() {
		v.target = target
		v.bound = true
	} else {
		v.target = reflect.New(typ).Elem()
	}

	return v
}

func (v *value) Parse(text string) error {
	if v.convert == nil {
		return errs.ErrUnsupportedType.WithArgs(v.typ.String())
	}

	if !v.container {
		rv, err := v.convert(text)
		if err != nil {
			return err
		}
		v.target.Set(rv)
		return nil
	}

	segments := util.SplitList(text, v.cfg.Delimiter)
	items := make([]reflect.Value, 0, len(segments))
	for _, segment := range segments {
		rv, err := v.convert(segment)
		if err != nil {
			return err
		}
		items = append(items, rv)
	}

	current := v.target
	if !v.started {
		current = reflect.MakeSlice(v.typ, 0, len(items))
	}
	v.target.Set(reflect.Append(current, items...))
	v.started = true

	return nil
}

func (v *value) ParseDefault() error {
	v.started = false
	err := v.Parse(v.cfg.DefaultValue)
	v.started = false

	return err
}

func (v *value) Clone() Value {
	c := *v
	c.started = false
	if !v.bound {
		c.target = reflect.New(v.typ).Elem()
	}

	return &c
}

func (v *value) Config() ValueConfig {
	return v.cfg
}

func (v *value) HasDefault() bool {
	return v.cfg.HasDefault
}

func (v *value) DefaultValue() string {
	return v.cfg.DefaultValue
}

func (v *value) HasImplicit() bool {
	return v.cfg.HasImplicit
}

func (v *value) ImplicitValue() string {
	return v.cfg.ImplicitValue
}

func (v *value) TakesArgument() bool {
	return !v.cfg.NoArgument
}

func (v *value) IsContainer() bool {
	return v.container
}

func (v *value) IsBoolean() bool {
	return v.kind == types.KindBool && !v.container
}

func (v *value) Kind() types.Kind {
	return v.kind
}

func (v *value) Type() reflect.Type {
	return v.typ
}

func (v *value) Get() any {
	return v.target.Interface()
}

func (v *value) configError() error {
	return v.err
}
