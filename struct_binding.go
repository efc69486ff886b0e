package optarg

import (
	"reflect"
	"unicode/utf8"

	"github.com/iancoleman/strcase"
	"github.com/napalu/optarg/errs"
	"github.com/napalu/optarg/internal/parse"
	"github.com/napalu/optarg/internal/util"
	"github.com/napalu/optarg/types"
)

// AddStruct declares one option per exported field of the struct target points to. Fields are bound, so parsing
// writes into them. The following tags are recognized:
//
//	optarg:"v,verbose"   option specifier; "-" skips the field. Untagged fields use the kebab-cased field name.
//	desc:"..."           description
//	default:"..."        default value
//	implicit:"..."       implicit value
//	arg:"FILE"           argument label in help output
//	delimiter:";"        list delimiter
//	char:"true"          a rune field holds one character rather than a number
//	positional:"true"    append the option to the positional options
//
// Nested struct fields are flattened with their kebab-cased field name as prefix of the long names; embedded
// structs are flattened without prefix. Fields declared before an error remain declared.
//
// Example:
//
//	type config struct {
//		Verbose bool     `optarg:"v,verbose" desc:"print more"`
//		Output  string   `optarg:"o,output" desc:"output file" arg:"FILE" default:"a.out"`
//		Inputs  []string `desc:"input files" positional:"true"`
//	}
//	var cfg config
//	err := opts.AddStruct("", &cfg)
func (o *Options) AddStruct(group string, target any) error {
	rv := reflect.ValueOf(target)
	if !rv.IsValid() || (rv.Kind() == reflect.Pointer && rv.IsNil()) {
		return errs.ErrBindNil
	}
	if rv.Kind() != reflect.Pointer || rv.Elem().Kind() != reflect.Struct {
		return errs.ErrUnsupportedType.WithArgs(rv.Type().String())
	}

	var positional []string
	err := o.addStructFields(group, "", rv.Elem(), &positional)
	if len(positional) > 0 {
		o.SetPositional(append(o.positional, positional...)...)
	}

	return err
}

func (o *Options) addStructFields(group, prefix string, v reflect.Value, positional *[]string) error {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		// exported fields of an unexported embedded struct are still settable
		if !field.IsExported() && !(field.Anonymous && isNestedStruct(field.Type)) {
			continue
		}

		tag, hasTag := field.Tag.Lookup("optarg")
		if tag == "-" {
			continue
		}

		fieldValue := v.Field(i)
		if isNestedStruct(field.Type) {
			nestedPrefix := prefix
			if !field.Anonymous {
				nestedPrefix = joinName(prefix, strcase.ToKebab(field.Name))
			}
			if err := o.addStructFields(group, nestedPrefix, fieldValue, positional); err != nil {
				return err
			}
			continue
		}

		if !hasTag || tag == "" {
			tag = strcase.ToKebab(field.Name)
		}
		short, long, ok := parse.ParseSpecifier(tag)
		if !ok {
			return errs.ErrStructBinding.WithArgs(field.Name).Wrap(errs.ErrInvalidOptionFormat.WithArgs(tag))
		}
		if long != "" {
			long = joinName(prefix, long)
		}

		configs, err := fieldValueConfigs(field)
		if err != nil {
			return errs.ErrStructBinding.WithArgs(field.Name).Wrap(err)
		}

		value := newValue(field.Type, fieldValue, field.Tag.Get("char") == "true", configs)
		err = o.AddOption(group, specifier(short, long), field.Tag.Get("desc"), value, field.Tag.Get("arg"))
		if err != nil {
			return errs.ErrStructBinding.WithArgs(field.Name).Wrap(err)
		}

		if field.Tag.Get("positional") == "true" {
			name := long
			if name == "" {
				name = short
			}
			*positional = append(*positional, name)
		}
	}

	return nil
}

func fieldValueConfigs(field reflect.StructField) ([]ConfigureValueFunc, error) {
	var configs []ConfigureValueFunc
	if d, ok := field.Tag.Lookup("default"); ok {
		configs = append(configs, WithDefaultValue(d))
	}
	if i, ok := field.Tag.Lookup("implicit"); ok {
		configs = append(configs, WithImplicitValue(i))
	}
	if d, ok := field.Tag.Lookup("delimiter"); ok {
		r, size := utf8.DecodeRuneInString(d)
		if size == 0 || size != len(d) {
			return nil, errs.ErrInvalidDelimiter.WithArgs(d)
		}
		configs = append(configs, WithDelimiter(r))
	}

	return configs, nil
}

// isNestedStruct reports whether fields of type t are flattened rather than parsed as one value
func isNestedStruct(t reflect.Type) bool {
	return t.Kind() == reflect.Struct && util.KindOf(t) == types.KindUnsupported
}

func joinName(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "-" + name
}

func specifier(short, long string) string {
	switch {
	case short != "" && long != "":
		return short + "," + long
	case short != "":
		return short
	}
	return long
}
