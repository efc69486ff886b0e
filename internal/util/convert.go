package util

import (
	"encoding"
	"reflect"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/araddon/dateparse"
	"github.com/napalu/optarg/errs"
	"github.com/napalu/optarg/types"
)

// Converter parses text into a value of one fixed type
type Converter func(text string) (reflect.Value, error)

var (
	durationType        = reflect.TypeOf(time.Duration(0))
	timeType            = reflect.TypeOf(time.Time{})
	textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()
)

// KindOf classifies t. time.Duration and time.Time are recognized before their underlying kinds, and any
// type whose pointer implements encoding.TextUnmarshaler before the remaining kinds.
func KindOf(t reflect.Type) types.Kind {
	switch {
	case t == nil:
		return types.KindUnsupported
	case t == durationType:
		return types.KindDuration
	case t == timeType:
		return types.KindTime
	case reflect.PointerTo(t).Implements(textUnmarshalerType):
		return types.KindText
	}

	switch t.Kind() {
	case reflect.Bool:
		return types.KindBool
	case reflect.String:
		return types.KindString
	case reflect.Int:
		return types.KindInt
	case reflect.Int8:
		return types.KindInt8
	case reflect.Int16:
		return types.KindInt16
	case reflect.Int32:
		return types.KindInt32
	case reflect.Int64:
		return types.KindInt64
	case reflect.Uint:
		return types.KindUint
	case reflect.Uint8:
		return types.KindUint8
	case reflect.Uint16:
		return types.KindUint16
	case reflect.Uint32:
		return types.KindUint32
	case reflect.Uint64:
		return types.KindUint64
	case reflect.Float32:
		return types.KindFloat32
	case reflect.Float64:
		return types.KindFloat64
	}

	return types.KindUnsupported
}

// IsContainerType reports whether t holds a list of values: any slice whose pointer does not
// unmarshal text by itself (net.IP, for instance, is a single value).
func IsContainerType(t reflect.Type) bool {
	return t != nil && t.Kind() == reflect.Slice && !reflect.PointerTo(t).Implements(textUnmarshalerType)
}

// ConverterFor returns the converter for values of type t, or false when KindOf(t) is unsupported
func ConverterFor(t reflect.Type) (Converter, types.Kind, bool) {
	kind := KindOf(t)
	if kind == types.KindUnsupported {
		return nil, kind, false
	}

	return func(text string) (reflect.Value, error) {
		v := reflect.New(t).Elem()
		if err := convertInto(v, kind, text); err != nil {
			return reflect.Value{}, err
		}
		return v, nil
	}, kind, true
}

// CharConverter returns a converter storing exactly one character into t, which must have an integer kind
// wide enough to hold the rune
func CharConverter(t reflect.Type) (Converter, bool) {
	switch t.Kind() {
	case reflect.Int32, reflect.Int64, reflect.Uint32, reflect.Uint64, reflect.Int, reflect.Uint:
	default:
		return nil, false
	}

	return func(text string) (reflect.Value, error) {
		r, err := ParseChar(text)
		if err != nil {
			return reflect.Value{}, err
		}
		v := reflect.New(t).Elem()
		if v.CanInt() {
			v.SetInt(int64(r))
		} else {
			v.SetUint(uint64(r))
		}
		return v, nil
	}, true
}

func convertInto(v reflect.Value, kind types.Kind, text string) error {
	switch {
	case kind.IsSigned():
		i, err := ParseSigned(text, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetInt(i)
		return nil
	case kind.IsUnsigned():
		u, err := ParseUnsigned(text, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetUint(u)
		return nil
	}

	switch kind {
	case types.KindBool:
		b, err := ParseBool(text)
		if err != nil {
			return err
		}
		v.SetBool(b)
	case types.KindString:
		v.SetString(text)
	case types.KindFloat32, types.KindFloat64:
		f, err := strconv.ParseFloat(text, v.Type().Bits())
		if err != nil {
			return errs.ErrArgumentIncorrectType.WithArgs(text).Wrap(err)
		}
		v.SetFloat(f)
	case types.KindDuration:
		d, err := time.ParseDuration(text)
		if err != nil {
			return errs.ErrArgumentIncorrectType.WithArgs(text).Wrap(err)
		}
		v.SetInt(int64(d))
	case types.KindTime:
		tm, err := dateparse.ParseLocal(text)
		if err != nil {
			return errs.ErrArgumentIncorrectType.WithArgs(text).Wrap(err)
		}
		v.Set(reflect.ValueOf(tm))
	case types.KindText:
		u := v.Addr().Interface().(encoding.TextUnmarshaler)
		if err := u.UnmarshalText([]byte(text)); err != nil {
			return errs.ErrArgumentIncorrectType.WithArgs(text).Wrap(err)
		}
	default:
		return errs.ErrUnsupportedType.WithArgs(v.Type().String())
	}

	return nil
}

// ParseBool accepts t, true and 1 as true and f, false, 0 and the empty string as false, ignoring case
func ParseBool(text string) (bool, error) {
	switch strings.ToLower(text) {
	case "t", "true", "1":
		return true, nil
	case "f", "false", "0", "":
		return false, nil
	}

	return false, errs.ErrArgumentIncorrectType.WithArgs(text)
}

// ParseChar accepts text consisting of exactly one character
func ParseChar(text string) (rune, error) {
	r, size := utf8.DecodeRuneInString(text)
	if size == 0 || size != len(text) || (r == utf8.RuneError && size == 1) {
		return 0, errs.ErrArgumentIncorrectType.WithArgs(text)
	}

	return r, nil
}

// SplitList splits text on delimiter. Segments are neither trimmed nor dropped when empty, so "a,,b"
// yields three segments and "" yields one.
func SplitList(text string, delimiter rune) []string {
	return strings.Split(text, string(delimiter))
}
