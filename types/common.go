package types

// Kind classifies the values an option can hold. Container options report the Kind of their elements.
type Kind int

const (
	KindUnsupported Kind = iota // KindUnsupported denotes a type no parser exists for
	KindBool                    // KindBool denotes true/false values ("t", "true", "1" and "f", "false", "0")
	KindString                  // KindString denotes text taken verbatim
	KindChar                    // KindChar denotes exactly one character
	KindInt
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat32
	KindFloat64
	KindDuration // KindDuration denotes a time.Duration such as "1h30m"
	KindTime     // KindTime denotes a time.Time in any layout understood by dateparse
	KindText     // KindText denotes a type implementing encoding.TextUnmarshaler
)

// String returns the string representation of a Kind
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindChar:
		return "char"
	case KindInt:
		return "int"
	case KindInt8:
		return "int8"
	case KindInt16:
		return "int16"
	case KindInt32:
		return "int32"
	case KindInt64:
		return "int64"
	case KindUint:
		return "uint"
	case KindUint8:
		return "uint8"
	case KindUint16:
		return "uint16"
	case KindUint32:
		return "uint32"
	case KindUint64:
		return "uint64"
	case KindFloat32:
		return "float32"
	case KindFloat64:
		return "float64"
	case KindDuration:
		return "duration"
	case KindTime:
		return "time"
	case KindText:
		return "text"
	case KindUnsupported:
		fallthrough
	default:
		return "unsupported"
	}
}

// IsSigned reports whether k is a signed integer kind
func (k Kind) IsSigned() bool {
	return k >= KindInt && k <= KindInt64
}

// IsUnsigned reports whether k is an unsigned integer kind
func (k Kind) IsUnsigned() bool {
	return k >= KindUint && k <= KindUint64
}

// KeyValue denotes Key Value pairs
type KeyValue[K, V any] struct {
	Key   K
	Value V
}
