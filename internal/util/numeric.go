package util

import (
	"math"
	"math/bits"

	"github.com/napalu/optarg/errs"
)

type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

func Min[T Numeric](x, y T) T {
	if x < y {
		return x
	}
	return y
}

func Max[T Numeric](x, y T) T {
	if x > y {
		return x
	}
	return y
}

// integer is the result of scanning an integer literal: its magnitude and sign
type integer struct {
	negative  bool
	magnitude uint64
}

// scanInteger recognizes `(-)?(0x)?[0-9a-zA-Z]+`. The base is 16 when the lowercase 0x prefix is
// present and 10 otherwise. Letters that are not digits of the base make the literal invalid.
// The magnitude must fit into limit.
func scanInteger(text string, limit uint64) (integer, bool) {
	var n integer
	s := text
	if len(s) > 0 && s[0] == '-' {
		n.negative = true
		s = s[1:]
	}

	base := uint64(10)
	if len(s) > 2 && s[0] == '0' && s[1] == 'x' {
		base = 16
		s = s[2:]
	}

	if len(s) == 0 {
		return n, false
	}

	for i := 0; i < len(s); i++ {
		digit, ok := digitValue(s[i], base)
		if !ok || digit > limit {
			return n, false
		}
		if n.magnitude > (limit-digit)/base {
			return n, false
		}
		n.magnitude = n.magnitude*base + digit
	}

	return n, true
}

func digitValue(c byte, base uint64) (uint64, bool) {
	switch {
	case c >= '0' && c <= '9':
		return uint64(c - '0'), true
	case base == 16 && c >= 'a' && c <= 'f':
		return uint64(c-'a') + 10, true
	case base == 16 && c >= 'A' && c <= 'F':
		return uint64(c-'A') + 10, true
	}

	return 0, false
}

func normalizeBitSize(bitSize int) int {
	if bitSize <= 0 || bitSize > 64 {
		return bits.UintSize
	}
	return bitSize
}

// ParseSigned parses text as a signed integer of bitSize bits (0 means the size of int).
// Values outside [-2^(bitSize-1), 2^(bitSize-1)-1] fail with errs.ErrArgumentIncorrectType.
func ParseSigned(text string, bitSize int) (int64, error) {
	bitSize = normalizeBitSize(bitSize)
	// magnitude of the minimum value, one more than the maximum
	limit := uint64(1) << (bitSize - 1)

	n, ok := scanInteger(text, limit)
	if !ok {
		return 0, errs.ErrArgumentIncorrectType.WithArgs(text)
	}

	if n.negative {
		if n.magnitude == limit {
			// -2^(bitSize-1) has no positive counterpart
			return math.MinInt64 >> (64 - bitSize), nil
		}
		return -int64(n.magnitude), nil
	}

	if n.magnitude > limit-1 {
		return 0, errs.ErrArgumentIncorrectType.WithArgs(text)
	}

	return int64(n.magnitude), nil
}

// ParseUnsigned parses text as an unsigned integer of bitSize bits (0 means the size of uint).
// A leading minus sign is always rejected, even for zero.
func ParseUnsigned(text string, bitSize int) (uint64, error) {
	bitSize = normalizeBitSize(bitSize)
	limit := uint64(math.MaxUint64) >> (64 - bitSize)

	n, ok := scanInteger(text, limit)
	if !ok || n.negative {
		return 0, errs.ErrArgumentIncorrectType.WithArgs(text)
	}

	return n.magnitude, nil
}
