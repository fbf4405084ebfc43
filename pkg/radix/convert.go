// Package radix converts signed and unsigned integers to minimal-length
// textual digit sequences in any base from 2 to 36, without allocating.
// The result is a transient fixed-size buffer filled back to front; callers
// that need to keep the text copy it out (for example into a fixcap.Text).
package radix

import (
	"errors"
	"unsafe"
)

// Base limits. Base 1 (unary) is degenerate and reserved; bases above 36
// are rejected because the digit alphabet 0-9a-z has only 36 symbols.
const (
	MinBase = 2
	MaxBase = 36
)

// ErrBadBase indicates a base outside [MinBase, MaxBase]. An invalid base
// is a programmer error, so Convert panics with this sentinel rather than
// returning it.
var ErrBadBase = errors.New("radix: base out of range [2, 36]")

// Integer is the set of integer types accepted by Convert.
type Integer interface {
	int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 | uintptr
}

const alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// The buffer is sized for the overall worst case: a minus sign, 64 binary
// digits, and a trailing zero byte. Capacity is proven sufficient by
// construction, so the fill loop needs no bounds checks.
const (
	resultSize = 1 + 64 + 1
	digitsEnd  = resultSize - 1 // index of the terminator byte
)

// Result is the outcome of a conversion: an immutable buffer holding the
// digits at its tail, and the offset of the first significant character.
// It is a transient value meant to be consumed immediately; copy the digits
// out for long-term storage.
type Result struct {
	buf [resultSize]byte
	off int
}

// Convert renders value in the given base: most significant digit first, a
// single leading '-' for negative values, no leading zeros, and exactly "0"
// for zero. Panics with ErrBadBase if base is outside [MinBase, MaxBase].
//
// The digits are extracted least significant first into the tail of the
// result buffer. Negative values are processed in the negative domain: each
// step takes the remainder (non-positive in Go for a negative dividend),
// negates only that single digit, and divides toward zero. The full value
// is never negated, so the minimum representable value of every signed
// width converts correctly.
//
// Example:
//
//	r := radix.Convert(123456, 16)
//	_ = r.String() // "1e240"
func Convert[T Integer](value T, base int) Result {
	if base < MinBase || base > MaxBase {
		panic(ErrBadBase)
	}

	var r Result
	i := digitsEnd
	b := T(base)

	if value < 0 {
		for value != 0 {
			i--
			r.buf[i] = alphabet[-(value % b)]
			value /= b
		}
		i--
		r.buf[i] = '-'
	} else {
		// The zero digit is emitted even when it is the only one.
		for {
			i--
			r.buf[i] = alphabet[value%b]
			value /= b
			if value == 0 {
				break
			}
		}
	}

	r.off = i
	return r
}

// Decimal is shorthand for Convert(value, 10).
func Decimal[T Integer](value T) Result {
	return Convert(value, 10)
}

// Len returns the number of significant characters, including the sign.
// It is always at least 1.
func (r Result) Len() int { return digitsEnd - r.off }

// String returns the significant characters as a string.
func (r Result) String() string { return string(r.buf[r.off:digitsEnd]) }

// Digits returns the significant characters as a read-only window over the
// result buffer, excluding the terminator. The window is valid for the
// lifetime of the Result.
func (r Result) Digits() []byte { return r.buf[r.off:digitsEnd:digitsEnd] }

// Terminated returns the significant characters plus the trailing zero
// byte, for consumers that expect zero-terminated buffers.
func (r Result) Terminated() []byte { return r.buf[r.off:resultSize:resultSize] }

// MaxLen returns the worst-case character count (digits plus sign, no
// terminator) for the integer type T in the given base. This is the exact
// capacity a caller needs to hold any value of T. Panics with ErrBadBase
// if base is outside [MinBase, MaxBase].
func MaxLen[T Integer](base int) int {
	if base < MinBase || base > MaxBase {
		panic(ErrBadBase)
	}

	var v T
	bits := int(unsafe.Sizeof(v)) * 8
	signed := v-1 < 0

	var magnitude uint64
	n := 0
	if signed {
		// The most negative value has the largest magnitude.
		magnitude = uint64(1) << (bits - 1)
		n = 1 // leading minus
	} else {
		magnitude = ^uint64(0) >> (64 - bits)
	}

	for magnitude > 0 {
		magnitude /= uint64(base)
		n++
	}
	return n
}
