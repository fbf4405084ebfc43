package fixcap

import (
	"bytes"
	"iter"
)

// Text is a bounded byte buffer of up to Cap() printable bytes that keeps a
// zero terminator byte at position Len() after every public operation. The
// backing array is Cap()+1 bytes so the terminator never competes with
// content for space.
//
// Unlike Vector, Text never faults on overflow: every construction and
// append silently drops excess input once the capacity is reached. This is
// the only growth-control mechanism and it has no error channel. Callers
// that must detect truncation compare Len() before and after.
//
// Mutation goes through the append/assign/resize operations only; external
// access to the bytes is read-only, so the terminator invariant cannot be
// broken from outside.
//
// Example:
//
//	t := fixcap.TextOf(10, "123")
//	t.AppendString("4567890abc") // "abc" does not fit and is dropped
//	_ = t.String()               // "1234567890"
type Text struct {
	length int
	buf    []byte // len(buf) is capacity+1; buf[length] == 0 always
}

// NewText creates an empty Text with the given fixed capacity.
// Faults if capacity is not positive.
func NewText(capacity int) *Text {
	if capacity <= 0 {
		fault(&Violation{Op: "NewText", Index: capacity, Err: ErrBadCapacity})
		capacity = 1
	}
	t := &Text{buf: make([]byte, capacity+1)}
	t.buf[0] = 0
	return t
}

// WrapText creates an empty Text over the caller's storage. One byte is
// reserved for the terminator, so the capacity is len(storage)-1, which
// must be positive. The caller must not touch the storage while the Text
// is in use.
func WrapText(storage []byte) *Text {
	if len(storage) < 2 {
		fault(&Violation{Op: "WrapText", Index: len(storage) - 1, Err: ErrBadCapacity})
		storage = make([]byte, 2)
	}
	storage[0] = 0
	return &Text{buf: storage}
}

// TextOf creates a Text with the given capacity initialized from s.
// Excess input is silently dropped.
func TextOf(capacity int, s string) *Text {
	t := NewText(capacity)
	t.AppendString(s)
	return t
}

// TextFromBytes creates a Text with the given capacity initialized from b.
// Excess input is silently dropped.
func TextFromBytes(capacity int, b []byte) *Text {
	t := NewText(capacity)
	t.AppendBytes(b)
	return t
}

// CopyText creates a Text with the given capacity initialized from another
// Text of possibly different capacity. Excess content is silently dropped.
func CopyText(capacity int, src *Text) *Text {
	t := NewText(capacity)
	t.AppendBytes(src.Bytes())
	return t
}

// Len returns the number of live bytes.
func (t *Text) Len() int { return t.length }

// Cap returns the fixed capacity. The terminator byte is not counted.
func (t *Text) Cap() int { return len(t.buf) - 1 }

// Empty reports whether the Text holds no live bytes.
func (t *Text) Empty() bool { return t.length == 0 }

// String returns the live bytes as a string.
func (t *Text) String() string { return string(t.buf[:t.length]) }

// Bytes returns the live bytes as a window over the backing storage,
// excluding the terminator. The window is read-only: writing through it
// would bypass the terminator discipline. It stays valid until the next
// mutating operation.
func (t *Text) Bytes() []byte { return t.buf[:t.length:t.length] }

// Terminated returns the live bytes plus the trailing zero byte, for
// consumers that expect zero-terminated buffers. Read-only, same validity
// rules as Bytes.
func (t *Text) Terminated() []byte { return t.buf[: t.length+1 : t.length+1] }

// Clear removes all content and re-establishes the terminator.
func (t *Text) Clear() {
	t.length = 0
	t.buf[0] = 0
}

// AppendByte appends a single byte. Once the capacity is reached the byte
// is silently dropped.
func (t *Text) AppendByte(c byte) {
	if t.length < len(t.buf)-1 {
		t.buf[t.length] = c
		t.length++
	}
	t.buf[t.length] = 0
}

// AppendString appends s, silently dropping whatever does not fit.
func (t *Text) AppendString(s string) {
	n := copy(t.buf[t.length:len(t.buf)-1], s)
	t.length += n
	t.buf[t.length] = 0
}

// AppendBytes appends b, silently dropping whatever does not fit.
// This is the bridge for consuming transient buffers such as radix
// conversion results.
func (t *Text) AppendBytes(b []byte) {
	n := copy(t.buf[t.length:len(t.buf)-1], b)
	t.length += n
	t.buf[t.length] = 0
}

// Append appends the live bytes of another Text, silently dropping
// whatever does not fit.
func (t *Text) Append(other *Text) {
	t.AppendBytes(other.Bytes())
}

// SetString replaces the content with s, truncating silently.
func (t *Text) SetString(s string) {
	t.Clear()
	t.AppendString(s)
}

// SetText replaces the content with that of another Text, truncating
// silently.
func (t *Text) SetText(other *Text) {
	t.Clear()
	t.AppendBytes(other.Bytes())
}

// RemoveLast removes the last byte and re-establishes the terminator.
// A no-op on an empty Text.
func (t *Text) RemoveLast() {
	if t.length > 0 {
		t.length--
	}
	t.buf[t.length] = 0
}

// Resize sets the length to n, padding with fill when growing and
// truncating when shrinking. Growth clamps silently at the capacity,
// following the same policy as appends. Faults if n is negative.
func (t *Text) Resize(n int, fill byte) {
	if n < 0 {
		fault(&Violation{Op: "Resize", Index: n, Len: t.length, Cap: t.Cap(), Err: ErrOutOfRange})
		return
	}
	for t.length < n && t.length < len(t.buf)-1 {
		t.buf[t.length] = fill
		t.length++
	}
	if n < t.length {
		t.length = n
	}
	t.buf[t.length] = 0
}

// At returns the byte at index i. Faults if i is outside [0, Len()).
func (t *Text) At(i int) byte {
	if i < 0 || i >= t.length {
		fault(&Violation{Op: "At", Index: i, Len: t.length, Cap: t.Cap(), Err: ErrOutOfRange})
		return 0
	}
	return t.buf[i]
}

// Front returns the first byte. Faults on an empty Text.
func (t *Text) Front() byte { return t.At(0) }

// Back returns the last byte. Faults on an empty Text.
func (t *Text) Back() byte {
	if t.length == 0 {
		fault(&Violation{Op: "Back", Len: 0, Cap: t.Cap(), Err: ErrEmpty})
		return 0
	}
	return t.buf[t.length-1]
}

// ToLower returns a new Text of the same capacity with ASCII uppercase
// letters folded to lowercase. Non-ASCII bytes pass through unchanged.
// The receiver is not modified.
func (t *Text) ToLower() *Text {
	out := NewText(t.Cap())
	for i := 0; i < t.length; i++ {
		c := t.buf[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		out.buf[i] = c
	}
	out.length = t.length
	out.buf[out.length] = 0
	return out
}

// ToUpper returns a new Text of the same capacity with ASCII lowercase
// letters folded to uppercase. Non-ASCII bytes pass through unchanged.
// The receiver is not modified.
func (t *Text) ToUpper() *Text {
	out := NewText(t.Cap())
	for i := 0; i < t.length; i++ {
		c := t.buf[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		out.buf[i] = c
	}
	out.length = t.length
	out.buf[out.length] = 0
	return out
}

// Clone returns an independent copy with the same capacity and content.
func (t *Text) Clone() *Text {
	out := NewText(t.Cap())
	out.length = copy(out.buf[:len(out.buf)-1], t.buf[:t.length])
	out.buf[out.length] = 0
	return out
}

// EqualText reports whether both buffers hold the same live bytes.
// Capacities are not compared.
func (t *Text) EqualText(other *Text) bool {
	return bytes.Equal(t.buf[:t.length], other.buf[:other.length])
}

// EqualString reports whether the live bytes equal s byte-wise.
// Neither side is read past its own length.
func (t *Text) EqualString(s string) bool {
	if t.length != len(s) {
		return false
	}
	for i := 0; i < t.length; i++ {
		if t.buf[i] != s[i] {
			return false
		}
	}
	return true
}

// All returns a read-only index/byte iterator over the live bytes.
// The iterator is stateless and restartable.
func (t *Text) All() iter.Seq2[int, byte] {
	return func(yield func(int, byte) bool) {
		for i := 0; i < t.length; i++ {
			if !yield(i, t.buf[i]) {
				return
			}
		}
	}
}

// Concat returns a new Text holding left followed by right. The result
// capacity is the sum of both operand capacities, so no content can be
// lost here.
func Concat(left, right *Text) *Text {
	out := NewText(left.Cap() + right.Cap())
	out.Append(left)
	out.Append(right)
	return out
}

// ConcatString returns a new Text holding left followed by s. The result
// capacity is that of left, so excess bytes of s are silently dropped.
func ConcatString(left *Text, s string) *Text {
	out := left.Clone()
	out.AppendString(s)
	return out
}

// StringConcat returns a new Text holding s followed by right. The result
// capacity is that of right; excess input is silently dropped.
func StringConcat(s string, right *Text) *Text {
	out := NewText(right.Cap())
	out.AppendString(s)
	out.Append(right)
	return out
}
