// Package fixcap provides fixed-capacity value types for allocation-averse
// code paths: a bounded sequence (Vector) and a bounded, always-terminated
// byte buffer (Text). Capacity is fixed at construction and never grows;
// no operation allocates after construction, and Wrap/WrapText adopt
// caller-provided storage for fully allocation-free use.
//
// Overflow policy differs by type, deliberately:
//   - Vector faults (panics with a *Violation) on capacity or bounds
//     violations; callers pre-check Len() < Cap().
//   - Text silently drops excess input; there is no error channel for
//     text overflow by design.
package fixcap

import "iter"

// Vector is a bounded sequence of up to Cap() elements stored in a single
// backing array with no per-element indirection. The element type must be
// comparable; elements are copied by value.
//
// Only indices in [0, Len()) are live. Storage past the live length holds
// unspecified leftovers and is never compared or iterated.
//
// A Vector is not safe for concurrent mutation. Concurrent readers of an
// instance that is not being mutated are safe, like any other Go value.
//
// Example:
//
//	v := fixcap.New[int](8)
//	v.Append(1, 2, 3)
//	sum := 0
//	for _, x := range v.All() {
//	    sum += x
//	}
type Vector[T comparable] struct {
	length int
	buf    []T // len(buf) is the fixed capacity
}

// New creates an empty Vector with the given fixed capacity.
// The backing array is allocated once, here; no later operation allocates.
// Faults if capacity is not positive.
func New[T comparable](capacity int) *Vector[T] {
	if capacity <= 0 {
		fault(&Violation{Op: "New", Index: capacity, Err: ErrBadCapacity})
		capacity = 1
	}
	return &Vector[T]{buf: make([]T, capacity)}
}

// Wrap creates an empty Vector that uses the caller's slice as backing
// storage. The capacity is len(storage). The caller must not touch the
// storage while the Vector is in use. This is the allocation-free
// construction path: storage may live on the stack or in a static array.
//
// Example:
//
//	var backing [16]float64
//	v := fixcap.Wrap(backing[:])
func Wrap[T comparable](storage []T) *Vector[T] {
	if len(storage) == 0 {
		fault(&Violation{Op: "Wrap", Err: ErrBadCapacity})
		storage = make([]T, 1)
	}
	return &Vector[T]{buf: storage}
}

// Of creates a Vector with the given capacity holding the given values.
// Excess values beyond the capacity are silently dropped, matching the
// truncating from-range constructor contract.
func Of[T comparable](capacity int, values ...T) *Vector[T] {
	v := New[T](capacity)
	v.length = copy(v.buf, values)
	return v
}

// Repeat creates a Vector with the given capacity holding count copies of
// fill. Faults if count exceeds capacity.
func Repeat[T comparable](capacity, count int, fill T) *Vector[T] {
	v := New[T](capacity)
	v.Resize(count, fill)
	return v
}

// FromSlice creates a Vector with the given capacity initialized from src.
// Excess input is silently dropped.
func FromSlice[T comparable](capacity int, src []T) *Vector[T] {
	v := New[T](capacity)
	v.length = copy(v.buf, src)
	return v
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int { return v.length }

// Cap returns the fixed capacity. It never changes after construction.
func (v *Vector[T]) Cap() int { return len(v.buf) }

// Empty reports whether the Vector holds no live elements.
func (v *Vector[T]) Empty() bool { return v.length == 0 }

// Append adds the given values at the end, in order.
// Appending past the capacity is a fault: callers must check
// Len() < Cap() first. With checks compiled out, excess values are
// dropped and the capacity still holds.
func (v *Vector[T]) Append(values ...T) {
	for _, x := range values {
		if v.length == len(v.buf) {
			fault(&Violation{Op: "Append", Index: v.length, Len: v.length, Cap: len(v.buf), Err: ErrCapacity})
			return
		}
		v.buf[v.length] = x
		v.length++
	}
}

// Extend appends all live elements of other. Same capacity contract as
// Append.
func (v *Vector[T]) Extend(other *Vector[T]) {
	v.Append(other.buf[:other.length]...)
}

// RemoveLast removes the last live element.
// Faults on an empty Vector.
func (v *Vector[T]) RemoveLast() {
	if v.length == 0 {
		fault(&Violation{Op: "RemoveLast", Len: 0, Cap: len(v.buf), Err: ErrEmpty})
		return
	}
	v.length--
}

// Clear resets the length to zero. Storage contents become unspecified;
// nothing is released and the capacity is unchanged.
func (v *Vector[T]) Clear() { v.length = 0 }

// Resize sets the live length to count. Shrinking truncates; growing
// appends copies of fill. Faults if count is negative or exceeds the
// capacity.
func (v *Vector[T]) Resize(count int, fill T) {
	if count < 0 || count > len(v.buf) {
		fault(&Violation{Op: "Resize", Index: count, Len: v.length, Cap: len(v.buf), Err: ErrCapacity})
		return
	}
	for v.length < count {
		v.buf[v.length] = fill
		v.length++
	}
	v.length = count
}

// At returns the element at index i. Faults if i is outside [0, Len()).
func (v *Vector[T]) At(i int) T {
	if i < 0 || i >= v.length {
		fault(&Violation{Op: "At", Index: i, Len: v.length, Cap: len(v.buf), Err: ErrOutOfRange})
		var zero T
		return zero
	}
	return v.buf[i]
}

// Set assigns the element at index i. Faults if i is outside [0, Len()).
// Set never extends the live length; use Append or Resize for that.
func (v *Vector[T]) Set(i int, x T) {
	if i < 0 || i >= v.length {
		fault(&Violation{Op: "Set", Index: i, Len: v.length, Cap: len(v.buf), Err: ErrOutOfRange})
		return
	}
	v.buf[i] = x
}

// Front returns the first live element. Faults on an empty Vector.
func (v *Vector[T]) Front() T { return v.At(0) }

// Back returns the last live element. Faults on an empty Vector.
func (v *Vector[T]) Back() T {
	if v.length == 0 {
		fault(&Violation{Op: "Back", Len: 0, Cap: len(v.buf), Err: ErrEmpty})
		var zero T
		return zero
	}
	return v.buf[v.length-1]
}

// Slice returns the live elements as a window over the backing storage.
// The window stays valid until the next mutating operation. Callers may
// read and write elements through it but must not append to it.
func (v *Vector[T]) Slice() []T { return v.buf[:v.length:v.length] }

// Clone returns an independent copy with the same capacity and contents.
func (v *Vector[T]) Clone() *Vector[T] {
	out := New[T](len(v.buf))
	out.length = copy(out.buf, v.buf[:v.length])
	return out
}

// Equal reports whether both vectors hold the same live elements in the
// same order. Unused tail storage and capacities are not compared.
func (v *Vector[T]) Equal(other *Vector[T]) bool {
	return v.EqualSlice(other.buf[:other.length])
}

// EqualSlice reports whether the live elements equal s element-wise.
func (v *Vector[T]) EqualSlice(s []T) bool {
	if v.length != len(s) {
		return false
	}
	for i, x := range s {
		if v.buf[i] != x {
			return false
		}
	}
	return true
}

// All returns an index/value iterator over the live elements.
// The iterator is stateless: it can be ranged over any number of times.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.length; i++ {
			if !yield(i, v.buf[i]) {
				return
			}
		}
	}
}

// Values returns a value-only iterator over the live elements.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.length; i++ {
			if !yield(v.buf[i]) {
				return
			}
		}
	}
}
