package fixcap

import "testing"

// checkTerminator verifies the core Text invariant: a zero byte sits at
// position Len() after every public operation, and the length never
// exceeds the capacity.
func checkTerminator(t *testing.T, txt *Text) {
	t.Helper()
	if txt.length > txt.Cap() {
		t.Fatalf("length %d exceeds capacity %d", txt.length, txt.Cap())
	}
	if txt.buf[txt.length] != 0 {
		t.Fatalf("no terminator at position %d (content %q)", txt.length, txt.String())
	}
}

func TestText_BasicOperations(t *testing.T) {
	s := NewText(10)
	checkTerminator(t, s)

	if !s.Empty() {
		t.Error("Empty returned false for new text")
	}
	if s.Cap() != 10 {
		t.Errorf("Cap returned %d, want 10", s.Cap())
	}
	if s.String() != "" {
		t.Errorf("String returned %q, want empty", s.String())
	}
	if !s.EqualString("") {
		t.Error("EqualString(\"\") returned false for empty text")
	}
	if s.EqualString(" ") {
		t.Error("EqualString(\" \") returned true for empty text")
	}

	s.AppendString("123")
	checkTerminator(t, s)
	if s.Empty() {
		t.Error("Empty returned true after append")
	}
	if s.String() != "123" {
		t.Errorf("String returned %q, want \"123\"", s.String())
	}

	s.Append(TextOf(10, "456"))
	checkTerminator(t, s)
	if !s.EqualString("123456") {
		t.Errorf("String returned %q, want \"123456\"", s.String())
	}
	if s.Len() != 6 {
		t.Errorf("Len returned %d, want 6", s.Len())
	}
	if s.EqualString("123") {
		t.Error("EqualString matched a proper prefix")
	}

	s.AppendByte('7')
	checkTerminator(t, s)
	if got := s.Back(); got != '7' {
		t.Errorf("Back returned %q, want '7'", got)
	}
	if got := s.Front(); got != '1' {
		t.Errorf("Front returned %q, want '1'", got)
	}
	if got := s.At(2); got != '3' {
		t.Errorf("At(2) returned %q, want '3'", got)
	}

	s.Clear()
	checkTerminator(t, s)
	if !s.Empty() || s.String() != "" {
		t.Error("Clear did not empty the text")
	}
}

func TestText_SilentTruncation(t *testing.T) {
	s := TextOf(10, "123456")

	// This append would exceed the capacity; the excess is dropped with no
	// signal and the result is exactly the capacity-length prefix.
	s.AppendString("7890a")
	checkTerminator(t, s)
	if !s.EqualString("1234567890") {
		t.Errorf("String returned %q, want \"1234567890\"", s.String())
	}
	if s.Len() != s.Cap() {
		t.Errorf("Len returned %d, want capacity %d", s.Len(), s.Cap())
	}

	// Appends to a full buffer are complete no-ops.
	s.AppendByte('x')
	s.AppendString("more")
	checkTerminator(t, s)
	if !s.EqualString("1234567890") {
		t.Errorf("append to full text changed content to %q", s.String())
	}

	// Construction truncates the same way.
	s2 := TextOf(3, "abcdef")
	checkTerminator(t, s2)
	if !s2.EqualString("abc") {
		t.Errorf("TextOf truncated to %q, want \"abc\"", s2.String())
	}

	s3 := TextFromBytes(4, []byte("xyzw123"))
	checkTerminator(t, s3)
	if !s3.EqualString("xyzw") {
		t.Errorf("TextFromBytes truncated to %q, want \"xyzw\"", s3.String())
	}
}

func TestText_CrossCapacityCopy(t *testing.T) {
	src := TextOf(16, "hello world")

	// Larger destination keeps everything.
	big := CopyText(32, src)
	checkTerminator(t, big)
	if !big.EqualText(src) {
		t.Errorf("CopyText(32) produced %q, want %q", big.String(), src.String())
	}

	// Smaller destination truncates silently.
	small := CopyText(5, src)
	checkTerminator(t, small)
	if !small.EqualString("hello") {
		t.Errorf("CopyText(5) produced %q, want \"hello\"", small.String())
	}
}

func TestText_RemoveLast(t *testing.T) {
	s := TextOf(8, "ab")

	s.RemoveLast()
	checkTerminator(t, s)
	if !s.EqualString("a") {
		t.Errorf("RemoveLast left %q, want \"a\"", s.String())
	}

	s.RemoveLast()
	checkTerminator(t, s)
	if !s.Empty() {
		t.Error("text not empty after removing all bytes")
	}

	// RemoveLast on empty is a silent no-op.
	s.RemoveLast()
	checkTerminator(t, s)
	if !s.Empty() {
		t.Error("RemoveLast on empty text changed state")
	}
}

func TestText_Resize(t *testing.T) {
	s := TextOf(8, "ab")

	s.Resize(5, '.')
	checkTerminator(t, s)
	if !s.EqualString("ab...") {
		t.Errorf("Resize grow produced %q, want \"ab...\"", s.String())
	}

	s.Resize(1, '.')
	checkTerminator(t, s)
	if !s.EqualString("a") {
		t.Errorf("Resize shrink produced %q, want \"a\"", s.String())
	}

	// Growth clamps silently at the capacity, like appends.
	s.Resize(100, 'z')
	checkTerminator(t, s)
	if !s.EqualString("azzzzzzz") {
		t.Errorf("Resize past capacity produced %q, want \"azzzzzzz\"", s.String())
	}

	mustFault(t, ErrOutOfRange, func() { s.Resize(-1, ' ') })
}

func TestText_CaseConversion(t *testing.T) {
	s := TextOf(32, "Hello, World! 123 [~]")

	lower := s.ToLower()
	checkTerminator(t, lower)
	if !lower.EqualString("hello, world! 123 [~]") {
		t.Errorf("ToLower produced %q", lower.String())
	}

	upper := s.ToUpper()
	checkTerminator(t, upper)
	if !upper.EqualString("HELLO, WORLD! 123 [~]") {
		t.Errorf("ToUpper produced %q", upper.String())
	}

	// The receiver is never modified.
	if !s.EqualString("Hello, World! 123 [~]") {
		t.Errorf("case conversion mutated the receiver: %q", s.String())
	}

	// Lower then upper round-trips alphabetic case; non-alphabetic and
	// non-ASCII bytes pass through both directions unchanged.
	mixed := TextOf(16, "aZ9-\x80\xff")
	if !mixed.ToLower().ToUpper().EqualString("AZ9-\x80\xff") {
		t.Errorf("round trip produced %q", mixed.ToLower().ToUpper().String())
	}
	if !mixed.ToUpper().ToLower().EqualString("az9-\x80\xff") {
		t.Errorf("round trip produced %q", mixed.ToUpper().ToLower().String())
	}
}

func TestText_Concat(t *testing.T) {
	a := TextOf(4, "abcd")
	b := TextOf(3, "efg")

	// Result capacity is the sum, so nothing can be lost.
	c := Concat(a, b)
	checkTerminator(t, c)
	if c.Cap() != 7 {
		t.Errorf("Concat capacity = %d, want 7", c.Cap())
	}
	if !c.EqualString("abcdefg") {
		t.Errorf("Concat produced %q, want \"abcdefg\"", c.String())
	}

	// Concatenating with a plain string keeps the left capacity and can
	// therefore truncate.
	d := ConcatString(a, "XY")
	checkTerminator(t, d)
	if d.Cap() != 4 {
		t.Errorf("ConcatString capacity = %d, want 4", d.Cap())
	}
	if !d.EqualString("abcd") {
		t.Errorf("ConcatString produced %q, want \"abcd\"", d.String())
	}

	e := ConcatString(TextOf(8, "ab"), "cd")
	checkTerminator(t, e)
	if !e.EqualString("abcd") {
		t.Errorf("ConcatString produced %q, want \"abcd\"", e.String())
	}

	f := StringConcat("->", b)
	checkTerminator(t, f)
	if !f.EqualString("->e") {
		t.Errorf("StringConcat produced %q, want \"->e\"", f.String())
	}
}

func TestText_Assignment(t *testing.T) {
	s := TextOf(6, "first")

	s.SetString("second!")
	checkTerminator(t, s)
	if !s.EqualString("second") {
		t.Errorf("SetString produced %q, want \"second\"", s.String())
	}

	s.SetText(TextOf(3, "ok"))
	checkTerminator(t, s)
	if !s.EqualString("ok") {
		t.Errorf("SetText produced %q, want \"ok\"", s.String())
	}
}

func TestText_Views(t *testing.T) {
	s := TextOf(8, "abc")

	b := s.Bytes()
	if string(b) != "abc" {
		t.Errorf("Bytes returned %q, want \"abc\"", b)
	}
	if cap(b) != len(b) {
		t.Error("Bytes window allows appends past the live length")
	}

	z := s.Terminated()
	if len(z) != s.Len()+1 {
		t.Fatalf("Terminated length = %d, want %d", len(z), s.Len()+1)
	}
	if z[len(z)-1] != 0 {
		t.Error("Terminated does not end with a zero byte")
	}
}

func TestText_Faults(t *testing.T) {
	s := TextOf(8, "ab")

	mustFault(t, ErrOutOfRange, func() { s.At(2) })
	mustFault(t, ErrOutOfRange, func() { s.At(-1) })

	empty := NewText(4)
	mustFault(t, ErrEmpty, func() { empty.Back() })
	mustFault(t, ErrOutOfRange, func() { empty.Front() })

	mustFault(t, ErrBadCapacity, func() { NewText(0) })
	mustFault(t, ErrBadCapacity, func() { WrapText([]byte{0}) })
}

func TestText_WrapText(t *testing.T) {
	var backing [9]byte
	s := WrapText(backing[:])

	if s.Cap() != 8 {
		t.Fatalf("Cap returned %d, want 8", s.Cap())
	}

	s.AppendString("hi")
	checkTerminator(t, s)
	if backing[0] != 'h' || backing[1] != 'i' || backing[2] != 0 {
		t.Error("appends did not land terminated in the caller's storage")
	}
}

func TestText_CloneIndependence(t *testing.T) {
	a := TextOf(8, "abc")
	b := a.Clone()

	b.AppendString("def")
	checkTerminator(t, a)
	checkTerminator(t, b)
	if !a.EqualString("abc") {
		t.Errorf("mutating a clone affected the original: %q", a.String())
	}
	if !b.EqualString("abcdef") {
		t.Errorf("clone content = %q, want \"abcdef\"", b.String())
	}
}

func TestText_Iteration(t *testing.T) {
	s := TextOf(8, "xyz")

	for pass := 0; pass < 2; pass++ {
		collected := make([]byte, 0, 3)
		for _, c := range s.All() {
			collected = append(collected, c)
		}
		if string(collected) != "xyz" {
			t.Errorf("pass %d: iteration collected %q, want \"xyz\"", pass, collected)
		}
	}
}

// TestText_InvariantUnderRandomOps hammers a Text with random operations and
// checks the terminator invariant after every single one.
func TestText_InvariantUnderRandomOps(t *testing.T) {
	s := NewText(13)

	ops := []func(i int){
		func(i int) { s.AppendByte(byte('a' + i%26)) },
		func(i int) { s.AppendString("abc") },
		func(i int) { s.RemoveLast() },
		func(i int) { s.Resize(i%17, '-') },
		func(i int) { s.Clear() },
		func(i int) { s.SetString("reset") },
	}

	// Deterministic mix; the exact sequence is irrelevant, only the
	// invariant matters.
	for i := 0; i < 5000; i++ {
		ops[(i*7+i/3)%len(ops)](i)
		checkTerminator(t, s)
	}
}
