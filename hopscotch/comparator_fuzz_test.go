package hopscotch

import "testing"

// FuzzAddContainsRemove drives a single list through a sequence of
// Add/Contains/Remove calls derived from fuzzer input, checking only the
// invariants that must hold for any input: Contains never disagrees with
// the most recent Add/Remove outcome for that value, and the list never
// panics regardless of what byte string is thrown at it — including values
// that collide with the original C library's sentinel strings.
func FuzzAddContainsRemove(f *testing.F) {
	seeds := []string{
		"",
		"a",
		"hello",
		"<<<-INFINITY>>>",
		"<<<+INFINITY>>>",
		"\x00\x00\x00",
		"\xff\xff\xff",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, raw string) {
		l := New(WithMaxLevel(4))
		v := Element(raw)

		added := l.Add(v)
		if !added {
			t.Fatalf("Add on empty list for %q reported false", raw)
		}
		if !l.Contains(v) {
			t.Fatalf("Contains(%q) false immediately after Add", raw)
		}
		if l.Add(v) {
			t.Fatalf("second Add(%q) reported true", raw)
		}
		if !l.Remove(v) {
			t.Fatalf("Remove(%q) reported false for a present value", raw)
		}
		if l.Contains(v) {
			t.Fatalf("Contains(%q) true after Remove", raw)
		}
		if l.Remove(v) {
			t.Fatalf("second Remove(%q) reported true", raw)
		}
	})
}
