package alphabet

import (
	"errors"
	"testing"
	"unicode/utf8"
)

// FuzzNew tests the New function with random alphabets
func FuzzNew(f *testing.F) {
	seeds := []struct {
		chars      string
		disallowed string
	}{
		{Default, DefaultDisallowed},
		{"", DefaultDisallowed},
		{"1234567890", DefaultDisallowed},
		{"abc", ""},
		{"aabb", DefaultDisallowed},
		{"a1b2c3d", DefaultDisallowed},
		{"-_", "-"},
		{"äöü123", DefaultDisallowed},
	}

	for _, seed := range seeds {
		f.Add(seed.chars, seed.disallowed)
	}

	f.Fuzz(func(t *testing.T, chars, disallowed string) {
		// New should never panic
		a, err := New(chars, disallowed)
		if err != nil {
			if !errors.Is(err, ErrEmptyAlphabet) && !errors.Is(err, ErrNoLeadingSafeCharacter) {
				t.Fatalf("unexpected error: %v", err)
			}
			return
		}

		if a.Len() == 0 || a.Len() > utf8.RuneCountInString(chars) {
			t.Fatalf("invalid length %d for %q", a.Len(), chars)
		}

		first := a.FirstLeadingSafe()
		if !a.IsLeadingSafe(first) {
			t.Fatalf("first leading-safe index %d is not leading-safe", first)
		}
		if a.IsDisallowed(a.Char(first)) {
			t.Fatalf("first leading-safe char %q is disallowed", a.Char(first))
		}

		seen := make(map[rune]bool)
		for i := 0; i < a.Len(); i++ {
			r := a.Char(i)
			if seen[r] {
				t.Fatalf("duplicate character %q", r)
			}
			seen[r] = true
			if a.Index(r) != i {
				t.Fatalf("index mismatch for %q", r)
			}
		}
	})
}
