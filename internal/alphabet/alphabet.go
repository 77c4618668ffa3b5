// Package alphabet validates the character sets used to enumerate tokens.
package alphabet

import (
	"errors"
	"strings"
)

const (
	// Default is the 62 alphanumeric characters: lowercase, uppercase, digits
	Default = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	// DefaultDisallowed is the default set of characters that may not lead a token
	DefaultDisallowed = "0123456789"
)

var (
	// ErrEmptyAlphabet indicates the alphabet has no characters
	ErrEmptyAlphabet = errors.New("alphabet must contain at least one character")
	// ErrNoLeadingSafeCharacter indicates every character is disallowed in the leading position
	ErrNoLeadingSafeCharacter = errors.New("alphabet must contain at least one character allowed in the leading position")
)

// Alphabet is a validated, ordered set of distinct characters.
// Index i of the alphabet is digit i of the numeral system.
type Alphabet struct {
	chars      []rune
	index      map[rune]int
	disallowed map[rune]struct{}
	safe       []bool
	firstSafe  int
	lastSafe   int
}

// Validate checks chars against the default disallowed-leading set (digits).
func Validate(chars string) (*Alphabet, error) {
	return New(chars, DefaultDisallowed)
}

// New validates chars and returns an Alphabet whose leading position
// excludes every character in disallowed.
//
// Duplicate characters are dropped, keeping the first occurrence.
// Returns ErrEmptyAlphabet if chars is empty.
// Returns ErrNoLeadingSafeCharacter if every character is in disallowed.
func New(chars, disallowed string) (*Alphabet, error) {
	if chars == "" {
		return nil, ErrEmptyAlphabet
	}

	a := &Alphabet{
		chars:      make([]rune, 0, len(chars)),
		index:      make(map[rune]int, len(chars)),
		disallowed: make(map[rune]struct{}, len(disallowed)),
		firstSafe:  -1,
		lastSafe:   -1,
	}

	for _, r := range disallowed {
		a.disallowed[r] = struct{}{}
	}

	for _, r := range chars {
		if _, seen := a.index[r]; seen {
			continue
		}
		i := len(a.chars)
		a.index[r] = i
		a.chars = append(a.chars, r)

		safe := !a.IsDisallowed(r)
		a.safe = append(a.safe, safe)
		if safe {
			if a.firstSafe == -1 {
				a.firstSafe = i
			}
			a.lastSafe = i
		}
	}

	if a.firstSafe == -1 {
		return nil, ErrNoLeadingSafeCharacter
	}

	return a, nil
}

// Len returns the number of distinct characters
func (a *Alphabet) Len() int {
	return len(a.chars)
}

// Char returns the character at index i
func (a *Alphabet) Char(i int) rune {
	return a.chars[i]
}

// Index returns the position of r in the alphabet, or -1 if absent
func (a *Alphabet) Index(r rune) int {
	if i, ok := a.index[r]; ok {
		return i
	}
	return -1
}

// IsDisallowed reports whether r may not lead a token.
// r does not need to belong to the alphabet.
func (a *Alphabet) IsDisallowed(r rune) bool {
	_, ok := a.disallowed[r]
	return ok
}

// IsLeadingSafe reports whether the character at index i may lead a token
func (a *Alphabet) IsLeadingSafe(i int) bool {
	return i >= 0 && i < len(a.safe) && a.safe[i]
}

// FirstLeadingSafe returns the index of the first leading-safe character
func (a *Alphabet) FirstLeadingSafe() int {
	return a.firstSafe
}

// LastLeadingSafe returns the index of the last leading-safe character
func (a *Alphabet) LastLeadingSafe() int {
	return a.lastSafe
}

// NextLeadingSafe returns the index of the first leading-safe character
// at or after from, or -1 if there is none.
func (a *Alphabet) NextLeadingSafe(from int) int {
	if from < 0 {
		from = 0
	}
	for i := from; i < len(a.safe); i++ {
		if a.safe[i] {
			return i
		}
	}
	return -1
}

// LeadingSafeChars returns the leading-safe characters in alphabet order
func (a *Alphabet) LeadingSafeChars() string {
	var b strings.Builder
	for i, r := range a.chars {
		if a.safe[i] {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Disallowed returns the disallowed-leading characters present in the alphabet
func (a *Alphabet) Disallowed() string {
	var b strings.Builder
	for i, r := range a.chars {
		if !a.safe[i] {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// String returns the deduplicated alphabet
func (a *Alphabet) String() string {
	return string(a.chars)
}
