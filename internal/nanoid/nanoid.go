// Package nanoid provides NanoID generation for random identifiers.
package nanoid

import (
	"errors"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/eduardolat/shortclass/internal/alphabet"
)

const (
	// fileAlphabet contains only lowercase letters, used for temp file names
	fileAlphabet = "abcdefghijklmnopqrstuvwxyz"
	// idLength is the length of generated file IDs (26^6 = 308,915,776 combinations)
	idLength = 6
)

// ErrInvalidLength indicates a non-positive identifier length was requested
var ErrInvalidLength = errors.New("nanoid: length must be positive")

// Generate creates a new NanoID with 6 lowercase letters.
func Generate() (string, error) {
	return gonanoid.Generate(fileAlphabet, idLength)
}

// MustGenerate creates a new NanoID and panics on error.
// Use only when you're certain random generation won't fail.
func MustGenerate() string {
	id, err := Generate()
	if err != nil {
		panic(err)
	}
	return id
}

// LeadingSafe creates a random identifier of n characters drawn from a,
// whose first character is never a disallowed-leading character.
func LeadingSafe(a *alphabet.Alphabet, n int) (string, error) {
	if n <= 0 {
		return "", ErrInvalidLength
	}

	head, err := gonanoid.Generate(a.LeadingSafeChars(), 1)
	if err != nil {
		return "", err
	}
	if n == 1 {
		return head, nil
	}

	tail, err := gonanoid.Generate(a.String(), n-1)
	if err != nil {
		return "", err
	}

	return head + tail, nil
}
