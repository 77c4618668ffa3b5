// Package sequence enumerates short, unique tokens over an alphabet.
//
// Tokens are produced by a growing mixed-radix counter whose leftmost
// position varies fastest and is restricted to leading-safe characters.
// Every token of a given length is emitted before the first token of the
// next length, so the shortest tokens are used up first:
//
//	a, b, c, aa, ba, ca, ab, bb, cb, ac, bc, cc, aaa, ...
package sequence

import (
	"errors"
	"fmt"
	"strings"

	"github.com/eduardolat/shortclass/internal/alphabet"
)

// initialCapacity covers tokens far beyond any realistic build size
const initialCapacity = 8

var (
	// ErrUnknownCharacter indicates a token contains a character outside the alphabet
	ErrUnknownCharacter = errors.New("token contains a character outside the alphabet")
	// ErrUnsafeLeading indicates a token starts with a disallowed-leading character
	ErrUnsafeLeading = errors.New("token starts with a disallowed character")
)

// Generator produces tokens in enumeration order.
// It is not safe for concurrent use.
type Generator struct {
	alphabet *alphabet.Alphabet
	// counters[0] is the leading position
	counters []int
	issued   uint64
}

// New creates a Generator that has not produced anything yet
func New(a *alphabet.Alphabet) *Generator {
	return &Generator{
		alphabet: a,
		counters: make([]int, 0, initialCapacity),
	}
}

// Resume creates a Generator positioned on last, so the first call to Next
// returns the token that follows last. An empty last is the same as New.
func Resume(a *alphabet.Alphabet, last string) (*Generator, error) {
	g := New(a)
	if last == "" {
		return g, nil
	}

	for i, r := range []rune(last) {
		idx := a.Index(r)
		if idx == -1 {
			return nil, fmt.Errorf("%w: %q in %q", ErrUnknownCharacter, r, last)
		}
		if i == 0 && !a.IsLeadingSafe(idx) {
			return nil, fmt.Errorf("%w: %q", ErrUnsafeLeading, last)
		}
		g.counters = append(g.counters, idx)
	}

	return g, nil
}

// Next advances the counter and returns the new token
func (g *Generator) Next() string {
	g.advance()
	g.issued++
	return g.render()
}

// Current returns the last token produced, or "" if nothing was produced yet
func (g *Generator) Current() string {
	return g.render()
}

// Issued returns how many tokens this Generator has produced
func (g *Generator) Issued() uint64 {
	return g.issued
}

func (g *Generator) advance() {
	lastDigit := g.alphabet.Len() - 1
	firstSafe := g.alphabet.FirstLeadingSafe()

	for i := range g.counters {
		if i == 0 {
			if next := g.alphabet.NextLeadingSafe(g.counters[0] + 1); next != -1 {
				g.counters[0] = next
				return
			}
			g.counters[0] = firstSafe
			continue
		}

		if g.counters[i] < lastDigit {
			g.counters[i]++
			return
		}
		g.counters[i] = 0
	}

	// Every position rolled over: the leading position already holds the
	// first leading-safe character and every trailing position is zero.
	g.counters = append(g.counters, 0)
	g.counters[0] = firstSafe
}

func (g *Generator) render() string {
	var b strings.Builder
	b.Grow(len(g.counters))
	for _, c := range g.counters {
		b.WriteRune(g.alphabet.Char(c))
	}
	return b.String()
}
