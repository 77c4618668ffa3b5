// Package registry assigns and remembers one token per (scope, name) pair.
package registry

import (
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/eduardolat/shortclass/internal/alphabet"
	"github.com/eduardolat/shortclass/internal/decorator"
	"github.com/eduardolat/shortclass/internal/sequence"
)

// Options configures a Registry
type Options struct {
	// Alphabet is the ordered set of token characters
	Alphabet string
	// DisallowedLeading lists characters that may not start a token
	DisallowedLeading string
	// Prefix is prepended to every token
	Prefix string
	// Suffix is appended to every token
	Suffix string
	// LastID resumes enumeration after this undecorated token
	LastID string
}

// DefaultOptions returns the 62-character alphanumeric alphabet with digits
// disallowed in the leading position and no decoration.
func DefaultOptions() Options {
	return Options{
		Alphabet:          alphabet.Default,
		DisallowedLeading: alphabet.DefaultDisallowed,
	}
}

// Entry is a single assignment
type Entry struct {
	Scope string
	Name  string
	Token string
}

// Registry maps (scope, name) pairs to tokens. Tokens are unique across all
// scopes. Resolve is safe for concurrent use.
type Registry struct {
	mu        sync.Mutex
	generator *sequence.Generator
	decorator decorator.Decorator
	scopes    map[string]map[string]string
	entries   []Entry
	logger    *slog.Logger
}

// New validates opts and creates an empty Registry.
// A nil logger discards log output.
func New(opts Options, logger *slog.Logger) (*Registry, error) {
	a, err := alphabet.New(opts.Alphabet, opts.DisallowedLeading)
	if err != nil {
		return nil, fmt.Errorf("invalid alphabet: %w", err)
	}

	gen, err := sequence.Resume(a, opts.LastID)
	if err != nil {
		return nil, fmt.Errorf("invalid last id: %w", err)
	}

	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Registry{
		generator: gen,
		decorator: decorator.New(opts.Prefix, opts.Suffix, a.IsDisallowed),
		scopes:    make(map[string]map[string]string),
		logger:    logger,
	}, nil
}

// Resolve returns the token for name within scope, assigning the next token
// from the sequence the first time the pair is seen.
func (r *Registry) Resolve(scope, name string) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	names, ok := r.scopes[scope]
	if !ok {
		names = make(map[string]string)
		r.scopes[scope] = names
	}

	if token, ok := names[name]; ok {
		return token
	}

	token := r.decorator.Wrap(r.generator.Next())
	names[name] = token
	r.entries = append(r.entries, Entry{Scope: scope, Name: name, Token: token})

	r.logger.Debug("assigned token",
		"scope", scope,
		"name", name,
		"token", token)

	return token
}

// Lookup returns the token already assigned to name within scope, if any
func (r *Registry) Lookup(scope, name string) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	token, ok := r.scopes[scope][name]
	return token, ok
}

// Len returns the number of assigned tokens
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.entries)
}

// Entries returns every assignment in the order it was made
func (r *Registry) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Snapshot returns a copy of the scope -> name -> token mapping
func (r *Registry) Snapshot() map[string]map[string]string {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make(map[string]map[string]string, len(r.scopes))
	for scope, names := range r.scopes {
		if len(names) == 0 {
			continue
		}
		copied := make(map[string]string, len(names))
		for name, token := range names {
			copied[name] = token
		}
		out[scope] = copied
	}
	return out
}

// LastRaw returns the last undecorated token drawn from the sequence.
// Passing it as Options.LastID continues the enumeration where this Registry stopped.
func (r *Registry) LastRaw() string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.generator.Current()
}
