// Package decorator adds a fixed prefix and suffix around generated tokens.
package decorator

import "unicode/utf8"

// SafetyMarker is prepended to a prefix that starts with a disallowed character
const SafetyMarker = "_"

// Decorator wraps raw tokens with a prefix and suffix.
// The zero value returns raw tokens unchanged.
type Decorator struct {
	prefix string
	suffix string
}

// New creates a Decorator. isDisallowed reports whether a character may not
// lead a token; when the prefix starts with such a character it is made safe
// with SafetyMarker. A nil isDisallowed treats every character as safe.
func New(prefix, suffix string, isDisallowed func(rune) bool) Decorator {
	if prefix != "" && isDisallowed != nil {
		first, _ := utf8.DecodeRuneInString(prefix)
		if isDisallowed(first) {
			prefix = SafetyMarker + prefix
		}
	}

	return Decorator{prefix: prefix, suffix: suffix}
}

// Wrap returns prefix + raw + suffix.
// Only the prefix is checked for leading safety; raw is leading-safe by construction.
func (d Decorator) Wrap(raw string) string {
	if d.prefix == "" && d.suffix == "" {
		return raw
	}
	return d.prefix + raw + d.suffix
}

// Prefix returns the effective prefix, including the safety marker if one was added
func (d Decorator) Prefix() string {
	return d.prefix
}

// Suffix returns the suffix
func (d Decorator) Suffix() string {
	return d.suffix
}
