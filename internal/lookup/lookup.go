// Package lookup parses the line-oriented stream of (scope, name) requests.
package lookup

import (
	"bufio"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"
)

// maxLineSize bounds a single request line; scopes are file paths
const maxLineSize = 1024 * 1024

// Request is a single (scope, name) pair to resolve
type Request struct {
	// Scope is an opaque grouping key, usually a source file path
	Scope string
	// Name is the original symbolic name
	Name string
	// LineNumber is the original line number (1-indexed)
	LineNumber int
}

// ParseResult contains the results of parsing a request stream
type ParseResult struct {
	// Requests are the valid requests, in input order
	Requests []Request
	// DiscardedLines is the count of lines that were discarded
	DiscardedLines int
}

// Parse parses requests from a reader.
// Each line holds a scope followed by a name, separated by whitespace.
// The name is the last field; everything before it is the scope, so scopes
// may contain spaces.
// - Empty lines are skipped
// - Comment lines (starting with #) are skipped
// - Lines with a single field are discarded
func Parse(r io.Reader) (*ParseResult, error) {
	result := &ParseResult{
		Requests: make([]Request, 0),
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	lineNumber := 0

	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		scope, name, ok := splitLine(line)
		if !ok {
			result.DiscardedLines++
			continue
		}

		result.Requests = append(result.Requests, Request{
			Scope:      scope,
			Name:       name,
			LineNumber: lineNumber,
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

// ParseString is a convenience function to parse requests from a string
func ParseString(content string) (*ParseResult, error) {
	return Parse(strings.NewReader(content))
}

// splitLine splits a trimmed line into scope and name
func splitLine(line string) (scope, name string, ok bool) {
	i := strings.LastIndexFunc(line, unicode.IsSpace)
	if i == -1 {
		return "", "", false
	}

	_, size := utf8.DecodeRuneInString(line[i:])
	scope = strings.TrimRightFunc(line[:i], unicode.IsSpace)
	name = line[i+size:]
	return scope, name, true
}
