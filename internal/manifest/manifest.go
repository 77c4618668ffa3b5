// Package manifest renders and atomically writes the name -> token manifest.
package manifest

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/eduardolat/shortclass/internal/nanoid"
)

const (
	// FileMode is the permission mode for manifest files (0644)
	FileMode = 0644
	// TempFilePrefix is the prefix for temporary files
	TempFilePrefix = ".shortclass_"
)

// Manifest is the document written after a run
type Manifest struct {
	Generator string `yaml:"generator"`
	Alphabet  string `yaml:"alphabet"`
	Prefix    string `yaml:"prefix,omitempty"`
	Suffix    string `yaml:"suffix,omitempty"`
	// LastID is the last undecorated token drawn; feed it back as last_id to continue the sequence
	LastID string                       `yaml:"last_id,omitempty"`
	Scopes map[string]map[string]string `yaml:"scopes"`
}

// Marshal renders the manifest as YAML.
// Map keys are sorted, so equal manifests render to equal bytes.
func (m *Manifest) Marshal() ([]byte, error) {
	if m.Scopes == nil {
		m.Scopes = map[string]map[string]string{}
	}

	var buf bytes.Buffer
	buf.WriteString("# Generated by ShortClass. Do not edit.\n")

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(m); err != nil {
		return nil, fmt.Errorf("failed to encode manifest: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode manifest: %w", err)
	}

	return buf.Bytes(), nil
}

// Read loads a manifest from path
func Read(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}

	return &m, nil
}

// Writer handles atomic file writes
type Writer struct {
	// idGenerator allows for dependency injection in tests
	idGenerator func() (string, error)
}

// New creates a new Writer
func New() *Writer {
	return &Writer{
		idGenerator: nanoid.Generate,
	}
}

// NewWithDeps creates a new Writer with custom dependencies (for testing)
func NewWithDeps(idGen func() (string, error)) *Writer {
	return &Writer{
		idGenerator: idGen,
	}
}

// WriteResult contains information about a write operation
type WriteResult struct {
	// Changed indicates whether the file content was different
	Changed bool
	// Path is the final path of the written file
	Path string
}

// WriteAtomic atomically writes content to path:
// 1. Create temp file in the same directory
// 2. Write content and fsync
// 3. Atomic rename
//
// An existing file with identical content is left untouched.
func (w *Writer) WriteAtomic(path string, content []byte) (*WriteResult, error) {
	existingContent, err := os.ReadFile(path)
	if err == nil && bytes.Equal(existingContent, content) {
		return &WriteResult{Changed: false, Path: path}, nil
	}

	id, err := w.idGenerator()
	if err != nil {
		return nil, fmt.Errorf("failed to generate temp file ID: %w", err)
	}
	dir := filepath.Dir(path)
	tempPath := filepath.Join(dir, TempFilePrefix+id)

	tempFile, err := os.OpenFile(tempPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC|os.O_EXCL, FileMode)
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}

	// Ensure cleanup on error
	success := false
	defer func() {
		if !success {
			_ = tempFile.Close()
			_ = os.Remove(tempPath)
		}
	}()

	// Set permissions explicitly (in case umask affected file creation)
	if err := tempFile.Chmod(FileMode); err != nil {
		return nil, fmt.Errorf("failed to set temp file permissions: %w", err)
	}

	if _, err := tempFile.Write(content); err != nil {
		return nil, fmt.Errorf("failed to write content: %w", err)
	}

	if err := tempFile.Sync(); err != nil {
		return nil, fmt.Errorf("failed to sync temp file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return nil, fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		return nil, fmt.Errorf("failed to rename temp file: %w", err)
	}

	success = true
	return &WriteResult{Changed: true, Path: path}, nil
}

// WriterProvider is an interface for atomic file writing
type WriterProvider interface {
	WriteAtomic(path string, content []byte) (*WriteResult, error)
}
