// Package rename orchestrates a single renaming run: it reads lookup
// requests, resolves them through one registry and writes the manifest.
package rename

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/eduardolat/shortclass/internal/alphabet"
	"github.com/eduardolat/shortclass/internal/config"
	"github.com/eduardolat/shortclass/internal/lookup"
	"github.com/eduardolat/shortclass/internal/manifest"
	"github.com/eduardolat/shortclass/internal/nanoid"
	"github.com/eduardolat/shortclass/internal/registry"
	"github.com/eduardolat/shortclass/internal/version"
)

// Renamer handles the renaming process
type Renamer struct {
	cfg          *config.Config
	logger       *slog.Logger
	fileWriter   manifest.WriterProvider
	randomPrefix func(a *alphabet.Alphabet, n int) (string, error)
	dryRun       bool
	timeNow      func() time.Time
}

// New creates a new Renamer
func New(cfg *config.Config, logger *slog.Logger, dryRun bool) *Renamer {
	return &Renamer{
		cfg:          cfg,
		logger:       logger,
		fileWriter:   manifest.New(),
		randomPrefix: nanoid.LeadingSafe,
		dryRun:       dryRun,
		timeNow:      time.Now,
	}
}

// Result contains the outcome of a run
type Result struct {
	// Requests is the number of valid requests read
	Requests int
	// Assigned is the number of new tokens handed out
	Assigned int
	// Reused is the number of requests answered from the cache
	Reused int
	// DiscardedLines is the number of malformed input lines
	DiscardedLines int
	// Prefix is the effective prefix, including a generated random prefix
	Prefix string
	// LastID is the last undecorated token drawn
	LastID string
	// Changed indicates whether the manifest file was rewritten
	Changed bool
	// OutputPath is the manifest path, empty in dry-run mode
	OutputPath string
	// Registry holds every assignment made during the run
	Registry *registry.Registry
}

// Run reads requests from input, resolves every one of them and writes the
// manifest to outputPath. Cancellation is checked between requests.
func (r *Renamer) Run(ctx context.Context, input io.Reader, outputPath string) (*Result, error) {
	start := r.timeNow()
	defer func() {
		r.logger.Debug("rename run finished",
			"duration_ms", time.Since(start).Milliseconds())
	}()

	prefix, err := r.resolvePrefix()
	if err != nil {
		return nil, err
	}

	reg, err := registry.New(r.cfg.RegistryOptions(prefix), r.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create registry: %w", err)
	}

	parsed, err := lookup.Parse(input)
	if err != nil {
		return nil, fmt.Errorf("failed to read lookup requests: %w", err)
	}

	r.logger.Info("read lookup requests",
		"requests", len(parsed.Requests),
		"discarded_lines", parsed.DiscardedLines)

	result := &Result{
		Requests:       len(parsed.Requests),
		DiscardedLines: parsed.DiscardedLines,
		Prefix:         prefix,
		Registry:       reg,
	}

	for _, req := range parsed.Requests {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("rename interrupted at line %d: %w", req.LineNumber, err)
		}

		before := reg.Len()
		reg.Resolve(req.Scope, req.Name)
		if reg.Len() > before {
			result.Assigned++
		} else {
			result.Reused++
		}
	}

	result.LastID = reg.LastRaw()

	r.logger.Info("resolved lookup requests",
		"assigned", result.Assigned,
		"reused", result.Reused,
		"last_id", result.LastID)

	m := &manifest.Manifest{
		Generator: version.UserAgent(),
		Alphabet:  r.cfg.GetAlphabet(),
		Prefix:    prefix,
		Suffix:    r.cfg.Suffix,
		LastID:    result.LastID,
		Scopes:    reg.Snapshot(),
	}

	content, err := m.Marshal()
	if err != nil {
		return nil, err
	}

	if r.dryRun {
		r.logger.Info("dry-run: would write manifest",
			"path", outputPath,
			"tokens", reg.Len())
		r.logger.Debug("dry-run: manifest content",
			"content", string(content))
		return result, nil
	}

	writeResult, err := r.fileWriter.WriteAtomic(outputPath, content)
	if err != nil {
		return nil, fmt.Errorf("failed to write manifest: %w", err)
	}

	result.Changed = writeResult.Changed
	result.OutputPath = writeResult.Path

	if writeResult.Changed {
		r.logger.Info("updated manifest",
			"path", writeResult.Path,
			"tokens", reg.Len())
	} else {
		r.logger.Info("manifest unchanged",
			"path", writeResult.Path)
	}

	return result, nil
}

// resolvePrefix returns the configured prefix, or a fresh random one when
// random_prefix_length is set.
func (r *Renamer) resolvePrefix() (string, error) {
	if !r.cfg.HasRandomPrefix() {
		return r.cfg.Prefix, nil
	}

	a, err := alphabet.New(r.cfg.GetAlphabet(), r.cfg.GetDisallowedLeading())
	if err != nil {
		return "", fmt.Errorf("failed to create alphabet: %w", err)
	}

	prefix, err := r.randomPrefix(a, r.cfg.RandomPrefixLength)
	if err != nil {
		return "", fmt.Errorf("failed to generate random prefix: %w", err)
	}

	r.logger.Info("generated random prefix", "prefix", prefix)
	return prefix, nil
}
