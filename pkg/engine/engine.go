// Package engine connects configuration loading, content scanning and CSS
// generation into one build.
package engine

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/dkoosis/windcfg/pkg/config"
	"github.com/dkoosis/windcfg/pkg/content"
)

// Generator produces stylesheet output from a resolved configuration. In
// just-in-time mode sources holds the scanned content files; in classic
// mode it is empty.
type Generator interface {
	Generate(ctx context.Context, cfg *config.BuildConfig, sources []content.Source) (string, error)
}

// GeneratorFunc adapts a function to Generator.
type GeneratorFunc func(ctx context.Context, cfg *config.BuildConfig, sources []content.Source) (string, error)

func (f GeneratorFunc) Generate(ctx context.Context, cfg *config.BuildConfig, sources []content.Source) (string, error) {
	return f(ctx, cfg, sources)
}

// Result is the outcome of a successful build.
type Result struct {
	Config  *config.BuildConfig
	Sources []content.Source
	Output  string
}

// Pipeline runs one build. Loader, FS and Generator are required; FS roots
// the content globs.
type Pipeline struct {
	Loader    *config.Loader
	FS        fs.FS
	Generator Generator
	Workers   int
}

var errIncomplete = errors.New("pipeline is missing a loader, filesystem or generator")

// Run loads raw, scans content in just-in-time mode and runs the generator.
// A configuration error is returned as is, before any scanning or
// generation happens.
func (p Pipeline) Run(ctx context.Context, raw map[string]any) (*Result, error) {
	if p.Loader == nil || p.FS == nil || p.Generator == nil {
		return nil, errIncomplete
	}

	cfg, err := p.Loader.Load(raw)
	if err != nil {
		return nil, err
	}

	var sources []content.Source
	if cfg.Mode() == config.JustInTime {
		sources, err = content.Scan(ctx, p.FS, cfg.ContentGlobs(), content.WithWorkers(p.Workers))
		if err != nil {
			return nil, fmt.Errorf("scan content: %w", err)
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out, err := p.Generator.Generate(ctx, cfg, sources)
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}
	return &Result{Config: cfg, Sources: sources, Output: out}, nil
}
