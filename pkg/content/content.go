// Package content expands content globs against a filesystem and reads the
// matching sources that a just-in-time build scans for class usage.
package content

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/sync/errgroup"
)

// DefaultWorkers bounds concurrent file reads.
const DefaultWorkers = 8

// Source is one scanned file.
type Source struct {
	Path    string
	Content []byte
}

type options struct {
	workers int
}

// Option configures Scan.
type Option func(*options)

// WithWorkers sets the number of concurrent readers. Values below one are
// ignored.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.workers = n
		}
	}
}

// Clean normalizes a content glob for matching against an fs.FS: a leading
// "./" is dropped.
func Clean(pattern string) string {
	for strings.HasPrefix(pattern, "./") {
		pattern = strings.TrimPrefix(pattern, "./")
	}
	return pattern
}

// ErrOutsideRoot is returned for globs that can never match inside the
// scanned filesystem, such as "../templates/*.html" or "/srv/*.html".
var ErrOutsideRoot = errors.New("content glob must stay inside the config directory")

// ValidGlob reports whether pattern is a syntactically valid content glob.
// Supports "**" and brace alternatives.
func ValidGlob(pattern string) bool {
	p := Clean(pattern)
	if p == "" {
		return false
	}
	return doublestar.ValidatePattern(p)
}

// Contained reports whether pattern, once cleaned, is a relative path that
// an fs.FS rooted at the config directory can match.
func Contained(pattern string) bool {
	return fs.ValidPath(Clean(pattern))
}

// Match returns the sorted, de-duplicated paths in fsys matched by globs.
// Directories are skipped.
func Match(fsys fs.FS, globs []string) ([]string, error) {
	seen := make(map[string]struct{})
	var out []string
	for _, g := range globs {
		pattern := Clean(g)
		if !ValidGlob(pattern) {
			return nil, fmt.Errorf("invalid glob %q", g)
		}
		if !Contained(pattern) {
			return nil, fmt.Errorf("glob %q: %w", g, ErrOutsideRoot)
		}
		matches, err := doublestar.Glob(fsys, pattern)
		if err != nil {
			return nil, fmt.Errorf("glob %q: %w", g, err)
		}
		for _, m := range matches {
			m = path.Clean(m)
			if _, dup := seen[m]; dup {
				continue
			}
			info, err := fs.Stat(fsys, m)
			if err != nil {
				return nil, fmt.Errorf("stat %s: %w", m, err)
			}
			if info.IsDir() {
				continue
			}
			seen[m] = struct{}{}
			out = append(out, m)
		}
	}
	sort.Strings(out)
	return out, nil
}

// Scan reads every file matched by globs. Sources are returned ordered by
// path. The first read error cancels the remaining reads.
func Scan(ctx context.Context, fsys fs.FS, globs []string, opts ...Option) ([]Source, error) {
	o := options{workers: DefaultWorkers}
	for _, opt := range opts {
		opt(&o)
	}

	paths, err := Match(fsys, globs)
	if err != nil {
		return nil, err
	}

	sources := make([]Source, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for i, p := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			data, err := fs.ReadFile(fsys, p)
			if err != nil {
				return fmt.Errorf("read %s: %w", p, err)
			}
			sources[i] = Source{Path: p, Content: data}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return sources, nil
}
