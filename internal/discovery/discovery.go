package discovery

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"tsuika/internal/eventbus"
)

// DefaultMaxDepth bounds how far below a root the scanner descends
const DefaultMaxDepth = 5

// ItemFileExt is the extension of item files
const ItemFileExt = ".toml"

// Directories that never hold item files
var skipDirs = map[string]bool{
	"node_modules": true,
	"vendor":       true,
	"dist":         true,
	"build":        true,
	"target":       true,
	"__pycache__":  true,
}

// Scanner finds item files below one or more directories
type Scanner struct {
	bus      eventbus.EventBus
	MaxDepth int
}

// NewScanner creates a scanner; bus may be nil
func NewScanner(bus eventbus.EventBus) *Scanner {
	return &Scanner{
		bus:      bus,
		MaxDepth: DefaultMaxDepth,
	}
}

// Scan walks every root concurrently and returns the item files found, sorted
// by path. A file reached through overlapping roots is listed once. A root that is itself a file is returned as is. Unreadable entries
// below a root are logged and skipped; a cancelled context stops the walk.
func (s *Scanner) Scan(ctx context.Context, roots []string) ([]string, error) {
	results := make([][]string, len(roots))

	g, gctx := errgroup.WithContext(ctx)
	for i, root := range roots {
		g.Go(func() error {
			files, err := s.scanRoot(gctx, filepath.Clean(root))
			results[i] = files
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var found []string
	for _, files := range results {
		found = append(found, files...)
	}
	sort.Strings(found)
	found = slices.Compact(found)

	s.publish(eventbus.ScanCompletedEvent{Roots: roots, FilesFound: len(found)})
	return found, nil
}

// scanRoot walks a single root
func (s *Scanner) scanRoot(ctx context.Context, root string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		// Check context cancellation
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if err != nil {
			if path == root {
				return err
			}
			log.Printf("Error walking path %s: %v", path, err)
			return nil // Continue walking
		}

		if !d.IsDir() {
			if path == root || strings.EqualFold(filepath.Ext(path), ItemFileExt) {
				files = append(files, path)
				s.publish(eventbus.ItemFileFoundEvent{Path: path})
			}
			return nil
		}

		if path == root {
			return nil
		}

		// Check depth limit
		relPath, _ := filepath.Rel(root, path)
		if strings.Count(relPath, string(filepath.Separator)) >= s.MaxDepth {
			return filepath.SkipDir
		}

		// Skip hidden and well-known build directories
		name := d.Name()
		if strings.HasPrefix(name, ".") || skipDirs[name] {
			return filepath.SkipDir
		}
		return nil
	})

	if err != nil {
		if !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
			s.publish(eventbus.ErrorEvent{
				Message: fmt.Sprintf("Failed to scan %s", root),
				Err:     err,
			})
		}
		return nil, fmt.Errorf("failed to scan %s: %w", root, err)
	}
	return files, nil
}

func (s *Scanner) publish(event eventbus.DomainEvent) {
	if s.bus != nil {
		s.bus.Publish(event)
	}
}
