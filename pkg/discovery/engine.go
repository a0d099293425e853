package discovery

import (
	"fmt"
	"os"
)

// Engine orchestrates repository discovery and caching for one search root.
type Engine struct {
	Root    string
	Cache   *Cache
	Rebuild bool // force a rescan even when the cache is valid
	Verbose bool
}

// NewEngine creates a discovery engine for root, caching at cachePath.
func NewEngine(root, cachePath string, rebuild, verbose bool) *Engine {
	return &Engine{
		Root:    root,
		Cache:   NewCache(cachePath),
		Rebuild: rebuild,
		Verbose: verbose,
	}
}

// Entries returns the repository set for the root and whether it came from
// the cache. A missing or stale cache triggers a fresh scan and rewrite.
func (e *Engine) Entries() ([]string, bool, error) {
	if !e.Rebuild {
		entries, err := e.Cache.Read(e.Root)
		if err != nil {
			return nil, false, err
		}
		if entries != nil {
			if e.Verbose {
				fmt.Fprintf(os.Stderr, "Using cached scan of %s (%d entries)\n", e.Root, len(entries))
			}
			return entries, true, nil
		}
	}

	entries, err := e.Rescan()
	return entries, false, err
}

// Rescan performs a fresh scan and rewrites the cache.
func (e *Engine) Rescan() ([]string, error) {
	result, err := NewScanner(e.Root).Scan()
	if err != nil {
		return nil, err
	}
	if e.Verbose {
		fmt.Fprintf(os.Stderr, "Scanned %d directories in %s (%d repositories)\n",
			result.Scanned, result.Duration, len(result.Entries))
	}
	if err := e.Cache.Write(e.Root, result.Entries); err != nil {
		return nil, err
	}
	return result.Entries, nil
}
