package discovery

import "time"

// Result represents the result of a repository scan.
//
// Entries are paths relative to the search root, in traversal order. The
// order of sibling directories within the traversal is arbitrary. The same
// physical repository may appear twice: once through a symlink alias and
// once through its real subpath.
type Result struct {
	Entries  []string
	Scanned  int           // Number of directories visited
	Duration time.Duration // Time taken to scan
}
