package discovery

import (
	"os"
	"path/filepath"
	"time"

	"thoreinstein.com/hop/pkg/git"
)

// Scanner walks a directory tree for git repository roots.
//
// Symlinks to sibling subdirectories act as aliases: when the symlink name
// is strictly shorter than the target name, the target is reached only
// through the symlink, and any repository found that way is recorded under
// both spellings.
type Scanner struct {
	Root string

	scanned int
}

// NewScanner creates a scanner for the given search root.
func NewScanner(root string) *Scanner {
	return &Scanner{Root: root}
}

// Scan walks the whole tree under Root. It either completes fully or fails
// with the first I/O error; no partial result is ever returned.
func (s *Scanner) Scan() (*Result, error) {
	start := time.Now()
	s.scanned = 0

	var entries []string
	if _, err := s.walk(s.Root, "", &entries); err != nil {
		return nil, err
	}

	return &Result{
		Entries:  entries,
		Scanned:  s.scanned,
		Duration: time.Since(start),
	}, nil
}

// walk recurses into dir, whose path relative to the root is rel. It
// reports whether dir is itself a repository root.
func (s *Scanner) walk(dir, rel string, entries *[]string) (bool, error) {
	s.scanned++

	kind, err := git.Classify(dir)
	if err != nil {
		return false, err
	}
	switch kind {
	case git.KindRepo:
		*entries = append(*entries, rel)
		return true, nil
	case git.KindDeadEnd:
		return false, nil
	}

	children, err := os.ReadDir(dir)
	if err != nil {
		return false, err
	}

	subdirs := make(map[string]struct{})
	aliases := make(map[string]string) // symlink name -> target name
	for _, child := range children {
		switch {
		case child.IsDir():
			subdirs[child.Name()] = struct{}{}
		case child.Type()&os.ModeSymlink != 0:
			target, err := os.Readlink(filepath.Join(dir, child.Name()))
			if err != nil {
				return false, err
			}
			// Only useful as an alias if it shortens the path.
			if len(child.Name()) < len(target) {
				aliases[child.Name()] = target
			}
		}
	}

	// Drop aliases whose target is not an existing sibling subdirectory.
	for name, target := range aliases {
		if _, ok := subdirs[target]; !ok {
			delete(aliases, name)
		}
	}

	// Aliased targets are reached exclusively through their alias.
	for _, target := range aliases {
		delete(subdirs, target)
	}

	for name, target := range aliases {
		leaf, err := s.walk(filepath.Join(dir, name), joinRel(rel, name), entries)
		if err != nil {
			return false, err
		}
		// Record the canonical spelling too, so both resolve.
		if leaf {
			*entries = append(*entries, joinRel(rel, target))
		}
	}

	for name := range subdirs {
		if _, err := s.walk(filepath.Join(dir, name), joinRel(rel, name), entries); err != nil {
			return false, err
		}
	}

	return false, nil
}

func joinRel(rel, name string) string {
	if rel == "" {
		return name
	}
	return rel + "/" + name
}
