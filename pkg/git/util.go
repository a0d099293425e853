package git

import (
	"os"
	"path/filepath"
)

// DirKind classifies a directory by its .git entry.
type DirKind int

const (
	// KindNone means the directory has no .git entry at all.
	KindNone DirKind = iota
	// KindRepo means .git is a directory: this is a repository root.
	KindRepo
	// KindDeadEnd means .git exists but is not a directory, e.g. a
	// submodule gitlink file. Not a repository root and not worth
	// descending into.
	KindDeadEnd
)

// Classify inspects path's .git entry without following symlinks.
func Classify(path string) (DirKind, error) {
	info, err := os.Lstat(filepath.Join(path, ".git"))
	if err != nil {
		if os.IsNotExist(err) {
			return KindNone, nil
		}
		return KindNone, err
	}
	if info.IsDir() {
		return KindRepo, nil
	}
	return KindDeadEnd, nil
}
