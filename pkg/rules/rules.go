// Package rules loads the user's defaults file: rules that break ties when
// a codebase name matches more than one repository.
//
// The file is line-oriented. Blank lines and lines starting with '#' are
// ignored. A line containing '=' maps a codebase name to the relative path
// that should win ("proj = work/proj"). Any other line is a glob pattern
// matched against a candidate's full relative path; patterns are consulted
// in file order.
package rules

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
)

// Rules holds the parsed defaults file.
type Rules struct {
	Literals map[string]string
	Patterns []string
}

// Load parses the defaults file at path. A missing file yields empty rules,
// not an error.
func Load(path string) (*Rules, error) {
	r := &Rules{Literals: make(map[string]string)}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return r, nil
		}
		return nil, errors.Wrap(err, "failed to open defaults file")
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if name, target, ok := strings.Cut(line, "="); ok {
			r.Literals[strings.TrimSpace(name)] = strings.TrimSpace(target)
			continue
		}
		r.Patterns = append(r.Patterns, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read defaults file")
	}

	return r, nil
}

// Literal returns the configured relative path for name, if any.
func (r *Rules) Literal(name string) (string, bool) {
	target, ok := r.Literals[name]
	return target, ok
}

// MatchPattern returns the candidate selected by the first pattern that
// matches anything. Each pattern is tried against every candidate, in
// candidate order, before the next pattern is consulted.
func (r *Rules) MatchPattern(candidates []string) (string, bool) {
	for _, pattern := range r.Patterns {
		for _, candidate := range candidates {
			if ok, err := filepath.Match(pattern, candidate); err == nil && ok {
				return candidate, true
			}
		}
	}
	return "", false
}
