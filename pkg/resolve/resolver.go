// Package resolve narrows a scanned repository set down to a single path.
package resolve

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	hoperrors "thoreinstein.com/hop/pkg/errors"
	"thoreinstein.com/hop/pkg/rules"
)

// Source abstracts "try cache, else scan" and reports whether the entries
// came from the cache, so the resolver knows when a rescan might help.
type Source interface {
	// Entries returns the repository set and whether it was cached.
	Entries() ([]string, bool, error)
	// Rescan forces a fresh scan, replacing the cache.
	Rescan() ([]string, error)
}

// Resolver applies the filtering and disambiguation pipeline to turn a
// query into exactly one path.
type Resolver struct {
	Root  string       // search root, joined with entries for display and output
	Rules *rules.Rules // user-configured tie-breaking, may be nil
	Out   io.Writer    // wildcard listings and numbered candidate lists
}

// New creates a resolver for the given search root.
func New(root string, r *rules.Rules, out io.Writer) *Resolver {
	return &Resolver{Root: root, Rules: r, Out: out}
}

// Resolve runs the pipeline and returns the final path. For the wildcard
// query it writes the unique basenames to Out and returns "".
func (r *Resolver) Resolve(src Source, q Query) (string, error) {
	entries, cached, err := src.Entries()
	if err != nil {
		return "", err
	}

	if q.wildcard() {
		return "", r.listBasenames(entries)
	}

	candidates := matchName(entries, q.Name)

	// The cache may predate a freshly cloned repository; rescan once
	// before giving up.
	if len(candidates) == 0 && cached {
		entries, err = src.Rescan()
		if err != nil {
			return "", err
		}
		candidates = matchName(entries, q.Name)
	}

	// A numeric filter picks straight from the candidate list.
	if idx, ok := parseIndex(q.Filter); ok {
		return r.selectIndex(candidates, idx, q)
	}

	if q.Filter != "" {
		candidates = filterPrefix(candidates, q.Name, q.Filter)
	}

	switch len(candidates) {
	case 0:
		return "", hoperrors.NewNotFoundError("no matches found")
	case 1:
		return r.render(candidates[0], q), nil
	}

	if chosen, ok := r.applyRules(q.Name, candidates); ok {
		return r.render(chosen, q), nil
	}

	r.printCandidates(candidates)
	fmt.Fprintf(r.Out, "hint: add '%s = %s' to your defaults file to resolve this automatically\n",
		q.Name, candidates[0])
	return "", hoperrors.NewAmbiguityError("multiple matches found", r.renderAll(candidates))
}

// matchName keeps entries whose final path component(s) equal name. This is
// a component-wise suffix match: "proj" matches "work/proj" but not
// "work/subproj", and "work/proj" is itself a valid name.
func matchName(entries []string, name string) []string {
	var matched []string
	suffix := "/" + name
	for _, entry := range entries {
		if entry == name || strings.HasSuffix(entry, suffix) {
			matched = append(matched, entry)
		}
	}
	return matched
}

// parseIndex reports whether filter is a numeric candidate index. Negative
// numbers fall through to the substring filter.
func parseIndex(filter string) (int, bool) {
	idx, err := strconv.Atoi(filter)
	if err != nil || idx < 0 {
		return 0, false
	}
	return idx, true
}

func (r *Resolver) selectIndex(candidates []string, idx int, q Query) (string, error) {
	if idx < 1 || idx > len(candidates) {
		r.printCandidates(candidates)
		return "", hoperrors.NewAmbiguityError(
			fmt.Sprintf("index %d out of range", idx), r.renderAll(candidates))
	}
	return r.render(candidates[idx-1], q), nil
}

// filterPrefix keeps candidates whose directory prefix (the entry with the
// matched name's trailing bytes removed) contains filter as a raw byte
// substring. Matching is byte-wise, not case- or encoding-aware.
func filterPrefix(candidates []string, name, filter string) []string {
	var kept []string
	for _, candidate := range candidates {
		prefix := candidate[:len(candidate)-len(name)]
		if strings.Contains(prefix, filter) {
			kept = append(kept, candidate)
		}
	}
	return kept
}

// applyRules consults the user's default rules: an exact-name literal
// first, then glob patterns in file order.
func (r *Resolver) applyRules(name string, candidates []string) (string, bool) {
	if r.Rules == nil {
		return "", false
	}
	if target, ok := r.Rules.Literal(name); ok {
		for _, candidate := range candidates {
			if candidate == target {
				return candidate, true
			}
		}
	}
	return r.Rules.MatchPattern(candidates)
}

func (r *Resolver) listBasenames(entries []string) error {
	seen := make(map[string]struct{})
	var names []string
	for _, entry := range entries {
		name := filepath.Base(entry)
		if _, ok := seen[name]; !ok {
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintln(r.Out, name)
	}
	return nil
}

// render joins the root with the winning entry and appends the verbatim
// query suffix, if any.
func (r *Resolver) render(entry string, q Query) string {
	path := filepath.Join(r.Root, entry)
	if q.Suffix != "" {
		path += "/" + q.Suffix
	}
	return path
}

func (r *Resolver) renderAll(candidates []string) []string {
	rendered := make([]string, len(candidates))
	for i, candidate := range candidates {
		rendered[i] = filepath.Join(r.Root, candidate)
	}
	return rendered
}

// printCandidates writes the numbered list users refine their query from.
func (r *Resolver) printCandidates(candidates []string) {
	for i, candidate := range candidates {
		fmt.Fprintf(r.Out, "  %2d  %s\n", i+1, filepath.Join(r.Root, candidate))
	}
}
