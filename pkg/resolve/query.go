package resolve

import "strings"

// Wildcard is the sentinel codebase name that lists every known basename
// instead of resolving, used for shell completion.
const Wildcard = "_"

// Query is a parsed resolution request.
type Query struct {
	Name   string // codebase name, matched against final path components
	Suffix string // verbatim text after the first '/', appended to the result
	Filter string // 1-based index or substring filter, may be empty
}

// ParseQuery splits the CODEBASE argument at the first '/' into the wanted
// name and a verbatim subdirectory suffix.
func ParseQuery(codebase, filter string) Query {
	name, suffix, _ := strings.Cut(codebase, "/")
	return Query{Name: name, Suffix: suffix, Filter: filter}
}

func (q Query) wildcard() bool {
	return q.Name == Wildcard
}
