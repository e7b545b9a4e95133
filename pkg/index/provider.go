package index

import (
	"strings"

	"github.com/arthur-debert/symdex/pkg/types"
)

// Provider is the read-only index collaborator consumed by the resolver.
// Both methods return entries in the index's natural order and may return
// an empty slice.
type Provider interface {
	Complete(prefix string) ([]*types.Entry, error)
	LookupAll(query string) ([]*types.Entry, error)
}

// Memory is a Provider over a fixed, ordered list of entries.
type Memory struct {
	entries []*types.Entry
}

// NewMemory returns a provider serving entries in the given order.
func NewMemory(entries ...*types.Entry) *Memory {
	return &Memory{entries: entries}
}

// Len returns the number of entries held.
func (m *Memory) Len() int {
	return len(m.entries)
}

// Complete returns every entry whose qualifier matches the query's module
// part and whose short name starts with its last part. A trailing dot
// completes every member of the named module.
func (m *Memory) Complete(prefix string) ([]*types.Entry, error) {
	q := parseQuery(prefix)
	return m.filter(func(e *types.Entry) bool {
		return q.matches(e, strings.HasPrefix)
	}), nil
}

// LookupAll returns every entry whose path ends with the query's segments.
func (m *Memory) LookupAll(query string) ([]*types.Entry, error) {
	q := parseQuery(query)
	if q.name == "" {
		return []*types.Entry{}, nil
	}
	return m.filter(func(e *types.Entry) bool {
		return q.matches(e, func(name, want string) bool { return name == want })
	}), nil
}

func (m *Memory) filter(keep func(*types.Entry) bool) []*types.Entry {
	out := []*types.Entry{}
	for _, e := range m.entries {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}

// query is a parsed identifier path: module qualifier plus a name part.
type query struct {
	qualifier []string
	name      string
}

func parseQuery(s string) query {
	s = strings.TrimSpace(s)
	if i := strings.LastIndexByte(s, '.'); i >= 0 {
		return query{qualifier: types.SplitPath(s[:i]), name: strings.TrimSpace(s[i+1:])}
	}
	return query{name: s}
}

func (q query) matches(e *types.Entry, nameOK func(name, want string) bool) bool {
	if e.Kind.Tag == types.KindKeyword && len(q.qualifier) > 0 {
		return false
	}
	if !nameOK(e.Name(), q.name) {
		return false
	}
	modules := e.Path[:len(e.Path)-1]
	if len(q.qualifier) > len(modules) {
		return false
	}
	tail := modules[len(modules)-len(q.qualifier):]
	for i, seg := range q.qualifier {
		if tail[i] != seg {
			return false
		}
	}
	return true
}
