package types

import "strings"

// Scope is the ordered set of module paths opened for the current query.
// Entries reached through an open module print with that prefix removed.
type Scope struct {
	Open [][]string
}

// NewScope builds a scope from dotted module paths such as "Stdlib".
func NewScope(open ...string) Scope {
	s := Scope{}
	for _, o := range open {
		if segs := SplitPath(o); len(segs) > 0 {
			s.Open = append(s.Open, segs)
		}
	}
	return s
}

// Qualify strips the longest open prefix from path, always keeping at least
// the last segment.
func (s Scope) Qualify(path []string) []string {
	best := 0
	for _, prefix := range s.Open {
		if len(prefix) >= len(path) || len(prefix) <= best {
			continue
		}
		if hasPrefix(path, prefix) {
			best = len(prefix)
		}
	}
	return path[best:]
}

func hasPrefix(path, prefix []string) bool {
	for i, seg := range prefix {
		if path[i] != seg {
			return false
		}
	}
	return true
}

// SplitPath splits a dotted identifier path, dropping empty segments.
func SplitPath(p string) []string {
	var out []string
	for _, seg := range strings.Split(p, ".") {
		if seg = strings.TrimSpace(seg); seg != "" {
			out = append(out, seg)
		}
	}
	return out
}

// JoinPath renders path segments dotted.
func JoinPath(path []string) string {
	return strings.Join(path, ".")
}
