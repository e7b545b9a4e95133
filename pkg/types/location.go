package types

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// Location is a position in a source file. Line is 1-based, Column 0-based.
type Location struct {
	File   string
	Line   int
	Column int
}

// String renders the location as file:line:col.
func (l Location) String() string {
	return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
}

// Relative renders the location with File made relative to root when it lies
// under root. An empty root leaves the file untouched.
func (l Location) Relative(root string) string {
	if root == "" || !filepath.IsAbs(l.File) {
		return l.String()
	}
	rel, err := filepath.Rel(root, l.File)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return l.String()
	}
	return Location{File: rel, Line: l.Line, Column: l.Column}.String()
}

// ParseLocation parses "file:line:col" or "file:line". The file part may
// itself contain colons.
func ParseLocation(s string) (Location, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Location{}, fmt.Errorf("empty location")
	}

	parts := strings.Split(s, ":")
	if len(parts) < 2 {
		return Location{}, fmt.Errorf("location %q has no line number", s)
	}

	last, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return Location{}, fmt.Errorf("location %q: %w", s, err)
	}

	if len(parts) >= 3 {
		if line, err := strconv.Atoi(parts[len(parts)-2]); err == nil {
			file := strings.Join(parts[:len(parts)-2], ":")
			if file == "" {
				return Location{}, fmt.Errorf("location %q has no file", s)
			}
			return Location{File: file, Line: line, Column: last}, nil
		}
	}

	file := strings.Join(parts[:len(parts)-1], ":")
	if file == "" {
		return Location{}, fmt.Errorf("location %q has no file", s)
	}
	return Location{File: file, Line: last}, nil
}
