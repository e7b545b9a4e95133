package format

import (
	"strings"
	"unicode/utf8"

	"github.com/arthur-debert/symdex/pkg/types"
)

// SummaryTemplate is the built-in template used when no format is given.
const SummaryTemplate = "%i"

// DefaultTypeWidth bounds the type shown by the summary directive.
const DefaultTypeWidth = 60

// Options are the rendering settings shared by every entry of one
// invocation. The zero value renders full paths, absolute locations, untruncated
// types and unstyled kinds.
type Options struct {
	// Scope qualifies paths for %q and %i.
	Scope types.Scope
	// ProjectRoot, when set, makes location files relative to it.
	ProjectRoot string
	// TypeWidth truncates the summary's type to this many runes; 0 disables.
	TypeWidth int
	// KindStyle decorates the kind token; nil leaves it unchanged.
	KindStyle func(kind types.Kind, token string) string
}

type segment struct {
	literal   string
	directive Directive
	isDir     bool
}

// Template is a compiled format string.
type Template struct {
	source   string
	segments []segment
}

// Compile parses tmpl into literal and directive segments. Compilation never
// fails: anything that is not a directive is literal text.
func Compile(tmpl string) *Template {
	t := &Template{source: tmpl}
	var lit strings.Builder

	flush := func() {
		if lit.Len() > 0 {
			t.segments = append(t.segments, segment{literal: lit.String()})
			lit.Reset()
		}
	}

	for i := 0; i < len(tmpl); i++ {
		c := tmpl[i]
		if c == '%' && i+1 < len(tmpl) {
			if d, ok := Lookup(tmpl[i+1]); ok {
				flush()
				t.segments = append(t.segments, segment{directive: d, isDir: true})
				i++
				continue
			}
		}
		lit.WriteByte(c)
	}
	flush()
	return t
}

// String returns the source template.
func (t *Template) String() string {
	return t.source
}

// Uses reports whether the template contains directive d.
func (t *Template) Uses(d Directive) bool {
	for _, s := range t.segments {
		if s.isDir && s.directive == d {
			return true
		}
	}
	return false
}

// Render projects e through the template.
func (t *Template) Render(e *types.Entry, opts Options) string {
	var b strings.Builder
	for _, s := range t.segments {
		if !s.isDir {
			b.WriteString(s.literal)
			continue
		}
		b.WriteString(Project(s.directive, e, opts))
	}
	return b.String()
}

// Render compiles tmpl and renders e with it.
func Render(tmpl string, e *types.Entry, opts Options) string {
	return Compile(tmpl).Render(e, opts)
}

// Project returns the text directive d produces for e.
func Project(d Directive, e *types.Entry, opts Options) string {
	switch d {
	case DirName:
		return e.Name()
	case DirQualified:
		return Qualified(e, opts.Scope)
	case DirFullPath:
		return e.FullPath()
	case DirKind:
		return kindToken(e.Kind, opts)
	case DirType:
		return e.Signature()
	case DirDoc:
		doc, _ := e.Doc()
		return doc
	case DirLocImpl:
		loc, ok := e.ImplLocation()
		return renderLocation(loc, ok, opts.ProjectRoot)
	case DirLocSig:
		loc, ok := e.SigLocation()
		return renderLocation(loc, ok, opts.ProjectRoot)
	case DirSourceFile:
		return e.Source
	case DirSummary:
		return summary(e, opts)
	case DirPercent:
		return "%"
	}
	return ""
}

// Qualified renders e's path as seen from scope.
func Qualified(e *types.Entry, scope types.Scope) string {
	return types.JoinPath(scope.Qualify(e.Path))
}

func kindToken(k types.Kind, opts Options) string {
	token := k.String()
	if opts.KindStyle != nil {
		return opts.KindStyle(k, token)
	}
	return token
}

func renderLocation(loc types.Location, ok bool, root string) string {
	if !ok {
		return ""
	}
	return loc.Relative(root)
}

func summary(e *types.Entry, opts Options) string {
	parts := []string{e.Name(), kindToken(e.Kind, opts)}
	if sig := Truncate(e.Signature(), opts.TypeWidth); sig != "" {
		parts = append(parts, sig)
	}
	return strings.Join(parts, " ")
}

// Truncate shortens s to at most width runes, ending with "..." when cut.
// A width of 0 or less leaves s unchanged.
func Truncate(s string, width int) string {
	if width <= 0 || utf8.RuneCountInString(s) <= width {
		return s
	}
	const ellipsis = "..."
	if width <= len(ellipsis) {
		return string([]rune(s)[:width])
	}
	return string([]rune(s)[:width-len(ellipsis)]) + ellipsis
}
