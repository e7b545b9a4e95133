// Package ui decides how symdex output is decorated for the terminal it is
// written to, and carries the styled renderers built from that decision.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/symdex/pkg/types"
	"github.com/arthur-debert/symdex/pkg/ui/lipbalm"
	"github.com/arthur-debert/symdex/pkg/ui/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// ColorMode is the user's colour preference
type ColorMode int

const (
	// ColorAuto colours output only when it goes to a capable terminal
	ColorAuto ColorMode = iota
	// ColorAlways colours output even when piped
	ColorAlways
	// ColorNever never colours output
	ColorNever
)

// String returns the string representation of the mode
func (m ColorMode) String() string {
	switch m {
	case ColorAuto:
		return "auto"
	case ColorAlways:
		return "always"
	case ColorNever:
		return "never"
	default:
		return "unknown"
	}
}

// ParseColorMode parses a string into a ColorMode value
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto", "":
		return ColorAuto, nil
	case "always", "force", "yes":
		return ColorAlways, nil
	case "never", "none", "no":
		return ColorNever, nil
	default:
		return ColorAuto, fmt.Errorf("unknown color mode: %s", s)
	}
}

type fileDescriptor interface {
	Fd() uintptr
}

// DetectColor reports whether output is a terminal that can show colour.
func DetectColor(output io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	f, ok := output.(fileDescriptor)
	if !ok {
		return false
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return false
	}

	return termenv.ColorProfile() != termenv.Ascii
}

// Enabled resolves the mode against output.
func (m ColorMode) Enabled(output io.Writer) bool {
	switch m {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return DetectColor(output)
	}
}

// NewRenderer returns a lipgloss renderer for output whose colour profile
// follows mode.
func NewRenderer(output io.Writer, mode ColorMode) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(output)
	if !mode.Enabled(output) {
		r.SetColorProfile(termenv.Ascii)
		return r
	}
	if r.ColorProfile() == termenv.Ascii {
		r.SetColorProfile(termenv.ANSI256)
	}
	return r
}

// KindStyler returns a kind decorator for the colourised summary. A
// renderer without colour yields nil, leaving kinds undecorated.
func KindStyler(r *lipgloss.Renderer) func(types.Kind, string) string {
	if r == nil || r.ColorProfile() == termenv.Ascii {
		return nil
	}
	return func(k types.Kind, token string) string {
		return styles.KindStyle(k.Tag).Renderer(r).Render(token)
	}
}

// MessageStyles exposes the style registry as lipbalm tags.
func MessageStyles() lipbalm.StyleMap {
	m := make(lipbalm.StyleMap, len(styles.StyleRegistry))
	for name, style := range styles.StyleRegistry {
		m[name] = style
	}
	return m
}

// RenderMessage expands the style tags in msg with r's colour profile.
func RenderMessage(r *lipgloss.Renderer, msg string) string {
	lipbalm.SetDefaultRenderer(r)
	out, err := lipbalm.ExpandTags(msg, MessageStyles())
	if err != nil {
		return lipbalm.StripTags(msg)
	}
	return out
}
