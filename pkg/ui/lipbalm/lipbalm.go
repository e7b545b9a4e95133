package lipbalm

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/beevik/etree"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// StyleMap maps tag names to styles.
type StyleMap map[string]lipgloss.Style

const noFormatTag = "no-format"

var defaultRenderer = lipgloss.DefaultRenderer()

// SetDefaultRenderer sets the renderer whose colour profile decides whether
// tags are styled or stripped.
func SetDefaultRenderer(r *lipgloss.Renderer) {
	defaultRenderer = r
}

// Render executes tmpl as a text/template with data, then expands its tags.
func Render(tmpl string, data any, styles StyleMap) (string, error) {
	t, err := template.New("lipbalm").Parse(tmpl)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	return ExpandTags(buf.String(), styles)
}

// ExpandTags replaces style tags in input with styled text.
func ExpandTags(input string, styles StyleMap) (string, error) {
	if input == "" {
		return "", nil
	}
	root, ok := parse(input)
	if !ok {
		return input, nil
	}

	colored := defaultRenderer.ColorProfile() != termenv.Ascii
	var b strings.Builder
	expand(&b, root, styles, colored)
	return b.String(), nil
}

// StripTags removes every tag from input, including <no-format> markers.
func StripTags(input string) string {
	if input == "" {
		return ""
	}
	root, ok := parse(input)
	if !ok {
		return input
	}
	var b strings.Builder
	collectText(&b, root)
	return b.String()
}

// Escape makes s safe to embed as tag content.
func Escape(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '&':
			b.WriteString("&amp;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func parse(input string) (*etree.Element, bool) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString("<lipbalm>" + input + "</lipbalm>"); err != nil {
		return nil, false
	}
	root := doc.Root()
	if root == nil {
		return nil, false
	}
	return root, true
}

func expand(b *strings.Builder, el *etree.Element, styles StyleMap, colored bool) {
	for _, tok := range el.Child {
		switch t := tok.(type) {
		case *etree.CharData:
			b.WriteString(t.Data)
		case *etree.Element:
			if t.Tag == noFormatTag {
				if !colored {
					collectText(b, t)
				}
				continue
			}

			var inner strings.Builder
			expand(&inner, t, styles, colored)
			style, ok := styles[t.Tag]
			if !ok || !colored {
				b.WriteString(inner.String())
				continue
			}
			b.WriteString(style.Renderer(defaultRenderer).Render(inner.String()))
		}
	}
}

func collectText(b *strings.Builder, el *etree.Element) {
	for _, tok := range el.Child {
		switch t := tok.(type) {
		case *etree.CharData:
			b.WriteString(t.Data)
		case *etree.Element:
			collectText(b, t)
		}
	}
}
