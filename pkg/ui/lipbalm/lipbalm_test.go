package lipbalm_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/arthur-debert/symdex/pkg/ui/lipbalm"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	lipgloss.SetDefaultRenderer(lipgloss.NewRenderer(io.Discard))
	m.Run()
}

func newRenderer(t *testing.T, profile termenv.Profile) *lipgloss.Renderer {
	t.Helper()
	var buf bytes.Buffer
	r := lipgloss.NewRenderer(&buf)
	r.SetColorProfile(profile)
	lipbalm.SetDefaultRenderer(r)
	t.Cleanup(func() { lipbalm.SetDefaultRenderer(lipgloss.DefaultRenderer()) })
	return r
}

var testStyles = lipbalm.StyleMap{
	"Error": lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
	"Query": lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	"Muted": lipgloss.NewStyle().Italic(true),
}

func TestExpandTags_Colored(t *testing.T) {
	r := newRenderer(t, termenv.TrueColor)
	styled := func(name, s string) string {
		return testStyles[name].Renderer(r).Render(s)
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"single tag", "<Error>boom</Error>", styled("Error", "boom")},
		{"tags and text", "<Error>no match</Error> for <Query>List.mop</Query>",
			styled("Error", "no match") + " for " + styled("Query", "List.mop")},
		{"nested tags", "<Muted>see <Query>help</Query></Muted>",
			styled("Muted", "see "+styled("Query", "help"))},
		{"unknown tag renders plain", "<Unknown>text</Unknown>", "text"},
		{"no-format dropped", "<Error>x</Error><no-format> (error)</no-format>", styled("Error", "x")},
		{"plain text", "just text", "just text"},
		{"invalid XML returned as is", "<Error>unclosed", "<Error>unclosed"},
		{"raw ampersand returned as is", "<Error>a & b</Error>", "<Error>a & b</Error>"},
		{"entities decoded", "<Query>a &amp; b &lt;c&gt;</Query>", styled("Query", "a & b <c>")},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := lipbalm.ExpandTags(tt.input, testStyles)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestExpandTags_Ascii(t *testing.T) {
	newRenderer(t, termenv.Ascii)

	got, err := lipbalm.ExpandTags("<Error>x</Error><no-format> (error)</no-format> <Query>q</Query>", testStyles)
	require.NoError(t, err)
	assert.Equal(t, "x (error) q", got)
}

func TestRender(t *testing.T) {
	r := newRenderer(t, termenv.TrueColor)

	got, err := lipbalm.Render("<Query>{{.Query}}</Query> not found", struct{ Query string }{"List.mop"}, testStyles)
	require.NoError(t, err)
	assert.Equal(t, testStyles["Query"].Renderer(r).Render("List.mop")+" not found", got)

	_, err = lipbalm.Render("<Query>{{.Query</Query>", nil, testStyles)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "template")

	_, err = lipbalm.Render("{{.Missing}}", struct{}{}, testStyles)
	assert.Error(t, err)
}

func TestStripTags(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple", "<Error>no</Error> <Query>match</Query>", "no match"},
		{"nested", "<a><b>deep</b></a>", "deep"},
		{"keeps no-format text", "<Error>x</Error><no-format>!</no-format>", "x!"},
		{"self closing", "before<br/>after", "beforeafter"},
		{"newlines", "<a>one</a>\n<b>two</b>", "one\ntwo"},
		{"invalid XML", "Not <valid", "Not <valid"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, lipbalm.StripTags(tt.input))
		})
	}
}

func TestEscape(t *testing.T) {
	newRenderer(t, termenv.Ascii)

	query := `a<b> & "c"`
	escaped := lipbalm.Escape(query)
	assert.Equal(t, `a&lt;b&gt; &amp; "c"`, escaped)

	got, err := lipbalm.ExpandTags("<Query>"+escaped+"</Query>", testStyles)
	require.NoError(t, err)
	assert.Equal(t, query, got)
}
