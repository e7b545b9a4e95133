package topics_test

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/arthur-debert/symdex/pkg/cobrax/topics"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"format.md":           {Data: []byte("# Format\n\nDirectives")},
		"option-sexp.txt":     {Data: []byte("S-expression output")},
		"nested/config.md":    {Data: []byte("# Config")},
		"ignored.json":        {Data: []byte("{}")},
		"custom/notes.custom": {Data: []byte("custom notes")},
	}
}

func TestTopicManager_Scan(t *testing.T) {
	t.Run("default extensions", func(t *testing.T) {
		tm := topics.New(testFS(), topics.Options{})
		require.NoError(t, tm.Scan())
		assert.Equal(t, []string{"config", "format", "option-sexp"}, tm.ListTopics())

		topic, ok := tm.GetTopic("format")
		require.True(t, ok)
		assert.Equal(t, "# Format\n\nDirectives", topic.Content)
		assert.Equal(t, "format.md", topic.FilePath)
	})

	t.Run("custom extensions", func(t *testing.T) {
		tm := topics.New(testFS(), topics.Options{Extensions: []string{".custom"}})
		require.NoError(t, tm.Scan())
		assert.Equal(t, []string{"notes"}, tm.ListTopics())
	})

	t.Run("nil file system", func(t *testing.T) {
		tm := topics.New(nil, topics.Options{})
		require.NoError(t, tm.Scan())
		assert.Empty(t, tm.ListTopics())
	})
}

func TestTopicManager_GetTopic(t *testing.T) {
	tm := topics.New(testFS(), topics.Options{})
	require.NoError(t, tm.Scan())

	tests := []struct {
		input    string
		expected string
		exists   bool
	}{
		{"format", "format", true},
		{"option-sexp", "option-sexp", true},
		{"--sexp", "option-sexp", true},
		{"-sexp", "option-sexp", true},
		{"sexp", "option-sexp", true},
		{"missing", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			topic, ok := tm.GetTopic(tt.input)
			assert.Equal(t, tt.exists, ok)
			if ok {
				assert.Equal(t, tt.expected, topic.Name)
			}
		})
	}
}

type upperRenderer struct{}

func (upperRenderer) Render(content, ext string) string {
	return strings.ToUpper(content) + "[" + ext + "]"
}

func newRoot(t *testing.T, opts topics.Options) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	root := &cobra.Command{Use: "symdex", Run: func(cmd *cobra.Command, args []string) {}}
	root.AddCommand(&cobra.Command{Use: "locate", Short: "Print symbol locations", Run: func(cmd *cobra.Command, args []string) {}})

	_, err := topics.Initialize(root, testFS(), opts)
	require.NoError(t, err)

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	return root, &out
}

func TestInitialize_HelpCommand(t *testing.T) {
	t.Run("renders topic", func(t *testing.T) {
		root, out := newRoot(t, topics.Options{Renderer: upperRenderer{}})
		root.SetArgs([]string{"help", "format"})
		require.NoError(t, root.Execute())
		assert.Equal(t, "# FORMAT\n\nDIRECTIVES[.md]", out.String())
	})

	t.Run("lists topics", func(t *testing.T) {
		root, out := newRoot(t, topics.Options{})
		root.SetArgs([]string{"help", "topics"})
		require.NoError(t, root.Execute())
		assert.Contains(t, out.String(), "General topics:")
		assert.Contains(t, out.String(), "  format")
		assert.Contains(t, out.String(), "  --sexp")
		assert.Contains(t, out.String(), "symdex help <topic>")
	})

	t.Run("falls back to command help", func(t *testing.T) {
		root, out := newRoot(t, topics.Options{})
		root.SetArgs([]string{"help", "locate"})
		require.NoError(t, root.Execute())
		assert.Contains(t, out.String(), "Print symbol locations")
	})

	t.Run("completion offers topics", func(t *testing.T) {
		root, out := newRoot(t, topics.Options{})
		root.SetArgs([]string{"__complete", "help", ""})
		require.NoError(t, root.Execute())
		assert.Contains(t, out.String(), "format")
		assert.Contains(t, out.String(), "topics")
	})
}

func TestGlamourRenderer(t *testing.T) {
	r := topics.NewGlamourRenderer(false)
	assert.Equal(t, "notty", r.Style)
	assert.Equal(t, "plain text", r.Render("plain text", ".txt"))

	out := r.Render("# Title\n\nSome *text*.", ".md")
	assert.Contains(t, out, "Title")
	assert.NotContains(t, out, "\x1b[")
}
