package ui_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/symdex/pkg/types"
	"github.com/arthur-debert/symdex/pkg/ui"
	"github.com/arthur-debert/symdex/pkg/ui/styles"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorModeString(t *testing.T) {
	assert.Equal(t, "auto", ui.ColorAuto.String())
	assert.Equal(t, "always", ui.ColorAlways.String())
	assert.Equal(t, "never", ui.ColorNever.String())
	assert.Equal(t, "unknown", ui.ColorMode(42).String())
}

func TestParseColorMode(t *testing.T) {
	tests := []struct {
		input    string
		expected ui.ColorMode
		wantErr  bool
	}{
		{"auto", ui.ColorAuto, false},
		{"", ui.ColorAuto, false},
		{"always", ui.ColorAlways, false},
		{"ALWAYS", ui.ColorAlways, false},
		{"never", ui.ColorNever, false},
		{" no ", ui.ColorNever, false},
		{"sometimes", ui.ColorAuto, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			mode, err := ui.ParseColorMode(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "unknown color mode")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, mode)
		})
	}
}

func TestDetectColor(t *testing.T) {
	t.Run("buffer is not a terminal", func(t *testing.T) {
		assert.False(t, ui.DetectColor(&bytes.Buffer{}))
	})

	t.Run("regular file is not a terminal", func(t *testing.T) {
		f, err := os.Create(filepath.Join(t.TempDir(), "out"))
		require.NoError(t, err)
		defer func() { _ = f.Close() }()
		assert.False(t, ui.DetectColor(f))
	})

	t.Run("NO_COLOR wins", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		assert.False(t, ui.DetectColor(os.Stdout))
	})
}

func TestColorModeEnabled(t *testing.T) {
	var buf bytes.Buffer
	assert.True(t, ui.ColorAlways.Enabled(&buf))
	assert.False(t, ui.ColorNever.Enabled(&buf))
	assert.False(t, ui.ColorAuto.Enabled(&buf))
}

func TestNewRenderer(t *testing.T) {
	var buf bytes.Buffer
	assert.Equal(t, termenv.Ascii, ui.NewRenderer(&buf, ui.ColorNever).ColorProfile())
	assert.Equal(t, termenv.Ascii, ui.NewRenderer(&buf, ui.ColorAuto).ColorProfile())
	assert.NotEqual(t, termenv.Ascii, ui.NewRenderer(&buf, ui.ColorAlways).ColorProfile())
}

func TestKindStyler(t *testing.T) {
	var buf bytes.Buffer
	assert.Nil(t, ui.KindStyler(ui.NewRenderer(&buf, ui.ColorNever)))
	assert.Nil(t, ui.KindStyler(nil))

	r := ui.NewRenderer(&buf, ui.ColorAlways)
	styler := ui.KindStyler(r)
	require.NotNil(t, styler)

	kind := types.Kind{Tag: types.KindValue}
	got := styler(kind, "val")
	assert.Equal(t, styles.KindStyle(types.KindValue).Renderer(r).Render("val"), got)
	assert.Contains(t, got, "val")
	assert.NotEqual(t, "val", got)
}

func TestRenderMessage(t *testing.T) {
	var buf bytes.Buffer
	plain := ui.NewRenderer(&buf, ui.ColorNever)
	assert.Equal(t, "no match for List.mop", ui.RenderMessage(plain, "<Error>no match</Error> for <Query>List.mop</Query>"))

	colored := ui.NewRenderer(&buf, ui.ColorAlways)
	out := ui.RenderMessage(colored, "<Error>boom</Error>")
	assert.Contains(t, out, "boom")
	assert.NotEqual(t, "boom", out)
}
