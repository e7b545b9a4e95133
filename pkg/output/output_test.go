package output_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/arthur-debert/symdex/pkg/errors"
	"github.com/arthur-debert/symdex/pkg/format"
	"github.com/arthur-debert/symdex/pkg/output"
	"github.com/arthur-debert/symdex/pkg/testutil"
	"github.com/arthur-debert/symdex/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEntries() []*types.Entry {
	return []*types.Entry{
		testutil.NewEntry(testutil.EntrySpec{
			Path:      "Stdlib.List.map",
			Kind:      types.Kind{Tag: types.KindValue},
			Signature: "('a -> 'b) -> 'a list -> 'b list",
			Doc:       testutil.Ptr(`Apply "f" to \ every "element".` + "\n\tSecond line."),
		}),
		testutil.NewEntry(testutil.EntrySpec{
			Path: "Stdlib.Option.None",
			Kind: types.Kind{Tag: types.KindConstructor, Owner: "option"},
		}),
	}
}

func encode(t *testing.T, s output.Settings, entries []*types.Entry) string {
	t.Helper()
	enc, err := output.New(s)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, enc.Encode(&buf, entries))
	return buf.String()
}

func TestNew_Modes(t *testing.T) {
	tests := []struct {
		name     string
		settings output.Settings
		expected output.Mode
	}{
		{"default is summary", output.Settings{}, output.ModeSummary},
		{"template is plain", output.Settings{Template: "%n", HasTemplate: true}, output.ModePlain},
		{"empty template is still plain", output.Settings{HasTemplate: true}, output.ModePlain},
		{"sexp", output.Settings{Sexp: true}, output.ModeSexp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc, err := output.New(tt.settings)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, enc.Mode())
		})
	}
}

func TestNew_SexpWithTemplateIsUsageError(t *testing.T) {
	_, err := output.New(output.Settings{Sexp: true, Template: "%n", HasTemplate: true})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrUsage))
	assert.Equal(t, errors.ExitFailure, errors.ExitCode(err))
}

func TestEncode_Plain(t *testing.T) {
	out := encode(t, output.Settings{
		Template:    "%k %q",
		HasTemplate: true,
		Format:      format.Options{Scope: types.NewScope("Stdlib")},
	}, sampleEntries())
	assert.Equal(t, "val List.map\nconstr(option) Option.None\n", out)
}

func TestEncode_SummaryColorsKindOnly(t *testing.T) {
	styler := func(k types.Kind, token string) string { return "[" + token + "]" }

	out := encode(t, output.Settings{Format: format.Options{KindStyle: styler}}, sampleEntries())
	assert.Equal(t, "map [val] ('a -> 'b) -> 'a list -> 'b list\nNone [constr(option)]\n", out)

	plain := encode(t, output.Settings{
		Template:    "%k",
		HasTemplate: true,
		Format:      format.Options{KindStyle: styler},
	}, sampleEntries())
	assert.Equal(t, "val\nconstr(option)\n", plain)
}

func TestEncode_Empty(t *testing.T) {
	assert.Equal(t, "", encode(t, output.Settings{}, nil))
	assert.Equal(t, "(\n)\n", encode(t, output.Settings{Sexp: true}, nil))
}

func TestEncode_Sexp(t *testing.T) {
	out := encode(t, output.Settings{
		Sexp:   true,
		Format: format.Options{Scope: types.NewScope("Stdlib")},
	}, sampleEntries())

	expected := "(\n" +
		`(:path "List.map" :full-path "Stdlib.List.map" :type "('a -> 'b) -> 'a list -> 'b list" :kind "val" :doc "Apply \"f\" to \\ every \"element\".\n\tSecond line.")` + "\n" +
		`(:path "Option.None" :full-path "Stdlib.Option.None" :type "" :kind "constr(option)")` + "\n" +
		")\n"
	assert.Equal(t, expected, out)
}

func TestSexp_RoundTrip(t *testing.T) {
	entries := sampleEntries()
	out := encode(t, output.Settings{Sexp: true}, entries)

	records, err := output.DecodeSexp(strings.NewReader(out))
	require.NoError(t, err)
	require.Len(t, records, len(entries))

	for i, e := range entries {
		assert.Equal(t, output.RecordOf(e, types.Scope{}), records[i])
	}
	assert.True(t, records[0].HasDoc)
	assert.False(t, records[1].HasDoc)
}

func TestSexp_RoundTripInvalidUTF8(t *testing.T) {
	rec := output.Record{
		Path:     "caf\xe9",
		FullPath: "Stdlib.caf\xe9",
		Type:     "\xff -> unit",
		Kind:     "val",
		Doc:      "caf\xe9 \"q\" \\",
		HasDoc:   true,
	}

	var buf bytes.Buffer
	require.NoError(t, output.WriteSexp(&buf, []output.Record{rec}))

	records, err := output.DecodeSexp(&buf)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, rec, records[0])
}

func TestEscapeSexp(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"plain", "plain"},
		{`say "hi"`, `say \"hi\"`},
		{`a\b`, `a\\b`},
		{"one\ntwo", `one\ntwo`},
		{"a\tb", `a\tb`},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, output.EscapeSexp(tt.input))
		})
	}
}

func TestDecodeSexp_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty input", ""},
		{"not a list", `"text"`},
		{"unterminated list", `((:path "a")`},
		{"unterminated string", `((:path "a))`},
		{"missing value", `((:path))`},
		{"bad escape", `((:path "\q"))`},
		{"trailing data", "(\n)\nextra"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := output.DecodeSexp(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrSexpParse))
		})
	}
}

func TestDecodeSexp_SkipsUnknownKeywords(t *testing.T) {
	records, err := output.DecodeSexp(strings.NewReader(`((:path "a" :extra "x" :kind "val"))`))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, output.Record{Path: "a", Kind: "val"}, records[0])
}

func TestEncodeLine(t *testing.T) {
	e := sampleEntries()[1]

	enc, err := output.New(output.Settings{Template: "%p", HasTemplate: true})
	require.NoError(t, err)
	assert.Equal(t, "Stdlib.Option.None", enc.EncodeLine(e))

	enc, err = output.New(output.Settings{Sexp: true})
	require.NoError(t, err)
	assert.Equal(t, `(:path "Stdlib.Option.None" :full-path "Stdlib.Option.None" :type "" :kind "constr(option)")`, enc.EncodeLine(e))
}
