package index_test

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/symdex/pkg/errors"
	"github.com/arthur-debert/symdex/pkg/index"
	"github.com/arthur-debert/symdex/pkg/testutil"
	"github.com/arthur-debert/symdex/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paths(entries []*types.Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.FullPath())
	}
	return out
}

func TestMemoryComplete(t *testing.T) {
	p := testutil.SampleProvider(t)

	tests := []struct {
		name   string
		prefix string
		want   []string
	}{
		{"bare prefix matches any module", "ma", []string{"List.map", "List.mapi", "Array.map", "match"}},
		{"qualified prefix", "List.ma", []string{"List.map", "List.mapi"}},
		{"trailing dot lists members", "Option.", []string{"Option.t", "Option.None"}},
		{"module name", "Li", []string{"List"}},
		{"no match", "zzz", []string{}},
		{"keywords are unqualified", "List.le", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.Complete(tt.prefix)
			require.NoError(t, err)
			assert.Equal(t, tt.want, paths(got))
		})
	}
}

func TestMemoryLookupAll(t *testing.T) {
	p := testutil.SampleProvider(t)

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"exact qualified", "List.map", []string{"List.map"}},
		{"ambiguous short name", "map", []string{"List.map", "Array.map"}},
		{"prefix is not enough", "List.ma", []string{}},
		{"keyword", "match", []string{"match"}},
		{"empty query", "", []string{}},
		{"trailing dot", "List.", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.LookupAll(tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, paths(got))
		})
	}
}

func TestQualifierMatchesPathSuffix(t *testing.T) {
	e := testutil.NewEntry(testutil.EntrySpec{Path: "Stdlib.List.map", Kind: types.Kind{Tag: types.KindValue}})
	p := index.NewMemory(e)

	for _, q := range []string{"map", "List.map", "Stdlib.List.map"} {
		got, err := p.LookupAll(q)
		require.NoError(t, err)
		assert.Len(t, got, 1, q)
	}

	got, err := p.LookupAll("Other.List.map")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestBuildKeepsFieldsLazy(t *testing.T) {
	p := testutil.SampleProvider(t)
	got, err := p.LookupAll("String.concat")
	require.NoError(t, err)
	require.Len(t, got, 1)

	e := got[0]
	assert.Equal(t, types.ForcedFields{}, e.Forced())
	assert.Equal(t, "string -> string list -> string", e.Signature())

	doc, ok := e.Doc()
	require.True(t, ok)
	assert.Equal(t, "[concat sep sl] concatenates the list of strings [sl], inserting [sep] between each.", doc)

	loc, ok := e.SigLocation()
	require.True(t, ok)
	assert.Equal(t, types.Location{File: "string.mli", Line: 60, Column: 0}, loc)
	assert.Equal(t, "stdlib/string.cmti", e.Source)
}

func TestBuildDefaults(t *testing.T) {
	p := testutil.SampleProvider(t)

	got, err := p.LookupAll("Option.None")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "constr(option)", got[0].Kind.String())
	assert.Equal(t, "stdlib/stdlib.cmti", got[0].Source, "falls back to the file artifact")

	_, ok := got[0].ImplLocation()
	assert.False(t, ok)
	_, ok = got[0].Doc()
	assert.False(t, ok)
}

func TestLoadFilesYAMLAndTOML(t *testing.T) {
	testutil.IsolateEnv(t)
	dir := t.TempDir()

	yamlPath := testutil.CreateFile(t, dir, "list.yaml", `artifact: list.cmti
root: /src/stdlib
entries:
  - path: List.map
    kind: val
    type: "(a -> b) -> a list -> b list"
    impl: "list.ml:82:0"
`)
	tomlPath := testutil.CreateFile(t, dir, "string.toml", `artifact = "string.cmti"

[[entries]]
path = "String.concat"
kind = "val"
type = "string -> string list -> string"
sig = "string.mli:60:0"
`)

	p, err := index.LoadFiles(yamlPath, tomlPath)
	require.NoError(t, err)
	assert.Equal(t, 2, p.Len())

	got, err := p.LookupAll("map")
	require.NoError(t, err)
	require.Len(t, got, 1)
	loc, ok := got[0].ImplLocation()
	require.True(t, ok)
	assert.Equal(t, filepath.Join("/src/stdlib", "list.ml"), loc.File)

	got, err = p.LookupAll("concat")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "string.cmti", got[0].Source)
}

func TestLoadFilesErrors(t *testing.T) {
	testutil.IsolateEnv(t)
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		_, err := index.LoadFiles(filepath.Join(dir, "nope.yaml"))
		assert.True(t, errors.IsErrorCode(err, errors.ErrIndexLoad))
	})

	t.Run("unsupported extension", func(t *testing.T) {
		p := testutil.CreateFile(t, dir, "index.json", "{}")
		_, err := index.LoadFiles(p)
		assert.True(t, errors.IsErrorCode(err, errors.ErrIndexLoad))
	})

	t.Run("malformed yaml", func(t *testing.T) {
		p := testutil.CreateFile(t, dir, "bad.yaml", "entries: [unclosed")
		_, err := index.LoadFiles(p)
		assert.True(t, errors.IsErrorCode(err, errors.ErrIndexParse))
	})

	t.Run("unknown field", func(t *testing.T) {
		p := testutil.CreateFile(t, dir, "extra.yaml", "entries:\n  - path: a\n    kind: val\n    flavour: x\n")
		_, err := index.LoadFiles(p)
		assert.True(t, errors.IsErrorCode(err, errors.ErrIndexParse))
	})

	t.Run("empty path", func(t *testing.T) {
		p := testutil.CreateFile(t, dir, "empty.yaml", "entries:\n  - path: \"\"\n    kind: val\n")
		_, err := index.LoadFiles(p)
		assert.True(t, errors.IsErrorCode(err, errors.ErrIndexInvalid))
	})

	t.Run("unknown kind", func(t *testing.T) {
		p := testutil.CreateFile(t, dir, "kind.toml", "[[entries]]\npath = \"a\"\nkind = \"functor\"\n")
		_, err := index.LoadFiles(p)
		assert.True(t, errors.IsErrorCode(err, errors.ErrIndexInvalid))
	})

	t.Run("empty yaml file is an empty index", func(t *testing.T) {
		p := testutil.CreateFile(t, dir, "blank.yaml", "")
		m, err := index.LoadFiles(p)
		require.NoError(t, err)
		assert.Equal(t, 0, m.Len())
	})
}

func TestCleanDocAndSignature(t *testing.T) {
	doc, ok := index.CleanDoc("  (**  hello  *)  ")
	assert.True(t, ok)
	assert.Equal(t, "hello", doc)

	_, ok = index.CleanDoc("(** *)")
	assert.False(t, ok)

	assert.Equal(t, "a -> b", index.NormalizeSignature("  a\n ->\t b "))
}
