package testutil

import (
	"testing"

	"github.com/arthur-debert/symdex/pkg/index"
	"github.com/arthur-debert/symdex/pkg/types"
)

// SampleIndexYAML is a small index in the YAML layout read by the index
// package. List.map has no signature location on purpose.
const SampleIndexYAML = `artifact: stdlib/stdlib.cmti
keywords: [match, let]
entries:
  - path: List
    kind: module
    type: "sig ... end"
    source: stdlib/list.cmti
  - path: List.map
    kind: val
    type: "(a -> b) -> a list -> b list"
    doc: "(** [map f l] applies [f] to every element of [l]. *)"
    impl: "list.ml:82:0"
    source: stdlib/list.cmti
  - path: List.mapi
    kind: val
    type: "(int -> a -> b) -> a list -> b list"
    impl: "list.ml:90:0"
    sig: "list.mli:140:0"
    source: stdlib/list.cmti
  - path: Array.map
    kind: val
    type: "(a -> b) -> a array -> b array"
    impl: "array.ml:55:0"
    sig: "array.mli:120:0"
    source: stdlib/array.cmti
  - path: String.concat
    kind: val
    type: |
      string ->
        string list -> string
    doc: "(** [concat sep sl] concatenates the list of strings [sl], inserting [sep] between each. *)"
    impl: "string.ml:40:0"
    sig: "string.mli:60:0"
    source: stdlib/string.cmti
  - path: Option.t
    kind: type
    type: "'a option"
  - path: Option.None
    kind: constr
    owner: option
    type: "'a option"
  - path: Not_found
    kind: exception
    impl: "stdlib.ml:20:0"
`

// SampleProvider decodes SampleIndexYAML into a provider.
func SampleProvider(t *testing.T) *index.Memory {
	t.Helper()

	f, err := index.Decode([]byte(SampleIndexYAML), ".yaml")
	if err != nil {
		t.Fatalf("Failed to decode sample index: %v", err)
	}
	entries, err := f.Build("sample.yaml")
	if err != nil {
		t.Fatalf("Failed to build sample index: %v", err)
	}
	return index.NewMemory(entries...)
}

// EntrySpec describes an entry built inline by NewEntry. Nil locations are
// absent.
type EntrySpec struct {
	Path      string
	Kind      types.Kind
	Source    string
	Signature string
	Doc       *string
	Impl      *types.Location
	Sig       *types.Location
}

// NewEntry builds an entry from spec.
func NewEntry(spec EntrySpec) *types.Entry {
	return types.NewEntry(types.SplitPath(spec.Path), spec.Kind, spec.Source, types.EntryFields{
		Signature: func() string { return spec.Signature },
		Doc: func() (string, bool) {
			if spec.Doc == nil {
				return "", false
			}
			return *spec.Doc, true
		},
		ImplLoc: optLocation(spec.Impl),
		SigLoc:  optLocation(spec.Sig),
	})
}

func optLocation(l *types.Location) func() (types.Location, bool) {
	return func() (types.Location, bool) {
		if l == nil {
			return types.Location{}, false
		}
		return *l, true
	}
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}

// CountingProvider wraps a provider and counts the calls made to it.
type CountingProvider struct {
	Inner          index.Provider
	CompleteCalls  int
	LookupAllCalls int
}

// Complete implements index.Provider.
func (c *CountingProvider) Complete(prefix string) ([]*types.Entry, error) {
	c.CompleteCalls++
	return c.Inner.Complete(prefix)
}

// LookupAll implements index.Provider.
func (c *CountingProvider) LookupAll(query string) ([]*types.Entry, error) {
	c.LookupAllCalls++
	return c.Inner.LookupAll(query)
}

// Calls returns the total number of provider calls.
func (c *CountingProvider) Calls() int {
	return c.CompleteCalls + c.LookupAllCalls
}
