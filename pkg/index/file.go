package index

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/symdex/pkg/errors"
	"github.com/arthur-debert/symdex/pkg/logging"
	"github.com/arthur-debert/symdex/pkg/types"
)

// File is the on-disk layout of one index file.
type File struct {
	// Artifact is the default source artifact for the file's entries.
	Artifact string `yaml:"artifact" toml:"artifact"`
	// Root, when set, is joined to relative location files.
	Root     string      `yaml:"root" toml:"root"`
	Keywords []string    `yaml:"keywords" toml:"keywords"`
	Entries  []FileEntry `yaml:"entries" toml:"entries"`
}

// FileEntry is one raw entry as written by the index builder. Derived
// fields are kept verbatim and only interpreted on first access.
type FileEntry struct {
	Path   string `yaml:"path" toml:"path"`
	Kind   string `yaml:"kind" toml:"kind"`
	Owner  string `yaml:"owner" toml:"owner"`
	Type   string `yaml:"type" toml:"type"`
	Doc    string `yaml:"doc" toml:"doc"`
	Impl   string `yaml:"impl" toml:"impl"`
	Sig    string `yaml:"sig" toml:"sig"`
	Source string `yaml:"source" toml:"source"`
}

// LoadFiles reads the given index files in order into a single provider.
func LoadFiles(paths ...string) (*Memory, error) {
	logger := logging.GetLogger("index")
	done := logging.LogOperationStart(logger, "load index")
	defer done()

	var entries []*types.Entry
	for _, p := range paths {
		f, err := ReadFile(p)
		if err != nil {
			return nil, err
		}
		built, err := f.Build(p)
		if err != nil {
			return nil, err
		}
		logger.Debug().Str("file", p).Int("entries", len(built)).Msg("Loaded index file")
		entries = append(entries, built...)
	}
	return NewMemory(entries...), nil
}

// ReadFile decodes an index file, choosing the decoder from its extension.
func ReadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrIndexLoad, "cannot read index %s", path).
			WithDetail("path", path)
	}
	return Decode(data, filepath.Ext(path))
}

// Decode parses index data in the format named by ext (".yaml", ".yml" or
// ".toml").
func Decode(data []byte, ext string) (*File, error) {
	var f File
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil && err != io.EOF {
			return nil, errors.Wrap(err, errors.ErrIndexParse, "invalid YAML index")
		}
	case ".toml":
		if err := toml.Unmarshal(data, &f); err != nil {
			return nil, errors.Wrap(err, errors.ErrIndexParse, "invalid TOML index")
		}
	default:
		return nil, errors.Newf(errors.ErrIndexLoad, "unsupported index format %q", ext)
	}
	return &f, nil
}

// Build turns the raw file into entries. name identifies the file in errors.
func (f *File) Build(name string) ([]*types.Entry, error) {
	out := make([]*types.Entry, 0, len(f.Keywords)+len(f.Entries))

	for i, raw := range f.Entries {
		path := types.SplitPath(raw.Path)
		if len(path) == 0 {
			return nil, errors.Newf(errors.ErrIndexInvalid, "entry %d in %s has an empty path", i+1, name).
				WithDetail("file", name)
		}
		tag, err := types.ParseKindTag(raw.Kind)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrIndexInvalid, "entry %d (%s) in %s", i+1, raw.Path, name).
				WithDetail("file", name)
		}

		source := raw.Source
		if source == "" {
			source = f.Artifact
		}
		out = append(out, types.NewEntry(path, types.Kind{Tag: tag, Owner: raw.Owner}, source, f.fields(raw)))
	}

	for _, kw := range f.Keywords {
		kw = strings.TrimSpace(kw)
		if kw == "" {
			continue
		}
		out = append(out, types.NewEntry([]string{kw}, types.Kind{Tag: types.KindKeyword}, f.Artifact, types.EntryFields{}))
	}
	return out, nil
}

func (f *File) fields(raw FileEntry) types.EntryFields {
	return types.EntryFields{
		Signature: func() string { return NormalizeSignature(raw.Type) },
		Doc:       func() (string, bool) { return CleanDoc(raw.Doc) },
		ImplLoc:   func() (types.Location, bool) { return f.location(raw.Impl) },
		SigLoc:    func() (types.Location, bool) { return f.location(raw.Sig) },
	}
}

func (f *File) location(s string) (types.Location, bool) {
	if strings.TrimSpace(s) == "" {
		return types.Location{}, false
	}
	loc, err := types.ParseLocation(s)
	if err != nil {
		logger := logging.GetLogger("index")
		logger.Debug().Err(err).Str("location", s).Msg("Ignoring unparseable location")
		return types.Location{}, false
	}
	if f.Root != "" && !filepath.IsAbs(loc.File) {
		loc.File = filepath.Join(f.Root, loc.File)
	}
	return loc, true
}

// NormalizeSignature collapses runs of whitespace, including newlines, into
// single spaces.
func NormalizeSignature(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// CleanDoc strips doc-comment delimiters and surrounding blank space.
// Documentation that is empty once cleaned counts as absent.
func CleanDoc(s string) (string, bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "(**")
	s = strings.TrimSuffix(s, "*)")
	s = strings.TrimSpace(s)
	return s, s != ""
}
