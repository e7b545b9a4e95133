package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/symdex/pkg/errors"
	"github.com/arthur-debert/symdex/pkg/paths"
	"github.com/arthur-debert/symdex/pkg/resolver"
	"github.com/arthur-debert/symdex/pkg/types"
	"github.com/arthur-debert/symdex/pkg/ui"
	"github.com/pelletier/go-toml/v2"
)

// Config is the effective symdex configuration.
type Config struct {
	Output  Output  `koanf:"output" toml:"output"`
	Scope   Scope   `koanf:"scope" toml:"scope"`
	Resolve Resolve `koanf:"resolve" toml:"resolve"`
	Locate  Locate  `koanf:"locate" toml:"locate"`
	Index   Index   `koanf:"index" toml:"index"`
	Project Project `koanf:"project" toml:"project"`

	// Sources lists the files that contributed, lowest precedence first.
	Sources []string `koanf:"-" toml:"-"`
}

// Output controls how entries are printed
type Output struct {
	Color            string `koanf:"color" toml:"color"`
	SummaryTypeWidth int    `koanf:"summary_type_width" toml:"summary_type_width"`
}

// Scope lists the opened modules
type Scope struct {
	Open []string `koanf:"open" toml:"open"`
}

// Resolve controls unique resolution
type Resolve struct {
	TieBreak string `koanf:"tie_break" toml:"tie_break"`
}

// Locate controls which location locate prefers
type Locate struct {
	Prefer string `koanf:"prefer" toml:"prefer"`
}

// Index lists the index files to read
type Index struct {
	Files []string `koanf:"files" toml:"files"`
}

// Project describes the project locations are shown relative to
type Project struct {
	Root string `koanf:"root" toml:"root"`
}

// Locate preferences
const (
	PreferImplementation = "implementation"
	PreferInterface      = "interface"
)

// Validate checks every enumerated and numeric setting.
func (c *Config) Validate() error {
	if _, err := ui.ParseColorMode(c.Output.Color); err != nil {
		return invalid("output.color", c.Output.Color, err.Error())
	}
	if c.Output.SummaryTypeWidth < 0 {
		return invalid("output.summary_type_width", c.Output.SummaryTypeWidth, "must not be negative")
	}
	if _, err := resolver.ParseTieBreak(c.Resolve.TieBreak); err != nil {
		return invalid("resolve.tie_break", c.Resolve.TieBreak, err.Error())
	}
	switch c.Locate.Prefer {
	case PreferImplementation, PreferInterface:
	default:
		return invalid("locate.prefer", c.Locate.Prefer, "must be implementation or interface")
	}
	return nil
}

func invalid(key string, value interface{}, reason string) error {
	return errors.Newf(errors.ErrConfigValid, "invalid %s: %s", key, reason).
		WithDetail("key", key).
		WithDetail("value", value)
}

// ColorMode returns the parsed output.color setting.
func (c *Config) ColorMode() ui.ColorMode {
	mode, _ := ui.ParseColorMode(c.Output.Color)
	return mode
}

// TieBreak returns the parsed resolve.tie_break setting.
func (c *Config) TieBreak() resolver.TieBreak {
	tb, err := resolver.ParseTieBreak(c.Resolve.TieBreak)
	if err != nil {
		return resolver.DefaultTieBreak
	}
	return tb
}

// PreferInterface reports whether locate prefers signature locations.
func (c *Config) PreferInterface() bool {
	return c.Locate.Prefer == PreferInterface
}

// OpenScope builds the scope from scope.open.
func (c *Config) OpenScope() types.Scope {
	return types.NewScope(c.Scope.Open...)
}

// ProjectRoot returns project.root as an absolute path, or "" when unset.
func (c *Config) ProjectRoot() string {
	root := strings.TrimSpace(c.Project.Root)
	if root == "" {
		return ""
	}
	root = paths.ExpandHome(root)
	if abs, err := filepath.Abs(root); err == nil {
		return abs
	}
	return root
}

// IndexFiles returns the configured index files, falling back to the
// default index in the data directory when it exists.
func (c *Config) IndexFiles(p *paths.Paths) []string {
	var files []string
	for _, f := range c.Index.Files {
		if f = strings.TrimSpace(f); f != "" {
			files = append(files, paths.ExpandHome(f))
		}
	}
	if len(files) > 0 {
		return files
	}
	if def := p.DefaultIndexPath(); fileExists(def) {
		return []string{def}
	}
	return nil
}

// TOML renders the configuration the way config files are written.
func (c *Config) TOML() ([]byte, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode configuration")
	}
	return data, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
