package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/symdex/pkg/errors"
)

// Environment variable names
const (
	// EnvSymdexConfigDir overrides the XDG config directory for symdex
	EnvSymdexConfigDir = "SYMDEX_CONFIG_DIR"

	// EnvSymdexDataDir overrides the XDG data directory for symdex
	EnvSymdexDataDir = "SYMDEX_DATA_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directories and files
const (
	// SymdexDirName is the directory name for symdex-specific files
	SymdexDirName = "symdex"

	// UserConfigFile is the name of the user configuration file
	UserConfigFile = "config.toml"

	// ProjectConfigFile is the name of the per-project configuration file
	ProjectConfigFile = ".symdex.toml"

	// DefaultIndexFile is the index read when none is configured
	DefaultIndexFile = "index.yaml"

	// LogFileName is the name of the log file
	LogFileName = "symdex.log"
)

// Paths holds the resolved symdex directories.
type Paths struct {
	configDir string
	dataDir   string
	stateDir  string
}

// New resolves the symdex directories from the environment.
func New() *Paths {
	p := &Paths{}

	if dir := os.Getenv(EnvSymdexConfigDir); dir != "" {
		p.configDir = ExpandHome(dir)
	} else {
		p.configDir = filepath.Join(xdg.ConfigHome, SymdexDirName)
	}

	if dir := os.Getenv(EnvSymdexDataDir); dir != "" {
		p.dataDir = ExpandHome(dir)
	} else {
		p.dataDir = filepath.Join(xdg.DataHome, SymdexDirName)
	}

	p.stateDir = filepath.Join(xdg.StateHome, SymdexDirName)
	return p
}

// ConfigDir returns the symdex config directory
func (p *Paths) ConfigDir() string {
	return p.configDir
}

// DataDir returns the symdex data directory
func (p *Paths) DataDir() string {
	return p.dataDir
}

// StateDir returns the symdex state directory
func (p *Paths) StateDir() string {
	return p.stateDir
}

// UserConfigPath returns the path of the user configuration file
func (p *Paths) UserConfigPath() string {
	return filepath.Join(p.configDir, UserConfigFile)
}

// DefaultIndexPath returns the index file used when none is configured
func (p *Paths) DefaultIndexPath() string {
	return filepath.Join(p.dataDir, DefaultIndexFile)
}

// LogFilePath returns the path to the symdex log file
func (p *Paths) LogFilePath() string {
	return filepath.Join(p.stateDir, LogFileName)
}

// FindProjectConfig walks from dir towards the filesystem root and returns
// the first .symdex.toml found.
func FindProjectConfig(dir string) (string, bool, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", false, errors.Wrapf(err, errors.ErrConfigLoad, "failed to resolve %s", dir)
	}

	for {
		candidate := filepath.Join(abs, ProjectConfigFile)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true, nil
		}
		parent := filepath.Dir(abs)
		if parent == abs {
			return "", false, nil
		}
		abs = parent
	}
}

// ExpandHome expands a leading ~ to the home directory
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	// ~user is left alone
	return path
}
