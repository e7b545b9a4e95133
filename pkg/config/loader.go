package config

import (
	"os"
	"strings"

	"github.com/arthur-debert/symdex/pkg/errors"
	"github.com/arthur-debert/symdex/pkg/logging"
	"github.com/arthur-debert/symdex/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment overrides, e.g. SYMDEX_OUTPUT_COLOR.
const EnvPrefix = "SYMDEX_"

// LoadOptions locate the configuration layers.
type LoadOptions struct {
	// UserConfigPath defaults to $XDG_CONFIG_HOME/symdex/config.toml. An
	// explicit path must exist; the default one is optional.
	UserConfigPath string
	// WorkDir is where the project config lookup starts; defaults to the
	// working directory.
	WorkDir string
	// SkipProject disables the project config lookup.
	SkipProject bool
	// Overrides are flat koanf keys ("output.color") set from flags.
	Overrides map[string]interface{}
}

// Default returns the embedded defaults only.
func Default() (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}
	return unmarshal(k)
}

// Load merges every layer and validates the result.
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")
	defer logging.LogOperationStart(logger, "config.Load")()

	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}
	var sources []string

	// 2. User config
	userPath, required := opts.UserConfigPath, opts.UserConfigPath != ""
	if !required {
		userPath = paths.New().UserConfigPath()
	}
	loaded, err := loadFile(k, userPath, required)
	if err != nil {
		return nil, err
	}
	if loaded {
		sources = append(sources, userPath)
	}

	// 3. Project config
	if !opts.SkipProject {
		workDir := opts.WorkDir
		if workDir == "" {
			if workDir, err = os.Getwd(); err != nil {
				return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to get working directory")
			}
		}
		projectPath, found, err := paths.FindProjectConfig(workDir)
		if err != nil {
			return nil, err
		}
		if found {
			if _, err := loadFile(k, projectPath, true); err != nil {
				return nil, err
			}
			sources = append(sources, projectPath)
		}
	}

	// 4. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	// 5. Flags
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load flag overrides")
		}
	}

	cfg, err := unmarshal(k)
	if err != nil {
		return nil, err
	}
	cfg.Sources = sources

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Debug().Strs("sources", sources).Msg("Configuration loaded")
	return cfg, nil
}

func loadFile(k *koanf.Koanf, path string, required bool) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) && !required {
			return false, nil
		}
		return false, errors.Wrapf(err, errors.ErrConfigLoad, "failed to access %s", path).
			WithDetail("path", path)
	}
	if info.IsDir() {
		return false, errors.Newf(errors.ErrConfigLoad, "%s is a directory", path).
			WithDetail("path", path)
	}
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return false, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
			WithDetail("path", path)
	}
	return true, nil
}

// envKey maps SYMDEX_OUTPUT_SUMMARY_TYPE_WIDTH to output.summary_type_width.
// Variables without a section, and the directory overrides read by the paths
// package, are ignored.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	switch s {
	case paths.EnvSymdexConfigDir, paths.EnvSymdexDataDir:
		return ""
	}
	if !strings.Contains(key, "_") {
		return ""
	}
	return strings.Replace(key, "_", ".", 1)
}

func unmarshal(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}
	return &cfg, nil
}
