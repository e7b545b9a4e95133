// Package paths provides centralized path handling for symdex.
//
// Directories follow the XDG Base Directory specification:
//
//   - Config: $XDG_CONFIG_HOME/symdex (config.toml)
//   - Data: $XDG_DATA_HOME/symdex (default index.yaml)
//   - State: $XDG_STATE_HOME/symdex (symdex.log)
//
// # Environment Variables
//
//   - SYMDEX_CONFIG_DIR: override the config directory
//   - SYMDEX_DATA_DIR: override the data directory
//
// The project configuration file, .symdex.toml, is looked up from the
// working directory upwards.
package paths
