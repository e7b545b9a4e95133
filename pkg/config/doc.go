// Package config loads symdex's layered configuration with koanf.
//
// Layers, lowest to highest precedence: embedded defaults, the user config
// file, the nearest project .symdex.toml, SYMDEX_ environment variables and
// command-line overrides. Lists replace rather than append.
package config
