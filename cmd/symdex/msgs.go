package symdex

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Query a prebuilt symbol index"
	MsgCompleteShort   = "List entries whose name starts with a prefix"
	MsgTypeShort       = "Print the type of a symbol"
	MsgLocateShort     = "Print where a symbol is defined"
	MsgPrintShort      = "Print matching entries through a format"
	MsgConfigShort     = "Print the effective configuration"
	MsgCompletionShort = "Generate shell completion script"

	// Flag descriptions
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagIndex     = "Index file to read (repeatable; replaces index.files)"
	MsgFlagOpen      = "Open a module for qualified paths (repeatable; replaces scope.open)"
	MsgFlagColor     = "Colour output: auto, always or never"
	MsgFlagRoot      = "Print locations relative to this project root"
	MsgFlagTieBreak  = "Pick among several matches: first or shortest"
	MsgFlagConfig    = "User config file (default $XDG_CONFIG_HOME/symdex/config.toml)"
	MsgFlagSexp      = "Print an s-expression"
	MsgFlagFormat    = "Print each entry through this format template"
	MsgFlagInterface = "Prefer signature (interface) locations"

	// Error messages
	MsgErrNoCommand = "no command specified"
	MsgErrMaxArgs   = "accepts a query and an optional format, received %d arguments"

	// Version output
	MsgVersionFormat = "symdex version %s\n  commit: %s\n  built:  %s\n"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/complete-long.txt
	msgCompleteLongRaw string
	MsgCompleteLong    = strings.TrimSpace(msgCompleteLongRaw)

	//go:embed msgs/complete-example.txt
	msgCompleteExampleRaw string
	MsgCompleteExample    = strings.TrimRight(msgCompleteExampleRaw, "\n")

	//go:embed msgs/type-long.txt
	msgTypeLongRaw string
	MsgTypeLong    = strings.TrimSpace(msgTypeLongRaw)

	//go:embed msgs/type-example.txt
	msgTypeExampleRaw string
	MsgTypeExample    = strings.TrimRight(msgTypeExampleRaw, "\n")

	//go:embed msgs/locate-long.txt
	msgLocateLongRaw string
	MsgLocateLong    = strings.TrimSpace(msgLocateLongRaw)

	//go:embed msgs/locate-example.txt
	msgLocateExampleRaw string
	MsgLocateExample    = strings.TrimRight(msgLocateExampleRaw, "\n")

	//go:embed msgs/print-long.txt
	msgPrintLongRaw string
	MsgPrintLong    = strings.TrimSpace(msgPrintLongRaw)

	//go:embed msgs/print-example.txt
	msgPrintExampleRaw string
	MsgPrintExample    = strings.TrimRight(msgPrintExampleRaw, "\n")

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/no-index.txt
	msgNoIndexRaw string
	MsgNoIndex    = strings.TrimSpace(msgNoIndexRaw)

	//go:embed msgs/not-found.txt
	msgNotFoundRaw string
	MsgNotFound    = strings.TrimSpace(msgNotFoundRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"
)
