package main

import (
	"os"

	"github.com/arthur-debert/symdex/cmd/symdex"
	"github.com/arthur-debert/symdex/pkg/errors"
)

func main() {
	rootCmd := symdex.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		symdex.PrintError(os.Stderr, err)
		os.Exit(errors.ExitCode(err))
	}
}
