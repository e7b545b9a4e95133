package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/symdex/cmd/symdex"
	"github.com/arthur-debert/symdex/internal/version"
)

func main() {
	rootCmd := symdex.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "SYMDEX",
		Section: "1",
		Source:  "symdex " + version.Version,
		Manual:  "symdex manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
