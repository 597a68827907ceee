package main

import (
	"fmt"
	"os"

	"github.com/shearwater-labs/needle/pkg/caseset"
	"github.com/spf13/cobra"
)

// loadCaseSet resolves the --cases / --set flags shared by run, list, and
// select: an explicit path (file or directory) wins over the built-in sets.
func loadCaseSet(cmd *cobra.Command, path, set string) ([]*caseset.Case, error) {
	loader := caseset.NewLoader()
	loader.OnSkip(func(p string, err error) {
		if !quiet {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: skipping %s: %v\n", p, err)
		}
	})

	if path != "" {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("cases path: %w", err)
		}
		if info.IsDir() {
			return loader.LoadDir(path)
		}
		return loader.LoadFile(path)
	}

	switch set {
	case "shared":
		return loader.LoadShared()
	case "hidden":
		return loader.LoadHidden()
	case "all":
		return loader.LoadAll()
	default:
		return nil, fmt.Errorf("unknown case set %q (want shared, hidden, or all)", set)
	}
}
