// Package main is the entry point for the character sheet CLI
package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/CraneCD/dnd-55e-character-sheet/internal/errors"
)

func main() {
	if err := newRootCmd(buildApp).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, formatError(err))
		os.Exit(errors.GetCode(err).ExitCode())
	}
}

// formatError renders err with its metadata as sorted key=value pairs
func formatError(err error) string {
	meta := errors.GetMeta(err)
	if len(meta) == 0 {
		return "Error: " + err.Error()
	}

	keys := make([]string, 0, len(meta))
	for k := range meta {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, fmt.Sprintf("%s=%v", k, meta[k]))
	}
	return fmt.Sprintf("Error: %v (%s)", err, strings.Join(pairs, " "))
}
