// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/prereq-graph/internal/render"
)

var debugCmd = &cobra.Command{
	Use:   "debug FILE",
	Short: "Parse a catalog and print each course with its prerequisites",
	Long: `Debug parses FILE and prints every retained course in document order:
its identifier, its description, and its resolved prerequisite set.`,
	Args: cobra.ExactArgs(1),
	RunE: runDebug,
}

func runDebug(cmd *cobra.Command, args []string) error {
	c, _, err := loadCatalog(args[0])
	if err != nil {
		return err
	}
	return render.DebugPrint(cmd.OutOrStdout(), c)
}

func init() {
	rootCmd.AddCommand(debugCmd)
}
