// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/prereq-graph/internal/export"
	"github.com/pdiddy/prereq-graph/pkg/types"
)

var exportCmd = &cobra.Command{
	Use:   "export FILE",
	Short: "Export courses and resolved prerequisites as YAML or JSON",
	Long: `Export parses FILE and writes one record per course (id, description,
prerequisites) in document order. Output goes to stdout unless --output is
given.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	output, _ := cmd.Flags().GetString("output")

	c, _, err := loadCatalog(args[0])
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if output != "" && output != "-" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("creating %s: %w", output, err)
		}
		defer f.Close()
		w = f
	}

	if err := export.Write(w, c, types.ExportFormat(format)); err != nil {
		return err
	}
	if w != os.Stdout {
		fmt.Fprintf(os.Stderr, "Exported %d courses to %s\n", c.Descriptions.Len(), output)
	}
	return nil
}

func init() {
	exportCmd.Flags().String("format", "yaml", "export format: yaml or json")
	exportCmd.Flags().StringP("output", "o", "", "output file (default: stdout)")

	rootCmd.AddCommand(exportCmd)
}
