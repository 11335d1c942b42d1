// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pdiddy/prereq-graph/internal/graphviz"
	"github.com/pdiddy/prereq-graph/internal/render"
	"github.com/pdiddy/prereq-graph/pkg/types"
)

var graphCmd = &cobra.Command{
	Use:   "graph FILE OUTPUT",
	Short: "Render the prerequisite graph with Graphviz",
	Long: `Graph parses FILE, writes the prerequisite graph as DOT source to OUTPUT,
renders it with Graphviz to OUTPUT.<format>, and opens the result.

Every course and every resolved prerequisite is a node; each edge points from
a prerequisite to the course that requires it.`,
	Args: cobra.ExactArgs(2),
	RunE: runGraph,
}

func runGraph(cmd *cobra.Command, args []string) error {
	dotOnly, _ := cmd.Flags().GetBool("dot-only")
	return graph(cmd, args[0], args[1], dotOnly)
}

// graph writes the DOT source for in to out and, unless dotOnly, renders it.
func graph(cmd *cobra.Command, in, out string, dotOnly bool) error {
	c, cfg, err := loadCatalog(in)
	if err != nil {
		return err
	}

	if err := writeDOT(out, render.BuildGraph(c, cfg.Render.Title)); err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", out)
	if dotOnly {
		return nil
	}

	return renderAndView(cmd, graphviz.NewRenderer(cfg.Render.DotBinary), out, cfg.Render)
}

func writeDOT(path string, g *render.Graph) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := g.WriteDOT(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}

func renderAndView(cmd *cobra.Command, r *graphviz.Renderer, dotPath string, cfg types.RenderConfig) error {
	rendered, err := r.Render(dotPath, cfg.Format)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "rendered %s with %s\n", rendered, r.Name())

	if !cfg.View {
		return nil
	}
	return r.View(rendered)
}

func init() {
	graphCmd.Flags().String("format", "pdf", "Graphviz output format (pdf, svg, png, ...)")
	graphCmd.Flags().String("title", "CSE courses", "graph title written into the DOT source")
	graphCmd.Flags().String("dot", "dot", "Graphviz layout command")
	graphCmd.Flags().Bool("view", true, "open the rendered graph when done")
	graphCmd.Flags().Bool("dot-only", false, "write DOT source only, skip rendering")

	bindFlag("render.format", graphCmd.Flags().Lookup("format"))
	bindFlag("render.title", graphCmd.Flags().Lookup("title"))
	bindFlag("render.dot_binary", graphCmd.Flags().Lookup("dot"))
	bindFlag("render.view", graphCmd.Flags().Lookup("view"))

	rootCmd.AddCommand(graphCmd)
}
