// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the prereq-graph CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/prereq-graph/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the prereq-graph CLI. Run without a
// subcommand it prints usage.
var rootCmd = &cobra.Command{
	Use:   "prereq-graph",
	Short: "Extract a course prerequisite graph from a catalog page",
	Long: `prereq-graph parses an HTML course catalog (for example the page at
https://www.washington.edu/students/crscat/cse.html) into a list of courses,
finds prerequisite references in each description, and prints or renders the
resulting graph.

Prerequisite detection is lexical. It does not distinguish between "OR" and
"AND" requirements: every referenced course is treated as required.`,
	Args: cobra.MaximumNArgs(1),
}

// runRoot handles the flag-style invocation: --debug-print FILE and
// --graphviz FILE OUTPUT (or FILE,OUTPUT). With neither it prints help.
func runRoot(cmd *cobra.Command, args []string) error {
	debugFile, _ := cmd.Flags().GetString("debug-print")
	gv, _ := cmd.Flags().GetString("graphviz")

	switch {
	case debugFile != "":
		if len(args) > 0 {
			return fmt.Errorf("unexpected argument %q after --debug-print", args[0])
		}
		return runDebug(cmd, []string{debugFile})
	case gv != "":
		in, out, err := graphvizArgs(gv, args)
		if err != nil {
			return err
		}
		dotOnly, _ := cmd.Flags().GetBool("dot-only")
		return graph(cmd, in, out, dotOnly)
	case len(args) > 0:
		return fmt.Errorf("unknown command %q for %q", args[0], cmd.CommandPath())
	default:
		return cmd.Help()
	}
}

// graphvizArgs pairs the --graphviz value with the output path, given either
// as the next positional argument or after a comma.
func graphvizArgs(value string, args []string) (string, string, error) {
	if in, out, ok := strings.Cut(value, ","); ok {
		if len(args) > 0 || in == "" || out == "" {
			return "", "", fmt.Errorf("--graphviz takes FILE OUTPUT")
		}
		return in, out, nil
	}
	if len(args) != 1 {
		return "", "", fmt.Errorf("--graphviz takes FILE OUTPUT")
	}
	return value, args[0], nil
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.RunE = runRoot
	rootCmd.Flags().String("debug-print", "", "parse FILE and print debug output (same as the debug command)")
	rootCmd.Flags().String("graphviz", "", "FILE OUTPUT: parse FILE and render the graph to OUTPUT (same as the graph command)")
	rootCmd.Flags().Bool("dot-only", false, "with --graphviz, write DOT source only")

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./prereq-graph.yaml or ~/.config/prereq-graph/prereq-graph.yaml)")
	pf.String("subject-prefix", types.DefaultSubjectPrefix, "restricted subject code; unresolved references with this prefix are dropped")
	pf.Bool("keep-unresolved", false, "keep every referenced course, skipping the subject-prefix check")
	pf.String("non-majors-marker", types.DefaultNonMajorsMarker, "phrase that excludes a course from the graph")
	pf.String("self-exclusion", string(types.SelfExclusionLoose), "self-reference comparison: loose (raw attribute) or canonical")
	pf.String("entry-tag", "", "only treat this element as a course entry (default: any element with a name attribute)")
	pf.BoolP("verbose", "v", false, "log extraction diagnostics to stderr")

	bindFlag("extraction.subject_prefix", pf.Lookup("subject-prefix"))
	bindFlag("extraction.keep_unresolved", pf.Lookup("keep-unresolved"))
	bindFlag("extraction.non_majors_marker", pf.Lookup("non-majors-marker"))
	bindFlag("extraction.self_exclusion", pf.Lookup("self-exclusion"))
	bindFlag("catalog.entry_tag", pf.Lookup("entry-tag"))
	bindFlag("verbose", pf.Lookup("verbose"))
}

func initConfig() {
	// A missing .env is the normal case.
	_ = godotenv.Load()

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("prereq-graph")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "prereq-graph"))
		}
	}

	viper.SetEnvPrefix("PREREQ_GRAPH")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
