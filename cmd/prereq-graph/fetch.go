// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/prereq-graph/internal/fetch"
	"github.com/pdiddy/prereq-graph/pkg/types"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch OUTPUT",
	Short: "Download a catalog page for offline parsing",
	Long: `Fetch downloads the course catalog page (by default the UW CSE catalog)
and saves it to OUTPUT. Throttled (429) and unavailable (503) responses are
retried with exponential backoff.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		_, err = fetch.Download(cmd.Context(), nil, cfg.Fetch, args[0], os.Stderr)
		return err
	},
}

func init() {
	fetchCmd.Flags().String("url", types.DefaultCatalogURL, "catalog page URL")
	fetchCmd.Flags().Duration("timeout", 30*time.Second, "HTTP request timeout")
	fetchCmd.Flags().String("user-agent", "prereq-graph/"+version, "User-Agent header")
	fetchCmd.Flags().Int("max-retries", 5, "retries on 429/503 responses")

	bindFlag("fetch.url", fetchCmd.Flags().Lookup("url"))
	bindFlag("fetch.timeout", fetchCmd.Flags().Lookup("timeout"))
	bindFlag("fetch.user_agent", fetchCmd.Flags().Lookup("user-agent"))
	bindFlag("fetch.max_retries", fetchCmd.Flags().Lookup("max-retries"))

	rootCmd.AddCommand(fetchCmd)
}
