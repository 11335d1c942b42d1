// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/prereq-graph/internal/catalog"
	"github.com/pdiddy/prereq-graph/internal/extract"
	"github.com/pdiddy/prereq-graph/pkg/types"
)

// bindFlag ties a config key to a flag. Flags set on the command line win
// over the config file and environment.
func bindFlag(key string, f *pflag.Flag) {
	if err := viper.BindPFlag(key, f); err != nil {
		panic(fmt.Sprintf("binding %s: %v", key, err))
	}
}

// loadConfig assembles the run configuration from viper.
func loadConfig() (types.Config, error) {
	cfg := types.Config{
		Catalog: types.CatalogConfig{
			EntryTag: viper.GetString("catalog.entry_tag"),
		},
		Extraction: types.ExtractionConfig{
			SubjectPrefix:   viper.GetString("extraction.subject_prefix"),
			KeepUnresolved:  viper.GetBool("extraction.keep_unresolved"),
			NonMajorsMarker: viper.GetString("extraction.non_majors_marker"),
			SelfExclusion:   types.SelfExclusionMode(viper.GetString("extraction.self_exclusion")),
		},
		Render: types.RenderConfig{
			Title:     viper.GetString("render.title"),
			Format:    viper.GetString("render.format"),
			DotBinary: viper.GetString("render.dot_binary"),
			View:      viper.GetBool("render.view"),
		},
		Fetch: types.FetchConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:    viper.GetDuration("fetch.timeout"),
				UserAgent:  viper.GetString("fetch.user_agent"),
				MaxRetries: viper.GetInt("fetch.max_retries"),
			},
			URL: viper.GetString("fetch.url"),
		},
	}

	cfg.Extraction = cfg.Extraction.WithDefaults()
	if !cfg.Extraction.SelfExclusion.Valid() {
		return types.Config{}, fmt.Errorf("invalid self-exclusion %q: use loose or canonical", cfg.Extraction.SelfExclusion)
	}
	return cfg, nil
}

func newLogger() *zap.Logger {
	if !viper.GetBool("verbose") {
		return zap.NewNop()
	}
	log, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return log
}

// loadCatalog reads path, extracts and resolves prerequisites.
func loadCatalog(path string) (*types.Catalog, types.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, types.Config{}, err
	}

	log := newLogger()
	defer log.Sync()

	doc, err := catalog.Load(path, cfg.Catalog, catalog.DefaultDescription)
	if err != nil {
		return nil, types.Config{}, err
	}
	log.Debug("loaded catalog", zap.String("path", path))

	c, err := extract.Run(doc, cfg.Extraction, log)
	if err != nil {
		return nil, types.Config{}, fmt.Errorf("extracting %s: %w", path, err)
	}
	return c, cfg, nil
}
