// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds HTTP settings for the catalog fetch.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with requests
	// (e.g. "prereq-graph/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`

	// MaxRetries bounds retries on 429/503 responses (default 5).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// FetchConfig holds settings for downloading the catalog page.
type FetchConfig struct {
	HTTPConfig `yaml:",inline"`

	// URL is the catalog page to download.
	URL string `json:"url" yaml:"url"`
}

// DefaultCatalogURL is the department catalog page the tool was built around.
const DefaultCatalogURL = "https://www.washington.edu/students/crscat/cse.html"

// CatalogConfig controls how the input document is walked.
type CatalogConfig struct {
	// EntryTag restricts entries to elements with this tag name. Empty means
	// any element carrying a name attribute is an entry.
	EntryTag string `json:"entry_tag" yaml:"entry_tag"`
}

// SelfExclusionMode selects how a course's mention of itself is removed from
// its own candidate set.
type SelfExclusionMode string

const (
	// SelfExclusionLoose compares each canonical candidate against the raw,
	// non-canonicalized entry attribute. A mention differing from the raw
	// attribute in case or spacing survives.
	SelfExclusionLoose SelfExclusionMode = "loose"

	// SelfExclusionCanonical compares against the canonicalized attribute,
	// so no course ever lists itself.
	SelfExclusionCanonical SelfExclusionMode = "canonical"
)

// Valid reports whether m is a known mode.
func (m SelfExclusionMode) Valid() bool {
	return m == SelfExclusionLoose || m == SelfExclusionCanonical
}

// ExtractionConfig holds settings for prerequisite extraction and resolution.
type ExtractionConfig struct {
	// SubjectPrefix is the restricted subject code (default "cse").
	// Unresolved candidates starting with it are dropped; others are kept.
	SubjectPrefix string `json:"subject_prefix" yaml:"subject_prefix"`

	// KeepUnresolved turns the subject check off so every candidate
	// survives resolution.
	KeepUnresolved bool `json:"keep_unresolved" yaml:"keep_unresolved"`

	// NonMajorsMarker is the phrase that excludes an entry from both indices.
	NonMajorsMarker string `json:"non_majors_marker" yaml:"non_majors_marker"`

	// SelfExclusion selects loose (default) or canonical self-exclusion.
	SelfExclusion SelfExclusionMode `json:"self_exclusion" yaml:"self_exclusion"`
}

// Extraction defaults.
const (
	DefaultSubjectPrefix   = "cse"
	DefaultNonMajorsMarker = "Intended for non-majors"
)

// WithDefaults returns a copy of c with empty fields filled in.
func (c ExtractionConfig) WithDefaults() ExtractionConfig {
	if c.SubjectPrefix == "" {
		c.SubjectPrefix = DefaultSubjectPrefix
	}
	if c.NonMajorsMarker == "" {
		c.NonMajorsMarker = DefaultNonMajorsMarker
	}
	if c.SelfExclusion == "" {
		c.SelfExclusion = SelfExclusionLoose
	}
	return c
}

// RenderConfig holds settings for the graph artifact.
type RenderConfig struct {
	// Title is written as a comment at the top of the DOT source.
	Title string `json:"title" yaml:"title"`

	// Format is the Graphviz output format passed as -T (default "pdf").
	Format string `json:"format" yaml:"format"`

	// DotBinary is the Graphviz layout command (default "dot").
	DotBinary string `json:"dot_binary" yaml:"dot_binary"`

	// View opens the rendered artifact after writing it.
	View bool `json:"view" yaml:"view"`
}

// ExportFormat selects the export serialization.
type ExportFormat string

const (
	ExportYAML ExportFormat = "yaml"
	ExportJSON ExportFormat = "json"
)

// Config groups all settings for one run.
type Config struct {
	Catalog    CatalogConfig    `json:"catalog" yaml:"catalog"`
	Extraction ExtractionConfig `json:"extraction" yaml:"extraction"`
	Render     RenderConfig     `json:"render" yaml:"render"`
	Fetch      FetchConfig      `json:"fetch" yaml:"fetch"`
}
