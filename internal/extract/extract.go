// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract finds prerequisite references in course descriptions and
// resolves them against the catalog.
package extract

import (
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/pdiddy/prereq-graph/pkg/types"
)

// courseRefRe matches a run of capitals and spaces, a space, then digits,
// when preceded by a character that is neither a capital nor a space. The
// boundary keeps a course header such as "CSE 142" at the start of a block
// from matching. It can over- and under-match; callers depend on its exact
// behavior, so keep the boundary rule as is.
var courseRefRe = regexp.MustCompile(`[^A-Z ]([A-Z ]+ [0-9]+)`)

// EntrySource yields course entries in document order. catalog.Document
// implements it.
type EntrySource interface {
	Walk(fn func(types.CourseEntry) error) error
}

// Extract builds the description index and the raw prerequisite index from
// src. Entries carrying the non-majors marker are left out of both. Any
// error from src aborts extraction and no partial catalog is returned.
func Extract(src EntrySource, cfg types.ExtractionConfig, log *zap.Logger) (*types.Catalog, error) {
	cfg = cfg.WithDefaults()
	if !cfg.SelfExclusion.Valid() {
		return nil, fmt.Errorf("unknown self-exclusion mode %q: use loose or canonical", cfg.SelfExclusion)
	}
	if log == nil {
		log = zap.NewNop()
	}

	c := types.NewCatalog()
	skipped := 0

	err := src.Walk(func(e types.CourseEntry) error {
		if strings.Contains(e.Description, cfg.NonMajorsMarker) {
			log.Debug("skipping non-majors course", zap.String("id", e.ID))
			skipped++
			return nil
		}

		key := types.Canonicalize(e.ID)
		c.Descriptions.Set(key, e.Description)
		c.Prereqs[key] = Candidates(e, cfg.SelfExclusion)
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Debug("extracted catalog",
		zap.Int("courses", c.Descriptions.Len()),
		zap.Int("non_majors", skipped))
	return c, nil
}

// Candidates scans e's description for course references and returns their
// canonical forms, minus the entry's own identifier as selected by mode.
//
// In loose mode a candidate is compared with the raw attribute, so an entry
// named "CSE 142" still lists "cse142" if its text mentions it. Canonical
// mode compares against the canonical identifier and never lists itself.
func Candidates(e types.CourseEntry, mode types.SelfExclusionMode) types.PrereqSet {
	self := e.ID
	if mode == types.SelfExclusionCanonical {
		self = types.Canonicalize(e.ID)
	}

	set := types.NewPrereqSet()
	for _, m := range courseRefRe.FindAllStringSubmatch(e.Description, -1) {
		id := types.Canonicalize(m[1])
		if id == self {
			continue
		}
		set.Add(id)
	}
	return set
}

// Run extracts and resolves in one pass. It is what every output mode uses.
// With cfg.KeepUnresolved set, resolution keeps every candidate.
func Run(src EntrySource, cfg types.ExtractionConfig, log *zap.Logger) (*types.Catalog, error) {
	cfg = cfg.WithDefaults()
	c, err := Extract(src, cfg, log)
	if err != nil {
		return nil, err
	}

	prefix := cfg.SubjectPrefix
	if cfg.KeepUnresolved {
		prefix = ""
	}
	Resolve(c, prefix, log)
	return c, nil
}
