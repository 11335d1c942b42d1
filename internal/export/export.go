// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export serializes a resolved catalog to YAML or JSON.
package export

import (
	"encoding/json"
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/prereq-graph/pkg/types"
)

// Course is one exported catalog entry.
type Course struct {
	ID            string   `json:"id" yaml:"id"`
	Description   string   `json:"description" yaml:"description"`
	Prerequisites []string `json:"prerequisites" yaml:"prerequisites"`
}

// Courses flattens v into document order. Prerequisites are sorted and
// never nil so empty sets serialize as [].
func Courses(v types.CatalogView) []Course {
	ids := v.Courses()
	out := make([]Course, len(ids))
	for i, id := range ids {
		pre := v.Prerequisites(id)
		if pre == nil {
			pre = []string{}
		}
		out[i] = Course{ID: id, Description: v.Description(id), Prerequisites: pre}
	}
	return out
}

// Write encodes v to w in the given format.
func Write(w io.Writer, v types.CatalogView, format types.ExportFormat) error {
	courses := Courses(v)

	switch format {
	case types.ExportYAML, "":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(courses); err != nil {
			return fmt.Errorf("marshaling YAML: %w", err)
		}
		return enc.Close()
	case types.ExportJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(courses); err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}
}
