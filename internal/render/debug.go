// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render turns a resolved catalog into human-facing output: a debug
// listing or a Graphviz DOT graph.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/prereq-graph/pkg/types"
)

// DebugPrint writes every course in document order as
//
//	cse143:
//		<description>
//		[cse142]
func DebugPrint(w io.Writer, v types.CatalogView) error {
	for _, id := range v.Courses() {
		prereqs := strings.Join(v.Prerequisites(id), ", ")
		if _, err := fmt.Fprintf(w, "%s:\n\t%s\n\t[%s]\n", id, v.Description(id), prereqs); err != nil {
			return fmt.Errorf("writing %s: %w", id, err)
		}
	}
	return nil
}
