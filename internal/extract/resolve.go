// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"strings"

	"go.uber.org/zap"

	"github.com/pdiddy/prereq-graph/pkg/types"
)

// Resolve narrows every candidate set in c in place. A candidate survives if
// it is a described course, or if it does not start with the restricted
// subject prefix (an out-of-department course the page cannot confirm).
// Same-department candidates with no description are dropped.
func Resolve(c *types.Catalog, subjectPrefix string, log *zap.Logger) {
	if log == nil {
		log = zap.NewNop()
	}
	prefix := strings.ToLower(subjectPrefix)

	for course, set := range c.Prereqs {
		for id := range set {
			if keep(c.Descriptions, prefix, id) {
				continue
			}
			log.Debug("dropping unresolved prerequisite",
				zap.String("course", course),
				zap.String("prereq", id))
			set.Delete(id)
		}
	}
}

func keep(desc *types.DescriptionIndex, prefix, id string) bool {
	if desc.Has(id) {
		return true
	}
	return prefix == "" || !strings.HasPrefix(id, prefix)
}
