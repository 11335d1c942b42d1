// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"sort"
	"strings"
)

// CourseEntry is one catalog item as yielded by the document walk. The
// extractor reads entries but never mutates them.
type CourseEntry struct {
	// ID is the raw identifying attribute of the entry (e.g. "cse142").
	// It is not canonicalized.
	ID string `json:"id" yaml:"id"`

	// Description is the catalog prose for the course, including any
	// embedded prerequisite statement.
	Description string `json:"description" yaml:"description"`
}

// Canonicalize collapses textual variants of a course identifier to one key
// by removing spaces and lower-casing: "CSE 142" and "cse142" both become
// "cse142".
func Canonicalize(raw string) string {
	return strings.ToLower(strings.ReplaceAll(raw, " ", ""))
}

// DescriptionIndex maps canonical course identifiers to description text and
// remembers insertion order so consumers walk courses in document order.
type DescriptionIndex struct {
	order []string
	desc  map[string]string
}

// NewDescriptionIndex returns an empty index.
func NewDescriptionIndex() *DescriptionIndex {
	return &DescriptionIndex{desc: make(map[string]string)}
}

// Set records the description for id. An id seen before keeps its original
// position; only the text is replaced.
func (d *DescriptionIndex) Set(id, description string) {
	if _, ok := d.desc[id]; !ok {
		d.order = append(d.order, id)
	}
	d.desc[id] = description
}

// Get returns the description for id and whether it exists.
func (d *DescriptionIndex) Get(id string) (string, bool) {
	s, ok := d.desc[id]
	return s, ok
}

// Has reports whether id is a described course.
func (d *DescriptionIndex) Has(id string) bool {
	_, ok := d.desc[id]
	return ok
}

// Keys returns identifiers in insertion order. The slice is a copy.
func (d *DescriptionIndex) Keys() []string {
	out := make([]string, len(d.order))
	copy(out, d.order)
	return out
}

// Len returns the number of described courses.
func (d *DescriptionIndex) Len() int {
	return len(d.order)
}

// PrereqSet is an unordered set of canonical course identifiers.
type PrereqSet map[string]struct{}

// NewPrereqSet returns a set holding ids.
func NewPrereqSet(ids ...string) PrereqSet {
	s := make(PrereqSet, len(ids))
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

func (s PrereqSet) Add(id string)    { s[id] = struct{}{} }
func (s PrereqSet) Delete(id string) { delete(s, id) }
func (s PrereqSet) Len() int         { return len(s) }

// Has reports whether id is a member.
func (s PrereqSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Sorted returns the members in lexical order.
func (s PrereqSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// PrerequisiteIndex maps a course identifier to the identifiers it requires.
// Before resolution it may hold spurious candidates; Resolve narrows it in
// place.
type PrerequisiteIndex map[string]PrereqSet

// CatalogView is the read-only surface output adapters consume. Debug
// listing, graph rendering and export all go through it.
type CatalogView interface {
	// Courses returns described course identifiers in document order.
	Courses() []string
	// Description returns the catalog text for id, or "" if unknown.
	Description(id string) string
	// Prerequisites returns the resolved prerequisites of id, sorted.
	Prerequisites(id string) []string
}

// Catalog pairs the two indices produced by one extraction run.
type Catalog struct {
	Descriptions *DescriptionIndex
	Prereqs      PrerequisiteIndex
}

// NewCatalog returns a Catalog with empty indices.
func NewCatalog() *Catalog {
	return &Catalog{
		Descriptions: NewDescriptionIndex(),
		Prereqs:      make(PrerequisiteIndex),
	}
}

func (c *Catalog) Courses() []string { return c.Descriptions.Keys() }

func (c *Catalog) Description(id string) string {
	s, _ := c.Descriptions.Get(id)
	return s
}

func (c *Catalog) Prerequisites(id string) []string {
	set, ok := c.Prereqs[id]
	if !ok {
		return nil
	}
	return set.Sorted()
}
