// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalize(t *testing.T) {
	tests := []struct{ in, want string }{
		{"CSE 143", "cse143"},
		{"cse143", "cse143"},
		{" E E 271", "ee271"},
		{"MATH  124", "math124"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Canonicalize(tt.in), "Canonicalize(%q)", tt.in)
	}
	assert.Equal(t, Canonicalize("CSE 143"), Canonicalize("cse143"))
}

func TestDescriptionIndex(t *testing.T) {
	d := NewDescriptionIndex()
	d.Set("cse143", "b")
	d.Set("cse142", "a")
	d.Set("cse143", "b2")

	assert.Equal(t, 2, d.Len())
	assert.Equal(t, []string{"cse143", "cse142"}, d.Keys())
	got, ok := d.Get("cse143")
	assert.True(t, ok)
	assert.Equal(t, "b2", got)
	assert.False(t, d.Has("cse311"))

	keys := d.Keys()
	keys[0] = "mutated"
	assert.Equal(t, "cse143", d.Keys()[0], "Keys returns a copy")
}

func TestPrereqSet(t *testing.T) {
	s := NewPrereqSet("math124", "cse142", "cse142")
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Has("cse142"))
	assert.Equal(t, []string{"cse142", "math124"}, s.Sorted())

	s.Delete("cse142")
	assert.False(t, s.Has("cse142"))
	assert.Equal(t, []string{"math124"}, s.Sorted())
}

func TestCatalogView(t *testing.T) {
	c := NewCatalog()
	c.Descriptions.Set("cse143", "Continuation.")
	c.Prereqs["cse143"] = NewPrereqSet("cse142")

	var v CatalogView = c
	assert.Equal(t, []string{"cse143"}, v.Courses())
	assert.Equal(t, "Continuation.", v.Description("cse143"))
	assert.Equal(t, "", v.Description("nope"))
	assert.Equal(t, []string{"cse142"}, v.Prerequisites("cse143"))
	assert.Nil(t, v.Prerequisites("nope"))
}

func TestExtractionConfigDefaults(t *testing.T) {
	cfg := ExtractionConfig{}.WithDefaults()
	assert.Equal(t, DefaultNonMajorsMarker, cfg.NonMajorsMarker)
	assert.Equal(t, SelfExclusionLoose, cfg.SelfExclusion)
	assert.Equal(t, DefaultSubjectPrefix, cfg.SubjectPrefix)
	assert.False(t, cfg.KeepUnresolved)

	assert.True(t, SelfExclusionCanonical.Valid())
	assert.False(t, SelfExclusionMode("strict").Valid())
}
