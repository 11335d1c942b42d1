// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/prereq-graph/internal/catalog"
	"github.com/pdiddy/prereq-graph/internal/render"
	"github.com/pdiddy/prereq-graph/pkg/types"
)

const alphaBetaPage = `<html><body>
<a name="ALPHA 100"><p><b>ALPHA 100 Alpha (3)</b><br>Requires BETA 100. Intro course.<br><a href="#">details</a></p></a>
<a name="BETA 100"><p><b>BETA 100 Beta (3)</b><br>No prerequisites. Intro course, preceded by nothing notable.<br><a href="#">details</a></p></a>
<a name="GAMMA 200"><p><b>GAMMA 200 Gamma (3)</b><br>Requires ALPHA 100. Intended for non-majors.<br><a href="#">details</a></p></a>
</body></html>`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig()
	require.NoError(t, err)

	assert.Equal(t, "cse", cfg.Extraction.SubjectPrefix)
	assert.Equal(t, types.DefaultNonMajorsMarker, cfg.Extraction.NonMajorsMarker)
	assert.Equal(t, types.SelfExclusionLoose, cfg.Extraction.SelfExclusion)
	assert.Equal(t, "pdf", cfg.Render.Format)
	assert.True(t, cfg.Render.View)
	assert.Equal(t, types.DefaultCatalogURL, cfg.Fetch.URL)
}

func TestLoadConfigRejectsUnknownMode(t *testing.T) {
	viper.Set("extraction.self_exclusion", "strict")
	t.Cleanup(func() { viper.Set("extraction.self_exclusion", "loose") })

	_, err := loadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "strict")
}

func TestLoadCatalog(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "catalog.html", alphaBetaPage)

	c, _, err := loadCatalog(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"alpha100", "beta100"}, c.Courses())
	assert.Equal(t, []string{"beta100"}, c.Prerequisites("alpha100"))
	assert.Empty(t, c.Prerequisites("beta100"))

	dotPath := filepath.Join(dir, "out", "graph.gv")
	require.NoError(t, writeDOT(dotPath, render.BuildGraph(c, "")))
	data, err := os.ReadFile(dotPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"beta100" -> "alpha100"`)
}

func TestLoadCatalogErrors(t *testing.T) {
	dir := t.TempDir()

	_, _, err := loadCatalog(filepath.Join(dir, "missing.html"))
	var fa *catalog.FileAccessError
	assert.True(t, errors.As(err, &fa), "got %v", err)

	bad := writeFile(t, dir, "bad.html", `<a name="cse142"></a>`)
	_, _, err = loadCatalog(bad)
	var fe *catalog.InputFormatError
	require.True(t, errors.As(err, &fe), "got %v", err)
	assert.Equal(t, "cse142", fe.ID)
}
