//go:build mage

package main

import (
	"fmt"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

var catalogFile = filepath.Join("catalog", "cse.html")

// Fetch downloads the UW CSE catalog page into catalog/cse.html.
func Fetch() error {
	mg.Deps(Build, Init)
	return sh.RunV(binPath(), "fetch", catalogFile)
}

// Debug prints every course and its prerequisites from catalog/cse.html.
func Debug() error {
	mg.Deps(Build)
	return sh.RunV(binPath(), "debug", catalogFile)
}

// Graph renders catalog/cse.html to output/cse.gv.pdf without opening a viewer.
func Graph() error {
	mg.Deps(Build, Init)
	out := filepath.Join("output", "cse.gv")
	if err := sh.RunV(binPath(), "graph", "--view=false", catalogFile, out); err != nil {
		return fmt.Errorf("rendering graph: %w", err)
	}
	return nil
}
