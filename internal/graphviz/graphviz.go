// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package graphviz renders DOT source with the Graphviz command-line tools
// and opens the result in the desktop viewer.
package graphviz

import (
	"fmt"
	"os/exec"
	"runtime"
)

const (
	defaultBinary = "dot"
	defaultFormat = "pdf"
)

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	Run(name string, args ...string) error
	Start(name string, args ...string) error
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) Run(name string, args ...string) error {
	out, err := exec.Command(name, args...).CombinedOutput()
	if err != nil && len(out) > 0 {
		return fmt.Errorf("%w: %s", err, out)
	}
	return err
}

// Start launches a viewer without waiting for it to exit.
func (o *osExecutor) Start(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}

// Renderer runs a Graphviz layout binary over DOT files.
type Renderer struct {
	bin  string
	goos string
	exec executor
}

var defaultExec = &osExecutor{}

// NewRenderer returns a Renderer for bin ("dot" when empty).
func NewRenderer(bin string) *Renderer {
	return newRenderer(bin, runtime.GOOS, defaultExec)
}

func newRenderer(bin, goos string, exec executor) *Renderer {
	if bin == "" {
		bin = defaultBinary
	}
	return &Renderer{bin: bin, goos: goos, exec: exec}
}

// Name returns the layout binary name.
func (r *Renderer) Name() string { return r.bin }

// Available reports whether the layout binary exists on PATH.
func (r *Renderer) Available() bool {
	_, err := r.exec.LookPath(r.bin)
	return err == nil
}

// Render lays out dotPath into dotPath.<format> and returns the output path.
func (r *Renderer) Render(dotPath, format string) (string, error) {
	if format == "" {
		format = defaultFormat
	}
	if !r.Available() {
		return "", fmt.Errorf("graphviz %s not found on PATH", r.bin)
	}

	out := dotPath + "." + format
	if err := r.exec.Run(r.bin, "-T"+format, "-o", out, dotPath); err != nil {
		return "", fmt.Errorf("rendering %s with %s: %w", dotPath, r.bin, err)
	}
	return out, nil
}

// View opens path in the platform's default viewer.
func (r *Renderer) View(path string) error {
	opener, args := openCommand(r.goos, path)
	if _, err := r.exec.LookPath(opener); err != nil {
		return fmt.Errorf("no viewer available (%s): %w", opener, err)
	}
	if err := r.exec.Start(opener, args...); err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	return nil
}

func openCommand(goos, path string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{path}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", path}
	default:
		return "xdg-open", []string{path}
	}
}
