// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog reads a course catalog page and yields its course entries.
// Entries are elements carrying a name attribute; each entry's description
// is located by an injected DescriptionFunc so the extraction logic never
// depends on the concrete page layout.
package catalog

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"golang.org/x/net/html"

	"github.com/pdiddy/prereq-graph/pkg/types"
)

// nameAttr is the attribute that marks an element as a course entry.
const nameAttr = "name"

// DescriptionFunc locates the catalog description text inside an entry
// element. It returns an error wrapping ErrMissingBlock or ErrNotSingleText
// when the entry does not have the expected shape.
type DescriptionFunc func(entry *html.Node) (string, error)

// Document is a parsed catalog page.
type Document struct {
	root     *html.Node
	entryTag string
	describe DescriptionFunc
}

// Load reads the whole file at path, closes it, and parses it. A read
// failure is a *FileAccessError; parsing has not started at that point.
func Load(path string, cfg types.CatalogConfig, describe DescriptionFunc) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileAccessError{Path: path, Err: err}
	}
	return Parse(bytes.NewReader(data), cfg, describe)
}

// Parse builds a Document from r. A nil describe selects
// DefaultDescription.
func Parse(r io.Reader, cfg types.CatalogConfig, describe DescriptionFunc) (*Document, error) {
	root, err := buildTree(r)
	if err != nil {
		return nil, &InputFormatError{Err: fmt.Errorf("tokenizing: %w", err)}
	}
	if describe == nil {
		describe = DefaultDescription
	}
	return &Document{root: root, entryTag: cfg.EntryTag, describe: describe}, nil
}

// Walk calls fn for every course entry in document order. An entry whose
// description cannot be located aborts the walk with an *InputFormatError
// naming the entry. An error from fn is returned unchanged.
func (d *Document) Walk(fn func(types.CourseEntry) error) error {
	var visit func(n *html.Node) error
	visit = func(n *html.Node) error {
		if n.Type == html.ElementNode && d.isEntry(n) {
			id, _ := attr(n, nameAttr)
			desc, err := d.describe(n)
			if err != nil {
				return &InputFormatError{ID: id, Err: err}
			}
			if err := fn(types.CourseEntry{ID: id, Description: desc}); err != nil {
				return err
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if err := visit(c); err != nil {
				return err
			}
		}
		return nil
	}
	return visit(d.root)
}

func (d *Document) isEntry(n *html.Node) bool {
	if d.entryTag != "" && n.Data != d.entryTag {
		return false
	}
	_, ok := attr(n, nameAttr)
	return ok
}

// DefaultDescription matches the catalog layout
//
//	<a name="cse142"><p><b>CSE 142 ...</b><br>DESCRIPTION<br><a>...</a></p></a>
//
// The description is the third-from-last child of the entry's first child,
// reduced to its single string.
func DefaultDescription(entry *html.Node) (string, error) {
	block := entry.FirstChild
	if block == nil {
		return "", fmt.Errorf("%w: entry has no children", ErrMissingBlock)
	}
	if block.Type != html.ElementNode {
		return "", fmt.Errorf("%w: first child is not an element", ErrMissingBlock)
	}

	kids := children(block)
	if len(kids) < 3 {
		return "", fmt.Errorf("%w: <%s> has %d children, need at least 3", ErrMissingBlock, block.Data, len(kids))
	}
	return singleString(kids[len(kids)-3])
}

// singleString descends through elements that have exactly one child until
// it reaches a string node.
func singleString(n *html.Node) (string, error) {
	for {
		switch n.Type {
		case html.TextNode, html.CommentNode:
			return n.Data, nil
		case html.ElementNode:
			if n.FirstChild == nil || n.FirstChild != n.LastChild {
				return "", fmt.Errorf("%w: <%s>", ErrNotSingleText, n.Data)
			}
			n = n.FirstChild
		default:
			return "", ErrNotSingleText
		}
	}
}
