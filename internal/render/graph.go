// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/pdiddy/prereq-graph/pkg/types"
)

// Edge points from a prerequisite to the course that requires it.
type Edge struct {
	From string `json:"from" yaml:"from"`
	To   string `json:"to" yaml:"to"`
}

// Graph is a directed prerequisite graph with nodes in first-seen order.
type Graph struct {
	Title string
	nodes []string
	seen  map[string]bool
	edges []Edge
}

// BuildGraph adds every described course as a node, then walks courses in
// document order and adds an edge prerequisite -> course for each resolved
// prerequisite. Prerequisites without a description become nodes when first
// referenced.
func BuildGraph(v types.CatalogView, title string) *Graph {
	g := &Graph{Title: title, seen: make(map[string]bool)}

	courses := v.Courses()
	for _, id := range courses {
		g.addNode(id)
	}
	for _, id := range courses {
		for _, pre := range v.Prerequisites(id) {
			g.addNode(pre)
			g.edges = append(g.edges, Edge{From: pre, To: id})
		}
	}
	return g
}

func (g *Graph) addNode(id string) {
	if g.seen[id] {
		return
	}
	g.seen[id] = true
	g.nodes = append(g.nodes, id)
}

// Nodes returns node identifiers in insertion order.
func (g *Graph) Nodes() []string {
	out := make([]string, len(g.nodes))
	copy(out, g.nodes)
	return out
}

// Edges returns edges in insertion order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// WriteDOT writes the graph as Graphviz DOT source.
func (g *Graph) WriteDOT(w io.Writer) error {
	// bufio.Writer holds the first write error; Flush reports it.
	bw := bufio.NewWriter(w)
	if g.Title != "" {
		fmt.Fprintf(bw, "// %s\n", g.Title)
	}
	bw.WriteString("digraph {\n")
	for _, n := range g.nodes {
		fmt.Fprintf(bw, "\t%s\n", strconv.Quote(n))
	}
	for _, e := range g.edges {
		fmt.Fprintf(bw, "\t%s -> %s\n", strconv.Quote(e.From), strconv.Quote(e.To))
	}
	bw.WriteString("}\n")
	return bw.Flush()
}
