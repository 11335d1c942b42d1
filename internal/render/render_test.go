// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"bytes"
	"errors"
	"testing"

	"github.com/pdiddy/prereq-graph/pkg/types"
)

func alphaBeta() *types.Catalog {
	c := types.NewCatalog()
	c.Descriptions.Set("alpha100", "Requires BETA 100. Intro course.")
	c.Descriptions.Set("beta100", "No prerequisites.")
	c.Prereqs["alpha100"] = types.NewPrereqSet("beta100")
	c.Prereqs["beta100"] = types.NewPrereqSet()
	return c
}

func TestDebugPrint(t *testing.T) {
	var buf bytes.Buffer
	if err := DebugPrint(&buf, alphaBeta()); err != nil {
		t.Fatal(err)
	}
	want := "alpha100:\n\tRequires BETA 100. Intro course.\n\t[beta100]\n" +
		"beta100:\n\tNo prerequisites.\n\t[]\n"
	if got := buf.String(); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestBuildGraph_EndToEnd(t *testing.T) {
	g := BuildGraph(alphaBeta(), "CSE courses")

	nodes := g.Nodes()
	if len(nodes) != 2 || nodes[0] != "alpha100" || nodes[1] != "beta100" {
		t.Errorf("nodes = %v", nodes)
	}
	edges := g.Edges()
	if len(edges) != 1 || edges[0] != (Edge{From: "beta100", To: "alpha100"}) {
		t.Errorf("edges = %v, want [beta100 -> alpha100]", edges)
	}
}

func TestBuildGraph_ExternalPrerequisiteBecomesNode(t *testing.T) {
	c := types.NewCatalog()
	c.Descriptions.Set("cse311", "Prerequisite: CSE 143; MATH 126.")
	c.Descriptions.Set("cse143", "Intro.")
	c.Prereqs["cse311"] = types.NewPrereqSet("math126", "cse143")
	c.Prereqs["cse143"] = types.NewPrereqSet()

	g := BuildGraph(c, "")
	wantNodes := []string{"cse311", "cse143", "math126"}
	got := g.Nodes()
	if len(got) != len(wantNodes) {
		t.Fatalf("nodes = %v, want %v", got, wantNodes)
	}
	for i := range wantNodes {
		if got[i] != wantNodes[i] {
			t.Errorf("node[%d] = %q, want %q", i, got[i], wantNodes[i])
		}
	}
	if n := len(g.Edges()); n != 2 {
		t.Errorf("got %d edges, want 2", n)
	}
}

func TestWriteDOT(t *testing.T) {
	var buf bytes.Buffer
	if err := BuildGraph(alphaBeta(), "CSE courses").WriteDOT(&buf); err != nil {
		t.Fatal(err)
	}
	want := "// CSE courses\n" +
		"digraph {\n" +
		"\t\"alpha100\"\n" +
		"\t\"beta100\"\n" +
		"\t\"beta100\" -> \"alpha100\"\n" +
		"}\n"
	if got := buf.String(); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

type failingWriter struct{ err error }

func (f failingWriter) Write([]byte) (int, error) { return 0, f.err }

func TestWriteDOTReportsWriteError(t *testing.T) {
	want := errors.New("disk full")
	err := BuildGraph(alphaBeta(), "CSE courses").WriteDOT(failingWriter{err: want})
	if !errors.Is(err, want) {
		t.Fatalf("WriteDOT error = %v, want %v", err, want)
	}
}
