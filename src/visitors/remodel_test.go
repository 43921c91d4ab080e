package visitors

import (
	"bytes"
	"strings"
	"testing"

	"github.com/deltadev/sga/src/graph"
	"github.com/deltadev/sga/src/overlap"
	"github.com/deltadev/sga/src/overlapalgebra"
	"github.com/deltadev/sga/src/visitor"
)

// stubOverlapSet is a canned CompleteOverlapSet for driving the remodel
// and validate visitors without a real overlap computer
type stubOverlapSet struct {
	irreducible map[graph.EdgeDesc]overlap.Overlap
	contains    map[string]bool
	missing     []graph.EdgeDesc
	extra       []graph.EdgeDesc
}

func (s *stubOverlapSet) ComputeIrreducible(containMap map[string]bool) map[graph.EdgeDesc]overlap.Overlap {
	if containMap != nil {
		for id, c := range s.contains {
			containMap[id] = c
		}
	}
	out := make(map[graph.EdgeDesc]overlap.Overlap, len(s.irreducible))
	for d, o := range s.irreducible {
		out[d] = o
	}
	return out
}

func (s *stubOverlapSet) OverlapMap() map[graph.EdgeDesc]overlap.Overlap {
	return s.irreducible
}

func (s *stubOverlapSet) DiffMap(missing, extra *[]graph.EdgeDesc) {
	*missing = append(*missing, s.missing...)
	*extra = append(*extra, s.extra...)
}

type stubComputer struct {
	sets map[string]*stubOverlapSet
}

func (c *stubComputer) NewCompleteOverlapSet(v *graph.Vertex, errorRate float64, minOverlap int) overlapalgebra.CompleteOverlapSet {
	if s, ok := c.sets[v.ID()]; ok {
		return s
	}
	return &stubOverlapSet{}
}

// currentEdgeSets snapshots every vertex's edges as canned irreducible
// sets, so a remodel pass against them is a no-op
func currentEdgeSets(g *graph.StringGraph) map[string]*stubOverlapSet {
	sets := make(map[string]*stubOverlapSet)
	for _, v := range g.Vertices() {
		s := &stubOverlapSet{irreducible: make(map[graph.EdgeDesc]overlap.Overlap)}
		for _, e := range v.AllEdges() {
			s.irreducible[e.Desc()] = e.Ovr
		}
		sets[v.ID()] = s
	}
	return sets
}

func TestRemodelKeepsAgreedEdges(t *testing.T) {
	g := graph.NewStringGraph(0.01, 10)
	addRead(t, g, "A", 100)
	addRead(t, g, "B", 100)
	addRead(t, g, "C", 100)
	linkSuffixPrefix(t, g, "A", "B", 50)
	linkSuffixPrefix(t, g, "B", "C", 50)

	rv := NewRemodelVisitor(&stubComputer{sets: currentEdgeSets(g)})
	visitor.Run(g, rv)

	if g.NumEdges() != 2 {
		t.Fatalf("expected the agreed edges to survive remodeling, got %d", g.NumEdges())
	}
	if g.ErrorRate != rv.ErrorRate {
		t.Fatalf("expected the graph error rate updated to %v, got %v", rv.ErrorRate, g.ErrorRate)
	}
}

func TestRemodelSweepsDisagreedEdges(t *testing.T) {
	g := graph.NewStringGraph(0.01, 10)
	addRead(t, g, "A", 100)
	addRead(t, g, "B", 100)
	linkSuffixPrefix(t, g, "A", "B", 50)

	// the computer reports no irreducible overlaps anywhere, so every
	// existing edge is no longer supported at the working error rate
	rv := NewRemodelVisitor(&stubComputer{sets: map[string]*stubOverlapSet{}})
	visitor.Run(g, rv)

	if g.NumEdges() != 0 {
		t.Fatalf("expected all edges swept, got %d", g.NumEdges())
	}
}

func TestValidateReportsDiff(t *testing.T) {
	g := graph.NewStringGraph(0.01, 10)
	addRead(t, g, "A", 100)
	addRead(t, g, "B", 100)
	linkSuffixPrefix(t, g, "A", "B", 50)
	b, _ := g.GetVertex("B")

	sets := map[string]*stubOverlapSet{
		"A": {missing: []graph.EdgeDesc{{Vertex: b, Dir: graph.Sense, Comp: graph.Same}}},
	}
	vv := NewValidateVisitor(&stubComputer{sets: sets})
	var buf bytes.Buffer
	vv.Out = &buf
	visitor.Run(g, vv)

	if !strings.Contains(buf.String(), "Missing irreducible for A") {
		t.Fatalf("expected a missing-edge report for A, got %q", buf.String())
	}
	if g.NumEdges() != 1 {
		t.Fatalf("validate must not mutate the graph, got %d edges", g.NumEdges())
	}
}

type caseFoldCorrector struct{}

func (caseFoldCorrector) CorrectVertex(g *graph.StringGraph, v *graph.Vertex, k int, errorRate float64) ([]byte, error) {
	return bytes.ToLower([]byte(v.Seq)), nil
}

func TestErrorCorrectRewritesSequences(t *testing.T) {
	g := graph.NewStringGraph(0.01, 10)
	addRead(t, g, "A", 8)
	visitor.Run(g, NewErrorCorrectVisitor(caseFoldCorrector{}, 31, 0.01))

	a, _ := g.GetVertex("A")
	if a.Seq.String() != strings.ToLower("ACGTACGT") {
		t.Fatalf("expected the corrected sequence to be stored, got %s", a.Seq)
	}
}
