package graph

import (
	"testing"

	"github.com/deltadev/sga/src/overlap"
	"github.com/deltadev/sga/src/seqio"
)

func TestValidateAcceptsWellFormedGraph(t *testing.T) {
	g, _ := buildTwoVertexGraph(t)
	if err := g.Validate(); err != nil {
		t.Fatalf("expected a well-formed graph to validate: %v", err)
	}
}

func TestValidateDetectsMissingTwin(t *testing.T) {
	g, e := buildTwoVertexGraph(t)
	e.Twin.Start.removeEdge(e.Twin)
	if err := g.Validate(); err == nil {
		t.Fatalf("expected a dangling twin to fail validation")
	}
}

func TestValidateDetectsDuplicateEdges(t *testing.T) {
	g, _ := buildTwoVertexGraph(t)
	a, _ := g.GetVertex("A")
	b, _ := g.GetVertex("B")
	e, twin := NewEdgePair(a, b, Sense, Same, overlap.Overlap{IDs: [2]string{"A", "B"}}, 5, 5)
	g.AddEdge(e, twin)
	if err := g.Validate(); err == nil {
		t.Fatalf("expected duplicate edges to fail validation")
	}
}

func TestValidateDetectsStaleContainFlag(t *testing.T) {
	g := NewStringGraph(0.01, 10)
	v := NewVertex("A", seqio.Sequence("ACGT"))
	if err := g.AddVertex(v); err != nil {
		t.Fatalf("could not add vertex: %v", err)
	}
	v.Contained = true
	g.HasContainment = false
	if err := g.Validate(); err == nil {
		t.Fatalf("expected a contained vertex under an unset flag to fail validation")
	}
}
