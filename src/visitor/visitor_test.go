package visitor

import (
	"testing"

	"github.com/deltadev/sga/src/graph"
	"github.com/deltadev/sga/src/seqio"
)

// countingVisitor records the driver's call sequence
type countingVisitor struct {
	previsits  int
	postvisits int
	visited    []string
	changeOn   map[string]bool
}

func (cv *countingVisitor) Previsit(g *graph.StringGraph) { cv.previsits++ }

func (cv *countingVisitor) Visit(g *graph.StringGraph, v *graph.Vertex) bool {
	cv.visited = append(cv.visited, v.ID())
	return cv.changeOn[v.ID()]
}

func (cv *countingVisitor) Postvisit(g *graph.StringGraph) { cv.postvisits++ }

func buildGraph(t *testing.T, ids ...string) *graph.StringGraph {
	t.Helper()
	g := graph.NewStringGraph(0.01, 10)
	for _, id := range ids {
		if err := g.AddVertex(graph.NewVertex(id, seqio.Sequence("ACGT"))); err != nil {
			t.Fatalf("could not add vertex %s: %v", id, err)
		}
	}
	return g
}

func TestRunVisitsEveryVertexInOrder(t *testing.T) {
	g := buildGraph(t, "C", "A", "B")
	cv := &countingVisitor{}
	changed := Run(g, cv)

	if cv.previsits != 1 || cv.postvisits != 1 {
		t.Fatalf("expected exactly one previsit and postvisit, got %d and %d", cv.previsits, cv.postvisits)
	}
	want := []string{"A", "B", "C"}
	if len(cv.visited) != len(want) {
		t.Fatalf("expected %d visits, got %d", len(want), len(cv.visited))
	}
	for i, id := range want {
		if cv.visited[i] != id {
			t.Fatalf("expected visit order %v, got %v", want, cv.visited)
		}
	}
	if changed {
		t.Fatalf("no vertex reported a change, but the pass did")
	}
}

func TestRunAccumulatesChanged(t *testing.T) {
	g := buildGraph(t, "A", "B")
	cv := &countingVisitor{changeOn: map[string]bool{"B": true}}
	if !Run(g, cv) {
		t.Fatalf("expected the pass to report a change")
	}
}

// decayingVisitor reports a change for its first n passes
type decayingVisitor struct {
	remaining int
}

func (dv *decayingVisitor) Previsit(g *graph.StringGraph) {}

func (dv *decayingVisitor) Visit(g *graph.StringGraph, v *graph.Vertex) bool {
	if dv.remaining > 0 {
		dv.remaining--
		return true
	}
	return false
}

func (dv *decayingVisitor) Postvisit(g *graph.StringGraph) {}

func TestRunToFixedPoint(t *testing.T) {
	g := buildGraph(t, "A")
	iters := RunToFixedPoint(g, &decayingVisitor{remaining: 3}, 0)
	if iters != 4 {
		t.Fatalf("expected 3 changing passes plus the settling pass, got %d", iters)
	}
}

func TestRunToFixedPointHonoursCap(t *testing.T) {
	g := buildGraph(t, "A")
	iters := RunToFixedPoint(g, &decayingVisitor{remaining: 100}, 2)
	if iters != 2 {
		t.Fatalf("expected the iteration cap to stop the loop at 2, got %d", iters)
	}
}
