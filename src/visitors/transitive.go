package visitors

import (
	"fmt"

	"github.com/deltadev/sga/src/graph"
	"github.com/deltadev/sga/src/misc"
)

// DefaultFuzz is Myers's tolerance constant: a two-hop path may
// exceed the longest direct edge from the shared vertex by this many bases
// before it stops being classified as transitive.
const DefaultFuzz = 10

// TransitiveReductionVisitor implements Myers's transitive reduction
// (2005, The fragment assembly string graph). Precondition: the graph
// has no containments and all colors are White; sorts adjacency by length
// itself rather than demanding it as a precondition, since doing so is
// cheap and every caller needs it anyway.
type TransitiveReductionVisitor struct {
	Fuzz int

	markedVerts int
	markedEdges int
}

// NewTransitiveReductionVisitor returns a visitor using DefaultFuzz
func NewTransitiveReductionVisitor() *TransitiveReductionVisitor {
	return &TransitiveReductionVisitor{Fuzz: DefaultFuzz}
}

func (tr *TransitiveReductionVisitor) Previsit(g *graph.StringGraph) {
	if g.HasContainment {
		misc.ErrorCheck(fmt.Errorf("transitive reduction precondition violated: graph still has containments"))
	}
	g.SetColors(graph.White)
	g.SortAdjListsByLen()
	tr.markedVerts = 0
	tr.markedEdges = 0
}

func (tr *TransitiveReductionVisitor) Visit(g *graph.StringGraph, v *graph.Vertex) bool {
	transCount := 0

	for _, dir := range graph.EdgeDirs {
		edges := v.GetEdges(dir)
		if len(edges) == 0 {
			continue
		}

		for _, e := range edges {
			e.End.SetColor(graph.Gray)
		}
		longestLen := edges[len(edges)-1].SeqLen + tr.Fuzz

		// Stage 1: mark X black if reachable from V through W within the
		// longest direct edge's length (plus fuzz)
		for _, evw := range edges {
			w := evw.End
			if w.Color() != graph.Gray {
				continue
			}
			transDir := evw.TransitiveDir()
			for _, ewx := range w.GetEdges(transDir) {
				if evw.SeqLen+ewx.SeqLen > longestLen {
					break
				}
				if ewx.End.Color() == graph.Gray {
					ewx.End.SetColor(graph.Black)
				}
			}
		}

		// Stage 2: additionally mark the shortest outgoing edge from each
		// W (and any edge under FUZZ), even when it overruns longestLen -
		// Myers's FUZZ-closure at the near end
		for _, evw := range edges {
			w := evw.End
			transDir := evw.TransitiveDir()
			for j, ewx := range w.GetEdges(transDir) {
				if !(ewx.SeqLen < tr.Fuzz || j == 0) {
					break
				}
				if ewx.End.Color() == graph.Gray {
					ewx.End.SetColor(graph.Black)
				}
			}
		}

		for _, e := range edges {
			if e.End.Color() == graph.Black {
				if e.Color() != graph.Black || e.Twin.Color() != graph.Black {
					e.SetColor(graph.Black)
					e.Twin.SetColor(graph.Black)
					tr.markedEdges += 2
					transCount++
				}
			}
			e.End.SetColor(graph.White)
		}
	}

	if transCount > 0 {
		tr.markedVerts++
	}
	return false
}

func (tr *TransitiveReductionVisitor) Postvisit(g *graph.StringGraph) {
	fmt.Printf("TR marked %d verts and %d edges\n", tr.markedVerts, tr.markedEdges)
	g.SweepEdges(graph.Black)
	g.HasTransitive = false
	if !g.CheckColors(graph.White) {
		misc.ErrorCheck(fmt.Errorf("transitive reduction postcondition violated: colors not clean"))
	}
}
