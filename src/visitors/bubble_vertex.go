package visitors

import (
	"fmt"

	"github.com/deltadev/sga/src/graph"
	"github.com/deltadev/sga/src/misc"
)

// BubbleVertexVisitor collapses one-step-out-and-in bubbles: for a vertex
// V with two or more outgoing edges on a side, a branch W whose only
// onward edge leads to a downstream vertex U that an earlier branch on
// that side already reaches the same way is redundant and is removed;
// the first branch to reach each U survives. Deliberately conservative: any interference from an
// overlapping bubble at the same vertex aborts this vertex's processing
// for the whole pass, not just the colliding branch.
type BubbleVertexVisitor struct {
	numBubbles int
}

func NewBubbleVertexVisitor() *BubbleVertexVisitor {
	return &BubbleVertexVisitor{}
}

func (bv *BubbleVertexVisitor) Previsit(g *graph.StringGraph) {
	g.SetColors(graph.White)
	bv.numBubbles = 0
}

func (bv *BubbleVertexVisitor) Visit(g *graph.StringGraph, v *graph.Vertex) bool {
	bubbleFound := false

	for _, dir := range graph.EdgeDirs {
		edges := v.GetEdges(dir)
		if len(edges) <= 1 {
			continue
		}

		// Interference check: abort this vertex if any branch, or the
		// single vertex it rejoins at, is already claimed by another
		// bubble (colored Red by an earlier visit in this pass; Previsit
		// starts every pass all White).
		for _, evw := range edges {
			w := evw.End
			if w.Color() == graph.Red {
				return false
			}
			wEdges := w.GetEdges(evw.TransitiveDir())
			if len(wEdges) == 1 {
				u := wEdges[0].End
				if u.Color() == graph.Red {
					return false
				}
			}
		}

		// Mark: the first branch to reach a given U claims it (Blue on W,
		// Black on U); any later branch reaching the same U is redundant
		// and gets marked Red for removal.
		for _, evw := range edges {
			w := evw.End
			wEdges := w.GetEdges(evw.TransitiveDir())
			if len(wEdges) != 1 {
				continue
			}
			u := wEdges[0].End
			if u.Color() == graph.Black {
				w.SetColor(graph.Red)
				bubbleFound = true
			} else {
				u.SetColor(graph.Black)
				w.SetColor(graph.Blue)
			}
		}

		// Unmark: restore U to White and every Blue W (claims for this
		// round only; Red branches stay marked for the postvisit sweep).
		for _, evw := range edges {
			w := evw.End
			wEdges := w.GetEdges(evw.TransitiveDir())
			if len(wEdges) == 1 {
				wEdges[0].End.SetColor(graph.White)
			}
			if w.Color() == graph.Blue {
				w.SetColor(graph.White)
			}
		}

		if bubbleFound {
			bv.numBubbles++
		}
	}
	return bubbleFound
}

func (bv *BubbleVertexVisitor) Postvisit(g *graph.StringGraph) {
	g.SweepVertices(graph.Red)
	fmt.Printf("bubbles: %d\n", bv.numBubbles)
	if !g.CheckColors(graph.White) {
		misc.ErrorCheck(fmt.Errorf("vertex-bubble visitor postcondition violated: colors not clean"))
	}
}
