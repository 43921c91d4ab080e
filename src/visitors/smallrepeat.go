package visitors

import (
	"fmt"

	"github.com/deltadev/sga/src/graph"
)

// DefaultMinDiff is the small-repeat resolver's threshold: how much longer
// the flanking edges on both sides must be than the candidate
// repeat-induced edge before it is removed.
const DefaultMinDiff = 10

// SmallRepeatResolveVisitor removes an edge induced by a sub-read-length
// repeat: a short overlap X-Y that is flanked by strictly longer edges on
// both X's and Y's side, beyond MinDiff in both directions.
type SmallRepeatResolveVisitor struct {
	MinDiff int
}

func NewSmallRepeatResolveVisitor() *SmallRepeatResolveVisitor {
	return &SmallRepeatResolveVisitor{MinDiff: DefaultMinDiff}
}

func (sr *SmallRepeatResolveVisitor) Previsit(g *graph.StringGraph) {
	g.SortAdjListsByLen()
}

func (sr *SmallRepeatResolveVisitor) Visit(g *graph.StringGraph, x *graph.Vertex) bool {
	changed := false

	for _, dir := range graph.EdgeDirs {
		xEdges := x.GetEdges(dir)
		if len(xEdges) < 2 {
			continue
		}

		// Try to eliminate the shortest edge from this vertex (call it X->Y).
		// If Y has a longer edge than Y->X in the same direction, remove X->Y.
		// The adjacency list is sorted ascending by tail length, so the last
		// edge has the shortest overlap and the first the longest.
		xy := xEdges[len(xEdges)-1]
		xyLen := xy.Ovr.OverlapLength(0)
		xLongestLen := xEdges[0].Ovr.OverlapLength(0)
		if xyLen == xLongestLen {
			continue
		}

		yx := xy.Twin
		y := xy.End

		yEdges := y.GetEdges(yx.Dir)
		yxLen := yx.Ovr.OverlapLength(0)

		yLongestLen := 0
		for _, yz := range yEdges {
			if yz == yx {
				continue
			}
			if l := yz.Ovr.OverlapLength(0); l > yLongestLen {
				yLongestLen = l
			}
		}

		if yLongestLen <= yxLen {
			continue
		}

		xDiff := xLongestLen - xyLen
		yDiff := yLongestLen - yxLen
		if xDiff > sr.MinDiff && yDiff > sr.MinDiff {
			fmt.Printf("Edge %s -> %s is likely a repeat (overlaps %d/%d spanned by %d/%d)\n",
				x.ID(), y.ID(), xyLen, yxLen, xLongestLen, yLongestLen)
			g.DeleteEdge(xy)
			changed = true
		}
	}
	return changed
}

func (sr *SmallRepeatResolveVisitor) Postvisit(g *graph.StringGraph) {}
