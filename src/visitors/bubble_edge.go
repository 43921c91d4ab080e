package visitors

import (
	"fmt"

	"github.com/deltadev/sga/src/graph"
	"github.com/deltadev/sga/src/misc"
	"github.com/deltadev/sga/src/overlap"
	"github.com/deltadev/sga/src/overlapalgebra"
)

// DefaultBubbleEdgeStepLimit is the upper bound on BFS pops (queue
// dequeues) the edge-BFS bubble visitor allows while chasing the longer
// branch - not a bound on path length or fanout.
const DefaultBubbleEdgeStepLimit = 100

type exploreElement struct {
	desc graph.EdgeDesc
	ovr  overlap.Overlap
}

// BubbleEdgeVisitor is the edge-BFS bubble collapse variant: for a
// vertex with exactly two outgoing edges on a side, the shorter branch's
// downstream neighbourhood (the "target set") must all be reachable by
// BFS-walking inferred overlaps from the longer branch within StepLimit
// pops, or the bubble is not confirmed and the branch survives untouched.
type BubbleEdgeVisitor struct {
	StepLimit int

	numBubbles int
}

func NewBubbleEdgeVisitor() *BubbleEdgeVisitor {
	return &BubbleEdgeVisitor{StepLimit: DefaultBubbleEdgeStepLimit}
}

func (be *BubbleEdgeVisitor) Previsit(g *graph.StringGraph) {
	g.SetColors(graph.White)
	be.numBubbles = 0
}

func (be *BubbleEdgeVisitor) Visit(g *graph.StringGraph, x *graph.Vertex) bool {
	bubbleFound := false

dirs:
	for _, dir := range graph.EdgeDirs {
		edges := x.GetEdges(dir)
		if len(edges) != 2 {
			continue
		}

		// Determine which edge has the longer overlap to X - call it XY,
		// the shorter XZ. Equal lengths cannot be a bubble (one of Y/Z
		// would instead be contained in X).
		var xy, xz *graph.Edge
		lenA, lenB := edges[0].Ovr.OverlapLength(0), edges[1].Ovr.OverlapLength(0)
		switch {
		case lenA > lenB:
			xy, xz = edges[0], edges[1]
		case lenB > lenA:
			xy, xz = edges[1], edges[0]
		default:
			break dirs
		}

		// Z's downstream neighbours are the target set Y's BFS must cover
		targetDir := xz.TransitiveDir()
		targetEdges := xz.End.GetEdges(targetDir)
		target := make(map[*graph.Vertex]bool, len(targetEdges))
		for _, e := range targetEdges {
			target[e.End] = true
		}

		queue := []exploreElement{{desc: xy.Desc(), ovr: xy.Ovr}}
		steps := be.StepLimit
		for len(queue) > 0 && steps > 0 {
			steps--
			ee := queue[0]
			queue = queue[1:]

			delete(target, ee.desc.Vertex)
			if len(target) == 0 {
				break
			}

			y := ee.desc.Vertex
			yDir := ee.desc.TransitiveDir()
			for _, yz := range y.GetEdges(yDir) {
				if overlapalgebra.HasTransitiveOverlap(ee.ovr, yz.Ovr) {
					ovrXZ := overlapalgebra.InferTransitiveOverlap(ee.ovr, yz.Ovr)
					descXZ := overlapalgebra.OverlapToEdgeDesc(yz.End, ovrXZ)
					queue = append(queue, exploreElement{desc: descXZ, ovr: ovrXZ})
				}
			}
		}

		if len(target) == 0 {
			xz.End.DeleteEdges(g)
			xz.End.SetColor(graph.Red)
			bubbleFound = true
			be.numBubbles++
		}
	}
	return bubbleFound
}

func (be *BubbleEdgeVisitor) Postvisit(g *graph.StringGraph) {
	g.SweepVertices(graph.Red)
	fmt.Printf("bubbles: %d\n", be.numBubbles)
	if !g.CheckColors(graph.White) {
		misc.ErrorCheck(fmt.Errorf("edge-bubble visitor postcondition violated: colors not clean"))
	}
}
