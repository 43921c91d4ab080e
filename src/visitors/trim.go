package visitors

import (
	"fmt"

	"github.com/deltadev/sga/src/graph"
)

// TrimVisitor removes dead-end ("tip") vertices: a vertex with zero
// outgoing edges in at least one direction. Classifies every
// vertex visited into island/terminal/contig for the postvisit report.
// Callers iterate this to a fixed point to remove chains of tips.
type TrimVisitor struct {
	numIsland   int
	numTerminal int
	numContig   int
}

func NewTrimVisitor() *TrimVisitor {
	return &TrimVisitor{}
}

func (tv *TrimVisitor) Previsit(g *graph.StringGraph) {
	g.SetColors(graph.White)
	tv.numIsland = 0
	tv.numTerminal = 0
	tv.numContig = 0
}

func (tv *TrimVisitor) Visit(g *graph.StringGraph, v *graph.Vertex) bool {
	var noExt [graph.EdgeDirCount]bool
	for i, dir := range graph.EdgeDirs {
		if v.CountEdges(dir) == 0 {
			v.SetColor(graph.Black)
			noExt[i] = true
		}
	}

	switch {
	case noExt[0] && noExt[1]:
		tv.numIsland++
	case noExt[0] || noExt[1]:
		tv.numTerminal++
	default:
		tv.numContig++
	}
	return noExt[0] || noExt[1]
}

func (tv *TrimVisitor) Postvisit(g *graph.StringGraph) {
	g.SweepVertices(graph.Black)
	fmt.Printf("island: %d terminal: %d contig: %d\n", tv.numIsland, tv.numTerminal, tv.numContig)
}
