package visitors

import "github.com/deltadev/sga/src/graph"

// IslandVisitor removes vertices with no edges in either direction.
// Distinct from TrimVisitor, which also removes one-sided tips - an island
// has no edges at all.
type IslandVisitor struct{}

func NewIslandVisitor() *IslandVisitor {
	return &IslandVisitor{}
}

func (iv *IslandVisitor) Previsit(g *graph.StringGraph) {
	g.SetColors(graph.White)
}

func (iv *IslandVisitor) Visit(g *graph.StringGraph, v *graph.Vertex) bool {
	if v.CountAllEdges() == 0 {
		v.SetColor(graph.Black)
		return true
	}
	return false
}

func (iv *IslandVisitor) Postvisit(g *graph.StringGraph) {
	g.SweepVertices(graph.Black)
}
