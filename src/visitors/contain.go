package visitors

import (
	"sort"

	"github.com/deltadev/sga/src/graph"
	"github.com/deltadev/sga/src/overlapalgebra"
)

// IdenticalRemoveVisitor is the fast-path containment removal: it
// only ever removes a vertex when it is byte-identical to a same-length
// neighbour it is marked contained within, so no remodeling is needed -
// no irreducible edge can become unreachable, because the survivor already
// carries every edge the removed vertex had.
type IdenticalRemoveVisitor struct {
	count int
}

func NewIdenticalRemoveVisitor() *IdenticalRemoveVisitor {
	return &IdenticalRemoveVisitor{}
}

func (iv *IdenticalRemoveVisitor) Previsit(g *graph.StringGraph) {
	g.SetColors(graph.White)
	iv.count = 0
}

func (iv *IdenticalRemoveVisitor) Visit(g *graph.StringGraph, v *graph.Vertex) bool {
	if !v.Contained {
		return false
	}
	for _, e := range v.AllEdges() {
		other := e.End
		if v.SeqLen() != other.SeqLen() {
			continue
		}
		if !e.Ovr.IsContainment() {
			continue
		}
		if idx, ok := e.Ovr.ContainedIdx(); !ok || idx != 0 {
			continue
		}
		if string(v.Seq) == string(other.Seq) {
			v.SetColor(graph.Black)
			iv.count++
			break
		}
	}
	return false
}

func (iv *IdenticalRemoveVisitor) Postvisit(g *graph.StringGraph) {
	g.SweepVertices(graph.Black)
}

// ContainRemoveVisitor is the general containment remover: for
// every contained vertex it remodels each neighbour (only when the graph
// has been transitively reduced and is not in exact mode; otherwise the
// remaining overlaps already keep the neighbours connected) before
// excising the vertex's edges and deleting it.
type ContainRemoveVisitor struct {
	Computer overlapalgebra.OverlapComputer
}

func NewContainRemoveVisitor(computer overlapalgebra.OverlapComputer) *ContainRemoveVisitor {
	return &ContainRemoveVisitor{Computer: computer}
}

func (cv *ContainRemoveVisitor) Previsit(g *graph.StringGraph) {
	g.SetColors(graph.White)
	// Clear the containment flag - if remodeling re-introduces a
	// containment, it will be re-set and the pass re-run to a fixed point.
	g.HasContainment = false
}

func (cv *ContainRemoveVisitor) Visit(g *graph.StringGraph, v *graph.Vertex) bool {
	if !v.Contained {
		return false
	}
	neighborEdges := v.AllEdges()

	if !g.HasTransitive && !g.ExactMode {
		// This must be done in ascending length order or some transitive
		// edges may be created.
		sorted := make([]*graph.Edge, len(neighborEdges))
		copy(sorted, neighborEdges)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i].SeqLen < sorted[j].SeqLen })
		for _, e := range sorted {
			overlapalgebra.RemodelVertexForExcision2(g, cv.Computer, e.End, e.Twin)
		}
	}

	for _, e := range neighborEdges {
		g.DeleteEdge(e)
	}
	v.SetColor(graph.Black)
	return true
}

func (cv *ContainRemoveVisitor) Postvisit(g *graph.StringGraph) {
	g.SweepVertices(graph.Black)
}
