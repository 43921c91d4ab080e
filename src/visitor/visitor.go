// the visitor package holds the driver that runs a simplification or
// reporting pass over a StringGraph: previsit, then visit for every vertex
// in the graph's stable iteration order, then postvisit. A small interface
// plus a driver that owns the running of it; the vertex walk is synchronous,
// one vertex at a time.
package visitor

import "github.com/deltadev/sga/src/graph"

// Visitor is the contract every simplification and reporting pass
// implements. Previsit establishes whatever precondition the pass needs
// (usually asserting clean colors and/or sorted adjacency); Visit runs once
// per vertex and reports whether it changed the graph; Postvisit performs
// the deferred sweep and restores the all-White postcondition.
//
// A Visit implementation must not add or remove vertices -
// removals are deferred to Postvisit via coloring + StringGraph.SweepVertices.
// Edge additions/deletions are permitted only when the visitor's own
// contract allows them.
type Visitor interface {
	Previsit(g *graph.StringGraph)
	Visit(g *graph.StringGraph, v *graph.Vertex) bool
	Postvisit(g *graph.StringGraph)
}

// Run drives one full pass of vis over g: Previsit, then Visit over every
// vertex in g.Vertices() order, then Postvisit. It returns whether any
// Visit call reported a change.
func Run(g *graph.StringGraph, vis Visitor) bool {
	vis.Previsit(g)
	changed := false
	for _, v := range g.Vertices() {
		if vis.Visit(g, v) {
			changed = true
		}
	}
	vis.Postvisit(g)
	return changed
}

// RunToFixedPoint repeats Run until a pass reports no change, or maxIters
// passes have run (0 means unbounded). It returns the number of passes
// run. Containment removal and remodeling both demand this - either one
// may re-set StringGraph.HasContainment and must be iterated to a fixed
// point.
func RunToFixedPoint(g *graph.StringGraph, vis Visitor, maxIters int) int {
	iters := 0
	for {
		changed := Run(g, vis)
		iters++
		if !changed {
			break
		}
		if maxIters > 0 && iters >= maxIters {
			break
		}
	}
	return iters
}
