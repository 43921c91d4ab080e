package visitors

import (
	"fmt"
	"os"

	"github.com/deltadev/sga/src/graph"
	"github.com/deltadev/sga/src/misc"
)

// DuplicateVisitor finds and removes duplicate-by-EdgeDesc outgoing
// edges, keeping the first occurrence. Duplicate edges are a structural
// anomaly, not a precondition violation: reported as a warning, not
// fatal.
type DuplicateVisitor struct {
	hasDuplicate bool
}

func NewDuplicateVisitor() *DuplicateVisitor {
	return &DuplicateVisitor{}
}

func (dv *DuplicateVisitor) Previsit(g *graph.StringGraph) {
	if !g.CheckColors(graph.White) {
		misc.ErrorCheck(fmt.Errorf("duplicate-edge visitor precondition violated: colors not clean"))
	}
	dv.hasDuplicate = false
}

func (dv *DuplicateVisitor) Visit(g *graph.StringGraph, v *graph.Vertex) bool {
	if v.MarkDuplicateEdges(graph.Red) {
		dv.hasDuplicate = true
	}
	return false
}

func (dv *DuplicateVisitor) Postvisit(g *graph.StringGraph) {
	if dv.hasDuplicate {
		numRemoved := g.SweepEdges(graph.Red)
		fmt.Fprintf(os.Stderr, "Warning: removed %d duplicate edges\n", numRemoved)
	}
}
