package visitors

import (
	"fmt"
	"io"
	"os"

	"github.com/deltadev/sga/src/graph"
	"github.com/deltadev/sga/src/overlapalgebra"
)

// RemodelVisitor recomputes, per vertex, the irreducible overlap set at a
// (usually lower) working error rate and reconciles the graph's actual
// edges against it: edges no longer irreducible are deleted, edges newly
// irreducible are added. Demands an OverlapComputer (the full
// overlap-discovery collaborator); with a nil one, Visit does nothing.
type RemodelVisitor struct {
	Computer  overlapalgebra.OverlapComputer
	ErrorRate float64
}

// NewRemodelVisitor defaults to a working error rate of 0.02.
func NewRemodelVisitor(computer overlapalgebra.OverlapComputer) *RemodelVisitor {
	return &RemodelVisitor{Computer: computer, ErrorRate: 0.02}
}

func (rv *RemodelVisitor) Previsit(g *graph.StringGraph) {
	g.SetColors(graph.White)
}

func (rv *RemodelVisitor) Visit(g *graph.StringGraph, v *graph.Vertex) bool {
	if rv.Computer == nil {
		return false
	}
	changed := false

	cos := rv.Computer.NewCompleteOverlapSet(v, rv.ErrorRate, g.MinOverlap)
	containMap := make(map[string]bool)
	irreducible := cos.ComputeIrreducible(containMap)

	for _, e := range v.AllEdges() {
		if _, ok := irreducible[e.Desc()]; ok {
			delete(irreducible, e.Desc())
		} else {
			e.SetColor(graph.Black)
			e.Twin.SetColor(graph.Black)
		}
	}

	for _, ov := range irreducible {
		if _, added := overlapalgebra.CreateEdgesFromOverlap(g, ov, false); added {
			changed = true
		}
	}

	overlapalgebra.UpdateContainFlags(g, v, containMap)
	return changed
}

func (rv *RemodelVisitor) Postvisit(g *graph.StringGraph) {
	g.SweepEdges(graph.Black)
	g.ErrorRate = rv.ErrorRate
}

// ValidateVisitor is the observability-only analogue of RemodelVisitor:
// it computes the same irreducible set per vertex and reports the
// symmetric difference against the graph's current edges. It never
// mutates the graph.
type ValidateVisitor struct {
	Computer overlapalgebra.OverlapComputer
	Out      io.Writer
}

func NewValidateVisitor(computer overlapalgebra.OverlapComputer) *ValidateVisitor {
	return &ValidateVisitor{Computer: computer, Out: os.Stdout}
}

func (vv *ValidateVisitor) Previsit(g *graph.StringGraph) {}

func (vv *ValidateVisitor) Visit(g *graph.StringGraph, v *graph.Vertex) bool {
	if vv.Computer == nil {
		return false
	}
	cos := vv.Computer.NewCompleteOverlapSet(v, g.ErrorRate, g.MinOverlap)
	cos.ComputeIrreducible(nil)

	var missing, extra []graph.EdgeDesc
	cos.DiffMap(&missing, &extra)

	if len(missing) > 0 {
		fmt.Fprintf(vv.Out, "Missing irreducible for %s:\n", v.ID())
		for _, d := range missing {
			fmt.Fprintf(vv.Out, "\t%s %s %s\n", d.Vertex.ID(), d.Dir, d.Comp)
		}
	}
	if len(extra) > 0 {
		fmt.Fprintf(vv.Out, "Extra irreducible for %s:\n", v.ID())
		for _, d := range extra {
			fmt.Fprintf(vv.Out, "\t%s %s %s\n", d.Vertex.ID(), d.Dir, d.Comp)
		}
	}
	return false
}

func (vv *ValidateVisitor) Postvisit(g *graph.StringGraph) {}
