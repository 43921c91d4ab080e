package visitors

import (
	"fmt"
	"io"

	"github.com/deltadev/sga/src/graph"
)

// FastaWriteVisitor writes every vertex's sequence in FASTA format: one
// record per vertex, ">ID LEN 0" followed by the sequence line. The
// trailing 0 is the per-record coverage field, which this engine does not
// track and always reports as zero.
type FastaWriteVisitor struct {
	Out io.Writer
}

func NewFastaWriteVisitor(out io.Writer) *FastaWriteVisitor {
	return &FastaWriteVisitor{Out: out}
}

func (fw *FastaWriteVisitor) Previsit(g *graph.StringGraph) {}

func (fw *FastaWriteVisitor) Visit(g *graph.StringGraph, v *graph.Vertex) bool {
	fmt.Fprintf(fw.Out, ">%s %d 0\n%s\n", v.ID(), v.SeqLen(), v.Seq)
	return false
}

func (fw *FastaWriteVisitor) Postvisit(g *graph.StringGraph) {}

// OverlapWriteVisitor writes every overlap in the graph in its canonical
// textual form, one per line - only once per undirected edge, when
// id[0] < id[1], to avoid writing each twin pair twice.
type OverlapWriteVisitor struct {
	Out io.Writer
}

func NewOverlapWriteVisitor(out io.Writer) *OverlapWriteVisitor {
	return &OverlapWriteVisitor{Out: out}
}

func (ow *OverlapWriteVisitor) Previsit(g *graph.StringGraph) {}

func (ow *OverlapWriteVisitor) Visit(g *graph.StringGraph, v *graph.Vertex) bool {
	for _, e := range v.AllEdges() {
		if e.Ovr.IDs[0] < e.Ovr.IDs[1] {
			fmt.Fprintln(ow.Out, e.Ovr.String())
		}
	}
	return false
}

func (ow *OverlapWriteVisitor) Postvisit(g *graph.StringGraph) {}

// BreakWriteVisitor emits typed break records for dead ends and branches
// to a file: ISLAND/STIP/ASTIP for vertices with no extension on
// one or both sides, SBRANCHED/ASBRANCHED,<delta> for vertices with more
// than one outgoing edge on a side, where delta is the difference between
// the two shortest overlap lengths on that side.
type BreakWriteVisitor struct {
	Out io.Writer
}

func NewBreakWriteVisitor(out io.Writer) *BreakWriteVisitor {
	return &BreakWriteVisitor{Out: out}
}

func (bw *BreakWriteVisitor) Previsit(g *graph.StringGraph) {}

func (bw *BreakWriteVisitor) Visit(g *graph.StringGraph, v *graph.Vertex) bool {
	sCount := v.CountEdges(graph.Sense)
	asCount := v.CountEdges(graph.Antisense)

	switch {
	case sCount == 0 && asCount == 0:
		bw.writeBreak("ISLAND", v)
	case sCount == 0:
		bw.writeBreak("STIP", v)
	case asCount == 0:
		bw.writeBreak("ASTIP", v)
	}

	if sCount > 1 {
		bw.writeBreak(fmt.Sprintf("SBRANCHED,%d", overlapLengthDiff(v, graph.Sense)), v)
	}
	if asCount > 1 {
		bw.writeBreak(fmt.Sprintf("ASBRANCHED,%d", overlapLengthDiff(v, graph.Antisense)), v)
	}
	return false
}

func (bw *BreakWriteVisitor) Postvisit(g *graph.StringGraph) {}

func (bw *BreakWriteVisitor) writeBreak(kind string, v *graph.Vertex) {
	fmt.Fprintf(bw.Out, "BREAK\t%s\t%s\t%s\n", kind, v.ID(), v.Seq)
}

// overlapLengthDiff returns the difference between the two shortest
// overlap lengths on dir. Requires the adjacency list sorted ascending by
// tail length, which callers of BreakWriteVisitor ensure beforehand with
// StringGraph.SortAdjListsByLen.
func overlapLengthDiff(v *graph.Vertex, dir graph.EdgeDir) int {
	edges := v.GetEdges(dir)
	if len(edges) < 2 {
		return 0
	}
	// sorted ascending by tail length, so the last two edges carry the two
	// shortest overlaps
	shortest := edges[len(edges)-1].Ovr.OverlapLength(0)
	secondShortest := edges[len(edges)-2].Ovr.OverlapLength(0)
	return secondShortest - shortest
}
