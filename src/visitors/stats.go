package visitors

import (
	"fmt"

	"github.com/deltadev/sga/src/graph"
	"github.com/deltadev/sga/src/overlap"
	"github.com/deltadev/sga/src/overlapalgebra"
)

// GraphStatsVisitor accumulates the graph summary counts: islands,
// terminals, monobranches, dibranches, transitives, total edges and
// vertices, and the summed non-overlap tail length across every edge.
type GraphStatsVisitor struct {
	NumIsland     int
	NumTerminal   int
	NumMonobranch int
	NumDibranch   int
	NumTransitive int
	NumEdges      int
	NumVertices   int
	SumEdgeLen    int
}

func NewGraphStatsVisitor() *GraphStatsVisitor {
	return &GraphStatsVisitor{}
}

func (gs *GraphStatsVisitor) Previsit(g *graph.StringGraph) {
	*gs = GraphStatsVisitor{}
}

func (gs *GraphStatsVisitor) Visit(g *graph.StringGraph, v *graph.Vertex) bool {
	sCount := v.CountEdges(graph.Sense)
	asCount := v.CountEdges(graph.Antisense)

	switch {
	case sCount == 0 && asCount == 0:
		gs.NumIsland++
	case sCount == 0 || asCount == 0:
		gs.NumTerminal++
	}

	switch {
	case sCount > 1 && asCount > 1:
		gs.NumDibranch++
	case sCount > 1 || asCount > 1:
		gs.NumMonobranch++
	}

	if sCount == 1 || asCount == 1 {
		gs.NumTransitive++
	}

	gs.NumEdges += sCount + asCount
	gs.NumVertices++

	for _, e := range v.AllEdges() {
		gs.SumEdgeLen += e.SeqLen
	}
	return false
}

func (gs *GraphStatsVisitor) Postvisit(g *graph.StringGraph) {
	fmt.Printf("island: %d terminal: %d monobranch: %d dibranch: %d transitive: %d\n",
		gs.NumIsland, gs.NumTerminal, gs.NumMonobranch, gs.NumDibranch, gs.NumTransitive)
	fmt.Printf("Total Vertices: %d Total Edges: %d Sum edge length: %d\n",
		gs.NumVertices, gs.NumEdges, gs.SumEdgeLen)
}

// EdgeStatsVisitor histograms (overlap_len, num_differences) for both the
// edges the graph already has and candidate missing overlaps inferred by
// one-step expansion through each neighbour. The candidate search
// colors neighbours Black to dedupe visited vertices, restoring White at
// the end of each vertex's Visit.
type EdgeStatsVisitor struct {
	foundCounts   map[int]map[int]int
	missingCounts map[int]map[int]int
	maxDiff       int
	minOverlap    int
	maxOverlap    int
}

func NewEdgeStatsVisitor() *EdgeStatsVisitor {
	return &EdgeStatsVisitor{}
}

func (es *EdgeStatsVisitor) Previsit(g *graph.StringGraph) {
	g.SetColors(graph.White)
	es.foundCounts = make(map[int]map[int]int)
	es.missingCounts = make(map[int]map[int]int)
	es.maxDiff = 0
	es.minOverlap = g.MinOverlap
	es.maxOverlap = 0
}

func (es *EdgeStatsVisitor) addCount(m map[int]map[int]int, ol, nd int) {
	if m[ol] == nil {
		m[ol] = make(map[int]int)
	}
	m[ol][nd]++
	if nd > es.maxDiff {
		es.maxDiff = nd
	}
	if ol > es.maxOverlap {
		es.maxOverlap = ol
	}
}

func (es *EdgeStatsVisitor) Visit(g *graph.StringGraph, v *graph.Vertex) bool {
	for _, e := range v.AllEdges() {
		numDiff := e.Ovr.Match.CountDifferences()
		overlapLen := e.Ovr.Match.MinOverlapLength()
		es.addCount(es.foundCounts, overlapLen, numDiff)
	}

	candidates := es.missingCandidates(v, g.MinOverlap)
	for _, c := range candidates {
		numDiff := c.ovr.Match.CountDifferences()
		minLen := c.ovr.Match.MinOverlapLength()
		if minLen == 0 {
			continue
		}
		errorRate := float64(numDiff) / float64(minLen)
		if errorRate < g.ErrorRate {
			es.addCount(es.missingCounts, minLen, numDiff)
		}
	}
	return false
}

type candidate struct {
	endpoint *graph.Vertex
	ovr      overlap.Overlap
}

// missingCandidates explores one step past every current neighbour
// looking for inferable overlaps the graph does not already have an
// edge for.
func (es *EdgeStatsVisitor) missingCandidates(v *graph.Vertex, minOverlap int) []candidate {
	out := []candidate{}

	edges := v.AllEdges()
	for _, e := range edges {
		e.End.SetColor(graph.Black)
	}
	v.SetColor(graph.Black)

	for _, xy := range edges {
		for _, yz := range xy.End.AllEdges() {
			if yz.End.Color() == graph.Black {
				continue
			}
			if overlapalgebra.HasTransitiveOverlap(xy.Ovr, yz.Ovr) {
				ovrXZ := overlapalgebra.InferTransitiveOverlap(xy.Ovr, yz.Ovr)
				if ovrXZ.Match.MinOverlapLength() >= minOverlap {
					out = append(out, candidate{endpoint: yz.End, ovr: ovrXZ})
					yz.End.SetColor(graph.Black)
				}
			}
		}
	}

	for _, e := range edges {
		e.End.SetColor(graph.White)
	}
	v.SetColor(graph.White)
	for _, c := range out {
		c.endpoint.SetColor(graph.White)
	}
	return out
}

func (es *EdgeStatsVisitor) Postvisit(g *graph.StringGraph) {
	fmt.Println("FoundOverlaps")
	es.printCounts(es.foundCounts)
	fmt.Println("\nPotentially Missing Overlaps")
	es.printCounts(es.missingCounts)
}

func (es *EdgeStatsVisitor) printCounts(m map[int]map[int]int) {
	fmt.Print("OL\t")
	for j := 0; j <= es.maxDiff; j++ {
		fmt.Printf("%d\t", j)
	}
	fmt.Println("sum")

	columnTotal := make(map[int]int)
	for i := es.minOverlap; i <= es.maxOverlap; i++ {
		fmt.Printf("%d\t", i)
		sum := 0
		for j := 0; j <= es.maxDiff; j++ {
			v := m[i][j]
			fmt.Printf("%d\t", v)
			sum += v
			columnTotal[j] += v
		}
		fmt.Printf("%d\n", sum)
	}

	fmt.Print("total\t")
	total := 0
	for j := 0; j <= es.maxDiff; j++ {
		v := columnTotal[j]
		fmt.Printf("%d\t", v)
		total += v
	}
	fmt.Printf("%d\n", total)
}
