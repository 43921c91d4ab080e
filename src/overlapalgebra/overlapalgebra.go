// the overlapalgebra package is the overlap-algebra facade: the pure
// geometry functions implemented directly over Overlap/EdgeDesc/StringGraph,
// plus the two external-collaborator interfaces (OverlapComputer,
// ErrorCorrector) that need an index over the whole read collection, which
// this engine does not build.
package overlapalgebra

import (
	"github.com/deltadev/sga/src/graph"
	"github.com/deltadev/sga/src/overlap"
)

// HasTransitiveOverlap reports whether o1 and o2 chain into a two-hop
// v->w->x path, i.e. whether read IDs[1] of o1 is read IDs[0] of o2 (as in
// the chains the bubble-edge and edge-stats visitors build). Only the read
// IDs are compared: strand orientation and whether the two intervals on
// the shared read intersect are not checked.
func HasTransitiveOverlap(o1, o2 overlap.Overlap) bool {
	return o1.IDs[1] == o2.IDs[0]
}

// InferTransitiveOverlap computes the overlap v->x implied by chaining
// o1 (v->w) and o2 (w->x). The inferred overlap covers the stretch of w
// both overlaps share: its interval on v is o1's and its interval on x is
// o2's, each trimmed by however much of w is not shared. Positions are
// mapped with same-strand arithmetic. Differences accumulate additively
// since no new alignment is computed - this is an inference, not a
// recomputation.
func InferTransitiveOverlap(o1, o2 overlap.Overlap) overlap.Overlap {
	wStart := max(o1.Match.CoordB.Start, o2.Match.CoordA.Start)
	wEnd := min(o1.Match.CoordB.End, o2.Match.CoordA.End)
	coordA := overlap.Interval{
		Start: o1.Match.CoordA.Start + (wStart - o1.Match.CoordB.Start),
		End:   o1.Match.CoordA.End - (o1.Match.CoordB.End - wEnd),
	}
	coordB := overlap.Interval{
		Start: o2.Match.CoordB.Start + (wStart - o2.Match.CoordA.Start),
		End:   o2.Match.CoordB.End - (o2.Match.CoordA.End - wEnd),
	}
	return overlap.Overlap{
		IDs: [2]string{o1.IDs[0], o2.IDs[1]},
		Match: overlap.Match{
			CoordA:              coordA,
			CoordB:              coordB,
			IsReverseComplement: o1.Match.IsReverseComplement != o2.Match.IsReverseComplement,
			NumDiffs:            o1.Match.NumDiffs + o2.Match.NumDiffs,
			LengthA:             o1.Match.LengthA,
			LengthB:             o2.Match.LengthB,
		},
	}
}

// OverlapToEdgeDesc resolves the EdgeDesc that overlap o induces at
// endpoint, where o is oriented with IDs[0] as the vertex the edge starts
// from (not endpoint itself). The direction is SENSE when the overlap sits
// at the right end of the start read (a suffix overlap extends the read in
// the sense direction), ANTISENSE when it sits at the left end; the strand
// sense comes straight from the match's reverse-complement flag.
func OverlapToEdgeDesc(endpoint *graph.Vertex, o overlap.Overlap) graph.EdgeDesc {
	dir := graph.Antisense
	if o.Match.CoordA.Start != 0 {
		dir = graph.Sense
	}
	comp := graph.Same
	if o.Match.IsReverseComplement {
		comp = graph.Reverse
	}
	return graph.EdgeDesc{Vertex: endpoint, Dir: dir, Comp: comp}
}

// seqLenFromOverlap returns the non-overlapping tail length the other read
// contributes to read idx (idx==0 meaning "A") - the SeqLen of the
// half-edge rooted at read idx.
func seqLenFromOverlap(o overlap.Overlap, idx int) int {
	if idx == 0 {
		return o.Match.LengthB - o.Match.CoordB.Length()
	}
	return o.Match.LengthA - o.Match.CoordA.Length()
}

// CreateEdgesFromOverlap builds and wires both halves of the bidirected
// edge implied by o between the vertices named by o.IDs, returning the
// half rooted at o.IDs[0]. allowContained controls whether a containment
// overlap is still materialized as an edge (remodeling sometimes needs the
// containment edge kept alive transiently) or skipped; when a containment
// is created, g.HasContainment is set so the containment passes re-run.
func CreateEdgesFromOverlap(g *graph.StringGraph, o overlap.Overlap, allowContained bool) (*graph.Edge, bool) {
	if o.IsContainment() && !allowContained {
		return nil, false
	}
	a, aok := g.GetVertex(o.IDs[0])
	b, bok := g.GetVertex(o.IDs[1])
	if !aok || !bok {
		return nil, false
	}
	dir := graph.Antisense
	if o.Match.CoordA.Start != 0 {
		dir = graph.Sense
	}
	comp := graph.Same
	if o.Match.IsReverseComplement {
		comp = graph.Reverse
	}
	aLen := seqLenFromOverlap(o, 0)
	bLen := seqLenFromOverlap(o, 1)
	e, twin := graph.NewEdgePair(a, b, dir, comp, o, aLen, bLen)
	g.AddEdge(e, twin)
	if idx, ok := o.ContainedIdx(); ok {
		contained := a
		if idx == 1 {
			contained = b
		}
		contained.Contained = true
		g.HasContainment = true
	}
	return e, true
}

// UpdateContainFlags sets Vertex.Contained on every neighbour named in
// containMap that the overlap set determined is contained within v,
// mirroring CompleteOverlapSet's contain map consumed by remodel.
func UpdateContainFlags(g *graph.StringGraph, v *graph.Vertex, containMap map[string]bool) {
	for id, contained := range containMap {
		if !contained {
			continue
		}
		if nb, ok := g.GetVertex(id); ok {
			nb.Contained = true
			g.HasContainment = true
		}
	}
}

// OverlapComputer is the external collaborator required by remodel and
// validate: an index over the entire read collection the core does
// not build (typically an FM-index or suffix array). NewCompleteOverlapSet
// constructs one per vertex at the working error rate / minimum overlap.
type OverlapComputer interface {
	NewCompleteOverlapSet(v *graph.Vertex, errorRate float64, minOverlap int) CompleteOverlapSet
}

// CompleteOverlapSet is the per-vertex result of a full overlap search -
// every overlap the computer found for this vertex, reduced to the
// irreducible subset and annotated with which neighbours it contains.
type CompleteOverlapSet interface {
	// ComputeIrreducible returns the EdgeDesc->Overlap map of overlaps
	// that survive transitive/containment filtering at this vertex. When
	// containMap is non-nil it is populated with neighbour-ID->contained.
	ComputeIrreducible(containMap map[string]bool) map[graph.EdgeDesc]overlap.Overlap

	// OverlapMap returns every overlap found for the vertex, irreducible
	// or not - the unfiltered candidate set validate diffs against.
	OverlapMap() map[graph.EdgeDesc]overlap.Overlap

	// DiffMap reports the symmetric difference between the irreducible set
	// this computer derives and the edges currently on the graph: missing
	// holds EdgeDescs the graph lacks but the computer says are irreducible,
	// extra holds EdgeDescs the graph has but the computer says are not.
	DiffMap(missing, extra *[]graph.EdgeDesc)
}

// RemodelVertexForExcision2 asks the overlap computer what edges must be
// added at neighbour nb once the vertex behind edgeToExcised is removed
// from the graph, and materializes them. The facade itself (this function)
// is engine code; the overlap discovery OverlapComputer.NewCompleteOverlapSet
// performs is not.
func RemodelVertexForExcision2(g *graph.StringGraph, computer OverlapComputer, nb *graph.Vertex, edgeToExcised *graph.Edge) {
	if computer == nil {
		return
	}
	cos := computer.NewCompleteOverlapSet(nb, g.ErrorRate, g.MinOverlap)
	containMap := make(map[string]bool)
	irreducible := cos.ComputeIrreducible(containMap)

	existing := make(map[graph.EdgeDesc]bool)
	for _, dir := range graph.EdgeDirs {
		for _, e := range nb.GetEdges(dir) {
			existing[e.Desc()] = true
		}
	}
	for desc, ov := range irreducible {
		if existing[desc] {
			continue
		}
		CreateEdgesFromOverlap(g, ov, false)
	}
	UpdateContainFlags(g, nb, containMap)
}

// ErrorCorrector is the external collaborator required by the error
// correction pass:
// CorrectVertex returns a corrected sequence for v given a k-mer size and
// working error rate, or an error if correction failed for this vertex.
type ErrorCorrector interface {
	CorrectVertex(g *graph.StringGraph, v *graph.Vertex, k int, errorRate float64) ([]byte, error)
}
