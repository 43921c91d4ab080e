package graph

import "github.com/deltadev/sga/src/overlap"

// Edge is a directed half of a bidirected edge. Every Edge has exactly one
// Twin, the mirror half stored on End; the two are created and destroyed
// together.
type Edge struct {
	Start *Vertex
	End   *Vertex
	Dir   EdgeDir
	Comp  EdgeComp
	Ovr   overlap.Overlap
	Twin  *Edge
	color Color

	// SeqLen is the length of the non-overlapping tail End contributes to
	// Start - the basis for every length comparison the simplification
	// visitors make.
	SeqLen int
}

// Color returns the edge's current color
func (e *Edge) Color() Color { return e.color }

// SetColor sets the edge's color
func (e *Edge) SetColor(c Color) { e.color = c }

// Desc returns this edge's identity independent of which *Edge object
// currently represents it
func (e *Edge) Desc() EdgeDesc {
	return EdgeDesc{Vertex: e.End, Dir: e.Dir, Comp: e.Comp}
}

// GetTwinDir returns the direction of this edge's twin, which is
// determined entirely by overlap geometry: for a SAME-strand overlap the
// twin runs in the opposite direction; for a REVERSE-strand overlap the
// twin runs in the same direction (the two reads are antiparallel, so
// "forward" from each end points the same way along the bidirected edge).
func (e *Edge) GetTwinDir() EdgeDir {
	if e.Comp == Same {
		return e.Dir.Flip()
	}
	return e.Dir
}

// TransitiveDir is the direction to search a neighbour's own adjacency
// when walking past this edge - "!twinDir" throughout the simplification
// visitors.
func (e *Edge) TransitiveDir() EdgeDir {
	return e.GetTwinDir().Flip()
}

// EdgeDesc identifies an edge at an endpoint independent of which Edge
// object represents it: (other vertex, direction, strand sense). It is
// comparable, so it can be used directly as a map key.
type EdgeDesc struct {
	Vertex *Vertex
	Dir    EdgeDir
	Comp   EdgeComp
}

// GetTwinDir mirrors Edge.GetTwinDir for a bare EdgeDesc - the direction
// geometry depends only on Dir and Comp, not on which Edge object
// currently represents the edge.
func (d EdgeDesc) GetTwinDir() EdgeDir {
	if d.Comp == Same {
		return d.Dir.Flip()
	}
	return d.Dir
}

// TransitiveDir mirrors Edge.TransitiveDir for a bare EdgeDesc
func (d EdgeDesc) TransitiveDir() EdgeDir {
	return d.GetTwinDir().Flip()
}

// NewEdgePair builds both halves of a bidirected edge from an overlap
// between vertices a and b. dir/comp describe the edge as seen from a;
// aLen is the SeqLen of a's half (the tail b contributes to a) and bLen
// that of b's half (the tail a contributes to b).
// The pair is not yet wired into the graph - call StringGraph.AddEdge.
func NewEdgePair(a, b *Vertex, dir EdgeDir, comp EdgeComp, ovr overlap.Overlap, aLen, bLen int) (*Edge, *Edge) {
	e := &Edge{Start: a, End: b, Dir: dir, Comp: comp, Ovr: ovr, SeqLen: aLen}
	twin := &Edge{Start: b, End: a, Dir: e.GetTwinDir(), Comp: comp, Ovr: ovr.Flip(), SeqLen: bLen}
	return e, twin
}
