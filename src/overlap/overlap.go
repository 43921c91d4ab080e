// the overlap package holds the pure data model for a suffix-prefix
// alignment between two reads: Interval, Match and Overlap. Nothing in
// this package touches a graph.Vertex or graph.Edge - it is the narrow,
// graph-independent geometry that the overlap-algebra facade (package
// overlapalgebra) builds on.
package overlap

import "fmt"

// Interval is an inclusive, 0-based half of a pairwise alignment - the span
// of one read that takes part in the overlap
type Interval struct {
	Start int
	End   int
}

// Length returns the number of bases spanned by the interval
func (iv Interval) Length() int {
	if iv.End < iv.Start {
		return 0
	}
	return iv.End - iv.Start + 1
}

// Match records the alignment geometry of an overlap: one interval per
// read, whether the alignment is on the same strand or the reverse
// complement, the number of differences observed, and the full lengths of
// both reads (needed to tell a containment from a simple suffix-prefix
// overlap)
type Match struct {
	CoordA, CoordB      Interval
	IsReverseComplement bool
	NumDiffs            int
	LengthA, LengthB    int
}

// MinOverlapLength returns the shorter of the two aligned intervals -
// invariant: always >= 0
func (m Match) MinOverlapLength() int {
	la, lb := m.CoordA.Length(), m.CoordB.Length()
	if la < lb {
		return la
	}
	return lb
}

// OverlapLength returns the aligned interval length on read idx (0 for A,
// 1 for B)
func (m Match) OverlapLength(idx int) int {
	if idx == 0 {
		return m.CoordA.Length()
	}
	return m.CoordB.Length()
}

// CountDifferences returns the number of mismatches recorded for this
// match - callers that need a fresh count from raw sequence pass it through
// a comparator rather than recomputing geometry here, since Match only
// carries what the overlap computer already found
func (m Match) CountDifferences() int {
	return m.NumDiffs
}

// Overlap is a suffix-prefix (or containment) alignment between two reads,
// named IDs[0] and IDs[1]
type Overlap struct {
	IDs   [2]string
	Match Match
}

// OverlapLength returns the aligned interval length on read idx (0 for
// IDs[0], 1 for IDs[1])
func (o Overlap) OverlapLength(idx int) int {
	return o.Match.OverlapLength(idx)
}

// IsContainment reports whether one read's interval covers it entirely
func (o Overlap) IsContainment() bool {
	return o.Match.CoordA.Length() == o.Match.LengthA || o.Match.CoordB.Length() == o.Match.LengthB
}

// ContainedIdx names which read (0 or 1) is contained within the other,
// when IsContainment holds. When both reads are fully covered (identical
// length, mutually contained) it reports 0 by convention.
func (o Overlap) ContainedIdx() (int, bool) {
	aFull := o.Match.CoordA.Length() == o.Match.LengthA
	bFull := o.Match.CoordB.Length() == o.Match.LengthB
	switch {
	case aFull:
		return 0, true
	case bFull:
		return 1, true
	default:
		return -1, false
	}
}

// Flip returns the overlap as seen from the other read's perspective: IDs
// and coordinates are swapped
func (o Overlap) Flip() Overlap {
	return Overlap{
		IDs: [2]string{o.IDs[1], o.IDs[0]},
		Match: Match{
			CoordA:              o.Match.CoordB,
			CoordB:              o.Match.CoordA,
			IsReverseComplement: o.Match.IsReverseComplement,
			NumDiffs:            o.Match.NumDiffs,
			LengthA:             o.Match.LengthB,
			LengthB:             o.Match.LengthA,
		},
	}
}

// String renders the overlap in the canonical textual form used by the
// overlap writer: "idA idB sA eA lA sB eB lB rc numDiff"
func (o Overlap) String() string {
	m := o.Match
	rc := 0
	if m.IsReverseComplement {
		rc = 1
	}
	return fmt.Sprintf("%s %s %d %d %d %d %d %d %d %d",
		o.IDs[0], o.IDs[1],
		m.CoordA.Start, m.CoordA.End, m.LengthA,
		m.CoordB.Start, m.CoordB.End, m.LengthB,
		rc, m.NumDiffs)
}
