package overlapalgebra

import (
	"testing"

	"github.com/deltadev/sga/src/graph"
	"github.com/deltadev/sga/src/overlap"
	"github.com/deltadev/sga/src/seqio"
)

// suffixPrefix builds a same-strand overlap covering the last ol bases of
// read a (length la) and the first ol bases of read b (length lb)
func suffixPrefix(a, b string, la, lb, ol int) overlap.Overlap {
	return overlap.Overlap{
		IDs: [2]string{a, b},
		Match: overlap.Match{
			CoordA:  overlap.Interval{Start: la - ol, End: la - 1},
			CoordB:  overlap.Interval{Start: 0, End: ol - 1},
			LengthA: la,
			LengthB: lb,
		},
	}
}

func TestHasTransitiveOverlap(t *testing.T) {
	o1 := suffixPrefix("v", "w", 100, 100, 60)
	o2 := suffixPrefix("w", "x", 100, 100, 70)
	if !HasTransitiveOverlap(o1, o2) {
		t.Fatalf("expected v-w and w-x to chain")
	}
	if HasTransitiveOverlap(o2, o1) {
		t.Fatalf("did not expect w-x and v-w to chain in that order")
	}
}

func TestInferTransitiveOverlap(t *testing.T) {
	// v[40..99] = w[0..59], w[30..99] = x[0..69]: the implied v-x overlap
	// is v[70..99] = x[0..29]
	o1 := suffixPrefix("v", "w", 100, 100, 60)
	o2 := suffixPrefix("w", "x", 100, 100, 70)

	o3 := InferTransitiveOverlap(o1, o2)
	if o3.IDs[0] != "v" || o3.IDs[1] != "x" {
		t.Fatalf("inferred overlap names the wrong reads: %v", o3.IDs)
	}
	if o3.Match.CoordA.Start != 70 || o3.Match.CoordA.End != 99 {
		t.Fatalf("inferred interval on v wrong: %+v", o3.Match.CoordA)
	}
	if o3.Match.CoordB.Start != 0 || o3.Match.CoordB.End != 29 {
		t.Fatalf("inferred interval on x wrong: %+v", o3.Match.CoordB)
	}
	if o3.Match.IsReverseComplement {
		t.Fatalf("two same-strand overlaps must chain to same-strand")
	}
}

func TestOverlapToEdgeDescDirections(t *testing.T) {
	g := graph.NewStringGraph(0.01, 10)
	w := graph.NewVertex("w", seqio.Sequence("ACGT"))
	if err := g.AddVertex(w); err != nil {
		t.Fatalf("could not add vertex: %v", err)
	}

	suffix := suffixPrefix("v", "w", 100, 100, 60)
	d := OverlapToEdgeDesc(w, suffix)
	if d.Dir != graph.Sense || d.Comp != graph.Same {
		t.Fatalf("suffix overlap should extend sense/same, got %s/%s", d.Dir, d.Comp)
	}

	prefix := suffix.Flip() // as seen from w: the overlap sits at w's start
	d = OverlapToEdgeDesc(w, prefix)
	if d.Dir != graph.Antisense {
		t.Fatalf("prefix overlap should extend antisense, got %s", d.Dir)
	}
}

func TestCreateEdgesFromOverlapWiresTwins(t *testing.T) {
	g := graph.NewStringGraph(0.01, 10)
	for _, id := range []string{"a", "b"} {
		if err := g.AddVertex(graph.NewVertex(id, seqio.Sequence("ACGTACGTAC"))); err != nil {
			t.Fatalf("could not add vertex: %v", err)
		}
	}

	e, ok := CreateEdgesFromOverlap(g, suffixPrefix("a", "b", 10, 10, 4), false)
	if !ok || e == nil {
		t.Fatalf("expected the edge pair to be created")
	}
	if e.Twin == nil || e.Twin.Twin != e {
		t.Fatalf("twin wiring broken")
	}
	if e.SeqLen != 6 || e.Twin.SeqLen != 6 {
		t.Fatalf("expected 6-base tails on both sides, got %d and %d", e.SeqLen, e.Twin.SeqLen)
	}
	if e.Dir != graph.Sense || e.Twin.Dir != graph.Antisense {
		t.Fatalf("expected sense/antisense halves, got %s/%s", e.Dir, e.Twin.Dir)
	}
	if g.HasContainment {
		t.Fatalf("a proper overlap must not set the containment flag")
	}
}

func TestCreateEdgesSkipsContainmentWhenNotAllowed(t *testing.T) {
	g := graph.NewStringGraph(0.01, 10)
	for _, id := range []string{"a", "b"} {
		if err := g.AddVertex(graph.NewVertex(id, seqio.Sequence("ACGTACGTAC"))); err != nil {
			t.Fatalf("could not add vertex: %v", err)
		}
	}
	contained := overlap.Overlap{
		IDs: [2]string{"a", "b"},
		Match: overlap.Match{
			CoordA:  overlap.Interval{Start: 0, End: 9},
			CoordB:  overlap.Interval{Start: 0, End: 9},
			LengthA: 10,
			LengthB: 10,
		},
	}
	if _, ok := CreateEdgesFromOverlap(g, contained, false); ok {
		t.Fatalf("expected the containment to be skipped")
	}
	if g.NumEdges() != 0 {
		t.Fatalf("expected no edges, got %d", g.NumEdges())
	}

	if _, ok := CreateEdgesFromOverlap(g, contained, true); !ok {
		t.Fatalf("expected the containment to be materialized when allowed")
	}
	if !g.HasContainment {
		t.Fatalf("expected the containment flag set")
	}
	a, _ := g.GetVertex("a")
	if !a.Contained {
		t.Fatalf("expected the contained read flagged")
	}
}

func TestUpdateContainFlags(t *testing.T) {
	g := graph.NewStringGraph(0.01, 10)
	for _, id := range []string{"a", "b", "c"} {
		if err := g.AddVertex(graph.NewVertex(id, seqio.Sequence("ACGT"))); err != nil {
			t.Fatalf("could not add vertex: %v", err)
		}
	}
	a, _ := g.GetVertex("a")

	UpdateContainFlags(g, a, map[string]bool{"b": true, "c": false})
	b, _ := g.GetVertex("b")
	c, _ := g.GetVertex("c")
	if !b.Contained || c.Contained {
		t.Fatalf("contain flags misapplied: b=%v c=%v", b.Contained, c.Contained)
	}
	if !g.HasContainment {
		t.Fatalf("expected the graph containment flag set")
	}
}
