package asqg

import (
	"bytes"
	"strings"
	"testing"
)

const sampleASQG = `HT	VN:i:1	ER:f:0.05	OL:i:45	CN:i:0	TE:i:1
VT	read1	ACGTACGTACGTACGTACGT
VT	read2	CGTACGTACGTACGTACGTA
ED	read1 read2 1 19 20 0 18 20 0 0
`

func TestLoadSample(t *testing.T) {
	g, err := Load(strings.NewReader(sampleASQG))
	if err != nil {
		t.Fatalf("could not load sample: %v", err)
	}
	if g.NumVertices() != 2 {
		t.Fatalf("expected 2 vertices, got %d", g.NumVertices())
	}
	if g.NumEdges() != 1 {
		t.Fatalf("expected 1 edge, got %d", g.NumEdges())
	}
	if g.ErrorRate != 0.05 || g.MinOverlap != 45 {
		t.Fatalf("header properties not applied: er=%v ol=%d", g.ErrorRate, g.MinOverlap)
	}
	if g.HasContainment || !g.HasTransitive {
		t.Fatalf("header flags not applied: cn=%v te=%v", g.HasContainment, g.HasTransitive)
	}
	v, ok := g.GetVertex("read1")
	if !ok {
		t.Fatalf("read1 missing")
	}
	if v.Seq.String() != "ACGTACGTACGTACGTACGT" {
		t.Fatalf("read1 sequence mangled: %s", v.Seq)
	}
	if err := g.Validate(); err != nil {
		t.Fatalf("loaded graph fails validation: %v", err)
	}
}

func TestRoundTrip(t *testing.T) {
	g, err := Load(strings.NewReader(sampleASQG))
	if err != nil {
		t.Fatalf("could not load sample: %v", err)
	}

	var buf bytes.Buffer
	if err := Save(&buf, g); err != nil {
		t.Fatalf("could not save: %v", err)
	}
	g2, err := Load(&buf)
	if err != nil {
		t.Fatalf("could not reload: %v", err)
	}

	if g2.NumVertices() != g.NumVertices() || g2.NumEdges() != g.NumEdges() {
		t.Fatalf("round trip changed the graph: %d/%d vertices, %d/%d edges",
			g.NumVertices(), g2.NumVertices(), g.NumEdges(), g2.NumEdges())
	}
	if g2.ErrorRate != g.ErrorRate || g2.MinOverlap != g.MinOverlap {
		t.Fatalf("round trip changed the global properties")
	}
	for _, v := range g.Vertices() {
		v2, ok := g2.GetVertex(v.ID())
		if !ok {
			t.Fatalf("vertex %s lost in round trip", v.ID())
		}
		if v2.Seq.String() != v.Seq.String() {
			t.Fatalf("sequence for %s changed in round trip", v.ID())
		}
	}
}

func TestLoadRejectsUnknownRecord(t *testing.T) {
	if _, err := Load(strings.NewReader("XX\tnope\n")); err == nil {
		t.Fatalf("expected an error for an unrecognised record type")
	}
}

func TestLoadRejectsBadBases(t *testing.T) {
	if _, err := Load(strings.NewReader("VT\tread1\tACGTQ\n")); err == nil {
		t.Fatalf("expected an error for a non-DNA base")
	}
}

func TestLoadRejectsDanglingEdge(t *testing.T) {
	in := "VT\tread1\tACGT\nED\tread1 ghost 0 3 4 0 3 4 0 0\n"
	if _, err := Load(strings.NewReader(in)); err == nil {
		t.Fatalf("expected an error for an edge to an unknown vertex")
	}
}

func TestContainmentEdgeSetsFlags(t *testing.T) {
	in := `VT	big	ACGTACGTACGTACGTACGT
VT	small	GTACGTAC
ED	small big 0 7 8 2 9 20 0 0
`
	g, err := Load(strings.NewReader(in))
	if err != nil {
		t.Fatalf("could not load: %v", err)
	}
	if !g.HasContainment {
		t.Fatalf("expected the containment flag set")
	}
	small, _ := g.GetVertex("small")
	if !small.Contained {
		t.Fatalf("expected the contained read flagged")
	}
	big, _ := g.GetVertex("big")
	if big.Contained {
		t.Fatalf("did not expect the containing read flagged")
	}
}
