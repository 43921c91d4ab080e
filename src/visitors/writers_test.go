package visitors

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/deltadev/sga/src/graph"
	"github.com/deltadev/sga/src/visitor"
)

func TestFastaWriteFormat(t *testing.T) {
	g := graph.NewStringGraph(0, 10)
	addRead(t, g, "read1", 8)

	var buf bytes.Buffer
	visitor.Run(g, NewFastaWriteVisitor(&buf))

	want := ">read1 8 0\nACGTACGT\n"
	if buf.String() != want {
		t.Fatalf("unexpected FASTA output: %q", buf.String())
	}
}

func TestOverlapWriteOncePerUndirectedEdge(t *testing.T) {
	g := graph.NewStringGraph(0, 10)
	addRead(t, g, "A", 100)
	addRead(t, g, "B", 100)
	linkSuffixPrefix(t, g, "A", "B", 50)

	var buf bytes.Buffer
	visitor.Run(g, NewOverlapWriteVisitor(&buf))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected one line per undirected edge, got %d: %q", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "A B ") {
		t.Fatalf("expected the overlap written from the lower ID, got %q", lines[0])
	}
}

func TestBreakWriteRecords(t *testing.T) {
	g := graph.NewStringGraph(0, 10)
	addRead(t, g, "I", 20)
	addRead(t, g, "S", 100)
	addRead(t, g, "A", 100)
	addRead(t, g, "B", 100)
	linkSuffixPrefix(t, g, "S", "A", 40)
	linkSuffixPrefix(t, g, "S", "B", 70)
	g.SortAdjListsByLen()

	var buf bytes.Buffer
	visitor.Run(g, NewBreakWriteVisitor(&buf))
	out := buf.String()

	if !strings.Contains(out, "BREAK\tISLAND\tI\t") {
		t.Fatalf("expected an ISLAND record for I, got %q", out)
	}
	// S has no antisense extension and a two-way sense branch whose two
	// shortest overlaps differ by 30
	if !strings.Contains(out, "BREAK\tASTIP\tS\t") {
		t.Fatalf("expected an ASTIP record for S, got %q", out)
	}
	if !strings.Contains(out, "BREAK\tSBRANCHED,30\tS\t") {
		t.Fatalf("expected an SBRANCHED record with delta 30 for S, got %q", out)
	}
}

func TestGFAWriteSegmentsAndLinks(t *testing.T) {
	g := graph.NewStringGraph(0, 10)
	addRead(t, g, "A", 100)
	addRead(t, g, "B", 100)
	linkSuffixPrefix(t, g, "A", "B", 50)

	path := filepath.Join(t.TempDir(), "out.gfa")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("could not create output file: %v", err)
	}
	visitor.Run(g, NewGFAWriteVisitor(f))
	f.Close()

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("could not read output file: %v", err)
	}
	out := string(raw)

	if !strings.Contains(out, "S\tA\t") || !strings.Contains(out, "S\tB\t") {
		t.Fatalf("expected a segment per vertex, got %q", out)
	}
	if !strings.Contains(out, "L\tA\t+\tB\t+\t50M") {
		t.Fatalf("expected a forward-forward link with the overlap CIGAR, got %q", out)
	}
}
