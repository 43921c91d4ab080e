// the asqg package is the ambient loader/writer for the ASQG string-graph
// text format (SGA's native exchange format): VT records for vertices, ED
// records for overlaps, and a header HT record carrying the graph's global
// properties. The reader trusts ED records' overlap coordinates verbatim -
// it does not recompute or validate overlaps.
package asqg

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/deltadev/sga/src/graph"
	"github.com/deltadev/sga/src/overlap"
	"github.com/deltadev/sga/src/overlapalgebra"
	"github.com/deltadev/sga/src/seqio"
)

// Load parses an ASQG stream into a new StringGraph
func Load(r io.Reader) (*graph.StringGraph, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var g *graph.StringGraph
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		switch fields[0] {
		case "HT":
			hg, err := parseHeader(fields[1:])
			if err != nil {
				return nil, err
			}
			g = hg
		case "VT":
			if g == nil {
				g = graph.NewStringGraph(0, 0)
			}
			if err := parseVertex(g, fields[1:]); err != nil {
				return nil, err
			}
		case "ED":
			if g == nil {
				g = graph.NewStringGraph(0, 0)
			}
			if err := parseEdge(g, fields[1:]); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("asqg: unrecognised record type %q", fields[0])
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("asqg: %w", err)
	}
	if g == nil {
		g = graph.NewStringGraph(0, 0)
	}
	return g, nil
}

// LoadFile opens path and loads it as ASQG, transparently decompressing a
// trailing ".gz" extension.
func LoadFile(path string) (*graph.StringGraph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, err
		}
		defer gz.Close()
		r = gz
	}
	return Load(r)
}

func parseHeader(fields []string) (*graph.StringGraph, error) {
	g := graph.NewStringGraph(0, 0)
	for _, f := range fields {
		tag, val, ok := splitTag(f)
		if !ok {
			continue
		}
		switch tag {
		case "ER":
			v, err := strconv.ParseFloat(val, 64)
			if err != nil {
				return nil, fmt.Errorf("asqg: bad ER tag %q: %w", f, err)
			}
			g.ErrorRate = v
		case "OL":
			v, err := strconv.Atoi(val)
			if err != nil {
				return nil, fmt.Errorf("asqg: bad OL tag %q: %w", f, err)
			}
			g.MinOverlap = v
		case "CN":
			g.HasContainment = val == "1"
		case "TE":
			g.HasTransitive = val == "1"
		}
	}
	return g, nil
}

func parseVertex(g *graph.StringGraph, fields []string) error {
	if len(fields) < 2 {
		return fmt.Errorf("asqg: malformed VT record")
	}
	id := fields[0]
	seq := seqio.Sequence(fields[1])
	if err := seq.NormalizeBases(); err != nil {
		return fmt.Errorf("asqg: vertex %s: %w", id, err)
	}
	return g.AddVertex(graph.NewVertex(id, seq))
}

// parseEdge reads an ED record: "idA idB sA eA lA sB eB lB rc numDiff"
func parseEdge(g *graph.StringGraph, fields []string) error {
	if len(fields) < 1 {
		return fmt.Errorf("asqg: malformed ED record")
	}
	cols := strings.Fields(fields[0])
	if len(cols) < 10 {
		return fmt.Errorf("asqg: malformed ED record: %q", fields[0])
	}
	idA, idB := cols[0], cols[1]
	ints := make([]int, 8)
	for i := 0; i < 8; i++ {
		v, err := strconv.Atoi(cols[2+i])
		if err != nil {
			return fmt.Errorf("asqg: bad ED field %q: %w", cols[2+i], err)
		}
		ints[i] = v
	}
	ov := overlap.Overlap{
		IDs: [2]string{idA, idB},
		Match: overlap.Match{
			CoordA:              overlap.Interval{Start: ints[0], End: ints[1]},
			LengthA:             ints[2],
			CoordB:              overlap.Interval{Start: ints[3], End: ints[4]},
			LengthB:             ints[5],
			IsReverseComplement: ints[6] == 1,
			NumDiffs:            ints[7],
		},
	}
	if _, ok := overlapalgebra.CreateEdgesFromOverlap(g, ov, true); !ok {
		return fmt.Errorf("asqg: ED record references unknown vertex: %s %s", idA, idB)
	}
	return nil
}

func splitTag(f string) (tag, val string, ok bool) {
	parts := strings.SplitN(f, ":", 3)
	if len(parts) != 3 {
		return "", "", false
	}
	return parts[0], parts[2], true
}

// Save writes g to w in ASQG form: one HT header line, one VT line per
// vertex, one ED line per undirected edge (id[0] < id[1], avoiding twin
// duplication exactly like the overlap writer).
func Save(w io.Writer, g *graph.StringGraph) error {
	cn, te := 0, 0
	if g.HasContainment {
		cn = 1
	}
	if g.HasTransitive {
		te = 1
	}
	if _, err := fmt.Fprintf(w, "HT\tVN:i:1\tER:f:%g\tOL:i:%d\tCN:i:%d\tTE:i:%d\n",
		g.ErrorRate, g.MinOverlap, cn, te); err != nil {
		return err
	}

	for _, v := range g.Vertices() {
		if _, err := fmt.Fprintf(w, "VT\t%s\t%s\n", v.ID(), v.Seq); err != nil {
			return err
		}
	}
	for _, v := range g.Vertices() {
		for _, e := range v.AllEdges() {
			if e.Ovr.IDs[0] >= e.Ovr.IDs[1] {
				continue
			}
			if _, err := fmt.Fprintf(w, "ED\t%s\n", e.Ovr.String()); err != nil {
				return err
			}
		}
	}
	return nil
}

// SaveFile writes g to path in ASQG form
func SaveFile(path string, g *graph.StringGraph) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return Save(f, g)
}
