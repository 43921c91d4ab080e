package visitors

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/will-rowe/gfa"

	"github.com/deltadev/sga/src/graph"
	"github.com/deltadev/sga/src/misc"
	"github.com/deltadev/sga/src/version"
)

// GFAWriteVisitor exports the graph as a GFA file: one segment per
// vertex, one link per undirected edge. GFA's L record already carries
// (from, from-orient, to, to-orient, overlap), a direct match for a
// bidirected string-graph edge's (end vertex, dir, comp); sense/antisense
// map onto the "+"/"-" segment orientations GFA expects.
type GFAWriteVisitor struct {
	Out *os.File

	gfaDoc *gfa.GFA
}

func NewGFAWriteVisitor(out *os.File) *GFAWriteVisitor {
	return &GFAWriteVisitor{Out: out}
}

func (gw *GFAWriteVisitor) Previsit(g *graph.StringGraph) {
	gw.gfaDoc = gfa.NewGFA()
	_ = gw.gfaDoc.AddVersion(1)
	stamp := fmt.Sprintf("string graph exported by sga (version %s) at: %v",
		version.GetVersion(), time.Now().Format("Mon Jan _2 15:04:05 2006"))
	gw.gfaDoc.AddComment([]byte(stamp))
}

func (gw *GFAWriteVisitor) Visit(g *graph.StringGraph, v *graph.Vertex) bool {
	seg, err := gfa.NewSegment([]byte(v.ID()), []byte(v.Seq))
	misc.ErrorCheck(err)
	seg.Add(gw.gfaDoc)

	for _, e := range v.AllEdges() {
		if e.Ovr.IDs[0] >= e.Ovr.IDs[1] {
			continue // link written once per undirected edge, like the overlap writer
		}
		// a link enters its "to" segment: that segment reads forward when
		// its half of the edge extends away from the overlap, i.e. when
		// the twin points antisense
		fromOrient := orientOf(e.Dir)
		toOrient := orientOf(e.Twin.Dir.Flip())
		cigar := []byte(strconv.Itoa(e.Ovr.Match.MinOverlapLength()) + "M")
		link, err := gfa.NewLink([]byte(e.Start.ID()), []byte(fromOrient), []byte(e.End.ID()), []byte(toOrient), cigar)
		misc.ErrorCheck(err)
		link.Add(gw.gfaDoc)
	}
	return false
}

func (gw *GFAWriteVisitor) Postvisit(g *graph.StringGraph) {
	writer, err := gfa.NewWriter(gw.Out, gw.gfaDoc)
	misc.ErrorCheck(err)
	misc.ErrorCheck(gw.gfaDoc.WriteGFAContent(writer))
}

func orientOf(dir graph.EdgeDir) string {
	if dir == graph.Sense {
		return "+"
	}
	return "-"
}
