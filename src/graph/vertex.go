package graph

import (
	"sort"

	"github.com/deltadev/sga/src/seqio"
)

// Vertex holds a read's sequence and its bidirected adjacency. Vertices are
// created by the loader and destroyed only via StringGraph.SweepVertices -
// never directly.
//
// A Vertex is not set up for concurrent access; the simplification
// pipeline is single-threaded.
type Vertex struct {
	id        string
	Seq       seqio.Sequence
	Contained bool // derived from graph algorithms, never from input
	color     Color
	edges     [EdgeDirCount][]*Edge
}

// NewVertex constructs a Vertex with no adjacency and color White
func NewVertex(id string, seq seqio.Sequence) *Vertex {
	return &Vertex{id: id, Seq: seq}
}

// ID returns the vertex's stable string identity
func (v *Vertex) ID() string { return v.id }

// SeqLen returns the length of the held sequence
func (v *Vertex) SeqLen() int { return len(v.Seq) }

// Color returns the vertex's current color
func (v *Vertex) Color() Color { return v.color }

// SetColor sets the vertex's color
func (v *Vertex) SetColor(c Color) { v.color = c }

// GetEdges returns a snapshot of the outgoing edges in the given
// direction, in their current stored order. Visitors that need ascending
// order by overlap length must either require StringGraph.SortAdjListsByLen
// as a precondition or sort locally.
func (v *Vertex) GetEdges(dir EdgeDir) []*Edge {
	out := make([]*Edge, len(v.edges[dir]))
	copy(out, v.edges[dir])
	return out
}

// AllEdges returns a snapshot of every outgoing edge, both directions
func (v *Vertex) AllEdges() []*Edge {
	out := make([]*Edge, 0, v.CountAllEdges())
	for _, dir := range EdgeDirs {
		out = append(out, v.edges[dir]...)
	}
	return out
}

// CountEdges returns the number of outgoing edges in the given direction
func (v *Vertex) CountEdges(dir EdgeDir) int { return len(v.edges[dir]) }

// CountAllEdges returns the number of outgoing edges in both directions
func (v *Vertex) CountAllEdges() int {
	return len(v.edges[Sense]) + len(v.edges[Antisense])
}

// addEdge appends e to its own direction's adjacency list. Only called by
// StringGraph.AddEdge - edge creation is a container-level operation so
// that both halves of a bidirected edge are always wired together.
func (v *Vertex) addEdge(e *Edge) {
	v.edges[e.Dir] = append(v.edges[e.Dir], e)
}

// removeEdge removes e from its direction's adjacency list, if present
func (v *Vertex) removeEdge(e *Edge) {
	list := v.edges[e.Dir]
	for i, x := range list {
		if x == e {
			v.edges[e.Dir] = append(list[:i], list[i+1:]...)
			return
		}
	}
}

// sortEdgesByLen sorts both adjacency lists ascending by SeqLen - the
// precondition transitive reduction, the small-repeat resolver and the
// break writer all require.
func (v *Vertex) sortEdgesByLen() {
	for _, dir := range EdgeDirs {
		list := v.edges[dir]
		sort.Slice(list, func(i, j int) bool { return list[i].SeqLen < list[j].SeqLen })
	}
}

// MarkDuplicateEdges colors c onto every outgoing edge that duplicates an
// earlier edge's EdgeDesc (end vertex, direction and strand sense), keeping
// the first occurrence uncolored. Reports whether any duplicate was found.
func (v *Vertex) MarkDuplicateEdges(c Color) bool {
	found := false
	seen := make(map[EdgeDesc]bool)
	for _, dir := range EdgeDirs {
		for _, e := range v.edges[dir] {
			d := e.Desc()
			if seen[d] {
				e.SetColor(c)
				found = true
			} else {
				seen[d] = true
			}
		}
	}
	return found
}

// DeleteEdges removes every outgoing edge (and each twin) from the graph.
// Used by the edge-BFS bubble visitor when an entire branch is excised.
func (v *Vertex) DeleteEdges(g *StringGraph) {
	for _, e := range v.AllEdges() {
		g.DeleteEdge(e)
	}
}
