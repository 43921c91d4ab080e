// the graph package holds the string-graph's data model: vertices,
// bidirected edges and the StringGraph container that owns them, plus the
// bulk operations (color sweeps, sorting, sweeping) every simplification
// visitor is built from.
package graph

import (
	"fmt"
	"sort"
)

// StringGraph is a mapping from vertex ID to Vertex, plus the global
// properties every visitor consults or maintains.
type StringGraph struct {
	vertices map[string]*Vertex

	ErrorRate      float64
	MinOverlap     int
	HasContainment bool
	HasTransitive  bool
	ExactMode      bool
}

// NewStringGraph constructs an empty graph. A freshly built overlap graph
// is not known to be transitively reduced, so the transitive flag starts
// set and stays set until a reduction pass clears it.
func NewStringGraph(errorRate float64, minOverlap int) *StringGraph {
	return &StringGraph{
		vertices:      make(map[string]*Vertex),
		ErrorRate:     errorRate,
		MinOverlap:    minOverlap,
		HasTransitive: true,
	}
}

// AddVertex adds v to the graph, failing if its ID is already present
func (g *StringGraph) AddVertex(v *Vertex) error {
	if _, exists := g.vertices[v.id]; exists {
		return fmt.Errorf("duplicate vertex id: %s", v.id)
	}
	g.vertices[v.id] = v
	return nil
}

// GetVertex looks up a vertex by ID
func (g *StringGraph) GetVertex(id string) (*Vertex, bool) {
	v, ok := g.vertices[id]
	return v, ok
}

// NumVertices returns the number of vertices currently in the graph
func (g *StringGraph) NumVertices() int { return len(g.vertices) }

// Vertices returns every vertex, sorted ascending by ID. Go maps have no
// defined iteration order; a visitor pass must be stable across its own
// run, so the driver always walks this slice rather than the map directly.
// ID order also keeps the passes reproducible run to run.
func (g *StringGraph) Vertices() []*Vertex {
	out := make([]*Vertex, 0, len(g.vertices))
	for _, v := range g.vertices {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })
	return out
}

// NumEdges returns the number of undirected edges (half the sum of
// outgoing edge counts)
func (g *StringGraph) NumEdges() int {
	total := 0
	for _, v := range g.vertices {
		total += v.CountAllEdges()
	}
	return total / 2
}

// AddEdge wires e and its twin together and appends each to its start
// vertex's adjacency list. Every edge is created alongside its twin -
// callers build the pair with NewEdgePair and hand both halves here.
func (g *StringGraph) AddEdge(e, twin *Edge) {
	e.Twin = twin
	twin.Twin = e
	e.Start.addEdge(e)
	twin.Start.addEdge(twin)
}

// DeleteEdge removes e and its twin from their respective adjacency lists.
// Every edge deletion deletes its twin.
func (g *StringGraph) DeleteEdge(e *Edge) {
	e.Start.removeEdge(e)
	if e.Twin != nil {
		e.Twin.Start.removeEdge(e.Twin)
	}
}

// SetColors sets every vertex's and every edge's color to c. Every visitor
// that demands a clean slate calls this in Previsit.
func (g *StringGraph) SetColors(c Color) {
	for _, v := range g.vertices {
		v.SetColor(c)
		for _, dir := range EdgeDirs {
			for _, e := range v.edges[dir] {
				e.SetColor(c)
			}
		}
	}
}

// CheckColors reports whether every vertex and every edge currently holds
// color c - the precondition most visitors assert in Previsit and the
// postcondition most assert in Postvisit.
func (g *StringGraph) CheckColors(c Color) bool {
	for _, v := range g.vertices {
		if v.color != c {
			return false
		}
		for _, dir := range EdgeDirs {
			for _, e := range v.edges[dir] {
				if e.color != c {
					return false
				}
			}
		}
	}
	return true
}

// SortAdjListsByLen sorts every vertex's adjacency lists ascending by
// SeqLen
func (g *StringGraph) SortAdjListsByLen() {
	for _, v := range g.vertices {
		v.sortEdgesByLen()
	}
}

// SweepEdges removes every edge colored c from the graph and returns how
// many half-edges were removed (an undirected edge counts twice, once per
// half). This is
// the only destructive bulk edge operation and must only be called from a
// visitor's Postvisit.
func (g *StringGraph) SweepEdges(c Color) int {
	removed := 0
	for _, v := range g.vertices {
		for _, dir := range EdgeDirs {
			list := v.edges[dir]
			kept := make([]*Edge, 0, len(list))
			for _, e := range list {
				if e.color == c {
					removed++
				} else {
					kept = append(kept, e)
				}
			}
			v.edges[dir] = kept
		}
	}
	return removed
}

// SweepVertices removes every vertex colored c from the graph, along with
// every edge incident to it (and each of those edges' twins, at the
// neighbouring vertex). Returns the number of vertices removed. This is
// the only way a vertex is ever destroyed and, like
// SweepEdges, must only be called from Postvisit.
func (g *StringGraph) SweepVertices(c Color) int {
	removed := 0
	for id, v := range g.vertices {
		if v.color != c {
			continue
		}
		for _, dir := range EdgeDirs {
			for _, e := range v.edges[dir] {
				if e.Twin != nil {
					e.Twin.Start.removeEdge(e.Twin)
				}
			}
		}
		delete(g.vertices, id)
		removed++
	}
	return removed
}
