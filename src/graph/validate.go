package graph

import "fmt"

// Validate checks the structural invariants every visitor relies on: twin
// symmetry (twin(twin(e)) == e, with both halves wired into their start
// vertices' adjacency lists), edge-descriptor uniqueness per vertex, and
// the containment flag covering every contained vertex. It reports the
// first violation found, or nil when the graph is well formed.
func (g *StringGraph) Validate() error {
	for _, v := range g.vertices {
		seen := make(map[EdgeDesc]bool)
		for _, dir := range EdgeDirs {
			for _, e := range v.edges[dir] {
				if e.Start != v {
					return fmt.Errorf("edge on %s's adjacency list starts at %s", v.id, e.Start.id)
				}
				if e.Dir != dir {
					return fmt.Errorf("edge %s -> %s filed under the wrong direction", e.Start.id, e.End.id)
				}
				if e.Twin == nil {
					return fmt.Errorf("edge %s -> %s has no twin", e.Start.id, e.End.id)
				}
				if e.Twin.Twin != e {
					return fmt.Errorf("edge %s -> %s: twin(twin(e)) != e", e.Start.id, e.End.id)
				}
				if e.Twin.Start != e.End || e.Twin.End != e.Start {
					return fmt.Errorf("edge %s -> %s: twin endpoints do not mirror", e.Start.id, e.End.id)
				}
				twinHeld := false
				for _, te := range e.End.edges[e.Twin.Dir] {
					if te == e.Twin {
						twinHeld = true
						break
					}
				}
				if !twinHeld {
					return fmt.Errorf("edge %s -> %s: twin missing from %s's adjacency list", e.Start.id, e.End.id, e.End.id)
				}
				d := e.Desc()
				if seen[d] {
					return fmt.Errorf("vertex %s has duplicate edges to %s", v.id, e.End.id)
				}
				seen[d] = true
			}
		}
		if v.Contained && !g.HasContainment {
			return fmt.Errorf("vertex %s is contained but the graph's containment flag is unset", v.id)
		}
	}
	return nil
}
