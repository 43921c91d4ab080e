package graph

// EdgeDir is the bidirected direction of a half-edge: which end of the
// start vertex's read the overlap extends from.
type EdgeDir uint8

const (
	Sense EdgeDir = iota
	Antisense
)

// EdgeDirCount is the number of directions a vertex has adjacency lists for
const EdgeDirCount = 2

// EdgeDirs enumerates both directions in a stable order, for "for each
// direction" loops.
var EdgeDirs = [EdgeDirCount]EdgeDir{Sense, Antisense}

// Flip returns the opposite direction (the "!dir" operator)
func (d EdgeDir) Flip() EdgeDir {
	if d == Sense {
		return Antisense
	}
	return Sense
}

func (d EdgeDir) String() string {
	if d == Sense {
		return "sense"
	}
	return "antisense"
}

// EdgeComp indicates whether two reads align on the same strand or on
// opposite strands (one is reverse-complemented relative to the other)
type EdgeComp uint8

const (
	Same EdgeComp = iota
	Reverse
)

func (c EdgeComp) String() string {
	if c == Same {
		return "same"
	}
	return "reverse"
}
