// the seqio package holds the DNA sequence primitives shared by every other
// package: the read sequence carried by a graph.Vertex is a seqio.Sequence
package seqio

import (
	"fmt"
	"unicode"
)

// complementBases is the lookup table used by ReverseComplement
var complementBases = [256]byte{
	'A': 'T',
	'T': 'A',
	'C': 'G',
	'G': 'C',
	'N': 'N',
}

// Sequence is an immutable byte string over the DNA alphabet {A,C,G,T,N}.
// Reads are stored and passed around as Sequence values. ReverseComplement
// returns a new Sequence; NormalizeBases is the one helper that edits in
// place.
type Sequence []byte

// NormalizeBases upper-cases every base in place and reports the first
// byte that is not in {A,C,G,T,N} (case-insensitively). It does not silently
// coerce unrecognised bases to N - a string graph is only as trustworthy as
// the reads feeding it, so a malformed base is a load-time error.
func (s Sequence) NormalizeBases() error {
	for i, b := range s {
		switch base := byte(unicode.ToUpper(rune(b))); base {
		case 'A', 'C', 'T', 'G', 'N':
			s[i] = base
		default:
			return fmt.Errorf("non A/C/T/G/N base %q at offset %d", b, i)
		}
	}
	return nil
}

// ReverseComplement returns the reverse complement of s as a new Sequence,
// leaving s untouched.
func ReverseComplement(s Sequence) Sequence {
	out := make(Sequence, len(s))
	for i, b := range s {
		out[len(s)-1-i] = complementBases[b]
	}
	return out
}

// String satisfies fmt.Stringer so sequences print as plain text rather
// than a byte slice
func (s Sequence) String() string {
	return string(s)
}
