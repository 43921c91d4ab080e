package visitors

import (
	"fmt"
	"os"

	"github.com/deltadev/sga/src/graph"
	"github.com/deltadev/sga/src/misc"
	"github.com/deltadev/sga/src/overlapalgebra"
	"github.com/deltadev/sga/src/seqio"
)

// ErrorCorrectVisitor runs read error correction through the injected
// ErrorCorrector collaborator, tracking progress with an explicit counter
// on the visitor.
type ErrorCorrectVisitor struct {
	Corrector overlapalgebra.ErrorCorrector
	KmerSize  int
	ErrorRate float64

	numCorrected int
}

func NewErrorCorrectVisitor(corrector overlapalgebra.ErrorCorrector, kmerSize int, errorRate float64) *ErrorCorrectVisitor {
	return &ErrorCorrectVisitor{Corrector: corrector, KmerSize: kmerSize, ErrorRate: errorRate}
}

func (ec *ErrorCorrectVisitor) Previsit(g *graph.StringGraph) {
	ec.numCorrected = 0
}

func (ec *ErrorCorrectVisitor) Visit(g *graph.StringGraph, v *graph.Vertex) bool {
	if ec.numCorrected > 0 && ec.numCorrected%50000 == 0 {
		fmt.Fprintf(os.Stderr, "Corrected %d reads\n", ec.numCorrected)
	}
	corrected, err := ec.Corrector.CorrectVertex(g, v, ec.KmerSize, ec.ErrorRate)
	if err != nil {
		misc.ErrorCheck(fmt.Errorf("error correcting vertex %s: %w", v.ID(), err))
	}
	v.Seq = seqio.Sequence(corrected)
	ec.numCorrected++
	return false
}

func (ec *ErrorCorrectVisitor) Postvisit(g *graph.StringGraph) {
	fmt.Fprintf(os.Stderr, "corrected %d reads\n", ec.numCorrected)
}
