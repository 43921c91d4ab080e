// Copyright © 2017 Will Rowe <will.rowe@stfc.ac.uk>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package cmd

import (
	"fmt"
	"log"
	"os"
	"runtime"
	"strings"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/deltadev/sga/src/asqg"
	"github.com/deltadev/sga/src/graph"
	"github.com/deltadev/sga/src/misc"
	"github.com/deltadev/sga/src/visitor"
	"github.com/deltadev/sga/src/visitors"
)

// the command line arguments
var (
	simplifyIn        *string
	simplifyOut       *string
	simplifyGFAOut    *string
	simplifyFuzz      *int
	simplifyMinDiff   *int
	simplifyBubbleCap *int
	simplifyMaxIters  *int
	simplifyExact     *bool
	simplifyLog       *string
)

// the simplify command (used by cobra)
var simplifyCmd = &cobra.Command{
	Use:   "simplify",
	Short: "Run the simplification pipeline over a string graph",
	Long:  `Run the simplification pipeline over a string graph: transitive reduction, containment removal, trim, island removal, bubble collapse and small-repeat resolution`,
	Run: func(cmd *cobra.Command, args []string) {
		runSimplify()
	},
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return misc.CheckRequiredFlags(cmd.Flags())
	},
}

func init() {
	simplifyIn = simplifyCmd.Flags().StringP("in", "i", "", "input ASQG file or .tar/.tar.gz bundle - required")
	simplifyOut = simplifyCmd.Flags().StringP("out", "o", "simplified.asqg", "output ASQG file")
	simplifyGFAOut = simplifyCmd.Flags().String("gfa", "", "also write the simplified graph as GFA to this path")
	simplifyFuzz = simplifyCmd.Flags().Int("fuzz", visitors.DefaultFuzz, "Myers transitive reduction fuzz constant")
	simplifyMinDiff = simplifyCmd.Flags().Int("minDiff", visitors.DefaultMinDiff, "small-repeat resolver minimum length difference")
	simplifyBubbleCap = simplifyCmd.Flags().Int("bubbleSteps", visitors.DefaultBubbleEdgeStepLimit, "upper bound on BFS pops while confirming an edge-BFS bubble")
	simplifyMaxIters = simplifyCmd.Flags().Int("maxIters", 0, "maximum fixed-point iterations per pass (0 = unbounded)")
	simplifyExact = simplifyCmd.Flags().Bool("exact", false, "treat the input as a complete overlap graph (skip remodeling during containment removal)")
	simplifyLog = simplifyCmd.Flags().String("log", "", "filename for log data (default: STDERR)")
	simplifyCmd.MarkFlagRequired("in")
	RootCmd.AddCommand(simplifyCmd)
}

// loadStringGraph loads an ASQG string graph from a plain (optionally
// gzipped) file or from a .tar/.tar.gz bundle, keyed off the extension.
func loadStringGraph(path string) (*graph.StringGraph, error) {
	if err := misc.CheckGraphFile(path); err != nil {
		return nil, err
	}
	if strings.HasSuffix(path, ".tar") || strings.HasSuffix(path, ".tar.gz") || strings.HasSuffix(path, ".tgz") {
		return asqg.LoadBundle(path)
	}
	return asqg.LoadFile(path)
}

func runSimplify() {
	if *profiling {
		defer profile.Start(profile.ProfilePath("./")).Stop()
	}
	// start logging
	if *simplifyLog != "" {
		logFH := misc.StartLogging(*simplifyLog)
		defer logFH.Close()
		log.SetOutput(logFH)
	}
	runtime.GOMAXPROCS(*proc)
	log.Printf("loading string graph from %s", *simplifyIn)
	g, err := loadStringGraph(*simplifyIn)
	misc.ErrorCheck(err)
	g.ExactMode = *simplifyExact
	log.Printf("\tvertices: %d", g.NumVertices())
	log.Printf("\tedges: %d", g.NumEdges())

	runPipeline(g)

	log.Printf("writing simplified graph to %s", *simplifyOut)
	misc.ErrorCheck(asqg.SaveFile(*simplifyOut, g))
	if *simplifyGFAOut != "" {
		log.Printf("writing GFA export to %s", *simplifyGFAOut)
		f, err := os.Create(*simplifyGFAOut)
		misc.ErrorCheck(err)
		defer f.Close()
		visitor.Run(g, visitors.NewGFAWriteVisitor(f))
	}
	fmt.Println("finished")
}

// runPipeline composes the simplification passes in the order the engine
// requires them run: one identical-remove pass and general containment
// removal first (the latter to a fixed point, since remodeling may re-set
// the containment flag), then transitive reduction, then the trimming/bubble/
// repeat passes that only make sense on an irreducible graph.
func runPipeline(g *graph.StringGraph) {
	visitor.Run(g, visitors.NewIdenticalRemoveVisitor())

	containVisitor := visitors.NewContainRemoveVisitor(nil)
	visitor.RunToFixedPoint(g, containVisitor, *simplifyMaxIters)

	tr := visitors.NewTransitiveReductionVisitor()
	tr.Fuzz = *simplifyFuzz
	visitor.Run(g, tr)

	visitor.RunToFixedPoint(g, visitors.NewTrimVisitor(), *simplifyMaxIters)
	visitor.Run(g, visitors.NewIslandVisitor())
	visitor.Run(g, visitors.NewDuplicateVisitor())

	visitor.RunToFixedPoint(g, visitors.NewBubbleVertexVisitor(), *simplifyMaxIters)

	be := visitors.NewBubbleEdgeVisitor()
	be.StepLimit = *simplifyBubbleCap
	visitor.RunToFixedPoint(g, be, *simplifyMaxIters)

	sr := visitors.NewSmallRepeatResolveVisitor()
	sr.MinDiff = *simplifyMinDiff
	visitor.Run(g, sr)
}
