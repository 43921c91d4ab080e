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
	"log"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/deltadev/sga/src/misc"
	"github.com/deltadev/sga/src/visitor"
	"github.com/deltadev/sga/src/visitors"
)

// the command line arguments
var (
	statsIn     *string
	statsEdges  *bool
	statsBreaks *string
	statsPlot   *string
)

// the stats command (used by cobra)
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Report summary statistics for a string graph",
	Long:  `Report summary statistics for a string graph: vertex/edge classification counts, overlap length histograms and break records`,
	Run: func(cmd *cobra.Command, args []string) {
		runStats()
	},
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return misc.CheckRequiredFlags(cmd.Flags())
	},
}

func init() {
	statsIn = statsCmd.Flags().StringP("in", "i", "", "input ASQG file or .tar/.tar.gz bundle - required")
	statsEdges = statsCmd.Flags().Bool("edges", false, "also histogram (overlap length, differences) for found and candidate missing overlaps")
	statsBreaks = statsCmd.Flags().String("breaks", "", "write typed break records to this file")
	statsPlot = statsCmd.Flags().String("plot", "", "write the overlap length distribution as a PNG to this path (implies --edges)")
	statsCmd.MarkFlagRequired("in")
	RootCmd.AddCommand(statsCmd)
}

func runStats() {
	if *profiling {
		defer profile.Start(profile.ProfilePath("./")).Stop()
	}
	log.Printf("loading string graph from %s", *statsIn)
	g, err := loadStringGraph(*statsIn)
	misc.ErrorCheck(err)
	log.Printf("\tvertices: %d", g.NumVertices())
	log.Printf("\tedges: %d", g.NumEdges())

	visitor.Run(g, visitors.NewGraphStatsVisitor())

	if *statsEdges || *statsPlot != "" {
		es := visitors.NewEdgeStatsVisitor()
		visitor.Run(g, es)
		if *statsPlot != "" {
			log.Printf("writing overlap length plot to %s", *statsPlot)
			misc.ErrorCheck(es.SavePlot(*statsPlot))
		}
	}

	if *statsBreaks != "" {
		log.Printf("writing break records to %s", *statsBreaks)
		f, err := os.Create(*statsBreaks)
		misc.ErrorCheck(err)
		defer f.Close()
		g.SortAdjListsByLen()
		visitor.Run(g, visitors.NewBreakWriteVisitor(f))
	}
}
