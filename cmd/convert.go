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

	"github.com/spf13/cobra"

	"github.com/deltadev/sga/src/misc"
	"github.com/deltadev/sga/src/visitor"
	"github.com/deltadev/sga/src/visitors"
)

// the command line arguments
var (
	convertIn       *string
	convertGFA      *string
	convertFasta    *string
	convertOverlaps *string
)

// the convert command (used by cobra)
var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a string graph to GFA, FASTA and/or overlap listings",
	Long:  `Convert a string graph to GFA (for Bandage and friends), FASTA (vertex sequences) and/or plain overlap listings`,
	Run: func(cmd *cobra.Command, args []string) {
		runConvert()
	},
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return misc.CheckRequiredFlags(cmd.Flags())
	},
}

func init() {
	convertIn = convertCmd.Flags().StringP("in", "i", "", "input ASQG file or .tar/.tar.gz bundle - required")
	convertGFA = convertCmd.Flags().String("gfa", "", "write the graph as GFA to this path")
	convertFasta = convertCmd.Flags().String("fasta", "", "write the vertex sequences as FASTA to this path")
	convertOverlaps = convertCmd.Flags().String("overlaps", "", "write the undirected overlap listing to this path")
	convertCmd.MarkFlagRequired("in")
	RootCmd.AddCommand(convertCmd)
}

func runConvert() {
	log.Printf("loading string graph from %s", *convertIn)
	g, err := loadStringGraph(*convertIn)
	misc.ErrorCheck(err)

	if *convertGFA == "" && *convertFasta == "" && *convertOverlaps == "" {
		log.Println("nothing to do: pass at least one of --gfa, --fasta, --overlaps")
		return
	}
	if *convertGFA != "" {
		log.Printf("writing GFA to %s", *convertGFA)
		f, err := os.Create(*convertGFA)
		misc.ErrorCheck(err)
		visitor.Run(g, visitors.NewGFAWriteVisitor(f))
		misc.ErrorCheck(f.Close())
	}
	if *convertFasta != "" {
		log.Printf("writing FASTA to %s", *convertFasta)
		f, err := os.Create(*convertFasta)
		misc.ErrorCheck(err)
		visitor.Run(g, visitors.NewFastaWriteVisitor(f))
		misc.ErrorCheck(f.Close())
	}
	if *convertOverlaps != "" {
		log.Printf("writing overlaps to %s", *convertOverlaps)
		f, err := os.Create(*convertOverlaps)
		misc.ErrorCheck(err)
		visitor.Run(g, visitors.NewOverlapWriteVisitor(f))
		misc.ErrorCheck(f.Close())
	}
	log.Println("finished")
}
