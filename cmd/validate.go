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

	"github.com/spf13/cobra"

	"github.com/deltadev/sga/src/misc"
)

// the command line arguments
var (
	validateIn *string
)

// the validate command (used by cobra)
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the structural invariants of a string graph",
	Long:  `Check the structural invariants of a string graph: twin symmetry, adjacency consistency, edge uniqueness and the containment flag`,
	Run: func(cmd *cobra.Command, args []string) {
		runValidate()
	},
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return misc.CheckRequiredFlags(cmd.Flags())
	},
}

func init() {
	validateIn = validateCmd.Flags().StringP("in", "i", "", "input ASQG file or .tar/.tar.gz bundle - required")
	validateCmd.MarkFlagRequired("in")
	RootCmd.AddCommand(validateCmd)
}

func runValidate() {
	log.Printf("loading string graph from %s", *validateIn)
	g, err := loadStringGraph(*validateIn)
	misc.ErrorCheck(err)
	log.Printf("\tvertices: %d", g.NumVertices())
	log.Printf("\tedges: %d", g.NumEdges())

	// structural problems are reported, not fatal - the graph may still be
	// usable and the point of this subcommand is to describe it
	if err := g.Validate(); err != nil {
		fmt.Printf("graph structure INVALID: %v\n", err)
		return
	}
	fmt.Println("graph structure OK")
}
