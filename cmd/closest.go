package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/align2seq/align2seq/pkg/align"
	"github.com/align2seq/align2seq/pkg/closest"
	"github.com/align2seq/align2seq/pkg/gfio"
	"github.com/align2seq/align2seq/pkg/scoring"
)

var closestQuery string
var closestTarget string
var closestOutfile string
var closestProtein bool
var closestMaxCells int64

func init() {
	rootCmd.AddCommand(closestCmd)

	closestCmd.Flags().StringVarP(&closestQuery, "query", "q", "", "Sequences to find the closest target for, in fasta format")
	closestCmd.Flags().StringVarP(&closestTarget, "target", "t", "stdin", "Sequences to search through, in fasta format")
	closestCmd.Flags().StringVarP(&closestOutfile, "outfile", "o", "stdout", "The output file to write")
	closestCmd.Flags().BoolVarP(&closestProtein, "protein", "p", false, "Score as amino acids (BLOSUM62) instead of nucleotides")
	closestCmd.Flags().Int64VarP(&closestMaxCells, "max-cells", "", 0, "Refuse pairs that need more alignment cells than this (default: a quarter of physical memory)")

	closestCmd.Flags().SortFlags = false
}

var closestCmd = &cobra.Command{
	Use:   "closest",
	Short: "Find the highest scoring target sequence for each query sequence",
	Long: `Find the highest scoring target sequence for each query sequence

The queries are held in memory and the targets are streamed, so the target file can be
large. If more than one target has the highest score, the first one in the target file
is reported.

Example usage:
	align2seq closest -q queries.fasta -t targets.fasta -o closest.csv

The output is a csv-format file with one line per query, and three columns:
'query', 'closest' and 'score'.`,

	RunE: func(cmd *cobra.Command, args []string) (err error) {

		if closestQuery == "" {
			return errors.New("a query fasta file (-q / --query) is required")
		}

		scheme := scoring.Nucleotide
		if closestProtein {
			scheme = scoring.Protein
		}

		query, err := gfio.OpenIn(*cmd.Flag("query"))
		if err != nil {
			return err
		}
		defer query.Close()

		target, err := gfio.OpenIn(*cmd.Flag("target"))
		if err != nil {
			return err
		}
		defer target.Close()

		out, err := gfio.OpenOut(*cmd.Flag("outfile"))
		if err != nil {
			return err
		}
		defer out.Close()

		maxCells := closestMaxCells
		if maxCells == 0 {
			maxCells = align.DefaultMaxCells()
		}

		err = closest.Closest(query, target, out, scheme, maxCells)

		return
	},
}
