package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/align2seq/align2seq/pkg/align"
	"github.com/align2seq/align2seq/pkg/gfio"
	"github.com/align2seq/align2seq/pkg/sam"
)

var samScoreOutfile string
var samScoreMaxCells int64

func init() {
	samCmd.AddCommand(samScoreCmd)

	samScoreCmd.Flags().StringVarP(&samScoreOutfile, "outfile", "o", "stdout", "The output file to write")
	samScoreCmd.Flags().Int64VarP(&samScoreMaxCells, "max-cells", "", 0, "Refuse reads that need more alignment cells than this (default: a quarter of physical memory)")

	samScoreCmd.Flags().SortFlags = false
}

var samScoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score each mapped read in a SAM file against the reference it maps to",
	Long: `Score each mapped read in a SAM file against the reference it maps to

Soft-clipped bases are left out of the read, and regions of the reference skipped by
the read ('N' in the cigar) are left out of the reference. Unmapped reads and secondary
mappings are skipped.

Example usage:
	align2seq sam score -s aligned.sam -r reference.fasta -o scores.csv

The output is a csv-format file with one line per read, and four columns:
'query', 'reference', 'position' (1-based) and 'score'.`,

	RunE: func(cmd *cobra.Command, args []string) (err error) {

		if samReference == "" {
			return errors.New("a reference fasta file (-r / --reference) is required")
		}

		samIn, err := gfio.OpenIn(*cmd.Flag("samfile"))
		if err != nil {
			return err
		}
		defer samIn.Close()

		ref, err := gfio.OpenIn(*cmd.Flag("reference"))
		if err != nil {
			return err
		}
		defer ref.Close()

		out, err := gfio.OpenOut(*cmd.Flag("outfile"))
		if err != nil {
			return err
		}
		defer out.Close()

		maxCells := samScoreMaxCells
		if maxCells == 0 {
			maxCells = align.DefaultMaxCells()
		}

		err = sam.Score(samIn, ref, out, samThreads, maxCells)

		return
	},
}
