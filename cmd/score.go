package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/align2seq/align2seq/pkg/align"
	"github.com/align2seq/align2seq/pkg/scoring"
)

var scoreProtein bool
var scoreMaxCells int64

func init() {
	rootCmd.AddCommand(scoreCmd)

	scoreCmd.Flags().BoolVarP(&scoreProtein, "protein", "p", false, "Score as amino acids (BLOSUM62) instead of nucleotides")
	scoreCmd.Flags().Int64VarP(&scoreMaxCells, "max-cells", "", 0, "Refuse pairs that need more alignment cells than this (default: a quarter of physical memory)")
}

var scoreCmd = &cobra.Command{
	Use:   "score SEQ1 SEQ2",
	Short: "Score the similarity of two sequences given on the command line",
	Long: `Score the similarity of two sequences given on the command line

Example usage:
	align2seq score ACGTTGCA ACGTGCA
	align2seq score --protein MKVLAAGIV MKVLSAGLV

The score is printed to stdout.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) (err error) {

		scheme := scoring.Nucleotide
		if scoreProtein {
			scheme = scoring.Protein
		}

		maxCells := scoreMaxCells
		if maxCells == 0 {
			maxCells = align.DefaultMaxCells()
		}

		seq1, seq2 := []byte(args[0]), []byte(args[1])

		err = align.CheckDims(len(seq1), len(seq2), maxCells)
		if err != nil {
			return err
		}

		log.Debugf("scoring %d x %d (%s)", len(seq1), len(seq2), scheme.Name)

		_, err = fmt.Fprintln(cmd.OutOrStdout(), align.Score(seq1, seq2, scheme))

		return
	},
}
