package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/align2seq/align2seq/pkg/align"
	"github.com/align2seq/align2seq/pkg/gfio"
	"github.com/align2seq/align2seq/pkg/pairwise"
	"github.com/align2seq/align2seq/pkg/scoring"
	"github.com/align2seq/align2seq/pkg/store"
)

var alignQuery string
var alignTarget string
var alignOutfile string
var alignProtein bool
var alignMode string
var alignThreads int
var alignCheckpoint string
var alignMaxCells int64
var alignDegap bool

func init() {
	rootCmd.AddCommand(alignCmd)

	alignCmd.Flags().StringVarP(&alignQuery, "query", "q", "stdin", "Sequences to score, in fasta format")
	alignCmd.Flags().StringVarP(&alignTarget, "target", "t", "", "Sequences to score the queries against, in fasta format. If none is specified, the queries are scored against each other")
	alignCmd.Flags().StringVarP(&alignOutfile, "outfile", "o", "stdout", "The output file to write")
	alignCmd.Flags().BoolVarP(&alignProtein, "protein", "p", false, "Score as amino acids (BLOSUM62) instead of nucleotides")
	alignCmd.Flags().StringVarP(&alignMode, "mode", "m", pairwise.ModeAll, "How to pair queries with targets: 'all' (every query with every target) or 'paired' (the nth query with the nth target)")
	alignCmd.Flags().IntVarP(&alignThreads, "threads", "", 1, "Number of threads to use")
	alignCmd.Flags().StringVarP(&alignCheckpoint, "checkpoint", "", "", "Database file to keep scores in. Pairs already in it are not scored again")
	alignCmd.Flags().Int64VarP(&alignMaxCells, "max-cells", "", 0, "Refuse pairs that need more alignment cells than this (default: a quarter of physical memory)")
	alignCmd.Flags().BoolVarP(&alignDegap, "degap", "", false, "Remove '-' characters from sequences before scoring them")

	alignCmd.Flags().SortFlags = false
}

var alignCmd = &cobra.Command{
	Use:   "align",
	Short: "Score the similarity of pairs of sequences from fasta files",
	Long: `Score the similarity of pairs of sequences from fasta files

Example usage:
	align2seq align -q queries.fasta -t targets.fasta -o scores.csv
	align2seq align --protein -q proteins.fasta --threads 8 > scores.csv

The output is a csv-format file with one line per pair, and three columns:
'query', 'target' and 'score'.

If a checkpoint database is given, each new score is saved in it as it is written,
and a rerun with the same checkpoint only scores the pairs that are missing.`,

	RunE: func(cmd *cobra.Command, args []string) (err error) {

		scheme := scoring.Nucleotide
		if alignProtein {
			scheme = scoring.Protein
		}

		query, err := gfio.OpenIn(*cmd.Flag("query"))
		if err != nil {
			return err
		}
		defer query.Close()

		var target io.Reader
		if alignTarget != "" {
			t, err := gfio.OpenIn(*cmd.Flag("target"))
			if err != nil {
				return err
			}
			defer t.Close()
			target = t
		}

		out, err := gfio.OpenOut(*cmd.Flag("outfile"))
		if err != nil {
			return err
		}
		defer out.Close()

		opts := pairwise.Options{
			Scheme:   scheme,
			Mode:     alignMode,
			Threads:  alignThreads,
			MaxCells: alignMaxCells,
			Degap:    alignDegap,
		}
		if opts.MaxCells == 0 {
			opts.MaxCells = align.DefaultMaxCells()
		}

		if alignCheckpoint != "" {
			s, err := store.Open(alignCheckpoint, scheme.Name)
			if err != nil {
				return err
			}
			defer s.Close()
			log.Infof("using checkpoint %s", alignCheckpoint)
			opts.Store = s
		}

		err = pairwise.Pairwise(query, target, out, opts)

		return
	},
}
