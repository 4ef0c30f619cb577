package cmd

import (
	"github.com/spf13/cobra"
)

var samThreads int
var samFile string
var samReference string

func init() {
	rootCmd.AddCommand(samCmd)

	samCmd.PersistentFlags().IntVarP(&samThreads, "threads", "t", 1, "Number of threads to use")
	samCmd.PersistentFlags().StringVarP(&samFile, "samfile", "s", "stdin", "Samfile to read (may be gzipped). If none is specified, will read from stdin")
	samCmd.PersistentFlags().StringVarP(&samReference, "reference", "r", "", "Reference fasta file the reads were mapped to")
}

var samCmd = &cobra.Command{
	Use:   "sam",
	Short: "Score reads in sam files",
	Long: `Score reads in sam files

Use one of the subcommands, e.g.:
	align2seq sam score -s aligned.sam -r reference.fasta`,
}
