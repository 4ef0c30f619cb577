package cmd

import (
	"github.com/spf13/cobra"

	"github.com/align2seq/align2seq/pkg/alphabet"
	"github.com/align2seq/align2seq/pkg/fasta"
	"github.com/align2seq/align2seq/pkg/gfio"
)

var translateInfile string
var translateOutfile string
var translateFrame int
var translateDegenerate bool
var translateWrap int

func init() {
	rootCmd.AddCommand(translateCmd)

	translateCmd.Flags().StringVarP(&translateInfile, "infile", "i", "stdin", "Nucleotide sequences to translate, in fasta format")
	translateCmd.Flags().StringVarP(&translateOutfile, "outfile", "o", "stdout", "Where to write the translations, in fasta format")
	translateCmd.Flags().IntVarP(&translateFrame, "frame", "f", 0, "Number of leading nucleotides to skip before reading codons")
	translateCmd.Flags().BoolVarP(&translateDegenerate, "resolve-fourfold", "", false, "Translate codons with an unknown third base when the first two bases determine the amino acid")
	translateCmd.Flags().IntVarP(&translateWrap, "wrap", "w", 0, "Wrap sequence lines to this many characters (0: no wrapping)")

	translateCmd.Flags().SortFlags = false
}

var translateCmd = &cobra.Command{
	Use:   "translate",
	Short: "Translate nucleotide sequences to amino acids",
	Long: `Translate nucleotide sequences to amino acids

Each record is read in triplets from --frame onwards, and trailing nucleotides that
do not make up a whole codon are dropped. Stop codons are written as '_' and codons
with anything other than A, C, G, T or U in them as 'X'.

Example usage:
	align2seq translate -i genes.fasta -o proteins.fasta
	cat genes.fasta | align2seq translate --frame 1 > proteins.fasta`,

	RunE: func(cmd *cobra.Command, args []string) (err error) {

		if translateFrame < 0 {
			return alphabet.ErrNegativeFrame
		}

		in, err := gfio.OpenIn(*cmd.Flag("infile"))
		if err != nil {
			return err
		}
		defer in.Close()

		out, err := gfio.OpenOut(*cmd.Flag("outfile"))
		if err != nil {
			return err
		}
		defer out.Close()

		cErr := make(chan error)
		cIn := make(chan fasta.Record)
		cReadDone := make(chan bool)
		cOut := make(chan fasta.Record)
		cWriteDone := make(chan bool)

		go fasta.StreamRecords(in, cIn, cErr, cReadDone)

		go fasta.WriteRecords(cOut, out, translateWrap, cErr, cWriteDone)

		go func() {
			for FR := range cIn {
				TR, err := FR.Translate(translateFrame, translateDegenerate)
				if err != nil {
					cErr <- err
					return
				}
				cOut <- TR
			}
			close(cOut)
		}()

		for n := 1; n > 0; {
			select {
			case err := <-cErr:
				return err
			case <-cReadDone:
				close(cIn)
				n--
			}
		}

		for n := 1; n > 0; {
			select {
			case err := <-cErr:
				return err
			case <-cWriteDone:
				n--
			}
		}

		return
	},
}
