package cmd

import (
	"fmt"
	"os"

	"github.com/op/go-logging"
	"github.com/spf13/cobra"
)

var log = logging.MustGetLogger("align2seq")
var formatter = logging.MustStringFormatter(`%{time:15:04:05.000} %{module} %{level:.4s} %{message}`)

var verbose bool

var (
	rootCmd = &cobra.Command{
		Use:     "align2seq",
		Short:   "score pairwise similarity of nucleotide and protein sequences, and translate nucleotides",
		Long:    `score pairwise similarity of nucleotide and protein sequences, and translate nucleotides`,
		Version: "1.0.0",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(verbose)
		},
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log progress (and debug information) to stderr")
}

// setupLogging sends all log messages to stderr, NOTICE and above unless verbose
func setupLogging(verbose bool) {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	leveled := logging.AddModuleLevel(logging.NewBackendFormatter(backend, formatter))
	if verbose {
		leveled.SetLevel(logging.DEBUG, "")
	} else {
		leveled.SetLevel(logging.NOTICE, "")
	}
	logging.SetBackend(leveled)
}

// Execute executes the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
