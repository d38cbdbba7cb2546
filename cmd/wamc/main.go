// Command wamc compiles logic clauses, written in JSON term notation, into
// instructions for a Warren Abstract Machine.
//
// Usage:
//
//	wamc compile [--format text|json] [-v] FILE...
//	wamc repl
package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "wamc",
		Short:         "A compiler from logic clauses to WAM instructions.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
	rootCmd.AddCommand(newCompileCmd(), newReplCmd())
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
