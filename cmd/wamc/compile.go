package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/brunokim/wamgen/errors"
	"github.com/brunokim/wamgen/logic"
	"github.com/brunokim/wamgen/wam"
)

func newCompileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compile [flags] FILE...",
		Short: "compile clauses into WAM instructions.",
		Long: `Compile the clauses in the given files, or stdin if none is given.
Each file holds a stream of clauses in JSON term notation, e.g.,

  {"head": {"nat": [{"s": ["X"]}]}, "body": [{"nat": ["X"]}]}`,
		RunE: func(cmd *cobra.Command, args []string) error {
			format := getString(cmd, "format")
			if format != "text" && format != "json" {
				return errors.New("invalid format %q (must be text or json)", format)
			}
			clauses, err := readClauses(cmd, args)
			if err != nil {
				return err
			}
			logger := newLogger(cmd, cmd.ErrOrStderr())
			compiled, err := wam.CompileClauses(clauses, wam.WithLogger(logger))
			if err != nil {
				return err
			}
			return writeClauses(cmd.OutOrStdout(), format, compiled)
		},
	}
	cmd.Flags().StringP("format", "f", "text", "output format: text or json")
	return cmd
}

func readClauses(cmd *cobra.Command, filenames []string) ([]*logic.Clause, error) {
	if len(filenames) == 0 {
		return logic.DecodeClauses(cmd.InOrStdin())
	}
	var clauses []*logic.Clause
	for _, filename := range filenames {
		f, err := os.Open(filename)
		if err != nil {
			return nil, err
		}
		cs, err := logic.DecodeClauses(f)
		f.Close()
		if err != nil {
			return nil, errors.New("%s: %v", filename, err)
		}
		clauses = append(clauses, cs...)
	}
	return clauses, nil
}

func writeClauses(w io.Writer, format string, clauses []*wam.Clause) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(clauses)
	}
	for _, clause := range clauses {
		if _, err := fmt.Fprint(w, clause); err != nil {
			return err
		}
	}
	return nil
}
