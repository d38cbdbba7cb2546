package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/brunokim/wamgen/logic"
	"github.com/brunokim/wamgen/wam"
)

const prompt = "wam> "

func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "compile clauses interactively.",
		Long: `Read one clause per line, in JSON term notation, and print its listing.
History is kept when stdin is a terminal.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := newLineReader(cmd.InOrStdin())
			if err != nil {
				return err
			}
			defer lines.Close()
			logger := newLogger(cmd, cmd.ErrOrStderr())
			return repl(lines, cmd.OutOrStdout(), logger)
		},
	}
}

type lineReader interface {
	// ReadLine returns the next line, or io.EOF when input is over.
	ReadLine() (string, error)
	Close() error
}

func newLineReader(in io.Reader) (lineReader, error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return newTerminalReader()
	}
	return &plainReader{bufio.NewReader(in)}, nil
}

// ---- readline

type terminalReader struct {
	rl *readline.Instance
}

func newTerminalReader() (*terminalReader, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:                 prompt,
		HistoryFile:            filepath.Join(os.TempDir(), "wamc-history"),
		DisableAutoSaveHistory: true,
	})
	if err != nil {
		return nil, err
	}
	return &terminalReader{rl}, nil
}

func (r *terminalReader) ReadLine() (string, error) {
	line, err := r.rl.Readline()
	if err == readline.ErrInterrupt {
		return "", io.EOF
	}
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(line) != "" {
		r.rl.SaveHistory(line)
	}
	return line, nil
}

func (r *terminalReader) Close() error {
	return r.rl.Close()
}

// ---- plain input

// Lines have no length limit.
type plainReader struct {
	r *bufio.Reader
}

func (r *plainReader) ReadLine() (string, error) {
	line, err := r.r.ReadString('\n')
	if err == io.EOF && line != "" {
		return line, nil
	}
	return line, err
}

func (r *plainReader) Close() error {
	return nil
}

// ----

func repl(lines lineReader, out io.Writer, logger log.FieldLogger) error {
	for {
		line, err := lines.ReadLine()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		clause, err := logic.DecodeClause([]byte(line))
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
			continue
		}
		c, err := wam.Compile(clause, wam.WithLogger(logger))
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
			continue
		}
		fmt.Fprint(out, c)
	}
}
