package main

import (
	"io"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Get an expected bool flag.
func getFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		// Flags are registered along with the commands that read them.
		panic(err)
	}
	return r
}

// Get an expected string flag.
func getString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		panic(err)
	}
	return r
}

// Creates the logger handed to the compiler, writing to w.
func newLogger(cmd *cobra.Command, w io.Writer) *log.Logger {
	logger := log.New()
	logger.SetOutput(w)
	if getFlag(cmd, "verbose") {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}
