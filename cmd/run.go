package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
)

// Exit codes returned by Run.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// Run parses args into c, executes it and returns the process exit code.
// Fatal errors are printed to the flag set's output.
func Run(c Command, fs *flag.FlagSet, args []string) int {
	err := c.Parse(fs, args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitOK
		}
		return ExitUsage
	}

	if err := c.Execute(); err != nil {
		fmt.Fprintln(fs.Output(), err)
		return ExitFailure
	}
	return ExitOK
}

type stdio struct {
	Stdout io.Writer
	Stderr io.Writer
}

func (s *stdio) stdout() io.Writer {
	if s.Stdout == nil {
		return os.Stdout
	}
	return s.Stdout
}

func (s *stdio) stderr() io.Writer {
	if s.Stderr == nil {
		return os.Stderr
	}
	return s.Stderr
}
