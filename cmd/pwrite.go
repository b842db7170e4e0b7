package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/chzyer/logex"
	"github.com/hnakamur/fileiotool"
)

const pwriteCmdUsage = `Usage: %s [options] pathname offset

Open pathname with large-file support (creating it if needed), seek to
offset and write "test" there.

options:
`

// PositionedWriteCommand writes fileiotool.Payload at Offset in Path.
type PositionedWriteCommand struct {
	stdio

	Path    string
	Offset  int64
	Perm    os.FileMode
	Strict  bool
	Lock    bool
	Verbose bool
}

func (c *PositionedWriteCommand) Parse(fs *flag.FlagSet, args []string) error {
	fs.SetOutput(c.stderr())
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), pwriteCmdUsage, fs.Name())
		fs.PrintDefaults()
	}

	c.Perm = os.FileMode(0600)
	fs.Var(&fileModeValue{m: &c.Perm}, "perm", "permission of a created file (octal)")
	fs.BoolVar(&c.Strict, "strict", false, "exit without writing when arguments are wrong")
	fs.BoolVar(&c.Lock, "lock", false, "hold an exclusive advisory lock on pathname while writing")
	fs.BoolVar(&c.Verbose, "v", false, "trace calls to stderr")
	args, parsed, err := parseFlags(fs, args, &c.Strict)
	if err != nil {
		return err
	}
	if !parsed {
		c.Perm, c.Lock, c.Verbose = os.FileMode(0600), false, false
	}

	if len(args) != 2 || args[0] == helpArg {
		if c.Strict {
			fs.Usage()
			return ErrUsage
		}
		// Keep going like the classic program does.
		fmt.Fprintf(c.stdout(), "%s pathname offset\n", fs.Name())
	}
	c.Path = argAt(args, 0)
	c.Offset = parseOffset(argAt(args, 1))
	return nil
}

func (c *PositionedWriteCommand) Execute() error {
	if c.Verbose {
		logex.Struct(c.Path, c.Offset, c.Perm, c.Lock)
	}

	file, err := fileiotool.OpenLarge(c.Path, os.O_RDWR|os.O_CREATE, c.Perm)
	if err != nil {
		return err
	}
	defer file.Close()

	if c.Lock {
		unlock, err := lockPath(c.Path, true)
		if err != nil {
			return err
		}
		defer unlock()
	}

	if err := fileiotool.SeekStart(file, c.Offset); err != nil {
		return err
	}

	n, err := fileiotool.WritePayload(file, fileiotool.Payload)
	if err != nil {
		// A failed write is reported but does not change the exit status.
		fmt.Fprintln(c.stderr(), err)
		return nil
	}
	if c.Verbose {
		logex.Info(fmt.Sprintf("wrote %d bytes at offset %d to %s", n, c.Offset, c.Path))
	}
	return nil
}
