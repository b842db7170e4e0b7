package cmd

import (
	"flag"
	"fmt"
	"io"

	"github.com/chzyer/logex"
	"github.com/hnakamur/fileiotool"
)

const readvCmdUsage = `Usage: %s [options] file

Read the head of file into a stat record, an int and a 100 byte buffer
with a single readv call.

options:
`

// ScatterReadCommand reads the head of Path into a fileiotool.Record.
type ScatterReadCommand struct {
	stdio

	Path    string
	TextOut string
	Strict  bool
	Lock    bool
	Verbose bool

	// Record receives the bytes read by Execute.
	Record fileiotool.Record
	// Result is the outcome of the last Execute.
	Result fileiotool.ScatterResult
}

func (c *ScatterReadCommand) Parse(fs *flag.FlagSet, args []string) error {
	fs.SetOutput(c.stderr())
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), readvCmdUsage, fs.Name())
		fs.PrintDefaults()
	}

	fs.StringVar(&c.TextOut, "text-out", "", "hex dump of the regions. empty means no output, - means stdout, other means output file.")
	fs.BoolVar(&c.Strict, "strict", false, "exit without reading when arguments are wrong")
	fs.BoolVar(&c.Lock, "lock", false, "hold a shared advisory lock on file while reading")
	fs.BoolVar(&c.Verbose, "v", false, "trace calls to stderr")
	args, parsed, err := parseFlags(fs, args, &c.Strict)
	if err != nil {
		return err
	}
	if !parsed {
		c.TextOut, c.Lock, c.Verbose = "", false, false
	}

	if len(args) != 1 || args[0] == helpArg {
		if c.Strict {
			fs.Usage()
			return ErrUsage
		}
		fmt.Fprintf(c.stdout(), "%s file \n", fs.Name())
	}
	c.Path = argAt(args, 0)
	return nil
}

func (c *ScatterReadCommand) Execute() error {
	file, err := fileiotool.OpenReadOnly(c.Path)
	if err != nil {
		return err
	}
	defer file.Close()

	if c.Lock {
		unlock, err := lockPath(c.Path, false)
		if err != nil {
			return err
		}
		defer unlock()
	}

	iovs := c.Record.Iovecs()
	c.Result, err = fileiotool.ScatterRead(file, iovs)
	if err != nil {
		return err
	}

	out := c.stdout()
	if c.Result.Short() {
		fmt.Fprintln(out, "Read fewer bytes than requested")
	}
	fmt.Fprintf(out, "total byte requested: %d; byte read: %d \n", c.Result.Requested, c.Result.Read)

	if c.Verbose {
		for i, name := range fileiotool.RegionNames {
			logex.Info(fmt.Sprintf("%s: %d/%d bytes", name, c.Result.Fill[i], len(iovs[i])))
		}
	}

	return withTextOutWriter(c.TextOut, out, func(w io.Writer) error {
		return dumpRegions(w, iovs, c.Result.Fill)
	})
}
