package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/ioutil"
	"os"
	"strconv"
)

type Command interface {
	Parse(fs *flag.FlagSet, args []string) error
	Execute() error
}

type fileModeValue struct {
	m *os.FileMode
}

func (v fileModeValue) String() string {
	if v.m == nil {
		return ""
	}
	return strconv.FormatUint(uint64(*v.m), 8)
}

func (v fileModeValue) Set(s string) error {
	m, err := strconv.ParseUint(s, 8, 32)
	if err != nil {
		return err
	}
	*v.m = os.FileMode(m)
	return nil
}

// ErrUsage is returned by Parse when -strict is set and the positional
// arguments do not match the command's usage.
var ErrUsage = errors.New("invalid arguments")

const helpArg = "--help"

// parseFlags parses options preceding the positional arguments and reports
// whether it did. When the first argument is --help, or the options do not
// parse and strict is false, the whole of args is returned as positional
// arguments, so a path such as -x reaches open(2) the way it does for the
// classic programs. Only strict parsing reports option errors.
func parseFlags(fs *flag.FlagSet, args []string, strict *bool) (positional []string, parsed bool, err error) {
	if len(args) > 0 && args[0] == helpArg {
		return args, false, nil
	}

	out, usage := fs.Output(), fs.Usage
	fs.SetOutput(ioutil.Discard)
	fs.Usage = func() {}
	err = fs.Parse(args)
	fs.SetOutput(out)
	fs.Usage = usage
	if err != nil {
		if !*strict {
			return args, false, nil
		}
		if err != flag.ErrHelp {
			fmt.Fprintln(out, err)
		}
		fs.Usage()
		return nil, false, err
	}
	return fs.Args(), true, nil
}

func argAt(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}
