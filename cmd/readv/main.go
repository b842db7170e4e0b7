// Command readv reads the head of a file into three buffers with one
// scatter read and reports how many bytes arrived.
//
//	readv [options] file
package main

import (
	"flag"
	"os"

	"github.com/hnakamur/fileiotool/cmd"
)

func main() {
	fs := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	os.Exit(cmd.Run(&cmd.ScatterReadCommand{}, fs, os.Args[1:]))
}
