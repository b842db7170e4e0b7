// Command open64 writes "test" at a byte offset of a file opened with
// large-file support.
//
//	open64 [options] pathname offset
package main

import (
	"flag"
	"os"

	"github.com/hnakamur/fileiotool/cmd"
)

func main() {
	fs := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	os.Exit(cmd.Run(&cmd.PositionedWriteCommand{}, fs, os.Args[1:]))
}
