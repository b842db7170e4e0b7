package cmd

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"io/ioutil"
	"os"

	"github.com/hnakamur/fileiotool"
)

func nopFinish() error { return nil }

func withTextOutWriter(textOut string, stdout io.Writer, f func(io.Writer) error) (err error) {
	tow, finish, err := newTextOutWriter(textOut, stdout)
	if err != nil {
		return err
	}
	defer func() {
		if err2 := finish(); err2 != nil && err == nil {
			err = err2
		}
	}()
	return f(tow)
}

func newTextOutWriter(textOut string, stdout io.Writer) (w io.Writer, finish func() error, err error) {
	if textOut == "" {
		return ioutil.Discard, nopFinish, nil
	}
	if textOut == "-" {
		return stdout, nopFinish, nil
	}

	file, err := os.OpenFile(textOut, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return nil, nopFinish, fmt.Errorf("cannot open file for -text-out: %s", err)
	}

	bw := bufio.NewWriter(file)
	finish = func() error {
		if err := bw.Flush(); err != nil {
			return fmt.Errorf("cannot flush buffer to file for -text-out: %s", err)
		}
		if err := file.Close(); err != nil {
			return fmt.Errorf("cannot close file for -text-out: %s", err)
		}
		return nil
	}
	return bw, finish, nil
}

// dumpRegions writes the bytes each region received as a hex dump.
func dumpRegions(w io.Writer, iovs [][]byte, fill []int) error {
	for i, iov := range iovs {
		if _, err := fmt.Fprintf(w, "%s (%d/%d bytes):\n%s",
			fileiotool.RegionNames[i], fill[i], len(iov), hex.Dump(iov[:fill[i]])); err != nil {
			return err
		}
	}
	return nil
}
