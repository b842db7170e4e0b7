//go:build !linux
// +build !linux

package fileiotool

import (
	"errors"
	"io"
	"os"
)

func readv(file *os.File, iovs [][]byte) (n int, err error) {
	var n0 int
	for len(iovs) > 0 {
		n0, err = io.ReadFull(file, iovs[0])
		n += n0
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return n, nil
		}
		if err != nil {
			var perr *os.PathError
			if errors.As(err, &perr) {
				err = perr.Err
			}
			return n, wrapCallError("readv", err)
		}
		iovs = iovs[1:]
	}
	return n, nil
}
