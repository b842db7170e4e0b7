//go:build !linux
// +build !linux

package fileiotool

import (
	"errors"
	"os"
)

const oLargefile = 0

func openFile(path string, flag int, perm os.FileMode) (*os.File, error) {
	file, err := os.OpenFile(path, flag, perm)
	if err != nil {
		var perr *os.PathError
		if errors.As(err, &perr) {
			return nil, perr.Err
		}
		return nil, err
	}
	return file, nil
}
