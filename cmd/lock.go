package cmd

import (
	"github.com/gofrs/flock"
	"github.com/hnakamur/fileiotool"
)

// lockPath takes an advisory flock(2) on path, exclusive or shared, and
// returns the function releasing it. The lock only coordinates processes
// that also pass -lock.
func lockPath(path string, exclusive bool) (unlock func() error, err error) {
	fl := flock.New(path)
	if exclusive {
		err = fl.Lock()
	} else {
		err = fl.RLock()
	}
	if err != nil {
		return nil, &fileiotool.CallError{Op: "flock", Err: err}
	}
	return fl.Unlock, nil
}
