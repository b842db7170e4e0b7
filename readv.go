package fileiotool

import (
	"errors"
	"os"
)

// ErrTooManyIovecs is returned when more iovecs are given than one readv(2)
// call accepts (sysconf _SC_UIO_MAXIOV).
var ErrTooManyIovecs = errors.New("too many iovecs")

// ScatterResult describes the outcome of one ScatterRead.
type ScatterResult struct {
	Requested int
	Read      int

	// Fill holds the number of bytes each iovec received.
	Fill []int
}

// Short reports whether fewer bytes arrived than were requested.
// Reaching end-of-file early is a short read, not an error.
func (r ScatterResult) Short() bool {
	return r.Read < r.Requested
}

// ScatterRead fills iovs in order from the current offset of file with a
// single readv(2) call. Short reads are not retried.
func ScatterRead(file *os.File, iovs [][]byte) (ScatterResult, error) {
	res := ScatterResult{Requested: iovsTotalLen(iovs)}
	n, err := readv(file, iovs)
	if err != nil {
		return res, err
	}
	res.Read = n
	res.Fill = iovsFill(iovs, n)
	return res, nil
}
