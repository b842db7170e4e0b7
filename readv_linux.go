package fileiotool

import (
	"os"

	"github.com/tklauser/go-sysconf"
	"golang.org/x/sys/unix"
)

func readv(file *os.File, iovs [][]byte) (n int, err error) {
	max, err := sysconf.Sysconf(sysconf.SC_UIO_MAXIOV)
	if err != nil {
		return 0, wrapCallError("sysconf", err)
	}
	if int64(len(iovs)) > max {
		return 0, wrapCallError("readv", ErrTooManyIovecs)
	}

	n, err = unix.Readv(int(file.Fd()), iovs)
	if err != nil {
		return 0, wrapCallError("readv", err)
	}
	return n, nil
}
