package fileiotool

import (
	"io"
	"os"

	"golang.org/x/sys/unix"
)

// Payload is the literal written by the open64 program.
var Payload = []byte("test")

// SeekStart moves the file offset of file to off bytes from the start.
// off is passed through unchecked; the kernel rejects negative values.
func SeekStart(file *os.File, off int64) error {
	_, err := unix.Seek(int(file.Fd()), off, io.SeekStart)
	return wrapCallError("lseek", err)
}

// WritePayload issues a single write(2) of p at the current file offset.
// A short write is returned as is.
func WritePayload(file *os.File, p []byte) (n int, err error) {
	n, err = unix.Write(int(file.Fd()), p)
	if err != nil {
		return 0, wrapCallError("write", err)
	}
	return n, nil
}
