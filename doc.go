// Package fileiotool wraps the few POSIX file I/O calls used by the open64
// and readv programs in the cmd subdirectories.
//
// Open a file with large-file support and write a payload at an offset:
//
//	file, err := fileiotool.OpenLarge(path, os.O_RDWR|os.O_CREATE, 0600)
//	...
//	err = fileiotool.SeekStart(file, offset)
//	...
//	n, err := fileiotool.WritePayload(file, fileiotool.Payload)
//
// Scatter-read the head of a file into a Record:
//
//	var rec fileiotool.Record
//	res, err := fileiotool.ScatterRead(file, rec.Iovecs())
//	if res.Short() {
//		...
//	}
//
// Errors returned from this package are *CallError values naming the failed
// system call. The package does not retry short reads or writes.
package fileiotool
