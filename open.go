package fileiotool

import "os"

// OpenLarge opens path with large-file support, so offsets beyond 2GiB
// work on 32-bit platforms too. Failures are reported as open64 errors.
func OpenLarge(path string, flag int, perm os.FileMode) (*os.File, error) {
	file, err := openFile(path, flag|oLargefile, perm)
	if err != nil {
		return nil, wrapCallError("open64", err)
	}
	return file, nil
}

// OpenReadOnly opens path for reading. Failures are reported as open errors.
func OpenReadOnly(path string) (*os.File, error) {
	file, err := openFile(path, os.O_RDONLY, 0)
	if err != nil {
		return nil, wrapCallError("open", err)
	}
	return file, nil
}
