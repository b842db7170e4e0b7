package fileiotool

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// Region sizes of a Record, in the order they are filled.
const (
	StatSize   = int(unsafe.Sizeof(unix.Stat_t{}))
	IntSize    = int(unsafe.Sizeof(int32(0)))
	StrSize    = 100
	RecordSize = StatSize + IntSize + StrSize
)

// RegionNames labels the iovecs returned by Record.Iovecs.
var RegionNames = [...]string{"stat", "int", "str"}

// Record is the fixed layout the readv program interprets the head of any
// file as. The file carries no schema; its bytes are copied verbatim into
// the memory of each field.
type Record struct {
	Stat unix.Stat_t
	Int  int32 // C int
	Str  [StrSize]byte
}

// Iovecs returns three byte slices aliasing r.Stat, r.Int and r.Str.
// Reading into them writes the fields directly.
func (r *Record) Iovecs() [][]byte {
	return [][]byte{
		unsafe.Slice((*byte)(unsafe.Pointer(&r.Stat)), StatSize),
		unsafe.Slice((*byte)(unsafe.Pointer(&r.Int)), IntSize),
		r.Str[:],
	}
}
