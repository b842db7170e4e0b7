package fileiotool

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
	"unsafe"

	"github.com/google/go-cmp/cmp"
	"pgregory.net/rapid"
)

func seqBytes(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i%251 + 1)
	}
	return b
}

func scatterReadFile(path string, rec *Record) (ScatterResult, error) {
	file, err := OpenReadOnly(path)
	if err != nil {
		return ScatterResult{}, err
	}
	defer file.Close()
	return ScatterRead(file, rec.Iovecs())
}

func TestRecordIovecs(t *testing.T) {
	var rec Record
	iovs := rec.Iovecs()
	if got, want := len(iovs), len(RegionNames); got != want {
		t.Fatalf("iovec count mismatch, got=%d, want=%d", got, want)
	}
	if got, want := iovsTotalLen(iovs), RecordSize; got != want {
		t.Errorf("total length mismatch, got=%d, want=%d", got, want)
	}
	if got, want := RecordSize, int(unsafe.Sizeof(rec.Stat))+4+100; got != want {
		t.Errorf("RecordSize mismatch, got=%d, want=%d", got, want)
	}
	if &iovs[2][0] != &rec.Str[0] {
		t.Errorf("str iovec does not alias Record.Str")
	}
}

func TestScatterReadFull(t *testing.T) {
	path := filepath.Join(t.TempDir(), "full")
	data := seqBytes(RecordSize + 17)
	if err := os.WriteFile(path, data, 0600); err != nil {
		t.Fatal(err)
	}

	var rec Record
	res, err := scatterReadFile(path, &rec)
	if err != nil {
		t.Fatal(err)
	}
	want := ScatterResult{
		Requested: RecordSize,
		Read:      RecordSize,
		Fill:      []int{StatSize, IntSize, StrSize},
	}
	if diff := cmp.Diff(want, res); diff != "" {
		t.Errorf("result mismatch (-want +got):\n%s", diff)
	}
	if res.Short() {
		t.Errorf("Short() = true, want false")
	}

	statBytes := unsafe.Slice((*byte)(unsafe.Pointer(&rec.Stat)), StatSize)
	if !bytes.Equal(statBytes, data[:StatSize]) {
		t.Errorf("stat region does not hold the first %d bytes", StatSize)
	}
	wantInt := int32(binary.LittleEndian.Uint32(data[StatSize:]))
	if isBigEndian() {
		wantInt = int32(binary.BigEndian.Uint32(data[StatSize:]))
	}
	if got := rec.Int; got != wantInt {
		t.Errorf("int region mismatch, got=%d, want=%d", got, wantInt)
	}
	if diff := cmp.Diff(data[StatSize+IntSize:RecordSize], rec.Str[:]); diff != "" {
		t.Errorf("str region mismatch (-want +got):\n%s", diff)
	}
}

func isBigEndian() bool {
	x := uint16(1)
	return *(*byte)(unsafe.Pointer(&x)) == 0
}

func TestScatterReadShort(t *testing.T) {
	dir := t.TempDir()
	testCases := []struct {
		name string
		size int
		fill []int
	}{
		{name: "empty", size: 0, fill: []int{0, 0, 0}},
		{name: "insideStat", size: StatSize - 1, fill: []int{StatSize - 1, 0, 0}},
		{name: "insideInt", size: StatSize + 2, fill: []int{StatSize, 2, 0}},
		{name: "oneByteShort", size: RecordSize - 1, fill: []int{StatSize, IntSize, StrSize - 1}},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, tc.name)
			if err := os.WriteFile(path, seqBytes(tc.size), 0600); err != nil {
				t.Fatal(err)
			}
			var rec Record
			res, err := scatterReadFile(path, &rec)
			if err != nil {
				t.Fatal(err)
			}
			want := ScatterResult{Requested: RecordSize, Read: tc.size, Fill: tc.fill}
			if diff := cmp.Diff(want, res); diff != "" {
				t.Errorf("result mismatch (-want +got):\n%s", diff)
			}
			if !res.Short() {
				t.Errorf("Short() = false, want true")
			}
		})
	}
}

func TestScatterReadProperty(t *testing.T) {
	dir := t.TempDir()
	rapid.Check(t, func(t *rapid.T) {
		data := rapid.SliceOfN(rapid.Uint8(), 0, 2*RecordSize).Draw(t, "data").([]uint8)

		f, err := os.CreateTemp(dir, "prop")
		if err != nil {
			t.Fatal(err)
		}
		path := f.Name()
		defer os.Remove(path)
		_, err = f.Write(data)
		f.Close()
		if err != nil {
			t.Fatal(err)
		}

		var rec Record
		res, err := scatterReadFile(path, &rec)
		if err != nil {
			t.Fatal(err)
		}
		if got, want := res.Requested, RecordSize; got != want {
			t.Errorf("requested mismatch, got=%d, want=%d", got, want)
		}
		if got, want := res.Short(), len(data) < RecordSize; got != want {
			t.Errorf("Short() mismatch for length %d, got=%v, want=%v", len(data), got, want)
		}

		n := len(data)
		if n > RecordSize {
			n = RecordSize
		}
		if got := res.Read; got != n {
			t.Errorf("read mismatch, got=%d, want=%d", got, n)
		}
		var sum int
		for _, fill := range res.Fill {
			sum += fill
		}
		if sum != res.Read {
			t.Errorf("fill sum mismatch, got=%d, want=%d", sum, res.Read)
		}

		var got []byte
		for i, iov := range rec.Iovecs() {
			got = append(got, iov[:res.Fill[i]]...)
		}
		if !bytes.Equal(got, data[:n]) {
			t.Errorf("regions do not hold the file head in order")
		}
	})
}

func TestScatterReadDirectory(t *testing.T) {
	var rec Record
	_, err := scatterReadFile(t.TempDir(), &rec)
	cerr := AsCallError(err)
	if cerr == nil {
		t.Fatalf("got=%v, want *CallError", err)
	}
	if got, want := cerr.Op, "readv"; got != want {
		t.Errorf("op mismatch, got=%s, want=%s", got, want)
	}
}

func TestOpenReadOnlyNotExist(t *testing.T) {
	_, err := OpenReadOnly(filepath.Join(t.TempDir(), "missing"))
	if cerr := AsCallError(err); cerr == nil || cerr.Op != "open" {
		t.Fatalf("got=%v, want open error", err)
	}
	if !os.IsNotExist(AsCallError(err).Err) {
		t.Errorf("got=%v, want not-exist error", err)
	}
}
