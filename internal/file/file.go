// Package file opens input files for searching, memory-mapped through
// [mmapfile] when possible and through [os.File] otherwise (empty files,
// pipes, platforms without mmap).
package file

import (
	"io"
	"os"

	"go.dw1.io/mmapfile"
)

var (
	_ io.Reader = (*File)(nil)
	_ io.Closer = (*File)(nil)
)

// File is a read-only input file.
type File struct {
	mm *mmapfile.MmapFile
	os *os.File
}

// Open maps name into memory, falling back to os.Open if mapping fails.
func Open(name string) (*File, error) {
	if mf, err := mmapfile.Open(name); err == nil {
		return &File{mm: mf}, nil
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}

	return &File{os: f}, nil
}

func (f *File) Read(p []byte) (int, error) {
	if f.mm != nil {
		return f.mm.Read(p)
	}

	return f.os.Read(p)
}

// Close unmaps or closes the file.
func (f *File) Close() error {
	if f.mm != nil {
		return f.mm.Close()
	}

	return f.os.Close()
}

// Mapped reports whether the file is memory-mapped.
func (f *File) Mapped() bool {
	return f.mm != nil
}

// Content returns the whole file. A mapped file's content aliases the
// mapping and is only valid until Close.
func (f *File) Content() ([]byte, error) {
	if f.mm != nil {
		return f.mm.Bytes(), nil
	}

	return io.ReadAll(f.os)
}

// Name returns the name passed to Open.
func (f *File) Name() string {
	if f.mm != nil {
		return f.mm.Name()
	}

	return f.os.Name()
}
