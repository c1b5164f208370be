package io

import (
	"bufio"
	"io"
)

// FileReader consumes bytes sequentially from a pre-opened stream. Once
// the stream runs dry every further Poll reports ErrExhausted.
type FileReader struct {
	in *bufio.Reader
}

var _ Reader = (*FileReader)(nil)

// NewFileReader creates a file-backed keyboard source from r.
func NewFileReader(r io.Reader) *FileReader {
	return &FileReader{
		in: bufio.NewReader(r),
	}
}

// Poll returns the next byte of the stream.
func (fr *FileReader) Poll() (value byte, ok bool, err error) {
	value, err = fr.in.ReadByte()
	if err != nil {
		value = 0
		err = ErrExhausted
		return
	}
	ok = true

	return
}

// FileWriter appends display bytes to a pre-opened output stream
// unchanged.
type FileWriter struct {
	Output io.Writer
}

var _ Writer = (*FileWriter)(nil)

func (fw *FileWriter) Write(p []byte) (n int, err error) {
	return fw.Output.Write(p)
}
