package catalog

import (
	"bufio"
	"errors"
	"io"
)

// lineReader splits input into lines. Unlike bufio.Scanner it can report a
// line longer than maxLineSize and carry on with the next one.
type lineReader struct {
	r   *bufio.Reader
	buf []byte
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{r: bufio.NewReaderSize(r, 64*1024)}
}

// next returns the following line including its terminator. It returns
// errLineTooLong after consuming an oversized line, and io.EOF once the input
// is exhausted.
func (lr *lineReader) next() (string, error) {
	lr.buf = lr.buf[:0]
	tooLong := false
	for {
		chunk, err := lr.r.ReadSlice('\n')
		if !tooLong {
			if len(lr.buf)+len(chunk) > maxLineSize {
				tooLong = true
				lr.buf = lr.buf[:0]
			} else {
				lr.buf = append(lr.buf, chunk...)
			}
		}

		switch {
		case errors.Is(err, bufio.ErrBufferFull):
			continue
		case err != nil && !errors.Is(err, io.EOF):
			return "", err
		case err != nil && len(lr.buf) == 0 && !tooLong:
			return "", io.EOF
		}
		if tooLong {
			return "", errLineTooLong
		}
		return string(lr.buf), nil
	}
}
