package hexbin

import (
	"bufio"
	"io"
)

// LineSource yields successive lines of text.
//
// ReadLine returns the next line, terminator included when there is one.
// The end of the input is signaled by a zero-length line or io.EOF (possibly
// together with a final unterminated line). Any other error is a read failure.
type LineSource interface {
	ReadLine() (string, error)
}

type readerSource struct {
	r *bufio.Reader
}

// NewLineSource splits r into '\n' terminated lines.
func NewLineSource(r io.Reader) LineSource {
	if br, ok := r.(*bufio.Reader); ok {
		return &readerSource{r: br}
	}
	return &readerSource{r: bufio.NewReader(r)}
}

func (s *readerSource) ReadLine() (string, error) {
	return s.r.ReadString('\n')
}
