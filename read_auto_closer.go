package logsum

import (
	"io"
)

// ReadAutoCloser wraps an io.ReadCloser, and closes it automatically once it
// has been completely read. Closing it more than once is harmless.
type ReadAutoCloser struct {
	r      io.ReadCloser
	closed *bool
}

// NewReadAutoCloser returns a ReadAutoCloser wrapping the supplied Reader. If
// the Reader is not a Closer, it will be wrapped in a NopCloser to make it
// closable.
func NewReadAutoCloser(r io.Reader) ReadAutoCloser {
	rc, ok := r.(io.ReadCloser)
	if !ok {
		rc = io.NopCloser(r)
	}
	return ReadAutoCloser{r: rc, closed: new(bool)}
}

// Read reads up to len(b) bytes from the data source into b. It returns the
// number of bytes read and any error encountered. At end of file, Read returns
// 0, io.EOF, and the data source is closed.
func (a ReadAutoCloser) Read(b []byte) (n int, err error) {
	if a.Closed() {
		return 0, io.EOF
	}
	n, err = a.r.Read(b)
	if err == io.EOF {
		a.Close()
	}
	return n, err
}

// Close closes the data source associated with a, and returns the result of
// that close operation. Only the first call reaches the data source.
func (a ReadAutoCloser) Close() error {
	if a.Closed() {
		return nil
	}
	*a.closed = true
	return a.r.Close()
}

// Closed reports whether the data source has been closed.
func (a ReadAutoCloser) Closed() bool {
	return a.r == nil || *a.closed
}
