package logsum

import (
	"io"
)

// Pipe is a source of log text plus an error status. Once the status is set,
// sinks reading the pipe return that error instead of reading.
type Pipe struct {
	Reader ReadAutoCloser
	err    error
}

// NewPipe returns a pipe with nothing to read and no error.
func NewPipe() *Pipe {
	return &Pipe{
		Reader: ReadAutoCloser{},
		err:    nil,
	}
}

// Close closes the pipe's reader. It is safe to call on a nil pipe, on a pipe
// with no reader, and more than once.
func (p *Pipe) Close() error {
	if p == nil {
		return nil
	}
	return p.Reader.Close()
}

// Error returns the pipe's error status, or nil if there is none.
func (p *Pipe) Error() error {
	if p == nil {
		return nil
	}
	return p.err
}

// SetError sets the pipe's error status. A non-nil error also closes the
// reader, so that a failed pipe never holds on to an open file.
func (p *Pipe) SetError(err error) {
	if p != nil {
		if err != nil {
			p.Close()
		}
		p.err = err
	}
}

// WithReader makes r the pipe's source. r is closed, if it can be, as soon as
// it has been read to the end.
func (p *Pipe) WithReader(r io.Reader) *Pipe {
	if p == nil {
		return nil
	}
	p.Reader = NewReadAutoCloser(r)
	return p
}

// WithError is SetError for use in chains: it returns the pipe.
func (p *Pipe) WithError(err error) *Pipe {
	p.SetError(err)
	return p
}
