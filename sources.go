package logsum

import (
	"os"
)

// File returns a pipe reading the named file. If the file can't be opened,
// the pipe's error status is set instead.
func File(name string) *Pipe {
	p := NewPipe()
	f, err := os.Open(name)
	if err != nil {
		return p.WithError(err)
	}
	return p.WithReader(f)
}
