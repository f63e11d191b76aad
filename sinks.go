package logsum

import (
	"io"
	"strings"
)

// String returns the contents of the pipe as a string, or an error, and closes
// the pipe after reading. Bytes that are not valid UTF-8 are dropped. If there
// is an error reading, the pipe's error status is also set.
func (p *Pipe) String() (string, error) {
	if p.Error() != nil {
		return "", p.Error()
	}
	defer p.Close()
	res, err := io.ReadAll(p.Reader)
	if err != nil {
		p.SetError(err)
		return "", err
	}
	return strings.ToValidUTF8(string(res), ""), nil
}

// Lines reads the whole pipe and returns its contents split into lines, each
// keeping its "\n" terminator. Carriage returns, alone or before a newline, are
// translated to "\n" first. The pipe is closed after reading. If the pipe has
// error status, Lines returns nil plus the existing error.
func (p *Pipe) Lines() (Lines, error) {
	s, err := p.String()
	if err != nil {
		return nil, err
	}
	return SplitLines(s), nil
}
