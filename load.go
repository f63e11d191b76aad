package logsum

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
)

// Load reads the named log file and returns its lines. If the file can't be
// read, Load writes a one-line diagnostic to w and returns no lines, exactly
// as it would for an empty file.
func Load(path string, w io.Writer) Lines {
	lines, err := File(path).Lines()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			fmt.Fprintf(w, "[!] File not found: %s\n", path)
		} else {
			fmt.Fprintf(w, "[!] Error reading file: %v\n", err)
		}
		return nil
	}
	return lines
}
