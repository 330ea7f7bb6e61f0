package writers

import (
	"bufio"
	"io"
	"os"
)

// Dest is a buffered output destination. Close flushes and, for files,
// closes the file.
type Dest struct {
	*bufio.Writer
	f *os.File
}

// Create opens path for writing. "-" writes to stdout and is never closed.
// With appendMode the file is opened for append instead of truncated.
func Create(path string, stdout io.Writer, appendMode bool) (*Dest, error) {
	if path == "-" {
		return &Dest{Writer: bufio.NewWriter(stdout)}, nil
	}
	flags := os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	if appendMode {
		flags = os.O_CREATE | os.O_WRONLY | os.O_APPEND
	}
	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return nil, err
	}
	return &Dest{Writer: bufio.NewWriter(f), f: f}, nil
}

func (d *Dest) Close() error {
	err := d.Flush()
	if d.f != nil {
		if cerr := d.f.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
