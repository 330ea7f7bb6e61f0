// internal/fasta/reader.go
package fasta

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
)

// Record is one FASTA entry. Seq is upper-cased with line breaks removed.
type Record struct {
	ID  string
	Seq []byte
}

// Read parses every record from r. Sequence lines before the first header
// are an error; a header with no ID is an error.
func Read(r io.Reader) ([]Record, error) {
	br := bufio.NewReader(r)
	var (
		out []Record
		cur = -1
		ln  int
	)
	for {
		line, err := br.ReadBytes('\n')
		eof := err == io.EOF
		if err != nil && !eof {
			return nil, err
		}
		ln++
		line = bytes.TrimRight(line, "\r\n")
		if eof && len(line) == 0 {
			break
		}
		switch {
		case len(line) > 0 && line[0] == '>':
			f := strings.Fields(string(line[1:]))
			if len(f) == 0 {
				return nil, fmt.Errorf("fasta:%d empty header", ln)
			}
			out = append(out, Record{ID: f[0]})
			cur = len(out) - 1
		case len(bytes.TrimSpace(line)) == 0:
		case cur < 0:
			return nil, fmt.Errorf("fasta:%d sequence before first header", ln)
		default:
			out[cur].Seq = append(out[cur].Seq, bytes.ToUpper(bytes.TrimSpace(line))...)
		}
		if eof {
			break
		}
	}
	return out, nil
}

// ReadFile opens path with Open and reads all records.
func ReadFile(path string) ([]Record, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	recs, err := Read(rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return recs, nil
}
