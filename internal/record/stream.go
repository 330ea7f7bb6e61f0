package record

import (
	"bufio"
	"context"
	"errors"
	"io"
)

// maxLine bounds a single DIFF line; LINE1 records carry ~6 kb of sequence.
const maxLine = 16 * 1024 * 1024

// Stats summarizes one Process call.
type Stats struct {
	Lines    int // input lines read, including header and blanks
	Records  int // data records seen
	Fixed    int // records written with a FIXED column
	Rejected int // records dropped (unknown tag, bad field count)
}

// Process reads DIFF lines from r and writes fixed lines to w. Record-fatal
// errors drop that record and processing continues; read and write errors
// end the run. ctx is checked between lines.
func Process(ctx context.Context, r io.Reader, w io.Writer, f *Fixer) (Stats, error) {
	var st Stats
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return st, err
		}
		st.Lines++
		out, err := f.FixLine(sc.Text())
		switch {
		case errors.Is(err, ErrBlank):
			continue
		case err != nil:
			st.Records++
			st.Rejected++
			continue
		}
		if !IsHeader(sc.Text()) {
			st.Records++
			st.Fixed++
		}
		if _, err := io.WriteString(w, out+"\n"); err != nil {
			return st, err
		}
	}
	return st, sc.Err()
}
