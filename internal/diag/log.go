package diag

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Log writes one line per diagnostic to an io.Writer. Writes are serialized.
// A Sink cannot return an error, so the first write failure is kept and
// returned by Err; later reports are dropped.
type Log struct {
	RunID string

	mu    sync.Mutex
	w     io.Writer
	count int
	err   error
}

// NewLog returns a Log with a fresh run id.
func NewLog(w io.Writer) *Log {
	return &Log{RunID: uuid.NewString(), w: w}
}

// WriteHeader writes the run header comment line.
func (l *Log) WriteHeader(tool, version string, now time.Time) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.err != nil {
		return l.err
	}
	_, l.err = fmt.Fprintf(l.w, "# %s %s run %s %s\n", tool, version, l.RunID, now.UTC().Format(time.RFC3339))
	return l.err
}

func (l *Log) Report(d Diagnostic) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.err != nil {
		return
	}
	if _, err := io.WriteString(l.w, d.String()+"\n"); err != nil {
		l.err = err
		return
	}
	l.count++
}

// Count is the number of diagnostics written.
func (l *Log) Count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.count
}

func (l *Log) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.err
}
