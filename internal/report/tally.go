package report

import (
	"sync"

	"dnafix/internal/diag"
)

// Tally is a diag.Sink that counts diagnostics per class.
type Tally struct {
	mu     sync.Mutex
	counts map[Class]int
	total  int
}

func NewTally() *Tally { return &Tally{counts: map[Class]int{}} }

func (t *Tally) Report(d diag.Diagnostic) {
	c := Classify(d.Err)
	t.mu.Lock()
	t.counts[c]++
	t.total++
	t.mu.Unlock()
}

func (t *Tally) Count(c Class) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.counts[c]
}

func (t *Tally) Total() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.total
}
