// Package diag carries per-token and per-record diagnostics from the edit
// interpreter to an append-only sink.
package diag

import (
	"errors"
	"fmt"
	"sync"
)

// Diagnostic is one recoverable (or record-fatal) condition.
type Diagnostic struct {
	Locator string // record locator, e.g. "Chr1:73857 ALUY"
	Token   string // offending instruction, may be empty
	Err     error
}

func (d Diagnostic) String() string {
	msg := "unknown error"
	if d.Err != nil {
		msg = d.Err.Error()
	}
	if d.Token == "" {
		return fmt.Sprintf("loc: %s  %s", d.Locator, msg)
	}
	return fmt.Sprintf("loc: %s  %s: %s", d.Locator, msg, d.Token)
}

// Is reports whether the diagnostic wraps target.
func (d Diagnostic) Is(target error) bool { return errors.Is(d.Err, target) }

// Sink receives diagnostics. Implementations must be safe for concurrent use.
type Sink interface {
	Report(Diagnostic)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(Diagnostic)

func (f SinkFunc) Report(d Diagnostic) { f(d) }

// Discard drops everything.
var Discard Sink = SinkFunc(func(Diagnostic) {})

// Tee fans a diagnostic out to several sinks, in order. Nil sinks are skipped.
func Tee(sinks ...Sink) Sink {
	list := make([]Sink, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			list = append(list, s)
		}
	}
	return SinkFunc(func(d Diagnostic) {
		for _, s := range list {
			s.Report(d)
		}
	})
}

// Collector keeps diagnostics in memory.
type Collector struct {
	mu   sync.Mutex
	list []Diagnostic
}

func (c *Collector) Report(d Diagnostic) {
	c.mu.Lock()
	c.list = append(c.list, d)
	c.mu.Unlock()
}

// All returns a copy of the collected diagnostics in arrival order.
func (c *Collector) All() []Diagnostic {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Diagnostic(nil), c.list...)
}

func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.list)
}

// Reset drops everything collected so far.
func (c *Collector) Reset() {
	c.mu.Lock()
	c.list = nil
	c.mu.Unlock()
}
