package cmdutil

import (
	"bytes"
	"testing"
)

func TestWarnf(t *testing.T) {
	var b bytes.Buffer
	Warnf(&b, false, "%d diagnostics in %s", 3, "log.txt")
	if got, want := b.String(), "WARN: 3 diagnostics in log.txt\n"; got != want {
		t.Fatalf("got %q want %q", got, want)
	}
	b.Reset()
	Warnf(&b, true, "hidden")
	if b.Len() != 0 {
		t.Fatalf("quiet must suppress, got %q", b.String())
	}
}

func TestErrorf(t *testing.T) {
	var b bytes.Buffer
	Errorf(&b, "open %s: no such file", "Reference.tsv")
	if got, want := b.String(), "error: open Reference.tsv: no such file\n"; got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}
