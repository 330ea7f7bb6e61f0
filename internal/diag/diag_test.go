package diag

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBad = errors.New("invalid instruction")

func TestDiagnosticString(t *testing.T) {
	d := Diagnostic{Locator: "Chr1:73857 ALUY", Token: "x12", Err: errBad}
	assert.Equal(t, "loc: Chr1:73857 ALUY  invalid instruction: x12", d.String())

	d.Token = ""
	assert.Equal(t, "loc: Chr1:73857 ALUY  invalid instruction", d.String())

	d.Err = fmt.Errorf("%w: bad insert", errBad)
	assert.True(t, d.Is(errBad))
}

func TestLog(t *testing.T) {
	var b bytes.Buffer
	l := NewLog(&b)
	require.NotEmpty(t, l.RunID)
	now := time.Date(2017, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, l.WriteHeader("dnafix", "v1.0.0", now))
	l.Report(Diagnostic{Locator: "a", Token: "t1", Err: errBad})
	l.Report(Diagnostic{Locator: "b", Err: errBad})

	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "# dnafix v1.0.0 run "+l.RunID+" 2017-03-01T12:00:00Z", lines[0])
	assert.Equal(t, "loc: a  invalid instruction: t1", lines[1])
	assert.Equal(t, 2, l.Count())
	assert.NoError(t, l.Err())
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) { return 0, errors.New("no space") }

func TestLogKeepsFirstError(t *testing.T) {
	l := NewLog(brokenWriter{})
	l.Report(Diagnostic{Locator: "a", Err: errBad})
	l.Report(Diagnostic{Locator: "b", Err: errBad})
	assert.EqualError(t, l.Err(), "no space")
	assert.Zero(t, l.Count())
}

func TestTee(t *testing.T) {
	var a, b Collector
	var n int
	s := Tee(&a, nil, &b, SinkFunc(func(Diagnostic) { n++ }))
	s.Report(Diagnostic{Locator: "x", Err: errBad})
	assert.Equal(t, 1, a.Len())
	assert.Equal(t, 1, b.Len())
	assert.Equal(t, 1, n)

	Discard.Report(Diagnostic{})
}
