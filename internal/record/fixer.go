// Package record fixes DIFF records: it resolves the baseline for a record's
// variant tag, replays the record's instructions against a private copy and
// appends the result as the FIXED column.
package record

import (
	"errors"
	"fmt"
	"strings"

	"dnafix/internal/catalog"
	"dnafix/internal/diag"
	"dnafix/internal/edit"
)

// Header is written in place of the input's #LOC header line.
const Header = "#LOC\tSVTYPE\tDIFF\tFIXED"

const headerPrefix = "#LOC"

var (
	ErrFieldCount = errors.New("record needs 3 tab-separated fields")
	// ErrBlank marks an empty input line; callers skip it.
	ErrBlank = errors.New("blank line")
)

// Fixer is safe to reuse across records. Catalog and Sink are shared; each
// call works on its own buffer.
type Fixer struct {
	Catalog *catalog.Catalog
	Sink    diag.Sink
	Options edit.Options
}

func (f *Fixer) sink() diag.Sink {
	if f.Sink == nil {
		return diag.Discard
	}
	return f.Sink
}

// Fix returns the baseline for tag with the comma-separated instructions in
// field applied. An unknown tag is the only error: it is reported and there
// is no sequence to return.
func (f *Fixer) Fix(locator, tag, field string) (string, error) {
	where := locator + " " + tag
	buf, err := f.Catalog.Copy(tag)
	if err != nil {
		f.sink().Report(diag.Diagnostic{Locator: where, Err: err})
		return "", err
	}
	ops := edit.Order(strings.Split(field, ","), where, f.sink(), f.Options)
	buf = edit.ApplyAll(ops, buf, where, f.sink(), f.Options)
	return string(buf), nil
}

// FixLine fixes one DIFF line (LOC, SVTYPE, DIFF) and returns it with the
// FIXED column appended. A #LOC line becomes Header.
func (f *Fixer) FixLine(line string) (string, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return "", ErrBlank
	}
	if IsHeader(line) {
		return Header, nil
	}
	fields := strings.Split(line, "\t")
	if len(fields) != 3 {
		err := fmt.Errorf("%w, got %d", ErrFieldCount, len(fields))
		f.sink().Report(diag.Diagnostic{Locator: fields[0], Err: err})
		return "", err
	}
	fixed, err := f.Fix(fields[0], fields[1], fields[2])
	if err != nil {
		return "", err
	}
	return line + "\t" + fixed, nil
}

// IsHeader reports whether line is the DIFF header line.
func IsHeader(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), headerPrefix)
}
