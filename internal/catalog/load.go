package catalog

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"dnafix/internal/fasta"
)

// Layout says how rows of a TSV reference are mapped to tags.
type Layout string

const (
	// LayoutOrdered assigns ALUJ, ALUS, ALUY, LINE1 to the first four rows
	// whatever their name column says.
	LayoutOrdered Layout = "ordered"
	// LayoutNamed uses the name column as the tag.
	LayoutNamed Layout = "named"
)

// Load reads a reference file. FASTA files (by extension) are keyed by record
// ID; anything else is read as TSV with the given layout.
func Load(path string, layout Layout) (*Catalog, error) {
	if fasta.IsFASTAPath(path) {
		return LoadFASTA(path)
	}
	rc, err := fasta.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	c, err := ReadTSV(rc, layout)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// LoadFASTA builds a catalog whose tags are the FASTA record IDs.
func LoadFASTA(path string) (*Catalog, error) {
	recs, err := fasta.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := &Catalog{seqs: make(map[string]string, len(recs))}
	for _, r := range recs {
		if err := c.add(r.ID, string(r.Seq)); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	if c.Len() == 0 {
		return nil, fmt.Errorf("%s: no sequences", path)
	}
	return c, nil
}

// ReadTSV parses "name<TAB>sequence" rows. Blank lines and lines starting
// with '#' are skipped; extra columns are ignored.
func ReadTSV(r io.Reader, layout Layout) (*Catalog, error) {
	switch layout {
	case LayoutOrdered, LayoutNamed:
	case "":
		layout = LayoutOrdered
	default:
		return nil, fmt.Errorf("invalid reference layout %q (want ordered | named)", layout)
	}

	c := &Catalog{seqs: map[string]string{}}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	ln, row := 0, 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		f := strings.Split(line, "\t")
		if len(f) < 2 {
			return nil, fmt.Errorf("line %d: bad field count", ln)
		}
		tag := f[0]
		if layout == LayoutOrdered {
			if row >= len(OrderedTags) {
				break
			}
			tag = OrderedTags[row]
		}
		if err := c.add(tag, f[1]); err != nil {
			return nil, fmt.Errorf("line %d: %w", ln, err)
		}
		row++
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if layout == LayoutOrdered && row < len(OrderedTags) {
		return nil, fmt.Errorf("ordered layout needs %d rows (%s), got %d",
			len(OrderedTags), strings.Join(OrderedTags, ", "), row)
	}
	if c.Len() == 0 {
		return nil, fmt.Errorf("no sequences")
	}
	return c, nil
}
