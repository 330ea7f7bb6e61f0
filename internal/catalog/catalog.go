// Package catalog holds the baseline sequences that DIFF instructions are
// written against, keyed by variant tag.
package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Variant tags used by DIFF files.
const (
	ALUJ  = "ALUJ"
	ALUS  = "ALUS"
	ALUY  = "ALUY"
	LINE1 = "LINE1"
)

// OrderedTags is the row order of a historical Reference.tsv.
var OrderedTags = []string{ALUJ, ALUS, ALUY, LINE1}

var ErrUnknownVariant = errors.New("unknown variant tag")

// Catalog maps variant tags to upper-case baseline sequences. It is not
// modified after construction and may be shared.
type Catalog struct {
	seqs map[string]string
}

// New builds a catalog from tag → sequence. Tags and sequences are trimmed
// and upper-cased; empty tags or sequences are rejected.
func New(m map[string]string) (*Catalog, error) {
	c := &Catalog{seqs: make(map[string]string, len(m))}
	for tag, seq := range m {
		if err := c.add(tag, seq); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *Catalog) add(tag, seq string) error {
	t := strings.ToUpper(strings.TrimSpace(tag))
	s := strings.ToUpper(strings.TrimSpace(seq))
	if t == "" {
		return errors.New("catalog: empty variant tag")
	}
	if s == "" {
		return fmt.Errorf("catalog: empty sequence for %s", t)
	}
	if _, dup := c.seqs[t]; dup {
		return fmt.Errorf("catalog: duplicate variant tag %s", t)
	}
	c.seqs[t] = s
	return nil
}

// Lookup returns the baseline for tag (case-insensitive).
func (c *Catalog) Lookup(tag string) (string, error) {
	t := strings.ToUpper(strings.TrimSpace(tag))
	s, ok := c.seqs[t]
	if !ok {
		return "", fmt.Errorf("%w %q", ErrUnknownVariant, tag)
	}
	return s, nil
}

// Copy returns a fresh, caller-owned buffer holding the baseline for tag.
func (c *Catalog) Copy(tag string) ([]byte, error) {
	s, err := c.Lookup(tag)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// Tags lists the known tags, sorted.
func (c *Catalog) Tags() []string {
	out := make([]string, 0, len(c.seqs))
	for t := range c.seqs {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

func (c *Catalog) Len() int { return len(c.seqs) }
