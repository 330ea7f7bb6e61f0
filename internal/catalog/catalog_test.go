package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const refTSV = "AluJb\tggccgggcgc\nAluSx\tGGCCAGG\n\n# comment\nAluY\tGGCCGGG\nL1HS\tGGGGGAGGAG\textra\n"

func TestReadTSVOrdered(t *testing.T) {
	c, err := ReadTSV(strings.NewReader(refTSV), LayoutOrdered)
	require.NoError(t, err)
	assert.Equal(t, []string{ALUJ, ALUS, ALUY, LINE1}, c.Tags())

	s, err := c.Lookup("aluj")
	require.NoError(t, err)
	assert.Equal(t, "GGCCGGGCGC", s)

	s, err = c.Lookup("LINE1")
	require.NoError(t, err)
	assert.Equal(t, "GGGGGAGGAG", s)
}

func TestReadTSVNamed(t *testing.T) {
	c, err := ReadTSV(strings.NewReader("aluy\tACGT\nfoo\tTT\n"), LayoutNamed)
	require.NoError(t, err)
	assert.Equal(t, []string{"ALUY", "FOO"}, c.Tags())
}

func TestReadTSVErrors(t *testing.T) {
	_, err := ReadTSV(strings.NewReader("AluJ\tACGT\n"), LayoutOrdered)
	assert.ErrorContains(t, err, "ordered layout needs 4 rows")

	_, err = ReadTSV(strings.NewReader("onlyname\n"), LayoutNamed)
	assert.ErrorContains(t, err, "bad field count")

	_, err = ReadTSV(strings.NewReader("a\tAC\nA\tGT\n"), LayoutNamed)
	assert.ErrorContains(t, err, "duplicate")

	_, err = ReadTSV(strings.NewReader(""), LayoutNamed)
	assert.Error(t, err)

	_, err = ReadTSV(strings.NewReader(refTSV), Layout("columns"))
	assert.ErrorContains(t, err, "invalid reference layout")
}

func TestLookupUnknown(t *testing.T) {
	c, err := New(map[string]string{"AluY": "acgt"})
	require.NoError(t, err)
	_, err = c.Lookup("ALU")
	assert.ErrorIs(t, err, ErrUnknownVariant)
}

func TestCopyIsIndependent(t *testing.T) {
	c, err := New(map[string]string{ALUS: "ACGT"})
	require.NoError(t, err)
	b, err := c.Copy("alus")
	require.NoError(t, err)
	b[0] = 'N'
	s, _ := c.Lookup(ALUS)
	assert.Equal(t, "ACGT", s)
}

func TestLoadDispatch(t *testing.T) {
	dir := t.TempDir()
	tsv := filepath.Join(dir, "Reference.tsv")
	fa := filepath.Join(dir, "ref.fa")
	require.NoError(t, os.WriteFile(tsv, []byte(refTSV), 0o644))
	require.NoError(t, os.WriteFile(fa, []byte(">ALUY desc\nacgt\n>LINE1\nTTTT\n"), 0o644))

	c, err := Load(tsv, LayoutOrdered)
	require.NoError(t, err)
	assert.Equal(t, 4, c.Len())

	c, err = Load(fa, LayoutOrdered)
	require.NoError(t, err)
	assert.Equal(t, []string{ALUY, LINE1}, c.Tags())
	s, _ := c.Lookup(ALUY)
	assert.Equal(t, "ACGT", s)

	_, err = Load(filepath.Join(dir, "missing.tsv"), LayoutOrdered)
	assert.Error(t, err)
}
