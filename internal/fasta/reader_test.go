// internal/fasta/reader_test.go
package fasta

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const plain = `>AluJ consensus
GGCCGGGCGC
ggtggc
>AluS
NNnn

>L1
ACGT
`

func writeGz(t *testing.T, name string, data string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	fh, err := os.Create(p)
	if err != nil {
		t.Fatalf("tmp: %v", err)
	}
	gw := gzip.NewWriter(fh)
	if _, err := gw.Write([]byte(data)); err != nil {
		t.Fatalf("write gz: %v", err)
	}
	gw.Close()
	fh.Close()
	return p
}

func TestRead(t *testing.T) {
	recs, err := Read(strings.NewReader(plain))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("want 3 records, got %d", len(recs))
	}
	if recs[0].ID != "AluJ" || string(recs[0].Seq) != "GGCCGGGCGCGGTGGC" {
		t.Fatalf("bad first record: %s %s", recs[0].ID, recs[0].Seq)
	}
	if string(recs[1].Seq) != "NNNN" {
		t.Fatalf("want upper-cased NNNN, got %s", recs[1].Seq)
	}
	if recs[2].ID != "L1" || string(recs[2].Seq) != "ACGT" {
		t.Fatalf("bad last record: %+v", recs[2])
	}
}

func TestReadNoTrailingNewline(t *testing.T) {
	recs, err := Read(strings.NewReader(">x\nAC\nGT"))
	if err != nil || len(recs) != 1 || string(recs[0].Seq) != "ACGT" {
		t.Fatalf("got %+v err=%v", recs, err)
	}
}

func TestReadErrors(t *testing.T) {
	if _, err := Read(strings.NewReader("ACGT\n>x\nA\n")); err == nil {
		t.Fatalf("expected error for sequence before header")
	}
	if _, err := Read(strings.NewReader(">\nA\n")); err == nil {
		t.Fatalf("expected error for empty header")
	}
}

func TestReadFileGzip(t *testing.T) {
	p := writeGz(t, "ref.fa.gz", plain)
	recs, err := ReadFile(p)
	if err != nil {
		t.Fatalf("read gz: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("gzip parse failed, got %d records", len(recs))
	}
}

func TestIsFASTAPath(t *testing.T) {
	for _, p := range []string{"ref.fa", "ref.FASTA", "x/ref.fna.gz"} {
		if !IsFASTAPath(p) {
			t.Errorf("%s should be FASTA", p)
		}
	}
	for _, p := range []string{"Reference.tsv", "ref.txt.gz", "-"} {
		if IsFASTAPath(p) {
			t.Errorf("%s should not be FASTA", p)
		}
	}
}
