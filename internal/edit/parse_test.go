package edit

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dnafix/internal/diag"
)

func TestParseTokenKinds(t *testing.T) {
	cases := []struct {
		in   string
		want Op
	}{
		{"NoDifference", Skip{Raw: "NoDifference"}},
		{" NoDifference ", Skip{Raw: "NoDifference"}},
		{"d3", DeleteOne{Raw: "d3", Pos: 2}},
		{"d134-282", DeleteRange{Raw: "d134-282", From: 133, To: 281}},
		{"d9-4", DeleteRange{Raw: "d9-4", From: 8, To: 3}},
		{"n7", MaskOne{Raw: "n7", Pos: 6}},
		{"n10-12", MaskRange{Raw: "n10-12", From: 9, To: 11}},
		{"i252gcagtcc", Insert{Raw: "i252gcagtcc", Pos: 251, Bases: "GCAGTCC"}},
		{"i3n", Insert{Raw: "i3n", Pos: 2, Bases: "N"}},
		{"c174g", Substitute{Raw: "c174g", Pos: 173, Expected: 'C', New: "G"}},
		{"t1a", Substitute{Raw: "t1a", Pos: 0, Expected: 'T', New: "A"}},
		{"a5n", Substitute{Raw: "a5n", Pos: 4, Expected: 'A', New: "N"}},
	}
	for _, c := range cases {
		got, err := ParseToken(c.in)
		require.NoError(t, err, c.in)
		assert.Equal(t, c.want, got, c.in)
	}
}

func TestParseTokenFailures(t *testing.T) {
	cases := []struct {
		in   string
		want error
	}{
		{"", ErrEmpty},
		{"   ", ErrEmpty},
		{"d", ErrMalformed},
		{"d1x", ErrMalformed},
		{"d1-", ErrMalformed},
		{"d-3", ErrMalformed},
		{"n", ErrMalformed},
		{"n12a", ErrMalformed},
		{"n1-2-3", ErrMalformed},
		{"i12", ErrMalformed},
		{"igca", ErrMalformed},
		{"i4GCA", ErrMalformed},
		{"i4gxa", ErrInvalidBase},
		{"c12", ErrMalformed},
		{"c12gg", ErrMalformed},
		{"c12x", ErrInvalidBase},
		{"x12a", ErrMalformed},
		{"N12", ErrMalformed},
		{"99", ErrMalformed},
		{"d99999999999999999999", ErrMalformed},
	}
	for _, c := range cases {
		op, err := ParseToken(c.in)
		assert.Nil(t, op, c.in)
		assert.Truef(t, errors.Is(err, c.want), "%q: want %v, got %v", c.in, c.want, err)
	}
}

func TestParseReportsOnce(t *testing.T) {
	var sink diag.Collector
	op, ok := Parse(" q12 ", "Chr1:10 ALUY", &sink)
	assert.False(t, ok)
	assert.Nil(t, op)
	got := sink.All()
	require.Len(t, got, 1)
	assert.Equal(t, "Chr1:10 ALUY", got[0].Locator)
	assert.Equal(t, "q12", got[0].Token)
	assert.ErrorIs(t, got[0].Err, ErrMalformed)
	assert.Equal(t, "loc: Chr1:10 ALUY  invalid instruction: q12", got[0].String())

	sink.Reset()
	_, ok = Parse("c12g", "Chr1:10 ALUY", &sink)
	assert.True(t, ok)
	assert.Zero(t, sink.Len())
}

func TestParseIsIdempotent(t *testing.T) {
	for _, tok := range []string{"c174g", "d134-282", "i252gcagtcc", "n4", "n4-9", "d1", "NoDifference"} {
		a, errA := ParseToken(tok)
		b, errB := ParseToken(tok)
		require.NoError(t, errA)
		require.NoError(t, errB)
		assert.Equal(t, a, b, tok)
	}
}

func TestAnchor(t *testing.T) {
	p, ok := Anchor(DeleteRange{From: 4, To: 9})
	assert.True(t, ok)
	assert.Equal(t, 4, p)

	_, ok = Anchor(Skip{})
	assert.False(t, ok)
}
