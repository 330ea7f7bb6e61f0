package edit

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"dnafix/internal/diag"
)

// NoDifference marks a record whose element matches the baseline.
const NoDifference = "NoDifference"

var (
	reDeleteOne   = regexp.MustCompile(`^d(\d+)$`)
	reDeleteRange = regexp.MustCompile(`^d(\d+)-(\d+)$`)
	reMaskOne     = regexp.MustCompile(`^n(\d+)$`)
	reMaskRange   = regexp.MustCompile(`^n(\d+)-(\d+)$`)
	reInsert      = regexp.MustCompile(`^i(\d+)([a-z]+)$`)
	reSubstitute  = regexp.MustCompile(`^([acgt])(\d+)([a-z])$`)
)

// Parse classifies one token. On failure it reports exactly one diagnostic
// for locator and returns ok=false.
func Parse(token, locator string, sink diag.Sink) (Op, bool) {
	op, err := ParseToken(token)
	if err != nil {
		sink.Report(diag.Diagnostic{Locator: locator, Token: strings.TrimSpace(token), Err: err})
		return nil, false
	}
	return op, true
}

// ParseToken classifies one token without reporting. Positions in the
// instruction language are 1-based; the returned Op is 0-based.
func ParseToken(token string) (Op, error) {
	t := strings.TrimSpace(token)
	switch {
	case strings.Contains(t, NoDifference):
		return Skip{Raw: t}, nil
	case t == "":
		return nil, ErrEmpty
	case t[0] == 'd' && !strings.Contains(t, "-"):
		m := reDeleteOne.FindStringSubmatch(t)
		if m == nil {
			return nil, fmt.Errorf("%w: bad delete", ErrMalformed)
		}
		p, err := position(m[1])
		if err != nil {
			return nil, err
		}
		return DeleteOne{Raw: t, Pos: p}, nil
	case t[0] == 'd':
		from, to, err := rangeOf(reDeleteRange, t, "delete range")
		if err != nil {
			return nil, err
		}
		return DeleteRange{Raw: t, From: from, To: to}, nil
	case t[0] == 'n' && !strings.Contains(t, "-"):
		m := reMaskOne.FindStringSubmatch(t)
		if m == nil {
			return nil, fmt.Errorf("%w: bad mask", ErrMalformed)
		}
		p, err := position(m[1])
		if err != nil {
			return nil, err
		}
		return MaskOne{Raw: t, Pos: p}, nil
	case t[0] == 'n':
		from, to, err := rangeOf(reMaskRange, t, "mask range")
		if err != nil {
			return nil, err
		}
		return MaskRange{Raw: t, From: from, To: to}, nil
	case t[0] == 'i':
		m := reInsert.FindStringSubmatch(t)
		if m == nil {
			return nil, fmt.Errorf("%w: bad insert", ErrMalformed)
		}
		p, err := position(m[1])
		if err != nil {
			return nil, err
		}
		bases, err := checkBases(m[2])
		if err != nil {
			return nil, err
		}
		return Insert{Raw: t, Pos: p, Bases: bases}, nil
	case strings.IndexByte("acgt", t[0]) >= 0:
		m := reSubstitute.FindStringSubmatch(t)
		if m == nil {
			return nil, fmt.Errorf("%w: bad replace", ErrMalformed)
		}
		old, err := checkBases(m[1])
		if err != nil {
			return nil, err
		}
		p, err := position(m[2])
		if err != nil {
			return nil, err
		}
		nb, err := checkBases(m[3])
		if err != nil {
			return nil, err
		}
		return Substitute{Raw: t, Pos: p, Expected: old[0], New: nb}, nil
	default:
		return nil, ErrMalformed
	}
}

func rangeOf(re *regexp.Regexp, t, what string) (int, int, error) {
	m := re.FindStringSubmatch(t)
	if m == nil {
		return 0, 0, fmt.Errorf("%w: bad %s", ErrMalformed, what)
	}
	from, err := position(m[1])
	if err != nil {
		return 0, 0, err
	}
	to, err := position(m[2])
	if err != nil {
		return 0, 0, err
	}
	return from, to, nil
}

// position converts a 1-based digit run to a 0-based index.
func position(digits string) (int, error) {
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, fmt.Errorf("%w: position %q", ErrMalformed, digits)
	}
	return n - 1, nil
}

// checkBases upper-cases s and rejects anything outside A C G T N.
func checkBases(s string) (string, error) {
	u := strings.ToUpper(s)
	for i := 0; i < len(u); i++ {
		switch u[i] {
		case 'A', 'C', 'G', 'T', 'N':
		default:
			return "", fmt.Errorf("%w %q", ErrInvalidBase, u[i])
		}
	}
	return u, nil
}
