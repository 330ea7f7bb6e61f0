package edit

import (
	"fmt"
	"slices"

	"dnafix/internal/diag"
)

// Apply runs op against buf. On a failed precondition it reports one
// diagnostic and returns buf untouched.
func Apply(op Op, buf []byte, locator string, sink diag.Sink, opts Options) []byte {
	out, err := Mutate(op, buf, opts)
	if err != nil {
		sink.Report(diag.Diagnostic{Locator: locator, Token: op.Token(), Err: err})
		return buf
	}
	return out
}

// ApplyAll folds Apply over ops in order.
func ApplyAll(ops []Op, buf []byte, locator string, sink diag.Sink, opts Options) []byte {
	for _, op := range ops {
		buf = Apply(op, buf, locator, sink, opts)
	}
	return buf
}

// Mutate applies op to buf. Bounds are checked against the current length
// of buf. The returned slice may share storage with buf; on error buf has
// not been modified.
func Mutate(op Op, buf []byte, opts Options) ([]byte, error) {
	switch o := op.(type) {
	case Skip:
		return buf, nil

	case Substitute:
		if err := inBounds(buf, o.Pos); err != nil {
			return buf, err
		}
		if buf[o.Pos] != o.Expected {
			return buf, fmt.Errorf("%w: want %c at %d, have %c", ErrBaseMismatch, o.Expected, o.Pos+1, buf[o.Pos])
		}
		if opts.substitute() == SubstituteReplace {
			buf[o.Pos] = o.New[0]
			return buf, nil
		}
		return slices.Insert(buf, o.Pos, []byte(o.New)...), nil

	case DeleteOne:
		if err := inBounds(buf, o.Pos); err != nil {
			return buf, err
		}
		return slices.Delete(buf, o.Pos, o.Pos+1), nil

	case DeleteRange:
		if err := rangeInBounds(buf, o.From, o.To); err != nil {
			return buf, err
		}
		return slices.Delete(buf, o.From, o.To), nil

	case Insert:
		if err := inBounds(buf, o.Pos); err != nil {
			return buf, err
		}
		return slices.Insert(buf, o.Pos+1, []byte(o.Bases)...), nil

	case MaskOne:
		if err := inBounds(buf, o.Pos); err != nil {
			return buf, err
		}
		buf[o.Pos] = MaskBase
		return buf, nil

	case MaskRange:
		if err := rangeInBounds(buf, o.From, o.To); err != nil {
			return buf, err
		}
		n := len(buf)
		for i := o.From; i <= o.To; i++ {
			buf[i] = MaskBase
		}
		if len(buf) != n {
			panic("edit: mask changed buffer length")
		}
		return buf, nil

	default:
		return buf, fmt.Errorf("%w: unsupported op %T", ErrMalformed, op)
	}
}

func inBounds(buf []byte, p int) error {
	if p < 0 || p >= len(buf) {
		return fmt.Errorf("%w: %d not in 1..%d", ErrOutOfRange, p+1, len(buf))
	}
	return nil
}

func rangeInBounds(buf []byte, from, to int) error {
	if err := inBounds(buf, from); err != nil {
		return err
	}
	if err := inBounds(buf, to); err != nil {
		return err
	}
	if to < from {
		return fmt.Errorf("%w: %d-%d", ErrInvertedRange, from+1, to+1)
	}
	return nil
}
