package edit

import "fmt"

// SubstituteMode selects how a substitution changes the buffer.
type SubstituteMode string

const (
	// SubstituteSplice inserts the new base in front of the expected one and
	// leaves the old base in place. This is what historical DIFF.fixed.tsv
	// files contain, so it stays the default.
	SubstituteSplice SubstituteMode = "splice"
	// SubstituteReplace overwrites the expected base.
	SubstituteReplace SubstituteMode = "replace"
)

// OverlapPolicy selects what Order does with ops whose spans intersect.
type OverlapPolicy string

const (
	OverlapWarn   OverlapPolicy = "warn"
	OverlapReject OverlapPolicy = "reject"
)

// Options tunes Order and Apply. The zero value means splice + warn.
type Options struct {
	Substitute SubstituteMode
	Overlap    OverlapPolicy
}

// DefaultOptions matches the historical behaviour.
var DefaultOptions = Options{Substitute: SubstituteSplice, Overlap: OverlapWarn}

func (o Options) substitute() SubstituteMode {
	if o.Substitute == "" {
		return SubstituteSplice
	}
	return o.Substitute
}

func (o Options) overlap() OverlapPolicy {
	if o.Overlap == "" {
		return OverlapWarn
	}
	return o.Overlap
}

// Validate rejects unknown mode names.
func (o Options) Validate() error {
	switch o.substitute() {
	case SubstituteSplice, SubstituteReplace:
	default:
		return fmt.Errorf("invalid substitute mode %q (want splice | replace)", o.Substitute)
	}
	switch o.overlap() {
	case OverlapWarn, OverlapReject:
	default:
		return fmt.Errorf("invalid overlap policy %q (want warn | reject)", o.Overlap)
	}
	return nil
}
