package edit

import (
	"fmt"
	"sort"

	"dnafix/internal/diag"
)

// Order parses every token and returns the survivors sorted by position,
// highest first. The sort is stable, so equal positions keep token order,
// and Skip ops go last.
//
// The ordering is only correct when no two ops touch overlapping positions.
// Overlapping pairs are reported as ErrOverlap; with OverlapReject the lower
// op of each pair is dropped, otherwise both stay and the result depends on
// their order.
func Order(tokens []string, locator string, sink diag.Sink, opts Options) []Op {
	ops := make([]Op, 0, len(tokens))
	for _, t := range tokens {
		if op, ok := Parse(t, locator, sink); ok {
			ops = append(ops, op)
		}
	}
	if len(ops) <= 1 {
		return ops
	}
	sort.SliceStable(ops, func(i, j int) bool {
		pi, oki := Anchor(ops[i])
		pj, okj := Anchor(ops[j])
		if oki != okj {
			return oki
		}
		return pi > pj
	})
	return checkOverlap(ops, locator, sink, opts.overlap())
}

// checkOverlap walks the sorted ops and reports each op whose span meets a
// span already kept.
func checkOverlap(ops []Op, locator string, sink diag.Sink, policy OverlapPolicy) []Op {
	kept := ops[:0:0]
	for _, op := range ops {
		lo, hi, ok := op.span()
		if !ok {
			kept = append(kept, op)
			continue
		}
		var clash Op
		for _, k := range kept {
			klo, khi, kok := k.span()
			if kok && lo <= khi && klo <= hi {
				clash = k
				break
			}
		}
		if clash != nil {
			sink.Report(diag.Diagnostic{
				Locator: locator,
				Token:   op.Token(),
				Err:     fmt.Errorf("%w with %s", ErrOverlap, clash.Token()),
			})
			if policy == OverlapReject {
				continue
			}
		}
		kept = append(kept, op)
	}
	return kept
}
