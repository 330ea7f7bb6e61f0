// Package edit interprets the mutation language used by DIFF files.
//
// A token such as c174g, d134-282 or i252gcagtcc is parsed into an Op,
// the Ops of one record are ordered by position descending, and each Op is
// applied in turn to a single mutable sequence buffer. Applying the
// highest positions first keeps the coordinates of the remaining Ops valid,
// provided no two Ops of a set touch overlapping positions.
//
// Failures never escape as panics or returned errors from Parse, Order and
// Apply: they are reported to a diag.Sink and the offending token or Op is
// skipped. ParseToken and Mutate are the pure variants used by tests and
// by callers that want the error value.
package edit
