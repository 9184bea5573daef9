// Package solo contains single-value, synchronous operators over
// variant.Variant. These functions form the core building blocks for
// failure-aware composition without channels.
//
// Highlights:
// - Succeed/Fail: construct Variant[A]
// - Map/Switch/Apply: transform or chain successful values
// - Or: prefer a successful alternative over a failure
// - Extend: rewrap the whole union as a success payload
// - ResolveOne/Resolve/Extract: collapse failure labels one at a time
//   or in batches until only success remains
// - FromTuple/ToOption/NoteAbsence: convert to and from (value, error)
//   pairs and option.Option
// - Finally: reduce to a concrete value via exhaustive per-label handlers
//
// Every operator is written in terms of variant.Eliminate; none inspects
// the value's state directly.
package solo
