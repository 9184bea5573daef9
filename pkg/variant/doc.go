// Package variant defines a tagged union value with one success slot and
// a declaration-time set of independently labeled failure slots. It is the
// root type the rest of the module builds on.
//
// Common usage:
// - Declare/NewSchema: describe the failure labels and their payload types
// - Success/Fail/MustFail: construct a value with exactly one active slot
// - Eliminate: total dispatch over success and failure
// - Retag: re-type a value against a narrowed or widened schema
// - Schema.Union: combine failure modes from independent sources
//
// Synchronous combinators live in package solo, a fluent wrapper in
// package chain, channel lifting in package flow and randomized value
// generation in package gen.
package variant
