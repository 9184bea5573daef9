// Package gen produces random variant values for property-based tests.
//
// Randomness always comes from a caller-supplied *rand.Rand; every
// function here is deterministic given a fixed source. A Table pairs a
// schema with one generator per slot and is checked for completeness
// once, at construction. Uniform and Weighted choose the slot, the
// Registry derives tables automatically from registered payload types
// (Arbitrary) and folds existing values into seeds (Perturb).
package gen
