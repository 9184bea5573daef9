// Package chain provides a fluent wrapper over the solo operators for
// linear compositions that read top to bottom.
//
// Type-preserving steps (Ensure, Or, Resolve) are methods; steps that
// change the success type (Then, Map, Finally) are package functions
// because Go methods cannot introduce type parameters.
package chain
