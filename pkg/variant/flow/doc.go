// Package flow lifts the solo operators over channels for concurrent
// fan-out/fan-in processing of union values. It adds no semantics of its
// own: values are immutable, so stages can run on any number of workers
// without coordination beyond channel ownership.
//
// Common usage:
// - Emit: feed plain values in as successes
// - Run/Pipe: execute a stage with a fixed number of workers
// - MapStage/SwitchStage/TeeStage/ResolveStage: lift solo operations
// - Collect: drain results (order across workers is not preserved)
package flow
