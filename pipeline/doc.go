// Package pipeline wires the dataflow core together for a single method
// (build the CFG, run constant propagation, run dead-code detection given
// a caller-supplied live-variable result) and exposes a batch entry point
// that runs that wiring across many methods concurrently.
package pipeline
