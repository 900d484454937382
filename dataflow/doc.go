// Package dataflow implements a generic monotone dataflow framework over
// cfg.CFG, a concrete constant-propagation analysis built on it, and a
// dead-code detector that consumes constant-propagation and live-variable
// results together with the CFG.
package dataflow
