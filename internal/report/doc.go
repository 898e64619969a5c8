// Package report assembles browsable snapshots of the Moonth model: the
// kernel constants, the phase cycle with its transition impedances, ladders
// of both scaling systems, the coherence bridge, and the static reference
// tables.
//
// A Report is a pure function of its Spec plus a run token; given a fixed
// token generator the output is deterministic byte for byte, which is what
// the golden-file tests pin down.
package report
