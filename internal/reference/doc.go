// Package reference exposes the static reference tables of the Moonth model:
// the eleven operational laws (Leges Undecim) and the structural resonance
// candidates.
//
// The tables ship as YAML documents embedded in the binary, decoded strictly
// once at process start. They are descriptive constants: nothing in the
// model computes them, and the resonance entries are flagged correspondences
// with observed rhythms, not causal claims.
package reference
