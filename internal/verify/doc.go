// Package verify runs the model's invariant suite: the numeric identities
// the Moonth construction promises (696-hour cycle, 11-hour buffer, scaling
// identities at n = 0, the coherence bridge, the golden-ratio algebra).
//
// The suite exists for the CLI's verify command; the same properties are
// also pinned by unit tests. Every check is a pure recomputation, so a
// failure means the constants and the code have drifted apart.
package verify
