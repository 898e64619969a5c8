// Package kernel defines the symbolic constants of the Moonth model and the
// coherence bridge between its two numeric anchors.
//
// Everything here derives from two sources: the fine-structure anchor
// 1/α = 137.036 and the golden ratio φ. Derived values (α, φ², 1/φ) are
// computed from the anchors at package initialization, never hardcoded, so
// the internal consistency checks hold by construction.
//
// kernel is the foundational layer: it imports nothing internal.
package kernel
