// Package phase models the five-phase cyclic structure of the Moonth: the
// ordered stations Opening → Rise → Expansion → Descent → Integration, the
// asymmetric transition impedances between them, and the composed duration
// of one full cycle.
//
// The cycle is strictly ordered and irreversible. No operation reorders,
// skips, or reverses phases; the only movements are Next (one step forward,
// wrapping at Integration) and the impedance lookup over consecutive pairs.
package phase
