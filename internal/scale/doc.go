// Package scale projects the 137-hour phase quantum across magnitudes using
// two independent exponential ladders: golden-ratio steps (φ^n) and
// sexagesimal steps (60^n).
//
// Both scaling functions are total. Any integer step and any base are
// accepted, no rounding is applied, and non-finite results propagate to the
// caller untouched.
package scale
