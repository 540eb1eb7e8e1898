// Package conv provides safe width and size conversion utilities.
//
// These functions perform bounds checking on caller-supplied byte widths
// before they reach the conversion core, so malformed widths surface as
// errors instead of panics or silently wrong sizes.
//
// Use cases:
//   - Validating untrusted widths from callers (negative, absurdly large)
//   - Converting byte widths to bit counts without overflow
//
// For conversions that are provably safe by domain constraints (e.g., slice
// lengths already held in memory), use direct type casts instead to avoid
// overhead.
package conv
