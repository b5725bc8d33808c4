package bytestream

import "math"

// Float64bits reinterprets v as its IEEE-754 bit pattern.
//
// This is an explicit, well-defined bit cast (math.Float64bits) rather than the union-based
// pointer reinterpretation the original C++ implementation used; it preserves NaN payloads
// exactly, satisfying the round-trip requirement for irregular values.
func Float64bits(v float64) uint64 { return math.Float64bits(v) }

// Float64frombits is the inverse of Float64bits.
func Float64frombits(bits uint64) float64 { return math.Float64frombits(bits) }
