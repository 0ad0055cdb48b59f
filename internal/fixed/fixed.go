// Package fixed provides the deterministic fixed-point scalar used by all
// simulation arithmetic.
//
// Fix is a signed Q15.16 value: 1 sign bit, 15 integer bits, 16 fraction
// bits packed into an int32. UFix is its unsigned Q16.16 counterpart, used
// only for quantities known to be non-negative (squared distances).
//
// Because a Fix is a defined integer type, addition, subtraction, negation
// and comparison are the native int32 operations and are exact. Only
// multiplication needs a method, since the product must be widened to 64
// bits before renormalizing. No operation can fail: values outside the
// representable range wrap, which is treated as a latent defect at the call
// site rather than a runtime error. Positions and velocities in this
// simulation stay far inside the safe range.
package fixed

// FractionBits is the number of fraction bits in both Fix and UFix.
const FractionBits = 16

// Fix is a signed Q15.16 fixed-point scalar.
type Fix int32

// UFix is an unsigned Q16.16 fixed-point scalar. It shares the bit layout
// of Fix and exists so that non-negative results (sums of squares) can use
// the full 16 integer bits.
type UFix uint32

const (
	// One is the Fix representation of 1.
	One Fix = 1 << FractionBits

	// Epsilon is the smallest representable positive Fix. Comparison
	// tolerances are derived from it (e.g. Epsilon * 16).
	Epsilon Fix = 1

	// Max and Min bound the representable range.
	Max Fix = 1<<31 - 1
	Min Fix = -1 << 31
)

// FromInt returns the Fix representation of a whole number.
func FromInt(i int) Fix {
	return Fix(i) << FractionBits
}

// FromParts builds a Fix from a whole part and a fractional numerator over
// 2^FractionBits. The fraction is always additive, so
// FromParts(-8, 0x8000) is -8 + 0.5 = -7.5.
func FromParts(whole int, frac uint16) Fix {
	return Fix(whole)<<FractionBits + Fix(frac)
}

// FromFloat converts a float64 to Fix, truncating toward zero. Diagnostics
// and display only; simulation math never round-trips through floats.
func FromFloat(f float64) Fix {
	return Fix(f * float64(One))
}

// Float returns the float64 value of f. Diagnostics and display only.
func (f Fix) Float() float64 {
	return float64(f) / float64(One)
}

// Int returns the whole part of f, rounding toward negative infinity.
func (f Fix) Int() int {
	return int(f >> FractionBits)
}

// Mul returns the fixed-point product f*g. The multiplication widens to
// int64 and renormalizes with an arithmetic shift, so the fraction rounds
// toward negative infinity and the sign is correct for any operands whose
// true product fits in the Fix range.
func (f Fix) Mul(g Fix) Fix {
	return Fix((int64(f) * int64(g)) >> FractionBits)
}

// Abs returns the magnitude of f.
func (f Fix) Abs() Fix {
	if f < 0 {
		return -f
	}
	return f
}

// FromSigned reinterprets the bit pattern of a Fix as a UFix. This is not a
// numeric conversion: it is only valid when f is known to be non-negative,
// in which case the Q15.16 and Q16.16 readings of the bits agree.
func FromSigned(f Fix) UFix {
	return UFix(uint32(f))
}

// FromUnsigned is the inverse reinterpretation. Only valid when u fits the
// signed range, i.e. its top bit is clear.
func FromUnsigned(u UFix) Fix {
	return Fix(int32(u))
}

// Float returns the float64 value of u. Diagnostics and display only.
func (u UFix) Float() float64 {
	return float64(u) / float64(One)
}
