package fixed

import (
	"math"
	"testing"
)

func TestFromInt(t *testing.T) {
	tests := []struct {
		in   int
		want Fix
	}{
		{0, 0},
		{1, 1 << 16},
		{-1, -(1 << 16)},
		{220, 220 << 16},
		{-8, -8 << 16},
	}

	for _, tt := range tests {
		if got := FromInt(tt.in); got != tt.want {
			t.Errorf("FromInt(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestFromParts(t *testing.T) {
	tests := []struct {
		whole int
		frac  uint16
		want  float64
	}{
		{0, 0, 0},
		{1, 0, 1},
		{0, 0x8000, 0.5},
		{2, 0x4000, 2.25},
		{-8, 0, -8},
		{-8, 0x8000, -7.5},
	}

	for _, tt := range tests {
		got := FromParts(tt.whole, tt.frac)
		if got.Float() != tt.want {
			t.Errorf("FromParts(%d, %#x) = %v, want %v", tt.whole, tt.frac, got.Float(), tt.want)
		}
	}
}

func TestMul(t *testing.T) {
	tests := []struct {
		name string
		a, b Fix
		want Fix
	}{
		{"one by one", One, One, One},
		{"two by three", FromInt(2), FromInt(3), FromInt(6)},
		{"sign left", FromInt(-3), FromInt(2), FromInt(-6)},
		{"sign both", FromInt(-3), FromInt(-2), FromInt(6)},
		{"half by half", One / 2, One / 2, One / 4},
		{"by zero", FromInt(42), 0, 0},
		{"exact friction", FromInt(2), Fix(62259), Fix(124518)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Mul(tt.b); got != tt.want {
				t.Errorf("%d.Mul(%d) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestMulRoundsTowardNegativeInfinity(t *testing.T) {
	// -1/65536 * 0.95 must stay negative, never snap to zero.
	got := Fix(-1).Mul(Fix(62259))
	if got != Fix(-1) {
		t.Errorf("(-Epsilon).Mul(0.95) = %d, want -1", got)
	}

	if got := Epsilon.Mul(Fix(62259)); got != 0 {
		t.Errorf("Epsilon.Mul(0.95) = %d, want 0", got)
	}
}

func TestNegationAndCompare(t *testing.T) {
	a := FromParts(3, 0x1234)
	if -(-a) != a {
		t.Error("double negation must be identity")
	}
	if !(a > 0 && -a < 0) {
		t.Error("sign comparison broken")
	}
	if a+(-a) != 0 {
		t.Error("a + (-a) must be zero")
	}
}

func TestIntFloorsNegatives(t *testing.T) {
	if got := FromParts(-8, 0x8000).Int(); got != -8 {
		t.Errorf("(-7.5).Int() = %d, want -8", got)
	}
	if got := FromParts(3, 0x8000).Int(); got != 3 {
		t.Errorf("(3.5).Int() = %d, want 3", got)
	}
}

func TestReinterpretationPreservesBits(t *testing.T) {
	values := []Fix{0, Epsilon, One, FromInt(220), FromParts(100, 0xffff), Max}
	for _, v := range values {
		u := FromSigned(v)
		if uint32(u) != uint32(v) {
			t.Errorf("FromSigned(%d) changed bits: %#x -> %#x", v, uint32(v), uint32(u))
		}
		if back := FromUnsigned(u); back != v {
			t.Errorf("round trip of %d gave %d", v, back)
		}
	}
}

func TestUnsignedReadingOfLargeValues(t *testing.T) {
	// A sum of squares that exceeds the signed integer range still reads
	// correctly through the unsigned reinterpretation.
	v := FromInt(181).Mul(FromInt(181)) // 32761, near the signed ceiling
	u := FromSigned(v)
	if math.Abs(u.Float()-32761) > 1e-9 {
		t.Errorf("UFix reading = %v, want 32761", u.Float())
	}
}

func TestFloatDiagnostics(t *testing.T) {
	if One.Float() != 1.0 {
		t.Errorf("One.Float() = %v", One.Float())
	}
	if FromFloat(0.5) != One/2 {
		t.Errorf("FromFloat(0.5) = %d", FromFloat(0.5))
	}
	if got := Epsilon.Float(); got != 1.0/65536.0 {
		t.Errorf("Epsilon.Float() = %v", got)
	}
}

func TestAbs(t *testing.T) {
	if FromInt(-3).Abs() != FromInt(3) {
		t.Error("Abs(-3) != 3")
	}
	if Epsilon.Abs() != Epsilon {
		t.Error("Abs must be identity for positives")
	}
}
