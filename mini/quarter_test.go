package mini

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuarterConstants(t *testing.T) {
	for _, c := range []struct {
		q   Quarter
		out float32
	}{
		{QuarterZero, 0},
		{QuarterOne, 1},
		{MaxQuarter, 240},
		{MinQuarter, -240},
		{SmallestQuarter, 1.0 / 512},
		{0x08, 1.0 / 64}, // smallest normal
		{0x40, 2},
		{0x44, 3},
		{0x30, 0.5},
	} {
		if got := c.q.Float32(); got != c.out {
			t.Errorf("%#02x.Float32() = %v, want: %v", uint8(c.q), got, c.out)
		}
	}
	assert.True(t, QuarterNaN.IsNaN())
	assert.True(t, QuarterInf.IsPosInf())
	assert.True(t, QuarterNegInf.IsNegInf())
	assert.True(t, math.IsInf(float64(QuarterInf.Float32()), 1))
	assert.True(t, math.IsInf(float64(QuarterNegInf.Float32()), -1))
}

func TestQuarterClassify(t *testing.T) {
	var nans, infs, subs, zeros int
	for i := 0; i < 256; i++ {
		q := QuarterFromBits(uint8(i))
		f := q.Float32()
		if got, want := q.IsNaN(), math.IsNaN(float64(f)); got != want {
			t.Errorf("%#02x.IsNaN() = %t, want: %t", i, got, want)
		}
		if got, want := q.IsInf(), math.IsInf(float64(f), 0); got != want {
			t.Errorf("%#02x.IsInf() = %t, want: %t", i, got, want)
		}
		if q.IsFinite() == (q.IsNaN() || q.IsInf()) {
			t.Errorf("%#02x.IsFinite() = %t", i, q.IsFinite())
		}
		if got, want := q.IsNegative(), i >= 0x80; got != want {
			t.Errorf("%#02x.IsNegative() = %t, want: %t", i, got, want)
		}
		if q.IsNaN() {
			nans++
		}
		if q.IsInf() {
			infs++
		}
		if q.IsSubnormal() {
			subs++
		}
		if q.IsZero() {
			zeros++
		}
	}
	// Two signs of seven mantissas each.
	assert.Equal(t, 14, nans)
	assert.Equal(t, 2, infs)
	assert.Equal(t, 14, subs)
	assert.Equal(t, 2, zeros)
}

func TestQuarterRoundTrip(t *testing.T) {
	for i := 0; i < 256; i++ {
		q := QuarterFromBits(uint8(i))
		got := QuarterFromFloat32(q.Float32())
		if q.IsNaN() {
			if !got.IsNaN() {
				t.Errorf("%#02x: NaN came back as %#02x", i, uint8(got))
			}
			continue
		}
		if got != q {
			t.Errorf("%#02x: Float32: %v, FromFloat32: %#02x", i, q.Float32(), uint8(got))
		}
		if got := QuarterFromFloat(QuarterToFloat[float64](q)); got != q {
			t.Errorf("%#02x: Float64: %v, FromFloat: %#02x", i, q.Float64(), uint8(got))
		}
	}
}

func TestQuarterOrdered(t *testing.T) {
	// Positive patterns up to and including infinity are increasing, and
	// negating mirrors them.
	for i := 1; i <= int(QuarterInf); i++ {
		a, b := QuarterFromBits(uint8(i-1)), QuarterFromBits(uint8(i))
		if !(a.Float32() < b.Float32()) {
			t.Errorf("%v (%#02x) >= %v (%#02x)", a, i-1, b, i)
		}
		if !b.Neg().Less(a.Neg()) {
			t.Errorf("%v not less than %v", b.Neg(), a.Neg())
		}
	}
}

func TestQuarterFromFloat32(t *testing.T) {
	for _, c := range []struct {
		in  float32
		out Quarter
	}{
		{0, QuarterZero},
		{float32(math.Copysign(0, -1)), 0x80},
		{1, QuarterOne},
		{-1, QuarterOne.Neg()},
		// Halfway between 1 and 1.125 goes to the even mantissa, 1.
		{1.0625, 0x38},
		// Halfway between 1.125 and 1.25 goes to 1.25.
		{1.1875, 0x3a},
		{1.1876, 0x3a},
		{1.0624, 0x38},
		{0.1, 0x1d},
		{240, MaxQuarter},
		{247, MaxQuarter},
		// Halfway between 240 and the next value would be odd, so it
		// overflows.
		{248, QuarterInf},
		{1000, QuarterInf},
		{-1000, QuarterNegInf},
		{math.MaxFloat32, QuarterInf},
		{float32(math.Inf(1)), QuarterInf},
		{float32(math.Inf(-1)), QuarterNegInf},
		// Subnormals.
		{1.0 / 512, SmallestQuarter},
		{1.0 / 1024, QuarterZero},
		{-1.0 / 1024, 0x80},
		{1.5 / 1024, SmallestQuarter},
		{3.0 / 1024, 0x02},
		{1.0 / 2048, QuarterZero},
		{math.SmallestNonzeroFloat32, QuarterZero},
		{15.0 / 1024, 0x08},
	} {
		if got := QuarterFromFloat32(c.in); got != c.out {
			t.Errorf("QuarterFromFloat32(%v) = %#02x (%v), want: %#02x (%v)", c.in, uint8(got), got, uint8(c.out), c.out)
		}
	}
	assert.True(t, QuarterFromFloat32(float32(math.NaN())).IsNaN())
	assert.True(t, QuarterFromFloat(math.NaN()).IsNaN())
}

func TestQuarterRandomRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(8))
	for i := 0; i < 10000; i++ {
		f := (r.Float32()*2 - 1) * 240
		got := QuarterFromFloat32(f).Float32()
		// Half an ulp: 2^-4 relative for normals, 2^-10 absolute below.
		tol := max(float32(math.Abs(float64(f)))/16, 1.0/1024)
		if d := float32(math.Abs(float64(got - f))); d > tol {
			t.Errorf("QuarterFromFloat32(%v) = %v, off by %v", f, got, d)
		}
	}
}

func TestQuarterArithmetic(t *testing.T) {
	two := QuarterFromFloat32(2)
	assert.InDelta(t, 3, two.Add(QuarterOne).Float64(), 1e-6)
	assert.InDelta(t, 1, two.Sub(QuarterOne).Float64(), 1e-6)
	assert.InDelta(t, 2, two.Mul(QuarterOne).Float64(), 1e-6)
	assert.InDelta(t, 2, two.Div(QuarterOne).Float64(), 1e-6)

	for _, c := range []struct {
		a, b Quarter
		op   string
		out  Quarter
	}{
		{MaxQuarter, MaxQuarter, "+", QuarterInf},
		{MinQuarter, MaxQuarter, "-", QuarterNegInf},
		{MaxQuarter, two, "*", QuarterInf},
		{QuarterOne, QuarterZero, "/", QuarterInf},
		{QuarterOne.Neg(), QuarterZero, "/", QuarterNegInf},
		{QuarterInf, QuarterNegInf, "+", QuarterNaN},
		{QuarterZero, QuarterZero, "/", QuarterNaN},
		{QuarterInf, QuarterZero, "*", QuarterNaN},
		{QuarterOne, QuarterOne, "-", QuarterZero},
		{SmallestQuarter, QuarterFromFloat32(0.5), "*", QuarterZero},
	} {
		var got Quarter
		switch c.op {
		case "+":
			got = c.a.Add(c.b)
		case "-":
			got = c.a.Sub(c.b)
		case "*":
			got = c.a.Mul(c.b)
		case "/":
			got = c.a.Div(c.b)
		}
		if !got.Equal(c.out) {
			t.Errorf("%v %s %v = %v, want: %v", c.a, c.op, c.b, got, c.out)
		}
	}
}

func TestQuarterNeg(t *testing.T) {
	assert.Equal(t, QuarterNegInf, QuarterInf.Neg())
	assert.Equal(t, QuarterInf, QuarterNegInf.Neg())
	assert.Equal(t, Quarter(0x80), QuarterZero.Neg())
	assert.True(t, QuarterNaN.Neg().IsNaN())
	assert.True(t, QuarterNaN.Neg().IsNegative())
	for i := 0; i < 256; i++ {
		q := QuarterFromBits(uint8(i))
		if q.IsNaN() {
			continue
		}
		if got, want := q.Neg().Float32(), -q.Float32(); got != want {
			t.Errorf("-(%v) = %v, want: %v", q, got, want)
		}
		if got := q.Abs(); got.IsNegative() || !got.Equal(q) && !got.Equal(q.Neg()) {
			t.Errorf("Abs(%v) = %v", q, got)
		}
	}
}

func TestQuarterCompare(t *testing.T) {
	assert.True(t, QuarterNaN.Equal(QuarterNaN))
	assert.True(t, QuarterNaN.Equal(0xff))
	assert.True(t, QuarterZero.Equal(QuarterZero.Neg()))
	assert.True(t, QuarterNaN.Less(QuarterNegInf))
	assert.False(t, QuarterNaN.Less(QuarterNaN))
	assert.Equal(t, -1, MinQuarter.Compare(MaxQuarter))

	for i := 0; i < 256; i++ {
		a := QuarterFromBits(uint8(i))
		for j := 0; j < 256; j++ {
			b := QuarterFromBits(uint8(j))
			c := a.Compare(b)
			if d := b.Compare(a); c != -d {
				t.Fatalf("%#02x Compare %#02x = %d but reversed = %d", i, j, c, d)
			}
			if a.Equal(b) != (c == 0) {
				t.Fatalf("%#02x Equal %#02x = %t, Compare = %d", i, j, a.Equal(b), c)
			}
			if a.IsNaN() || b.IsNaN() {
				continue
			}
			fa, fb := a.Float32(), b.Float32()
			if (c > 0) != (fa > fb) {
				t.Errorf("%v Compare %v = %d", a, b, c)
			}
		}
	}
}

func TestQuarterString(t *testing.T) {
	for _, c := range []struct {
		q   Quarter
		out string
	}{
		{QuarterOne, "1"},
		{MinQuarter, "-240"},
		{SmallestQuarter, "0.001953125"},
		{QuarterInf, "+Inf"},
		{QuarterNegInf, "-Inf"},
		{QuarterNaN, "NaN"},
		{0x80, "-0"},
	} {
		if got := c.q.String(); got != c.out {
			t.Errorf("%#02x.String() = %q, want: %q", uint8(c.q), got, c.out)
		}
	}
}
