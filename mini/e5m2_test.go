package mini

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestE5M2(t *testing.T) {
	assert.Equal(t, float32(1), E5M2One.Float32())
	assert.Equal(t, float32(57344), MaxE5M2.Float32())
	assert.Equal(t, float32(-57344), MinE5M2.Float32())
	assert.Equal(t, float32(math.Ldexp(1, -16)), SmallestE5M2.Float32())
	assert.True(t, E5M2Inf.IsPosInf())
	assert.True(t, E5M2NegInf.IsNegInf())
	assert.True(t, E5M2NaN.IsNaN())

	for _, c := range []struct {
		in  float32
		out E5M2
	}{
		{57344, MaxE5M2},
		{61439, MaxE5M2},
		{61440, E5M2Inf},
		{-61440, E5M2NegInf},
		{float32(math.Ldexp(1, -17)), E5M2Zero},
		{float32(math.Ldexp(3, -17)), 0x02},
		{1.125, E5M2One}, // tie, even
		{1.375, 0x3e},    // tie, up to 1.5
	} {
		if got := E5M2FromFloat32(c.in); got != c.out {
			t.Errorf("E5M2FromFloat32(%v) = %#02x (%v), want: %#02x (%v)", c.in, uint8(got), got, uint8(c.out), c.out)
		}
	}

	for i := 0; i < 256; i++ {
		e := E5M2FromBits(uint8(i))
		got := E5M2FromFloat(E5M2ToFloat[float64](e))
		switch {
		case e.IsNaN():
			if !got.IsNaN() {
				t.Errorf("%#02x: NaN came back as %#02x", i, uint8(got))
			}
		case got != e:
			t.Errorf("%#02x: Float64: %v, FromFloat: %#02x", i, e.Float64(), uint8(got))
		}
	}
	for i := 1; i <= int(E5M2Inf); i++ {
		a, b := E5M2FromBits(uint8(i-1)), E5M2FromBits(uint8(i))
		if !a.Less(b) {
			t.Errorf("%v (%#02x) >= %v (%#02x)", a, i-1, b, i)
		}
	}
	assert.Equal(t, E5M2Inf, MaxE5M2.Add(MaxE5M2))
	assert.True(t, E5M2NaN.Equal(E5M2NaN))
}
