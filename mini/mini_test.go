package mini

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestKindString(t *testing.T) {
	for _, c := range []struct {
		k   Kind
		out string
	}{
		{KindQuarter, "quarter"},
		{KindE4M3, "e4m3"},
		{KindE5M2, "e5m2"},
		{0, "invalid Kind(0)"},
		{Kind(4), "invalid Kind(4)"},
	} {
		if got := c.k.String(); got != c.out {
			t.Errorf("Kind(%d).String() = %q, want: %q", uint8(c.k), got, c.out)
		}
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds() {
		require.NoError(t, k.Validate())
		got, err := ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	got, err := ParseKind("E4M3")
	require.NoError(t, err)
	assert.Equal(t, KindE4M3, got)

	_, err = ParseKind("bfloat16")
	assert.ErrorIs(t, err, ErrUnknownKind)
	assert.ErrorContains(t, err, `"bfloat16"`)
	assert.Error(t, Kind(0).Validate())
	assert.Panics(t, func() { Kind(9).Decode(0) })
}

func TestKindMatchesTypes(t *testing.T) {
	for i := 0; i < 256; i++ {
		b := uint8(i)
		for _, c := range []struct {
			k      Kind
			decode float32
			add    uint8
			div    uint8
			cmp    int
		}{
			{KindQuarter, Quarter(b).Float32(), uint8(Quarter(b).Add(QuarterOne)), uint8(Quarter(b).Div(QuarterOne.Neg())), Quarter(b).Compare(QuarterOne)},
			{KindE4M3, E4M3(b).Float32(), uint8(E4M3(b).Add(E4M3One)), uint8(E4M3(b).Div(E4M3One.Neg())), E4M3(b).Compare(E4M3One)},
			{KindE5M2, E5M2(b).Float32(), uint8(E5M2(b).Add(E5M2One)), uint8(E5M2(b).Div(E5M2One.Neg())), E5M2(b).Compare(E5M2One)},
		} {
			one := c.k.Encode(1)
			if got := c.k.Decode(b); math.Float32bits(got) != math.Float32bits(c.decode) {
				t.Errorf("%v.Decode(%#02x) = %v, want: %v", c.k, b, got, c.decode)
			}
			if got := c.k.Add(b, one); got != c.add {
				t.Errorf("%v.Add(%#02x, 1) = %#02x, want: %#02x", c.k, b, got, c.add)
			}
			if got := c.k.Div(b, one^0x80); got != c.div {
				t.Errorf("%v.Div(%#02x, -1) = %#02x, want: %#02x", c.k, b, got, c.div)
			}
			if got := c.k.Compare(b, one); got != c.cmp {
				t.Errorf("%v.Compare(%#02x, 1) = %d, want: %d", c.k, b, got, c.cmp)
			}
		}
	}
	assert.Equal(t, uint8(MaxQuarter), KindQuarter.Max())
	assert.Equal(t, uint8(MaxE4M3), KindE4M3.Max())
	assert.Equal(t, uint8(MaxE5M2), KindE5M2.Max())
	assert.True(t, KindQuarter.HasInf())
	assert.False(t, KindE4M3.HasInf())
	assert.Equal(t, uint8(0x40), KindQuarter.Sub(KindQuarter.Mul(0x40, 0x40), 0x40))
}

func TestDescribe(t *testing.T) {
	for _, c := range []struct {
		k   Kind
		b   uint8
		out string
	}{
		{KindQuarter, 0x38, "0 0111 000 (1)"},
		{KindQuarter, 0x01, "0 0000 001 (0.001953125) sub"},
		{KindQuarter, 0x78, "0 1111 000 (+Inf) inf"},
		{KindQuarter, 0xfc, "1 1111 100 (NaN) nan"},
		{KindE4M3, 0x7e, "0 1111 110 (448)"},
		{KindE4M3, 0xf8, "1 1111 000 (-256)"},
		{KindE4M3, 0x7f, "0 1111 111 (NaN) nan"},
		{KindE5M2, 0x3c, "0 01111 00 (1)"},
		{KindE5M2, 0x80, "1 00000 00 (-0)"},
	} {
		if got := c.k.Describe(c.b); got != c.out {
			t.Errorf("%v.Describe(%#02x) = %q, want: %q", c.k, c.b, got, c.out)
		}
	}
}

// Every kind's tables are shared, read only state.
func TestConcurrentRoundTrip(t *testing.T) {
	var g errgroup.Group
	for _, k := range Kinds() {
		for w := 0; w < 4; w++ {
			g.Go(func() error {
				for i := 0; i < 256; i++ {
					f := k.Decode(uint8(i))
					got := k.Encode(f)
					if math.IsNaN(float64(f)) {
						if d := k.Decode(got); !math.IsNaN(float64(d)) {
							t.Errorf("%v: NaN %#02x came back as %v", k, i, d)
						}
						continue
					}
					if got != uint8(i) {
						t.Errorf("%v: %#02x came back as %#02x", k, i, got)
					}
				}
				return nil
			})
		}
	}
	require.NoError(t, g.Wait())
}

func FuzzEncodeMonotonic(f *testing.F) {
	for _, c := range [][2]float32{
		{0, 1},
		{1.0625, 1.1875},
		{240, 248},
		{-448, 470},
		{1.0 / 1024, 3.0 / 1024},
	} {
		f.Add(c[0], c[1])
	}
	f.Fuzz(func(t *testing.T, a, b float32) {
		if math.IsNaN(float64(a)) || math.IsNaN(float64(b)) {
			t.Skip()
		}
		if a > b {
			a, b = b, a
		}
		for _, k := range Kinds() {
			ea, eb := k.Encode(a), k.Encode(b)
			if k.Compare(ea, eb) > 0 {
				t.Errorf("%v: %v <= %v but %v > %v", k, a, b, k.Decode(ea), k.Decode(eb))
			}
			// Encoding is idempotent and keeps the sign.
			if got := k.Encode(k.Decode(ea)); got != ea {
				t.Errorf("%v: Encode(Decode(Encode(%v))) = %#02x, want: %#02x", k, a, got, ea)
			}
			if got, want := ea&0x80 != 0, math.Signbit(float64(a)); got != want {
				t.Errorf("%v: sign of Encode(%v) = %t, want: %t", k, a, got, want)
			}
		}
	})
}
