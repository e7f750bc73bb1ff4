package mini

import (
	"strconv"

	"golang.org/x/exp/constraints"
)

// E4M3 is an 8 bit float with 4 exponent bits, 3 mantissa bits and a bias of
// 7 that gives up infinities for range. Only S.1111.111 is NaN, the rest of
// the top exponent is ordinary values, so it covers ±448. Conversions never
// produce an infinity: anything that would overflow, including ±Inf itself,
// is clamped to MaxE4M3 or MinE4M3.
type E4M3 uint8

const (
	E4M3Zero     E4M3 = 0x00
	E4M3One      E4M3 = 0x38
	E4M3NaN      E4M3 = 0x7f
	MaxE4M3      E4M3 = 0x7e // 448
	MinE4M3      E4M3 = 0xfe // -448
	SmallestE4M3 E4M3 = 0x01 // 2^-9
)

var e4m3 = newLayout(4, 3, 7, false)

// E4M3FromBits reinterprets b. Every pattern is a valid E4M3.
func E4M3FromBits(b uint8) E4M3 { return E4M3(b) }

func (e E4M3) Bits() uint8 { return uint8(e) }

// E4M3FromFloat32 rounds f to the nearest E4M3, ties to even, clamping to
// MinE4M3 and MaxE4M3.
func E4M3FromFloat32(f float32) E4M3 {
	return E4M3(e4m3.encode(f))
}

// E4M3FromFloat converts any float, going through float32.
func E4M3FromFloat[T constraints.Float](f T) E4M3 {
	return E4M3FromFloat32(float32(f))
}

func E4M3ToFloat[T constraints.Float](e E4M3) T {
	return T(e.Float32())
}

func (e E4M3) Float32() float32 { return e4m3.table[e] }
func (e E4M3) Float64() float64 { return float64(e.Float32()) }

func (e E4M3) IsNaN() bool { return e4m3.isNaN(uint8(e)) }

// IsInf, IsPosInf and IsNegInf are always false.
func (e E4M3) IsInf() bool    { return false }
func (e E4M3) IsPosInf() bool { return false }
func (e E4M3) IsNegInf() bool { return false }

func (e E4M3) IsFinite() bool     { return !e.IsNaN() }
func (e E4M3) IsZero() bool       { return e&0x7f == 0 }
func (e E4M3) IsSubnormal() bool  { return e4m3.isSubnormal(uint8(e)) }
func (e E4M3) IsNegative() bool   { return e&0x80 != 0 }
func (e E4M3) Neg() E4M3          { return e ^ 0x80 }
func (e E4M3) Abs() E4M3          { return e &^ 0x80 }
func (e E4M3) Add(f E4M3) E4M3    { return E4M3(e4m3.add(uint8(e), uint8(f))) }
func (e E4M3) Sub(f E4M3) E4M3    { return E4M3(e4m3.sub(uint8(e), uint8(f))) }
func (e E4M3) Mul(f E4M3) E4M3    { return E4M3(e4m3.mul(uint8(e), uint8(f))) }
func (e E4M3) Div(f E4M3) E4M3    { return E4M3(e4m3.div(uint8(e), uint8(f))) }
func (e E4M3) Equal(f E4M3) bool  { return e.Compare(f) == 0 }
func (e E4M3) Compare(f E4M3) int { return e4m3.compare(uint8(e), uint8(f)) }
func (e E4M3) Less(f E4M3) bool   { return e.Compare(f) < 0 }

func (e E4M3) String() string {
	return strconv.FormatFloat(e.Float64(), 'g', -1, 32)
}
