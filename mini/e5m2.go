package mini

import (
	"strconv"

	"golang.org/x/exp/constraints"
)

// E5M2 is an 8 bit float with 5 exponent bits, 2 mantissa bits and a bias of
// 15. Like Quarter it follows IEEE 754 conventions, trading precision for a
// range of ±57344.
type E5M2 uint8

const (
	E5M2Zero     E5M2 = 0x00
	E5M2One      E5M2 = 0x3c
	E5M2NaN      E5M2 = 0x7e
	E5M2Inf      E5M2 = 0x7c
	E5M2NegInf   E5M2 = 0xfc
	MaxE5M2      E5M2 = 0x7b // 57344
	MinE5M2      E5M2 = 0xfb // -57344
	SmallestE5M2 E5M2 = 0x01 // 2^-16
)

var e5m2 = newLayout(5, 2, 15, true)

func E5M2FromBits(b uint8) E5M2 { return E5M2(b) }

func (e E5M2) Bits() uint8 { return uint8(e) }

// E5M2FromFloat32 rounds f to the nearest E5M2, ties to even. Values that
// round past MaxE5M2 become infinities.
func E5M2FromFloat32(f float32) E5M2 {
	return E5M2(e5m2.encode(f))
}

func E5M2FromFloat[T constraints.Float](f T) E5M2 {
	return E5M2FromFloat32(float32(f))
}

func E5M2ToFloat[T constraints.Float](e E5M2) T {
	return T(e.Float32())
}

func (e E5M2) Float32() float32 { return e5m2.table[e] }
func (e E5M2) Float64() float64 { return float64(e.Float32()) }

func (e E5M2) IsNaN() bool        { return e5m2.isNaN(uint8(e)) }
func (e E5M2) IsInf() bool        { return e5m2.isInf(uint8(e)) }
func (e E5M2) IsPosInf() bool     { return e == E5M2Inf }
func (e E5M2) IsNegInf() bool     { return e == E5M2NegInf }
func (e E5M2) IsFinite() bool     { return !e.IsNaN() && !e.IsInf() }
func (e E5M2) IsZero() bool       { return e&0x7f == 0 }
func (e E5M2) IsSubnormal() bool  { return e5m2.isSubnormal(uint8(e)) }
func (e E5M2) IsNegative() bool   { return e&0x80 != 0 }
func (e E5M2) Neg() E5M2          { return e ^ 0x80 }
func (e E5M2) Abs() E5M2          { return e &^ 0x80 }
func (e E5M2) Add(f E5M2) E5M2    { return E5M2(e5m2.add(uint8(e), uint8(f))) }
func (e E5M2) Sub(f E5M2) E5M2    { return E5M2(e5m2.sub(uint8(e), uint8(f))) }
func (e E5M2) Mul(f E5M2) E5M2    { return E5M2(e5m2.mul(uint8(e), uint8(f))) }
func (e E5M2) Div(f E5M2) E5M2    { return E5M2(e5m2.div(uint8(e), uint8(f))) }
func (e E5M2) Equal(f E5M2) bool  { return e.Compare(f) == 0 }
func (e E5M2) Compare(f E5M2) int { return e5m2.compare(uint8(e), uint8(f)) }
func (e E5M2) Less(f E5M2) bool   { return e.Compare(f) < 0 }

func (e E5M2) String() string {
	return strconv.FormatFloat(e.Float64(), 'g', -1, 32)
}
