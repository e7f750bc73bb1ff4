package mini

import (
	"strconv"

	"golang.org/x/exp/constraints"
)

// Quarter is an 8 bit float with 4 exponent bits, 3 mantissa bits and a bias
// of 7, following IEEE 754 conventions: exponent 0 is subnormal, and the all
// ones exponent holds the infinities and NaNs. It covers ±240, down to
// 2^-9 in the subnormals.
type Quarter uint8

const (
	QuarterZero     Quarter = 0x00
	QuarterOne      Quarter = 0x38
	QuarterNaN      Quarter = 0x7c
	QuarterInf      Quarter = 0x78
	QuarterNegInf   Quarter = 0xf8
	MaxQuarter      Quarter = 0x77 // 240
	MinQuarter      Quarter = 0xf7 // -240
	SmallestQuarter Quarter = 0x01 // 2^-9
)

var quarter = newLayout(4, 3, 7, true)

// QuarterFromBits reinterprets b. Every pattern is a valid Quarter.
func QuarterFromBits(b uint8) Quarter { return Quarter(b) }

func (q Quarter) Bits() uint8 { return uint8(q) }

// QuarterFromFloat32 rounds f to the nearest Quarter, ties to even. Values
// that round past MaxQuarter become infinities.
func QuarterFromFloat32(f float32) Quarter {
	return Quarter(quarter.encode(f))
}

// QuarterFromFloat converts any float, going through float32.
func QuarterFromFloat[T constraints.Float](f T) Quarter {
	return QuarterFromFloat32(float32(f))
}

// QuarterToFloat converts q to any float type. It is exact.
func QuarterToFloat[T constraints.Float](q Quarter) T {
	return T(q.Float32())
}

func (q Quarter) Float32() float32 { return quarter.table[q] }
func (q Quarter) Float64() float64 { return float64(q.Float32()) }

func (q Quarter) IsNaN() bool       { return quarter.isNaN(uint8(q)) }
func (q Quarter) IsInf() bool       { return quarter.isInf(uint8(q)) }
func (q Quarter) IsPosInf() bool    { return q == QuarterInf }
func (q Quarter) IsNegInf() bool    { return q == QuarterNegInf }
func (q Quarter) IsFinite() bool    { return !q.IsNaN() && !q.IsInf() }
func (q Quarter) IsZero() bool      { return q&0x7f == 0 }
func (q Quarter) IsSubnormal() bool { return quarter.isSubnormal(uint8(q)) }

// IsNegative reports whether the sign bit is set, like math.Signbit.
func (q Quarter) IsNegative() bool { return q&0x80 != 0 }

// Neg flips the sign bit, so it works for every value including NaN.
func (q Quarter) Neg() Quarter { return q ^ 0x80 }
func (q Quarter) Abs() Quarter { return q &^ 0x80 }

func (q Quarter) Add(r Quarter) Quarter { return Quarter(quarter.add(uint8(q), uint8(r))) }
func (q Quarter) Sub(r Quarter) Quarter { return Quarter(quarter.sub(uint8(q), uint8(r))) }
func (q Quarter) Mul(r Quarter) Quarter { return Quarter(quarter.mul(uint8(q), uint8(r))) }
func (q Quarter) Div(r Quarter) Quarter { return Quarter(quarter.div(uint8(q), uint8(r))) }

// Equal reports whether q and r are the same number. Unlike float32, any NaN
// is equal to any other NaN, and +0 equals -0.
func (q Quarter) Equal(r Quarter) bool { return q.Compare(r) == 0 }

// Compare returns -1, 0 or 1. NaNs sort below every number.
func (q Quarter) Compare(r Quarter) int { return quarter.compare(uint8(q), uint8(r)) }

func (q Quarter) Less(r Quarter) bool { return q.Compare(r) < 0 }

func (q Quarter) String() string {
	return strconv.FormatFloat(q.Float64(), 'g', -1, 32)
}
