package wide

import (
	"math/big"

	"golang.org/x/exp/constraints"
	"golang.org/x/xerrors"

	"github.com/pfcm/fxnum/internal/limbs"
)

// UInt96 is an unsigned 96 bit integer. The zero value is 0.
type UInt96 struct {
	v limbs.Vec
}

var (
	// MaxUInt96 is 2^96 - 1.
	MaxUInt96 = UInt96{limbs.Max}

	UInt96Zero = UInt96{}
	UInt96One  = UInt96{limbs.Vec{1}}
)

// UInt96From64 zero-extends v.
func UInt96From64(v uint64) UInt96 {
	return UInt96{limbs.FromUint64(v)}
}

// UInt96From converts any native unsigned integer.
func UInt96From[T constraints.Unsigned](v T) UInt96 {
	return UInt96From64(uint64(v))
}

// UInt96FromInt converts a native signed integer, failing with ErrOverflow if
// it is negative.
func UInt96FromInt[T constraints.Signed](v T) (UInt96, error) {
	if v < 0 {
		return UInt96{}, xerrors.Errorf("uint96: %d: %w", v, ErrOverflow)
	}
	return UInt96From64(uint64(v)), nil
}

// UInt96FromBits reinterprets a raw bit pattern. Any pattern is valid.
func UInt96FromBits(hi uint32, lo uint64) UInt96 {
	return UInt96{fromBits(hi, lo)}
}

// UInt96FromBig converts b, failing with ErrOverflow if it is negative or
// needs more than 96 bits.
func UInt96FromBig(b *big.Int) (UInt96, error) {
	if b.Sign() < 0 || b.BitLen() > limbs.Bits {
		return UInt96{}, xerrors.Errorf("uint96: %v: %w", b, ErrOverflow)
	}
	return UInt96{fromBig(b)}, nil
}

// ParseUInt96 parses an unsigned literal. See strconv.ParseUint for the
// meaning of base; underscores are not accepted.
func ParseUInt96(s string, base int) (UInt96, error) {
	mag, _, err := parseMagnitude(s, base, false)
	if err != nil {
		return UInt96{}, xerrors.Errorf("uint96: %w", err)
	}
	return UInt96{mag}, nil
}

// Bits returns the raw bit pattern.
func (x UInt96) Bits() (hi uint32, lo uint64) {
	return toBits(x.v)
}

// Low64 returns the low 64 bits, discarding the rest.
func (x UInt96) Low64() uint64 {
	return x.v.Uint64()
}

// Uint64 narrows x, failing with ErrOverflow if it doesn't fit.
func (x UInt96) Uint64() (uint64, error) {
	if x.v[2] != 0 {
		return 0, xerrors.Errorf("uint96: %v to uint64: %w", x, ErrOverflow)
	}
	return x.v.Uint64(), nil
}

// Int64 narrows x, failing with ErrOverflow if it is above math.MaxInt64.
func (x UInt96) Int64() (int64, error) {
	if x.v[2] != 0 || x.v[1]>>31 != 0 {
		return 0, xerrors.Errorf("uint96: %v to int64: %w", x, ErrOverflow)
	}
	return int64(x.v.Uint64()), nil
}

// Int96 converts x, failing with ErrOverflow if it is above MaxInt96.
func (x UInt96) Int96() (Int96, error) {
	if x.v.Top() {
		return Int96{}, xerrors.Errorf("uint96: %v to int96: %w", x, ErrOverflow)
	}
	return Int96{x.v}, nil
}

// Big returns x as a big.Int.
func (x UInt96) Big() *big.Int {
	return toBig(x.v)
}

func (x UInt96) IsZero() bool { return x.v.IsZero() }

// IsNegative is always false; it exists so both types answer the same
// questions.
func (x UInt96) IsNegative() bool { return false }

// Sign returns 0 or 1.
func (x UInt96) Sign() int {
	if x.IsZero() {
		return 0
	}
	return 1
}

// Cmp returns -1, 0 or 1 as x is less than, equal to or greater than y.
func (x UInt96) Cmp(y UInt96) int {
	return limbs.Cmp(x.v, y.v)
}

func (x UInt96) Less(y UInt96) bool { return x.Cmp(y) < 0 }

func (x UInt96) Add(y UInt96) UInt96 { return UInt96{limbs.Add(x.v, y.v)} }
func (x UInt96) Sub(y UInt96) UInt96 { return UInt96{limbs.Sub(x.v, y.v)} }
func (x UInt96) Mul(y UInt96) UInt96 { return UInt96{limbs.Mul(x.v, y.v)} }

// Neg returns 2^96 - x, the way -x works for uint64.
func (x UInt96) Neg() UInt96 { return UInt96{limbs.Neg(x.v)} }

// QuoRem returns x / y and x % y.
func (x UInt96) QuoRem(y UInt96) (q, r UInt96, err error) {
	if y.IsZero() {
		return UInt96{}, UInt96{}, xerrors.Errorf("uint96: %v / 0: %w", x, ErrDivideByZero)
	}
	qv, rv := limbs.DivMod(x.v, y.v)
	return UInt96{qv}, UInt96{rv}, nil
}

func (x UInt96) Quo(y UInt96) (UInt96, error) {
	q, _, err := x.QuoRem(y)
	return q, err
}

func (x UInt96) Rem(y UInt96) (UInt96, error) {
	_, r, err := x.QuoRem(y)
	return r, err
}

// SAdd is a saturating +, clipping to MaxUInt96.
func (x UInt96) SAdd(y UInt96) UInt96 {
	z, carry := limbs.AddCarry(x.v, y.v)
	if carry != 0 {
		return MaxUInt96
	}
	return UInt96{z}
}

// SSub subtracts y from x, returning zero if the result would underflow.
func (x UInt96) SSub(y UInt96) UInt96 {
	z, borrow := limbs.SubBorrow(x.v, y.v)
	if borrow != 0 {
		return UInt96{}
	}
	return UInt96{z}
}

// SMul is a saturating *, clipping to MaxUInt96.
func (x UInt96) SMul(y UInt96) UInt96 {
	hi, lo := limbs.MulFull(x.v, y.v)
	if !hi.IsZero() {
		return MaxUInt96
	}
	return UInt96{lo}
}

func (x UInt96) And(y UInt96) UInt96    { return UInt96{limbs.And(x.v, y.v)} }
func (x UInt96) Or(y UInt96) UInt96     { return UInt96{limbs.Or(x.v, y.v)} }
func (x UInt96) Xor(y UInt96) UInt96    { return UInt96{limbs.Xor(x.v, y.v)} }
func (x UInt96) AndNot(y UInt96) UInt96 { return UInt96{limbs.AndNot(x.v, y.v)} }
func (x UInt96) Not() UInt96            { return UInt96{limbs.Not(x.v)} }

// Lsh returns x << (n mod 96).
func (x UInt96) Lsh(n uint) UInt96 {
	return UInt96{limbs.Lsh(x.v, shiftAmount(n))}
}

// Rsh returns x >> (n mod 96). For unsigned values this is the same as URsh.
func (x UInt96) Rsh(n uint) UInt96 {
	return UInt96{limbs.Rsh(x.v, shiftAmount(n))}
}

// URsh returns x >>> (n mod 96).
func (x UInt96) URsh(n uint) UInt96 {
	return x.Rsh(n)
}

// RotateLeft rotates x left by k mod 96. Negative k rotates right.
func (x UInt96) RotateLeft(k int) UInt96 {
	return UInt96{limbs.RotateLeft(x.v, k)}
}

// RotateRight rotates x right by k mod 96.
func (x UInt96) RotateRight(k int) UInt96 {
	return UInt96{limbs.RotateLeft(x.v, -(k % limbs.Bits))}
}

// Bit returns bit i mod 96.
func (x UInt96) Bit(i uint) uint {
	return limbs.Bit(x.v, shiftAmount(i))
}

// BitLen is the number of bits needed to represent x.
func (x UInt96) BitLen() int {
	return limbs.Len(x.v)
}

func (x UInt96) OnesCount() int {
	return limbs.OnesCount(x.v)
}

func (x UInt96) String() string {
	return x.Text(10)
}

// Text formats x in the given base, which must be in [2, 36].
func (x UInt96) Text(base int) string {
	checkBase(base)
	return limbs.Format(x.v, base)
}
