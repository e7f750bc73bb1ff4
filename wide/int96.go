package wide

import (
	"math/big"

	"golang.org/x/exp/constraints"
	"golang.org/x/xerrors"

	"github.com/pfcm/fxnum/internal/limbs"
)

// Int96 is a signed two's complement 96 bit integer. The zero value is 0.
type Int96 struct {
	v limbs.Vec
}

var (
	// MaxInt96 is 2^95 - 1.
	MaxInt96 = Int96{limbs.Vec{^uint32(0), ^uint32(0), 1<<31 - 1}}
	// MinInt96 is -2^95.
	MinInt96 = Int96{signBit}

	Int96Zero = Int96{}
	Int96One  = Int96{limbs.Vec{1}}
)

// Int96From64 sign-extends v.
func Int96From64(v int64) Int96 {
	return Int96{limbs.FromInt64(v)}
}

// Int96From converts any native integer. Every native integer fits, so this
// can't fail.
func Int96From[T constraints.Integer](v T) Int96 {
	if v < 0 {
		return Int96From64(int64(v))
	}
	return Int96{limbs.FromUint64(uint64(v))}
}

// Int96FromBits reinterprets a raw bit pattern. Any pattern is valid.
func Int96FromBits(hi uint32, lo uint64) Int96 {
	return Int96{fromBits(hi, lo)}
}

// Int96FromBig converts b, failing with ErrOverflow if it is outside
// [MinInt96, MaxInt96].
func Int96FromBig(b *big.Int) (Int96, error) {
	if b.Cmp(MinInt96.Big()) < 0 || b.Cmp(MaxInt96.Big()) > 0 {
		return Int96{}, xerrors.Errorf("int96: %v: %w", b, ErrOverflow)
	}
	if b.Sign() < 0 {
		return Int96{limbs.Neg(fromBig(new(big.Int).Neg(b)))}, nil
	}
	return Int96{fromBig(b)}, nil
}

// ParseInt96 parses a literal with an optional sign. See strconv.ParseInt for
// the meaning of base; underscores are not accepted.
func ParseInt96(s string, base int) (Int96, error) {
	mag, neg, err := parseMagnitude(s, base, true)
	if err != nil {
		return Int96{}, xerrors.Errorf("int96: %w", err)
	}
	limit := limbs.Sub(signBit, limbs.Vec{1})
	if neg {
		limit = signBit
	}
	if limbs.Cmp(mag, limit) > 0 {
		return Int96{}, xerrors.Errorf("int96: parsing %q: %w", s, ErrOverflow)
	}
	if neg {
		mag = limbs.Neg(mag)
	}
	return Int96{mag}, nil
}

// Bits returns the raw bit pattern.
func (x Int96) Bits() (hi uint32, lo uint64) {
	return toBits(x.v)
}

// Low64 returns the low 64 bits, discarding the rest.
func (x Int96) Low64() uint64 {
	return x.v.Uint64()
}

// Int64 narrows x, failing with ErrOverflow if it doesn't fit.
func (x Int96) Int64() (int64, error) {
	// It fits if the top limb is just the sign extension of bit 63.
	if x.v[2] != uint32(int32(x.v[1])>>31) {
		return 0, xerrors.Errorf("int96: %v to int64: %w", x, ErrOverflow)
	}
	return int64(x.v.Uint64()), nil
}

// Uint64 narrows x, failing with ErrOverflow if it is negative or too big.
func (x Int96) Uint64() (uint64, error) {
	if x.v[2] != 0 {
		return 0, xerrors.Errorf("int96: %v to uint64: %w", x, ErrOverflow)
	}
	return x.v.Uint64(), nil
}

// UInt96 converts x, failing with ErrOverflow if it is negative.
func (x Int96) UInt96() (UInt96, error) {
	if x.IsNegative() {
		return UInt96{}, xerrors.Errorf("int96: %v to uint96: %w", x, ErrOverflow)
	}
	return UInt96{x.v}, nil
}

// Big returns x as a big.Int.
func (x Int96) Big() *big.Int {
	if x.IsNegative() {
		return new(big.Int).Neg(toBig(limbs.Neg(x.v)))
	}
	return toBig(x.v)
}

func (x Int96) IsZero() bool     { return x.v.IsZero() }
func (x Int96) IsNegative() bool { return x.v.Top() }

// Sign returns -1, 0 or 1.
func (x Int96) Sign() int {
	switch {
	case x.IsNegative():
		return -1
	case x.IsZero():
		return 0
	}
	return 1
}

// Cmp returns -1, 0 or 1 as x is less than, equal to or greater than y.
func (x Int96) Cmp(y Int96) int {
	xn, yn := x.IsNegative(), y.IsNegative()
	switch {
	case xn && !yn:
		return -1
	case !xn && yn:
		return 1
	}
	// Same sign, so the two's complement patterns order like the values.
	return limbs.Cmp(x.v, y.v)
}

func (x Int96) Less(y Int96) bool { return x.Cmp(y) < 0 }

// magnitude is |x| as an unsigned pattern; fine for MinInt96 too.
func (x Int96) magnitude() limbs.Vec {
	if x.IsNegative() {
		return limbs.Neg(x.v)
	}
	return x.v
}

func (x Int96) Add(y Int96) Int96 { return Int96{limbs.Add(x.v, y.v)} }
func (x Int96) Sub(y Int96) Int96 { return Int96{limbs.Sub(x.v, y.v)} }
func (x Int96) Mul(y Int96) Int96 { return Int96{limbs.Mul(x.v, y.v)} }
func (x Int96) Neg() Int96        { return Int96{limbs.Neg(x.v)} }

// Abs returns |x|. Abs(MinInt96) wraps to MinInt96.
func (x Int96) Abs() Int96 {
	return Int96{x.magnitude()}
}

// QuoRem returns the quotient truncated towards zero and the remainder, which
// takes the sign of x. MinInt96.Quo(-1) wraps to MinInt96.
func (x Int96) QuoRem(y Int96) (q, r Int96, err error) {
	if y.IsZero() {
		return Int96{}, Int96{}, xerrors.Errorf("int96: %v / 0: %w", x, ErrDivideByZero)
	}
	qm, rm := limbs.DivMod(x.magnitude(), y.magnitude())
	if x.IsNegative() != y.IsNegative() {
		qm = limbs.Neg(qm)
	}
	if x.IsNegative() {
		rm = limbs.Neg(rm)
	}
	return Int96{qm}, Int96{rm}, nil
}

// Quo returns x / y truncated towards zero.
func (x Int96) Quo(y Int96) (Int96, error) {
	q, _, err := x.QuoRem(y)
	return q, err
}

// Rem returns x % y, with the sign of x.
func (x Int96) Rem(y Int96) (Int96, error) {
	_, r, err := x.QuoRem(y)
	return r, err
}

// clampInt96 returns the limit in the direction of the sign.
func clampInt96(negative bool) Int96 {
	if negative {
		return MinInt96
	}
	return MaxInt96
}

// SAdd is a saturating +, clipping to MinInt96 or MaxInt96.
func (x Int96) SAdd(y Int96) Int96 {
	z := x.Add(y)
	// Overflow only happens when x and y share a sign and z doesn't.
	if x.IsNegative() == y.IsNegative() && z.IsNegative() != x.IsNegative() {
		return clampInt96(x.IsNegative())
	}
	return z
}

// SSub is a saturating -, clipping to MinInt96 or MaxInt96.
func (x Int96) SSub(y Int96) Int96 {
	z := x.Sub(y)
	if x.IsNegative() != y.IsNegative() && z.IsNegative() != x.IsNegative() {
		return clampInt96(x.IsNegative())
	}
	return z
}

// SMul is a saturating *, clipping to MinInt96 or MaxInt96.
func (x Int96) SMul(y Int96) Int96 {
	neg := x.IsNegative() != y.IsNegative()
	hi, lo := limbs.MulFull(x.magnitude(), y.magnitude())
	if !hi.IsZero() {
		return clampInt96(neg)
	}
	// A negative result may reach 2^95, a positive one stops just short.
	if c := limbs.Cmp(lo, signBit); c > 0 || (c == 0 && !neg) {
		return clampInt96(neg)
	}
	if neg {
		return Int96{limbs.Neg(lo)}
	}
	return Int96{lo}
}

func (x Int96) And(y Int96) Int96    { return Int96{limbs.And(x.v, y.v)} }
func (x Int96) Or(y Int96) Int96     { return Int96{limbs.Or(x.v, y.v)} }
func (x Int96) Xor(y Int96) Int96    { return Int96{limbs.Xor(x.v, y.v)} }
func (x Int96) AndNot(y Int96) Int96 { return Int96{limbs.AndNot(x.v, y.v)} }
func (x Int96) Not() Int96           { return Int96{limbs.Not(x.v)} }

// Lsh returns x << (n mod 96).
func (x Int96) Lsh(n uint) Int96 {
	return Int96{limbs.Lsh(x.v, shiftAmount(n))}
}

// Rsh is the arithmetic shift x >> (n mod 96), copying the sign bit down.
func (x Int96) Rsh(n uint) Int96 {
	return Int96{limbs.Sar(x.v, shiftAmount(n))}
}

// URsh is the logical shift x >>> (n mod 96), filling the top with zeros. For
// negative x and n in [1, 95] the result is non-negative and differs from Rsh.
func (x Int96) URsh(n uint) Int96 {
	return Int96{limbs.Rsh(x.v, shiftAmount(n))}
}

// RotateLeft rotates the bit pattern left by k mod 96. Negative k rotates
// right.
func (x Int96) RotateLeft(k int) Int96 {
	return Int96{limbs.RotateLeft(x.v, k)}
}

// RotateRight rotates the bit pattern right by k mod 96.
func (x Int96) RotateRight(k int) Int96 {
	return Int96{limbs.RotateLeft(x.v, -(k % limbs.Bits))}
}

// Bit returns bit i mod 96 of the two's complement pattern.
func (x Int96) Bit(i uint) uint {
	return limbs.Bit(x.v, shiftAmount(i))
}

// BitLen is the length of |x| in bits, like big.Int.BitLen.
func (x Int96) BitLen() int {
	return limbs.Len(x.magnitude())
}

// OnesCount is the number of set bits in the two's complement pattern.
func (x Int96) OnesCount() int {
	return limbs.OnesCount(x.v)
}

func (x Int96) String() string {
	return x.Text(10)
}

// Text formats x in the given base, which must be in [2, 36].
func (x Int96) Text(base int) string {
	checkBase(base)
	s := limbs.Format(x.magnitude(), base)
	if x.IsNegative() {
		return "-" + s
	}
	return s
}
