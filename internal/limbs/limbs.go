// package limbs is the multi-word arithmetic behind the 96 bit integer types.
// A Vec is three 32 bit limbs, least significant first, and everything in here
// treats it as an unsigned number modulo 2^96. Signedness is left to callers,
// apart from Sar which needs to know where the sign bit is.
package limbs

import "math/bits"

const (
	// N is the number of limbs in a Vec.
	N = 3
	// W is the width of a single limb in bits.
	W = 32
	// Bits is the width of a Vec in bits.
	Bits = N * W
)

// Vec is a 96 bit pattern stored as N limbs, least significant first.
type Vec [N]uint32

// Max has every bit set.
var Max = Vec{^uint32(0), ^uint32(0), ^uint32(0)}

// FromUint64 zero-extends v.
func FromUint64(v uint64) Vec {
	return Vec{uint32(v), uint32(v >> 32), 0}
}

// FromInt64 sign-extends v.
func FromInt64(v int64) Vec {
	var top uint32
	if v < 0 {
		top = ^uint32(0)
	}
	return Vec{uint32(v), uint32(uint64(v) >> 32), top}
}

// Uint64 returns the low 64 bits of x.
func (x Vec) Uint64() uint64 {
	return uint64(x[1])<<32 | uint64(x[0])
}

func (x Vec) IsZero() bool {
	return x[0]|x[1]|x[2] == 0
}

// Top reports whether bit 95 is set.
func (x Vec) Top() bool {
	return x[N-1]>>(W-1) != 0
}

func And(x, y Vec) Vec    { return Vec{x[0] & y[0], x[1] & y[1], x[2] & y[2]} }
func Or(x, y Vec) Vec     { return Vec{x[0] | y[0], x[1] | y[1], x[2] | y[2]} }
func Xor(x, y Vec) Vec    { return Vec{x[0] ^ y[0], x[1] ^ y[1], x[2] ^ y[2]} }
func AndNot(x, y Vec) Vec { return Vec{x[0] &^ y[0], x[1] &^ y[1], x[2] &^ y[2]} }
func Not(x Vec) Vec       { return Vec{^x[0], ^x[1], ^x[2]} }

// AddCarry returns x + y and the carry out of the top limb.
func AddCarry(x, y Vec) (z Vec, carry uint32) {
	for i := range z {
		z[i], carry = bits.Add32(x[i], y[i], carry)
	}
	return z, carry
}

// Add returns x + y mod 2^96.
func Add(x, y Vec) Vec {
	z, _ := AddCarry(x, y)
	return z
}

// SubBorrow returns x - y and the borrow out of the top limb, which is 1
// exactly when x < y.
func SubBorrow(x, y Vec) (z Vec, borrow uint32) {
	for i := range z {
		z[i], borrow = bits.Sub32(x[i], y[i], borrow)
	}
	return z, borrow
}

// Sub returns x - y mod 2^96.
func Sub(x, y Vec) Vec {
	z, _ := SubBorrow(x, y)
	return z
}

// Neg returns the two's complement of x.
func Neg(x Vec) Vec {
	return Sub(Vec{}, x)
}

// Mul returns the low 96 bits of x * y.
func Mul(x, y Vec) Vec {
	var z Vec
	for i := 0; i < N; i++ {
		var carry uint32
		for j := 0; i+j < N; j++ {
			z[i+j], carry = mulAdd(x[i], y[j], z[i+j], carry)
		}
	}
	return z
}

// MulFull returns the full 192 bit product x * y as two Vecs.
func MulFull(x, y Vec) (hi, lo Vec) {
	var z [2 * N]uint32
	for i := 0; i < N; i++ {
		var carry uint32
		for j := 0; j < N; j++ {
			z[i+j], carry = mulAdd(x[i], y[j], z[i+j], carry)
		}
		z[i+N] = carry
	}
	copy(lo[:], z[:N])
	copy(hi[:], z[N:])
	return hi, lo
}

// mulAdd computes x*y + a + c, returning the low limb and the carry. It can't
// overflow: (2^32-1)^2 + 2(2^32-1) = 2^64-1.
func mulAdd(x, y, a, c uint32) (z, carry uint32) {
	hi, lo := bits.Mul32(x, y)
	lo, cc := bits.Add32(lo, a, 0)
	hi += cc
	lo, cc = bits.Add32(lo, c, 0)
	hi += cc
	return lo, hi
}

// MulAddWord returns x*y + a and whatever spilled past the top limb.
func MulAddWord(x Vec, y, a uint32) (z Vec, carry uint32) {
	carry = a
	for i := range z {
		z[i], carry = mulAdd(x[i], y, 0, carry)
	}
	return z, carry
}

// DivWord divides x by a single limb. y must not be zero.
func DivWord(x Vec, y uint32) (q Vec, r uint32) {
	for i := N - 1; i >= 0; i-- {
		// r < y always holds here, so Div32 can't panic on overflow.
		q[i], r = bits.Div32(r, x[i], y)
	}
	return q, r
}

// DivMod returns the quotient and remainder of x / y, both unsigned. y must
// not be zero.
func DivMod(x, y Vec) (q, r Vec) {
	if y[1] == 0 && y[2] == 0 {
		q, rw := DivWord(x, y[0])
		return q, Vec{rw}
	}
	if Cmp(x, y) < 0 {
		return Vec{}, x
	}
	// Long division, one quotient bit per step from the top of x down. The
	// partial remainder is always < y, but 2r+1 can need a 97th bit when y
	// is above 2^95, so the shifted-out bit is kept in top.
	for i := Len(x) - 1; i >= 0; i-- {
		top := r.Top()
		r = Lsh(r, 1)
		r[0] |= uint32(Bit(x, uint(i)))
		if top || Cmp(r, y) >= 0 {
			r = Sub(r, y)
			q[i/W] |= 1 << (i % W)
		}
	}
	return q, r
}

// Cmp compares x and y as unsigned numbers.
func Cmp(x, y Vec) int {
	for i := N - 1; i >= 0; i-- {
		switch {
		case x[i] < y[i]:
			return -1
		case x[i] > y[i]:
			return 1
		}
	}
	return 0
}

// Len is the number of bits needed to represent x; 0 for 0.
func Len(x Vec) int {
	for i := N - 1; i >= 0; i-- {
		if x[i] != 0 {
			return i*W + bits.Len32(x[i])
		}
	}
	return 0
}

func OnesCount(x Vec) int {
	return bits.OnesCount32(x[0]) + bits.OnesCount32(x[1]) + bits.OnesCount32(x[2])
}

// Bit returns bit i of x. i must be < Bits.
func Bit(x Vec, i uint) uint {
	return uint(x[i/W]>>(i%W)) & 1
}

// Lsh returns x << n, which is zero for n >= Bits.
func Lsh(x Vec, n uint) Vec {
	var z Vec
	if n >= Bits {
		return z
	}
	k, s := int(n/W), n%W
	for i := N - 1; i >= k; i-- {
		z[i] = x[i-k] << s
		if s > 0 && i-k > 0 {
			z[i] |= x[i-k-1] >> (W - s)
		}
	}
	return z
}

// Rsh returns the logical shift x >> n, which is zero for n >= Bits.
func Rsh(x Vec, n uint) Vec {
	var z Vec
	if n >= Bits {
		return z
	}
	k, s := int(n/W), n%W
	for i := 0; i+k < N; i++ {
		z[i] = x[i+k] >> s
		if s > 0 && i+k+1 < N {
			z[i] |= x[i+k+1] << (W - s)
		}
	}
	return z
}

// Sar is the arithmetic shift x >> n, copying bit 95 into the vacated bits.
func Sar(x Vec, n uint) Vec {
	if !x.Top() {
		return Rsh(x, n)
	}
	// For negative x, floor(x / 2^n) = ^(^x >> n).
	return Not(Rsh(Not(x), n))
}

// RotateLeft rotates x left by k mod Bits. Negative k rotates right.
func RotateLeft(x Vec, k int) Vec {
	n := uint(((k % Bits) + Bits) % Bits)
	if n == 0 {
		return x
	}
	return Or(Lsh(x, n), Rsh(x, Bits-n))
}
