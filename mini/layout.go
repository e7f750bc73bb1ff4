package mini

import (
	"math"
	"math/bits"
)

// layout describes one 8 bit format: a sign bit, expBits of exponent and
// mantBits of mantissa, from the top down.
type layout struct {
	expBits  uint
	mantBits uint
	bias     int
	// ieee layouts reserve the top exponent for infinities (mantissa 0) and
	// NaNs (anything else). The others have no infinities and only the all
	// ones exponent and mantissa is NaN, which leaves room for one more
	// binade of normal values.
	ieee bool

	// table holds the decoded value of every bit pattern.
	table [256]float32
}

func newLayout(expBits, mantBits uint, bias int, ieee bool) *layout {
	l := &layout{
		expBits:  expBits,
		mantBits: mantBits,
		bias:     bias,
		ieee:     ieee,
	}
	for i := range l.table {
		l.table[i] = l.decode(uint8(i))
	}
	return l
}

func (l *layout) expMask() uint8  { return 1<<l.expBits - 1 }
func (l *layout) mantMask() uint8 { return 1<<l.mantBits - 1 }

// minExp is the exponent of the smallest normal value, which subnormals
// share.
func (l *layout) minExp() int { return 1 - l.bias }

// fields splits b into its three parts, without applying any bias.
func (l *layout) fields(b uint8) (sign, exp, mant uint8) {
	return b >> 7, (b >> l.mantBits) & l.expMask(), b & l.mantMask()
}

func (l *layout) isNaN(b uint8) bool {
	_, e, m := l.fields(b)
	if e != l.expMask() {
		return false
	}
	if l.ieee {
		return m != 0
	}
	return m == l.mantMask()
}

func (l *layout) isInf(b uint8) bool {
	_, e, m := l.fields(b)
	return l.ieee && e == l.expMask() && m == 0
}

func (l *layout) isSubnormal(b uint8) bool {
	_, e, m := l.fields(b)
	return e == 0 && m != 0
}

// maxFinite is the largest positive finite pattern.
func (l *layout) maxFinite() uint8 {
	if l.ieee {
		return (l.expMask()-1)<<l.mantBits | l.mantMask()
	}
	return l.expMask()<<l.mantBits | (l.mantMask() - 1)
}

// nan is the positive canonical NaN: quiet for ieee layouts.
func (l *layout) nan() uint8 {
	if l.ieee {
		return l.expMask()<<l.mantBits | 1<<(l.mantBits-1)
	}
	return l.expMask()<<l.mantBits | l.mantMask()
}

// overflow is what a positive magnitude too large for the format becomes:
// infinity where there is one, the largest finite value otherwise.
func (l *layout) overflow() uint8 {
	if l.ieee {
		return l.expMask() << l.mantBits
	}
	return l.maxFinite()
}

func (l *layout) decode(b uint8) float32 {
	sign, e, m := l.fields(b)
	var f float64
	switch {
	case l.isNaN(b):
		f = math.NaN()
	case l.isInf(b):
		f = math.Inf(1)
	case e == 0:
		f = math.Ldexp(float64(m), l.minExp()-int(l.mantBits))
	default:
		f = math.Ldexp(float64(1<<l.mantBits|m), int(e)-l.bias-int(l.mantBits))
	}
	if sign != 0 {
		f = -f
	}
	return float32(f)
}

// encode rounds x to the nearest representable value, ties to even. NaNs
// become the canonical NaN and anything too large becomes overflow(), both
// keeping the sign of x.
func (l *layout) encode(x float32) uint8 {
	b := math.Float32bits(x)
	sign := uint8(b>>24) & 0x80
	exp := int(b>>23) & 0xff
	frac := b & (1<<23 - 1)
	switch {
	case exp == 0xff && frac != 0:
		return sign | l.nan()
	case exp == 0xff:
		return sign | l.overflow()
	case exp == 0 && frac == 0:
		return sign
	}

	// |x| = sig * 2^(e-23).
	sig, e := frac|1<<23, exp-127
	if exp == 0 {
		sig, e = frac, -126
	}
	m := int(l.mantBits)
	// top is the exponent of the leading bit of x and q is the exponent the
	// result is scaled to, which can't go below the subnormal range.
	top := e + bits.Len32(sig) - 24
	q := max(top, l.minExp())
	// shift is the number of bits of sig below the last mantissa bit of the
	// result. Anything past 25 is under half the smallest subnormal.
	shift := (q - m) - (e - 23)
	if shift > 25 {
		return sign
	}
	r := sig >> shift
	rem := sig & (1<<shift - 1)
	half := uint32(1) << shift >> 1
	if rem > half || (rem == half && half != 0 && r&1 == 1) {
		r++
	}
	if r == 1<<(m+1) {
		// Rounded up into the next binade.
		r >>= 1
		q++
	}
	if r < 1<<m {
		return sign | uint8(r)
	}
	be := q + l.bias
	if be > int(l.expMask()) {
		return sign | l.overflow()
	}
	code := uint8(be)<<m | uint8(r)&l.mantMask()
	if code > l.maxFinite() {
		return sign | l.overflow()
	}
	return sign | code
}

func (l *layout) add(a, b uint8) uint8 { return l.encode(l.table[a] + l.table[b]) }
func (l *layout) sub(a, b uint8) uint8 { return l.encode(l.table[a] - l.table[b]) }
func (l *layout) mul(a, b uint8) uint8 { return l.encode(l.table[a] * l.table[b]) }
func (l *layout) div(a, b uint8) uint8 { return l.encode(l.table[a] / l.table[b]) }

// compare orders NaN below everything else and equal to itself. Otherwise it
// follows the decoded values, so -0 and +0 are equal.
func (l *layout) compare(a, b uint8) int {
	an, bn := l.isNaN(a), l.isNaN(b)
	switch {
	case an && bn:
		return 0
	case an:
		return -1
	case bn:
		return 1
	}
	fa, fb := l.table[a], l.table[b]
	switch {
	case fa < fb:
		return -1
	case fa > fb:
		return 1
	}
	return 0
}
