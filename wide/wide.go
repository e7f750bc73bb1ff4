// package wide provides 96 bit integers, signed (Int96) and unsigned (UInt96).
//
// Both are immutable values: every method returns a new value and none of them
// allocate unless they fail. Add, Sub, Mul, Neg and Lsh wrap around on
// overflow the same way int64 and uint64 do; the S-prefixed variants (SAdd,
// SSub, SMul) saturate instead. Anything that can't produce a correct answer,
// such as dividing by zero or narrowing a value that doesn't fit, returns an
// error rather than a truncated result.
//
// Shift amounts are taken modulo 96 and rotations modulo 96 in either
// direction, so every shift and rotation is defined.
package wide

import (
	"encoding/binary"
	"errors"
	"math/big"

	"golang.org/x/xerrors"

	"github.com/pfcm/fxnum/internal/limbs"
)

var (
	// ErrDivideByZero is returned by Quo, Rem and QuoRem for a zero divisor.
	ErrDivideByZero = errors.New("division by zero")
	// ErrOverflow is returned when a value doesn't fit the target type.
	ErrOverflow = errors.New("value out of range")
	// ErrSyntax is returned when a literal can't be parsed.
	ErrSyntax = errors.New("invalid syntax")
)

// Width is the number of bits in both types.
const Width = limbs.Bits

// signBit is 2^95, the magnitude of MinInt96.
var signBit = limbs.Vec{0, 0, 1 << 31}

func shiftAmount(n uint) uint {
	return n % limbs.Bits
}

func fromBits(hi uint32, lo uint64) limbs.Vec {
	return limbs.Vec{uint32(lo), uint32(lo >> 32), hi}
}

func toBits(v limbs.Vec) (hi uint32, lo uint64) {
	return v[2], v.Uint64()
}

// parseMagnitude reads an unsigned number from s. base 0 picks the base from
// the prefix the way Go literals do: 0x, 0o, 0b, or a bare leading 0 for
// octal. A leading sign is only accepted when signed is set.
func parseMagnitude(s string, base int, signed bool) (mag limbs.Vec, neg bool, err error) {
	orig := s
	if s == "" {
		return mag, false, xerrors.Errorf("parsing %q: %w", orig, ErrSyntax)
	}
	if signed && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	switch {
	case base == 0:
		base = 10
		if len(s) > 1 && s[0] == '0' {
			switch s[1] {
			case 'x', 'X':
				base, s = 16, s[2:]
			case 'o', 'O':
				base, s = 8, s[2:]
			case 'b', 'B':
				base, s = 2, s[2:]
			default:
				base, s = 8, s[1:]
			}
		}
	case base < 2 || base > 36:
		return mag, false, xerrors.Errorf("parsing %q: invalid base %d: %w", orig, base, ErrSyntax)
	}
	if s == "" {
		return mag, false, xerrors.Errorf("parsing %q: %w", orig, ErrSyntax)
	}
	overflow := false
	for i := 0; i < len(s); i++ {
		d := limbs.Digit(s[i])
		if int(d) >= base {
			return limbs.Vec{}, false, xerrors.Errorf("parsing %q: %w", orig, ErrSyntax)
		}
		var carry uint32
		mag, carry = limbs.MulAddWord(mag, uint32(base), uint32(d))
		// Keep going after an overflow so syntax errors still win.
		overflow = overflow || carry != 0
	}
	if overflow {
		return limbs.Vec{}, false, xerrors.Errorf("parsing %q: %w", orig, ErrOverflow)
	}
	return mag, neg, nil
}

// toBig converts an unsigned pattern.
func toBig(v limbs.Vec) *big.Int {
	var buf [limbs.N * 4]byte
	for i := 0; i < limbs.N; i++ {
		binary.BigEndian.PutUint32(buf[4*(limbs.N-1-i):], v[i])
	}
	return new(big.Int).SetBytes(buf[:])
}

// fromBig converts b, which must be in [0, 2^96).
func fromBig(b *big.Int) limbs.Vec {
	var buf [limbs.N * 4]byte
	b.FillBytes(buf[:])
	var v limbs.Vec
	for i := 0; i < limbs.N; i++ {
		v[i] = binary.BigEndian.Uint32(buf[4*(limbs.N-1-i):])
	}
	return v
}

func checkBase(base int) {
	if base < 2 || base > 36 {
		panic(xerrors.Errorf("wide: invalid base %d", base))
	}
}
