// package mini provides 8 bit floating point types. They all share one
// encoder and decoder, parameterised by the field widths, the exponent bias
// and whether the top exponent is reserved for infinities.
//
// Decoding is a table lookup and is exact. Encoding from a float32 rounds to
// nearest with ties to even and never fails: magnitudes past the largest
// finite value become infinities for formats that have them and clamp to the
// largest finite value for those that don't.
//
// Arithmetic decodes both operands, computes in float32 and encodes the
// result. Equality and ordering treat every NaN as equal to every other NaN
// and less than any number, so the types can be sorted and compared with ==
// semantics that hold up.
package mini

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/xerrors"
)

// ErrUnknownKind is returned by ParseKind for a name it doesn't recognise.
var ErrUnknownKind = errors.New("unknown mini float kind")

// Kind names one of the formats, for code that picks a format at run time.
type Kind uint8

const (
	KindQuarter Kind = iota + 1
	KindE4M3
	KindE5M2
)

var (
	kindToString = [...]string{
		KindQuarter: "quarter",
		KindE4M3:    "e4m3",
		KindE5M2:    "e5m2",
	}
	kindToLayout = [...]*layout{
		KindQuarter: quarter,
		KindE4M3:    e4m3,
		KindE5M2:    e5m2,
	}
)

// Kinds returns every valid Kind.
func Kinds() []Kind {
	return []Kind{KindQuarter, KindE4M3, KindE5M2}
}

// Validate returns an error if k isn't one of the defined kinds.
func (k Kind) Validate() error {
	if k == 0 || int(k) >= len(kindToString) {
		return fmt.Errorf("invalid Kind(%d)", k)
	}
	return nil
}

func (k Kind) String() string {
	if err := k.Validate(); err != nil {
		return err.Error()
	}
	return kindToString[k]
}

// ParseKind is the inverse of String, ignoring case.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds() {
		if strings.EqualFold(s, kindToString[k]) {
			return k, nil
		}
	}
	return 0, xerrors.Errorf("parsing %q: %w", s, ErrUnknownKind)
}

func (k Kind) layout() *layout {
	if err := k.Validate(); err != nil {
		panic(err)
	}
	return kindToLayout[k]
}

// Decode returns the value of the bit pattern b.
func (k Kind) Decode(b uint8) float32 { return k.layout().table[b] }

// Encode rounds f to the nearest bit pattern, the same way the typed
// conversions do.
func (k Kind) Encode(f float32) uint8 { return k.layout().encode(f) }

func (k Kind) Add(a, b uint8) uint8 { return k.layout().add(a, b) }
func (k Kind) Sub(a, b uint8) uint8 { return k.layout().sub(a, b) }
func (k Kind) Mul(a, b uint8) uint8 { return k.layout().mul(a, b) }
func (k Kind) Div(a, b uint8) uint8 { return k.layout().div(a, b) }

// Compare orders two patterns of this kind, see Quarter.Compare.
func (k Kind) Compare(a, b uint8) int { return k.layout().compare(a, b) }

// Max returns the largest finite bit pattern.
func (k Kind) Max() uint8 { return k.layout().maxFinite() }

// HasInf reports whether the format has infinities.
func (k Kind) HasInf() bool { return k.layout().ieee }

// Describe shows the fields of b next to its value, for example
// "0 0111 000 (1)".
func (k Kind) Describe(b uint8) string {
	l := k.layout()
	sign, exp, mant := l.fields(b)
	var class string
	switch {
	case l.isNaN(b):
		class = " nan"
	case l.isInf(b):
		class = " inf"
	case l.isSubnormal(b):
		class = " sub"
	}
	return fmt.Sprintf("%d %0*b %0*b (%s)%s",
		sign,
		int(l.expBits), exp,
		int(l.mantBits), mant,
		strconv.FormatFloat(float64(l.table[b]), 'g', -1, 32),
		class)
}
