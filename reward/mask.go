package reward

import (
	"math/bits"
	"strconv"
	"strings"
)

// Mask is a set of activated scored locations, one bit per Scored.Bit.
type Mask uint64

// Has reports whether bit b is set.
func (m Mask) Has(b uint) bool { return m&(1<<b) != 0 }

// With returns m with bit b set.
func (m Mask) With(b uint) Mask { return m | 1<<b }

// Disjoint reports whether m and o share no activated location.
func (m Mask) Disjoint(o Mask) bool { return m&o == 0 }

// Count returns the number of activated locations.
func (m Mask) Count() int { return bits.OnesCount64(uint64(m)) }

// Bits returns the set bit positions in ascending order.
func (m Mask) Bits() []uint {
	out := make([]uint, 0, m.Count())
	for v := uint64(m); v != 0; v &= v - 1 {
		out = append(out, uint(bits.TrailingZeros64(v)))
	}

	return out
}

// String renders the mask as "{0,3,5}".
func (m Mask) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, b := range m.Bits() {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatUint(uint64(b), 10))
	}
	sb.WriteByte('}')

	return sb.String()
}
