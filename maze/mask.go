package maze

import (
	"strings"

	"github.com/teivah/bitvector"
)

// Mask is the set of open walls of one cell. The zero Mask has every wall
// closed. Bits are only ever added while carving.
type Mask uint8

// Has reports whether the passage towards d is open.
func (m Mask) Has(d Direction) bool {
	if !d.IsValid() {
		return false
	}

	return bitvector.Len8(m).Get(d.index())
}

// With returns m with the passage towards d opened.
// Invalid directions leave m unchanged.
func (m Mask) With(d Direction) Mask {
	if !d.IsValid() {
		return m
	}

	return Mask(bitvector.Len8(m).Set(d.index(), true))
}

// Count returns the number of open passages.
func (m Mask) Count() int {
	n := 0
	for _, d := range allDirections {
		if m.Has(d) {
			n++
		}
	}

	return n
}

// Directions returns the open directions in N, S, E, W order.
func (m Mask) Directions() []Direction {
	dirs := make([]Direction, 0, 4)
	for _, d := range allDirections {
		if m.Has(d) {
			dirs = append(dirs, d)
		}
	}

	return dirs
}

// Letters decodes m into direction letters in fixed N, S, E, W order,
// e.g. 5 (North|East) -> "NE". The zero mask decodes to "".
func (m Mask) Letters() string {
	var sb strings.Builder
	for _, d := range allDirections {
		if m.Has(d) {
			sb.WriteString(d.Letter())
		}
	}

	return sb.String()
}
