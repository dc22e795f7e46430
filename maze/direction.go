package maze

// Direction is a cardinal direction. Its value is the bit it occupies in a
// Mask, so the four directions are disjoint and non-zero.
type Direction uint8

// Direction constants.
const (
	North Direction = 1 << iota // 1
	South                       // 2
	East                        // 4
	West                        // 8
)

// allDirections is the fixed N, S, E, W order used for decoding and as the
// unshuffled carving order.
var allDirections = [4]Direction{North, South, East, West}

// AllDirections returns the four directions in N, S, E, W order.
func AllDirections() []Direction {
	dirs := allDirections

	return dirs[:]
}

// IsValid reports whether d is exactly one of the four directions.
func (d Direction) IsValid() bool {
	switch d {
	case North, South, East, West:
		return true
	default:
		return false
	}
}

// Opposite returns the direction pointing back: N<->S, E<->W.
// Invalid directions are returned unchanged.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return d
	}
}

// Delta returns the unit step (dx, dy) for d. North is (0,-1).
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case South:
		return 0, 1
	case East:
		return 1, 0
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}

// Bit returns the single-direction mask for d.
func (d Direction) Bit() Mask {
	if !d.IsValid() {
		return 0
	}

	return Mask(d)
}

// Letter returns the one-letter code used by decoded dumps.
func (d Direction) Letter() string {
	switch d {
	case North:
		return "N"
	case South:
		return "S"
	case East:
		return "E"
	case West:
		return "W"
	default:
		return "?"
	}
}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case South:
		return "South"
	case East:
		return "East"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}

// index is the bit position of d, 0..3.
func (d Direction) index() uint8 {
	switch d {
	case South:
		return 1
	case East:
		return 2
	case West:
		return 3
	default:
		return 0
	}
}
