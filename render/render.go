// Package render draws a maze topology as ASCII walls for diagnostics.
//
// Each maze row becomes two text lines: the north edges ("+---+" or "+   +")
// followed by the cells with their west walls ("|" or " "). A closing line
// draws the south border. Cells are three characters wide, so a W×L maze
// renders as (2L+1) lines of 4W+1 characters.
//
// Marks (entrance, finish) and a path can be overlaid; WithColor wraps walls,
// marks and path in ANSI styles.
package render

import (
	"strings"

	"github.com/gookit/color"

	"github.com/katalvlaran/mazegen/bfs"
	"github.com/katalvlaran/mazegen/maze"
)

// Styles used when colour is enabled.
var (
	StyleWall = color.Style{color.FgGray}
	StyleMark = color.Style{color.FgGreen, color.OpBold}
	StylePath = color.Style{color.FgYellow}
)

// pathRune fills path cells that carry no mark.
const pathRune = '.'

// Option configures rendering.
type Option func(*Options)

// Options holds overlays and styling for ASCII.
type Options struct {
	Marks map[maze.Cell]rune
	Path  []maze.Cell
	Color bool
}

// WithMarks overlays a rune on the given cells, e.g. 'S' and 'F'.
func WithMarks(marks map[maze.Cell]rune) Option {
	return func(o *Options) {
		o.Marks = marks
	}
}

// WithPath draws the given cells with a dot.
func WithPath(path []maze.Cell) Option {
	return func(o *Options) {
		o.Path = path
	}
}

// WithColor toggles ANSI colour styles.
func WithColor(enabled bool) Option {
	return func(o *Options) {
		o.Color = enabled
	}
}

// ASCII renders t. Cells whose WallMask fails are drawn fully walled.
// A nil topology or one without cells renders as "".
func ASCII(t bfs.Topology, opts ...Option) string {
	if t == nil {
		return ""
	}
	w, l := t.Width(), t.Length()
	if w < 1 || l < 1 {
		return ""
	}

	var o Options
	for _, fn := range opts {
		fn(&o)
	}
	onPath := make(map[maze.Cell]bool, len(o.Path))
	for _, c := range o.Path {
		onPath[c] = true
	}
	paint := func(st color.Style, s string) string {
		if !o.Color {
			return s
		}
		return st.Sprint(s)
	}
	mask := func(x, y int) maze.Mask {
		m, err := t.WallMask(x, y)
		if err != nil {
			return 0
		}
		return m
	}

	var sb strings.Builder
	sb.Grow((2*l + 1) * (4*w + 2))

	var x, y int
	for y = 0; y < l; y++ {
		// north edges
		for x = 0; x < w; x++ {
			if mask(x, y).Has(maze.North) {
				sb.WriteString(paint(StyleWall, "+") + "   ")
			} else {
				sb.WriteString(paint(StyleWall, "+---"))
			}
		}
		sb.WriteString(paint(StyleWall, "+") + "\n")

		// west walls and cell contents
		for x = 0; x < w; x++ {
			if mask(x, y).Has(maze.West) {
				sb.WriteByte(' ')
			} else {
				sb.WriteString(paint(StyleWall, "|"))
			}
			c := maze.Cell{X: x, Y: y}
			switch r, ok := o.Marks[c]; {
			case ok:
				sb.WriteString(" " + paint(StyleMark, string(r)) + " ")
			case onPath[c]:
				sb.WriteString(" " + paint(StylePath, string(pathRune)) + " ")
			default:
				sb.WriteString("   ")
			}
		}
		if mask(w-1, y).Has(maze.East) {
			sb.WriteString(" \n")
		} else {
			sb.WriteString(paint(StyleWall, "|") + "\n")
		}
	}

	// south border
	for x = 0; x < w; x++ {
		if mask(x, l-1).Has(maze.South) {
			sb.WriteString(paint(StyleWall, "+") + "   ")
		} else {
			sb.WriteString(paint(StyleWall, "+---"))
		}
	}
	sb.WriteString(paint(StyleWall, "+") + "\n")

	return sb.String()
}
