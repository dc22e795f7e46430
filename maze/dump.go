package maze

import (
	"io"
	"strconv"
	"strings"
)

// DumpAsText renders the grid one row per line: rows iterate y over Length
// (outer), columns iterate x over Width (inner). Cells are tab-separated and
// printed either as the decimal mask or, when decoded is true, as direction
// letters in N, S, E, W order. Pure formatting; the grid is not touched.
// A nil *Maze dumps as "".
func (m *Maze) DumpAsText(decoded bool) string {
	var sb strings.Builder
	sb.Grow(m.Length() * m.Width() * 3)
	// strings.Builder never returns a write error
	_ = m.WriteText(&sb, decoded)

	return sb.String()
}

// WriteText writes the DumpAsText rendering to w.
func (m *Maze) WriteText(w io.Writer, decoded bool) error {
	cols := make([]string, m.Width())

	var x, y int
	for y = 0; y < m.Length(); y++ {
		for x = 0; x < m.Width(); x++ {
			cols[x] = formatMask(m.cells[m.index(x, y)], decoded)
		}
		if _, err := io.WriteString(w, strings.Join(cols, "\t")+"\n"); err != nil {
			return err
		}
	}

	return nil
}

func formatMask(c Mask, decoded bool) string {
	if decoded {
		return c.Letters()
	}

	return strconv.Itoa(int(c))
}
