package verify_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazegen/maze"
	"github.com/katalvlaran/mazegen/verify"
)

// grid is a hand-built topology; cells[y][x].
type grid [][]maze.Mask

func (g grid) Width() int  { return len(g[0]) }
func (g grid) Length() int { return len(g) }
func (g grid) WallMask(x, y int) (maze.Mask, error) {
	if y < 0 || y >= len(g) || x < 0 || x >= len(g[0]) {
		return 0, maze.ErrOutOfRange
	}
	return g[y][x], nil
}

// sized reports fixed dimensions and no passages.
type sized struct{ w, l int }

func (z sized) Width() int                           { return z.w }
func (z sized) Length() int                          { return z.l }
func (z sized) WallMask(int, int) (maze.Mask, error) { return 0, nil }

// failing reports an error for one cell.
type failing struct{ grid }

func (f failing) WallMask(x, y int) (maze.Mask, error) {
	if x == 1 && y == 0 {
		return 0, errors.New("sensor offline")
	}
	return f.grid.WallMask(x, y)
}

const (
	n = maze.Mask(maze.North)
	s = maze.Mask(maze.South)
	e = maze.Mask(maze.East)
	w = maze.Mask(maze.West)
)

// TestPerfect_Generated accepts every maze New builds.
func TestPerfect_Generated(t *testing.T) {
	for _, sz := range [][2]int{{1, 1}, {2, 1}, {1, 9}, {7, 5}, {30, 30}} {
		for seed := int64(1); seed <= 3; seed++ {
			t.Run(fmt.Sprintf("%dx%d/seed%d", sz[0], sz[1], seed), func(t *testing.T) {
				m, err := maze.New(sz[0], sz[1], maze.WithSeed(seed))
				require.NoError(t, err)

				rep, err := verify.Perfect(m)
				require.NoError(t, err)
				assert.Equal(t, sz[0]*sz[1], rep.Cells)
				assert.Equal(t, sz[0]*sz[1]-1, rep.Passages)
				assert.LessOrEqual(t, rep.LongestPath, rep.Passages)
			})
		}
	}
}

// TestPerfect_Report pins the summary of the unshuffled 3×2 snake.
func TestPerfect_Report(t *testing.T) {
	snake := grid{
		{s, s | e, s | w},
		{n | e, n | w, n},
	}
	rep, err := verify.Perfect(snake)
	require.NoError(t, err)
	assert.Equal(t, &verify.Report{Cells: 6, Passages: 5, DeadEnds: 2, LongestPath: 5}, rep)
}

// TestPerfect_Violations rejects each kind of broken topology.
func TestPerfect_Violations(t *testing.T) {
	cases := []struct {
		name string
		g    grid
		err  error
	}{
		{
			name: "OutOfBounds",
			g:    grid{{e | n, w}},
			err:  verify.ErrPassageOutOfBounds,
		},
		{
			name: "OneSided",
			g:    grid{{e, 0}},
			err:  verify.ErrAsymmetricPassage,
		},
		{
			name: "Cycle",
			g: grid{
				{e | s, w | s},
				{n | e, n | w},
			},
			err: verify.ErrCycle,
		},
		{
			name: "Disconnected",
			g: grid{
				{e, w},
				{e, w},
			},
			err: verify.ErrDisconnected,
		},
		{
			name: "IsolatedCells",
			g:    grid{{0, 0, 0}},
			err:  verify.ErrDisconnected,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rep, err := verify.Perfect(tc.g)
			assert.Nil(t, rep)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestPerfect_Errors covers nil input and failing lookups.
func TestPerfect_Errors(t *testing.T) {
	_, err := verify.Perfect(nil)
	assert.ErrorIs(t, err, verify.ErrTopologyNil)
	_, err = verify.Perfect((*maze.Maze)(nil))
	assert.ErrorIs(t, err, verify.ErrTopologyNil)

	for _, z := range []sized{{0, 0}, {0, 3}, {-2, 3}, {3, -2}} {
		_, err = verify.Perfect(z)
		assert.ErrorIsf(t, err, verify.ErrEmptyTopology, "%dx%d", z.w, z.l)
	}

	_, err = verify.Perfect(failing{grid{{e, w}}})
	assert.ErrorContains(t, err, "sensor offline")
}
