package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolve(t *testing.T) {
	t.Run("corridor", func(t *testing.T) {
		path, err := Solve(corridor(t), CellPosition{Row: 0, Col: 0}, CellPosition{Row: 1, Col: 0})
		require.NoError(t, err)
		assert.Equal(t, []CellPosition{
			{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2},
			{Row: 1, Col: 2}, {Row: 1, Col: 1}, {Row: 1, Col: 0},
		}, path)
	})

	t.Run("same cell", func(t *testing.T) {
		path, err := Solve(corridor(t), CellPosition{Row: 1, Col: 1}, CellPosition{Row: 1, Col: 1})
		require.NoError(t, err)
		assert.Equal(t, []CellPosition{{Row: 1, Col: 1}}, path)
	})

	t.Run("every step is a valid move", func(t *testing.T) {
		topo, err := Generate(14, 11, NewSource(8))
		require.NoError(t, err)

		path, err := Solve(topo, topo.Start(), topo.Goal())
		require.NoError(t, err)
		require.NotEmpty(t, path)
		assert.Equal(t, topo.Start(), path[0])
		assert.Equal(t, topo.Goal(), path[len(path)-1])

		for i := 1; i < len(path); i++ {
			moved := false
			for _, d := range directions {
				if path[i-1].Step(d) == path[i] {
					assert.True(t, IsValidMove(topo, Move{From: path[i-1], To: path[i], Direction: d}))
					moved = true
				}
			}
			assert.True(t, moved, "step %d is not adjacent", i)
		}
	})

	t.Run("out of bounds", func(t *testing.T) {
		_, err := Solve(corridor(t), CellPosition{Row: -1}, CellPosition{})
		assert.ErrorIs(t, err, ErrOutOfBounds)
		_, err = Solve(corridor(t), CellPosition{}, CellPosition{Row: 2})
		assert.ErrorIs(t, err, ErrOutOfBounds)
	})

	t.Run("disconnected", func(t *testing.T) {
		topo, err := FromSnapshot(Snapshot{Rows: 1, Cols: 2, Horizontals: [][]bool{}, Verticals: [][]bool{{false}}})
		require.NoError(t, err)
		_, err = Solve(topo, CellPosition{Col: 0}, CellPosition{Col: 1})
		assert.ErrorIs(t, err, ErrNoPath)
	})
}
