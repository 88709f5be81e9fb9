package maze

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirection(t *testing.T) {
	t.Run("deltas", func(t *testing.T) {
		testCases := []struct {
			d          Direction
			dRow, dCol int
		}{
			{Up, -1, 0},
			{Right, 0, 1},
			{Down, 1, 0},
			{Left, 0, -1},
		}
		for _, tc := range testCases {
			dRow, dCol := tc.d.Delta()
			assert.Equal(t, tc.dRow, dRow, tc.d.String())
			assert.Equal(t, tc.dCol, dCol, tc.d.String())
		}
	})

	t.Run("opposite", func(t *testing.T) {
		assert.Equal(t, Down, Up.Opposite())
		assert.Equal(t, Left, Right.Opposite())
		assert.Equal(t, Up, Down.Opposite())
		assert.Equal(t, Right, Left.Opposite())
	})

	t.Run("parse", func(t *testing.T) {
		for input, want := range map[string]Direction{
			"up": Up, "UP": Up, " north ": Up,
			"right": Right, "East": Right,
			"down": Down, "south": Down,
			"left": Left, "WEST": Left,
		} {
			got, err := ParseDirection(input)
			require.NoError(t, err, input)
			assert.Equal(t, want, got, input)
		}

		_, err := ParseDirection("sideways")
		assert.ErrorIs(t, err, ErrInvalidDirection)
	})

	t.Run("invalid value", func(t *testing.T) {
		d := Direction(9)
		assert.False(t, d.Valid())
		assert.Equal(t, "Direction(9)", d.String())
		dRow, dCol := d.Delta()
		assert.Zero(t, dRow)
		assert.Zero(t, dCol)
	})

	t.Run("json text", func(t *testing.T) {
		raw, err := json.Marshal(struct {
			D Direction `json:"d"`
		}{D: Left})
		require.NoError(t, err)
		assert.JSONEq(t, `{"d":"left"}`, string(raw))

		var decoded struct {
			D Direction `json:"d"`
		}
		require.NoError(t, json.Unmarshal([]byte(`{"d":"south"}`), &decoded))
		assert.Equal(t, Down, decoded.D)
		assert.Error(t, json.Unmarshal([]byte(`{"d":"nowhere"}`), &decoded))
	})
}
