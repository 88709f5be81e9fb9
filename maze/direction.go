package maze

import (
	"fmt"
	"strings"
)

// Direction is one of the four orthogonal directions a passage can lead.
type Direction uint8

// The order of the constants is the order in which neighbours are listed
// before they are shuffled during generation.
const (
	Up Direction = iota
	Right
	Down
	Left
)

var directions = [4]Direction{Up, Right, Down, Left}

// AllDirections returns every direction in declaration order. The result is a copy.
func AllDirections() [4]Direction {
	return directions
}

var directionDeltas = [4]CellPosition{
	Up:    {Row: -1, Col: 0},
	Right: {Row: 0, Col: 1},
	Down:  {Row: 1, Col: 0},
	Left:  {Row: 0, Col: -1},
}

var directionNames = [4]string{
	Up:    "up",
	Right: "right",
	Down:  "down",
	Left:  "left",
}

var directionAliases = map[string]Direction{
	"up":    Up,
	"north": Up,
	"right": Right,
	"east":  Right,
	"down":  Down,
	"south": Down,
	"left":  Left,
	"west":  Left,
}

// ParseDirection converts a name such as "up" or "North" into a Direction.
func ParseDirection(s string) (Direction, error) {
	d, ok := directionAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
	}
	return d, nil
}

// Valid reports whether d is one of the four declared directions.
func (d Direction) Valid() bool {
	return d <= Left
}

// Delta returns the row and column offset of a step in direction d.
func (d Direction) Delta() (dRow, dCol int) {
	if !d.Valid() {
		return 0, 0
	}
	delta := directionDeltas[d]
	return delta.Row, delta.Col
}

// Opposite returns the direction pointing back.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// String returns the lower-case name of the direction.
func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
	return directionNames[d]
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, ErrInvalidDirection
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
