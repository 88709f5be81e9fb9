// Package scene converts a maze topology into the static bodies a 2D physics
// renderer needs: border walls, one wall per closed passage, a goal marker and
// a ball placed in the start cell. Coordinates are body centres.
package scene

import (
	"errors"
	"math"

	"github.com/beka-birhanu/vinom-maze/maze"
)

// Body labels.
const (
	LabelBorder = "border"
	LabelWall   = "wall"
	LabelGoal   = "goal"
	LabelBall   = "ball"
)

const (
	borderThickness = 2.0
	wallThickness   = 5.0
	goalScale       = 0.7
	ballRadiusRatio = 4.0
)

var (
	// ErrInvalidViewport is returned when the viewport width or height is not positive.
	ErrInvalidViewport = errors.New("scene: viewport width and height must be positive")
)

// Body is an axis-aligned rectangle centred on (X, Y).
type Body struct {
	Label    string  `json:"label"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	IsStatic bool    `json:"isStatic"`
}

// Ball is the player-controlled circle.
type Ball struct {
	Label  string  `json:"label"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Radius float64 `json:"radius"`
}

// Scene is the full set of bodies for one maze.
type Scene struct {
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	UnitLengthX float64 `json:"unitLengthX"`
	UnitLengthY float64 `json:"unitLengthY"`
	Borders     []Body  `json:"borders"`
	Walls       []Body  `json:"walls"`
	Goal        Body    `json:"goal"`
	Ball        Ball    `json:"ball"`
}

// Build lays out t over a width x height viewport.
func Build(t *maze.Topology, width, height float64) (*Scene, error) {
	if t == nil {
		return nil, maze.ErrInvalidDimension
	}
	if !(width > 0) || !(height > 0) || math.IsInf(width, 0) || math.IsInf(height, 0) {
		return nil, ErrInvalidViewport
	}

	unitX := width / float64(t.Cols())
	unitY := height / float64(t.Rows())

	s := &Scene{
		Width:       width,
		Height:      height,
		UnitLengthX: unitX,
		UnitLengthY: unitY,
		Borders: []Body{
			{Label: LabelBorder, X: width / 2, Y: 0, Width: width, Height: borderThickness, IsStatic: true},
			{Label: LabelBorder, X: width / 2, Y: height, Width: width, Height: borderThickness, IsStatic: true},
			{Label: LabelBorder, X: 0, Y: height / 2, Width: borderThickness, Height: height, IsStatic: true},
			{Label: LabelBorder, X: width, Y: height / 2, Width: borderThickness, Height: height, IsStatic: true},
		},
	}

	for r, row := range t.Horizontals() {
		for c, open := range row {
			if open {
				continue
			}
			s.Walls = append(s.Walls, Body{
				Label:    LabelWall,
				X:        float64(c)*unitX + unitX/2,
				Y:        float64(r)*unitY + unitY,
				Width:    unitX,
				Height:   wallThickness,
				IsStatic: true,
			})
		}
	}

	for r, row := range t.Verticals() {
		for c, open := range row {
			if open {
				continue
			}
			s.Walls = append(s.Walls, Body{
				Label:    LabelWall,
				X:        float64(c)*unitX + unitX,
				Y:        float64(r)*unitY + unitY/2,
				Width:    wallThickness,
				Height:   unitY,
				IsStatic: true,
			})
		}
	}

	goal := t.Goal()
	s.Goal = Body{
		Label:    LabelGoal,
		X:        float64(goal.Col)*unitX + unitX/2,
		Y:        float64(goal.Row)*unitY + unitY/2,
		Width:    unitX * goalScale,
		Height:   unitY * goalScale,
		IsStatic: true,
	}

	start := t.Start()
	s.Ball = Ball{
		Label:  LabelBall,
		X:      float64(start.Col)*unitX + unitX/2,
		Y:      float64(start.Row)*unitY + unitY/2,
		Radius: math.Min(unitX, unitY) / ballRadiusRatio,
	}

	return s, nil
}

// Collapse returns a copy of the scene with every inner wall released from its
// static state, ready to fall once the renderer enables gravity. Borders and the
// goal stay static.
func (s *Scene) Collapse() *Scene {
	collapsed := *s
	collapsed.Borders = append([]Body(nil), s.Borders...)
	collapsed.Walls = make([]Body, len(s.Walls))
	for i, w := range s.Walls {
		w.IsStatic = false
		collapsed.Walls[i] = w
	}
	return &collapsed
}
