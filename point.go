package main // import "github.com/tonobo/snake-top"

import "github.com/joonazan/vec2"

type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (p Point) Vec() vec2.Vector {
	return vec2.Vector{X: float64(p.X), Y: float64(p.Y)}
}

// Step returns the cell reached by applying m to p.
func (p Point) Step(m Move) Point {
	d := m.Vector()
	return Point{X: p.X + int(d.X), Y: p.Y + int(d.Y)}
}

// direction reduces the offset from p to q to a unit vector. The x axis wins
// when both components are set; equal points give the zero vector.
func (p Point) direction(q Point) vec2.Vector {
	d := q.Vec().Minus(p.Vec())
	switch {
	case d.X < 0:
		return vec2.Vector{X: -1}
	case d.X > 0:
		return vec2.Vector{X: 1}
	case d.Y < 0:
		return vec2.Vector{Y: -1}
	case d.Y > 0:
		return vec2.Vector{Y: 1}
	}
	return vec2.Vector{}
}
