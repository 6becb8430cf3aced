// Package touch defines the input event model consumed by the gesture engine.
package touch

import "math"

// Point represents a 2D position in screen coordinates.
// The Y axis grows downward, matching typical touch hardware.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Distance returns the Euclidean distance between two points.
func (p Point) Distance(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Add returns the vector sum of two points.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns the vector difference p - other.
func (p Point) Sub(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}

// Magnitude returns the vector length of p treated as a displacement.
func (p Point) Magnitude() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Midpoint returns the point halfway between a and b.
func Midpoint(a, b Point) Point {
	return Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

// Mean returns the arithmetic mean position of the given touch points.
// Returns the zero point for an empty slice.
func Mean(touches []TouchPoint) Point {
	if len(touches) == 0 {
		return Point{}
	}
	var sum Point
	for _, t := range touches {
		sum.X += t.X
		sum.Y += t.Y
	}
	n := float64(len(touches))
	return Point{X: sum.X / n, Y: sum.Y / n}
}
