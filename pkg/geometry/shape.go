// Package geometry computes areas of simple plane shapes.
package geometry

import "math"

// ShapeKind names a supported shape
type ShapeKind string

const (
	ShapeCircle ShapeKind = "circle"
	ShapeSquare ShapeKind = "square"
)

// ValidShapeKinds defines allowed shape kinds
var ValidShapeKinds = map[string]bool{
	string(ShapeCircle): true,
	string(ShapeSquare): true,
}

// Shape is a closed set of shapes, each carrying its own measurement.
// Only Circle and Square implement it.
type Shape interface {
	Kind() ShapeKind
	isShape()
}

// Circle is a circle with the given radius
type Circle struct {
	Radius float64 `json:"radius"`
}

// Square is a square with the given side length
type Square struct {
	Side float64 `json:"side"`
}

func (Circle) Kind() ShapeKind { return ShapeCircle }
func (Square) Kind() ShapeKind { return ShapeSquare }

func (Circle) isShape() {}
func (Square) isShape() {}

// NewShape builds the shape variant for kind, reading value as the radius of
// a circle and as the side of anything else.
func NewShape(kind ShapeKind, value float64) Shape {
	if kind == ShapeCircle {
		return Circle{Radius: value}
	}
	return Square{Side: value}
}

// Area returns the area of s. A nil shape has zero area.
func Area(s Shape) float64 {
	switch v := s.(type) {
	case Circle:
		return math.Pi * v.Radius * v.Radius
	case Square:
		return v.Side * v.Side
	default:
		return 0
	}
}

// CalculateArea returns π·value² for a circle and value² otherwise.
// Negative and zero values are accepted; both formulas square the value.
func CalculateArea(kind ShapeKind, value float64) float64 {
	return Area(NewShape(kind, value))
}
