package raster

import (
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Point is a location in device pixel space. One unit is one output pixel.
type Point struct {
	X, Y float32
}

// ToVec2 converts p to a seehuhn.de/go/geom/vec.Vec2 for callers already
// working in that coordinate family.
func (p Point) ToVec2() vec.Vec2 {
	return vec.Vec2{X: float64(p.X), Y: float64(p.Y)}
}

// PointFromVec2 converts a seehuhn.de/go/geom/vec.Vec2 to a Point.
func PointFromVec2(v vec.Vec2) Point {
	return Point{X: float32(v.X), Y: float32(v.Y)}
}

// Rect is an axis-aligned rectangle given by an origin and a size.
type Rect struct {
	X, Y, W, H float32
}

// Box is an axis-aligned rectangle given by two corners, with X0<=X1 and
// Y0<=Y1.
type Box struct {
	X0, Y0, X1, Y1 float32
}

// BoxFromRect converts a Rect to the equivalent Box.
func BoxFromRect(r Rect) Box {
	return Box{X0: r.X, Y0: r.Y, X1: r.X + r.W, Y1: r.Y + r.H}
}

// ToRect converts b to a seehuhn.de/go/geom/rect.Rect.
func (b Box) ToRect() rect.Rect {
	return rect.Rect{LLx: float64(b.X0), LLy: float64(b.Y0), URx: float64(b.X1), URy: float64(b.Y1)}
}

// BoxFromGeomRect converts a seehuhn.de/go/geom/rect.Rect to a Box.
func BoxFromGeomRect(r rect.Rect) Box {
	return Box{X0: float32(r.LLx), Y0: float32(r.LLy), X1: float32(r.URx), Y1: float32(r.URy)}
}

// contains reports whether (x,y) lies within b, inclusive of both edges.
func (b Box) contains(x, y float32) bool {
	return x >= b.X0 && x <= b.X1 && y >= b.Y0 && y <= b.Y1
}
