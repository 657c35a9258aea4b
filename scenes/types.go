// Package scenes holds the end-to-end rendering scenarios (S1-S7) used to
// exercise and validate the core rasterizer against spec.md/SPEC_FULL.md
// §8's testable properties. Each Scene is a self-contained fixture: canvas
// size, geometry, drawing state, and the expected outcome a test can
// assert against.
package scenes

import "github.com/native-m/r2d"

// Scene defines a single end-to-end rendering scenario.
type Scene struct {
	Name   string // lowercase a-z and _ only
	Width  int
	Height int

	Op Operation

	ClipRect  raster.Box // zero value means (0,0,Width,Height)
	Source    raster.Color
	BlendMode raster.BlendMode

	Expect string // human-readable description of the expected outcome
}

// Operation is the drawing operation a Scene applies.
type Operation interface {
	isOperation()
}

// FillPolygon specifies a single filled closed polygon.
type FillPolygon struct {
	Points []raster.Point
}

func (FillPolygon) isOperation() {}

// FillPolygonPair specifies two filled polygons drawn in the same pass,
// for scenarios that check edge cancellation across a shared boundary.
type FillPolygonPair struct {
	First, Second []raster.Point
}

func (FillPolygonPair) isOperation() {}

// StrokePolyline specifies an open polyline stroke.
type StrokePolyline struct {
	Points []raster.Point
	Width  float32
	Join   raster.LineJoin
}

func (StrokePolyline) isOperation() {}

// DiscardAndRefill specifies a two-pass scenario: render First, Discard
// the grid, then render Second with a different source color.
type DiscardAndRefill struct {
	First, Second []raster.Point
	FirstSource   raster.Color
	SecondSource  raster.Color
}

func (DiscardAndRefill) isOperation() {}

// pt is a helper to create a raster.Point from x, y coordinates.
func pt(x, y float32) raster.Point {
	return raster.Point{X: x, Y: y}
}
