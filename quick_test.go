package raster

import (
	"math/rand"
	"testing"
	"testing/quick"
)

// TestQuickEdgeCancellationOverArbitraryClosedPolylines is a randomized
// check of spec.md §8 invariant 2: for any closed polyline, the signed
// cover summed across any full row of the cell grid is 0 once every edge
// has been walked. quick.Check drives the property over many random
// seeds; each seed derives its own bounded, well-formed polygon (vertex
// count and coordinates kept inside the grid and away from NaN/Inf) via
// math/rand rather than leaning on quick's generic float32 generator,
// which would happily produce unusable coordinates.
func TestQuickEdgeCancellationOverArbitraryClosedPolylines(t *testing.T) {
	const gridSize = 48

	property := func(seed int64) bool {
		rng := rand.New(rand.NewSource(seed))
		n := 3 + rng.Intn(6) // 3..8 vertices
		points := make([]Point, n)
		for i := range points {
			points[i] = Point{
				X: float32(1 + rng.Float64()*(gridSize-2)),
				Y: float32(1 + rng.Float64()*(gridSize-2)),
			}
		}

		var grid CellGrid
		if err := grid.Init(gridSize, gridSize); err != nil {
			t.Fatal(err)
		}
		for i := 0; i < n; i++ {
			j := (i + 1) % n
			grid.AddEdgeF(points[i].X, points[i].Y, points[j].X, points[j].Y)
		}

		for y := 0; y < gridSize; y++ {
			var rowCover int32
			for x := 0; x < grid.Stride(); x++ {
				cover, _ := grid.at(x, y)
				rowCover += cover
			}
			if rowCover != 0 {
				return false
			}
		}
		return true
	}

	if err := quick.Check(property, &quick.Config{MaxCount: 200}); err != nil {
		t.Error(err)
	}
}

// TestQuickCoverageClampOverArbitraryEdges is a randomized check of
// spec.md §8 invariant 4: the mask the compositor derives from a cell's
// (runningCover, area) is always in [0,255], no matter how many
// arbitrary, possibly-overlapping edges accumulated into that cell.
// Piling a random number of random edges into a small grid repeatedly
// drives runningCover-area past the 8-bit range, directly exercising
// coverToMask's clamp branch rather than relying on it never being hit.
func TestQuickCoverageClampOverArbitraryEdges(t *testing.T) {
	const gridSize = 16

	property := func(seed int64) bool {
		rng := rand.New(rand.NewSource(seed))
		var grid CellGrid
		if err := grid.Init(gridSize, gridSize); err != nil {
			t.Fatal(err)
		}

		edgeCount := 10 + rng.Intn(60)
		for i := 0; i < edgeCount; i++ {
			x0 := float32(rng.Float64() * gridSize)
			y0 := float32(rng.Float64() * gridSize)
			x1 := float32(rng.Float64() * gridSize)
			y1 := float32(rng.Float64() * gridSize)
			grid.AddEdgeF(x0, y0, x1, y1)
		}

		for y := 0; y < gridSize; y++ {
			var rowCover int32
			for x := 0; x < gridSize; x++ {
				cover, area := grid.at(x, y)
				rowCover += cover
				v := rowCover - area
				if v < 0 {
					v = -v
				}
				want := uint8(255)
				if v <= 255 {
					want = uint8(v)
				}
				if got := coverToMask(rowCover, area); got != want {
					return false
				}
			}
		}
		return true
	}

	if err := quick.Check(property, &quick.Config{MaxCount: 300}); err != nil {
		t.Error(err)
	}
}
