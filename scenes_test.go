package raster

import (
	"testing"

	"github.com/native-m/r2d/scenes"
)

// mustScene looks up a named fixture from scenes.All, failing the test
// immediately if the scenes package's catalog doesn't carry it.
func mustScene(t *testing.T, name string) scenes.Scene {
	t.Helper()
	sc, ok := scenes.All[name]
	if !ok {
		t.Fatalf("scene %q not found in scenes.All", name)
	}
	return sc
}

// runScene drives a Context through sc's Operation and returns the
// rendered target, so scenario fixtures defined once in the scenes
// package can back assertions in multiple test files instead of each
// duplicating the same literal geometry.
func runScene(t *testing.T, sc scenes.Scene) *PixelBuffer {
	t.Helper()

	var grid CellGrid
	if err := grid.Init(sc.Width, sc.Height); err != nil {
		t.Fatal(err)
	}
	var target PixelBuffer
	if err := target.Init(sc.Width, sc.Height, ARGB8); err != nil {
		t.Fatal(err)
	}
	if err := target.Clear(RGBA255(0, 0, 0, 255)); err != nil {
		t.Fatal(err)
	}

	ctx := NewContext()
	ctx.SetCellGrid(&grid)
	ctx.SetRenderTarget(&target)

	clip := sc.ClipRect
	if clip == (Box{}) {
		clip = target.Rect()
	}
	ctx.SetClipRect(clip)
	ctx.SetSource(sc.Source)
	ctx.SetBlendMode(sc.BlendMode)

	switch op := sc.Op.(type) {
	case scenes.FillPolygon:
		if err := ctx.DrawPolygon(op.Points); err != nil {
			t.Fatal(err)
		}
	case scenes.FillPolygonPair:
		ctx.AddPolygon(op.First)
		ctx.AddPolygon(op.Second)
		if err := ctx.render(); err != nil {
			t.Fatal(err)
		}
	case scenes.StrokePolyline:
		ctx.SetLineThickness(op.Width)
		ctx.SetLineJoin(op.Join)
		if err := ctx.DrawPolyline(op.Points); err != nil {
			t.Fatal(err)
		}
	case scenes.DiscardAndRefill:
		ctx.SetSource(op.FirstSource)
		if err := ctx.DrawPolygon(op.First); err != nil {
			t.Fatal(err)
		}
		if err := target.Clear(RGBA255(0, 0, 0, 255)); err != nil {
			t.Fatal(err)
		}
		ctx.SetSource(op.SecondSource)
		if err := ctx.DrawPolygon(op.Second); err != nil {
			t.Fatal(err)
		}
	default:
		t.Fatalf("unsupported scene operation %T", sc.Op)
	}

	return &target
}
