package scenes

import "github.com/native-m/r2d"

// clipScenes holds the clip-bridge scenarios: S5, and its y-axis mirror S7.
var clipScenes = map[string]Scene{
	"clip_bridge_x": {
		Name:   "clip_bridge_x",
		Width:  100,
		Height: 100,
		Op: FillPolygon{Points: []raster.Point{
			pt(0, 10), pt(100, 10), pt(100, 90), pt(0, 90),
		}},
		ClipRect:  raster.Box{X0: 20, Y0: 0, X1: 80, Y1: 100},
		Source:    raster.RGBA255(255, 255, 255, 255),
		BlendMode: raster.BlendSrcOver,
		Expect:    "20<=x<100 (clamped to clip X1=80), 10<=y<90 filled solid; column x=19 untouched; no pixels at x>=80",
	},
	"clip_bridge_y": {
		Name:   "clip_bridge_y",
		Width:  100,
		Height: 100,
		Op: FillPolygon{Points: []raster.Point{
			pt(10, 0), pt(10, 100), pt(90, 100), pt(90, 0),
		}},
		ClipRect:  raster.Box{X0: 0, Y0: 20, X1: 100, Y1: 80},
		Source:    raster.RGBA255(255, 255, 255, 255),
		BlendMode: raster.BlendSrcOver,
		Expect:    "10<=x<90, 20<=y<80 filled solid; row y=19 untouched; no pixels at y>=80 -- the y-axis mirror of clip_bridge_x",
	},
	"clip_corner_crossing": {
		Name:   "clip_corner_crossing",
		Width:  100,
		Height: 100,
		// A triangle with a vertex (90,10) that sits outside the clip box
		// through two sides at once (clipX1 and clipY0, a genuine corner
		// region), so the edges meeting at that vertex both double-cross
		// the box via an x-side paired with a y-side rather than two sides
		// of the same axis.
		Op: FillPolygon{Points: []raster.Point{
			pt(10, 10), pt(90, 10), pt(50, 90),
		}},
		ClipRect:  raster.Box{X0: 20, Y0: 20, X1: 80, Y1: 80},
		Source:    raster.RGBA255(255, 255, 255, 255),
		BlendMode: raster.BlendSrcOver,
		Expect:    "(50,50) and (70,25) filled solid; (50,15), (50,85) and (15,15) untouched outside the clip box",
	},
}
