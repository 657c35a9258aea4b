package scenes

import "github.com/native-m/r2d"

// strokeScenes holds the stroke-operation scenarios: S4.
var strokeScenes = map[string]Scene{
	"miter_join": {
		Name:   "miter_join",
		Width:  100,
		Height: 100,
		Op: StrokePolyline{
			Points: []raster.Point{
				pt(10, 50), pt(50, 10), pt(90, 50),
			},
			Width: 10,
			Join:  raster.LineJoinMiter,
		},
		Source:    raster.RGBA255(255, 255, 255, 255),
		BlendMode: raster.BlendSrcOver,
		Expect:    "the outer miter apex at the (50,10) vertex lies at (50, 10 - 5*sqrt(2)) within 0.1 pixels",
	},
}
