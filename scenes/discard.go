package scenes

import "github.com/native-m/r2d"

// discardScenes holds the generation-discard scenario: S6.
var discardScenes = map[string]Scene{
	"discard_between_frames": {
		Name:   "discard_between_frames",
		Width:  4,
		Height: 4,
		Op: DiscardAndRefill{
			First: []raster.Point{
				pt(1, 1), pt(2, 1), pt(2, 2), pt(1, 2),
			},
			Second: []raster.Point{
				pt(1, 1), pt(2, 1), pt(2, 2), pt(1, 2),
			},
			FirstSource:  raster.RGBA255(255, 255, 255, 255),
			SecondSource: raster.RGBA255(255, 0, 0, 255),
		},
		BlendMode: raster.BlendSrcOver,
		Expect:    "after Discard and a second render, pixel (1,1) reflects only the second source color, as if the grid had been Clear()-ed",
	},
}
