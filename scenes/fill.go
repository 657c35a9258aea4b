package scenes

import "github.com/native-m/r2d"

// fillScenes holds the fill-operation scenarios: S1, S2, S3.
var fillScenes = map[string]Scene{
	"single_pixel_square": {
		Name:   "single_pixel_square",
		Width:  4,
		Height: 4,
		Op: FillPolygon{Points: []raster.Point{
			pt(1, 1), pt(2, 1), pt(2, 2), pt(1, 2),
		}},
		Source:    raster.RGBA255(255, 255, 255, 255),
		BlendMode: raster.BlendSrcOver,
		Expect:    "pixel (1,1) = 0xFFFFFFFF (ARGB8 order), all other pixels opaque black",
	},
	"half_covered_pixel": {
		Name:   "half_covered_pixel",
		Width:  1,
		Height: 1,
		Op: FillPolygon{Points: []raster.Point{
			pt(0, 0), pt(1, 0), pt(1, 1),
		}},
		Source:    raster.RGBA255(255, 255, 255, 255),
		BlendMode: raster.BlendSrcOver,
		Expect:    "pixel (0,0): A in {127,128} and R=G=B=255 (straight alpha) over a transparent-black background",
	},
	"edge_cancellation": {
		Name:   "edge_cancellation",
		Width:  8,
		Height: 8,
		Op: FillPolygonPair{
			First: []raster.Point{
				pt(0, 0), pt(4, 0), pt(4, 4),
			},
			Second: []raster.Point{
				pt(0, 0), pt(4, 4), pt(0, 4),
			},
		},
		Source:    raster.RGBA255(255, 255, 255, 255),
		BlendMode: raster.BlendSrcOver,
		Expect:    "the union [0,4]x[0,4] is fully opaque inside, anti-aliased only on its outer boundary; the shared diagonal produces no seam",
	},
}
