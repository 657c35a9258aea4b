package raster

// coverToMask converts an accumulated (cover, area) pair into an 8-bit
// alpha mask. runningCover carries the running sum of every cell to the
// left of and including this column (already in the [0,255]-ish cover
// scale, not doubled); area is this column's own signed sub-pixel area
// contribution, already reduced by areaShift at accumulation time. mask =
// |runningCover - area|, clamped to [0,255].
func coverToMask(runningCover, area int32) uint8 {
	v := runningCover - area
	if v < 0 {
		v = -v
	}
	if v > 255 {
		v = 255
	}
	return uint8(v)
}

// Render walks grid's live cells scanline by scanline, resolves each
// pixel's coverage mask, and composites the flat color src through mode
// into target, restricted to clip. Render is a no-op for any pixel outside
// grid's dimensions or outside clip.
func Render(grid *CellGrid, target *PixelBuffer, clip Box, src Color, mode BlendMode) error {
	blend, err := blendFuncFor(mode)
	if err != nil {
		return err
	}
	dstShifts, err := channelShifts(target.Format())
	if err != nil {
		return err
	}

	sr := uint32(clampChannel(src.R))
	sg := uint32(clampChannel(src.G))
	sb := uint32(clampChannel(src.B))
	sa := uint32(clampChannel(src.A))

	width := grid.Width()
	height := grid.Height()

	x0 := clampInt(int(clip.X0), 0, width)
	x1 := clampInt(ceilToInt(clip.X1), 0, width)
	y0 := clampInt(int(clip.Y0), 0, height)
	y1 := clampInt(ceilToInt(clip.Y1), 0, height)

	for y := y0; y < y1; y++ {
		var runningCover int32
		for x := x0; x < x1; x++ {
			cover, area := grid.at(x, y)
			runningCover += cover
			mask := coverToMask(runningCover, area)
			if mask == 0 {
				continue
			}

			idx := y*width + x
			word := target.pixels[idx]
			dr, dg, db, da := unpackChannels(word, dstShifts)

			effSA := fpmul(sa, uint32(mask))
			or, og, ob, oa := blend(sr, sg, sb, effSA, dr, dg, db, da)

			target.pixels[idx] = packChannels(or, og, ob, oa, dstShifts)
		}
	}
	return nil
}

func clampChannel(v float32) uint8 {
	x := v*255 + 0.5
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return uint8(x)
}

// ceilToInt rounds v up to the nearest int, matching the convention that
// a Box's X1/Y1 corner is an exclusive upper bound in continuous device
// space: a clip box ending exactly on a pixel boundary excludes that
// pixel, while one ending mid-pixel still includes it.
func ceilToInt(v float32) int {
	i := int(v)
	if float32(i) < v {
		i++
	}
	return i
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// unpackChannels extracts straight-alpha 8-bit channels from a packed
// pixel word given its format's bit positions. A channel with bitpos -1
// (no alpha stored) reads back as fully opaque.
func unpackChannels(word uint32, shifts bitpos) (r, g, b, a uint32) {
	r = (word >> uint(shifts.r)) & 0xff
	g = (word >> uint(shifts.g)) & 0xff
	b = (word >> uint(shifts.b)) & 0xff
	if shifts.a < 0 {
		a = 255
	} else {
		a = (word >> uint(shifts.a)) & 0xff
	}
	return r, g, b, a
}

// packChannels reassembles a pixel word from straight-alpha 8-bit
// channels. A format with no stored alpha channel (bitpos.a == -1) drops
// a and writes 255 into the unused top byte, as Color.Pack does.
func packChannels(r, g, b, a uint32, shifts bitpos) uint32 {
	word := (r << uint(shifts.r)) | (g << uint(shifts.g)) | (b << uint(shifts.b))
	if shifts.a >= 0 {
		word |= a << uint(shifts.a)
	} else {
		word |= 255 << 24
	}
	return word
}
