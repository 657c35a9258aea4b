package raster

// AddEdgeF converts a device-space segment to 24.8 fixed point and feeds
// it to AddEdge. This is the entry point used by every caller above the
// numerical core: the clip plotter, the stroke generator, and the direct
// polygon-to-edges paths on Context all work in float32 device
// coordinates and never touch fixed32 themselves.
func (g *CellGrid) AddEdgeF(x0, y0, x1, y1 float32) {
	g.AddEdge(toFixed(x0), toFixed(y0), toFixed(x1), toFixed(y1))
}

// AddEdge distributes the signed cover and area of the line segment from
// (x0,y0) to (x1,y1), given in 24.8 fixed point, into g's current
// generation. Summed across all edges of a closed subject, the grid ends
// up holding signed sub-pixel coverage for each pixel the subject covers.
//
// This follows the AGG/FreeType convention: a horizontal edge (dy==0)
// contributes nothing, sign is canonicalized so the walk always ascends
// in y, and the edge is handled by one of three regimes: a segment
// confined to a single pixel, a vertical segment, and the general
// Bresenham-style walk (one loop for dx > dy, one for dx <= dy). It is ported directly from the fixed-point edge walker
// this package's algorithm is grounded on; variable names mirror that
// source rather than following a cleaned-up Go style, since the exact
// carry/remainder arithmetic is the part that must not drift.
func (g *CellGrid) AddEdge(x0, y0, x1, y1 fixed32) {
	stride := g.stride

	dx := int(x1 - x0)
	dy := int(y1 - y0)

	if dy == 0 {
		return
	}

	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}

	incY := 1
	sign := 1

	ix0, iy0, ix1, iy1 := int(x0), int(y0), int(x1), int(y1)

	if ix0 > ix1 {
		ix0, ix1 = ix1, ix0
		iy0, iy1 = iy1, iy0
		sign = -sign
	}

	if iy0 > iy1 {
		iy0 ^= subpixelMask
		if iy0&subpixelMask == subpixelMask {
			iy0 += 1 - subpixelScale*2
		} else {
			iy0++
		}
		iy1 = iy0 + dy
		incY = -1
		sign = -sign
	}

	px0 := ix0 >> subpixelShift
	px1 := ix1 >> subpixelShift
	py0 := iy0 >> subpixelShift
	py1 := iy1 >> subpixelShift

	fx0 := ix0 & subpixelMask
	fx1 := ix1 & subpixelMask
	fy0 := iy0 & subpixelMask
	fy1 := iy1 & subpixelMask

	scanlineCount := py1 - py0

	if scanlineCount == 0 && px0 == px1 {
		cover := int32(dy * sign)
		area := int32(((fx0 + fx1) * dy * sign) >> areaShift)
		g.accumulate(py0*stride+px0, cover, area)
		return
	}

	if dx == 0 {
		twoFx := fx0 + fx0

		cover := int32((subpixelScale - fy0) * sign)
		area := int32((twoFx * (subpixelScale - fy0) * sign) >> areaShift)
		g.accumulate(py0*stride+px0, cover, area)

		py0 += incY
		cover = int32(subpixelScale * sign)
		area = int32((twoFx * subpixelScale * sign) >> areaShift)
		for scanlineCount > 1 {
			g.accumulate(py0*stride+px0, cover, area)
			py0 += incY
			scanlineCount--
		}

		if fy1 != 0 {
			cover = int32(fy1 * sign)
			area = int32((twoFx * fy1 * sign) >> areaShift)
			g.accumulate(py0*stride+px0, cover, area)
		}
		return
	}

	baseX := subpixelScale * dx
	liftX := baseX / dy
	remX := baseX % dy
	errX := -dy / 2

	baseY := subpixelScale * dy
	liftY := baseY / dx
	remY := baseY % dx
	errY := -dx / 2

	offsetX := (subpixelScale - fy0) * dx
	deltaX := offsetX / dy
	errX += offsetX % dy

	offsetY := (subpixelScale - fx0) * dy
	deltaY := offsetY / dx
	errY += offsetY % dx

	accFx := fx0
	accY := iy0 + deltaY

	fy1 = subpixelScale

	if dx > dy {
		for {
			rowBase := py0 * stride

			if scanlineCount == 0 {
				deltaX = ix1 - ((px0 << subpixelShift) + accFx)
				fy1 = iy1 & subpixelMask
				if deltaX == 0 {
					// This is already the final scanline (scanlineCount==0);
					// a zero-width tail means there is nothing left to draw.
					break
				}
			}

			accFy := accY & subpixelMask
			nextX := accFx + deltaX
			nextPx := px0 + (nextX >> subpixelShift)

			if nextX <= subpixelScale {
				cover := (fy1 - fy0) * sign
				area := (accFx + nextX) * cover
				g.accumulate(rowBase+px0, int32(cover), int32(area>>areaShift))

				if nextX == subpixelScale {
					accY += liftY
					errY += remY
					if errY >= 0 {
						errY -= dx
						accY++
					}
				}

				deltaX = liftX
				errX += remX
				if errX >= 0 {
					errX -= dy
					deltaX++
				}

				fy0 = 0
				accFx = nextX & subpixelMask
				px0 = nextPx
				py0 += incY
				if scanlineCount == 0 {
					break
				}
				scanlineCount--
				continue
			}

			cover := (accFy - fy0) * sign
			area := (accFx + subpixelScale) * cover
			g.accumulate(rowBase+px0, int32(cover), int32(area>>areaShift))

			px0++
			for px0 != nextPx {
				deltaY = liftY
				errY += remY
				if errY >= 0 {
					errY -= dx
					deltaY++
				}
				accY += deltaY

				cover = deltaY * sign
				area = subpixelScale * cover
				g.accumulate(rowBase+px0, int32(cover), int32(area>>areaShift))
				px0++
			}

			accFx = nextX & subpixelMask
			accFy = accY & subpixelMask

			if accFy != 0 || scanlineCount == 0 {
				cover = (fy1 - accFy) * sign
				area = accFx * cover
				g.accumulate(rowBase+px0, int32(cover), int32(area>>areaShift))
			}

			errY += remY
			if errY >= 0 {
				errY -= dx
				accY++
			}
			accY += liftY

			deltaX = liftX
			errX += remX
			if errX >= 0 {
				errX -= dy
				deltaX++
			}

			fy0 = 0
			py0 += incY
			if scanlineCount == 0 {
				break
			}
			scanlineCount--
		}
		return
	}

	for {
		rowBase := py0 * stride

		if scanlineCount == 0 {
			deltaX = ix1 - ((px0 << subpixelShift) + accFx)
			fy1 = iy1 & subpixelMask
			if fy1 == 0 {
				// The edge ends exactly on this scanline's top boundary,
				// so no part of it lies in this row.
				break
			}
		}

		nextFx := accFx + deltaX

		if nextFx <= subpixelScale {
			cover := (fy1 - fy0) * sign
			area := (accFx + nextFx) * cover
			g.accumulate(rowBase+px0, int32(cover), int32(area>>areaShift))

			if nextFx == subpixelScale {
				accY += liftY
				errY += remY
				if errY >= 0 {
					errY -= dx
					accY++
				}
			}

			deltaX = liftX
			errX += remX
			if errX >= 0 {
				errX -= dy
				deltaX++
			}

			fy0 = 0
			fy1 = subpixelScale
			accFx = nextFx & subpixelMask
			px0 += nextFx >> subpixelShift
			py0 += incY
			if scanlineCount == 0 {
				break
			}
			scanlineCount--
			continue
		}

		accY &= subpixelMask

		cover := (accY - fy0) * sign
		area := (accFx + subpixelScale) * cover
		g.accumulate(rowBase+px0, int32(cover), int32(area>>areaShift))

		px0++
		accFx = nextFx & subpixelMask

		cover = (fy1 - accY) * sign
		area = accFx * cover
		g.accumulate(rowBase+px0, int32(cover), int32(area>>areaShift))

		accY += liftY
		errY += remY
		if errY >= 0 {
			errY -= dx
			accY++
		}

		deltaX = liftX
		errX += remX
		if errX >= 0 {
			errX -= dy
			deltaX++
		}

		fy0 = 0
		py0 += incY
		if scanlineCount == 0 {
			break
		}
		scanlineCount--
	}
}
