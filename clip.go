package raster

// Clip flag bits, matching the four sides of a Box.
const (
	clipX0 uint32 = 1 << iota
	clipY0
	clipX1
	clipY1
)

// clipFlags classifies (x,y) against box, one bit per side the point lies
// outside of. A point with flags==0 is inside the box. A point outside
// through a box corner carries two bits at once (one per axis).
func clipFlags(x, y float32, box Box) uint32 {
	var flags uint32
	if x < box.X0 {
		flags |= clipX0
	}
	if x > box.X1 {
		flags |= clipX1
	}
	if y < box.Y0 {
		flags |= clipY0
	}
	if y > box.Y1 {
		flags |= clipY1
	}
	return flags
}

// clipPlotter is a pen-based line emitter that clips a polyline against a
// box and forwards the visible sub-segments to an edge sink. It holds a
// 3-deep stack of pending clip-border intersection points so that, when a
// clipped polygon's boundary runs along the clip box's edge, a bridging
// segment can be emitted to keep the winding contribution correct for
// pixels lying against that edge.
type clipPlotter struct {
	box Box

	penX, penY float32
	penFlags   uint32

	stack    [3]Point
	stackPos int

	addEdge func(x0, y0, x1, y1 float32)
}

func newClipPlotter(box Box, addEdge func(x0, y0, x1, y1 float32)) clipPlotter {
	return clipPlotter{box: box, addEdge: addEdge}
}

// moveTo sets the pen position and clears the pending-bridge stack.
func (c *clipPlotter) moveTo(x, y float32) {
	c.penX, c.penY = x, y
	c.penFlags = clipFlags(x, y, c.box)
	c.stackPos = 0
}

func (c *clipPlotter) push(x, y float32) {
	c.stack[c.stackPos] = Point{X: x, Y: y}
	c.stackPos++
}

func (c *clipPlotter) pop() Point {
	c.stackPos--
	return c.stack[c.stackPos]
}

// sideIntersect returns the point where the line through (ax,ay) and
// (bx,by) crosses the given side of the clip box. ax,ay,bx,by need not be
// the original segment endpoints — any two distinct points on the same
// line give the same intersection, since slope is invariant along it.
func sideIntersect(ax, ay, bx, by float32, side uint32, box Box) (ix, iy float32) {
	switch side {
	case clipX0:
		ix = box.X0
		iy = (box.X0-ax)*slope(ax, ay, bx, by) + ay
	case clipX1:
		ix = box.X1
		iy = (box.X1-ax)*slope(ax, ay, bx, by) + ay
	case clipY0:
		iy = box.Y0
		ix = (box.Y0-ay)/slope(ax, ay, bx, by) + ax
	case clipY1:
		iy = box.Y1
		ix = (box.Y1-ay)/slope(ax, ay, bx, by) + ax
	}
	return ix, iy
}

// slope returns (ay-by)/(ax-bx), the segment's dy/dx. sideIntersect
// multiplies by it for a vertical clip side and divides by it for a
// horizontal one.
func slope(ax, ay, bx, by float32) float32 {
	return (ay - by) / (ax - bx)
}

// singleSide returns the first side (in a fixed canonical order) that
// flags carries. A point outside through a box corner carries two bits at
// once; clipSegmentToBox resolves it one side at a time rather than
// assuming any particular bit is the one actually crossed first.
func singleSide(flags uint32) uint32 {
	for _, side := range [4]uint32{clipX0, clipX1, clipY0, clipY1} {
		if flags&side != 0 {
			return side
		}
	}
	return 0
}

// clipSegmentToBox resolves the maximal sub-segment of (ax,ay)-(bx,by)
// that lies within box, walking each endpoint to the box boundary one
// constraining side at a time (the classic Cohen-Sutherland
// reclassify-and-clip loop), so a point outside through two sides at once
// (a corner region) is still handled correctly — unlike probing a fixed
// side order and stopping at the first match, which only gives the right
// answer when the two endpoints are outside through opposite sides of the
// same axis. Returns visible=false if the segment misses box entirely; a
// returned endpoint is returned unchanged (by value) when that endpoint
// was already inside, so the caller can tell which end(s) were clipped by
// comparing against the original coordinates.
func clipSegmentToBox(ax, ay, bx, by float32, box Box) (visible bool, rax, ray, rbx, rby float32) {
	flagsA := clipFlags(ax, ay, box)
	flagsB := clipFlags(bx, by, box)
	for {
		if flagsA|flagsB == 0 {
			return true, ax, ay, bx, by
		}
		if flagsA&flagsB != 0 {
			return false, 0, 0, 0, 0
		}

		outside := flagsA
		clippingA := true
		if outside == 0 {
			outside = flagsB
			clippingA = false
		}
		side := singleSide(outside)
		ix, iy := sideIntersect(ax, ay, bx, by, side, box)
		if clippingA {
			ax, ay = ix, iy
			flagsA = clipFlags(ax, ay, box)
		} else {
			bx, by = ix, iy
			flagsB = clipFlags(bx, by, box)
		}
	}
}

// lineTo classifies the new point and emits zero or more edges to bring
// the plotted path from the pen position to (x,y), clipping against all
// four sides of the box and bridging entry/exit pairs along the border.
func (c *clipPlotter) lineTo(x, y float32) {
	newFlags := clipFlags(x, y, c.box)

	if c.box.contains(c.penX, c.penY) && c.box.contains(x, y) {
		c.addEdge(c.penX, c.penY, x, y)
		c.penX, c.penY = x, y
		c.penFlags = newFlags
		return
	}

	visible, ax, ay, bx, by := clipSegmentToBox(c.penX, c.penY, x, y, c.box)
	if !visible {
		c.penX, c.penY = x, y
		c.penFlags = newFlags
		return
	}

	penClipped := ax != c.penX || ay != c.penY
	newClipped := bx != x || by != y

	switch {
	case !penClipped && !newClipped:
		c.addEdge(ax, ay, bx, by)

	case penClipped && !newClipped:
		// Entry event: pen was outside, the new point is inside (or on the
		// far side of the visible chord). Push the crossing point, pending
		// a later exit to bridge it with.
		c.addEdge(ax, ay, bx, by)
		c.push(ax, ay)

	case !penClipped && newClipped:
		// Exit event: pen was inside, the new point goes outside. Bridge
		// immediately with a pending entry if one is waiting, otherwise
		// leave this crossing point pending.
		c.addEdge(ax, ay, bx, by)
		if c.stackPos > 0 {
			last := c.pop()
			c.addEdge(bx, by, last.X, last.Y)
		} else {
			c.push(bx, by)
		}

	default:
		// Double crossing: both ends are outside, through any two sides —
		// opposite sides of one axis or, via a corner, an x-side paired
		// with a y-side. Emit the interior chord and resolve the two new
		// crossing points against whatever is already pending.
		c.addEdge(ax, ay, bx, by)
		switch c.stackPos {
		case 1:
			last := c.pop()
			c.addEdge(last.X, last.Y, ax, ay)
			c.push(bx, by)
		case 2:
			last := c.pop()
			c.addEdge(last.X, last.Y, ax, ay)
			last = c.pop()
			c.addEdge(bx, by, last.X, last.Y)
		default:
			c.push(ax, ay)
			c.push(bx, by)
		}
	}

	c.penX, c.penY = x, y
	c.penFlags = newFlags
}

// close emits a final bridging edge between up to two pending
// intersections, closing the clipped subpath along the clip border.
func (c *clipPlotter) close() {
	if c.stackPos > 0 {
		last0 := c.pop()
		if c.stackPos > 0 {
			last1 := c.pop()
			c.addEdge(last1.X, last1.Y, last0.X, last0.Y)
		}
	}
}
