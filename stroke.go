package raster

import "seehuhn.de/go/geom/vec"

// LineJoin selects how AddPolyline fills the outer corner at each
// interior vertex of a stroked polyline.
type LineJoin int

const (
	LineJoinMiter LineJoin = iota
	LineJoinBevel
	LineJoinRound
	LineJoinNone
)

// lineQuadVertices computes the four corners, in winding order, of the
// capless w-wide rectangle centered on the segment from (x0,y0) to
// (x1,y1). ok is false for a degenerate (zero-length) segment, which has
// no well-defined normal.
func lineQuadVertices(x0, y0, x1, y1, w float32) (quad [4]Point, ok bool) {
	a := vec.Vec2{X: float64(x0), Y: float64(y0)}
	b := vec.Vec2{X: float64(x1), Y: float64(y1)}
	t := b.Sub(a)
	length := t.Length()
	if length == 0 {
		return [4]Point{}, false
	}
	t = t.Mul(1 / length)
	n := vec.Vec2{X: -t.Y, Y: t.X}.Mul(float64(w) / 2)

	p0 := a.Add(n)
	p1 := b.Add(n)
	p2 := b.Sub(n)
	p3 := a.Sub(n)
	return [4]Point{PointFromVec2(p0), PointFromVec2(p1), PointFromVec2(p2), PointFromVec2(p3)}, true
}

// polylineOutlineVertices computes the full closed outline loop for a
// w-wide stroke of points with the given join style: the forward (left)
// offset pass from points[0] to points[n-1], immediately followed by the
// reverse (right) offset pass back to points[0]. The two passes meeting
// back-to-back, and the loop's implicit closing edge from the last
// vertex back to the first, are exactly the two end caps spec.md §4.5
// describes as plain "vertex ± n" endpoints — no separate cap step is
// needed once both passes are represented as one vertex loop. Returns nil
// if points has fewer than 2 elements.
func polylineOutlineVertices(points []Point, w float32, join LineJoin) []Point {
	if len(points) < 2 {
		return nil
	}
	if len(points) == 2 {
		quad, ok := lineQuadVertices(points[0].X, points[0].Y, points[1].X, points[1].Y, w)
		if !ok {
			return nil
		}
		return quad[:]
	}

	half := float64(w) / 2
	fwd := strokeSidePoints(points, half, join, false)
	rev := strokeSidePoints(points, half, join, true)

	out := make([]Point, 0, len(fwd)+len(rev))
	for _, v := range fwd {
		out = append(out, PointFromVec2(v))
	}
	for _, v := range rev {
		out = append(out, PointFromVec2(v))
	}
	return out
}

// strokeSidePoints walks points once (forward when reverse is false,
// backward when true) and returns, in order, the offset boundary vertices
// on one side of the polyline together, when join is LineJoinMiter, with
// the miter join wedge vertex at each interior vertex whose miter tip is
// well defined. It is pure geometry with no rasterizer side
// effects; two calls — one per direction — concatenated together trace
// the full stroked outline, matching the double-walk shape of the
// source's add_polyline.
func strokeSidePoints(points []Point, half float64, join LineJoin, reverse bool) []vec.Vec2 {
	n := len(points)
	idx := func(i int) vec.Vec2 {
		if reverse {
			i = n - 1 - i
		}
		return vec.Vec2{X: float64(points[i].X), Y: float64(points[i].Y)}
	}

	prev := idx(0)
	cur := idx(1)
	prevTangent := unitTangent(prev, cur)
	prevNormal := leftNormal(prevTangent)

	prevOffsetA := prev.Add(prevNormal.Mul(half))
	prevOffsetB := cur.Add(prevNormal.Mul(half))
	pts := []vec.Vec2{prevOffsetA, prevOffsetB}

	for i := 1; i < n-1; i++ {
		next := idx(i + 1)
		tangent := unitTangent(cur, next)
		normal := leftNormal(tangent)

		joinTip, ok := miterTip(cur, prevNormal, normal, half)
		if join == LineJoinMiter && ok {
			pts = append(pts, joinTip)
		}

		nextOffsetA := cur.Add(normal.Mul(half))
		nextOffsetB := next.Add(normal.Mul(half))
		pts = append(pts, nextOffsetA, nextOffsetB)

		cur = next
		prevNormal = normal
	}

	return pts
}

// AddLine feeds the four edges of a capless w-wide rectangle centered on
// the segment from (x0,y0) to (x1,y1) directly to the edge walker,
// bypassing the clip plotter — the same direct-to-edge-walker contract
// AddPolygon documents for pre-clipped geometry (spec.md §4.7). Callers
// that need clipping against a box should go through Context.DrawLine
// instead, which plots the same quad through PlotMoveTo/PlotLineTo/
// PlotClose. A degenerate (zero-length) segment contributes nothing.
func (g *CellGrid) AddLine(x0, y0, x1, y1, w float32) {
	quad, ok := lineQuadVertices(x0, y0, x1, y1, w)
	if !ok {
		return
	}
	g.addClosedEdges(quad[:])
}

// AddPolyline strokes an open polyline of width w through points with
// miter joins at each interior vertex when join is LineJoinMiter, feeding
// the resulting outline directly to the edge walker and bypassing the
// clip plotter (see AddLine). Fewer than 3 points degrade to AddLine on
// the single segment (2 points) or contribute nothing (0 or 1).
// LineJoinBevel, LineJoinRound, and LineJoinNone are not distinguished
// from each other: each leaves adjacent segment offsets connected by a
// straight edge with no join wedge, so the outer corner is left unfilled
// rather than beveled or rounded.
func (g *CellGrid) AddPolyline(points []Point, w float32, join LineJoin) {
	verts := polylineOutlineVertices(points, w, join)
	if verts == nil {
		return
	}
	g.addClosedEdges(verts)
}

// addClosedEdges feeds the boundary edges of the closed polygon points,
// in order, directly to the edge walker.
func (g *CellGrid) addClosedEdges(points []Point) {
	n := len(points)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		g.AddEdgeF(points[i].X, points[i].Y, points[j].X, points[j].Y)
	}
}

func unitTangent(a, b vec.Vec2) vec.Vec2 {
	t := b.Sub(a)
	length := t.Length()
	if length == 0 {
		return vec.Vec2{X: 1, Y: 0}
	}
	return t.Mul(1 / length)
}

func leftNormal(t vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: -t.Y, Y: t.X}
}

// miterTip computes the outer miter point at a vertex given the left
// normals of the incoming and outgoing segments and the half stroke
// width, following the bisector/half-angle reciprocal construction: the
// miter length is half / sin(theta/2), along the normalized sum of the two
// normals. ok is false when the joint is a near-180-degree turn and the
// bisector direction is degenerate.
func miterTip(vertex, n0, n1 vec.Vec2, half float64) (tip vec.Vec2, ok bool) {
	sum := n0.Add(n1)
	sumLen := sum.Length()
	if sumLen < 1e-6 {
		return vec.Vec2{}, false
	}
	bisector := sum.Mul(1 / sumLen)

	cosHalf := bisector.Dot(n0)
	if cosHalf < 1e-6 {
		return vec.Vec2{}, false
	}
	miterLen := half / cosHalf
	return vertex.Add(bisector.Mul(miterLen)), true
}
