package raster

import "seehuhn.de/go/geom/matrix"

// Context binds a cell grid, a render target, and the current drawing
// state (clip, source color, blend mode, and stroke parameters) into the
// single façade the draw operations are called on. A Context is
// exclusively owned by its holder; none of its fields are safe for
// concurrent use.
type Context struct {
	grid   *CellGrid
	target *PixelBuffer

	clip      Box
	source    Color
	blendMode BlendMode

	lineWidth float32
	lineJoin  LineJoin

	// miterLimit is stored for parity with the field present but
	// unconsulted in the source this package is ported from (see
	// SPEC_FULL.md §9's "Miter limit" open-question resolution): it is
	// never read by AddPolyline/strokeSidePoints, so sharp joins still
	// produce an unbounded miter spike regardless of its value.
	miterLimit float32

	plotter clipPlotter

	// preTransform and postTransform are no-op extension points: stored
	// but never applied to draw-time geometry. Callers are responsible
	// for delivering geometry already in pixel coordinates; a future
	// transform-aware build point would apply preTransform to incoming
	// points and postTransform to the clip box, but that wiring is out
	// of scope here.
	preTransform  matrix.Matrix
	postTransform matrix.Matrix
}

// NewContext returns a Context with identity pre/post transforms, a fully
// opaque black source, BlendSrcOver, a one-device-unit line width,
// LineJoinMiter, and a miter limit of 4 (unconsulted; see SetMiterLimit).
// The caller must still call SetRenderTarget and SetCellGrid before
// drawing.
func NewContext() *Context {
	return &Context{
		source:        Color{R: 0, G: 0, B: 0, A: 1},
		blendMode:     BlendSrcOver,
		lineWidth:     1,
		lineJoin:      LineJoinMiter,
		miterLimit:    4,
		preTransform:  matrix.Identity,
		postTransform: matrix.Identity,
	}
}

// SetPreTransform stores m as the context's pre-transform. It is a no-op
// extension point: m is recorded but never applied to geometry handed to
// Add*/Draw* calls, which is expected to already be in pixel coordinates.
func (c *Context) SetPreTransform(m matrix.Matrix) { c.preTransform = m }

// SetPostTransform stores m as the context's post-transform. It is a
// no-op extension point, recorded but never applied at draw or render
// time.
func (c *Context) SetPostTransform(m matrix.Matrix) { c.postTransform = m }

// SetRenderTarget sets the pixel buffer Render will composite into.
func (c *Context) SetRenderTarget(target *PixelBuffer) { c.target = target }

// SetCellGrid sets the cell grid that accumulates coverage for subsequent
// Add*/Draw* calls until the next Render.
func (c *Context) SetCellGrid(grid *CellGrid) { c.grid = grid }

// SetClipRect sets the box Render restricts compositing to, and the box
// the clip plotter clips plotted polygons against.
func (c *Context) SetClipRect(clip Box) { c.clip = clip }

// SetSource sets the flat fill/stroke color used by subsequent Draw calls.
func (c *Context) SetSource(color Color) { c.source = color }

// SetBlendMode sets the Porter-Duff operator Render uses.
func (c *Context) SetBlendMode(mode BlendMode) { c.blendMode = mode }

// SetLineThickness sets the width subsequent DrawLine/DrawPolyline calls
// stroke with.
func (c *Context) SetLineThickness(w float32) { c.lineWidth = w }

// SetLineJoin sets the join style subsequent DrawPolyline calls use at
// interior vertices.
func (c *Context) SetLineJoin(join LineJoin) { c.lineJoin = join }

// SetMiterLimit stores a miter limit on the context. It is a no-op
// extension point, matching the field present but unconsulted in the
// source this package is ported from (see SPEC_FULL.md §9): recorded,
// but never read by AddPolyline, so it does not currently clamp or
// degenerate sharp miter joins.
func (c *Context) SetMiterLimit(limit float32) { c.miterLimit = limit }

// AddPolygon feeds the edges of a closed polygon directly to the edge
// walker, bypassing the clip plotter entirely. The caller is responsible
// for ensuring points already lie within the clip box; this path exists
// for callers that pre-clip geometry themselves and want to avoid the
// plotter's bridging-stack overhead.
func (c *Context) AddPolygon(points []Point) {
	if len(points) < 2 {
		return
	}
	for i := 0; i < len(points); i++ {
		j := (i + 1) % len(points)
		c.grid.AddEdgeF(points[i].X, points[i].Y, points[j].X, points[j].Y)
	}
}

// AddPolygonIndexed is AddPolygon over an index buffer into points,
// feeding the edges of the closed loop points[indices[0]] ->
// points[indices[1]] -> ... -> points[indices[0]].
func (c *Context) AddPolygonIndexed(points []Point, indices []int) {
	if len(indices) < 2 {
		return
	}
	resolved := make([]Point, len(indices))
	for i, idx := range indices {
		resolved[i] = points[idx]
	}
	c.AddPolygon(resolved)
}

// PlotMoveTo starts (or restarts) a clipped subpath at (x, y). It resets
// the plotter's pending clip-border bridging stack, so an unclosed prior
// subpath loses any bridge it was owed.
func (c *Context) PlotMoveTo(x, y float32) {
	c.plotter = newClipPlotter(c.clip, c.grid.AddEdgeF)
	c.plotter.moveTo(x, y)
}

// PlotLineTo extends the current clipped subpath to (x, y), emitting only
// the visible portion of the segment (and any clip-border bridging it
// requires) to the edge walker.
func (c *Context) PlotLineTo(x, y float32) {
	c.plotter.lineTo(x, y)
}

// PlotClose closes the current clipped subpath, emitting a final bridging
// edge between any clip-border intersections still pending.
func (c *Context) PlotClose() {
	c.plotter.close()
}

// plotPolygon runs a closed polygon through PlotMoveTo/PlotLineTo/
// PlotClose, emitting only the edges of its visible portion (clipped
// against c.clip) to the edge walker.
func (c *Context) plotPolygon(points []Point) {
	if len(points) < 2 {
		return
	}
	c.PlotMoveTo(points[0].X, points[0].Y)
	for i := 1; i < len(points); i++ {
		c.PlotLineTo(points[i].X, points[i].Y)
	}
	c.PlotLineTo(points[0].X, points[0].Y)
	c.PlotClose()
}

// DrawRectFilled fills the axis-aligned rectangle r with the current
// source color via the clip plotter.
func (c *Context) DrawRectFilled(r Rect) error {
	box := BoxFromRect(r)
	points := []Point{
		{X: box.X0, Y: box.Y0},
		{X: box.X1, Y: box.Y0},
		{X: box.X1, Y: box.Y1},
		{X: box.X0, Y: box.Y1},
	}
	c.plotPolygon(points)
	return c.render()
}

// DrawTriangleFilled fills the triangle (p0,p1,p2) with the current
// source color via the clip plotter.
func (c *Context) DrawTriangleFilled(p0, p1, p2 Point) error {
	c.plotPolygon([]Point{p0, p1, p2})
	return c.render()
}

// DrawPolygon fills an arbitrary closed polygon with the current source
// color via the clip plotter.
func (c *Context) DrawPolygon(points []Point) error {
	c.plotPolygon(points)
	return c.render()
}

// DrawPolyline strokes an open polyline at the current line width and
// join style through the clip plotter — matching spec.md §4.5's add_line/
// add_polyline, which plot their generated outline through plot_move_to/
// plot_line_to/plot_close rather than feeding the edge walker directly —
// and composites the result with the current source color.
func (c *Context) DrawPolyline(points []Point) error {
	verts := polylineOutlineVertices(points, c.lineWidth, c.lineJoin)
	if verts != nil {
		c.plotPolygon(verts)
	}
	return c.render()
}

// DrawLine strokes a single segment at the current line width through the
// clip plotter (see DrawPolyline).
func (c *Context) DrawLine(x0, y0, x1, y1 float32) error {
	quad, ok := lineQuadVertices(x0, y0, x1, y1, c.lineWidth)
	if ok {
		c.plotPolygon(quad[:])
	}
	return c.render()
}

// render composites the grid's accumulated coverage into the render
// target with the current source color and blend mode, then discards the
// grid so the next Draw call starts from an empty accumulation.
func (c *Context) render() error {
	err := Render(c.grid, c.target, c.clip, c.source, c.blendMode)
	c.grid.Discard()
	return err
}
