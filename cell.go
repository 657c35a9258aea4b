package raster

// Cell is a per-pixel accumulator of signed cover and area, stamped with
// the generation it was last written in. A cell is "live" — its cover and
// area are meaningful — only while generation equals the owning grid's
// current generation; otherwise its stored bits are stale and must be
// treated as zero.
type Cell struct {
	generation uint32
	cover      int32
	area       int32
}

// CellGrid is a sparse (cover, area) accumulator grid over W x H pixels.
// Rows are stored with a one-cell right sentinel (stride = W+1) so the
// edge walker can write one column past the last pixel without a bounds
// check during the final span of a scanline.
//
// Clearing between frames never touches memory: Discard just increments
// the generation counter, so every cell not re-written this frame reads
// back as zero. A CellGrid is exclusively owned by its holder.
type CellGrid struct {
	cells              []Cell
	width              int
	height             int
	stride             int
	currentGeneration  uint32
	previousGeneration uint32
}

// Init allocates (width+1)*height cells and zeroes the grid. Zero width
// or height is a precondition violation.
func (g *CellGrid) Init(width, height int) error {
	if width <= 0 || height <= 0 {
		return preconditionErrorf("cell grid dimensions must be positive, got %dx%d", width, height)
	}
	stride := width + 1
	g.cells = make([]Cell, stride*height)
	g.width = width
	g.height = height
	g.stride = stride
	g.currentGeneration = 0
	g.previousGeneration = 0
	return nil
}

// Clear re-zeros every cell and resets the generation counters. This is
// the O(W*H) fallback Discard uses when the generation counter wraps.
func (g *CellGrid) Clear() {
	for i := range g.cells {
		g.cells[i] = Cell{}
	}
	g.currentGeneration = 0
	g.previousGeneration = 0
}

// Discard invalidates the current frame's cell contents by advancing the
// generation counter. If the counter wraps to zero, a full Clear is
// performed since generation-based liveness can no longer distinguish
// stale cells from the new frame.
func (g *CellGrid) Discard() {
	g.previousGeneration = g.currentGeneration
	g.currentGeneration++
	if g.currentGeneration == 0 {
		g.Clear()
	}
}

// Clone returns an independent copy of g, including its generation state.
func (g *CellGrid) Clone() *CellGrid {
	clone := &CellGrid{
		cells:              make([]Cell, len(g.cells)),
		width:              g.width,
		height:             g.height,
		stride:             g.stride,
		currentGeneration:  g.currentGeneration,
		previousGeneration: g.previousGeneration,
	}
	copy(clone.cells, g.cells)
	return clone
}

// Width returns the grid's width in cells (not counting the sentinel column).
func (g *CellGrid) Width() int { return g.width }

// Height returns the grid's height in cells.
func (g *CellGrid) Height() int { return g.height }

// Stride returns the grid's row stride, width+1.
func (g *CellGrid) Stride() int { return g.stride }

// live reports whether idx holds this frame's live cover/area.
func (g *CellGrid) live(idx int) bool {
	return g.cells[idx].generation == g.currentGeneration
}

// at returns the logical (cover, area) of the cell at (x, y), treating a
// stale cell (wrong generation) as (0, 0) regardless of its stored bits.
func (g *CellGrid) at(x, y int) (cover, area int32) {
	idx := y*g.stride + x
	if !g.live(idx) {
		return 0, 0
	}
	c := &g.cells[idx]
	return c.cover, c.area
}

// accumulate adds (cover, area) into the cell at raw index idx, replacing
// stale bits from a prior generation rather than adding to them, and
// stamping the cell with the current generation.
func (g *CellGrid) accumulate(idx int, cover, area int32) {
	c := &g.cells[idx]
	if c.generation == g.currentGeneration {
		c.cover += cover
		c.area += area
	} else {
		c.generation = g.currentGeneration
		c.cover = cover
		c.area = area
	}
}
