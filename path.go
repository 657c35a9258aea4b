package raster

// Path is a placeholder for a retained path type. The core rasterizer
// this package implements consumes geometry directly (AddPolygon,
// AddPolyline, the clip plotter's move/line calls) rather than through a
// stored command list, so Path carries no state of its own yet; MoveTo
// and LineTo exist only to mark where a future retained-path API would
// attach.
type Path struct{}

// MoveTo is a no-op. Retained-path constant building is out of scope for
// the core rasterizer.
func (p *Path) MoveTo(x, y float32) {}

// LineTo is a no-op. Retained-path constant building is out of scope for
// the core rasterizer.
func (p *Path) LineTo(x, y float32) {}
