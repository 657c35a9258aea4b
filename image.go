package raster

// PixelBuffer owns a contiguous row-major grid of packed 32-bit pixels in
// a declared channel format. A PixelBuffer is exclusively owned by its
// holder; TakeOwnership models the move semantics of the source this
// package is ported from by clearing the donor.
type PixelBuffer struct {
	pixels []uint32
	width  int
	height int
	format PixelFormat
}

// Init allocates storage for a width x height buffer of the given format.
// A successful call replaces any existing storage. Zero width or height
// is a precondition violation.
func (pb *PixelBuffer) Init(width, height int, format PixelFormat) error {
	if width <= 0 || height <= 0 {
		return preconditionErrorf("pixel buffer dimensions must be positive, got %dx%d", width, height)
	}
	if _, err := channelShifts(format); err != nil {
		return err
	}
	pb.pixels = make([]uint32, width*height)
	pb.width = width
	pb.height = height
	pb.format = format
	return nil
}

// Clear fills every pixel with color encoded in the buffer's format.
func (pb *PixelBuffer) Clear(color Color) error {
	word, err := color.Pack(pb.format)
	if err != nil {
		return err
	}
	pb.ClearRaw(word)
	return nil
}

// ClearRaw fills every pixel with the caller-supplied packed word.
func (pb *PixelBuffer) ClearRaw(packed uint32) {
	for i := range pb.pixels {
		pb.pixels[i] = packed
	}
}

// Clone returns an independent copy of pb.
func (pb *PixelBuffer) Clone() *PixelBuffer {
	clone := &PixelBuffer{
		pixels: make([]uint32, len(pb.pixels)),
		width:  pb.width,
		height: pb.height,
		format: pb.format,
	}
	copy(clone.pixels, pb.pixels)
	return clone
}

// TakeOwnership moves src's storage into pb and zeroes src, modeling the
// move-transfers-ownership contract from the pixel buffer's data model.
func (pb *PixelBuffer) TakeOwnership(src *PixelBuffer) {
	pb.pixels = src.pixels
	pb.width = src.width
	pb.height = src.height
	pb.format = src.format
	src.pixels = nil
	src.width = 0
	src.height = 0
}

// Rect returns (0, 0, width, height) as a Box.
func (pb *PixelBuffer) Rect() Box {
	return Box{X0: 0, Y0: 0, X1: float32(pb.width), Y1: float32(pb.height)}
}

// Format returns the buffer's pixel format.
func (pb *PixelBuffer) Format() PixelFormat { return pb.format }

// Width returns the buffer's width in pixels.
func (pb *PixelBuffer) Width() int { return pb.width }

// Height returns the buffer's height in pixels.
func (pb *PixelBuffer) Height() int { return pb.height }

// Pixels returns the raw packed-pixel storage in row-major order. The
// returned slice aliases the buffer's backing storage.
func (pb *PixelBuffer) Pixels() []uint32 { return pb.pixels }
