// github.com/native-m/r2d - a 2D anti-aliased vector rasterizer
//
// Package raster implements the core of a software 2D anti-aliased vector
// rasterizer: edge accumulation into cells, scanline coverage resolution,
// and Porter-Duff compositing onto a packed-pixel buffer.
package raster

import "math"

// PixelFormat identifies the channel layout of a packed 32-bit pixel.
type PixelFormat int

const (
	RGBA8 PixelFormat = iota
	ARGB8
	BGRA8
	RGBX8
	BGRX8
)

// bitpos holds the bit shift of each channel within a packed pixel word.
// A shift of -1 means the channel is not stored (written and read back as 255).
type bitpos struct {
	r, g, b, a int
}

// channelShifts returns the bit position table for format.
//
// ARGB8 and BGRA8 are deliberately NOT the same here, even though they
// were in the C++ source this package's algorithms were ported from: that
// source collapsed both formats onto one shift table, which cannot be
// correct for both channel orders simultaneously. See DESIGN.md.
func channelShifts(format PixelFormat) (bitpos, error) {
	switch format {
	case RGBA8:
		return bitpos{r: 0, g: 8, b: 16, a: 24}, nil
	case ARGB8:
		return bitpos{r: 16, g: 8, b: 0, a: 24}, nil
	case BGRA8:
		return bitpos{r: 8, g: 16, b: 0, a: 24}, nil
	case RGBX8:
		return bitpos{r: 0, g: 8, b: 16, a: -1}, nil
	case BGRX8:
		return bitpos{r: 16, g: 8, b: 0, a: -1}, nil
	default:
		return bitpos{}, preconditionErrorf("unknown pixel format %d", format)
	}
}

// Color is a straight-alpha RGBA color with components in [0,1].
type Color struct {
	R, G, B, A float32
}

// RGBA255 builds a Color from 8-bit integer channels.
func RGBA255(r, g, b, a uint8) Color {
	const div = 1.0 / 255.0
	return Color{
		R: float32(r) * div,
		G: float32(g) * div,
		B: float32(b) * div,
		A: float32(a) * div,
	}
}

// Premultiply returns the color with R, G, B scaled by A.
func (c Color) Premultiply() Color {
	return Color{R: c.R * c.A, G: c.G * c.A, B: c.B * c.A, A: c.A}
}

// Pack encodes c as a packed 32-bit pixel in the given format.
func (c Color) Pack(format PixelFormat) (uint32, error) {
	pos, err := channelShifts(format)
	if err != nil {
		return 0, err
	}
	r := uint32(math.Round(float64(c.R) * 255))
	g := uint32(math.Round(float64(c.G) * 255))
	b := uint32(math.Round(float64(c.B) * 255))
	a := uint32(math.Round(float64(c.A) * 255))
	word := r<<uint(pos.r) | g<<uint(pos.g) | b<<uint(pos.b)
	if pos.a >= 0 {
		word |= a << uint(pos.a)
	} else {
		word |= 255 << 24 // RGBX8/BGRX8 carry no alpha channel bits of their own.
	}
	return word, nil
}

// Unpack decodes a packed 32-bit pixel in the given format back to a Color.
func Unpack(word uint32, format PixelFormat) (Color, error) {
	pos, err := channelShifts(format)
	if err != nil {
		return Color{}, err
	}
	r := (word >> uint(pos.r)) & 0xFF
	g := (word >> uint(pos.g)) & 0xFF
	b := (word >> uint(pos.b)) & 0xFF
	a := uint32(255)
	if pos.a >= 0 {
		a = (word >> uint(pos.a)) & 0xFF
	}
	return RGBA255(uint8(r), uint8(g), uint8(b), uint8(a)), nil
}
