package raster

import "testing"

func TestChannelShiftsDistinguishARGBAndBGRA(t *testing.T) {
	argb, err := channelShifts(ARGB8)
	if err != nil {
		t.Fatal(err)
	}
	bgra, err := channelShifts(BGRA8)
	if err != nil {
		t.Fatal(err)
	}
	if argb == bgra {
		t.Fatalf("ARGB8 and BGRA8 must not share a shift table, got %+v for both", argb)
	}
	if argb.r != 16 || argb.g != 8 || argb.b != 0 || argb.a != 24 {
		t.Fatalf("unexpected ARGB8 shifts: %+v", argb)
	}
	if bgra.r != 8 || bgra.g != 16 || bgra.b != 0 || bgra.a != 24 {
		t.Fatalf("unexpected BGRA8 shifts: %+v", bgra)
	}
}

func TestChannelShiftsUnknownFormat(t *testing.T) {
	if _, err := channelShifts(PixelFormat(99)); err == nil {
		t.Fatal("expected an error for an unknown pixel format")
	}
}

func TestColorPackRoundTrip(t *testing.T) {
	for _, format := range []PixelFormat{RGBA8, ARGB8, BGRA8, RGBX8, BGRX8} {
		c := RGBA255(10, 20, 30, 200)
		word, err := c.Pack(format)
		if err != nil {
			t.Fatalf("format %d: %v", format, err)
		}
		got, err := Unpack(word, format)
		if err != nil {
			t.Fatalf("format %d: %v", format, err)
		}
		if format == RGBX8 || format == BGRX8 {
			// Alpha is not stored; Unpack reports fully opaque regardless
			// of what was packed in.
			if got.A != 1 {
				t.Fatalf("format %d: expected alpha 1, got %v", format, got.A)
			}
			continue
		}
		if !closeColor(c, got, 1.0/255) {
			t.Fatalf("format %d: round trip mismatch, want %+v got %+v", format, c, got)
		}
	}
}

func TestColorPremultiply(t *testing.T) {
	c := Color{R: 1, G: 0.5, B: 0.25, A: 0.5}
	p := c.Premultiply()
	if p.A != c.A {
		t.Fatalf("premultiply must not change alpha, got %v", p.A)
	}
	if !closeFloat(p.R, 0.5, 1e-6) || !closeFloat(p.G, 0.25, 1e-6) || !closeFloat(p.B, 0.125, 1e-6) {
		t.Fatalf("unexpected premultiplied color: %+v", p)
	}
}

func closeFloat(a, b, eps float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= eps
}

func closeColor(a, b Color, eps float32) bool {
	return closeFloat(a.R, b.R, eps) && closeFloat(a.G, b.G, eps) &&
		closeFloat(a.B, b.B, eps) && closeFloat(a.A, b.A, eps)
}
