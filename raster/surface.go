package raster

import "image"

const (
	R = 0
	G = 1
	B = 2
	A = 3

	BytesPerPixel = 4
)

// Surface is an RGBA pixel buffer laid out the way image.RGBA and
// ebiten.Image.WritePixels expect.
type Surface struct {
	Pix []byte

	Width, Height int
	Pitch         int
}

func NewSurface(width, height int) *Surface {
	var surface *Surface = &Surface{}
	surface.Resize(width, height)

	return surface
}

// Resize reallocates the pixel storage. Previous contents are discarded.
func (surface *Surface) Resize(width, height int) {
	surface.Width, surface.Height = max(width, 0), max(height, 0)
	surface.Pitch = surface.Width * BytesPerPixel
	surface.Pix = make([]byte, surface.Pitch*surface.Height)
}

// SetPixel implements PixelSink. Out of range writes are dropped.
func (surface *Surface) SetPixel(x, y int, color Color) {
	if x < 0 || y < 0 || x >= surface.Width || y >= surface.Height {
		return
	}

	var position int = y*surface.Pitch + x*BytesPerPixel

	surface.Pix[position+R] = color.R
	surface.Pix[position+G] = color.G
	surface.Pix[position+B] = color.B
	surface.Pix[position+A] = color.A
}

// Pixel returns the color stored at (x, y), or the zero Color when out of
// range.
func (surface *Surface) Pixel(x, y int) Color {
	if x < 0 || y < 0 || x >= surface.Width || y >= surface.Height {
		return Color{}
	}

	var position int = y*surface.Pitch + x*BytesPerPixel

	return Color{surface.Pix[position+R], surface.Pix[position+G], surface.Pix[position+B], surface.Pix[position+A]}
}

// Clear fills the whole surface with color.
func (surface *Surface) Clear(color Color) {
	for position := 0; position < len(surface.Pix); position += BytesPerPixel {
		surface.Pix[position+R] = color.R
		surface.Pix[position+G] = color.G
		surface.Pix[position+B] = color.B
		surface.Pix[position+A] = color.A
	}
}

// Image returns an image.RGBA view sharing the surface's storage.
func (surface *Surface) Image() *image.RGBA {
	return &image.RGBA{
		Pix:    surface.Pix,
		Stride: surface.Pitch,
		Rect:   image.Rect(0, 0, surface.Width, surface.Height),
	}
}
