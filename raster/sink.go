package raster

// PixelSink receives every pixel that survives the depth test.
type PixelSink interface {
	SetPixel(x, y int, color Color)
}

// PixelSinkFunc adapts a plain function to PixelSink.
type PixelSinkFunc func(x, y int, color Color)

func (f PixelSinkFunc) SetPixel(x, y int, color Color) {
	f(x, y, color)
}
