package raster

// Color is an 8-bit per channel RGBA color.
type Color struct {
	R, G, B, A uint8
}

// RGBA implements image/color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	a = uint32(c.A)
	a |= a << 8

	return
}

// Interpolate blends three colors channel by channel with the given
// barycentric weights. Results are rounded to the nearest integer and
// clamped to [0, 255]; a NaN channel becomes 0.
func Interpolate(c0, c1, c2 Color, alpha, beta, gamma float32) Color {
	return Color{
		channel(alpha*float32(c0.R) + beta*float32(c1.R) + gamma*float32(c2.R)),
		channel(alpha*float32(c0.G) + beta*float32(c1.G) + gamma*float32(c2.G)),
		channel(alpha*float32(c0.B) + beta*float32(c1.B) + gamma*float32(c2.B)),
		channel(alpha*float32(c0.A) + beta*float32(c1.A) + gamma*float32(c2.A)),
	}
}

func channel(value float32) uint8 {
	if !(value > 0) {
		return 0
	}

	if value >= 254.5 {
		return 255
	}

	return uint8(value + 0.5)
}
