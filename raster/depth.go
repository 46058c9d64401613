package raster

import "github.com/chewxy/math32"

// DepthBuffer holds one depth value per pixel of the current viewport.
//
// Resize reallocates the storage and discards the previous contents.
// Rasterizing is only valid once the buffer has been resized to the
// dimensions of the surface being drawn; Target clips to whatever the buffer
// currently covers, so a stale size draws a cropped frame instead of
// writing out of range.
type DepthBuffer struct {
	width, height int
	depth         []float32
}

// NewDepthBuffer allocates a buffer of width*height values, all set to
// positive infinity.
func NewDepthBuffer(width, height int) *DepthBuffer {
	var buffer *DepthBuffer = &DepthBuffer{}
	buffer.Resize(width, height)

	return buffer
}

// Resize reallocates the buffer for the new dimensions. Negative
// dimensions are treated as zero.
func (buffer *DepthBuffer) Resize(width, height int) {
	buffer.width, buffer.height = max(width, 0), max(height, 0)
	buffer.depth = make([]float32, buffer.width*buffer.height)
	buffer.Clear()
}

// Clear resets every value to positive infinity.
func (buffer *DepthBuffer) Clear() {
	var far float32 = math32.Inf(1)

	for index := range buffer.depth {
		buffer.depth[index] = far
	}
}

func (buffer *DepthBuffer) Width() int  { return buffer.width }
func (buffer *DepthBuffer) Height() int { return buffer.height }

// InBounds reports whether (x, y) addresses a value in the buffer.
func (buffer *DepthBuffer) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < buffer.width && y < buffer.height
}

// At returns the stored depth at (x, y). Out of range coordinates report
// negative infinity so that no depth test can pass there.
func (buffer *DepthBuffer) At(x, y int) float32 {
	if !buffer.InBounds(x, y) {
		return math32.Inf(-1)
	}

	return buffer.depth[y*buffer.width+x]
}

// Set stores depth at (x, y). Out of range writes are dropped.
func (buffer *DepthBuffer) Set(x, y int, depth float32) {
	if !buffer.InBounds(x, y) {
		return
	}

	buffer.depth[y*buffer.width+x] = depth
}
