package pixel

import (
	"fmt"
	"math"
)

// Buffer is a rectangular pixel buffer: a flat slice of 8-bit samples in
// row-major order plus the dimensions that give it shape.
//
// The number of samples per pixel (the channel depth) is implied by the
// slice length: len(Data) / (Width*Height). Depth 1 holds one gray sample
// per pixel; depth 4 holds interleaved R, G, B, A samples.
//
// Buffers are value-like: the transformations in this package read their
// input and return freshly allocated output, so a Buffer handed to this
// package is never modified.
type Buffer struct {
	// Width of the buffer in pixels. Always positive.
	Width int `json:"width"`

	// Height of the buffer in pixels. Always positive.
	Height int `json:"height"`

	// Data holds the samples, row-major, channels interleaved.
	Data []uint8 `json:"data"`
}

// New validates raw sample data against the given dimensions and wraps it
// in a Buffer.
//
// The data length must be a positive integer multiple of width*height and
// the resulting channel depth must not exceed 4; otherwise New fails with
// an error wrapping ErrShape. New does not copy data.
//
// Depths 2 and 3 are constructible here but rejected by every
// transformation, which accept depth 1 and 4 only.
func New(data []uint8, width, height int) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: dimensions %dx%d", ErrShape, width, height)
	}
	pixels := width * height
	if len(data) == 0 || len(data)%pixels != 0 {
		return nil, fmt.Errorf("%w: %d samples for %dx%d pixels", ErrShape, len(data), width, height)
	}
	if depth := len(data) / pixels; depth > 4 {
		return nil, fmt.Errorf("%w: channel depth %d exceeds 4", ErrShape, depth)
	}
	return &Buffer{Width: width, Height: height, Data: data}, nil
}

// Depth returns the number of samples per pixel.
func (b *Buffer) Depth() int {
	return len(b.Data) / (b.Width * b.Height)
}

// Clone returns a deep copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	data := make([]uint8, len(b.Data))
	copy(data, b.Data)
	return &Buffer{Width: b.Width, Height: b.Height, Data: data}
}

// checkDepth fails with ErrDepth unless the buffer's depth is one of the
// allowed values.
func (b *Buffer) checkDepth(allowed ...int) error {
	depth := b.Depth()
	for _, d := range allowed {
		if depth == d {
			return nil
		}
	}
	return fmt.Errorf("%w: %d (want one of %v)", ErrDepth, depth, allowed)
}

// clampSample stores a float result with 8-bit clamped semantics: rounded
// to the nearest integer and limited to [0, 255].
func clampSample(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(math.Round(v))
}
