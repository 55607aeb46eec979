package pixel

import "fmt"

// Kernel is a flat, row-major square convolution matrix of signed
// weights. A kernel of radius r has side 2r+1 and length (2r+1)².
type Kernel []int

// ConvolveOptions configures Convolve. Kernel and Radius are required;
// the rest default to their zero-value behavior described below.
type ConvolveOptions struct {
	// Kernel holds the flat weight matrix. Required; its length must be
	// (2*Radius+1)².
	Kernel Kernel

	// Radius is the kernel half-width. Required (zero is a valid radius,
	// a negative value is not).
	Radius int

	// Divisor normalizes each weighted sum before storage. Zero means 1.
	Divisor float64

	// Monochrome collapses depth-4 input to depth-1 output, writing one
	// sample per pixel (computed from the red channel) instead of four.
	// It changes the output shape only and has no effect on depth-1
	// input. Intended for input whose color channels are already equal.
	Monochrome bool

	// SymmetricBorder narrows the trailing border band to match the
	// leading one. See the border discussion on Convolve.
	SymmetricBorder bool
}

// Convolve applies a square kernel to each channel of a buffer.
//
// Input must have depth 1 or 4 (ErrDepth otherwise). A nil kernel, a
// negative radius, or a kernel whose length is not (2*Radius+1)² fails
// with ErrOption.
//
// For every interior pixel the kernel is laid over the (2r+1)×(2r+1)
// neighborhood of the same channel, the weighted sum is divided by
// Divisor, and the result is stored with 8-bit clamped rounding. The
// alpha channel of depth-4 input is never convolved; its samples are
// copied verbatim.
//
// # Borders
//
// Border pixels are not convolved: they are copied verbatim from the
// input at the same channel and position. The leading band covers
// x < r (resp. y < r); the trailing band covers x > width-2r (resp.
// y > height-2r). At radius 1 the two bands are both one pixel wide,
// but for larger radii the trailing band is wider than the leading one.
// Setting SymmetricBorder changes the trailing test to x > width-r-1
// (resp. y > height-r-1), making both bands exactly r pixels wide.
func Convolve(buf *Buffer, opts ConvolveOptions) (*Buffer, error) {
	if err := buf.checkDepth(1, 4); err != nil {
		return nil, err
	}
	if opts.Kernel == nil {
		return nil, fmt.Errorf("%w: filter kernel is required", ErrOption)
	}
	if opts.Radius < 0 {
		return nil, fmt.Errorf("%w: radius %d is negative", ErrOption, opts.Radius)
	}
	if side := 2*opts.Radius + 1; len(opts.Kernel) != side*side {
		return nil, fmt.Errorf("%w: kernel length %d, want %d for radius %d",
			ErrOption, len(opts.Kernel), side*side, opts.Radius)
	}

	divisor := opts.Divisor
	if divisor == 0 {
		divisor = 1
	}

	w, h, r := buf.Width, buf.Height, opts.Radius
	depth := buf.Depth()

	mono := opts.Monochrome && depth == 4
	outDepth := depth
	if mono {
		outDepth = 1
	}
	out := make([]uint8, w*h*outDepth)

	// Trailing border boundary; pixels strictly beyond it are copied.
	trailX, trailY := w-r*2, h-r*2
	if opts.SymmetricBorder {
		trailX, trailY = w-r-1, h-r-1
	}

	// Collapsed output reads channel 0 only; alpha is dropped with the
	// other shape channels.
	channels := outDepth
	for ch := 0; ch < channels; ch++ {
		alpha := depth == 4 && ch == 3
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				src := (y*w+x)*depth + ch
				dst := (y*w+x)*outDepth + ch

				if alpha || y < r || x < r || y > trailY || x > trailX {
					out[dst] = buf.Data[src]
					continue
				}

				sum := 0
				k := 0
				for ky := -r; ky <= r; ky++ {
					row := ((y+ky)*w + x - r) * depth
					for kx := 0; kx <= 2*r; kx++ {
						sum += int(buf.Data[row+kx*depth+ch]) * opts.Kernel[k]
						k++
					}
				}
				out[dst] = clampSample(float64(sum) / divisor)
			}
		}
	}

	return &Buffer{Width: w, Height: h, Data: out}, nil
}
