package pixel

import (
	"fmt"
	"sync"
)

// EdgeOptions configures Edge.
type EdgeOptions struct {
	// Type names the kernel to use. Empty means "laplacian".
	Type string

	// Level scales edge strength. The divisor passed to the convolution
	// is len(kernel)/Level, so higher levels amplify the response.
	// Values <= 0 mean 1.
	Level float64

	// Monochrome requests depth-1 output (one sample per pixel).
	Monochrome bool
}

// namedKernel pairs a kernel with the radius implied by its length.
type namedKernel struct {
	kernel Kernel
	radius int
}

var (
	kernelMu sync.RWMutex
	kernels  = map[string]namedKernel{
		"laplacian": {Kernel{-1, -1, -1, -1, 8, -1, -1, -1, -1}, 1},
	}
)

// RegisterKernel adds a named kernel to the set accepted by Edge, or
// replaces an existing one. The kernel length must be (2*radius+1)²,
// otherwise ErrOption is returned.
//
// RegisterKernel is safe for concurrent use with Edge.
func RegisterKernel(name string, k Kernel, radius int) error {
	if radius < 0 {
		return fmt.Errorf("%w: radius %d is negative", ErrOption, radius)
	}
	if side := 2*radius + 1; len(k) != side*side {
		return fmt.Errorf("%w: kernel length %d, want %d for radius %d",
			ErrOption, len(k), side*side, radius)
	}
	kernelMu.Lock()
	kernels[name] = namedKernel{kernel: k, radius: radius}
	kernelMu.Unlock()
	return nil
}

// Edge highlights edges in a buffer using a named convolution kernel.
//
// Input must have depth 1 or 4 (ErrDepth otherwise); an unregistered
// Type fails with ErrUnknownFilter. Depth-4 input is first reduced with
// Grayscale defaults (luma, full RGBA output) so that all color channels
// agree before the kernel runs; the caller's Monochrome flag applies
// only to the final convolution.
//
// On a uniform image the Laplacian response is zero everywhere in the
// interior; border pixels keep their (grayscaled) input values.
func Edge(buf *Buffer, opts EdgeOptions) (*Buffer, error) {
	if err := buf.checkDepth(1, 4); err != nil {
		return nil, err
	}

	name := opts.Type
	if name == "" {
		name = "laplacian"
	}
	kernelMu.RLock()
	nk, ok := kernels[name]
	kernelMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFilter, name)
	}

	level := opts.Level
	if level <= 0 {
		level = 1
	}

	src := buf
	if buf.Depth() == 4 {
		var err error
		src, err = Grayscale(buf, GrayscaleOptions{Mode: ModeLuma})
		if err != nil {
			return nil, err
		}
	}

	return Convolve(src, ConvolveOptions{
		Kernel:     nk.kernel,
		Radius:     nk.radius,
		Divisor:    float64(len(nk.kernel)) / level,
		Monochrome: opts.Monochrome,
	})
}
