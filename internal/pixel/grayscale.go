package pixel

import "fmt"

// GrayscaleMode selects the per-pixel luminance formula used by Grayscale.
type GrayscaleMode string

const (
	// ModeLuma computes 0.299*R + 0.587*G + 0.114*B (ITU-R BT.601).
	ModeLuma GrayscaleMode = "luma"

	// ModeAverage computes (R + G + B) / 3.
	ModeAverage GrayscaleMode = "average"

	// ModeSimple passes one source channel through verbatim; which one is
	// chosen by GrayscaleOptions.Channel.
	ModeSimple GrayscaleMode = "simple"
)

// GrayscaleOptions configures Grayscale.
type GrayscaleOptions struct {
	// Mode is the luminance formula. The zero value means ModeLuma.
	Mode GrayscaleMode

	// Monochrome selects the output shape: one sample per pixel when set,
	// otherwise a full RGBA buffer with R=G=B and the original alpha.
	Monochrome bool

	// Channel indexes the sample used by ModeSimple (0=R, 1=G, 2=B, 3=A).
	// Ignored by the other modes.
	Channel int
}

// DefaultGrayscaleOptions returns the conventional defaults: luma mode,
// RGBA output, channel 1 (green) for simple mode.
func DefaultGrayscaleOptions() GrayscaleOptions {
	return GrayscaleOptions{Mode: ModeLuma, Channel: 1}
}

// Grayscale reduces an RGBA buffer to gray values.
//
// Only depth-4 input is accepted; anything else fails with ErrDepth. Each
// pixel's gray value is computed independently from its own R, G, B (and,
// for ModeSimple with Channel 3, A) samples, then stored with 8-bit
// clamped rounding.
//
// The output is a new buffer of the same dimensions. With
// Monochrome set it has depth 1 and carries just the gray samples;
// otherwise it has depth 4 with R=G=B=gray and the alpha sample copied
// from the input, not recomputed.
func Grayscale(buf *Buffer, opts GrayscaleOptions) (*Buffer, error) {
	if err := buf.checkDepth(4); err != nil {
		return nil, err
	}

	mode := opts.Mode
	if mode == "" {
		mode = ModeLuma
	}
	switch mode {
	case ModeLuma, ModeAverage:
	case ModeSimple:
		if opts.Channel < 0 || opts.Channel > 3 {
			return nil, fmt.Errorf("%w: channel %d out of range [0,3]", ErrOption, opts.Channel)
		}
	default:
		return nil, fmt.Errorf("%w: grayscale mode %q", ErrOption, mode)
	}

	pixels := buf.Width * buf.Height
	outDepth := 4
	if opts.Monochrome {
		outDepth = 1
	}
	out := make([]uint8, pixels*outDepth)

	for i := 0; i < pixels; i++ {
		px := buf.Data[i*4 : i*4+4]

		var gray uint8
		switch mode {
		case ModeLuma:
			gray = clampSample(0.299*float64(px[0]) + 0.587*float64(px[1]) + 0.114*float64(px[2]))
		case ModeAverage:
			gray = clampSample((float64(px[0]) + float64(px[1]) + float64(px[2])) / 3)
		case ModeSimple:
			gray = px[opts.Channel]
		}

		if opts.Monochrome {
			out[i] = gray
		} else {
			out[i*4+0] = gray
			out[i*4+1] = gray
			out[i*4+2] = gray
			out[i*4+3] = px[3]
		}
	}

	return &Buffer{Width: buf.Width, Height: buf.Height, Data: out}, nil
}
