package imaging

import (
	"fmt"

	"github.com/anthonynsimon/bild/blur"

	"github.com/ironsheep/pixel-filter-mcp/internal/pixel"
)

// Denoise applies a Gaussian blur to a buffer, typically as a noise
// reduction pass before edge detection. Radius is the blur radius in
// pixels; values <= 0 return an unmodified copy of the input.
//
// Depth-1 buffers come back as depth 1, depth-4 as depth 4; other
// depths fail with pixel.ErrDepth.
func Denoise(buf *pixel.Buffer, radius float64) (*pixel.Buffer, error) {
	if radius <= 0 {
		return buf.Clone(), nil
	}

	img, err := toImage(buf)
	if err != nil {
		return nil, err
	}

	blurred := blur.Gaussian(img, radius)

	out, err := fromImage(blurred, buf.Depth())
	if err != nil {
		return nil, fmt.Errorf("failed to convert blurred image: %w", err)
	}
	return out, nil
}
