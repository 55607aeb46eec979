package imaging

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/pixel-filter-mcp/internal/pixel"
)

// Crop extracts a rectangular region from a buffer, optionally rescaling
// it. The region runs from (x1,y1) inclusive to (x2,y2) exclusive; scale
// values other than 1.0 resize the result with Lanczos resampling.
//
// The output keeps the input's channel depth.
func Crop(buf *pixel.Buffer, x1, y1, x2, y2 int, scale float64) (*pixel.Buffer, error) {
	if x1 < 0 || y1 < 0 || x2 > buf.Width || y2 > buf.Height {
		return nil, fmt.Errorf("crop region (%d,%d)-(%d,%d) outside buffer bounds %dx%d",
			x1, y1, x2, y2, buf.Width, buf.Height)
	}
	if x1 >= x2 || y1 >= y2 {
		return nil, fmt.Errorf("invalid crop region: x1 must be < x2, y1 must be < y2")
	}

	img, err := toImage(buf)
	if err != nil {
		return nil, err
	}

	cropped := imaging.Crop(img, image.Rect(x1, y1, x2, y2))

	if scale != 1.0 && scale > 0 {
		newWidth := int(float64(cropped.Bounds().Dx()) * scale)
		newHeight := int(float64(cropped.Bounds().Dy()) * scale)
		cropped = imaging.Resize(cropped, newWidth, newHeight, imaging.Lanczos)
	}

	return fromImage(cropped, buf.Depth())
}
