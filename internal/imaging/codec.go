package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/pixel-filter-mcp/internal/pixel"
)

// RenderResult contains a pixel buffer encoded as base64 PNG for
// transport over the MCP protocol.
type RenderResult struct {
	// Width of the encoded image in pixels.
	Width int `json:"width"`

	// Height of the encoded image in pixels.
	Height int `json:"height"`

	// Depth is the channel depth of the source buffer (1 or 4).
	Depth int `json:"depth"`

	// ImageBase64 is the image encoded as base64 PNG.
	ImageBase64 string `json:"image_base64"`

	// MimeType is always "image/png".
	MimeType string `json:"mime_type"`
}

// EncodePNG encodes a pixel buffer as a base64 PNG result. Depth-1
// buffers encode as grayscale PNG, depth-4 buffers as RGBA; other
// depths fail with pixel.ErrDepth.
func EncodePNG(buf *pixel.Buffer) (*RenderResult, error) {
	img, err := toImage(buf)
	if err != nil {
		return nil, err
	}

	var out bytes.Buffer
	if err := png.Encode(&out, img); err != nil {
		return nil, fmt.Errorf("failed to encode PNG: %w", err)
	}

	return &RenderResult{
		Width:       buf.Width,
		Height:      buf.Height,
		Depth:       buf.Depth(),
		ImageBase64: base64.StdEncoding.EncodeToString(out.Bytes()),
		MimeType:    "image/png",
	}, nil
}

// toImage wraps a buffer's samples in the matching stdlib image type
// without copying.
func toImage(buf *pixel.Buffer) (image.Image, error) {
	rect := image.Rect(0, 0, buf.Width, buf.Height)
	switch buf.Depth() {
	case 1:
		return &image.Gray{Pix: buf.Data, Stride: buf.Width, Rect: rect}, nil
	case 4:
		return &image.NRGBA{Pix: buf.Data, Stride: buf.Width * 4, Rect: rect}, nil
	default:
		return nil, fmt.Errorf("%w: %d", pixel.ErrDepth, buf.Depth())
	}
}

// fromImage converts an image back to a buffer of the requested depth.
// Depth 4 keeps the full RGBA plane; depth 1 keeps the red channel,
// which is exact for images whose color channels agree.
func fromImage(img image.Image, depth int) (*pixel.Buffer, error) {
	nrgba := imaging.Clone(img)
	buf, err := pixel.New(nrgba.Pix, nrgba.Rect.Dx(), nrgba.Rect.Dy())
	if err != nil {
		return nil, err
	}
	if depth == 1 {
		return pixel.Grayscale(buf, pixel.GrayscaleOptions{
			Mode:       pixel.ModeSimple,
			Channel:    0,
			Monochrome: true,
		})
	}
	return buf, nil
}
