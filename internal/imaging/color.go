package imaging

import (
	"fmt"
	"sort"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/pixel-filter-mcp/internal/pixel"
)

// RGBAColor represents an RGBA color with 8-bit components.
type RGBAColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
	A uint8 `json:"a"` // Alpha/opacity component (0-255)
}

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L int `json:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

// ColorResult contains a color value in multiple representations.
type ColorResult struct {
	Hex  string    `json:"hex"`  // Hex format "#rrggbb" (no alpha)
	RGBA RGBAColor `json:"rgba"` // RGBA components with alpha
	HSL  HSLColor  `json:"hsl"`  // HSL representation
}

// SampleColor extracts the color at a pixel coordinate.
//
// For depth-1 buffers the gray sample is reported on all three color
// channels with full alpha. Coordinates outside the buffer fail with an
// error; depths other than 1 and 4 fail with pixel.ErrDepth.
func SampleColor(buf *pixel.Buffer, x, y int) (*ColorResult, error) {
	if x < 0 || x >= buf.Width || y < 0 || y >= buf.Height {
		return nil, fmt.Errorf("coordinates (%d,%d) outside buffer bounds %dx%d", x, y, buf.Width, buf.Height)
	}

	var r, g, b, a uint8
	switch buf.Depth() {
	case 1:
		v := buf.Data[y*buf.Width+x]
		r, g, b, a = v, v, v, 255
	case 4:
		i := (y*buf.Width + x) * 4
		r, g, b, a = buf.Data[i], buf.Data[i+1], buf.Data[i+2], buf.Data[i+3]
	default:
		return nil, fmt.Errorf("%w: %d", pixel.ErrDepth, buf.Depth())
	}

	return &ColorResult{
		Hex:  hexString(r, g, b),
		RGBA: RGBAColor{R: r, G: g, B: b, A: a},
		HSL:  rgbToHSL(r, g, b),
	}, nil
}

// ColorFrequency represents a color and its occurrence frequency.
type ColorFrequency struct {
	Hex        string  `json:"hex"`        // Hex color "#rrggbb" (quantized)
	Percentage float64 `json:"percentage"` // Percentage of pixels with this color (0-100)
}

// DominantColorsResult contains the most frequent colors in a buffer,
// sorted by frequency in descending order.
type DominantColorsResult struct {
	Colors []ColorFrequency `json:"colors"`
}

// DominantColors extracts the count most common colors from a buffer.
//
// To group similar colors, RGB components are quantized to multiples of
// 16 before counting, so colors within 16 units of each other per
// component fall into the same bucket. Alpha is ignored.
func DominantColors(buf *pixel.Buffer, count int) (*DominantColorsResult, error) {
	depth := buf.Depth()
	if depth != 1 && depth != 4 {
		return nil, fmt.Errorf("%w: %d", pixel.ErrDepth, depth)
	}

	pixels := buf.Width * buf.Height
	counts := make(map[[3]uint8]int)
	for i := 0; i < pixels; i++ {
		var r, g, b uint8
		if depth == 1 {
			r = buf.Data[i]
			g, b = r, r
		} else {
			r, g, b = buf.Data[i*4], buf.Data[i*4+1], buf.Data[i*4+2]
		}
		counts[[3]uint8{r / 16 * 16, g / 16 * 16, b / 16 * 16}]++
	}

	colors := make([]ColorFrequency, 0, len(counts))
	for key, cnt := range counts {
		colors = append(colors, ColorFrequency{
			Hex:        hexString(key[0], key[1], key[2]),
			Percentage: float64(cnt) / float64(pixels) * 100,
		})
	}

	sort.Slice(colors, func(i, j int) bool {
		if colors[i].Percentage != colors[j].Percentage {
			return colors[i].Percentage > colors[j].Percentage
		}
		return colors[i].Hex < colors[j].Hex
	})

	if len(colors) > count {
		colors = colors[:count]
	}

	return &DominantColorsResult{Colors: colors}, nil
}

// hexString formats 8-bit RGB components as "#rrggbb".
func hexString(r, g, b uint8) string {
	return colorful.Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
	}.Hex()
}

// rgbToHSL converts 8-bit RGB values to integer HSL components.
func rgbToHSL(r, g, b uint8) HSLColor {
	h, s, l := colorful.Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
	}.Hsl()
	return HSLColor{
		H: int(h),
		S: int(s * 100),
		L: int(l * 100),
	}
}
