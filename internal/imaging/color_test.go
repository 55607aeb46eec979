package imaging

import (
	"errors"
	"testing"

	"github.com/ironsheep/pixel-filter-mcp/internal/pixel"
)

func TestSampleColor_RGBA(t *testing.T) {
	buf := testBuffer(t, 2, 1, 4)
	copy(buf.Data, []uint8{
		255, 0, 0, 255, // pure red
		16, 32, 64, 128,
	})

	red, err := SampleColor(buf, 0, 0)
	if err != nil {
		t.Fatalf("SampleColor failed: %v", err)
	}
	if red.Hex != "#ff0000" {
		t.Errorf("Hex: got %s, want #ff0000", red.Hex)
	}
	if red.RGBA != (RGBAColor{R: 255, A: 255}) {
		t.Errorf("RGBA: got %+v", red.RGBA)
	}
	if red.HSL.H != 0 || red.HSL.S != 100 || red.HSL.L != 50 {
		t.Errorf("HSL: got %+v, want {0 100 50}", red.HSL)
	}

	other, err := SampleColor(buf, 1, 0)
	if err != nil {
		t.Fatalf("SampleColor failed: %v", err)
	}
	if other.Hex != "#102040" {
		t.Errorf("Hex: got %s, want #102040", other.Hex)
	}
	if other.RGBA.A != 128 {
		t.Errorf("alpha: got %d, want 128", other.RGBA.A)
	}
}

func TestSampleColor_Gray(t *testing.T) {
	buf := testBuffer(t, 2, 2, 1)
	buf.Data[3] = 200

	res, err := SampleColor(buf, 1, 1)
	if err != nil {
		t.Fatalf("SampleColor failed: %v", err)
	}
	if res.RGBA != (RGBAColor{R: 200, G: 200, B: 200, A: 255}) {
		t.Errorf("RGBA: got %+v, want gray 200", res.RGBA)
	}
	if res.Hex != "#c8c8c8" {
		t.Errorf("Hex: got %s, want #c8c8c8", res.Hex)
	}
}

func TestSampleColor_OutOfBounds(t *testing.T) {
	buf := testBuffer(t, 2, 2, 4)

	for _, p := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		if _, err := SampleColor(buf, p[0], p[1]); err == nil {
			t.Errorf("(%d,%d): SampleColor should fail", p[0], p[1])
		}
	}
}

func TestSampleColor_BadDepth(t *testing.T) {
	buf := testBuffer(t, 2, 2, 3)
	if _, err := SampleColor(buf, 0, 0); !errors.Is(err, pixel.ErrDepth) {
		t.Errorf("got %v, want pixel.ErrDepth", err)
	}
}

func TestDominantColors(t *testing.T) {
	// Three pixels of one quantized bucket, one of another.
	buf := testBuffer(t, 2, 2, 4)
	copy(buf.Data, []uint8{
		240, 0, 0, 255,
		240, 0, 0, 255,
		245, 5, 10, 255, // same bucket as 240,0,0 after /16 quantization
		0, 240, 0, 255,
	})

	result, err := DominantColors(buf, 5)
	if err != nil {
		t.Fatalf("DominantColors failed: %v", err)
	}

	if len(result.Colors) != 2 {
		t.Fatalf("color count: got %d, want 2", len(result.Colors))
	}
	if result.Colors[0].Hex != "#f00000" {
		t.Errorf("top color: got %s, want #f00000", result.Colors[0].Hex)
	}
	if result.Colors[0].Percentage != 75 {
		t.Errorf("top percentage: got %v, want 75", result.Colors[0].Percentage)
	}
	if result.Colors[1].Hex != "#00f000" {
		t.Errorf("second color: got %s, want #00f000", result.Colors[1].Hex)
	}
}

func TestDominantColors_CountLimit(t *testing.T) {
	buf := testBuffer(t, 4, 1, 4)
	copy(buf.Data, []uint8{
		0, 0, 0, 255,
		64, 64, 64, 255,
		128, 128, 128, 255,
		240, 240, 240, 255,
	})

	result, err := DominantColors(buf, 2)
	if err != nil {
		t.Fatalf("DominantColors failed: %v", err)
	}
	if len(result.Colors) != 2 {
		t.Errorf("color count: got %d, want 2", len(result.Colors))
	}
}

func TestDominantColors_Gray(t *testing.T) {
	buf := testBuffer(t, 2, 1, 1)
	buf.Data[0], buf.Data[1] = 32, 32

	result, err := DominantColors(buf, 5)
	if err != nil {
		t.Fatalf("DominantColors failed: %v", err)
	}
	if len(result.Colors) != 1 {
		t.Fatalf("color count: got %d, want 1", len(result.Colors))
	}
	if result.Colors[0].Hex != "#202020" || result.Colors[0].Percentage != 100 {
		t.Errorf("got %+v, want #202020 at 100%%", result.Colors[0])
	}
}
