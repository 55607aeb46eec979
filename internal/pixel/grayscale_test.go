package pixel

import (
	"errors"
	"testing"
)

func TestGrayscale_Luma(t *testing.T) {
	// One red, one green, one blue, one white pixel.
	buf := rgbaBuffer(t, 2, 2, [][4]uint8{
		{255, 0, 0, 255},
		{0, 255, 0, 200},
		{0, 0, 255, 100},
		{255, 255, 255, 0},
	})

	out, err := Grayscale(buf, GrayscaleOptions{})
	if err != nil {
		t.Fatalf("Grayscale failed: %v", err)
	}

	// 0.299*255=76.245, 0.587*255=149.685, 0.114*255=29.07
	wantGray := []uint8{76, 150, 29, 255}
	wantAlpha := []uint8{255, 200, 100, 0}

	if out.Depth() != 4 {
		t.Fatalf("Depth: got %d, want 4", out.Depth())
	}
	for i := 0; i < 4; i++ {
		r, g, b, a := out.Data[i*4], out.Data[i*4+1], out.Data[i*4+2], out.Data[i*4+3]
		if r != g || g != b {
			t.Errorf("pixel %d: channels not equal: (%d,%d,%d)", i, r, g, b)
		}
		if r != wantGray[i] {
			t.Errorf("pixel %d: gray = %d, want %d", i, r, wantGray[i])
		}
		if a != wantAlpha[i] {
			t.Errorf("pixel %d: alpha = %d, want %d (must pass through)", i, a, wantAlpha[i])
		}
	}
}

func TestGrayscale_Average(t *testing.T) {
	buf := rgbaBuffer(t, 2, 1, [][4]uint8{
		{10, 20, 30, 255},
		{200, 200, 200, 255},
	})

	out, err := Grayscale(buf, GrayscaleOptions{Mode: ModeAverage})
	if err != nil {
		t.Fatalf("Grayscale failed: %v", err)
	}

	if out.Data[0] != 20 {
		t.Errorf("average of (10,20,30): got %d, want 20", out.Data[0])
	}
	// R=G=B=v must come back as exactly v.
	if out.Data[4] != 200 {
		t.Errorf("average of (200,200,200): got %d, want 200", out.Data[4])
	}
}

func TestGrayscale_AverageIdentityOnGray(t *testing.T) {
	// For any v, a pixel with R=G=B=v averages to v exactly.
	for _, v := range []uint8{0, 1, 85, 128, 254, 255} {
		buf := rgbaBuffer(t, 1, 1, [][4]uint8{{v, v, v, 255}})
		out, err := Grayscale(buf, GrayscaleOptions{Mode: ModeAverage})
		if err != nil {
			t.Fatalf("Grayscale failed for v=%d: %v", v, err)
		}
		if out.Data[0] != v {
			t.Errorf("v=%d: got %d", v, out.Data[0])
		}
	}
}

func TestGrayscale_Simple(t *testing.T) {
	buf := rgbaBuffer(t, 2, 1, [][4]uint8{
		{11, 22, 33, 44},
		{55, 66, 77, 88},
	})

	tests := []struct {
		channel int
		want    []uint8
	}{
		{0, []uint8{11, 55}},
		{1, []uint8{22, 66}},
		{2, []uint8{33, 77}},
		{3, []uint8{44, 88}},
	}

	for _, tt := range tests {
		out, err := Grayscale(buf, GrayscaleOptions{Mode: ModeSimple, Channel: tt.channel})
		if err != nil {
			t.Fatalf("Grayscale failed for channel %d: %v", tt.channel, err)
		}
		for i, want := range tt.want {
			if out.Data[i*4] != want {
				t.Errorf("channel %d, pixel %d: got %d, want %d", tt.channel, i, out.Data[i*4], want)
			}
		}
	}
}

func TestGrayscale_Monochrome(t *testing.T) {
	buf := rgbaBuffer(t, 3, 2, [][4]uint8{
		{255, 0, 0, 255}, {0, 255, 0, 255}, {0, 0, 255, 255},
		{9, 9, 9, 255}, {100, 100, 100, 255}, {0, 0, 0, 255},
	})

	out, err := Grayscale(buf, GrayscaleOptions{Monochrome: true})
	if err != nil {
		t.Fatalf("Grayscale failed: %v", err)
	}

	if out.Depth() != 1 {
		t.Fatalf("Depth: got %d, want 1", out.Depth())
	}
	if len(out.Data) != 6 {
		t.Fatalf("data length: got %d, want 6", len(out.Data))
	}
	if out.Data[3] != 9 || out.Data[4] != 100 || out.Data[5] != 0 {
		t.Errorf("gray row: got %v, want [... 9 100 0]", out.Data[3:])
	}
}

func TestGrayscale_RejectsNonRGBA(t *testing.T) {
	for _, depth := range []int{1, 2, 3} {
		buf, err := New(make([]uint8, 6*depth), 3, 2)
		if err != nil {
			t.Fatalf("New failed for depth %d: %v", depth, err)
		}
		if _, err := Grayscale(buf, GrayscaleOptions{}); !errors.Is(err, ErrDepth) {
			t.Errorf("depth %d: got %v, want ErrDepth", depth, err)
		}
	}
}

func TestGrayscale_InvalidOptions(t *testing.T) {
	buf := rgbaBuffer(t, 1, 1, [][4]uint8{{1, 2, 3, 4}})

	if _, err := Grayscale(buf, GrayscaleOptions{Mode: "lightness"}); !errors.Is(err, ErrOption) {
		t.Errorf("unknown mode: got %v, want ErrOption", err)
	}
	if _, err := Grayscale(buf, GrayscaleOptions{Mode: ModeSimple, Channel: 4}); !errors.Is(err, ErrOption) {
		t.Errorf("channel 4: got %v, want ErrOption", err)
	}
	if _, err := Grayscale(buf, GrayscaleOptions{Mode: ModeSimple, Channel: -1}); !errors.Is(err, ErrOption) {
		t.Errorf("channel -1: got %v, want ErrOption", err)
	}
}

func TestGrayscale_DoesNotMutateInput(t *testing.T) {
	buf := rgbaBuffer(t, 1, 1, [][4]uint8{{200, 10, 10, 30}})
	want := append([]uint8(nil), buf.Data...)

	if _, err := Grayscale(buf, GrayscaleOptions{}); err != nil {
		t.Fatalf("Grayscale failed: %v", err)
	}
	for i := range want {
		if buf.Data[i] != want[i] {
			t.Fatalf("input mutated at sample %d: got %d, want %d", i, buf.Data[i], want[i])
		}
	}
}

// rgbaBuffer builds a depth-4 buffer from per-pixel RGBA tuples in
// row-major order.
func rgbaBuffer(t *testing.T, width, height int, pixels [][4]uint8) *Buffer {
	t.Helper()
	if len(pixels) != width*height {
		t.Fatalf("rgbaBuffer: %d pixels for %dx%d", len(pixels), width, height)
	}
	data := make([]uint8, 0, len(pixels)*4)
	for _, p := range pixels {
		data = append(data, p[0], p[1], p[2], p[3])
	}
	buf, err := New(data, width, height)
	if err != nil {
		t.Fatalf("rgbaBuffer: %v", err)
	}
	return buf
}
