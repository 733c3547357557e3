package pipeline

import (
	"math"
	"testing"
)

func onePixelImage(r, g, b float32) Image {
	return Image{[][]float32{{r, g, b}}}
}

func TestParsePolicy(t *testing.T) {
	for _, name := range []string{"centered-unit", "mean-subtracted"} {
		p, err := ParsePolicy(name)
		if err != nil {
			t.Fatalf("ParsePolicy(%q) failed: %v", name, err)
		}
		if string(p) != name {
			t.Fatalf("ParsePolicy(%q) returned %q", name, p)
		}
	}

	for _, name := range []string{"", "imagenet", "CENTERED-UNIT"} {
		if _, err := ParsePolicy(name); err == nil {
			t.Fatalf("ParsePolicy(%q) should fail", name)
		} else if _, ok := err.(*ConfigurationError); !ok {
			t.Fatalf("ParsePolicy(%q): expected *ConfigurationError, got %T", name, err)
		}
	}
}

func TestNormalizeCenteredUnit(t *testing.T) {
	img := onePixelImage(255, 0, 127.5)
	out := Normalize(img, PolicyCenteredUnit)

	want := []float32{0.5, -0.5, 0.0}
	for c, w := range want {
		if math.Abs(float64(out[0][0][c]-w)) > 1e-6 {
			t.Fatalf("channel %d: want %f, got %f", c, w, out[0][0][c])
		}
	}
}

func TestNormalizeMeanSubtracted(t *testing.T) {
	img := onePixelImage(200, 150, 100)
	out := Normalize(img, PolicyMeanSubtracted)

	// output is BGR order with per-channel means removed, no rescaling
	want := []float32{100 - meanB, 150 - meanG, 200 - meanR}
	for c, w := range want {
		if math.Abs(float64(out[0][0][c]-w)) > 1e-4 {
			t.Fatalf("channel %d: want %f, got %f", c, w, out[0][0][c])
		}
	}
}

func TestNormalizeDoesNotMutateInput(t *testing.T) {
	img := onePixelImage(10, 20, 30)
	Normalize(img, PolicyCenteredUnit)
	Normalize(img, PolicyMeanSubtracted)

	want := []float32{10, 20, 30}
	for c, w := range want {
		if img[0][0][c] != w {
			t.Fatalf("input mutated: channel %d is %f, want %f", c, img[0][0][c], w)
		}
	}
}

func TestNormalizeRejectsUnknownPolicy(t *testing.T) {
	img := onePixelImage(10, 20, 30)
	for _, p := range []Policy{"", "imagenet", "mean_subtracted"} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("Normalize with policy %q should panic", p)
				}
			}()
			Normalize(img, p)
		}()
	}
}

func TestNormalizeCenteredUnitRange(t *testing.T) {
	img := Image{[][]float32{{0, 128, 255}, {1, 254, 63}}}
	out := Normalize(img, PolicyCenteredUnit)
	for x := range out[0] {
		for c, v := range out[0][x] {
			if v < -0.5 || v > 0.5 {
				t.Fatalf("pixel %d channel %d out of [-0.5, 0.5]: %f", x, c, v)
			}
		}
	}
}
