package pipeline

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"testing"
)

func makeJPEG(t *testing.T, c color.Color, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	var b bytes.Buffer
	if err := jpeg.Encode(&b, img, &jpeg.Options{Quality: 95}); err != nil {
		t.Fatalf("encode jpeg: %v", err)
	}
	return b.Bytes()
}

func makeGrayJPEG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, w, h))
	var b bytes.Buffer
	if err := jpeg.Encode(&b, img, &jpeg.Options{Quality: 95}); err != nil {
		t.Fatalf("encode jpeg: %v", err)
	}
	return b.Bytes()
}

func TestDecodeValid(t *testing.T) {
	raw := makeJPEG(t, color.RGBA{R: 200, G: 100, B: 50, A: 255}, ImageSize, ImageSize)

	img, err := Decode(raw)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(img) != ImageSize {
		t.Fatalf("expected %d rows, got %d", ImageSize, len(img))
	}
	for y := range img {
		if len(img[y]) != ImageSize {
			t.Fatalf("row %d: expected %d cols, got %d", y, ImageSize, len(img[y]))
		}
		for x := range img[y] {
			if len(img[y][x]) != Channels {
				t.Fatalf("pixel %d,%d: expected %d channels, got %d", x, y, Channels, len(img[y][x]))
			}
			for c, v := range img[y][x] {
				if v < 0 || v > 255 {
					t.Fatalf("pixel %d,%d channel %d out of range: %f", x, y, c, v)
				}
			}
		}
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	if _, err := Decode([]byte("definitely not a jpeg")); err == nil {
		t.Fatal("expected error for non-jpeg bytes")
	} else if _, ok := err.(*DecodeError); !ok {
		t.Fatalf("expected *DecodeError, got %T", err)
	}
}

func TestDecodeRejectsTruncated(t *testing.T) {
	raw := makeJPEG(t, color.RGBA{R: 10, G: 20, B: 30, A: 255}, ImageSize, ImageSize)
	if _, err := Decode(raw[:len(raw)/2]); err == nil {
		t.Fatal("expected error for truncated jpeg")
	} else if _, ok := err.(*DecodeError); !ok {
		t.Fatalf("expected *DecodeError, got %T", err)
	}
}

func TestDecodeRejectsWrongSize(t *testing.T) {
	raw := makeJPEG(t, color.RGBA{R: 10, G: 20, B: 30, A: 255}, 100, 100)
	if _, err := Decode(raw); err == nil {
		t.Fatal("expected error for 100x100 image")
	} else if _, ok := err.(*DecodeError); !ok {
		t.Fatalf("expected *DecodeError, got %T", err)
	}
}

func TestDecodeRejectsGrayscale(t *testing.T) {
	raw := makeGrayJPEG(t, ImageSize, ImageSize)
	if _, err := Decode(raw); err == nil {
		t.Fatal("expected error for grayscale image")
	} else if _, ok := err.(*DecodeError); !ok {
		t.Fatalf("expected *DecodeError, got %T", err)
	}
}

func TestDecodeDeterministic(t *testing.T) {
	raw := makeJPEG(t, color.RGBA{R: 77, G: 88, B: 99, A: 255}, ImageSize, ImageSize)

	a, err := Decode(raw)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Decode(raw)
	if err != nil {
		t.Fatal(err)
	}
	for y := range a {
		for x := range a[y] {
			for c := range a[y][x] {
				if a[y][x][c] != b[y][x][c] {
					t.Fatalf("decode not deterministic at %d,%d,%d", x, y, c)
				}
			}
		}
	}
}
