package pipeline

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
)

const (
	// ImageSize is the fixed model input edge in pixels. Inputs are expected
	// pre-resized by the caller; this package never resamples.
	ImageSize = 224

	// Channels is the number of color channels the model expects.
	Channels = 3
)

// Image is one decoded image, shape [ImageSize][ImageSize][Channels],
// RGB order, values in [0, 255].
type Image [][][]float32

// Decode turns one JPEG byte string into an Image. The bytes must encode a
// 3-channel color image already sized to ImageSize x ImageSize.
func Decode(raw []byte) (Image, error) {
	img, err := jpeg.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, &DecodeError{Index: -1, Reason: "not a valid jpeg stream", Err: err}
	}

	switch img.(type) {
	case *image.Gray, *image.Gray16, *image.CMYK:
		return nil, &DecodeError{Index: -1, Reason: "expected a 3-channel color image"}
	}

	b := img.Bounds()
	if b.Dx() != ImageSize || b.Dy() != ImageSize {
		return nil, &DecodeError{
			Index:  -1,
			Reason: fmt.Sprintf("expected %dx%d pixels, got %dx%d", ImageSize, ImageSize, b.Dx(), b.Dy()),
		}
	}

	out := make(Image, ImageSize)
	for y := 0; y < ImageSize; y++ {
		row := make([][]float32, ImageSize)
		for x := 0; x < ImageSize; x++ {
			r, g, bl, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			row[x] = []float32{float32(r >> 8), float32(g >> 8), float32(bl >> 8)}
		}
		out[y] = row
	}

	return out, nil
}
