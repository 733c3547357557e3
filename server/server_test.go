package main

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/jpeg"
	"testing"

	"github.com/sdeoras/servable/pipeline"
)

type fakeClassifier struct {
	fail error
}

func (f *fakeClassifier) ScoreBatch(ctx context.Context, batch [][][][]float32) ([][]float32, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	scores := make([][]float32, len(batch))
	for i := range batch {
		row := make([]float32, pipeline.NumClasses)
		row[(i*11)%pipeline.NumClasses] = 10
		scores[i] = row
	}
	return scores, nil
}

func (f *fakeClassifier) Close() error { return nil }

func newTestService(t *testing.T, fail error) *predictService {
	t.Helper()
	pipe, err := pipeline.New(&fakeClassifier{fail: fail}, pipeline.PolicyCenteredUnit, 2)
	if err != nil {
		t.Fatal(err)
	}
	return &predictService{
		pipe:          pipe,
		backend:       "tensorflow",
		policy:        pipeline.PolicyCenteredUnit,
		signatureKey:  "predict",
		numClasses:    pipeline.NumClasses,
		bundleVersion: 1,
	}
}

func testJPEG(t *testing.T, c color.Color) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, pipeline.ImageSize, pipeline.ImageSize))
	for y := 0; y < pipeline.ImageSize; y++ {
		for x := 0; x < pipeline.ImageSize; x++ {
			img.Set(x, y, c)
		}
	}
	var b bytes.Buffer
	if err := jpeg.Encode(&b, img, nil); err != nil {
		t.Fatal(err)
	}
	return b.Bytes()
}
