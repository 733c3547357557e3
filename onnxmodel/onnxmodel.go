// Package onnxmodel runs an ONNX classification model behind the
// pipeline.Classifier interface.
package onnxmodel

import (
	"context"
	"fmt"

	"github.com/sdeoras/servable/pipeline"
	ort "github.com/yalue/onnxruntime_go"
)

const Backend = "onnx"

// Model wraps one ONNX Runtime session over read-only weights. Safe to share
// across concurrent requests; Close releases the session and the runtime
// environment.
type Model struct {
	session    *ort.DynamicAdvancedSession
	numClasses int
}

// New initializes the ONNX runtime and opens a session on the model file.
// The model is expected to take one NCHW float input and produce one
// [n, numClasses] float output.
func New(modelPath, inputName, outputName string, numClasses int) (*Model, error) {
	if numClasses <= 0 {
		numClasses = pipeline.NumClasses
	}

	if err := ort.InitializeEnvironment(); err != nil {
		return nil, &pipeline.ModelInferenceError{Backend: Backend, Err: fmt.Errorf("initialize runtime: %w", err)}
	}

	session, err := ort.NewDynamicAdvancedSession(modelPath,
		[]string{inputName}, []string{outputName}, nil)
	if err != nil {
		ort.DestroyEnvironment()
		return nil, &pipeline.ModelInferenceError{Backend: Backend, Err: fmt.Errorf("create session: %w", err)}
	}

	return &Model{session: session, numClasses: numClasses}, nil
}

// ScoreBatch transposes the NHWC batch into the NCHW layout ONNX image
// models expect, runs the session once, and splits the flat output back
// into rows.
func (m *Model) ScoreBatch(ctx context.Context, batch [][][][]float32) ([][]float32, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	n := len(batch)
	const hw = pipeline.ImageSize * pipeline.ImageSize
	flat := make([]float32, n*pipeline.Channels*hw)
	for i, img := range batch {
		if len(img) != pipeline.ImageSize {
			return nil, &pipeline.ModelInferenceError{
				Backend: Backend,
				Err:     fmt.Errorf("image %d: bad height %d", i, len(img)),
			}
		}
		base := i * pipeline.Channels * hw
		for y, row := range img {
			for x, px := range row {
				for c := 0; c < pipeline.Channels; c++ {
					flat[base+c*hw+y*pipeline.ImageSize+x] = px[c]
				}
			}
		}
	}

	inputShape := ort.NewShape(int64(n), pipeline.Channels, pipeline.ImageSize, pipeline.ImageSize)
	input, err := ort.NewTensor(inputShape, flat)
	if err != nil {
		return nil, &pipeline.ModelInferenceError{Backend: Backend, Err: err}
	}
	defer input.Destroy()

	output, err := ort.NewEmptyTensor[float32](ort.NewShape(int64(n), int64(m.numClasses)))
	if err != nil {
		return nil, &pipeline.ModelInferenceError{Backend: Backend, Err: err}
	}
	defer output.Destroy()

	if err := m.session.Run(
		[]ort.ArbitraryTensor{input},
		[]ort.ArbitraryTensor{output}); err != nil {
		return nil, &pipeline.ModelInferenceError{Backend: Backend, Err: err}
	}

	data := output.GetData()
	scores := make([][]float32, n)
	for i := 0; i < n; i++ {
		row := make([]float32, m.numClasses)
		copy(row, data[i*m.numClasses:(i+1)*m.numClasses])
		scores[i] = row
	}
	return scores, nil
}

// Close destroys the session and tears down the runtime environment.
func (m *Model) Close() error {
	err := m.session.Destroy()
	ort.DestroyEnvironment()
	return err
}
