// Package tfmodel runs a frozen TensorFlow graph behind the
// pipeline.Classifier interface.
package tfmodel

import (
	"context"
	"fmt"
	"io/ioutil"

	"github.com/sdeoras/servable/pipeline"
	tf "github.com/tensorflow/tensorflow/tensorflow/go"
)

const Backend = "tensorflow"

// Model owns one imported graph and one session. Weights are read-only after
// load, so a single Model is shared across all concurrent requests and
// closed once at shutdown.
type Model struct {
	graph    *tf.Graph
	session  *tf.Session
	inputOp  tf.Output
	outputOp tf.Output
}

// New imports a serialized GraphDef and opens a session against it. inputOp
// must accept a float tensor of shape [n, 224, 224, 3]; outputOp must yield
// the [n, num_classes] score matrix.
func New(graphDef []byte, inputOp, outputOp string) (*Model, error) {
	graph := tf.NewGraph()
	if err := graph.Import(graphDef, ""); err != nil {
		return nil, &pipeline.ModelInferenceError{Backend: Backend, Err: fmt.Errorf("import graph: %v", err)}
	}

	in := graph.Operation(inputOp)
	if in == nil {
		return nil, &pipeline.ConfigurationError{Reason: "graph has no operation " + inputOp}
	}
	out := graph.Operation(outputOp)
	if out == nil {
		return nil, &pipeline.ConfigurationError{Reason: "graph has no operation " + outputOp}
	}

	session, err := tf.NewSession(graph, nil)
	if err != nil {
		return nil, &pipeline.ModelInferenceError{Backend: Backend, Err: err}
	}

	return &Model{
		graph:    graph,
		session:  session,
		inputOp:  in.Output(0),
		outputOp: out.Output(0),
	}, nil
}

// LoadFile reads a frozen graph from disk and calls New.
func LoadFile(path, inputOp, outputOp string) (*Model, error) {
	graphDef, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, &pipeline.ConfigurationError{Reason: "read frozen graph " + path, Err: err}
	}
	return New(graphDef, inputOp, outputOp)
}

// ScoreBatch feeds the stacked batch through the session once and returns
// the raw score matrix.
func (m *Model) ScoreBatch(ctx context.Context, batch [][][][]float32) ([][]float32, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for i, img := range batch {
		if len(img) != pipeline.ImageSize {
			return nil, &pipeline.ModelInferenceError{
				Backend: Backend,
				Err:     fmt.Errorf("image %d: bad height %d", i, len(img)),
			}
		}
	}

	tensor, err := tf.NewTensor(batch)
	if err != nil {
		return nil, &pipeline.ModelInferenceError{Backend: Backend, Err: err}
	}

	output, err := m.session.Run(
		map[tf.Output]*tf.Tensor{m.inputOp: tensor},
		[]tf.Output{m.outputOp},
		nil)
	if err != nil {
		return nil, &pipeline.ModelInferenceError{Backend: Backend, Err: err}
	}

	scores, ok := output[0].Value().([][]float32)
	if !ok {
		return nil, &pipeline.ModelInferenceError{
			Backend: Backend,
			Err:     fmt.Errorf("output op yielded %T, want [][]float32", output[0].Value()),
		}
	}
	return scores, nil
}

// Close releases the session. The Model is unusable afterwards.
func (m *Model) Close() error {
	return m.session.Close()
}
