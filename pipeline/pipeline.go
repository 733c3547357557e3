// Package pipeline implements the servable's inference contract: decode a
// batch of JPEG byte strings, normalize pixel values for the target model,
// score the stacked batch once, and reduce each row to the top-5 classes.
package pipeline

import (
	"context"
	"fmt"
	"runtime"
	"sync"
)

// NumClasses is the width of the classifier's raw score matrix: 1000
// ImageNet categories plus the background class at index 0.
const NumClasses = 1001

// Classifier scores one stacked batch of normalized images, shape
// [n][224][224][3], and returns an n x NumClasses matrix of raw logits.
// Implementations hold read-only weights and are safe for concurrent use.
type Classifier interface {
	ScoreBatch(ctx context.Context, batch [][][][]float32) ([][]float32, error)
}

// BatchResult holds per-image top-5 predictions in input order. Classes and
// Probabilities are parallel: Classes[i][j] scored Probabilities[i][j], each
// inner slice sorted by descending probability.
type BatchResult struct {
	Classes       [][]int     `json:"classes"`
	Probabilities [][]float32 `json:"probabilities"`
}

// Pipeline wires the decoder and normalizer in front of a Classifier. It is
// stateless apart from the read-only classifier handle and safe for
// concurrent use.
type Pipeline struct {
	classifier Classifier
	policy     Policy
	workers    int
}

// New validates the policy and returns a ready pipeline. workers bounds the
// per-batch decode fan-out; values < 1 fall back to GOMAXPROCS.
func New(c Classifier, policy Policy, workers int) (*Pipeline, error) {
	if c == nil {
		return nil, &ConfigurationError{Reason: "classifier is not set"}
	}
	if _, err := ParsePolicy(string(policy)); err != nil {
		return nil, err
	}
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Pipeline{classifier: c, policy: policy, workers: workers}, nil
}

// Policy reports the normalization policy the pipeline was built with.
func (p *Pipeline) Policy() Policy { return p.policy }

// Run executes the full pipeline over one batch. Images are decoded and
// normalized in parallel and reassembled by index, the classifier is invoked
// exactly once over the stacked tensor, and every row is reduced to the
// top-5 classes. Any bad image fails the whole batch: the fixed-width
// response has no placeholder for a missing prediction.
func (p *Pipeline) Run(ctx context.Context, images [][]byte) (*BatchResult, error) {
	n := len(images)
	out := &BatchResult{
		Classes:       make([][]int, 0, n),
		Probabilities: make([][]float32, 0, n),
	}
	if n == 0 {
		return out, nil
	}

	batch := make([][][][]float32, n)
	errs := make([]error, n)

	workers := p.workers
	if workers > n {
		workers = n
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				img, err := Decode(images[i])
				if err != nil {
					errs[i] = err
					continue
				}
				batch[i] = Normalize(img, p.policy)
			}
		}()
	}
	for i := 0; i < n; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	for i, err := range errs {
		if err == nil {
			continue
		}
		if de, ok := err.(*DecodeError); ok {
			tagged := *de
			tagged.Index = i
			return nil, &tagged
		}
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	scores, err := p.classifier.ScoreBatch(ctx, batch)
	if err != nil {
		if _, ok := err.(*ModelInferenceError); ok {
			return nil, err
		}
		return nil, &ModelInferenceError{Backend: "classifier", Err: err}
	}
	if len(scores) != n {
		return nil, &ModelInferenceError{
			Backend: "classifier",
			Err:     fmt.Errorf("expected %d score rows, got %d", n, len(scores)),
		}
	}

	for _, row := range scores {
		if len(row) == 0 {
			return nil, &ModelInferenceError{
				Backend: "classifier",
				Err:     fmt.Errorf("empty score row"),
			}
		}
		classes, probs := TopK(row, TopCount)
		out.Classes = append(out.Classes, classes)
		out.Probabilities = append(out.Probabilities, probs)
	}

	return out, nil
}
