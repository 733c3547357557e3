package pipeline

import (
	"math"
	"sort"
)

// TopCount is the fixed number of classes reported per image.
const TopCount = 5

type scoredClass struct {
	ID    int
	Score float32
}

type byScore []scoredClass

func (a byScore) Len() int      { return len(a) }
func (a byScore) Swap(i, j int) { a[i], a[j] = a[j], a[i] }
func (a byScore) Less(i, j int) bool {
	if a[i].Score != a[j].Score {
		return a[i].Score > a[j].Score
	}
	// ties go to the lowest class id so output is reproducible
	return a[i].ID < a[j].ID
}

// TopK reduces one row of raw per-class logits to the k best class ids and
// their probabilities. The softmax is restricted to the selected k logits,
// so the returned probabilities sum to 1 over the reported classes only.
// Applying a full softmax before truncation gives different values and
// breaks output compatibility.
func TopK(scores []float32, k int) ([]int, []float32) {
	if k > len(scores) {
		k = len(scores)
	}

	ranked := make(byScore, len(scores))
	for i, s := range scores {
		ranked[i] = scoredClass{ID: i, Score: s}
	}
	sort.Sort(ranked)

	classes := make([]int, k)
	probs := make([]float32, k)

	// shift by the max logit before exponentiating
	var sum float64
	exps := make([]float64, k)
	for i := 0; i < k; i++ {
		exps[i] = math.Exp(float64(ranked[i].Score - ranked[0].Score))
		sum += exps[i]
	}
	for i := 0; i < k; i++ {
		classes[i] = ranked[i].ID
		probs[i] = float32(exps[i] / sum)
	}

	return classes, probs
}
