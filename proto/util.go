package proto

import (
	"fmt"

	"github.com/sdeoras/servable/pipeline"
)

// MarshalResult converts a pipeline batch result into the wire response,
// preserving row order and the parallel classes/probabilities layout.
func MarshalResult(res *pipeline.BatchResult) *PredictResponse {
	out := &PredictResponse{
		Classes:       make([]*ClassRow, 0, len(res.Classes)),
		Probabilities: make([]*ProbRow, 0, len(res.Probabilities)),
	}
	for _, row := range res.Classes {
		ids := make([]int64, len(row))
		for i, c := range row {
			ids[i] = int64(c)
		}
		out.Classes = append(out.Classes, &ClassRow{Ids: ids})
	}
	for _, row := range res.Probabilities {
		values := make([]float32, len(row))
		copy(values, row)
		out.Probabilities = append(out.Probabilities, &ProbRow{Values: values})
	}
	return out
}

// UnmarshalResult converts a wire response back into a pipeline batch
// result, checking that the two row sequences stayed parallel.
func UnmarshalResult(resp *PredictResponse) (*pipeline.BatchResult, error) {
	if len(resp.Classes) != len(resp.Probabilities) {
		return nil, fmt.Errorf("response rows not parallel: %d class rows, %d probability rows",
			len(resp.Classes), len(resp.Probabilities))
	}

	out := &pipeline.BatchResult{
		Classes:       make([][]int, 0, len(resp.Classes)),
		Probabilities: make([][]float32, 0, len(resp.Probabilities)),
	}
	for i := range resp.Classes {
		if len(resp.Classes[i].Ids) != len(resp.Probabilities[i].Values) {
			return nil, fmt.Errorf("row %d not parallel: %d ids, %d values",
				i, len(resp.Classes[i].Ids), len(resp.Probabilities[i].Values))
		}
		ids := make([]int, len(resp.Classes[i].Ids))
		for j, c := range resp.Classes[i].Ids {
			ids[j] = int(c)
		}
		values := make([]float32, len(resp.Probabilities[i].Values))
		copy(values, resp.Probabilities[i].Values)
		out.Classes = append(out.Classes, ids)
		out.Probabilities = append(out.Probabilities, values)
	}
	return out, nil
}
