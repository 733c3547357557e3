package pipeline

import "fmt"

// DecodeError indicates a malformed or wrong-shaped input image. A batch
// caller fails the whole batch on the first one; there is no partial result.
type DecodeError struct {
	Index  int // position in the batch, -1 when not known
	Reason string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("decode: %s", e.Reason)
	}
	return fmt.Sprintf("decode image %d: %s", e.Index, e.Reason)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// ModelInferenceError indicates a fault inside the classification model.
// Never retried: a model fault is a deployment problem, not a transient one.
type ModelInferenceError struct {
	Backend string
	Err     error
}

func (e *ModelInferenceError) Error() string {
	return fmt.Sprintf("model inference (%s): %v", e.Backend, e.Err)
}

func (e *ModelInferenceError) Unwrap() error { return e.Err }

// ConfigurationError indicates an unset or invalid normalization policy, a
// bad backend selection, or an already-existing bundle version at export.
type ConfigurationError struct {
	Reason string
	Err    error
}

func (e *ConfigurationError) Error() string {
	return "configuration: " + e.Reason
}

func (e *ConfigurationError) Unwrap() error { return e.Err }
