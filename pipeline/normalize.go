package pipeline

// Policy selects the pixel-value transform matching the pretrained model's
// training-time preprocessing convention. Picking the wrong one produces no
// error and wrong predictions, so it is set once at deployment time and
// recorded in the exported bundle signature.
type Policy string

const (
	// PolicyCenteredUnit maps each channel value to v/255 - 0.5.
	PolicyCenteredUnit Policy = "centered-unit"

	// PolicyMeanSubtracted subtracts fixed per-channel ImageNet means with
	// no rescaling and reverses channel order to BGR, the convention of
	// Caffe-trained ResNet-50 checkpoints.
	PolicyMeanSubtracted Policy = "mean-subtracted"
)

// Per-channel ImageNet training-set means, RGB order.
const (
	meanR = 123.68
	meanG = 116.78
	meanB = 103.94
)

// ParsePolicy validates a policy name from configuration.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(s) {
	case PolicyCenteredUnit, PolicyMeanSubtracted:
		return Policy(s), nil
	case "":
		return "", &ConfigurationError{Reason: "normalization policy is not set"}
	default:
		return "", &ConfigurationError{Reason: "unknown normalization policy " + s}
	}
}

// Normalize maps a decoded image into the value range the classifier was
// trained on. The input is not mutated. An unrecognized policy panics: a
// wrong policy produces no error and wrong predictions, so it must never
// fall through to either transform.
func Normalize(img Image, p Policy) Image {
	switch p {
	case PolicyCenteredUnit, PolicyMeanSubtracted:
	default:
		panic("unknown normalization policy: " + string(p))
	}

	out := make(Image, len(img))
	for y, row := range img {
		outRow := make([][]float32, len(row))
		for x, px := range row {
			switch p {
			case PolicyCenteredUnit:
				outRow[x] = []float32{
					px[0]/255.0 - 0.5,
					px[1]/255.0 - 0.5,
					px[2]/255.0 - 0.5,
				}
			case PolicyMeanSubtracted:
				// BGR order, per-channel means removed
				outRow[x] = []float32{
					px[2] - meanB,
					px[1] - meanG,
					px[0] - meanR,
				}
			}
		}
		out[y] = outRow
	}
	return out
}
