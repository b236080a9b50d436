package scoring

import "math"

// Confidence bounds: no result is ever reported as more certain than 95 or
// less certain than 30, regardless of input variance.
const (
	MinConfidence = 30
	MaxConfidence = 95
)

// clampConfidence clamps a confidence value to [MinConfidence,MaxConfidence].
func clampConfidence(value float64) int {
	if value < MinConfidence {
		return MinConfidence
	}
	if value > MaxConfidence {
		return MaxConfidence
	}
	return int(math.Round(value))
}

// Confidence derives a confidence value from the spread of the rule-based
// sub-scores: the lower the variance, the higher the confidence. An empty
// input yields a neutral 50.
func Confidence(scores []float64) int {
	if len(scores) == 0 {
		return 50
	}

	var sum float64
	for _, score := range scores {
		sum += score
	}
	mean := sum / float64(len(scores))

	var variance float64
	for _, score := range scores {
		variance += (score - mean) * (score - mean)
	}
	variance /= float64(len(scores))

	return clampConfidence(100 - math.Sqrt(variance))
}

// MeanConfidence is the confidence measure for detailed matches: the mean
// of all component scores, clamped to the confidence bounds.
func MeanConfidence(scores []float64) int {
	if len(scores) == 0 {
		return MinConfidence
	}

	var sum float64
	for _, score := range scores {
		sum += score
	}

	return clampConfidence(sum / float64(len(scores)))
}
