package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfidence_IdenticalScoresClampToMax(t *testing.T) {
	// Zero variance would yield 100; the cap is 95.
	assert.Equal(t, 95, Confidence([]float64{80, 80, 80, 80}))
}

func TestConfidence_HighSpreadLowersConfidence(t *testing.T) {
	// Variance 2500, so 100 - 50 = 50.
	assert.Equal(t, 50, Confidence([]float64{0, 100}))
}

func TestConfidence_EmptyInputIsNeutral(t *testing.T) {
	assert.Equal(t, 50, Confidence(nil))
}

func TestConfidence_AlwaysWithinBounds(t *testing.T) {
	inputs := [][]float64{
		{0, 0, 0, 100},
		{100, 100, 100, 100},
		{30, 60, 75, 100},
		{0},
	}

	for _, scores := range inputs {
		confidence := Confidence(scores)
		assert.GreaterOrEqual(t, confidence, MinConfidence)
		assert.LessOrEqual(t, confidence, MaxConfidence)
	}
}

func TestMeanConfidence_ClampsLowMeans(t *testing.T) {
	assert.Equal(t, MinConfidence, MeanConfidence([]float64{10, 10}))
}

func TestMeanConfidence_ClampsHighMeans(t *testing.T) {
	assert.Equal(t, MaxConfidence, MeanConfidence([]float64{98, 100}))
}

func TestMeanConfidence_PlainMeanInsideBounds(t *testing.T) {
	assert.Equal(t, 60, MeanConfidence([]float64{50, 70}))
}

func TestMeanConfidence_EmptyInputIsFloor(t *testing.T) {
	assert.Equal(t, MinConfidence, MeanConfidence(nil))
}
