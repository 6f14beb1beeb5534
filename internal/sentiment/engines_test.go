package sentiment

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/commentpulse/commentpulse/internal/models"
)

type stubScorer struct {
	engine models.Engine
	score  float64
	err    error
}

func (s stubScorer) Engine() models.Engine        { return s.engine }
func (s stubScorer) Score(string) (float64, error) { return s.score, s.err }

func TestLabelFor_Boundaries(t *testing.T) {
	assert.Equal(t, models.LabelNegative, LabelFor(-0.05))
	assert.Equal(t, models.LabelPositive, LabelFor(0.05))
	assert.Equal(t, models.LabelNeutral, LabelFor(0.0))
	assert.Equal(t, models.LabelNeutral, LabelFor(-0.0499))
	assert.Equal(t, models.LabelNeutral, LabelFor(0.0499))
	assert.Equal(t, models.LabelNegative, LabelFor(-1.0))
	assert.Equal(t, models.LabelPositive, LabelFor(1.0))
}

func TestLabelFor_ExhaustiveOverRange(t *testing.T) {
	// Every score in [-1,1] lands in exactly one bucket.
	for s := -1.0; s <= 1.0; s += 0.001 {
		label := LabelFor(s)
		assert.Contains(t,
			[]models.Label{models.LabelPositive, models.LabelNeutral, models.LabelNegative},
			label, "score %f", s)
	}
}

func TestClassify_MultipleEnginesSideBySide(t *testing.T) {
	c := NewClassifier(
		stubScorer{engine: models.EngineVADER, score: 0.8},
		stubScorer{engine: models.EngineONNX, score: -0.6},
	)

	scores := c.Classify("some text")
	require.Len(t, scores, 2)

	assert.Equal(t, 0.8, scores[models.EngineVADER].Compound)
	assert.Equal(t, models.LabelPositive, scores[models.EngineVADER].Label)
	assert.True(t, scores[models.EngineVADER].Valid)

	assert.Equal(t, -0.6, scores[models.EngineONNX].Compound)
	assert.Equal(t, models.LabelNegative, scores[models.EngineONNX].Label)
	assert.True(t, scores[models.EngineONNX].Valid)
}

func TestClassify_ScoringErrorRecordedAsSkip(t *testing.T) {
	c := NewClassifier(
		stubScorer{engine: models.EngineVADER, score: 0.3},
		stubScorer{engine: models.EngineONNX, err: errors.New("model exploded")},
	)

	scores := c.Classify("some text")
	require.Len(t, scores, 2)

	assert.True(t, scores[models.EngineVADER].Valid)
	assert.False(t, scores[models.EngineONNX].Valid)
	assert.Empty(t, scores[models.EngineONNX].Label)
}

func TestDetectEngines_VADERAlwaysAvailable(t *testing.T) {
	scorers, unavailable := DetectEngines([]models.Engine{models.EngineVADER})
	require.Len(t, scorers, 1)
	assert.Equal(t, models.EngineVADER, scorers[0].Engine())
	assert.Empty(t, unavailable)
}

func TestDetectEngines_UnknownEngineReportedUnavailable(t *testing.T) {
	scorers, unavailable := DetectEngines([]models.Engine{"textblob"})
	assert.Empty(t, scorers)
	assert.Equal(t, []models.Engine{models.Engine("textblob")}, unavailable)
}
