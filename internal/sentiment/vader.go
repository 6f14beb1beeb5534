package sentiment

import (
	"github.com/jonreiter/govader"

	"github.com/commentpulse/commentpulse/internal/models"
)

// VADERScorer is the lexicon engine. Scores come straight from the VADER
// ruleset, so the same text always produces the same compound value.
type VADERScorer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func NewVADERScorer() *VADERScorer {
	return &VADERScorer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

func (s *VADERScorer) Engine() models.Engine {
	return models.EngineVADER
}

func (s *VADERScorer) Score(text string) (float64, error) {
	return s.analyzer.PolarityScores(text).Compound, nil
}
