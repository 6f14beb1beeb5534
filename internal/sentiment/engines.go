// Package sentiment scores normalized comment text. Two engines exist: a
// VADER lexicon scorer that is always available, and an optional ONNX
// polarity model that degrades gracefully when the runtime or model files
// are missing.
package sentiment

import (
	"errors"
	"log/slog"

	"github.com/commentpulse/commentpulse/internal/models"
)

// ErrEngineUnavailable marks an engine that cannot run in this
// environment. Callers skip the engine and continue with the rest.
var ErrEngineUnavailable = errors.New("sentiment engine unavailable")

// Scorer produces a compound polarity score in [-1,1] for a piece of
// clean text.
type Scorer interface {
	Engine() models.Engine
	Score(text string) (float64, error)
}

// LabelFor buckets a compound score. The boundaries are fixed:
// s <= -0.05 is Negative, s >= 0.05 is Positive, everything strictly
// between is Neutral. The three buckets partition [-1,1] exactly.
func LabelFor(score float64) models.Label {
	switch {
	case score <= -0.05:
		return models.LabelNegative
	case score >= 0.05:
		return models.LabelPositive
	default:
		return models.LabelNeutral
	}
}

type Classifier struct {
	scorers []Scorer
}

func NewClassifier(scorers ...Scorer) *Classifier {
	return &Classifier{scorers: scorers}
}

// Classify runs every configured engine over the text. A failure scoring
// one comment never aborts the batch: that engine's score is recorded as
// invalid and the remaining engines still run.
func (c *Classifier) Classify(cleanText string) map[models.Engine]models.SentimentScore {
	scores := make(map[models.Engine]models.SentimentScore, len(c.scorers))
	for _, s := range c.scorers {
		compound, err := s.Score(cleanText)
		if err != nil {
			slog.Warn("[Classifier] Scoring failed for comment, recording skip",
				slog.String("engine", string(s.Engine())),
				slog.String("error", err.Error()))
			scores[s.Engine()] = models.SentimentScore{Valid: false}
			continue
		}
		scores[s.Engine()] = models.SentimentScore{
			Compound: compound,
			Label:    LabelFor(compound),
			Valid:    true,
		}
	}
	return scores
}

// DetectEngines probes the requested engines once at startup and returns
// the scorers that are ready plus the engines that could not be
// initialized. Absence of the ONNX runtime is a warning, not a failure.
func DetectEngines(requested []models.Engine) ([]Scorer, []models.Engine) {
	var scorers []Scorer
	var unavailable []models.Engine

	for _, engine := range requested {
		switch engine {
		case models.EngineVADER:
			scorers = append(scorers, NewVADERScorer())
		case models.EngineONNX:
			onnx, err := NewONNXScorer()
			if err != nil {
				slog.Warn("[Sentiment] ONNX engine unavailable, continuing without it",
					slog.String("error", err.Error()))
				unavailable = append(unavailable, engine)
				continue
			}
			scorers = append(scorers, onnx)
		default:
			slog.Warn("[Sentiment] Unknown engine requested",
				slog.String("engine", string(engine)))
			unavailable = append(unavailable, engine)
		}
	}

	return scorers, unavailable
}
