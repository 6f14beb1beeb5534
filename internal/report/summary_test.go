package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/commentpulse/commentpulse/internal/models"
)

func analyzed(likes int, score models.SentimentScore) models.AnalyzedComment {
	return models.AnalyzedComment{
		Comment: models.Comment{LikeCount: likes},
		Scores:  map[models.Engine]models.SentimentScore{models.EngineVADER: score},
	}
}

func valid(compound float64, label models.Label) models.SentimentScore {
	return models.SentimentScore{Compound: compound, Label: label, Valid: true}
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil, models.EngineVADER)

	assert.Equal(t, 0, s.Total)
	assert.Equal(t, 0, s.Positive)
	assert.Equal(t, 0, s.Neutral)
	assert.Equal(t, 0, s.Negative)
	assert.Equal(t, 0.0, s.AverageLikes)

	// Percentage computation must not blow up on an empty batch.
	assert.Equal(t, 0.0, s.PositivePct)
	assert.Equal(t, 0.0, s.NegativePct)
}

func TestSummarize_CountsPartitionLabeledComments(t *testing.T) {
	comments := []models.AnalyzedComment{
		analyzed(10, valid(0.8, models.LabelPositive)),
		analyzed(0, valid(0.6, models.LabelPositive)),
		analyzed(2, valid(0.0, models.LabelNeutral)),
		analyzed(4, valid(-0.7, models.LabelNegative)),
	}

	s := Summarize(comments, models.EngineVADER)

	assert.Equal(t, 4, s.Total)
	assert.Equal(t, 2, s.Positive)
	assert.Equal(t, 1, s.Neutral)
	assert.Equal(t, 1, s.Negative)
	assert.Equal(t, s.Total, s.Labeled())
	assert.Equal(t, 4.0, s.AverageLikes)
	assert.InDelta(t, 50.0, s.PositivePct, 1e-9)
	assert.InDelta(t, 25.0, s.NegativePct, 1e-9)
}

func TestSummarize_SkipsExcludedFromLabelTotals(t *testing.T) {
	comments := []models.AnalyzedComment{
		analyzed(6, valid(0.9, models.LabelPositive)),
		analyzed(2, models.SentimentScore{Valid: false}),
	}

	s := Summarize(comments, models.EngineVADER)

	assert.Equal(t, 2, s.Total)
	assert.Equal(t, 1, s.Positive)
	assert.Equal(t, 1, s.Skipped)
	assert.Equal(t, 1, s.Labeled())
	// Average likes still covers every comment.
	assert.Equal(t, 4.0, s.AverageLikes)
	// Percentages are over labeled comments only.
	assert.InDelta(t, 100.0, s.PositivePct, 1e-9)
}

func TestSummarize_EngineWithoutScoresAllSkipped(t *testing.T) {
	comments := []models.AnalyzedComment{
		analyzed(1, valid(0.9, models.LabelPositive)),
	}

	s := Summarize(comments, models.EngineONNX)

	assert.Equal(t, 1, s.Total)
	assert.Equal(t, 0, s.Labeled())
	assert.Equal(t, 1, s.Skipped)
	assert.Equal(t, 0.0, s.PositivePct)
}

func TestRecommendation(t *testing.T) {
	positive := models.AggregateSummary{Positive: 10, Negative: 2}
	assert.Contains(t, Recommendation(positive), "positive")

	negative := models.AggregateSummary{Positive: 2, Negative: 10}
	assert.Contains(t, Recommendation(negative), "negative")

	// Ties fall on the cautious side.
	tie := models.AggregateSummary{Positive: 5, Negative: 5}
	assert.Contains(t, Recommendation(tie), "negative")
}
