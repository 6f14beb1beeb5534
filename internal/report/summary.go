// Package report aggregates scored comments and renders the export
// surfaces: CSV, charts, word clouds, HTML, and the PDF report.
package report

import (
	"github.com/commentpulse/commentpulse/internal/models"
)

// Summarize computes the aggregate view of one engine's labels. Average
// likes runs over every comment; label counts only cover comments that
// engine labeled, with unscored ones tallied as skips.
func Summarize(comments []models.AnalyzedComment, engine models.Engine) models.AggregateSummary {
	summary := models.AggregateSummary{Total: len(comments)}

	var likes int
	for _, c := range comments {
		likes += c.LikeCount

		score, ok := c.Scores[engine]
		if !ok || !score.Valid {
			summary.Skipped++
			continue
		}
		switch score.Label {
		case models.LabelPositive:
			summary.Positive++
		case models.LabelNeutral:
			summary.Neutral++
		case models.LabelNegative:
			summary.Negative++
		}
	}

	if summary.Total > 0 {
		summary.AverageLikes = float64(likes) / float64(summary.Total)
	}

	// Floor the denominator at 1: an empty or all-skipped batch reports
	// 0% everywhere instead of dividing by zero.
	denom := summary.Labeled()
	if denom < 1 {
		denom = 1
	}
	summary.PositivePct = float64(summary.Positive) / float64(denom) * 100
	summary.NeutralPct = float64(summary.Neutral) / float64(denom) * 100
	summary.NegativePct = float64(summary.Negative) / float64(denom) * 100

	return summary
}

// Recommendation picks the report's closing sentence by comparing
// positive and negative counts.
func Recommendation(summary models.AggregateSummary) string {
	if summary.Positive > summary.Negative {
		return "Majority of feedback is positive. Continue with similar content to maintain engagement."
	}
	return "Notable negative sentiment detected. Consider addressing recurring issues."
}
