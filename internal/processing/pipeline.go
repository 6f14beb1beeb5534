// Package processing wires the analysis stages together: resolve the
// video id, fetch comments, normalize text, score sentiment, aggregate.
// State flows through an explicit request/result pair; nothing is shared
// between runs.
package processing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/commentpulse/commentpulse/internal/clients"
	"github.com/commentpulse/commentpulse/internal/models"
	"github.com/commentpulse/commentpulse/internal/report"
	"github.com/commentpulse/commentpulse/internal/sentiment"
	"github.com/commentpulse/commentpulse/internal/videoid"
)

// ErrNoComments is surfaced as a warning when the video has zero
// comments; there is nothing downstream to score.
var ErrNoComments = errors.New("no comments returned for video")

// CommentFetcher is the slice of the YouTube client the pipeline needs.
type CommentFetcher interface {
	FetchComments(ctx context.Context, videoID string, opts clients.FetchOptions) ([]models.Comment, error)
}

type AnalysisRequest struct {
	Input       string
	MaxComments int
	Order       models.Order
}

type AnalysisResult struct {
	VideoID string
	// Engines that produced scores, in classification order.
	Engines []models.Engine
	// Engines that were requested but unavailable in this environment.
	Unavailable []models.Engine
	Comments    []models.AnalyzedComment
	// Summary reflects the primary (first) engine.
	Summary models.AggregateSummary
}

type Pipeline struct {
	fetcher     CommentFetcher
	scorers     []sentiment.Scorer
	unavailable []models.Engine
}

// NewPipeline builds a pipeline around a fixed engine set. Detect the
// set once at startup with sentiment.DetectEngines; the pipeline never
// re-probes capabilities mid-run.
func NewPipeline(fetcher CommentFetcher, scorers []sentiment.Scorer, unavailable []models.Engine) *Pipeline {
	return &Pipeline{fetcher: fetcher, scorers: scorers, unavailable: unavailable}
}

func (p *Pipeline) Run(ctx context.Context, req AnalysisRequest) (*AnalysisResult, error) {
	vid, err := videoid.Resolve(req.Input)
	if err != nil {
		return nil, fmt.Errorf("could not extract a video id from %q: %w", req.Input, err)
	}

	slog.Info("[Pipeline] Starting analysis",
		slog.String("video_id", vid),
		slog.Int("max_comments", req.MaxComments),
		slog.String("order", string(req.Order)))

	comments, err := p.fetcher.FetchComments(ctx, vid, clients.FetchOptions{
		MaxComments: req.MaxComments,
		Order:       req.Order,
	})
	if err != nil {
		return nil, err
	}
	if len(comments) == 0 {
		return nil, ErrNoComments
	}

	classifier := sentiment.NewClassifier(p.scorers...)
	analyzed := make([]models.AnalyzedComment, 0, len(comments))
	for _, c := range comments {
		cleanText := sentiment.Clean(c.Text)
		analyzed = append(analyzed, models.AnalyzedComment{
			Comment:   c,
			CleanText: cleanText,
			Scores:    classifier.Classify(cleanText),
		})
	}

	engines := make([]models.Engine, 0, len(p.scorers))
	for _, s := range p.scorers {
		engines = append(engines, s.Engine())
	}

	result := &AnalysisResult{
		VideoID:     vid,
		Engines:     engines,
		Unavailable: p.unavailable,
		Comments:    analyzed,
	}
	if len(engines) > 0 {
		result.Summary = report.Summarize(analyzed, engines[0])
	}

	slog.Info("[Pipeline] Analysis complete",
		slog.String("video_id", vid),
		slog.Int("comments", len(analyzed)),
		slog.Int("positive", result.Summary.Positive),
		slog.Int("neutral", result.Summary.Neutral),
		slog.Int("negative", result.Summary.Negative),
		slog.Int("skipped", result.Summary.Skipped))

	return result, nil
}
