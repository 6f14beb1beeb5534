package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/commentpulse/commentpulse/config"
	"github.com/commentpulse/commentpulse/internal/clients"
	"github.com/commentpulse/commentpulse/internal/logging"
	"github.com/commentpulse/commentpulse/internal/models"
	"github.com/commentpulse/commentpulse/internal/processing"
	"github.com/commentpulse/commentpulse/internal/report"
	"github.com/commentpulse/commentpulse/internal/sentiment"
)

const (
	minComments  = 50
	maxComments  = 2000
	commentsStep = 50
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	var (
		video     = flag.String("video", "", "YouTube URL or video ID (required)")
		maxCount  = flag.Int("max-comments", 500, "comments to fetch (50-2000, steps of 50)")
		order     = flag.String("order", "relevance", "fetch order: relevance or time")
		engines   = flag.String("engines", "vader", "sentiment engines: vader, onnx, or both")
		outDir    = flag.String("out", "reports", "output directory for exports")
		cloudFont = flag.String("wordcloud-font", os.Getenv("WORDCLOUD_FONT"), "TTF font for word clouds (clouds are skipped without one)")
	)
	flag.Parse()

	if *video == "" {
		flag.Usage()
		os.Exit(2)
	}
	if *maxCount < minComments || *maxCount > maxComments || *maxCount%commentsStep != 0 {
		slog.Error("[Analyzer] max-comments must be between 50 and 2000 in steps of 50",
			slog.Int("max_comments", *maxCount))
		os.Exit(2)
	}
	fetchOrder, err := parseOrder(*order)
	if err != nil {
		slog.Error("[Analyzer] Invalid order", slog.String("order", *order))
		os.Exit(2)
	}
	requested, err := parseEngines(*engines)
	if err != nil {
		slog.Error("[Analyzer] Invalid engine selection", slog.String("engines", *engines))
		os.Exit(2)
	}

	apiKey := config.APIKey()
	if apiKey == "" {
		slog.Warn("[Analyzer] No API key found; set YOUTUBE_API_KEY or add it to the env file. The fetch will fail without one.")
	}

	scorers, unavailable := sentiment.DetectEngines(requested)
	for _, engine := range unavailable {
		slog.Warn("[Analyzer] Engine unavailable, skipping", slog.String("engine", string(engine)))
	}
	if len(scorers) == 0 {
		slog.Error("[Analyzer] No sentiment engines available")
		os.Exit(1)
	}
	defer closeScorers(scorers)

	pipeline := processing.NewPipeline(clients.NewYouTubeClient(apiKey), scorers, unavailable)
	result, err := pipeline.Run(context.Background(), processing.AnalysisRequest{
		Input:       *video,
		MaxComments: *maxCount,
		Order:       fetchOrder,
	})
	if err != nil {
		reportRunError(err)
		os.Exit(1)
	}

	if err := writeExports(result, *outDir, *video, *cloudFont); err != nil {
		slog.Error("[Analyzer] Failed to write exports", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("[Analyzer] Analysis complete",
		slog.Int("comments", result.Summary.Total),
		slog.String("positive_pct", fmt.Sprintf("%.1f%%", result.Summary.PositivePct)),
		slog.String("negative_pct", fmt.Sprintf("%.1f%%", result.Summary.NegativePct)),
		slog.String("out_dir", *outDir))
}

func reportRunError(err error) {
	var apiErr *clients.APIError
	switch {
	case errors.As(err, &apiErr):
		slog.Error("[Analyzer] Failed to fetch comments",
			slog.Int("status", apiErr.StatusCode),
			slog.String("body", apiErr.Body))
	case errors.Is(err, processing.ErrNoComments):
		slog.Warn("[Analyzer] No comments found for this video (or comments are disabled)")
	default:
		slog.Error("[Analyzer] Analysis failed", slog.String("error", err.Error()))
	}
}

func writeExports(result *processing.AnalysisResult, outDir, videoRef, cloudFont string) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}
	generatedAt := time.Now()

	if err := writeFile(outDir, "comments.csv", func(w io.Writer) error {
		return report.WriteCSV(w, result.Comments, result.Engines)
	}); err != nil {
		return err
	}

	if result.Summary.Labeled() > 0 {
		if err := writeFile(outDir, "sentiment_counts.png", func(w io.Writer) error {
			return report.RenderBarChart(result.Summary, w)
		}); err != nil {
			return err
		}
	}

	if err := writeFile(outDir, "report.html", func(w io.Writer) error {
		return report.WriteHTMLReport(w, result.Summary, videoRef, generatedAt)
	}); err != nil {
		return err
	}

	if err := writeFile(outDir, "sentiment_report.pdf", func(w io.Writer) error {
		return report.WritePDFReport(w, result.Summary, videoRef, generatedAt)
	}); err != nil {
		return err
	}

	writeWordClouds(result, outDir, cloudFont)
	return nil
}

func writeWordClouds(result *processing.AnalysisResult, outDir, cloudFont string) {
	if cloudFont == "" {
		slog.Warn("[Analyzer] No word cloud font configured, skipping word clouds")
		return
	}
	if len(result.Engines) == 0 {
		return
	}
	primary := result.Engines[0]

	for label, filename := range map[models.Label]string{
		models.LabelPositive: "wordcloud_positive.png",
		models.LabelNegative: "wordcloud_negative.png",
	} {
		var texts []string
		for _, c := range result.Comments {
			if score, ok := c.Scores[primary]; ok && score.Valid && score.Label == label {
				texts = append(texts, c.CleanText)
			}
		}
		err := writeFile(outDir, filename, func(w io.Writer) error {
			return report.RenderWordCloud(texts, cloudFont, w)
		})
		if errors.Is(err, report.ErrNoCloudText) {
			slog.Info("[Analyzer] No text for word cloud", slog.String("label", string(label)))
		} else if err != nil {
			slog.Warn("[Analyzer] Failed to render word cloud",
				slog.String("label", string(label)),
				slog.String("error", err.Error()))
		}
	}
}

func writeFile(dir, name string, render func(io.Writer) error) error {
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return err
	}
	defer f.Close()

	if err := render(f); err != nil {
		return err
	}
	return f.Close()
}

func parseOrder(s string) (models.Order, error) {
	switch models.Order(s) {
	case models.OrderRelevance, models.OrderTime:
		return models.Order(s), nil
	}
	return "", fmt.Errorf("unknown order %q", s)
}

func parseEngines(s string) ([]models.Engine, error) {
	switch s {
	case "vader":
		return []models.Engine{models.EngineVADER}, nil
	case "onnx":
		return []models.Engine{models.EngineONNX}, nil
	case "both":
		return []models.Engine{models.EngineVADER, models.EngineONNX}, nil
	}
	return nil, fmt.Errorf("unknown engine selection %q", s)
}

func closeScorers(scorers []sentiment.Scorer) {
	for _, s := range scorers {
		if closer, ok := s.(io.Closer); ok {
			if err := closer.Close(); err != nil {
				slog.Warn("[Analyzer] Failed to close scorer",
					slog.String("engine", string(s.Engine())),
					slog.String("error", err.Error()))
			}
		}
	}
}
