package sentiment

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/knights-analytics/hugot"
	"github.com/knights-analytics/hugot/pipelines"

	"github.com/commentpulse/commentpulse/internal/models"
)

const (
	defaultModelDir = "./models/onnx"
	polarityModel   = "KnightsAnalytics/distilbert-base-uncased-finetuned-sst-2-english"
)

// ONNXScorer runs a transformer polarity model through an onnxruntime
// session. Construction fails with ErrEngineUnavailable when the runtime
// library or model cannot be set up; the caller treats that as a skipped
// engine, not an error.
type ONNXScorer struct {
	session  *hugot.Session
	pipeline *pipelines.TextClassificationPipeline
}

func NewONNXScorer() (*ONNXScorer, error) {
	modelDir := os.Getenv("ONNX_MODEL_DIR")
	if modelDir == "" {
		modelDir = defaultModelDir
	}

	if err := os.MkdirAll(modelDir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("%w: create model directory: %v", ErrEngineUnavailable, err)
	}

	modelPath := filepath.Join(modelDir, filepath.Base(polarityModel))
	if _, err := os.Stat(modelPath); os.IsNotExist(err) {
		slog.Info("[ONNXScorer] Model not found, downloading...",
			slog.String("model", polarityModel))
		downloaded, err := hugot.DownloadModel(polarityModel, modelDir, hugot.NewDownloadOptions())
		if err != nil {
			return nil, fmt.Errorf("%w: download model: %v", ErrEngineUnavailable, err)
		}
		modelPath = downloaded
		slog.Info("[ONNXScorer] Model downloaded successfully", slog.String("path", modelPath))
	}

	session, err := hugot.NewORTSession()
	if err != nil {
		return nil, fmt.Errorf("%w: onnxruntime session: %v", ErrEngineUnavailable, err)
	}

	config := hugot.TextClassificationConfig{
		ModelPath: modelPath,
		Name:      "commentPolarityPipeline",
	}
	pipeline, err := hugot.NewPipeline(session, config)
	if err != nil {
		session.Destroy()
		return nil, fmt.Errorf("%w: polarity pipeline: %v", ErrEngineUnavailable, err)
	}

	return &ONNXScorer{session: session, pipeline: pipeline}, nil
}

func (s *ONNXScorer) Engine() models.Engine {
	return models.EngineONNX
}

// Score maps the model's most confident class to a signed polarity:
// positive classes keep their confidence, negative classes negate it.
func (s *ONNXScorer) Score(text string) (float64, error) {
	output, err := s.pipeline.RunPipeline([]string{text})
	if err != nil {
		return 0, err
	}

	if len(output.ClassificationOutputs) == 0 || len(output.ClassificationOutputs[0]) == 0 {
		return 0, fmt.Errorf("empty classification output")
	}

	best := output.ClassificationOutputs[0][0]
	polarity := float64(best.Score)
	if strings.EqualFold(best.Label, "NEGATIVE") {
		polarity = -polarity
	}
	return polarity, nil
}

func (s *ONNXScorer) Close() error {
	return s.session.Destroy()
}
