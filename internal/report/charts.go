package report

import (
	"errors"
	"io"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/commentpulse/commentpulse/internal/models"
)

// ErrNoChartData means no labeled comments exist to draw.
var ErrNoChartData = errors.New("no labeled comments to chart")

var labelColors = map[models.Label]drawing.Color{
	models.LabelPositive: drawing.ColorFromHex("34a853"),
	models.LabelNeutral:  drawing.ColorFromHex("9aa0a6"),
	models.LabelNegative: drawing.ColorFromHex("ea4335"),
}

// RenderBarChart draws the label-count bar chart shown on the dashboard.
func RenderBarChart(summary models.AggregateSummary, w io.Writer) error {
	if summary.Labeled() == 0 {
		return ErrNoChartData
	}

	bars := make([]chart.Value, 0, 3)
	for _, entry := range labelCounts(summary) {
		bars = append(bars, chart.Value{
			Value: float64(entry.count),
			Label: string(entry.label),
			Style: chart.Style{
				FillColor:   labelColors[entry.label],
				StrokeColor: labelColors[entry.label],
			},
		})
	}

	bc := chart.BarChart{
		Title:    "Sentiment Label Counts",
		Width:    512,
		Height:   384,
		BarWidth: 80,
		Background: chart.Style{
			Padding: chart.Box{Top: 40},
		},
		Bars: bars,
	}
	return bc.Render(chart.PNG, w)
}

// RenderPieChart draws the distribution pie embedded in the PDF report.
// Zero-count labels are left out; go-chart cannot slice an empty range.
func RenderPieChart(summary models.AggregateSummary, w io.Writer) error {
	if summary.Labeled() == 0 {
		return ErrNoChartData
	}

	values := make([]chart.Value, 0, 3)
	for _, entry := range labelCounts(summary) {
		if entry.count == 0 {
			continue
		}
		values = append(values, chart.Value{
			Value: float64(entry.count),
			Label: string(entry.label),
			Style: chart.Style{
				FillColor:   labelColors[entry.label],
				StrokeColor: labelColors[entry.label],
			},
		})
	}

	pie := chart.PieChart{
		Width:  512,
		Height: 512,
		Values: values,
	}
	return pie.Render(chart.PNG, w)
}

type labelCount struct {
	label models.Label
	count int
}

func labelCounts(summary models.AggregateSummary) []labelCount {
	return []labelCount{
		{models.LabelPositive, summary.Positive},
		{models.LabelNeutral, summary.Neutral},
		{models.LabelNegative, summary.Negative},
	}
}
