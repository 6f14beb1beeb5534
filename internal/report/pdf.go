package report

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/commentpulse/commentpulse/internal/models"
)

// WritePDFReport composes the downloadable report: title, executive
// summary, metrics table, sentiment pie chart, and the recommendation,
// framed with a border and a generation-timestamp footer on every page.
func WritePDFReport(w io.Writer, summary models.AggregateSummary, videoRef string, generatedAt time.Time) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pageW, pageH := pdf.GetPageSize()

	pdf.SetFooterFunc(func() {
		pdf.SetDrawColor(0x1a, 0x1a, 0x1a)
		pdf.SetLineWidth(1)
		pdf.Rect(7, 7, pageW-14, pageH-14, "D")

		pdf.SetY(-18)
		pdf.SetFont("Helvetica", "", 8)
		pdf.SetTextColor(0, 0, 0)
		pdf.CellFormat(0, 10,
			fmt.Sprintf("Generated on %s", generatedAt.Format("January 2, 2006 15:04:05")),
			"", 0, "C", false, 0, "")
	})
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetTextColor(0xff, 0x66, 0x00)
	pdf.CellFormat(0, 12, "YouTube Sentiment Analyzer Report", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 6, fmt.Sprintf("Video: %s", videoRef), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	sectionTitle(pdf, "Executive Summary")
	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, 5, fmt.Sprintf(
		"Based on %d comments: Positive %.1f%%, Neutral %.1f%%, Negative %.1f%%.",
		summary.Total, summary.PositivePct, summary.NeutralPct, summary.NegativePct),
		"", "L", false)
	pdf.Ln(4)

	sectionTitle(pdf, "Overview Metrics")
	metricsTable(pdf, summary)
	pdf.Ln(6)

	if summary.Labeled() > 0 {
		sectionTitle(pdf, "Sentiment Distribution")
		if err := embedPieChart(pdf, summary); err != nil && !errors.Is(err, ErrNoChartData) {
			return err
		}
		pdf.Ln(4)
	}

	sectionTitle(pdf, "Recommendations")
	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, 5, Recommendation(summary), "", "L", false)

	return pdf.Output(w)
}

func sectionTitle(pdf *fpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(0x1a, 0x73, 0xe8)
	pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(1)
}

func metricsTable(pdf *fpdf.Fpdf, summary models.AggregateSummary) {
	rows := [][2]string{
		{"Total Comments", fmt.Sprintf("%d", summary.Total)},
		{"Positive", fmt.Sprintf("%d", summary.Positive)},
		{"Neutral", fmt.Sprintf("%d", summary.Neutral)},
		{"Negative", fmt.Sprintf("%d", summary.Negative)},
		{"Average Likes", fmt.Sprintf("%.2f", summary.AverageLikes)},
	}
	if summary.Skipped > 0 {
		rows = append(rows, [2]string{"Not Scored", fmt.Sprintf("%d", summary.Skipped)})
	}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(0x1a, 0x73, 0xe8)
	pdf.SetTextColor(0xff, 0xff, 0xff)
	pdf.CellFormat(60, 7, "Metric", "1", 0, "C", true, 0, "")
	pdf.CellFormat(60, 7, "Value", "1", 1, "C", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(0, 0, 0)
	for _, row := range rows {
		pdf.CellFormat(60, 7, row[0], "1", 0, "C", false, 0, "")
		pdf.CellFormat(60, 7, row[1], "1", 1, "C", false, 0, "")
	}
}

func embedPieChart(pdf *fpdf.Fpdf, summary models.AggregateSummary) error {
	var buf bytes.Buffer
	if err := RenderPieChart(summary, &buf); err != nil {
		return err
	}

	opts := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("sentiment-pie", opts, &buf)
	pdf.ImageOptions("sentiment-pie", 55, pdf.GetY(), 100, 0, true, opts, 0, "")
	return nil
}
