package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/russross/blackfriday/v2"

	"github.com/commentpulse/commentpulse/internal/models"
)

// SummaryMarkdown assembles the executive summary as markdown. The same
// text feeds the HTML export and keeps wording aligned with the PDF.
func SummaryMarkdown(summary models.AggregateSummary, videoRef string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# YouTube Sentiment Analyzer Report\n\n")
	fmt.Fprintf(&b, "Video: %s\n\n", videoRef)
	fmt.Fprintf(&b, "## Executive Summary\n\n")
	fmt.Fprintf(&b, "Based on **%d** comments:\n\n", summary.Total)
	fmt.Fprintf(&b, "* Positive: **%.1f%%** (%d)\n", summary.PositivePct, summary.Positive)
	fmt.Fprintf(&b, "* Neutral: **%.1f%%** (%d)\n", summary.NeutralPct, summary.Neutral)
	fmt.Fprintf(&b, "* Negative: **%.1f%%** (%d)\n", summary.NegativePct, summary.Negative)
	if summary.Skipped > 0 {
		fmt.Fprintf(&b, "* Not scored: %d\n", summary.Skipped)
	}
	fmt.Fprintf(&b, "\nAverage likes per comment: %.2f\n\n", summary.AverageLikes)
	fmt.Fprintf(&b, "## Recommendation\n\n%s\n", Recommendation(summary))

	return b.String()
}

// WriteHTMLReport renders the markdown summary to a standalone HTML page.
func WriteHTMLReport(w io.Writer, summary models.AggregateSummary, videoRef string, generatedAt time.Time) error {
	body := blackfriday.Run([]byte(SummaryMarkdown(summary, videoRef)), blackfriday.WithNoExtensions())

	_, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Sentiment Report</title></head>
<body>
%s
<footer><small>Generated on %s</small></footer>
</body>
</html>
`, body, generatedAt.Format("January 2, 2006 15:04:05"))
	return err
}
