package report

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"github.com/commentpulse/commentpulse/internal/models"
)

// WriteCSV writes every analyzed comment as UTF-8 CSV. The fixed columns
// come first, then a compound/sentiment column pair per engine in the
// order given. Invalid scores leave both cells empty.
func WriteCSV(w io.Writer, comments []models.AnalyzedComment, engines []models.Engine) error {
	cw := csv.NewWriter(w)

	header := []string{"author", "text", "likeCount", "publishedAt", "clean_text"}
	for _, engine := range engines {
		header = append(header, string(engine)+"_compound", string(engine)+"_sentiment")
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, c := range comments {
		row := []string{
			c.Author,
			c.Text,
			strconv.Itoa(c.LikeCount),
			formatTimestamp(c.PublishedAt),
			c.CleanText,
		}
		for _, engine := range engines {
			score, ok := c.Scores[engine]
			if !ok || !score.Valid {
				row = append(row, "", "")
				continue
			}
			row = append(row,
				strconv.FormatFloat(score.Compound, 'f', 4, 64),
				string(score.Label))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatTimestamp(ts *time.Time) string {
	if ts == nil {
		return ""
	}
	return ts.Format(time.RFC3339)
}
