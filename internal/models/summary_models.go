package models

// AggregateSummary holds the per-label counts and derived percentages for
// one engine's view of an analyzed batch. Positive+Neutral+Negative covers
// every comment that engine labeled; Skipped counts comments the engine
// could not score. Percentages use the labeled total with a floor of 1 so
// an all-skipped or empty batch never divides by zero.
type AggregateSummary struct {
	Total        int     `json:"total"`
	Positive     int     `json:"positive"`
	Neutral      int     `json:"neutral"`
	Negative     int     `json:"negative"`
	Skipped      int     `json:"skipped"`
	AverageLikes float64 `json:"average_likes"`
	PositivePct  float64 `json:"positive_pct"`
	NeutralPct   float64 `json:"neutral_pct"`
	NegativePct  float64 `json:"negative_pct"`
}

// Labeled returns how many comments received a label.
func (s AggregateSummary) Labeled() int {
	return s.Positive + s.Neutral + s.Negative
}
