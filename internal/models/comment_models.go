package models

import "time"

// Engine identifies a sentiment scoring strategy.
type Engine string

const (
	EngineVADER Engine = "vader"
	EngineONNX  Engine = "onnx"
)

type Label string

const (
	LabelPositive Label = "Positive"
	LabelNeutral  Label = "Neutral"
	LabelNegative Label = "Negative"
)

// Order is the fetch ordering requested from the comments API.
type Order string

const (
	OrderRelevance Order = "relevance"
	OrderTime      Order = "time"
)

type Comment struct {
	Author      string     `json:"author"`
	Text        string     `json:"text"`
	LikeCount   int        `json:"likeCount"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
}

// SentimentScore is one engine's verdict for a single comment. Valid is
// false when scoring that comment failed; invalid scores carry no label
// and are excluded from label totals.
type SentimentScore struct {
	Compound float64 `json:"compound"`
	Label    Label   `json:"label,omitempty"`
	Valid    bool    `json:"valid"`
}

// AnalyzedComment pairs a fetched comment with its cleaned text and the
// scores of every engine that ran. Engines attach their scores side by
// side and never overwrite each other.
type AnalyzedComment struct {
	Comment
	CleanText string                    `json:"clean_text"`
	Scores    map[Engine]SentimentScore `json:"scores"`
}
