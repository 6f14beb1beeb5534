package models

// Wire shapes for the YouTube Data API v3 commentThreads endpoint.
// Only the fields the fetcher reads are declared; everything else in the
// payload is ignored during decoding.

type CommentThreadListResponse struct {
	Items         []CommentThread `json:"items"`
	NextPageToken string          `json:"nextPageToken,omitempty"`
}

type CommentThread struct {
	Snippet CommentThreadSnippet `json:"snippet"`
}

type CommentThreadSnippet struct {
	TopLevelComment TopLevelComment `json:"topLevelComment"`
}

type TopLevelComment struct {
	Snippet CommentSnippet `json:"snippet"`
}

type CommentSnippet struct {
	AuthorDisplayName string `json:"authorDisplayName"`
	TextOriginal      string `json:"textOriginal"`
	LikeCount         int    `json:"likeCount"`
	PublishedAt       string `json:"publishedAt"`
}
