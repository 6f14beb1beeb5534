package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/commentpulse/commentpulse/internal/models"
)

const (
	YOUTUBE_API_URL = "https://www.googleapis.com/youtube/v3/commentThreads"
	PAGE_SIZE       = 100
	PAGE_DELAY      = 100 * time.Millisecond
	REQUEST_TIMEOUT = 30 * time.Second
)

// APIError is returned when the comments API answers with a non-2xx
// status. The whole fetch is abandoned; no partial results survive.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("youtube api error %d: %s", e.StatusCode, e.Body)
}

type FetchOptions struct {
	MaxComments int
	Order       models.Order
}

// YouTubeClient fetches top-level comment threads for a video. The clock
// drives the advisory delay between page requests and is injectable so
// tests never wait on real time.
type YouTubeClient struct {
	client    *http.Client
	clock     clockwork.Clock
	apiKey    string
	baseURL   string
	pageDelay time.Duration
}

func NewYouTubeClient(apiKey string) *YouTubeClient {
	return newYouTubeClient(apiKey, YOUTUBE_API_URL, clockwork.NewRealClock(), PAGE_DELAY)
}

func newYouTubeClient(apiKey, baseURL string, clock clockwork.Clock, pageDelay time.Duration) *YouTubeClient {
	return &YouTubeClient{
		client:    &http.Client{Timeout: REQUEST_TIMEOUT},
		clock:     clock,
		apiKey:    apiKey,
		baseURL:   baseURL,
		pageDelay: pageDelay,
	}
}

// FetchComments pages through the commentThreads endpoint until
// opts.MaxComments comments are collected or the API stops returning a
// page token. The fetch is all-or-nothing: any transport failure or
// non-2xx status discards everything accumulated so far. Ordering follows
// the API response for the requested order; there is no client-side sort.
func (c *YouTubeClient) FetchComments(ctx context.Context, videoID string, opts FetchOptions) ([]models.Comment, error) {
	comments := make([]models.Comment, 0, opts.MaxComments)
	pageToken := ""
	page := 0

	for {
		page++
		body, err := c.fetchPage(ctx, videoID, opts.Order, pageToken)
		if err != nil {
			return nil, err
		}

		var resp models.CommentThreadListResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			return nil, fmt.Errorf("[YouTubeClient] failed to parse response: %w", err)
		}

		for _, item := range resp.Items {
			comments = append(comments, commentFromItem(item))
			if len(comments) >= opts.MaxComments {
				slog.Info("[YouTubeClient] Reached requested comment count",
					slog.Int("fetched", len(comments)),
					slog.Int("pages", page))
				return comments, nil
			}
		}

		slog.Debug("[YouTubeClient] Fetched page",
			slog.Int("page", page),
			slog.Int("fetched", len(comments)))

		if resp.NextPageToken == "" {
			break
		}
		pageToken = resp.NextPageToken

		// Advisory pacing between pages, not a rate-limit backoff.
		if c.pageDelay > 0 {
			c.clock.Sleep(c.pageDelay)
		}
	}

	slog.Info("[YouTubeClient] Fetch complete",
		slog.Int("fetched", len(comments)),
		slog.Int("pages", page))
	return comments, nil
}

func (c *YouTubeClient) fetchPage(ctx context.Context, videoID string, order models.Order, pageToken string) ([]byte, error) {
	parsedUrl, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("[YouTubeClient] failed to parse URL: %w", err)
	}

	queryParams := parsedUrl.Query()
	queryParams.Set("part", "snippet")
	queryParams.Set("videoId", videoID)
	queryParams.Set("maxResults", strconv.Itoa(PAGE_SIZE))
	queryParams.Set("textFormat", "plainText")
	queryParams.Set("order", string(order))
	queryParams.Set("key", c.apiKey)
	if pageToken != "" {
		queryParams.Set("pageToken", pageToken)
	}
	parsedUrl.RawQuery = queryParams.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, parsedUrl.String(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("[YouTubeClient] request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("[YouTubeClient] failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		slog.Error("[YouTubeClient] API returned non-success status",
			slog.Int("status", resp.StatusCode))
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	return body, nil
}

// commentFromItem flattens one API item. Missing optional fields default
// to ""/0/nil instead of failing the fetch.
func commentFromItem(item models.CommentThread) models.Comment {
	s := item.Snippet.TopLevelComment.Snippet
	return models.Comment{
		Author:      s.AuthorDisplayName,
		Text:        s.TextOriginal,
		LikeCount:   s.LikeCount,
		PublishedAt: parseTimestamp(s.PublishedAt),
	}
}

func parseTimestamp(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	ts, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil
	}
	return &ts
}
