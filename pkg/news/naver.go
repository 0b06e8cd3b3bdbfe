package news

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

const naverSearchURL = "https://openapi.naver.com/v1/search/news.json"

const (
	// Naver caps display at 100 items per page.
	maxPageSize = 100
	// attempts per page on HTTP 429 before giving up on the whole fetch
	maxRateLimitRetries = 5
	rateLimitBackoff    = 1 * time.Second
	pageDelay           = 200 * time.Millisecond
)

type NaverClient struct {
	clientID     string
	clientSecret string
	httpClient   *http.Client
	now          func() time.Time
}

func NewNaverClient(clientID, clientSecret string) *NaverClient {
	return &NaverClient{
		clientID:     clientID,
		clientSecret: clientSecret,
		httpClient:   &http.Client{Timeout: 8 * time.Second},
		now:          time.Now,
	}
}

type naverResponse struct {
	Total   int         `json:"total"`
	Start   int         `json:"start"`
	Display int         `json:"display"`
	Items   []naverItem `json:"items"`
}

type naverItem struct {
	Title        string `json:"title"`
	OriginalLink string `json:"originallink"`
	Link         string `json:"link"`
	Description  string `json:"description"`
	PubDate      string `json:"pubDate"`
}

// FetchRecent pages through date-sorted search results and keeps the
// articles published within the last days calendar days. Vendor
// failures abort the fetch but return everything collected so far, so
// callers see partial results rather than an error.
func (c *NaverClient) FetchRecent(ctx context.Context, query string, days, maxPages, pageSize int) ([]Article, error) {
	if days < 1 {
		return nil, fmt.Errorf("days must be >= 1, got %d", days)
	}
	if maxPages < 1 {
		return nil, fmt.Errorf("maxPages must be >= 1, got %d", maxPages)
	}
	if pageSize < 1 || pageSize > maxPageSize {
		return nil, fmt.Errorf("pageSize must be in [1,%d], got %d", maxPageSize, pageSize)
	}

	var results []Article
	start := 1
	retries := 0

	for page := 0; page < maxPages; {
		raw, status, err := c.requestPage(ctx, query, start, pageSize, "date")
		if err != nil {
			slog.Warn("naver request failed", "query", query, "start", start, "error", err)
			return results, nil
		}

		if status == http.StatusTooManyRequests {
			retries++
			if retries > maxRateLimitRetries {
				slog.Warn("naver rate limit retries exhausted", "query", query, "start", start)
				return results, nil
			}
			select {
			case <-ctx.Done():
				return results, nil
			case <-time.After(rateLimitBackoff):
			}
			continue
		}
		retries = 0

		if status != http.StatusOK {
			slog.Warn("naver returned non-OK status", "query", query, "status", status)
			return results, nil
		}

		if len(raw.Items) == 0 {
			break
		}

		for _, it := range raw.Items {
			if !withinDays(it.PubDate, days, c.now()) {
				continue
			}
			results = append(results, newArticle(it))
		}

		page++
		start += pageSize
		if start > raw.Total {
			break
		}

		select {
		case <-ctx.Done():
			return results, nil
		case <-time.After(pageDelay):
		}
	}

	return results, nil
}

// Search fetches a single page without the recency filter. sort is
// "date" or "sim" (relevance).
func (c *NaverClient) Search(ctx context.Context, query string, display int, sort string) ([]Article, error) {
	if display < 1 || display > maxPageSize {
		return nil, fmt.Errorf("display must be in [1,%d], got %d", maxPageSize, display)
	}

	raw, status, err := c.requestPage(ctx, query, 1, display, sort)
	if err != nil {
		return nil, fmt.Errorf("naver search: %w", err)
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("naver search: status %d", status)
	}

	articles := make([]Article, 0, len(raw.Items))
	for _, it := range raw.Items {
		articles = append(articles, newArticle(it))
	}
	return articles, nil
}

func (c *NaverClient) requestPage(ctx context.Context, query string, start, display int, sort string) (*naverResponse, int, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("display", fmt.Sprint(display))
	params.Set("start", fmt.Sprint(start))
	params.Set("sort", sort)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, naverSearchURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("X-Naver-Client-Id", c.clientID)
	req.Header.Set("X-Naver-Client-Secret", c.clientSecret)
	req.Header.Set("User-Agent", "finfeed/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, resp.StatusCode, nil
	}

	var raw naverResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, resp.StatusCode, fmt.Errorf("decode: %w", err)
	}
	return &raw, resp.StatusCode, nil
}

func newArticle(it naverItem) Article {
	return Article{
		Title:        CleanText(it.Title),
		Summary:      CleanText(it.Description),
		PublishedAt:  it.PubDate,
		SourceName:   CleanText(it.OriginalLink),
		CanonicalURL: it.OriginalLink,
		DisplayURL:   it.Link,
	}
}

// withinDays reports whether pubDate falls on today or one of the
// preceding days-1 calendar days, where "today" is taken in the
// article's own timezone. Future dates and unparseable dates are
// rejected.
func withinDays(pubDate string, days int, now time.Time) bool {
	t, err := time.Parse(time.RFC1123Z, pubDate)
	if err != nil {
		return false
	}
	localNow := now.In(t.Location())
	diff := int(civilDate(localNow).Sub(civilDate(t)).Hours() / 24)
	return diff >= 0 && diff < days
}

func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
