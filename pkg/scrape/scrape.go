package scrape

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const (
	// paragraphs shorter than this are navigation/caption noise
	minParagraphLen = 50
	// extracted bodies shorter than this are treated as a failed scrape
	minBodyLen = 100
)

type Client struct {
	httpClient *http.Client
}

func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

// ArticleBody fetches url and joins the long <p> paragraphs into the
// article body text. Returns an error when nothing useful could be
// extracted; callers fall back to the search snippet.
func (c *Client) ArticleBody(url string) (string, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch article: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch article: status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("parse article: %w", err)
	}

	var parts []string
	doc.Find("p").Each(func(_ int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		if len([]rune(text)) > minParagraphLen {
			parts = append(parts, text)
		}
	})

	body := strings.Join(parts, " ")
	if len([]rune(body)) < minBodyLen {
		return "", fmt.Errorf("no article body found")
	}
	return body, nil
}

// OGImage returns the og:image URL of the page, or "" when absent or
// unreachable. Thumbnails are best-effort only.
func (c *Client) OGImage(url string) string {
	resp, err := c.httpClient.Get(url)
	if err != nil {
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return ""
	}

	content, _ := doc.Find(`meta[property="og:image"]`).Attr("content")
	return content
}
