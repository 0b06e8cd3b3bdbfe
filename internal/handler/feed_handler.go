package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"finfeed/internal/keyword"
	"finfeed/internal/recommend"
)

const (
	defaultFeedLimit = 20
	maxFeedLimit     = 100
	shortformMax     = 300
)

type FeedBuilder interface {
	Assemble(ctx context.Context, keywords []string, limit int) ([]recommend.FeedArticle, error)
}

type BodyScraper interface {
	ArticleBody(url string) (string, error)
	OGImage(url string) string
}

type Summarizer interface {
	ShortformScript(ctx context.Context, text string, maxChars int) (string, error)
}

type FeedHandler struct {
	repository OnboardingStore
	assembler  FeedBuilder
	scraper    BodyScraper
	summarizer Summarizer
}

func NewFeedHandler(repository OnboardingStore, assembler FeedBuilder, scraper BodyScraper, summarizer Summarizer) *FeedHandler {
	return &FeedHandler{
		repository: repository,
		assembler:  assembler,
		scraper:    scraper,
		summarizer: summarizer,
	}
}

func (h *FeedHandler) GetHomeFeed(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	limit := getQueryLimit(defaultFeedLimit, maxFeedLimit, c)

	onboarding, err := h.repository.GetOnboarding(userID)
	if err != nil {
		slog.Error("error fetching onboarding", "user_id", userID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if onboarding == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Onboarding not completed"})
		return
	}

	keywords := keyword.Expand(onboarding)

	articles, err := h.assembler.Assemble(c.Request.Context(), keywords, limit)
	if err != nil {
		slog.Error("error assembling feed", "user_id", userID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Feed assembly failed"})
		return
	}

	res := FeedResponse{
		Keywords: keywords,
		Articles: make([]ArticleResponse, 0, len(articles)),
		Total:    len(articles),
	}
	for _, a := range articles {
		res.Articles = append(res.Articles, toArticleResponse(a))
	}

	c.JSON(http.StatusOK, res)
}

// GetTodayNews serves the public, non-personalized economy feed built
// from the default keywords. No user context required.
func (h *FeedHandler) GetTodayNews(c *gin.Context) {
	limit := getQueryLimit(defaultFeedLimit, maxFeedLimit, c)

	articles, err := h.assembler.Assemble(c.Request.Context(), keyword.DefaultKeywords, limit)
	if err != nil {
		slog.Error("error assembling today news", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Feed assembly failed"})
		return
	}

	res := TodayNewsResponse{
		Count: len(articles),
		Data:  make([]ArticleResponse, 0, len(articles)),
	}
	for _, a := range articles {
		res.Data = append(res.Data, toArticleResponse(a))
	}

	c.JSON(http.StatusOK, res)
}

func toArticleResponse(a recommend.FeedArticle) ArticleResponse {
	return ArticleResponse{
		Title:       a.Title,
		Description: a.Description,
		URL:         a.URL,
		PublishedAt: a.PublishedAt.Format(time.RFC3339),
		Source:      a.Source,
	}
}

// GetContent crawls the article body and rewrites it as a shortform
// summary. Both steps are best-effort: when crawling fails the reader
// gets an explanatory message, and when the summarizer fails they get
// the raw body prefix.
func (h *FeedHandler) GetContent(c *gin.Context) {
	var req ContentRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.URL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	body, err := h.scraper.ArticleBody(req.URL)
	if err != nil {
		slog.Warn("article crawl failed", "url", req.URL, "error", err)
		c.JSON(http.StatusOK, ContentResponse{Content: "본문을 불러올 수 없습니다. 원문 링크를 확인해주세요."})
		return
	}

	imageURL := h.scraper.OGImage(req.URL)

	script, err := h.summarizer.ShortformScript(c.Request.Context(), body, shortformMax)
	if err != nil {
		slog.Warn("shortform summary failed", "url", req.URL, "error", err)
		runes := []rune(body)
		if len(runes) > shortformMax {
			body = string(runes[:shortformMax]) + "..."
		}
		c.JSON(http.StatusOK, ContentResponse{Content: body, ImageURL: imageURL})
		return
	}

	c.JSON(http.StatusOK, ContentResponse{Content: script, ImageURL: imageURL})
}
