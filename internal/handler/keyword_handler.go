package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"finfeed/internal/keyword"
)

const todayKeywordCount = 6

type KeywordSuggester interface {
	SuggestKeywords(ctx context.Context, q1 []int, q2, q3 []string, targetSize int) ([]string, error)
}

type KeywordCache interface {
	Get(ctx context.Context, userID int64) ([]string, bool)
	Set(ctx context.Context, userID int64, keywords []string) error
}

type KeywordHandler struct {
	repository OnboardingStore
	suggester  KeywordSuggester
	cache      KeywordCache
}

func NewKeywordHandler(repository OnboardingStore, suggester KeywordSuggester, cache KeywordCache) *KeywordHandler {
	return &KeywordHandler{repository: repository, suggester: suggester, cache: cache}
}

// GetTodayKeywords suggests today's search keywords for the user. The
// LLM result is topped up by the rule-based sampler when short, and
// cached until midnight so repeat calls on the same date agree.
func (h *KeywordHandler) GetTodayKeywords(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()

	if cached, ok := h.cache.Get(ctx, userID); ok {
		c.JSON(http.StatusOK, KeywordsResponse{Keywords: cached})
		return
	}

	onboarding, err := h.repository.GetOnboarding(userID)
	if err != nil {
		slog.Error("error fetching onboarding", "user_id", userID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if onboarding == nil {
		c.JSON(http.StatusOK, KeywordsResponse{Keywords: []string{}})
		return
	}

	keywords, err := h.suggester.SuggestKeywords(ctx,
		onboarding.Q1Categories, onboarding.Q2Keywords, onboarding.Q3Keywords, todayKeywordCount)
	if err != nil {
		slog.Warn("AI keyword suggestion failed, using rule-based fallback", "user_id", userID, "error", err)
		keywords = nil
	}

	if len(keywords) < todayKeywordCount {
		keywords = keyword.TodaySample(
			onboarding.Q1Categories, onboarding.Q2Keywords, onboarding.Q3Keywords, todayKeywordCount)
	}

	if err := h.cache.Set(ctx, userID, keywords); err != nil {
		slog.Warn("error caching today keywords", "user_id", userID, "error", err)
	}

	c.JSON(http.StatusOK, KeywordsResponse{Keywords: keywords})
}
