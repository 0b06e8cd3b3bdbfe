package handler

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"finfeed/internal/keyword"
	"finfeed/pkg/news"
)

const (
	ttsScriptMax  = 180
	ttsCandidates = 10
)

type SpeechSynthesizer interface {
	Speak(ctx context.Context, script string) (io.ReadCloser, error)
}

type TTSHandler struct {
	repository  OnboardingStore
	searcher    news.Searcher
	summarizer  Summarizer
	synthesizer SpeechSynthesizer
}

func NewTTSHandler(repository OnboardingStore, searcher news.Searcher, summarizer Summarizer, synthesizer SpeechSynthesizer) *TTSHandler {
	return &TTSHandler{
		repository:  repository,
		searcher:    searcher,
		summarizer:  summarizer,
		synthesizer: synthesizer,
	}
}

// GetNewsAudio picks one article matching the user's keyword profile,
// writes a shortform script for it and streams the synthesized speech
// as mp3.
func (h *TTSHandler) GetNewsAudio(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()

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
	query := buildSearchQuery(keywords, onboarding.Q3Keywords)

	articles, err := h.searcher.Search(ctx, query, ttsCandidates, "sim")
	if err != nil {
		slog.Error("error searching news for tts", "user_id", userID, "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "News search failed"})
		return
	}

	if len(articles) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No news matched the user's preferences"})
		return
	}

	selected := articles[rand.Intn(len(articles))]
	text := fmt.Sprintf("제목: %s\n내용: %s", selected.Title, selected.Summary)

	script, err := h.summarizer.ShortformScript(ctx, text, ttsScriptMax)
	if err != nil {
		slog.Error("error writing shortform script", "user_id", userID, "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Script generation failed"})
		return
	}

	stream, err := h.synthesizer.Speak(ctx, script)
	if err != nil {
		slog.Error("error synthesizing speech", "user_id", userID, "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Speech synthesis failed"})
		return
	}
	defer stream.Close()

	c.DataFromReader(http.StatusOK, -1, "audio/mpeg", stream, nil)
}

// GetShortformAudio turns arbitrary caller-supplied text into a
// shortform script and streams it as mp3. No user context required.
func (h *TTSHandler) GetShortformAudio(c *gin.Context) {
	var req ShortformRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Text) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	maxChars := req.MaxChars
	if maxChars < 1 {
		maxChars = ttsScriptMax
	}

	ctx := c.Request.Context()

	script, err := h.summarizer.ShortformScript(ctx, req.Text, maxChars)
	if err != nil {
		slog.Error("error writing shortform script", "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Script generation failed"})
		return
	}

	stream, err := h.synthesizer.Speak(ctx, script)
	if err != nil {
		slog.Error("error synthesizing speech", "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Speech synthesis failed"})
		return
	}
	defer stream.Close()

	c.DataFromReader(http.StatusOK, -1, "audio/mpeg", stream, nil)
}

// buildSearchQuery joins include keywords and minus-prefixed exclude
// keywords into one search expression.
func buildSearchQuery(include, exclude []string) string {
	parts := make([]string, 0, len(include)+len(exclude))
	parts = append(parts, include...)
	for _, kw := range keyword.Clean(exclude) {
		parts = append(parts, "-"+kw)
	}
	return strings.Join(parts, " ")
}
