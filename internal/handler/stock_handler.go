package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"finfeed/internal/model"
	"finfeed/internal/stockpick"
)

type StockRecommender interface {
	Recommend(ctx context.Context, ob *model.UserOnboarding) (*stockpick.Recommendation, error)
}

type StockHandler struct {
	repository  OnboardingStore
	recommender StockRecommender
}

func NewStockHandler(repository OnboardingStore, recommender StockRecommender) *StockHandler {
	return &StockHandler{repository: repository, recommender: recommender}
}

func (h *StockHandler) GetRecommendation(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

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

	rec, err := h.recommender.Recommend(c.Request.Context(), onboarding)
	if err != nil {
		slog.Error("error recommending stock", "user_id", userID, "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Recommendation failed"})
		return
	}

	res := StockPickResponse{
		UserInterest:    rec.Topic,
		Source:          rec.TopicSource,
		CandidatesFound: rec.Candidates,
	}
	if rec.Pick != nil {
		res.AIResult.RecommendedStock = rec.Pick.Name
		res.AIResult.StockCode = rec.Pick.Code
		res.AIResult.Reason = rec.Pick.Reason
	}

	c.JSON(http.StatusOK, res)
}
