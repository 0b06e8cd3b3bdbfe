package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"finfeed/internal/keyword"
	"finfeed/internal/model"
)

type OnboardingStore interface {
	GetOnboarding(userID int64) (*model.UserOnboarding, error)
	SaveQ1(userID int64, categoryIDs []int) error
	SaveQ2(userID int64, keywords []string) error
	SaveQ3(userID int64, excludeKeywords []string) error
	GetStatus(userID int64) (*model.OnboardingStatus, error)
}

type PreferenceHandler struct {
	repository OnboardingStore
}

func NewPreferenceHandler(repository OnboardingStore) *PreferenceHandler {
	return &PreferenceHandler{repository: repository}
}

func (h *PreferenceHandler) GetCategories(c *gin.Context) {
	res := make([]CategoryResponse, 0, len(keyword.Categories))
	for _, cat := range keyword.Categories {
		res = append(res, CategoryResponse{
			ID:          cat.ID,
			Key:         cat.Key,
			Label:       cat.Label,
			Description: cat.Description,
		})
	}
	c.JSON(http.StatusOK, res)
}

func (h *PreferenceHandler) SaveQ1(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	var req Q1Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	ids := keyword.ValidCategoryIDs(req.SelectedCategoryIDs, model.MaxSelectedCategories)

	if err := h.repository.SaveQ1(userID, ids); err != nil {
		slog.Error("error saving q1 answer", "user_id", userID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	res := Q1Response{SelectedCategories: []CategoryResponse{}}
	for _, id := range ids {
		cat := keyword.CategoryByID(id)
		res.SelectedCategories = append(res.SelectedCategories, CategoryResponse{
			ID:          cat.ID,
			Key:         cat.Key,
			Label:       cat.Label,
			Description: cat.Description,
		})
	}

	c.JSON(http.StatusOK, res)
}

func (h *PreferenceHandler) SaveQ2(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	var req Q2Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	keywords := keyword.Clean(req.Keywords)
	if len(keywords) > model.MaxKeywords {
		keywords = keywords[:model.MaxKeywords]
	}

	if err := h.repository.SaveQ2(userID, keywords); err != nil {
		slog.Error("error saving q2 answer", "user_id", userID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, Q2Response{Keywords: keywords})
}

func (h *PreferenceHandler) SaveQ3(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	var req Q3Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	keywords := keyword.Clean(req.ExcludeKeywords)
	if len(keywords) > model.MaxKeywords {
		keywords = keywords[:model.MaxKeywords]
	}

	if err := h.repository.SaveQ3(userID, keywords); err != nil {
		slog.Error("error saving q3 answer", "user_id", userID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, Q3Response{ExcludeKeywords: keywords})
}

func (h *PreferenceHandler) GetStatus(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	status, err := h.repository.GetStatus(userID)
	if err != nil {
		slog.Error("error fetching onboarding status", "user_id", userID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, OnboardingStatusResponse{
		Q1Completed: status.Q1Completed,
		Q2Completed: status.Q2Completed,
		Q3Completed: status.Q3Completed,
	})
}
