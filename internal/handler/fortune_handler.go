package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"finfeed/pkg/llm"
)

type FortuneTeller interface {
	TodayFortune(ctx context.Context, profile llm.FortuneProfile) (*llm.Fortune, error)
}

type FortuneHandler struct {
	teller FortuneTeller
}

func NewFortuneHandler(teller FortuneTeller) *FortuneHandler {
	return &FortuneHandler{teller: teller}
}

func (h *FortuneHandler) GetTodayFortune(c *gin.Context) {
	profile := llm.FortuneProfile{
		Name:      c.Query("name"),
		Birthdate: c.Query("birthdate"),
		Sign:      c.Query("sign"),
		Interests: c.QueryArray("interests"),
	}

	fortune, err := h.teller.TodayFortune(c.Request.Context(), profile)
	if err != nil {
		slog.Error("error generating fortune", "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Fortune generation failed"})
		return
	}

	c.JSON(http.StatusOK, FortuneResponse{
		Name:      profile.Name,
		Birthdate: profile.Birthdate,
		Sign:      profile.Sign,
		Fortune:   fortune,
	})
}
