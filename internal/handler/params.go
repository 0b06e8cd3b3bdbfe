package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

func getQueryInt(name string, defaultValue int, c *gin.Context) int {
	raw := c.Query(name)

	if raw == "" {
		return defaultValue
	}

	parsed, err := strconv.Atoi(raw)
	if err != nil {
		slog.Warn("invalid query parameter, using default", "param", name, "value", raw, "error", err)
		return defaultValue
	}

	return parsed
}

func getQueryLimit(defaultLimit, maxLimit int, c *gin.Context) int {
	limit := getQueryInt("limit", defaultLimit, c)
	if limit < 1 {
		slog.Warn("invalid query parameter, using default", "param", "limit", "value", limit, "default", defaultLimit)
		return defaultLimit
	}

	if limit > maxLimit {
		slog.Warn("query parameter exceeds max, clamping", "param", "limit", "value", limit, "max", maxLimit)
		return maxLimit
	}

	return limit
}

// getUserID parses the user_id query parameter; ok=false means the
// handler already wrote a 400 response.
func getUserID(c *gin.Context) (int64, bool) {
	raw := c.Query("user_id")
	userID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || userID < 1 {
		slog.Warn("invalid user id", "value", raw)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user_id"})
		return 0, false
	}
	return userID, true
}
