package api

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lysyi3m/time-normalizer/app/normalizer"
)

func NewHandler(n NormalizerInterface, version string) *Handler {
	return &Handler{
		normalizer: n,
		version:    version,
	}
}

// GetTime always answers 200. Failures are reported through sentinel values
// in the body.
func (h *Handler) GetTime(c *gin.Context) {
	token := c.Param("token")

	result, err := h.normalizer.Run(token)
	if err != nil {
		var normErr *normalizer.Error
		if errors.As(err, &normErr) {
			slog.Debug("Token conversion failed", "token", token, "kind", normErr.Kind.String(), "error", err)
		} else {
			slog.Error("Unexpected conversion error", "token", token, "error", err)
		}
		result = normalizer.Sentinel(err)
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"version":   h.version,
	})
}

func (h *Handler) GetInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service":     "Time Normalizer",
		"version":     h.version,
		"description": "Converts calendar dates and Unix timestamps into a canonical UTC representation",
		"endpoints": map[string]string{
			"time":   "/api/<date-or-timestamp>",
			"health": "/health",
		},
		"sentinels": map[string]string{
			"invalid_date":    normalizer.SentinelNone,
			"invalid_integer": normalizer.SentinelError,
			"out_of_range":    normalizer.SentinelOutOfRange,
		},
	})
}
