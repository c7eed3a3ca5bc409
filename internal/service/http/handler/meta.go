package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/reusedev/scribe-hub/config"
	"github.com/reusedev/scribe-hub/internal/consts"
	"github.com/reusedev/scribe-hub/internal/modules/gateway"
)

func (h *Handler) Home(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": consts.ServiceName,
		"status":  "running",
		"endpoints": gin.H{
			"health":  "/health",
			"test":    "/test-api",
			"analyze": "/analyze (POST with image)",
			"detect":  "/detect-text (POST with image)",
		},
	})
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":         "healthy",
		"api_configured": config.GConfig.APIKeyConfigured(),
		"model":          h.gateway.Model(),
	})
}

func (h *Handler) TestAPI(c *gin.Context) {
	text, err := h.gateway.GenerateText(c.Request.Context(), gateway.ProbePrompt)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":        "success",
		"message":       "Gemini API is working perfectly!",
		"model":         h.gateway.Model(),
		"test_response": text,
	})
}
