package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/reusedev/scribe-hub/internal/modules/analysis"
	"github.com/reusedev/scribe-hub/internal/modules/gateway"
	"github.com/reusedev/scribe-hub/internal/modules/logs"
	"github.com/reusedev/scribe-hub/internal/service/http/response"
	"github.com/reusedev/scribe-hub/tools"
)

func (h *Handler) Analyze(c *gin.Context) {
	data := formImage(c)
	if data == nil {
		return
	}
	payload, err := tools.PrepareUpload(data)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorWithMessage("Invalid image format: "+err.Error()))
		return
	}
	raw, err := h.gateway.GenerateVision(c.Request.Context(), gateway.AnalyzePrompt, payload, tools.UploadMIME)
	if err != nil {
		logs.Logger.Err(err).Msg("analyze-GenerateVision")
		status, body := gatewayErrorResponse(err)
		c.JSON(status, body)
		return
	}
	result := analysis.Parse(raw)
	if len(result.Scores) == 0 {
		result.Scores = analysis.FallbackScores()
	}
	logs.Logger.Info().Str("detected_text", result.DetectedText).
		Interface("scores", result.Scores).
		Msg("analyze succeeded")
	c.JSON(http.StatusOK, result)
}

// gatewayErrorResponse maps upstream failures onto the HTTP surface by
// matching the error message text. Credential problems are checked before
// quota so an ambiguous message resolves the same way every time.
func gatewayErrorResponse(err error) (int, gin.H) {
	msg := err.Error()
	lower := strings.ToLower(msg)
	switch {
	case strings.Contains(msg, "API_KEY_INVALID") || strings.Contains(lower, "invalid"):
		return http.StatusInternalServerError, response.ErrorWithMessage("Invalid API key")
	case strings.Contains(lower, "quota"):
		return http.StatusTooManyRequests, response.ErrorWithMessage("API quota exceeded. Wait a minute.")
	default:
		return http.StatusInternalServerError, response.ErrorWithMessage("Analysis failed: " + msg)
	}
}
