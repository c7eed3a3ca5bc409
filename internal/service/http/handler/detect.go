package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/reusedev/scribe-hub/internal/modules/analysis"
	"github.com/reusedev/scribe-hub/internal/modules/gateway"
	"github.com/reusedev/scribe-hub/internal/modules/logs"
	"github.com/reusedev/scribe-hub/internal/service/http/response"
	"github.com/reusedev/scribe-hub/tools"
)

func (h *Handler) DetectText(c *gin.Context) {
	data := formImage(c)
	if data == nil {
		return
	}
	payload, err := tools.PrepareUpload(data)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorWithMessage("Invalid image format: "+err.Error()))
		return
	}
	raw, err := h.gateway.GenerateVision(c.Request.Context(), gateway.DetectPrompt, payload, tools.UploadMIME)
	if err != nil {
		logs.Logger.Err(err).Msg("detect-GenerateVision")
		c.JSON(http.StatusInternalServerError, response.ErrorWithMessage("Detection failed: "+err.Error()))
		return
	}
	detected := analysis.DetectText(raw)
	logs.Logger.Info().Str("detected_text", detected).Msg("detect succeeded")
	c.JSON(http.StatusOK, gin.H{"text": detected})
}
