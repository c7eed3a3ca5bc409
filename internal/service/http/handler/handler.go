package handler

import (
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/reusedev/scribe-hub/internal/service/http/response"
)

// Gateway is the slice of the model client the handlers need.
type Gateway interface {
	Model() string
	GenerateText(ctx context.Context, prompt string) (string, error)
	GenerateVision(ctx context.Context, prompt string, image []byte, mimeType string) (string, error)
}

type Handler struct {
	gateway Gateway
}

func New(gateway Gateway) *Handler {
	return &Handler{gateway: gateway}
}

// formImage reads the multipart "image" field. A nil body return means the
// request was already answered with a 400.
func formImage(c *gin.Context) []byte {
	file, _, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.NoImageUploaded)
		return nil
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorWithMessage("Invalid image format: "+err.Error()))
		return nil
	}
	if len(data) == 0 {
		c.JSON(http.StatusBadRequest, response.EmptyImageFile)
		return nil
	}
	return data
}
