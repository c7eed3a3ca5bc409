package response

import "github.com/gin-gonic/gin"

var (
	NoImageUploaded = gin.H{"error": "No image uploaded"}

	EmptyImageFile = gin.H{"error": "Empty image file"}

	ErrorWithMessage = func(message string) gin.H {
		return gin.H{"error": message}
	}
)
