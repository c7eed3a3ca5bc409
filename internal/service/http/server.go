package http

import (
	"github.com/gin-gonic/gin"
	"github.com/reusedev/scribe-hub/internal/service/http/handler"
	"github.com/reusedev/scribe-hub/internal/service/http/middleware"
)

func Serve(port string, gateway handler.Gateway) {
	e := gin.New()
	initRouter(e, handler.New(gateway))
	if err := e.Run(port); err != nil {
		panic(err)
	}
}

func initRouter(e *gin.Engine, h *handler.Handler) {
	e.Use(gin.Recovery())
	e.Use(middleware.RequestLogger())
	e.GET("/", h.Home)
	e.GET("/health", h.Health)
	e.GET("/test-api", h.TestAPI)
	e.POST("/detect-text", h.DetectText)
	e.POST("/analyze", h.Analyze)
}
