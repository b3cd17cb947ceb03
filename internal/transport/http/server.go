package http

import (
	stdhttp "net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"msgboard/internal/config"
	"msgboard/internal/message"
)

// NewServer builds an HTTP server with the message API routes.
func NewServer(svc *message.Service, cfg *config.Config, logger *zerolog.Logger) *stdhttp.Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestIDMiddleware())
	router.Use(LoggerMiddleware(logger))
	if cfg.RequestsPerMinute > 0 {
		router.Use(RateLimitMiddleware(newRateLimiter(cfg.RequestsPerMinute)))
	}

	router.GET("/health", healthHandler)

	handlers := NewMessageHandlers(svc, logger)
	api := router.Group("/api")
	{
		api.GET("/messages", handlers.ListMessages)
		api.POST("/messages", handlers.CreateMessage)
		api.GET("/messages/:id", handlers.GetMessage)
		api.PUT("/messages/:id", handlers.UpdateMessage)
		api.DELETE("/messages/:id", handlers.DeleteMessage)
	}

	return &stdhttp.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}
}

func healthHandler(c *gin.Context) {
	c.String(stdhttp.StatusOK, "ok")
}
