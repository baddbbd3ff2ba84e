// Package server assembles the HTTP routers for the two prompt services.
package server

import (
	"net/http"

	"prompt-vault/internal/handler"
	"prompt-vault/internal/middleware"
	"prompt-vault/internal/services"
	"prompt-vault/internal/transport/httpdto"
	"prompt-vault/pkg/logger"

	"github.com/gin-gonic/gin"
)

func newEngine(mode string, log *logger.Logger) *gin.Engine {
	if mode == logger.ProductionMode {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.Recovery(log))
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggingMiddleware(log))

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, httpdto.NewErrorResponse("route not found"))
	})

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	return r
}

// NewBasicRouter wires the basic variant: unauthenticated prompt CRUD over
// a globally shared store.
func NewBasicRouter(mode string, log *logger.Logger, prompts *handler.PromptHandler) *gin.Engine {
	r := newEngine(mode, log)

	r.POST("/prompts", prompts.Create)
	r.GET("/prompts", prompts.List)
	r.GET("/prompts/:id", prompts.Get)
	r.PUT("/prompts/:id", prompts.Replace)
	r.PATCH("/prompts/:id", prompts.Patch)
	r.DELETE("/prompts/:id", prompts.Delete)

	return r
}

// NewAPIRouter wires the extended variant: registration and login stay
// public, every prompt and chat route sits behind the auth gate.
func NewAPIRouter(mode string, log *logger.Logger, authSvc *services.AuthService,
	auth *handler.AuthHandler, prompts *handler.PromptHandler, chat *handler.ChatHandler) *gin.Engine {
	r := newEngine(mode, log)

	r.POST("/register", auth.Register)
	r.POST("/login", auth.Login)

	protected := r.Group("/")
	protected.Use(middleware.AuthMiddleware(authSvc))

	protected.GET("/me", auth.Me)

	protected.POST("/prompts", prompts.Create)
	protected.GET("/prompts", prompts.List)
	protected.GET("/prompts/:id", prompts.Get)
	protected.PUT("/prompts/:id", prompts.Replace)
	protected.PATCH("/prompts/:id", prompts.Patch)
	protected.DELETE("/prompts/:id", prompts.Delete)

	protected.POST("/chat", chat.Chat)
	protected.GET("/history", chat.History)

	return r
}
