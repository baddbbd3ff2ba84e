package main

import (
	"fmt"
	"log"

	"prompt-vault/config"
	"prompt-vault/internal/handler"
	"prompt-vault/internal/repository"
	"prompt-vault/internal/server"
	"prompt-vault/internal/services"
	"prompt-vault/pkg/logger"
)

// The basic variant: unauthenticated prompt CRUD over an in-memory store
// that is lost on restart.
func main() {
	cfg := config.LoadConfig()

	l := logger.New(cfg.AppMode)
	defer l.Logger.Sync()
	logger.SetGlobalLogger(l)

	store := repository.NewMemoryPromptStore()
	promptSvc := services.NewPromptService()

	r := server.NewBasicRouter(cfg.AppMode, l,
		handler.NewPromptHandler(promptSvc, handler.FixedStore(store)),
	)

	l.Infof("Prompt service (basic) listening on port %s", cfg.AppPort)
	if err := r.Run(fmt.Sprintf(":%s", cfg.AppPort)); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
