package main

import (
	"fmt"
	"log"

	"prompt-vault/config"
	"prompt-vault/internal/handler"
	"prompt-vault/internal/repository"
	"prompt-vault/internal/server"
	"prompt-vault/internal/services"
	"prompt-vault/internal/upstream"
	"prompt-vault/pkg/logger"
)

func main() {
	cfg := config.LoadConfig()

	l := logger.New(cfg.AppMode)
	defer l.Logger.Sync()
	logger.SetGlobalLogger(l)

	users, err := repository.NewFileUserRepository(cfg.DataDir)
	if err != nil {
		log.Fatalf("Failed to open user directory: %v", err)
	}
	files, err := repository.NewFileStore(cfg.DataDir)
	if err != nil {
		log.Fatalf("Failed to open data directory: %v", err)
	}

	authSvc := services.NewAuthService(users, files, cfg)
	promptSvc := services.NewPromptService()

	configured := cfg.OpenAIKey != ""
	if !configured {
		l.Warnf("OPENAI_API_KEY not set, /chat is disabled")
	}
	client := upstream.NewClient(cfg.OpenAIBaseURL, cfg.OpenAIKey, cfg.OpenAIModel)
	chatSvc := services.NewChatService(client, files, configured, l)

	r := server.NewAPIRouter(cfg.AppMode, l,
		authSvc,
		handler.NewAuthHandler(authSvc),
		handler.NewPromptHandler(promptSvc, handler.UserStore(files)),
		handler.NewChatHandler(chatSvc),
	)

	l.Infof("Prompt service (extended) listening on port %s", cfg.AppPort)
	if err := r.Run(fmt.Sprintf(":%s", cfg.AppPort)); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
