package services

import (
	"context"
	"encoding/json"
	"errors"

	"prompt-vault/internal/domain/prompt"
	"prompt-vault/internal/repository"
	"prompt-vault/internal/upstream"
	vault_errors "prompt-vault/pkg/errors"
	"prompt-vault/pkg/logger"
)

// Completer is the outbound side of the chat proxy.
type Completer interface {
	Complete(ctx context.Context, prompt string) (upstream.Completion, error)
}

// ChatService forwards a prompt to the external completion API, logs the
// exchange into the caller's history and returns the generated text.
type ChatService struct {
	client     Completer
	files      *repository.FileStore
	configured bool
	log        *logger.Logger
}

// NewChatService wires the chat proxy. configured reports whether an API
// credential is present; without one every Send fails as misconfigured.
func NewChatService(client Completer, files *repository.FileStore, configured bool, log *logger.Logger) *ChatService {
	return &ChatService{client: client, files: files, configured: configured, log: log}
}

type ChatResult struct {
	Response string
	Raw      json.RawMessage
}

func (s *ChatService) Send(ctx context.Context, username, promptText string) (ChatResult, error) {
	if promptText == "" {
		return ChatResult{}, vault_errors.ErrInvalidInput
	}
	if !s.configured {
		return ChatResult{}, vault_errors.ErrMisconfigured
	}

	completion, err := s.client.Complete(ctx, promptText)
	if err != nil {
		var upstreamErr *vault_errors.UpstreamError
		if s.log != nil && errors.As(err, &upstreamErr) {
			s.log.ErrorfCtx(ctx, "upstream error: status %d: %s", upstreamErr.Status, upstreamErr.Body)
		}
		return ChatResult{}, err
	}

	if _, err := s.files.AppendHistory(username, promptText, completion.Text, completion.Raw); err != nil {
		return ChatResult{}, err
	}

	return ChatResult{Response: completion.Text, Raw: completion.Raw}, nil
}

// History returns the caller's chat exchanges in append order.
func (s *ChatService) History(ctx context.Context, username string) ([]prompt.HistoryEntry, error) {
	return s.files.History(username)
}
