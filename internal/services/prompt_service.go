package services

import (
	"context"
	"encoding/json"
	"strconv"

	"prompt-vault/internal/domain/prompt"
	"prompt-vault/internal/repository"
	vault_errors "prompt-vault/pkg/errors"

	"github.com/google/uuid"
)

const (
	defaultListLimit = 100
	maxListLimit     = 1000
)

// PromptService implements the prompt operations over an injected store, so
// the same logic serves the shared in-memory store and the per-user file
// stores.
type PromptService struct{}

func NewPromptService() *PromptService {
	return &PromptService{}
}

type CreateInput struct {
	Type     string
	Prompt   string
	Metadata json.RawMessage
}

type PatchInput struct {
	Type     *string
	Prompt   *string
	Metadata *json.RawMessage
}

type ListQuery struct {
	Type   string
	Limit  string
	Offset string
}

func (s *PromptService) Create(ctx context.Context, store repository.PromptStore, in CreateInput) (prompt.Record, error) {
	if in.Type == "" || in.Prompt == "" {
		return prompt.Record{}, vault_errors.ErrInvalidInput
	}

	ts := prompt.Now()
	rec := prompt.Record{
		ID:        uuid.NewString(),
		Type:      in.Type,
		Prompt:    in.Prompt,
		Metadata:  in.Metadata,
		CreatedAt: ts,
		UpdatedAt: ts,
	}
	if err := store.Insert(ctx, rec); err != nil {
		return prompt.Record{}, err
	}
	return rec, nil
}

func (s *PromptService) List(ctx context.Context, store repository.PromptStore, q ListQuery) ([]prompt.Record, error) {
	limit, offset := clampPagination(q.Limit, q.Offset)
	return store.List(ctx, q.Type, limit, offset)
}

func (s *PromptService) Get(ctx context.Context, store repository.PromptStore, id string) (prompt.Record, error) {
	return store.Get(ctx, id)
}

// Replace swaps every caller-settable field, preserving the original
// created_at and refreshing updated_at.
func (s *PromptService) Replace(ctx context.Context, store repository.PromptStore, id string, in CreateInput) (prompt.Record, error) {
	if in.Type == "" || in.Prompt == "" {
		return prompt.Record{}, vault_errors.ErrInvalidInput
	}

	return store.Update(ctx, id, func(rec *prompt.Record) {
		rec.Type = in.Type
		rec.Prompt = in.Prompt
		rec.Metadata = in.Metadata
		rec.UpdatedAt = prompt.Now()
	})
}

// Patch merges only the fields present in the request, leaving the rest
// untouched; updated_at is always refreshed.
func (s *PromptService) Patch(ctx context.Context, store repository.PromptStore, id string, in PatchInput) (prompt.Record, error) {
	return store.Update(ctx, id, func(rec *prompt.Record) {
		if in.Type != nil {
			rec.Type = *in.Type
		}
		if in.Prompt != nil {
			rec.Prompt = *in.Prompt
		}
		if in.Metadata != nil {
			rec.Metadata = *in.Metadata
		}
		rec.UpdatedAt = prompt.Now()
	})
}

func (s *PromptService) Delete(ctx context.Context, store repository.PromptStore, id string) error {
	return store.Delete(ctx, id)
}

// clampPagination parses limit and offset query values: non-numeric input
// falls back to the defaults, offset is clamped to >= 0 and limit to
// [1, maxListLimit].
func clampPagination(limitStr, offsetStr string) (limit, offset int) {
	limit = defaultListLimit
	if v, err := strconv.Atoi(limitStr); err == nil {
		limit = v
	}
	if limit < 1 {
		limit = 1
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	offset = 0
	if v, err := strconv.Atoi(offsetStr); err == nil {
		offset = v
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
