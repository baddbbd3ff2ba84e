package repository

import (
	"context"

	"prompt-vault/internal/domain/prompt"
	"prompt-vault/internal/domain/user"
)

// PromptStore is keyed storage of prompt records. The basic service owns a
// single process-lifetime store; the extended service resolves one per
// authenticated user, persisted by rewriting that user's file around each
// mutation.
type PromptStore interface {
	Insert(ctx context.Context, rec prompt.Record) error
	// List returns records in the store's iteration order, optionally
	// filtered by exact type match, sliced to [offset : offset+limit].
	// Callers pass already-clamped limit and offset.
	List(ctx context.Context, typeFilter string, limit, offset int) ([]prompt.Record, error)
	Get(ctx context.Context, id string) (prompt.Record, error)
	// Update applies mutate to the record with the given id inside the
	// store's read-modify-write cycle and returns the mutated record.
	Update(ctx context.Context, id string, mutate func(*prompt.Record)) (prompt.Record, error)
	Delete(ctx context.Context, id string) error
}

// UserRepository is the durable account directory.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (user.User, error)
	// Create assigns the next integer id, appends the account and persists
	// the whole directory. Fails with ErrAlreadyExists on a taken username.
	Create(ctx context.Context, username, passwordHash string) (user.User, error)
}
