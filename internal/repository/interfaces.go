package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/pulse/internal/domain"
)

// TaskRepo is the task store collaborator. The insight engine only reads
// through ListInRange; creation happens when the caller accepts an
// interpreted draft.
type TaskRepo interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	// ListInRange returns tasks whose calendar date falls in [from, to],
	// both interpreted as whole days.
	ListInRange(ctx context.Context, from, to time.Time) ([]domain.Task, error)
	List(ctx context.Context) ([]domain.Task, error)
	SetCompleted(ctx context.Context, id string, completed bool) error
	Delete(ctx context.Context, id string) error
}

// KVStore is the local persistent key-value collaborator backing the context
// cache and the user-adjustable settings.
type KVStore interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Put(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
