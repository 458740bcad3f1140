package ports

import (
	"context"

	"github.com/bnema/kiroku/internal/domain"
)

// JournalRepository persists the whole journal sequence at once.
type JournalRepository interface {
	Load(ctx context.Context) ([]domain.JournalEntry, error)
	Save(ctx context.Context, entries []domain.JournalEntry) error
}
