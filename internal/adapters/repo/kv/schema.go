package kv

import (
	"fmt"
	"time"

	"github.com/bnema/kiroku/internal/domain"
	"github.com/google/uuid"
)

type entrySchema struct {
	ID        string    `json:"id,omitempty"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

func toSchema(entries []domain.JournalEntry) []entrySchema {
	encoded := make([]entrySchema, 0, len(entries))
	for _, entry := range entries {
		encoded = append(encoded, entrySchema{
			ID:        string(entry.ID),
			Text:      entry.Text,
			CreatedAt: entry.CreatedAt,
		})
	}
	return encoded
}

func fromSchema(encoded []entrySchema) []domain.JournalEntry {
	entries := make([]domain.JournalEntry, 0, len(encoded))
	for i, entry := range encoded {
		id := entry.ID
		if id == "" {
			id = legacyID(i, entry.CreatedAt)
		}
		entries = append(entries, domain.JournalEntry{
			ID:        domain.EntryID(id),
			Text:      entry.Text,
			CreatedAt: entry.CreatedAt,
		})
	}
	return entries
}

// legacyID gives entries written before IDs existed a stable identifier.
func legacyID(index int, createdAt time.Time) string {
	name := fmt.Sprintf("%d:%s", index, createdAt.Format(time.RFC3339Nano))
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(name)).String()
}
