// Package toml keeps the journal in a human-editable TOML file.
package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bnema/kiroku/internal/domain"
	"github.com/bnema/kiroku/internal/ports"
	"github.com/google/uuid"
	toml "github.com/pelletier/go-toml/v2"
)

const (
	journalFileName = "journal.toml"
	journalFileMode = 0o600
	journalDirMode  = 0o700
	tempFilePattern = ".journal-*.toml.tmp"
)

type Repository struct {
	journalPath string
	mu          *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.JournalRepository = (*Repository)(nil)

// NewRepository stores the journal as journal.toml inside dataDir.
func NewRepository(dataDir string) (*Repository, error) {
	if dataDir == "" {
		return nil, errors.New("journal directory is empty")
	}

	journalPath, err := normalizeJournalPath(filepath.Join(dataDir, journalFileName))
	if err != nil {
		return nil, err
	}

	return &Repository{journalPath: journalPath, mu: lockForPath(journalPath)}, nil
}

func (r *Repository) Path() string {
	return r.journalPath
}

func (r *Repository) Load(ctx context.Context) ([]domain.JournalEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return nil, err
	}

	entries := make([]domain.JournalEntry, 0, len(file.Entries))
	for i, entry := range file.Entries {
		decoded, err := fromSchema(i, entry)
		if err != nil {
			return nil, err
		}
		entries = append(entries, decoded)
	}

	return entries, nil
}

func (r *Repository) Save(ctx context.Context, entries []domain.JournalEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file := fileSchema{Entries: make([]entrySchema, 0, len(entries))}
	for _, entry := range entries {
		file.Entries = append(file.Entries, toSchema(entry))
	}

	return r.writeSchema(file)
}

func (r *Repository) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(r.journalPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fileSchema{}, nil
		}
		return fileSchema{}, fmt.Errorf("read journal file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("%w: decode journal file: %v", domain.ErrCorruptJournal, err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func normalizeJournalPath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve journal path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func (r *Repository) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(r.journalPath), journalDirMode); err != nil {
		return fmt.Errorf("create journal directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode journal file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.journalPath), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp journal file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp journal file: %w", err)
	}

	if err := tempFile.Chmod(journalFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp journal file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp journal file: %w", err)
	}

	if err := os.Rename(tempName, r.journalPath); err != nil {
		return fmt.Errorf("replace journal file: %w", err)
	}

	cleanup = false

	return nil
}

func toSchema(entry domain.JournalEntry) entrySchema {
	return entrySchema{
		ID:        string(entry.ID),
		Text:      entry.Text,
		CreatedAt: entry.CreatedAt.Format(time.RFC3339Nano),
	}
}

func fromSchema(index int, entry entrySchema) (domain.JournalEntry, error) {
	createdAt, err := time.Parse(time.RFC3339Nano, entry.CreatedAt)
	if err != nil {
		return domain.JournalEntry{}, fmt.Errorf("%w: entry %d created_at %q", domain.ErrCorruptJournal, index, entry.CreatedAt)
	}

	id := entry.ID
	if id == "" {
		name := fmt.Sprintf("%d:%s", index, createdAt.Format(time.RFC3339Nano))
		id = uuid.NewSHA1(uuid.NameSpaceOID, []byte(name)).String()
	}

	return domain.JournalEntry{
		ID:        domain.EntryID(id),
		Text:      entry.Text,
		CreatedAt: createdAt,
	}, nil
}
