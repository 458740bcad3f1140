package diskv

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/kiroku/internal/ports"
	"github.com/peterbourgon/diskv/v3"
)

const (
	storeDirMode = 0o700
	storeFileMod = 0o600
	cacheSizeMax = 1024 * 1024 // 1MB
	tempDirName  = ".tmp"
)

// Store is a flat diskv key-value store: one file per key under root.
type Store struct {
	d *diskv.Diskv
}

var _ ports.KeyValueStore = (*Store)(nil)

func NewStore(root string) (*Store, error) {
	root = filepath.Clean(root)
	if err := os.MkdirAll(root, storeDirMode); err != nil {
		return nil, fmt.Errorf("create diskv directory: %w", err)
	}

	return &Store{d: diskv.New(diskv.Options{
		BasePath:     root,
		TempDir:      filepath.Join(root, tempDirName),
		Transform:    func(string) []string { return []string{} },
		CacheSizeMax: cacheSizeMax,
		PathPerm:     storeDirMode,
		FilePerm:     storeFileMod,
	})}, nil
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	if err := validateKey(key); err != nil {
		return nil, false, err
	}

	if !s.d.Has(key) {
		return nil, false, nil
	}

	data, err := s.d.Read(key)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read diskv key %q: %w", key, err)
	}

	return data, true, nil
}

func (s *Store) Put(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validateKey(key); err != nil {
		return err
	}

	if err := s.d.Write(key, value); err != nil {
		return fmt.Errorf("write diskv key %q: %w", key, err)
	}

	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validateKey(key); err != nil {
		return err
	}

	err := s.d.Erase(key)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete diskv key %q: %w", key, err)
	}

	return nil
}

func validateKey(key string) error {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return errors.New("store key is empty")
	}
	if trimmed == tempDirName || strings.ContainsAny(trimmed, `/\`) || strings.HasPrefix(trimmed, "..") {
		return fmt.Errorf("invalid store key %q", key)
	}

	return nil
}
