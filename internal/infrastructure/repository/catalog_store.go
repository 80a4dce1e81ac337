package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/washlane/laundry-api/internal/domain/entity"
	domainRepo "github.com/washlane/laundry-api/internal/domain/repository"
)

// fileCatalogStore keeps the registered price-card items in a single JSON
// document, rewritten in full on every mutation.
type fileCatalogStore struct {
	mu    sync.Mutex
	path  string
	items []entity.CatalogItem
}

// NewCatalogStore opens the catalog document at path, creating an empty
// one when it does not exist.
func NewCatalogStore(path string) (domainRepo.CatalogRepository, error) {
	store := &fileCatalogStore{path: path}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := json.Unmarshal(data, &store.items); err != nil {
			return nil, fmt.Errorf("failed to parse catalog file %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
		store.items = []entity.CatalogItem{}
		if err := store.persist(); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}

	return store, nil
}

func (s *fileCatalogStore) Insert(ctx context.Context, item *entity.CatalogItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	maxID := 0
	for i := range s.items {
		if s.items[i].ID > maxID {
			maxID = s.items[i].ID
		}
	}
	item.ID = maxID + 1
	s.items = append(s.items, *item)
	return s.persist()
}

func (s *fileCatalogStore) GetByID(ctx context.Context, id int) (*entity.CatalogItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			item := s.items[i]
			return &item, nil
		}
	}
	return nil, nil
}

func (s *fileCatalogStore) Update(ctx context.Context, item *entity.CatalogItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == item.ID {
			s.items[i] = *item
			return s.persist()
		}
	}
	return fmt.Errorf("catalog item %d not found", item.ID)
}

func (s *fileCatalogStore) Delete(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return s.persist()
		}
	}
	return fmt.Errorf("catalog item %d not found", id)
}

func (s *fileCatalogStore) List(ctx context.Context) ([]entity.CatalogItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]entity.CatalogItem, len(s.items))
	copy(out, s.items)
	return out, nil
}

func (s *fileCatalogStore) persist() error {
	data, err := json.MarshalIndent(s.items, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create catalog directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "catalog-*.json")
	if err != nil {
		return fmt.Errorf("failed to create catalog temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write catalog: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close catalog temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace catalog file: %w", err)
	}
	return nil
}
