package storage

import (
	"context"
	"sync"

	"github.com/Veraticus/ascend/internal/model"
)

// MemoryStorage keeps the encoded goal blob in memory. It is used by tests
// and by ephemeral sessions.
type MemoryStorage struct {
	data   []byte
	writes int
	mu     sync.Mutex
}

// NewMemoryStorage returns an empty in-memory store.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

// NewMemoryStorageWithBlob seeds the store with raw stored data.
func NewMemoryStorageWithBlob(data []byte) *MemoryStorage {
	return &MemoryStorage{data: append([]byte(nil), data...)}
}

// LoadGoals decodes the stored blob.
func (m *MemoryStorage) LoadGoals(ctx context.Context) ([]model.Goal, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return decodeOrReset(m.data), nil
}

// SaveGoals encodes and stores goals.
func (m *MemoryStorage) SaveGoals(ctx context.Context, goals []model.Goal) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	data, err := EncodeGoals(goals)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = data
	m.writes++
	return nil
}

// Writes returns how many successful saves happened.
func (m *MemoryStorage) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}

// Migrate is a no-op.
func (m *MemoryStorage) Migrate(_ context.Context) error { return nil }

// Close is a no-op.
func (m *MemoryStorage) Close() error { return nil }
