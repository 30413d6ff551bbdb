package repository

import (
	"context"
	"sync"

	"addressbook/internal/domain"
)

// MemoryRepository keeps the last saved snapshot in process memory.
type MemoryRepository struct {
	mu    sync.RWMutex
	saved *snapshot
}

// NewMemoryRepository creates a new in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

// Load rebuilds the last saved AddressBook. Records are fresh copies.
func (r *MemoryRepository) Load(ctx context.Context) (*domain.AddressBook, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.saved == nil {
		return domain.NewAddressBook(), nil
	}
	return r.saved.toBook()
}

// Save stores a snapshot of the book; later mutations of book are not visible.
func (r *MemoryRepository) Save(ctx context.Context, book *domain.AddressBook) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	s := toSnapshot(book)

	r.mu.Lock()
	defer r.mu.Unlock()

	r.saved = &s
	return nil
}

// Close is a no-op.
func (r *MemoryRepository) Close() error {
	return nil
}
