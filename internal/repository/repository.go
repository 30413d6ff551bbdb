package repository

import (
	"context"

	"addressbook/internal/domain"
)

// Repository defines the contract for persisting a whole AddressBook.
// Saves replace the stored state entirely; the last save wins.
type Repository interface {
	// Load returns the stored AddressBook, or a new empty one when
	// nothing has been saved yet.
	Load(ctx context.Context) (*domain.AddressBook, error)

	// Save overwrites the stored state with the given AddressBook.
	Save(ctx context.Context, book *domain.AddressBook) error

	// Close releases resources held by the backend.
	Close() error
}
