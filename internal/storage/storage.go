package storage

import (
	"context"
	"errors"

	"linkfeed_srv/internal/models"
)

// ErrEmpty is returned when a lookup needs at least one link and the store has none
var ErrEmpty = errors.New("link store is empty")

// LinkStore defines the operations on the ordered link sequence
type LinkStore interface {
	// List returns every link in insertion order
	List(ctx context.Context) ([]models.Link, error)

	// Append assigns the next id, stores the link and returns it
	Append(ctx context.Context, url, description string) (*models.Link, error)

	// First returns the oldest link
	First(ctx context.Context) (*models.Link, error)

	// Close releases resources held by the store
	Close() error
}
