package storage

import (
	"context"
	"sync"
	"time"

	"linkfeed_srv/internal/models"
)

// MemoryStore keeps links in a slice for the lifetime of the process
type MemoryStore struct {
	mu    sync.RWMutex
	links []models.Link
	next  int
	now   func() time.Time
}

// NewMemoryStore creates a store holding the given seed links.
// The id counter starts at the number of seed links.
func NewMemoryStore(seed ...models.Link) *MemoryStore {
	s := &MemoryStore{now: time.Now}
	for _, link := range seed {
		if link.CreatedAt.IsZero() {
			link.CreatedAt = s.now()
		}
		link.Seq = uint(len(s.links) + 1)
		s.links = append(s.links, link)
	}
	s.next = len(s.links)
	return s
}

// List returns a copy of all links in insertion order
func (s *MemoryStore) List(ctx context.Context) ([]models.Link, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	links := make([]models.Link, len(s.links))
	copy(links, s.links)
	return links, nil
}

// Append adds a link with the next id
func (s *MemoryStore) Append(ctx context.Context, url, description string) (*models.Link, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	link := models.Link{
		Seq:         uint(len(s.links) + 1),
		ID:          models.LinkID(s.next),
		URL:         url,
		Description: description,
		CreatedAt:   s.now(),
	}
	s.next++
	s.links = append(s.links, link)

	return &link, nil
}

// First returns the oldest link
func (s *MemoryStore) First(ctx context.Context) (*models.Link, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.links) == 0 {
		return nil, ErrEmpty
	}
	link := s.links[0]
	return &link, nil
}

// Close is a no-op; the links vanish with the process
func (s *MemoryStore) Close() error {
	return nil
}
