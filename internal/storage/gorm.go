package storage

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"linkfeed_srv/internal/database"
	"linkfeed_srv/internal/models"

	"gorm.io/gorm"
)

// GormStore keeps links in an in-memory SQLite database
type GormStore struct {
	db *gorm.DB

	// mu serializes appends so ids follow insertion order
	mu   sync.Mutex
	next int
}

// NewGormStore migrates the links table and seeds it when empty
func NewGormStore(db *gorm.DB, seed ...models.Link) (*GormStore, error) {
	if err := database.AutoMigrate(db); err != nil {
		return nil, err
	}

	var count int64
	if err := db.Model(&models.Link{}).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to count links: %w", err)
	}

	if count == 0 && len(seed) > 0 {
		links := make([]models.Link, len(seed))
		copy(links, seed)
		if err := db.Create(&links).Error; err != nil {
			return nil, fmt.Errorf("failed to seed links: %w", err)
		}
		count = int64(len(links))
	}

	return &GormStore{
		db:   db,
		next: int(count),
	}, nil
}

// List returns all links ordered by insertion
func (s *GormStore) List(ctx context.Context) ([]models.Link, error) {
	var links []models.Link
	if err := s.db.WithContext(ctx).Order("seq ASC").Find(&links).Error; err != nil {
		return nil, fmt.Errorf("failed to list links: %w", err)
	}
	return links, nil
}

// Append inserts a link with the next id
func (s *GormStore) Append(ctx context.Context, url, description string) (*models.Link, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	link := &models.Link{
		ID:          models.LinkID(s.next),
		URL:         url,
		Description: description,
	}
	if err := s.db.WithContext(ctx).Create(link).Error; err != nil {
		return nil, fmt.Errorf("failed to create link: %w", err)
	}
	s.next++

	return link, nil
}

// First returns the oldest link
func (s *GormStore) First(ctx context.Context) (*models.Link, error) {
	var link models.Link
	err := s.db.WithContext(ctx).Order("seq ASC").First(&link).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmpty
		}
		return nil, fmt.Errorf("failed to get first link: %w", err)
	}
	return &link, nil
}

// Close closes the database
func (s *GormStore) Close() error {
	return database.Close(s.db)
}
