package storage

import (
	"fmt"

	"linkfeed_srv/internal/config"
	"linkfeed_srv/internal/database"
	"linkfeed_srv/internal/models"

	"github.com/sirupsen/logrus"
)

// StoreBuilder builds the configured link store
type StoreBuilder struct {
	config config.Config
	logger *logrus.Logger
	seed   []models.Link
}

// NewStoreBuilder creates a builder that seeds the store with the default link
func NewStoreBuilder(cfg config.Config, logger *logrus.Logger) *StoreBuilder {
	return &StoreBuilder{
		config: cfg,
		logger: logger,
		seed:   []models.Link{models.SeedLink()},
	}
}

// Build creates the store selected by store.type
func (b *StoreBuilder) Build() (LinkStore, error) {
	switch b.config.Store.Type {
	case config.StoreTypeMemory:
		return b.wrapWithMiddleware(NewMemoryStore(b.seed...)), nil

	case config.StoreTypeSQLite:
		db, err := database.NewDatabase(database.Config{
			DSN:   b.config.Store.DSN,
			Debug: b.config.Store.Debug,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite store: %w", err)
		}
		store, err := NewGormStore(db, b.seed...)
		if err != nil {
			_ = database.Close(db)
			return nil, fmt.Errorf("failed to create sqlite store: %w", err)
		}
		return b.wrapWithMiddleware(store), nil

	default:
		return nil, fmt.Errorf("unsupported store type: %s", b.config.Store.Type)
	}
}

func (b *StoreBuilder) wrapWithMiddleware(store LinkStore) LinkStore {
	if b.logger != nil {
		store = NewLoggingMiddleware(store, b.logger)
	}
	return store
}

// NewStoreFromConfig creates the seeded store described by cfg
func NewStoreFromConfig(cfg config.Config, logger *logrus.Logger) (LinkStore, error) {
	return NewStoreBuilder(cfg, logger).Build()
}
