package database

import (
	"testing"

	"linkfeed_srv/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDatabaseInMemory(t *testing.T) {
	db, err := NewDatabase(Config{DSN: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	require.NoError(t, AutoMigrate(db))
	assert.True(t, db.Migrator().HasTable(&models.Link{}))

	link := models.SeedLink()
	require.NoError(t, db.Create(&link).Error)
	assert.NotZero(t, link.Seq)

	// Pool is pinned to one connection, so the row is visible on the next query.
	var count int64
	require.NoError(t, db.Model(&models.Link{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
