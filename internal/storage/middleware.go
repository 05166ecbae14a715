package storage

import (
	"context"
	"time"

	"linkfeed_srv/internal/models"

	"github.com/sirupsen/logrus"
)

// LoggingMiddleware добавляет логирование к операциям хранилища
type LoggingMiddleware struct {
	store  LinkStore
	logger *logrus.Logger
}

// NewLoggingMiddleware создает новый logging middleware
func NewLoggingMiddleware(store LinkStore, logger *logrus.Logger) LinkStore {
	return &LoggingMiddleware{
		store:  store,
		logger: logger,
	}
}

// List логирует получение ленты
func (m *LoggingMiddleware) List(ctx context.Context) ([]models.Link, error) {
	start := time.Now()
	logger := m.logger.WithField("operation", "list")

	links, err := m.store.List(ctx)

	duration := time.Since(start)
	if err != nil {
		logger.WithError(err).WithField("duration", duration).Error("Ошибка получения ссылок")
	} else {
		logger.WithFields(logrus.Fields{
			"duration": duration,
			"count":    len(links),
		}).Debug("Ссылки получены")
	}

	return links, err
}

// Append логирует добавление ссылки
func (m *LoggingMiddleware) Append(ctx context.Context, url, description string) (*models.Link, error) {
	start := time.Now()
	logger := m.logger.WithFields(logrus.Fields{
		"operation": "append",
		"url":       url,
	})

	logger.Debug("Начало добавления ссылки")

	link, err := m.store.Append(ctx, url, description)

	duration := time.Since(start)
	if err != nil {
		logger.WithError(err).WithField("duration", duration).Error("Ошибка добавления ссылки")
	} else {
		logger.WithFields(logrus.Fields{
			"duration": duration,
			"link_id":  link.ID,
		}).Info("Ссылка добавлена")
	}

	return link, err
}

// First логирует получение первой ссылки
func (m *LoggingMiddleware) First(ctx context.Context) (*models.Link, error) {
	link, err := m.store.First(ctx)
	if err != nil {
		m.logger.WithError(err).WithField("operation", "first").Error("Ошибка получения первой ссылки")
	}
	return link, err
}

// Close закрывает вложенное хранилище
func (m *LoggingMiddleware) Close() error {
	m.logger.Debug("Закрытие хранилища ссылок")
	return m.store.Close()
}
