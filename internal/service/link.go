package service

import (
	"context"
	"fmt"

	"linkfeed_srv/internal/models"
	"linkfeed_srv/internal/storage"

	"github.com/sirupsen/logrus"
)

// LinkService is the read/append API over the link feed
type LinkService interface {
	Feed(ctx context.Context) ([]models.Link, error)
	Post(ctx context.Context, url, description string) (*models.Link, error)
	First(ctx context.Context) (*models.Link, error)
}

// LinkServiceImpl implements LinkService on top of a LinkStore
type LinkServiceImpl struct {
	store  storage.LinkStore
	logger *logrus.Logger
}

// NewLinkService creates a link service
func NewLinkService(store storage.LinkStore, logger *logrus.Logger) LinkService {
	return &LinkServiceImpl{
		store:  store,
		logger: logger,
	}
}

// Feed returns the whole feed in insertion order
func (s *LinkServiceImpl) Feed(ctx context.Context) ([]models.Link, error) {
	links, err := s.store.List(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Failed to load feed")
		return nil, fmt.Errorf("failed to load feed: %w", err)
	}
	return links, nil
}

// Post appends a new link to the feed
func (s *LinkServiceImpl) Post(ctx context.Context, url, description string) (*models.Link, error) {
	logger := s.logger.WithFields(logrus.Fields{
		"url":         url,
		"description": description,
	})

	link, err := s.store.Append(ctx, url, description)
	if err != nil {
		logger.WithError(err).Error("Failed to post link")
		return nil, fmt.Errorf("failed to post link: %w", err)
	}

	logger.WithField("link_id", link.ID).Info("Link posted")
	return link, nil
}

// First returns the oldest link of the feed
func (s *LinkServiceImpl) First(ctx context.Context) (*models.Link, error) {
	link, err := s.store.First(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get first link: %w", err)
	}
	return link, nil
}
