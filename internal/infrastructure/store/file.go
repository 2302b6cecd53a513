package store

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/pantryplan/backend/internal/domain"
)

// FileStore serves the recipe dataset from a JSON file, keeping the decoded
// snapshot in memory for a configurable TTL. It is safe for concurrent use;
// callers must treat returned snapshots as read-only.
type FileStore struct {
	path   string
	ttl    time.Duration
	logger *logrus.Logger
	now    func() time.Time

	mutex     sync.RWMutex
	data      *domain.RecipeData
	fetchedAt time.Time
}

// NewFileStore creates a file-backed store. The file is not read until the
// first Snapshot call.
func NewFileStore(path string, ttl time.Duration, logger *logrus.Logger) *FileStore {
	return &FileStore{
		path:   path,
		ttl:    ttl,
		logger: logger,
		now:    time.Now,
	}
}

// Snapshot returns the dataset, reloading it from disk once the cached copy
// is older than the TTL.
func (s *FileStore) Snapshot(ctx context.Context) (*domain.RecipeData, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mutex.RLock()
	if s.fresh() {
		data := s.data
		s.mutex.RUnlock()
		return data, nil
	}
	s.mutex.RUnlock()

	s.mutex.Lock()
	defer s.mutex.Unlock()

	// Another request may have refreshed while we waited for the lock.
	if s.fresh() {
		return s.data, nil
	}

	raw, err := os.ReadFile(s.path)
	if err != nil {
		s.logger.WithError(err).WithField("path", s.path).Error("failed to read recipe data")
		return nil, fmt.Errorf("%w: %v", domain.ErrDataUnavailable, err)
	}

	var data domain.RecipeData
	if err := json.Unmarshal(raw, &data); err != nil {
		s.logger.WithError(err).WithField("path", s.path).Error("failed to decode recipe data")
		return nil, fmt.Errorf("%w: %v", domain.ErrDataUnavailable, err)
	}

	s.data = &data
	s.fetchedAt = s.now()

	s.logger.WithFields(logrus.Fields{
		"recipes":     len(data.Recipes),
		"ingredients": len(data.Ingredients),
		"ttl":         s.ttl,
	}).Info("recipe data cache refreshed")

	return s.data, nil
}

// fresh reports whether the cached snapshot is still within its TTL.
// Callers must hold at least a read lock.
func (s *FileStore) fresh() bool {
	return s.data != nil && s.now().Sub(s.fetchedAt) < s.ttl
}

// Invalidate drops the cached snapshot; the next Snapshot call re-reads the
// file.
func (s *FileStore) Invalidate() {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.data = nil
	s.fetchedAt = time.Time{}
	s.logger.Info("recipe data cache cleared")
}

// Status reports cache freshness for the cache inspection endpoint.
func (s *FileStore) Status() domain.CacheStatus {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	status := domain.CacheStatus{
		Cached: s.data != nil,
		Valid:  s.fresh(),
	}
	if status.Valid {
		remaining := s.ttl - s.now().Sub(s.fetchedAt)
		status.TimeRemainingSeconds = int(math.Round(remaining.Seconds()))
	}
	if !s.fetchedAt.IsZero() {
		status.LastRefreshed = s.fetchedAt.UTC().Format(time.RFC3339)
	}
	return status
}
