package domain

import "context"

// CacheStatus describes the freshness of the store's dataset snapshot.
type CacheStatus struct {
	Cached               bool   `json:"cached"`
	Valid                bool   `json:"valid"`
	TimeRemainingSeconds int    `json:"timeRemainingSeconds"`
	LastRefreshed        string `json:"lastRefreshed,omitempty"`
}

// RecipeStore serves read-only dataset snapshots. Implementations may cache;
// a returned snapshot must be treated as immutable by callers.
type RecipeStore interface {
	Snapshot(ctx context.Context) (*RecipeData, error)
	Invalidate()
	Status() CacheStatus
}
