package snapshots

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hobfurniture/orderdesk-backend/pkg/logger"
)

// Store adapts a raw repository into the load/save contract the engine
// relies on: loads never fail outward, saves write one full JSON document
// per key.
type Store struct {
	repo Repository
	logg *logger.Logger
}

// NewStore builds a snapshot store over the given repository.
func NewStore(repo Repository, logg *logger.Logger) (*Store, error) {
	if repo == nil {
		return nil, fmt.Errorf("snapshot repository required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &Store{repo: repo, logg: logg}, nil
}

// Backend names the repository behind this store, for logs and metrics.
func (s *Store) Backend() string {
	return s.repo.Name()
}

// Load unmarshals the document stored under key into dest. It returns false
// when the key is missing or the payload cannot be decoded; the caller keeps
// its built-in fallback in that case. Load never returns an error.
func (s *Store) Load(ctx context.Context, key string, dest any) bool {
	ctx = s.logg.WithSnapshotKey(ctx, key)

	payload, err := s.repo.Get(ctx, key)
	if err != nil {
		if err != ErrNotFound {
			s.logg.Warn(s.logg.WithField(ctx, "error", err.Error()), "failed to load snapshot, using defaults")
		}
		return false
	}

	if err := json.Unmarshal(payload, dest); err != nil {
		s.logg.Warn(s.logg.WithField(ctx, "error", err.Error()), "corrupt snapshot, using defaults")
		return false
	}
	return true
}

// Save serializes the full object graph for key and writes it through the
// repository.
func (s *Store) Save(ctx context.Context, key string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal snapshot %s: %w", key, err)
	}
	return s.repo.Put(ctx, key, payload)
}
