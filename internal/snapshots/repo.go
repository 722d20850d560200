package snapshots

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/hobfurniture/orderdesk-backend/pkg/db/models"
	"github.com/hobfurniture/orderdesk-backend/pkg/redis"
)

// Storage keys, one per top-level record. A write always serializes the
// complete current snapshot of its record; there are no partial updates.
const (
	KeyCompanyInfo = "companyInfo"
	KeyCustomer    = "customer"
	KeyOrder       = "order"
	KeyGallery     = "gallery"
)

// Keys lists every snapshot key in write order.
var Keys = []string{KeyCompanyInfo, KeyCustomer, KeyOrder, KeyGallery}

// ErrNotFound is returned when no snapshot exists under a key.
var ErrNotFound = errors.New("snapshot not found")

// Repository is the raw durable key-value surface behind the store.
type Repository interface {
	Name() string
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, payload []byte) error
}

type gormRepository struct {
	db *gorm.DB
}

// NewGormRepository builds the sqlite-backed snapshot repository.
func NewGormRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Name() string {
	return "sqlite"
}

func (r *gormRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var snapshot models.Snapshot
	err := r.db.WithContext(ctx).First(&snapshot, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reading snapshot %s: %w", key, err)
	}
	return snapshot.Payload, nil
}

func (r *gormRepository) Put(ctx context.Context, key string, payload []byte) error {
	record := models.Snapshot{Key: key, Payload: payload}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
		}).
		Create(&record).Error
	if err != nil {
		return fmt.Errorf("writing snapshot %s: %w", key, err)
	}
	return nil
}

type redisRepository struct {
	client *redis.Client
}

// NewRedisRepository builds the redis-backed snapshot repository.
func NewRedisRepository(client *redis.Client) Repository {
	return &redisRepository{client: client}
}

func (r *redisRepository) Name() string {
	return "redis"
}

func (r *redisRepository) Get(ctx context.Context, key string) ([]byte, error) {
	payload, err := r.client.Get(ctx, r.client.Key("snapshot", key))
	if errors.Is(err, redis.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reading snapshot %s: %w", key, err)
	}
	return payload, nil
}

func (r *redisRepository) Put(ctx context.Context, key string, payload []byte) error {
	if err := r.client.Set(ctx, r.client.Key("snapshot", key), payload); err != nil {
		return fmt.Errorf("writing snapshot %s: %w", key, err)
	}
	return nil
}
