package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"doctor-profile-service/internal/domain/entity"

	"github.com/redis/go-redis/v9"
)

// DoctorSnapshotKey holds the JSON encoded doctor collection.
const DoctorSnapshotKey = "doctors:snapshot"

// ErrCacheMiss is returned by Load when no snapshot is stored.
var ErrCacheMiss = errors.New("doctor snapshot not cached")

// DoctorCache stores a point-in-time snapshot of the whole doctor
// collection in Redis.
type DoctorCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewDoctorCache(client *redis.Client, ttl time.Duration) *DoctorCache {
	return &DoctorCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *DoctorCache) Load(ctx context.Context) ([]entity.Doctor, error) {
	data, err := c.client.Get(ctx, DoctorSnapshotKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("get doctor snapshot: %w", err)
	}

	var doctors []entity.Doctor
	if err := json.Unmarshal(data, &doctors); err != nil {
		return nil, fmt.Errorf("decode doctor snapshot: %w", err)
	}
	return doctors, nil
}

func (c *DoctorCache) Store(ctx context.Context, doctors []entity.Doctor) error {
	data, err := json.Marshal(doctors)
	if err != nil {
		return fmt.Errorf("encode doctor snapshot: %w", err)
	}
	if err := c.client.Set(ctx, DoctorSnapshotKey, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("set doctor snapshot: %w", err)
	}
	return nil
}

func (c *DoctorCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, DoctorSnapshotKey).Err(); err != nil {
		return fmt.Errorf("delete doctor snapshot: %w", err)
	}
	return nil
}
