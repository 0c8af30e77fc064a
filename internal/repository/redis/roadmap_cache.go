package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"careerPlatform/domain"

	"github.com/redis/go-redis/v9"
)

const defaultRoadmapTTL = 6 * time.Hour

// RoadmapCache stores generated roadmaps in Redis. A cache miss is
// (nil, nil); only transport failures surface as errors.
type RoadmapCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRoadmapCache(client *redis.Client, ttl time.Duration) *RoadmapCache {
	if ttl <= 0 {
		ttl = defaultRoadmapTTL
	}
	return &RoadmapCache{
		client: client,
		ttl:    ttl,
	}
}

func (r *RoadmapCache) GetRoadmap(ctx context.Context, careerID string) (*domain.Roadmap, error) {
	key := fmt.Sprintf("roadmap:%s", careerID)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get roadmap from Redis: %w", err)
	}

	var roadmap domain.Roadmap
	if err := json.Unmarshal([]byte(val), &roadmap); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached roadmap: %w", err)
	}

	return &roadmap, nil
}

func (r *RoadmapCache) SetRoadmap(ctx context.Context, roadmap domain.Roadmap) error {
	key := fmt.Sprintf("roadmap:%s", roadmap.CareerID)

	jsonData, err := json.Marshal(roadmap)
	if err != nil {
		return fmt.Errorf("failed to marshal roadmap: %w", err)
	}

	if err := r.client.Set(ctx, key, jsonData, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store roadmap in Redis: %w", err)
	}

	return nil
}
