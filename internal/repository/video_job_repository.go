package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"culturebridge/pkg/media"

	"github.com/go-redis/redis/v8"
)

// videoJobTTL keeps finished jobs queryable for a day; generation itself
// completes within minutes.
const videoJobTTL = 24 * time.Hour

// VideoJobRepository mirrors remote video generation state so that status
// polling does not have to hit the provider again.
type VideoJobRepository interface {
	SaveJob(ctx context.Context, job media.VideoJob) error
	GetJob(ctx context.Context, jobID string) (*media.VideoJob, error)
}

type redisVideoJobRepository struct {
	redisClient *redis.Client
}

// NewVideoJobRepository creates a VideoJobRepository backed by Redis.
func NewVideoJobRepository(redisClient *redis.Client) VideoJobRepository {
	return &redisVideoJobRepository{redisClient: redisClient}
}

func videoJobKey(jobID string) string {
	return fmt.Sprintf("video:job:%s", jobID)
}

// SaveJob stores the latest snapshot of a job.
func (r *redisVideoJobRepository) SaveJob(ctx context.Context, job media.VideoJob) error {
	jsonData, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to marshal video job: %w", err)
	}
	if err := r.redisClient.Set(ctx, videoJobKey(job.ID), jsonData, videoJobTTL).Err(); err != nil {
		return fmt.Errorf("failed to save video job: %w", err)
	}
	return nil
}

// GetJob loads a job snapshot. An unknown job returns (nil, nil).
func (r *redisVideoJobRepository) GetJob(ctx context.Context, jobID string) (*media.VideoJob, error) {
	jsonData, err := r.redisClient.Get(ctx, videoJobKey(jobID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get video job: %w", err)
	}
	var job media.VideoJob
	if err := json.Unmarshal([]byte(jsonData), &job); err != nil {
		return nil, fmt.Errorf("failed to unmarshal video job: %w", err)
	}
	return &job, nil
}
