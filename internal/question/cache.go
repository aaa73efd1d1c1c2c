package question

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/nafes-platform/question-service/internal/question/parser"
)

const (
	defaultCacheTTL = 5 * time.Minute
	defaultJobTTL   = 24 * time.Hour
)

// ErrJobNotFound is returned for unknown or expired import jobs.
var ErrJobNotFound = errors.New("import job not found")

// ResultCache stores parse results by input text.
type ResultCache interface {
	Get(ctx context.Context, input string) (*parser.Result, error)
	Set(ctx context.Context, input string, result parser.Result) error
}

// JobStore persists async import job state.
type JobStore interface {
	SaveJob(ctx context.Context, job Job) error
	GetJob(ctx context.Context, id string) (*Job, error)
}

// Cache is the Redis-backed ResultCache and JobStore.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
	jobTTL time.Duration
}

var (
	_ ResultCache = (*Cache)(nil)
	_ JobStore    = (*Cache)(nil)
)

func NewCache(client *redis.Client, ttl, jobTTL time.Duration) *Cache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	if jobTTL <= 0 {
		jobTTL = defaultJobTTL
	}
	return &Cache{client: client, ttl: ttl, jobTTL: jobTTL}
}

func resultKey(input string) string {
	sum := sha256.Sum256([]byte(input))
	return "questionparse:" + hex.EncodeToString(sum[:])
}

func jobKey(id string) string {
	return "questionimport:" + id
}

func (c *Cache) Get(ctx context.Context, input string) (*parser.Result, error) {
	data, err := c.client.Get(ctx, resultKey(input)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}
	var res parser.Result
	if err := json.Unmarshal(data, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Cache) Set(ctx context.Context, input string, result parser.Result) error {
	data, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, resultKey(input), data, c.ttl).Err()
}

func (c *Cache) SaveJob(ctx context.Context, job Job) error {
	data, err := json.Marshal(job)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, jobKey(job.ID), data, c.jobTTL).Err()
}

func (c *Cache) GetJob(ctx context.Context, id string) (*Job, error) {
	data, err := c.client.Get(ctx, jobKey(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	var job Job
	if err := json.Unmarshal(data, &job); err != nil {
		return nil, err
	}
	return &job, nil
}
