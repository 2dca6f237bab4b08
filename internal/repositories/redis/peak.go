package redis

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/gamepeaks/internal/models"
)

// raisePeak stores ARGV[1] under KEYS[1] unless the stored value is already
// at least as high. It returns the resulting value.
var raisePeak = redis.NewScript(`
local cur = tonumber(redis.call('GET', KEYS[1]) or '0')
local next = tonumber(ARGV[1])
if redis.call('EXISTS', KEYS[1]) == 0 or next > cur then
	redis.call('SET', KEYS[1], ARGV[1])
	return next
end
return cur
`)

// PeakWriteRepository provides write access to peaks kept in Redis.
type PeakWriteRepository struct {
	client *redis.Client
}

// NewPeakWriteRepository creates a new PeakWriteRepository.
func NewPeakWriteRepository(client *redis.Client) *PeakWriteRepository {
	return &PeakWriteRepository{client: client}
}

// Save raises the value stored under peak.Key. The compare and set runs as
// one script, so concurrent writers cannot lower a peak.
func (r *PeakWriteRepository) Save(ctx context.Context, peak *models.Peak) error {
	return raisePeak.Run(ctx, r.client, []string{peak.Key}, peak.Value).Err()
}

// PeakReadRepository provides read access to peaks kept in Redis.
type PeakReadRepository struct {
	client *redis.Client
}

// NewPeakReadRepository creates a new PeakReadRepository.
func NewPeakReadRepository(client *redis.Client) *PeakReadRepository {
	return &PeakReadRepository{client: client}
}

// Get returns the peak stored under key, or nil when there is none.
func (r *PeakReadRepository) Get(ctx context.Context, key string) (*models.Peak, error) {
	v, err := r.client.Get(ctx, key).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	return &models.Peak{Key: key, Value: v}, nil
}

// Ping checks that Redis is reachable.
func (r *PeakReadRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
