// README: Redis client initialization for the share store backend.
package infra

import "github.com/redis/go-redis/v9"

// NewRedis builds a client from a redis:// or rediss:// URL.
func NewRedis(url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return redis.NewClient(opts), nil
}
