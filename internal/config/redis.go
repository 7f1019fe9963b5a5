package config

import "github.com/redis/rueidis"

// NewRedisClient connects to REDIS_ADDR. The change feed is its only user,
// so client-side caching is disabled.
func NewRedisClient(addr string) (rueidis.Client, error) {
	return rueidis.NewClient(rueidis.ClientOption{
		InitAddress:  []string{addr},
		DisableCache: true,
	})
}
