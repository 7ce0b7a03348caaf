package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client wraps redis.UniversalClient so the store can run against a real
// server, miniredis, or redismock
type Client interface {
	redis.UniversalClient
}
