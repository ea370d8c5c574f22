package router

import (
	"net"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/storage/redis"

	"github.com/wartapedia/portal-berita/internal/pkg/cache"
	"github.com/wartapedia/portal-berita/internal/pkg/env"
)

// newRateLimiter builds the API rate limiter backed by Redis so limits
// hold across instances. Counters live in database 1, the cache uses 0.
func newRateLimiter() fiber.Handler {
	host := "localhost"
	port := 6379
	password := env.GetEnv("CACHE_PASSWORD", "")
	if cacheClient := cache.GetClient(); cacheClient != nil {
		addr := cacheClient.Options().Addr
		if h, p, err := net.SplitHostPort(addr); err == nil {
			host = h
			if v, err := strconv.Atoi(p); err == nil {
				port = v
			}
		}
		if p := cacheClient.Options().Password; p != "" {
			password = p
		}
	}

	storage := redis.New(redis.Config{
		Host:     host,
		Port:     port,
		Password: password,
		Database: 1,
		Reset:    false,
	})

	max := 120
	if v, err := strconv.Atoi(env.GetEnv("RATE_LIMIT_MAX", "")); err == nil && v > 0 {
		max = v
	}

	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: time.Minute,
		Storage:    storage,
	})
}
