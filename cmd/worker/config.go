package main

import (
	"github.com/rs/zerolog/log"

	"microblog-backend/internal/shared/utils"
)

// Config holds the worker-specific settings.
type Config struct {
	RedisAddr   string
	Concurrency int
}

func loadConfig() *Config {
	cfg := &Config{
		RedisAddr:   utils.GetEnvVariable("REDIS_HOST", "localhost:6379"),
		Concurrency: 10,
	}

	log.Info().Str("redis", cfg.RedisAddr).Msg("worker config loaded")
	return cfg
}
