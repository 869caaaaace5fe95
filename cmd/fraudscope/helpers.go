package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/viper"

	"github.com/fraudscope/fraudscope/internal/cache"
	"github.com/fraudscope/fraudscope/internal/common"
	"github.com/fraudscope/fraudscope/internal/config"
	"github.com/fraudscope/fraudscope/internal/pipeline"
	"github.com/fraudscope/fraudscope/internal/schema"
	"github.com/fraudscope/fraudscope/internal/service"
)

// createScorer loads the model artifact and builds the scoring service
// shared by every command. The artifact is loaded exactly once; a load
// failure aborts the command.
func createScorer(ctx context.Context) (*service.Scorer, error) {
	modelPath := config.ModelPath(viper.GetString("model.path"))

	mdl, err := pipeline.Load(modelPath)
	if err != nil {
		return nil, common.NewUserError(
			fmt.Sprintf("could not load the fraud model from %s; point --model at a model artifact", modelPath), err)
	}

	var opts []service.Option
	if viper.GetBool("cache.enabled") {
		redisCache, cacheErr := cache.NewRedisCache(ctx, cache.RedisConfig{
			Addr:     viper.GetString("cache.redis.addr"),
			Password: viper.GetString("cache.redis.password"),
			DB:       viper.GetInt("cache.redis.db"),
			TTL:      viper.GetDuration("cache.redis.ttl"),
		})
		if cacheErr != nil {
			// The cache is an optimization; score without it.
			slog.Warn("Score cache unavailable", "error", cacheErr)
		} else {
			opts = append(opts, service.WithCache(redisCache))
		}
	}

	return service.NewScorer(schema.Default(), mdl, opts...), nil
}

func init() {
	viper.SetDefault("cache.redis.addr", "localhost:6379")
	viper.SetDefault("cache.redis.ttl", time.Hour)
}
