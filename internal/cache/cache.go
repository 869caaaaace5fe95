// Package cache provides an optional score cache for single-record
// scoring. Scoring is deterministic for a fixed artifact, so a cached
// result is always identical to a fresh one.
package cache

import (
	"context"

	"github.com/fraudscope/fraudscope/internal/model"
)

// ScoreCache is the contract for a record-hash keyed result cache.
type ScoreCache interface {
	Get(ctx context.Context, key string) (model.ScoringResult, bool, error)
	Set(ctx context.Context, key string, res model.ScoringResult) error
}
