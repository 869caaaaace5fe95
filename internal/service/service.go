// Package service wires the scoring flow end to end: validation, then
// normalization, then model invocation, then result assembly. Every
// entry surface (CLI, HTTP) goes through this package so the fail-fast
// and ordering guarantees hold everywhere.
package service

import (
	"context"
	"log/slog"

	"github.com/fraudscope/fraudscope/internal/assemble"
	"github.com/fraudscope/fraudscope/internal/cache"
	"github.com/fraudscope/fraudscope/internal/model"
	"github.com/fraudscope/fraudscope/internal/normalize"
	"github.com/fraudscope/fraudscope/internal/schema"
	"github.com/fraudscope/fraudscope/internal/scoring"
	"github.com/fraudscope/fraudscope/internal/validate"
)

// Scorer orchestrates the scoring flow over an immutable schema and a
// read-only model handle. Safe for concurrent use.
type Scorer struct {
	schema *schema.Schema
	engine *scoring.Engine
	cache  cache.ScoreCache
}

// Option configures optional collaborators.
type Option func(*Scorer)

// WithCache attaches a single-record score cache.
func WithCache(c cache.ScoreCache) Option {
	return func(s *Scorer) {
		s.cache = c
	}
}

// NewScorer creates the scoring service. The model is injected so tests
// can substitute a double.
func NewScorer(s *schema.Schema, mdl scoring.Model, opts ...Option) *Scorer {
	sc := &Scorer{
		schema: s,
		engine: scoring.NewEngine(mdl),
	}
	for _, opt := range opts {
		opt(sc)
	}
	return sc
}

// Schema returns the feature contract this service scores against.
func (s *Scorer) Schema() *schema.Schema {
	return s.schema
}

// ScoreRecord validates, normalizes, and scores a single record.
// Validation errors are returned before any model call.
func (s *Scorer) ScoreRecord(ctx context.Context, rec model.Record) (model.ScoringResult, error) {
	if err := validate.Record(rec, s.schema); err != nil {
		return model.ScoringResult{}, err
	}
	normalized, err := normalize.Record(rec, s.schema)
	if err != nil {
		return model.ScoringResult{}, err
	}

	var key string
	if s.cache != nil {
		key = normalized.Hash()
		if cached, ok, cacheErr := s.cache.Get(ctx, key); cacheErr == nil && ok {
			slog.Debug("Score cache hit", "key", key)
			return cached, nil
		} else if cacheErr != nil {
			slog.Warn("Score cache read failed", "error", cacheErr)
		}
	}

	res, err := s.engine.ScoreOne(normalized)
	if err != nil {
		return model.ScoringResult{}, err
	}

	if s.cache != nil {
		if cacheErr := s.cache.Set(ctx, key, res); cacheErr != nil {
			slog.Warn("Score cache write failed", "error", cacheErr)
		}
	}
	return res, nil
}

// ScoreBatch validates, normalizes, and scores a whole batch, then
// returns an augmented copy with prediction and fraud_probability
// columns. The input batch is never mutated. A structurally incomplete
// batch fails before the model is invoked; a model failure fails the
// whole batch with no partial output.
func (s *Scorer) ScoreBatch(_ context.Context, b *model.Batch) (*model.Batch, error) {
	if err := validate.Batch(b, s.schema); err != nil {
		return nil, err
	}
	rows, err := normalize.Batch(b, s.schema)
	if err != nil {
		return nil, err
	}

	results, err := s.engine.ScoreBatch(rows)
	if err != nil {
		return nil, err
	}
	return assemble.AugmentBatch(b, results)
}
