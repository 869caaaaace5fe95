// Package scoring wraps the opaque model behind single-record and
// batch scoring operations with atomic failure semantics.
package scoring

import (
	"fmt"
	"log/slog"

	"github.com/fraudscope/fraudscope/internal/model"
)

// ScoringFailure wraps an error raised by the model during inference.
// The whole request fails: no partial results, no retry (the model is
// deterministic, so a failure is never transient).
type ScoringFailure struct {
	Cause error
}

func (e *ScoringFailure) Error() string {
	return fmt.Sprintf("model inference failed: %v", e.Cause)
}

func (e *ScoringFailure) Unwrap() error {
	return e.Cause
}

// Engine exposes scoring over an injected model. It is stateless apart
// from the read-only model handle and safe for concurrent use when the
// model is.
type Engine struct {
	mdl Model
}

// NewEngine creates a scoring engine around a loaded model.
func NewEngine(mdl Model) *Engine {
	return &Engine{mdl: mdl}
}

// ScoreOne scores a single normalized record.
func (e *Engine) ScoreOne(rec model.Record) (model.ScoringResult, error) {
	results, err := e.ScoreBatch([]model.Record{rec})
	if err != nil {
		return model.ScoringResult{}, err
	}
	return results[0], nil
}

// ScoreBatch scores all rows in one pass. The result slice is aligned
// 1:1 by index with the input. Each model capability is invoked exactly
// once over the full batch.
func (e *Engine) ScoreBatch(rows []model.Record) ([]model.ScoringResult, error) {
	classes, err := e.mdl.Predict(rows)
	if err != nil {
		return nil, &ScoringFailure{Cause: err}
	}
	probas, err := e.mdl.PredictProba(rows)
	if err != nil {
		return nil, &ScoringFailure{Cause: err}
	}
	if len(classes) != len(rows) || len(probas) != len(rows) {
		return nil, &ScoringFailure{Cause: fmt.Errorf("model returned %d classes and %d probabilities for %d rows", len(classes), len(probas), len(rows))}
	}

	results := make([]model.ScoringResult, len(rows))
	for i := range rows {
		label := model.LabelLegitimate
		if classes[i] == 1 {
			label = model.LabelFraudulent
		}
		results[i] = model.ScoringResult{
			Label:       label,
			Probability: probas[i][1],
		}
	}

	slog.Debug("Scored batch", "rows", len(rows))
	return results, nil
}
