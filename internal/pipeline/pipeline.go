package pipeline

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/fraudscope/fraudscope/internal/model"
)

// Pipeline is a loaded artifact ready for inference. It is read-only
// after construction and safe for concurrent use.
type Pipeline struct {
	artifact *Artifact
}

// New wraps a validated artifact.
func New(a *Artifact) (*Pipeline, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return &Pipeline{artifact: a}, nil
}

// Load reads the artifact at path and returns a ready pipeline. A load
// failure is fatal to process startup; callers do not retry.
func Load(path string) (*Pipeline, error) {
	a, err := ReadArtifact(path)
	if err != nil {
		return nil, err
	}

	slog.Info("Loaded model artifact",
		"path", path,
		"numeric_features", len(a.Numeric),
		"categorical_features", len(a.Categorical),
		"threshold", a.Threshold)
	return &Pipeline{artifact: a}, nil
}

// Threshold returns the artifact's decision threshold.
func (p *Pipeline) Threshold() float64 {
	return p.artifact.Threshold
}

// Predict returns the 0/1 class per row.
func (p *Pipeline) Predict(rows []model.Record) ([]int, error) {
	out := make([]int, len(rows))
	for i, rec := range rows {
		proba, err := p.score(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		if proba >= p.artifact.Threshold {
			out[i] = 1
		}
	}
	return out, nil
}

// PredictProba returns [p_legitimate, p_fraud] per row.
func (p *Pipeline) PredictProba(rows []model.Record) ([][2]float64, error) {
	out := make([][2]float64, len(rows))
	for i, rec := range rows {
		proba, err := p.score(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		out[i] = [2]float64{1 - proba, proba}
	}
	return out, nil
}

// score computes the logistic regression probability for one record.
func (p *Pipeline) score(rec model.Record) (float64, error) {
	z := p.artifact.Intercept

	for _, f := range p.artifact.Numeric {
		v, err := numericValue(rec, f.Name)
		if err != nil {
			return 0, err
		}
		z += f.Weight * (v - f.Mean) / f.Std
	}

	for _, f := range p.artifact.Categorical {
		raw, ok := rec[f.Name]
		if !ok {
			return 0, fmt.Errorf("feature %s is missing", f.Name)
		}
		level, ok := raw.(string)
		if !ok {
			return 0, fmt.Errorf("feature %s: expected string, got %T", f.Name, raw)
		}
		w, ok := f.Levels[level]
		if !ok {
			if p.artifact.StrictCategories {
				return 0, fmt.Errorf("feature %s: unseen category %q", f.Name, level)
			}
			w = f.Default
		}
		z += w
	}

	return sigmoid(z), nil
}

func numericValue(rec model.Record, name string) (float64, error) {
	raw, ok := rec[name]
	if !ok {
		return 0, fmt.Errorf("feature %s is missing", name)
	}
	switch v := raw.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	default:
		return 0, fmt.Errorf("feature %s: expected number, got %T", name, raw)
	}
}

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}
