// Package pipeline loads the trained classification artifact and
// exposes it through the scoring engine's Model interface. The
// artifact is a JSON-serialized linear pipeline: standardized numeric
// features, per-level categorical weights, and a logistic regression
// head with a fixed decision threshold.
package pipeline

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/fraudscope/fraudscope/internal/common"
)

// NumericFeature standardizes one numeric input and applies its
// regression weight.
type NumericFeature struct {
	Name   string  `json:"name"`
	Mean   float64 `json:"mean"`
	Std    float64 `json:"std"`
	Weight float64 `json:"weight"`
}

// CategoricalFeature maps category levels to regression weights.
// Default is applied to levels unseen at training time when the
// encoder is not strict.
type CategoricalFeature struct {
	Name    string             `json:"name"`
	Levels  map[string]float64 `json:"levels"`
	Default float64            `json:"default"`
}

// Artifact is the on-disk model description.
type Artifact struct {
	Version          int                  `json:"version"`
	Intercept        float64              `json:"intercept"`
	Threshold        float64              `json:"threshold"`
	StrictCategories bool                 `json:"strict_categories"`
	Numeric          []NumericFeature     `json:"numeric"`
	Categorical      []CategoricalFeature `json:"categorical"`
}

// Validate checks the artifact for structural problems that would make
// inference meaningless.
func (a *Artifact) Validate() error {
	if a.Version != 1 {
		return fmt.Errorf("unsupported artifact version %d", a.Version)
	}
	if a.Threshold <= 0 || a.Threshold >= 1 {
		return fmt.Errorf("threshold %v is outside (0, 1)", a.Threshold)
	}
	if len(a.Numeric) == 0 && len(a.Categorical) == 0 {
		return fmt.Errorf("artifact defines no features")
	}
	for _, f := range a.Numeric {
		if f.Name == "" {
			return fmt.Errorf("numeric feature with empty name")
		}
		if f.Std <= 0 {
			return fmt.Errorf("numeric feature %s: std must be positive, got %v", f.Name, f.Std)
		}
	}
	for _, f := range a.Categorical {
		if f.Name == "" {
			return fmt.Errorf("categorical feature with empty name")
		}
		if len(f.Levels) == 0 {
			return fmt.Errorf("categorical feature %s has no levels", f.Name)
		}
	}
	return nil
}

// ReadArtifact loads and validates an artifact from a file path. The
// returned error wraps common.ErrArtifactMissing when no file exists at
// path, and common.ErrArtifactInvalid when the file cannot be parsed or
// fails validation, so callers can distinguish the two with errors.Is.
func ReadArtifact(path string) (*Artifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", common.ErrArtifactMissing, path)
		}
		return nil, fmt.Errorf("failed to read model artifact: %w", err)
	}

	var a Artifact
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", common.ErrArtifactInvalid, path, err)
	}
	if err := a.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", common.ErrArtifactInvalid, path, err)
	}
	return &a, nil
}
