// Package model defines the core domain types used throughout the application.
package model

import (
	"crypto/sha256"
	"fmt"
	"sort"
)

// Label classifies a scored transaction.
type Label string

// Classification labels.
const (
	LabelFraudulent Label = "Fraudulent"
	LabelLegitimate Label = "Legitimate"
)

// CSVValue returns the literal string written to the prediction column
// of an exported batch.
func (l Label) CSVValue() string {
	if l == LabelFraudulent {
		return "Fraud"
	}
	return "Legitimate"
}

// Record holds one transaction's worth of feature values, keyed by
// feature name. Schema features carry typed values (float64, int,
// string) after normalization; passthrough columns keep their raw text.
type Record map[string]any

// Hash returns a stable digest of the record's feature values, used for
// duplicate detection and cache keys. Keys are sorted so insertion
// order never changes the digest.
func (r Record) Hash() string {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	h := sha256.New()
	for _, k := range keys {
		fmt.Fprintf(h, "%s=%v;", k, r[k])
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// ScoringResult is the outcome of scoring a single record.
type ScoringResult struct {
	Label       Label   `json:"label"`
	Probability float64 `json:"probability"`
}
