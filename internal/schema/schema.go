// Package schema defines the canonical feature contract the trained
// pipeline expects: the ordered feature list, each feature's value
// domain, and per-feature validation and canonicalization.
package schema

import (
	"fmt"
	"math"
	"strconv"
)

// Kind identifies a feature's value domain.
type Kind int

// Feature value domains.
const (
	KindNumeric Kind = iota
	KindBoundedInt
	KindEnum
	KindText
	KindTimestamp
)

// Feature describes one named input of the model.
type Feature struct {
	Name   string
	Kind   Kind
	Values []string // enum members, KindEnum only
	Min    float64  // lower bound for KindNumeric / KindBoundedInt
	Max    float64  // upper bound for KindBoundedInt
	Bound  bool     // whether Min/Max apply
}

// Canonicalize parses raw cell text into the typed value the pipeline
// expects. It enforces types only; range and enum membership checks are
// the caller's decision via Validate.
func (f Feature) Canonicalize(raw string) (any, error) {
	switch f.Kind {
	case KindNumeric:
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("feature %s: %q is not numeric", f.Name, raw)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("feature %s: %q is not finite", f.Name, raw)
		}
		return v, nil
	case KindBoundedInt:
		v, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("feature %s: %q is not an integer", f.Name, raw)
		}
		return v, nil
	default:
		return raw, nil
	}
}

// Validate checks a typed value against the feature's full domain,
// including bounds and enum membership. Single-record entry surfaces
// use it; the batch path deliberately does not.
func (f Feature) Validate(v any) error {
	switch f.Kind {
	case KindNumeric:
		fv, ok := v.(float64)
		if !ok {
			return fmt.Errorf("feature %s: expected float64, got %T", f.Name, v)
		}
		if math.IsNaN(fv) || math.IsInf(fv, 0) {
			return fmt.Errorf("feature %s: value is not finite", f.Name)
		}
		if f.Bound && fv < f.Min {
			return fmt.Errorf("feature %s: %v is below minimum %v", f.Name, fv, f.Min)
		}
	case KindBoundedInt:
		iv, ok := v.(int)
		if !ok {
			return fmt.Errorf("feature %s: expected int, got %T", f.Name, v)
		}
		if f.Bound && (float64(iv) < f.Min || float64(iv) > f.Max) {
			return fmt.Errorf("feature %s: %d is outside [%v, %v]", f.Name, iv, f.Min, f.Max)
		}
	case KindEnum:
		sv, ok := v.(string)
		if !ok {
			return fmt.Errorf("feature %s: expected string, got %T", f.Name, v)
		}
		for _, m := range f.Values {
			if sv == m {
				return nil
			}
		}
		return fmt.Errorf("feature %s: %q is not one of %v", f.Name, sv, f.Values)
	case KindText, KindTimestamp:
		if _, ok := v.(string); !ok {
			return fmt.Errorf("feature %s: expected string, got %T", f.Name, v)
		}
	}
	return nil
}

// Schema is the immutable ordered feature contract. It is constructed
// once per process and never mutated during a request.
type Schema struct {
	features []Feature
	index    map[string]int
}

// New builds a schema from an ordered feature list.
func New(features []Feature) *Schema {
	s := &Schema{
		features: make([]Feature, len(features)),
		index:    make(map[string]int, len(features)),
	}
	copy(s.features, features)
	for i, f := range s.features {
		s.index[f.Name] = i
	}
	return s
}

// Default returns the 16-feature schema of the fraud pipeline.
func Default() *Schema {
	return New([]Feature{
		{Name: "amt", Kind: KindNumeric, Min: 0, Bound: true},
		{Name: "category", Kind: KindEnum, Values: []string{"food", "electronics", "clothing", "other"}},
		{Name: "gender", Kind: KindEnum, Values: []string{"M", "F"}},
		{Name: "state", Kind: KindText},
		{Name: "city_pop", Kind: KindNumeric, Min: 0, Bound: true},
		{Name: "job", Kind: KindText},
		{Name: "lat", Kind: KindNumeric},
		{Name: "long", Kind: KindNumeric},
		{Name: "merch_lat", Kind: KindNumeric},
		{Name: "merch_long", Kind: KindNumeric},
		{Name: "trans_date_trans_time", Kind: KindTimestamp},
		{Name: "hour", Kind: KindBoundedInt, Min: 0, Max: 23, Bound: true},
		{Name: "day_of_week", Kind: KindBoundedInt, Min: 0, Max: 6, Bound: true},
		{Name: "month", Kind: KindBoundedInt, Min: 1, Max: 12, Bound: true},
		{Name: "amt_bin", Kind: KindEnum, Values: []string{"0-50", "50-200", "200-500", "500-1000", "1000+"}},
		{Name: "distance", Kind: KindNumeric, Min: 0, Bound: true},
	})
}

// Features returns the ordered feature list.
func (s *Schema) Features() []Feature {
	out := make([]Feature, len(s.features))
	copy(out, s.features)
	return out
}

// Names returns the ordered feature names.
func (s *Schema) Names() []string {
	names := make([]string, len(s.features))
	for i, f := range s.features {
		names[i] = f.Name
	}
	return names
}

// Lookup returns the feature with the given name.
func (s *Schema) Lookup(name string) (Feature, bool) {
	i, ok := s.index[name]
	if !ok {
		return Feature{}, false
	}
	return s.features[i], true
}

// Len returns the number of required features.
func (s *Schema) Len() int {
	return len(s.features)
}
