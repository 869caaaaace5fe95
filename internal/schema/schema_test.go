package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSchema(t *testing.T) {
	s := Default()

	require.Equal(t, 16, s.Len())

	// Order is part of the contract.
	wantOrder := []string{
		"amt", "category", "gender", "state", "city_pop", "job",
		"lat", "long", "merch_lat", "merch_long",
		"trans_date_trans_time", "hour", "day_of_week", "month",
		"amt_bin", "distance",
	}
	assert.Equal(t, wantOrder, s.Names())

	f, ok := s.Lookup("hour")
	require.True(t, ok)
	assert.Equal(t, KindBoundedInt, f.Kind)
	assert.Equal(t, 0.0, f.Min)
	assert.Equal(t, 23.0, f.Max)

	_, ok = s.Lookup("not_a_feature")
	assert.False(t, ok)
}

func TestFeatureCanonicalize(t *testing.T) {
	tests := []struct {
		want    any
		name    string
		raw     string
		feature Feature
		wantErr bool
	}{
		{
			name:    "numeric parses",
			feature: Feature{Name: "amt", Kind: KindNumeric},
			raw:     "120.5",
			want:    120.5,
		},
		{
			name:    "numeric rejects text",
			feature: Feature{Name: "amt", Kind: KindNumeric},
			raw:     "abc",
			wantErr: true,
		},
		{
			name:    "numeric rejects NaN",
			feature: Feature{Name: "amt", Kind: KindNumeric},
			raw:     "NaN",
			wantErr: true,
		},
		{
			name:    "bounded int parses",
			feature: Feature{Name: "hour", Kind: KindBoundedInt},
			raw:     "12",
			want:    12,
		},
		{
			name:    "bounded int rejects float",
			feature: Feature{Name: "hour", Kind: KindBoundedInt},
			raw:     "12.5",
			wantErr: true,
		},
		{
			name:    "enum passes through unchecked",
			feature: Feature{Name: "category", Kind: KindEnum, Values: []string{"food"}},
			raw:     "unseen",
			want:    "unseen",
		},
		{
			name:    "timestamp stays opaque",
			feature: Feature{Name: "trans_date_trans_time", Kind: KindTimestamp},
			raw:     "2023-10-26 12:00:00",
			want:    "2023-10-26 12:00:00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.feature.Canonicalize(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFeatureValidate(t *testing.T) {
	tests := []struct {
		value   any
		name    string
		feature Feature
		wantErr bool
	}{
		{
			name:    "amt within bounds",
			feature: Feature{Name: "amt", Kind: KindNumeric, Min: 0, Bound: true},
			value:   120.0,
		},
		{
			name:    "negative amt rejected",
			feature: Feature{Name: "amt", Kind: KindNumeric, Min: 0, Bound: true},
			value:   -1.0,
			wantErr: true,
		},
		{
			name:    "hour in range",
			feature: Feature{Name: "hour", Kind: KindBoundedInt, Min: 0, Max: 23, Bound: true},
			value:   23,
		},
		{
			name:    "hour out of range",
			feature: Feature{Name: "hour", Kind: KindBoundedInt, Min: 0, Max: 23, Bound: true},
			value:   24,
			wantErr: true,
		},
		{
			name:    "enum member accepted",
			feature: Feature{Name: "gender", Kind: KindEnum, Values: []string{"M", "F"}},
			value:   "F",
		},
		{
			name:    "enum non-member rejected",
			feature: Feature{Name: "gender", Kind: KindEnum, Values: []string{"M", "F"}},
			value:   "X",
			wantErr: true,
		},
		{
			name:    "wrong type rejected",
			feature: Feature{Name: "state", Kind: KindText},
			value:   42,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.feature.Validate(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
