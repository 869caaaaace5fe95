package scoring

import (
	"sync"

	"github.com/fraudscope/fraudscope/internal/model"
)

// MockModel is a test implementation of the Model interface. It returns
// deterministic scores derived from the transaction amount so tests can
// assert exact labels without a trained artifact.
type MockModel struct {
	err     error
	calls   []MockCall
	mu      sync.Mutex
	Cutoff  float64 // amt at or above this scores as fraud (default 500)
}

// MockCall records one capability invocation.
type MockCall struct {
	Capability string
	Rows       int
}

// NewMockModel creates a mock model with the default cutoff.
func NewMockModel() *MockModel {
	return &MockModel{Cutoff: 500}
}

// FailWith makes every subsequent capability call return err.
func (m *MockModel) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Predict scores 1 for rows whose amt is at or above the cutoff.
func (m *MockModel) Predict(rows []model.Record) ([]int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, MockCall{Capability: "predict", Rows: len(rows)})
	if m.err != nil {
		return nil, m.err
	}

	out := make([]int, len(rows))
	for i, rec := range rows {
		if m.fraudProba(rec) >= 0.5 {
			out[i] = 1
		}
	}
	return out, nil
}

// PredictProba returns [p_legit, p_fraud] pairs consistent with Predict.
func (m *MockModel) PredictProba(rows []model.Record) ([][2]float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, MockCall{Capability: "predict_proba", Rows: len(rows)})
	if m.err != nil {
		return nil, m.err
	}

	out := make([][2]float64, len(rows))
	for i, rec := range rows {
		p := m.fraudProba(rec)
		out[i] = [2]float64{1 - p, p}
	}
	return out, nil
}

func (m *MockModel) fraudProba(rec model.Record) float64 {
	amt, _ := rec["amt"].(float64)
	cutoff := m.Cutoff
	if cutoff <= 0 {
		cutoff = 500
	}
	p := amt / (2 * cutoff)
	if p > 0.99 {
		p = 0.99
	}
	if p < 0.01 {
		p = 0.01
	}
	return p
}

// Calls returns a copy of all recorded capability calls.
func (m *MockModel) Calls() []MockCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	calls := make([]MockCall, len(m.calls))
	copy(calls, m.calls)
	return calls
}

// CallCount returns the number of capability invocations so far.
func (m *MockModel) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// Reset clears recorded calls and any injected error.
func (m *MockModel) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = nil
	m.err = nil
}
