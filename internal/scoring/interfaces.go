package scoring

import (
	"github.com/fraudscope/fraudscope/internal/model"
)

// Model is the contract for the opaque pre-trained classifier. It is
// loaded once at startup, deterministic, side-effect free, and safe for
// concurrent read access. Implementations must score all rows in a
// single pass and preserve row order.
type Model interface {
	// Predict returns a 0/1 class per row, 1 meaning fraud.
	Predict(rows []model.Record) ([]int, error)
	// PredictProba returns [p_legitimate, p_fraud] per row.
	PredictProba(rows []model.Record) ([][2]float64, error)
}
