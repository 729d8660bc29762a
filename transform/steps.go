package transform

import "math"

// MeanImputer replaces NaN feature values with the column mean learned
// during Fit.
type MeanImputer struct {
	means []float64
}

func NewMeanImputer() *MeanImputer {
	return &MeanImputer{}
}

// Fit computes the per-column mean over the non-missing values.
func (m *MeanImputer) Fit(X [][]float64, _ []float64) {
	if len(X) == 0 {
		return
	}
	cols := len(X[0])
	m.means = make([]float64, cols)

	for c := 0; c < cols; c++ {
		sum := 0.0
		count := 0
		for _, row := range X {
			if !math.IsNaN(row[c]) {
				sum += row[c]
				count++
			}
		}
		if count > 0 {
			m.means[c] = sum / float64(count)
		}
	}
}

// Transform returns a copy of X with NaN cells filled by the learned means.
func (m *MeanImputer) Transform(X [][]float64) [][]float64 {
	out := make([][]float64, len(X))
	for i, row := range X {
		filled := make([]float64, len(row))
		for c, v := range row {
			if math.IsNaN(v) && c < len(m.means) {
				filled[c] = m.means[c]
			} else {
				filled[c] = v
			}
		}
		out[i] = filled
	}
	return out
}

// StandardScaler standardizes features to zero mean and unit variance.
type StandardScaler struct {
	means []float64
	stds  []float64
}

func NewStandardScaler() *StandardScaler {
	return &StandardScaler{}
}

// Fit learns the per-column mean and standard deviation.
func (s *StandardScaler) Fit(X [][]float64, _ []float64) {
	if len(X) == 0 {
		return
	}
	cols := len(X[0])
	s.means = make([]float64, cols)
	s.stds = make([]float64, cols)

	n := float64(len(X))
	for c := 0; c < cols; c++ {
		sum := 0.0
		for _, row := range X {
			sum += row[c]
		}
		mean := sum / n

		variance := 0.0
		for _, row := range X {
			d := row[c] - mean
			variance += d * d
		}

		s.means[c] = mean
		s.stds[c] = math.Sqrt(variance / n)
	}
}

// Transform returns a copy of X scaled by the learned statistics. Columns
// with zero standard deviation map to zero.
func (s *StandardScaler) Transform(X [][]float64) [][]float64 {
	out := make([][]float64, len(X))
	for i, row := range X {
		scaled := make([]float64, len(row))
		for c, v := range row {
			if c >= len(s.means) {
				scaled[c] = v
				continue
			}
			if s.stds[c] == 0 {
				scaled[c] = 0
				continue
			}
			scaled[c] = (v - s.means[c]) / s.stds[c]
		}
		out[i] = scaled
	}
	return out
}
