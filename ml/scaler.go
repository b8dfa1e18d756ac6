package ml

import (
	"fmt"
	"math"
)

// Scaler standardizes features to zero mean and unit variance, matching the
// scaling applied at training time.
type Scaler struct {
	Mean []float64
	Std  []float64
}

// FitScaler computes per-column mean and standard deviation over x.
func FitScaler(x [][]float64) *Scaler {
	if len(x) == 0 {
		return &Scaler{}
	}
	cols := len(x[0])
	s := &Scaler{
		Mean: make([]float64, cols),
		Std:  make([]float64, cols),
	}

	for _, row := range x {
		for j, v := range row {
			s.Mean[j] += v
		}
	}
	n := float64(len(x))
	for j := range s.Mean {
		s.Mean[j] /= n
	}

	for _, row := range x {
		for j, v := range row {
			d := v - s.Mean[j]
			s.Std[j] += d * d
		}
	}
	for j := range s.Std {
		s.Std[j] = math.Sqrt(s.Std[j] / n)
		if s.Std[j] == 0 {
			s.Std[j] = 1
		}
	}
	return s
}

// validate checks that the scaler was fitted for cols columns. A decoded
// artifact can carry a zero or mismatched scaler; indexing it would panic,
// so callers reject it here and degrade to the fallback instead.
func (s *Scaler) validate(cols int) error {
	if len(s.Mean) != cols || len(s.Std) != cols {
		return fmt.Errorf("scaler fitted for %d/%d columns, want %d", len(s.Mean), len(s.Std), cols)
	}
	return nil
}

// Transform returns a scaled copy of v.
func (s *Scaler) Transform(v []float64) []float64 {
	out := make([]float64, len(v))
	for j, x := range v {
		out[j] = (x - s.Mean[j]) / s.Std[j]
	}
	return out
}

// TransformAll scales every row of x.
func (s *Scaler) TransformAll(x [][]float64) [][]float64 {
	out := make([][]float64, len(x))
	for i, row := range x {
		out[i] = s.Transform(row)
	}
	return out
}
