package response

import (
	"fmt"
	"sort"

	"github.com/RMahshie/bamodel/pkg/models"
)

// Model is a piecewise-linear response estimator built from calibration points.
// It is immutable after construction.
type Model struct {
	freqs  []float64
	values []float64
}

// NewModel builds a model from control points ordered by strictly increasing
// frequency. At least two points are required.
func NewModel(points []models.ControlPoint) (*Model, error) {
	freqs := make([]float64, len(points))
	values := make([]float64, len(points))
	for i, p := range points {
		freqs[i] = p.Frequency
		values[i] = p.Value
	}
	return newModel(freqs, values)
}

// NewModelFromTables builds a model from parallel frequency and value tables.
func NewModelFromTables(freqs, values []float64) (*Model, error) {
	if len(freqs) != len(values) {
		return nil, fmt.Errorf("%w: %d frequencies but %d values", ErrInvalidControlPoints, len(freqs), len(values))
	}
	return newModel(append([]float64(nil), freqs...), append([]float64(nil), values...))
}

// newModel takes ownership of freqs and values.
func newModel(freqs, values []float64) (*Model, error) {
	if len(freqs) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 points, got %d", ErrInvalidControlPoints, len(freqs))
	}
	for i, f := range freqs {
		if !finite(f) || f <= 0 {
			return nil, fmt.Errorf("%w: frequency %g at index %d is not positive", ErrInvalidControlPoints, f, i)
		}
		if !finite(values[i]) {
			return nil, fmt.Errorf("%w: value %g at index %d is not finite", ErrInvalidControlPoints, values[i], i)
		}
		if i > 0 && f <= freqs[i-1] {
			return nil, fmt.Errorf("%w: frequency %g at index %d does not exceed %g", ErrInvalidControlPoints, f, i, freqs[i-1])
		}
		if i > 0 && !finite(values[i]-values[i-1]) {
			return nil, fmt.Errorf("%w: step between values at index %d and %d overflows", ErrInvalidControlPoints, i-1, i)
		}
	}
	return &Model{freqs: freqs, values: values}, nil
}

// At evaluates the model at a single frequency.
func (m *Model) At(f float64) (float64, error) {
	if !finite(f) || f <= 0 {
		return 0, fmt.Errorf("%w: %g", ErrInvalidQuery, f)
	}

	n := len(m.freqs)
	i := sort.SearchFloat64s(m.freqs, f)
	if i < n && m.freqs[i] == f {
		return m.values[i], nil
	}

	// Pick the segment [lo, lo+1]; the boundary segments double as the
	// extrapolation lines.
	lo := i - 1
	switch {
	case i == 0:
		lo = 0
	case i == n:
		lo = n - 2
	}
	v := m.segment(lo, f)
	if !finite(v) {
		return 0, fmt.Errorf("%w: value at %g overflows", ErrInvalidQuery, f)
	}
	return v, nil
}

func (m *Model) segment(lo int, f float64) float64 {
	f0, f1 := m.freqs[lo], m.freqs[lo+1]
	v0, v1 := m.values[lo], m.values[lo+1]
	return v0 + (f-f0)/(f1-f0)*(v1-v0)
}

// Evaluate returns one point per query frequency, in grid order. The grid may
// be unsorted, contain duplicates, or lie outside the calibrated range.
func (m *Model) Evaluate(grid []float64) ([]models.FrequencyPoint, error) {
	curve := make([]models.FrequencyPoint, len(grid))
	for i, f := range grid {
		v, err := m.At(f)
		if err != nil {
			return nil, fmt.Errorf("grid index %d: %w", i, err)
		}
		curve[i] = models.FrequencyPoint{Frequency: f, Value: v}
	}
	return curve, nil
}

// Points returns a copy of the model's control points.
func (m *Model) Points() []models.ControlPoint {
	points := make([]models.ControlPoint, len(m.freqs))
	for i := range m.freqs {
		points[i] = models.ControlPoint{Frequency: m.freqs[i], Value: m.values[i]}
	}
	return points
}

// Range returns the lowest and highest calibrated frequencies.
func (m *Model) Range() (fMin, fMax float64) {
	return m.freqs[0], m.freqs[len(m.freqs)-1]
}
