package response

import (
	"fmt"
	"math"

	"github.com/RMahshie/bamodel/pkg/models"
)

// Grid scales accepted by NewGrid.
const (
	ScaleLinear = "linear"
	ScaleLog    = "log"
)

// MaxGridPoints bounds the size of a generated grid.
const MaxGridPoints = 100000

// Linspace returns n evenly spaced frequencies from start to stop inclusive.
func Linspace(start, stop float64, n int) ([]float64, error) {
	if err := checkGrid(start, stop, n); err != nil {
		return nil, err
	}
	grid := make([]float64, n)
	if n == 0 {
		return grid, nil
	}
	grid[0] = start
	if n == 1 {
		return grid, nil
	}
	step := (stop - start) / float64(n-1)
	for i := 1; i < n-1; i++ {
		grid[i] = start + float64(i)*step
	}
	grid[n-1] = stop
	return grid, nil
}

// Logspace returns n geometrically spaced frequencies from start to stop
// inclusive. Both bounds must be positive.
func Logspace(start, stop float64, n int) ([]float64, error) {
	if err := checkGrid(start, stop, n); err != nil {
		return nil, err
	}
	if start <= 0 || stop <= 0 {
		return nil, fmt.Errorf("%w: log grid bounds %g..%g must be positive", ErrInvalidGrid, start, stop)
	}
	exps, err := Linspace(math.Log10(start), math.Log10(stop), n)
	if err != nil {
		return nil, err
	}
	for i, e := range exps {
		exps[i] = math.Pow(10, e)
	}
	if n > 0 {
		exps[0] = start
		exps[n-1] = stop
	}
	return exps, nil
}

// NewGrid generates the grid described by spec. An empty scale means linear.
func NewGrid(spec models.GridSpec) ([]float64, error) {
	if err := ValidateGrid(spec); err != nil {
		return nil, err
	}
	if spec.Scale == ScaleLog {
		return Logspace(spec.Start, spec.Stop, spec.Points)
	}
	return Linspace(spec.Start, spec.Stop, spec.Points)
}

// ValidateGrid reports whether NewGrid would accept spec, without building it.
func ValidateGrid(spec models.GridSpec) error {
	if err := checkGrid(spec.Start, spec.Stop, spec.Points); err != nil {
		return err
	}
	switch spec.Scale {
	case "", ScaleLinear:
		return nil
	case ScaleLog:
		if spec.Start <= 0 || spec.Stop <= 0 {
			return fmt.Errorf("%w: log grid bounds %g..%g must be positive", ErrInvalidGrid, spec.Start, spec.Stop)
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown scale %q", ErrInvalidGrid, spec.Scale)
	}
}

func checkGrid(start, stop float64, n int) error {
	if n < 0 {
		return fmt.Errorf("%w: negative point count %d", ErrInvalidGrid, n)
	}
	if n > MaxGridPoints {
		return fmt.Errorf("%w: %d points exceeds the limit of %d", ErrInvalidGrid, n, MaxGridPoints)
	}
	if !finite(start) || !finite(stop) {
		return fmt.Errorf("%w: bounds %g..%g must be finite", ErrInvalidGrid, start, stop)
	}
	return nil
}
