package response

import (
	"errors"
	"math"
)

var (
	// ErrInvalidControlPoints is returned when a calibration table cannot define a model.
	ErrInvalidControlPoints = errors.New("invalid control points")
	// ErrInvalidQuery is returned when a query frequency is not a positive finite number.
	ErrInvalidQuery = errors.New("invalid query frequency")
	// ErrInvalidParameters is returned for RC component values that are not positive.
	ErrInvalidParameters = errors.New("invalid RC parameters")
	// ErrInvalidGrid is returned for grid descriptions that cannot be generated.
	ErrInvalidGrid = errors.New("invalid frequency grid")
)

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
