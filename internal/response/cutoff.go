package response

import (
	"fmt"
	"math"
)

const faradsPerMicrofarad = 1e-6

// CutoffFrequency returns the -3 dB corner frequency in Hz of a first-order RC
// low-pass with the given resistance (ohms) and capacitance (microfarads).
func CutoffFrequency(resistanceOhms, capacitanceUF float64) (float64, error) {
	if !finite(resistanceOhms) || resistanceOhms <= 0 {
		return 0, fmt.Errorf("%w: resistance %g ohms must be positive", ErrInvalidParameters, resistanceOhms)
	}
	if !finite(capacitanceUF) || capacitanceUF <= 0 {
		return 0, fmt.Errorf("%w: capacitance %g uF must be positive", ErrInvalidParameters, capacitanceUF)
	}

	c := capacitanceUF * faradsPerMicrofarad
	return 1 / (2 * math.Pi * resistanceOhms * c), nil
}
