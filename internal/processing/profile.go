package processing

import "github.com/RMahshie/bamodel/pkg/models"

// Calibration of the reference BA driver.
var (
	baFrequencies = []float64{20, 100, 1000, 5000, 10000, 20000}
	baResistive   = []float64{20, 15, 20, 25, 30, 35}
	baLoudness    = []float64{1, 65, 70, 75, 80, 85}
)

// Example RC filter in front of the driver.
const (
	defaultResistanceOhms = 1000
	defaultCapacitanceUF  = 1
)

// DefaultGrid is the grid used when neither the request nor the configuration
// supplies one: 500 linear points across the audio band.
var DefaultGrid = models.GridSpec{Start: 20, Stop: 20000, Points: 500, Scale: "linear"}

// BADriverProfile returns the reference driver's calibration tables and RC
// filter. Each call returns fresh slices.
func BADriverProfile() models.DriverSimulationInput {
	return models.DriverSimulationInput{
		ImpedancePoints: zipPoints(baFrequencies, baResistive),
		LoudnessPoints:  zipPoints(baFrequencies, baLoudness),
		RC: &models.RCParameters{
			ResistanceOhms: defaultResistanceOhms,
			CapacitanceUF:  defaultCapacitanceUF,
		},
	}
}

func zipPoints(freqs, values []float64) []models.ControlPoint {
	points := make([]models.ControlPoint, len(freqs))
	for i := range freqs {
		points[i] = models.ControlPoint{Frequency: freqs[i], Value: values[i]}
	}
	return points
}
