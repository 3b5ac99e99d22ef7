package models

// FrequencyPoint represents a single value of a response curve
type FrequencyPoint struct {
	Frequency float64 `json:"frequency" doc:"Frequency in Hz"`
	Value     float64 `json:"value" doc:"Response value (ohms or dB)"`
}

// ControlPoint is a calibration point of a driver response table
type ControlPoint struct {
	Frequency float64 `json:"frequency" doc:"Calibration frequency in Hz"`
	Value     float64 `json:"value" doc:"Measured value at the calibration frequency"`
}

// RCParameters holds the component values of a first-order RC low-pass
type RCParameters struct {
	ResistanceOhms float64 `json:"resistance_ohms" doc:"Resistance in ohms"`
	CapacitanceUF  float64 `json:"capacitance_uf" doc:"Capacitance in microfarads"`
}

// GridSpec describes a dense frequency grid
type GridSpec struct {
	Start  float64 `json:"start" doc:"First frequency in Hz"`
	Stop   float64 `json:"stop" doc:"Last frequency in Hz"`
	Points int     `json:"points" minimum:"0" maximum:"100000" doc:"Number of grid points"`
	Scale  string  `json:"scale" enum:"linear,log" doc:"Grid spacing"`
}
