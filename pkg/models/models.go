package models

import (
	"time"
)

// HealthResponse represents the health check response
type HealthResponse struct {
	Body struct {
		Status  string    `json:"status" example:"healthy" doc:"Service health status"`
		Version string    `json:"version" example:"1.0.0" doc:"API version"`
		Time    time.Time `json:"time" doc:"Current server time"`
	}
}

// EvaluateCurveRequestBody is the body of a curve evaluation request
type EvaluateCurveRequestBody struct {
	ControlPoints []ControlPoint `json:"control_points" doc:"Calibration points, frequencies strictly increasing"`
	Frequencies   []float64      `json:"frequencies" doc:"Query frequencies in Hz, any order"`
}

// EvaluateCurveRequest represents a request to evaluate a control-point table over a grid
type EvaluateCurveRequest struct {
	Body EvaluateCurveRequestBody
}

// EvaluateCurveResponseBody is the body of the curve evaluation response
type EvaluateCurveResponseBody struct {
	Curve []FrequencyPoint `json:"curve" doc:"One value per query frequency, in request order"`
}

// EvaluateCurveResponse represents an evaluated response curve
type EvaluateCurveResponse struct {
	Body EvaluateCurveResponseBody
}

// RCCutoffRequest represents a request for an RC low-pass corner frequency
type RCCutoffRequest struct {
	Body RCParameters
}

// RCCutoffResponseBody is the body of the cutoff response
type RCCutoffResponseBody struct {
	RC       RCParameters `json:"rc" doc:"Component values used"`
	CutoffHz float64      `json:"cutoff_hz" doc:"-3 dB corner frequency in Hz"`
}

// RCCutoffResponse represents the computed corner frequency
type RCCutoffResponse struct {
	Body RCCutoffResponseBody
}

// DriverSimulationInput describes a driver simulation. Empty fields fall back
// to the BA driver profile and the configured grid.
type DriverSimulationInput struct {
	ImpedancePoints []ControlPoint `json:"impedance_points,omitempty" doc:"Resistive impedance calibration points (ohms)"`
	LoudnessPoints  []ControlPoint `json:"loudness_points,omitempty" doc:"Loudness calibration points (dB)"`
	Frequencies     []float64      `json:"frequencies,omitempty" doc:"Explicit query frequencies; overrides grid"`
	Grid            *GridSpec      `json:"grid,omitempty" doc:"Dense grid description"`
	RC              *RCParameters  `json:"rc,omitempty" doc:"RC filter component values"`
}

// SimulateDriverRequest represents a request to simulate a driver
type SimulateDriverRequest struct {
	Body DriverSimulationInput
}

// DriverResponse holds the rendered curves of a driver simulation
type DriverResponse struct {
	Impedance []FrequencyPoint `json:"impedance" doc:"Resistive impedance curve in ohms"`
	Loudness  []FrequencyPoint `json:"loudness" doc:"Loudness curve in dB"`
	CutoffHz  float64          `json:"cutoff_hz" doc:"RC filter -3 dB corner frequency in Hz"`
	RC        RCParameters     `json:"rc" doc:"RC filter component values"`
}

// SimulateDriverResponse represents the result of a driver simulation
type SimulateDriverResponse struct {
	Body DriverResponse
}

// ExportDriverRequest represents a request to simulate a driver and export the curves
type ExportDriverRequest struct {
	Format string `query:"format" enum:"json,csv" default:"json" doc:"Export file format"`
	Body   DriverSimulationInput
}

// ExportResult describes an exported driver response
type ExportResult struct {
	ID          string    `json:"id" doc:"Export identifier for the fetch and delete endpoints"`
	Key         string    `json:"key" doc:"Object key of the exported response"`
	DownloadURL string    `json:"download_url" doc:"Pre-signed download URL"`
	ExpiresIn   int       `json:"expires_in" doc:"URL expiration time in seconds"`
	CreatedAt   time.Time `json:"created_at" doc:"Export timestamp"`
}

// ExportDriverResponse represents the response from exporting a simulation
type ExportDriverResponse struct {
	Body ExportResult
}

// ExportIDRequest addresses a single exported response
type ExportIDRequest struct {
	ID string `path:"id" maxLength:"64" example:"0b5e8f8e-6c1a-4f0e-9d57-3f7c2a1b9e44.csv" doc:"Export identifier"`
}

// GetExportResponse streams an exported response back to the client
type GetExportResponse struct {
	ContentType string `header:"Content-Type"`
	Body        []byte
}

// ZoomWindowRequestBody is the body of a zoom window request
type ZoomWindowRequestBody struct {
	CursorX       int `json:"cursor_x" doc:"Cursor X position in image pixels"`
	CursorY       int `json:"cursor_y" doc:"Cursor Y position in image pixels"`
	ImageWidth    int `json:"image_width" minimum:"1" maximum:"65536" doc:"Source image width"`
	ImageHeight   int `json:"image_height" minimum:"1" maximum:"65536" doc:"Source image height"`
	WindowWidth   int `json:"window_width,omitempty" minimum:"0" maximum:"4096" doc:"Crop width, defaults to 200"`
	WindowHeight  int `json:"window_height,omitempty" minimum:"0" maximum:"4096" doc:"Crop height, defaults to 200"`
	Magnification int `json:"magnification,omitempty" minimum:"0" maximum:"16" doc:"Display magnification, defaults to 2"`
}

// ZoomWindowRequest represents a request for the crop region under the cursor
type ZoomWindowRequest struct {
	Body ZoomWindowRequestBody
}

// ZoomWindowResponseBody is the body of the zoom window response
type ZoomWindowResponseBody struct {
	X             int `json:"x" doc:"Crop origin X"`
	Y             int `json:"y" doc:"Crop origin Y"`
	Width         int `json:"width" doc:"Crop width"`
	Height        int `json:"height" doc:"Crop height"`
	DisplayWidth  int `json:"display_width" doc:"Magnified display width"`
	DisplayHeight int `json:"display_height" doc:"Magnified display height"`
}

// ZoomWindowResponse represents the crop region and display size
type ZoomWindowResponse struct {
	Body ZoomWindowResponseBody
}
