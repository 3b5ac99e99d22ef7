package handlers

import (
	"context"
	"errors"
	"image"
	"net/http"

	"github.com/RMahshie/bamodel/internal/geometry"
	"github.com/RMahshie/bamodel/internal/processing"
	"github.com/RMahshie/bamodel/internal/response"
	"github.com/RMahshie/bamodel/internal/storage"
	"github.com/RMahshie/bamodel/pkg/models"
	"github.com/danielgtaylor/huma/v2"
	"github.com/rs/zerolog/log"
)

// DriverHandler handles driver modeling HTTP requests
type DriverHandler struct {
	driverSvc processing.DriverService
}

// NewDriverHandler creates a new driver handler
func NewDriverHandler(driverSvc processing.DriverService) *DriverHandler {
	return &DriverHandler{
		driverSvc: driverSvc,
	}
}

// EvaluateCurve interpolates a control-point table over the requested frequencies
func (h *DriverHandler) EvaluateCurve(ctx context.Context, req *models.EvaluateCurveRequest) (*models.EvaluateCurveResponse, error) {
	log.Info().
		Int("controlPoints", len(req.Body.ControlPoints)).
		Int("frequencies", len(req.Body.Frequencies)).
		Msg("Curve evaluation request received")

	model, err := response.NewModel(req.Body.ControlPoints)
	if err != nil {
		return nil, toHTTPError("Invalid control points", err)
	}

	curve, err := model.Evaluate(req.Body.Frequencies)
	if err != nil {
		return nil, toHTTPError("Invalid query frequency", err)
	}

	return &models.EvaluateCurveResponse{
		Body: models.EvaluateCurveResponseBody{Curve: curve},
	}, nil
}

// RCCutoff returns the corner frequency of an RC low-pass
func (h *DriverHandler) RCCutoff(ctx context.Context, req *models.RCCutoffRequest) (*models.RCCutoffResponse, error) {
	cutoff, err := response.CutoffFrequency(req.Body.ResistanceOhms, req.Body.CapacitanceUF)
	if err != nil {
		return nil, toHTTPError("Invalid RC parameters", err)
	}

	log.Info().
		Float64("resistanceOhms", req.Body.ResistanceOhms).
		Float64("capacitanceUF", req.Body.CapacitanceUF).
		Float64("cutoffHz", cutoff).
		Msg("RC cutoff computed")

	return &models.RCCutoffResponse{
		Body: models.RCCutoffResponseBody{
			RC:       req.Body,
			CutoffHz: cutoff,
		},
	}, nil
}

// SimulateDriver renders impedance and loudness curves plus the RC cutoff
func (h *DriverHandler) SimulateDriver(ctx context.Context, req *models.SimulateDriverRequest) (*models.SimulateDriverResponse, error) {
	log.Info().Msg("Driver simulation request received")

	result, err := h.driverSvc.Simulate(ctx, req.Body)
	if err != nil {
		return nil, toHTTPError("Driver simulation failed", err)
	}

	log.Info().Int("points", len(result.Impedance)).Float64("cutoffHz", result.CutoffHz).Msg("Returning driver simulation")
	return &models.SimulateDriverResponse{Body: *result}, nil
}

// DefaultDriver renders the reference BA driver on the configured grid
func (h *DriverHandler) DefaultDriver(ctx context.Context, input *struct{}) (*models.SimulateDriverResponse, error) {
	result, err := h.driverSvc.Simulate(ctx, processing.BADriverProfile())
	if err != nil {
		return nil, toHTTPError("Driver simulation failed", err)
	}
	return &models.SimulateDriverResponse{Body: *result}, nil
}

// ExportDriver simulates a driver and uploads the curves to object storage
func (h *DriverHandler) ExportDriver(ctx context.Context, req *models.ExportDriverRequest) (*models.ExportDriverResponse, error) {
	log.Info().Str("format", req.Format).Msg("Driver export request received")

	result, err := h.driverSvc.Simulate(ctx, req.Body)
	if err != nil {
		return nil, toHTTPError("Driver simulation failed", err)
	}

	export, err := h.driverSvc.Export(ctx, result, req.Format)
	if err != nil {
		return nil, toHTTPError("Failed to export driver response", err)
	}

	log.Info().Str("key", export.Key).Msg("Driver export complete")
	return &models.ExportDriverResponse{Body: *export}, nil
}

// GetExport returns the stored contents of an export
func (h *DriverHandler) GetExport(ctx context.Context, req *models.ExportIDRequest) (*models.GetExportResponse, error) {
	data, contentType, err := h.driverSvc.FetchExport(ctx, req.ID)
	if err != nil {
		return nil, toHTTPError("Failed to fetch export", err)
	}
	return &models.GetExportResponse{ContentType: contentType, Body: data}, nil
}

// DeleteExport removes an export from object storage
func (h *DriverHandler) DeleteExport(ctx context.Context, req *models.ExportIDRequest) (*struct{}, error) {
	if err := h.driverSvc.DeleteExport(ctx, req.ID); err != nil {
		return nil, toHTTPError("Failed to delete export", err)
	}
	log.Info().Str("id", req.ID).Msg("Export deleted")
	return nil, nil
}

// ZoomWindow returns the crop region under the cursor for the curve tracer
func (h *DriverHandler) ZoomWindow(ctx context.Context, req *models.ZoomWindowRequest) (*models.ZoomWindowResponse, error) {
	b := req.Body
	if b.ImageWidth <= 0 || b.ImageHeight <= 0 {
		return nil, huma.Error422UnprocessableEntity("Image size must be positive")
	}
	if b.ImageWidth > geometry.MaxImageSize || b.ImageHeight > geometry.MaxImageSize ||
		b.WindowWidth > geometry.MaxWindowSize || b.WindowHeight > geometry.MaxWindowSize ||
		b.Magnification > geometry.MaxMagnification {
		return nil, huma.Error422UnprocessableEntity("Zoom window parameters out of range")
	}

	size := image.Pt(orDefault(b.WindowWidth, geometry.DefaultWindowSize), orDefault(b.WindowHeight, geometry.DefaultWindowSize))
	crop := geometry.ZoomWindow(image.Pt(b.CursorX, b.CursorY), image.Rect(0, 0, b.ImageWidth, b.ImageHeight), size)
	display := geometry.DisplaySize(crop, orDefault(b.Magnification, geometry.DefaultMagnification))

	return &models.ZoomWindowResponse{
		Body: models.ZoomWindowResponseBody{
			X:             crop.Min.X,
			Y:             crop.Min.Y,
			Width:         crop.Dx(),
			Height:        crop.Dy(),
			DisplayWidth:  display.X,
			DisplayHeight: display.Y,
		},
	}, nil
}

// toHTTPError maps domain errors onto HTTP status codes
func toHTTPError(msg string, err error) error {
	switch {
	case errors.Is(err, response.ErrInvalidControlPoints),
		errors.Is(err, response.ErrInvalidQuery),
		errors.Is(err, response.ErrInvalidParameters),
		errors.Is(err, response.ErrInvalidGrid),
		errors.Is(err, processing.ErrUnsupportedFormat),
		errors.Is(err, processing.ErrInvalidExportID):
		return huma.Error422UnprocessableEntity(msg+": "+err.Error(), err)
	case errors.Is(err, storage.ErrNotFound):
		return huma.Error404NotFound("Export not found", err)
	case errors.Is(err, processing.ErrExportDisabled):
		return huma.Error503ServiceUnavailable("Export is not configured on this server", err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return huma.NewError(http.StatusRequestTimeout, msg, err)
	default:
		log.Error().Err(err).Msg(msg)
		return huma.Error500InternalServerError(msg, err)
	}
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
