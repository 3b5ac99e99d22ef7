package api

import (
	"context"
	"net/http"
	"time"

	"github.com/RMahshie/bamodel/internal/api/handlers"
	"github.com/RMahshie/bamodel/internal/processing"
	"github.com/RMahshie/bamodel/pkg/models"
	"github.com/danielgtaylor/huma/v2"
)

// Version is reported by the health endpoint and the OpenAPI document
const Version = "1.0.0"

// RegisterRoutes sets up all API routes
func RegisterRoutes(api huma.API, driverSvc processing.DriverService) {
	// Initialize handlers
	driverHandler := handlers.NewDriverHandler(driverSvc)

	huma.Register(api, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check",
		Description: "Returns the health status of the service",
	}, func(ctx context.Context, input *struct{}) (*models.HealthResponse, error) {
		resp := &models.HealthResponse{}
		resp.Body.Status = "healthy"
		resp.Body.Version = Version
		resp.Body.Time = time.Now()
		return resp, nil
	})

	// Numeric core
	huma.Register(api, huma.Operation{
		OperationID: "evaluateCurve",
		Method:      http.MethodPost,
		Path:        "/api/curves/evaluate",
		Summary:     "Evaluate a response curve",
		Description: "Interpolates a calibration table at the given frequencies, extrapolating linearly outside its range",
		Tags:        []string{"Curves"},
	}, driverHandler.EvaluateCurve)

	huma.Register(api, huma.Operation{
		OperationID: "rcCutoff",
		Method:      http.MethodPost,
		Path:        "/api/rc/cutoff",
		Summary:     "RC cutoff frequency",
		Description: "Returns the -3 dB corner frequency of a first-order RC low-pass",
		Tags:        []string{"Curves"},
	}, driverHandler.RCCutoff)

	// Driver simulation
	huma.Register(api, huma.Operation{
		OperationID: "simulateDriver",
		Method:      http.MethodPost,
		Path:        "/api/drivers/simulate",
		Summary:     "Simulate a driver",
		Description: "Renders impedance and loudness curves and the RC cutoff; missing fields use the reference BA driver",
		Tags:        []string{"Drivers"},
	}, driverHandler.SimulateDriver)

	huma.Register(api, huma.Operation{
		OperationID: "defaultDriver",
		Method:      http.MethodGet,
		Path:        "/api/drivers/default",
		Summary:     "Reference BA driver",
		Description: "Renders the reference BA driver on the configured grid",
		Tags:        []string{"Drivers"},
	}, driverHandler.DefaultDriver)

	huma.Register(api, huma.Operation{
		OperationID: "exportDriver",
		Method:      http.MethodPost,
		Path:        "/api/drivers/export",
		Summary:     "Export driver curves",
		Description: "Simulates a driver and uploads the curves to object storage, returning a download URL",
		Tags:        []string{"Drivers"},
	}, driverHandler.ExportDriver)

	huma.Register(api, huma.Operation{
		OperationID: "getExport",
		Method:      http.MethodGet,
		Path:        "/api/exports/{id}",
		Summary:     "Fetch an export",
		Description: "Returns the contents of a previously exported driver response",
		Tags:        []string{"Drivers"},
	}, driverHandler.GetExport)

	huma.Register(api, huma.Operation{
		OperationID:   "deleteExport",
		Method:        http.MethodDelete,
		Path:          "/api/exports/{id}",
		Summary:       "Delete an export",
		Description:   "Removes a previously exported driver response from object storage",
		Tags:          []string{"Drivers"},
		DefaultStatus: http.StatusNoContent,
	}, driverHandler.DeleteExport)

	// Curve tracer
	huma.Register(api, huma.Operation{
		OperationID: "zoomWindow",
		Method:      http.MethodPost,
		Path:        "/api/zoom-window",
		Summary:     "Zoom window",
		Description: "Returns the crop region under the cursor, clamped to the image",
		Tags:        []string{"Tracer"},
	}, driverHandler.ZoomWindow)
}
