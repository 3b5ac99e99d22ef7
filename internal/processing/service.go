package processing

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/RMahshie/bamodel/internal/response"
	"github.com/RMahshie/bamodel/internal/storage"
	"github.com/RMahshie/bamodel/pkg/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"
)

// Export formats
const (
	FormatJSON = "json"
	FormatCSV  = "csv"
)

const exportPrefix = "responses/"

var contentTypes = map[string]string{
	FormatJSON: "application/json",
	FormatCSV:  "text/csv",
}

var (
	// ErrExportDisabled is returned by Export when no object store is configured.
	ErrExportDisabled = errors.New("export storage not configured")
	// ErrUnsupportedFormat is returned by Export for unknown formats.
	ErrUnsupportedFormat = errors.New("unsupported export format")
	// ErrInvalidExportID is returned for ids not of the form <uuid>.<format>.
	ErrInvalidExportID = errors.New("invalid export id")
)

type DriverService interface {
	Simulate(ctx context.Context, input models.DriverSimulationInput) (*models.DriverResponse, error)
	Export(ctx context.Context, resp *models.DriverResponse, format string) (*models.ExportResult, error)
	FetchExport(ctx context.Context, id string) (data []byte, contentType string, err error)
	DeleteExport(ctx context.Context, id string) error
}

type driverService struct {
	s3   storage.S3Service // nil disables Export
	grid models.GridSpec
}

func NewDriverService(s3Service storage.S3Service, grid models.GridSpec) DriverService {
	return &driverService{
		s3:   s3Service,
		grid: grid,
	}
}

func (s *driverService) Simulate(ctx context.Context, input models.DriverSimulationInput) (*models.DriverResponse, error) {
	// Step 1: Fill gaps from the reference driver
	profile := BADriverProfile()
	if len(input.ImpedancePoints) == 0 {
		input.ImpedancePoints = profile.ImpedancePoints
	}
	if len(input.LoudnessPoints) == 0 {
		input.LoudnessPoints = profile.LoudnessPoints
	}
	if input.RC == nil {
		input.RC = profile.RC
	}

	// Step 2: Build the query grid
	grid := input.Frequencies
	if len(grid) == 0 {
		spec := s.grid
		if input.Grid != nil {
			spec = *input.Grid
		}
		var err error
		grid, err = response.NewGrid(spec)
		if err != nil {
			return nil, err
		}
	}

	// Step 3: Build both models
	impedance, err := response.NewModel(input.ImpedancePoints)
	if err != nil {
		return nil, fmt.Errorf("impedance model: %w", err)
	}
	loudness, err := response.NewModel(input.LoudnessPoints)
	if err != nil {
		return nil, fmt.Errorf("loudness model: %w", err)
	}

	// Step 4: RC corner
	cutoff, err := response.CutoffFrequency(input.RC.ResistanceOhms, input.RC.CapacitanceUF)
	if err != nil {
		return nil, err
	}

	// Step 5: Evaluate both curves in parallel
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	result := &models.DriverResponse{
		CutoffHz: cutoff,
		RC:       *input.RC,
	}

	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	p.Go(func(ctx context.Context) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		curve, err := impedance.Evaluate(grid)
		if err != nil {
			return fmt.Errorf("impedance curve: %w", err)
		}
		result.Impedance = curve
		return nil
	})
	p.Go(func(ctx context.Context) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		curve, err := loudness.Evaluate(grid)
		if err != nil {
			return fmt.Errorf("loudness curve: %w", err)
		}
		result.Loudness = curve
		return nil
	})
	if err := p.Wait(); err != nil {
		return nil, err
	}

	log.Debug().
		Int("points", len(grid)).
		Float64("cutoffHz", cutoff).
		Msg("Driver simulation complete")

	return result, nil
}

func (s *driverService) Export(ctx context.Context, resp *models.DriverResponse, format string) (*models.ExportResult, error) {
	if s.s3 == nil {
		return nil, ErrExportDisabled
	}

	var (
		data []byte
		err  error
	)
	switch format {
	case "", FormatJSON:
		format = FormatJSON
		data, err = json.Marshal(resp)
	case FormatCSV:
		data, err = encodeCSV(resp)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to encode response: %w", err)
	}

	id := fmt.Sprintf("%s.%s", uuid.New(), format)
	key := exportPrefix + id
	if err := s.s3.UploadFile(ctx, key, contentTypes[format], data); err != nil {
		return nil, err
	}

	url, err := s.s3.GenerateDownloadURL(ctx, key)
	if err != nil {
		return nil, err
	}

	log.Info().Str("key", key).Int("bytes", len(data)).Msg("Driver response exported")

	return &models.ExportResult{
		ID:          id,
		Key:         key,
		DownloadURL: url,
		ExpiresIn:   int(s.s3.URLExpiry().Seconds()),
		CreatedAt:   time.Now(),
	}, nil
}

// FetchExport reads back a previously exported response.
func (s *driverService) FetchExport(ctx context.Context, id string) ([]byte, string, error) {
	if s.s3 == nil {
		return nil, "", ErrExportDisabled
	}
	key, contentType, err := exportKey(id)
	if err != nil {
		return nil, "", err
	}

	data, err := s.s3.DownloadFile(ctx, key)
	if err != nil {
		return nil, "", err
	}
	return data, contentType, nil
}

// DeleteExport removes an exported response. Deleting a missing export succeeds.
func (s *driverService) DeleteExport(ctx context.Context, id string) error {
	if s.s3 == nil {
		return ErrExportDisabled
	}
	key, _, err := exportKey(id)
	if err != nil {
		return err
	}

	if err := s.s3.DeleteFile(ctx, key); err != nil {
		return err
	}
	log.Info().Str("key", key).Msg("Driver export deleted")
	return nil
}

// exportKey maps an export id onto its object key and content type. Only ids
// minted by Export are accepted, so callers cannot reach other keys.
func exportKey(id string) (key, contentType string, err error) {
	name, format, ok := strings.Cut(id, ".")
	if ok {
		if u, perr := uuid.Parse(name); perr == nil && u.String() == name {
			if ct, known := contentTypes[format]; known {
				return exportPrefix + id, ct, nil
			}
		}
	}
	return "", "", fmt.Errorf("%w: %q", ErrInvalidExportID, id)
}

// encodeCSV writes one row per grid frequency. Both curves share the grid.
func encodeCSV(resp *models.DriverResponse) ([]byte, error) {
	if len(resp.Impedance) != len(resp.Loudness) {
		return nil, fmt.Errorf("curve lengths differ: %d impedance, %d loudness", len(resp.Impedance), len(resp.Loudness))
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"frequency_hz", "impedance_ohms", "loudness_db"}); err != nil {
		return nil, err
	}
	for i := range resp.Impedance {
		row := []string{
			formatFloat(resp.Impedance[i].Frequency),
			formatFloat(resp.Impedance[i].Value),
			formatFloat(resp.Loudness[i].Value),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
