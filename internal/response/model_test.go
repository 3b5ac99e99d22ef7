package response

import (
	"math"
	"sync"
	"testing"

	"github.com/RMahshie/bamodel/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	baFreqs     = []float64{20, 100, 1000, 5000, 10000, 20000}
	baImpedance = []float64{20, 15, 20, 25, 30, 35}
	baLoudness  = []float64{1, 65, 70, 75, 80, 85}
)

func newBAModel(t *testing.T, values []float64) *Model {
	t.Helper()
	m, err := NewModelFromTables(baFreqs, values)
	require.NoError(t, err)
	return m
}

func TestNewModel_Validation(t *testing.T) {
	tests := []struct {
		name    string
		points  []models.ControlPoint
		wantErr bool
	}{
		{
			name:    "no points",
			points:  nil,
			wantErr: true,
		},
		{
			name:    "single point",
			points:  []models.ControlPoint{{Frequency: 100, Value: 1}},
			wantErr: true,
		},
		{
			name:    "decreasing frequencies",
			points:  []models.ControlPoint{{Frequency: 100, Value: 1}, {Frequency: 50, Value: 2}},
			wantErr: true,
		},
		{
			name:    "duplicate frequency",
			points:  []models.ControlPoint{{Frequency: 100, Value: 1}, {Frequency: 100, Value: 2}},
			wantErr: true,
		},
		{
			name:    "zero frequency",
			points:  []models.ControlPoint{{Frequency: 0, Value: 1}, {Frequency: 100, Value: 2}},
			wantErr: true,
		},
		{
			name:    "negative frequency",
			points:  []models.ControlPoint{{Frequency: -10, Value: 1}, {Frequency: 100, Value: 2}},
			wantErr: true,
		},
		{
			name:    "NaN value",
			points:  []models.ControlPoint{{Frequency: 10, Value: math.NaN()}, {Frequency: 100, Value: 2}},
			wantErr: true,
		},
		{
			name:    "infinite frequency",
			points:  []models.ControlPoint{{Frequency: 10, Value: 1}, {Frequency: math.Inf(1), Value: 2}},
			wantErr: true,
		},
		{
			name:    "two points",
			points:  []models.ControlPoint{{Frequency: 50, Value: 1}, {Frequency: 100, Value: 2}},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewModel(tt.points)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidControlPoints)
				assert.Nil(t, m)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, m)
			}
		})
	}
}

func TestNewModelFromTables_LengthMismatch(t *testing.T) {
	_, err := NewModelFromTables([]float64{1, 2, 3}, []float64{1, 2})
	assert.ErrorIs(t, err, ErrInvalidControlPoints)
}

func TestNewModel_CopiesInput(t *testing.T) {
	points := []models.ControlPoint{{Frequency: 10, Value: 1}, {Frequency: 20, Value: 2}}
	m, err := NewModel(points)
	require.NoError(t, err)

	points[0].Value = 100

	v, err := m.At(10)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
	assert.Equal(t, 1.0, m.Points()[0].Value)
}

func TestModel_ExactControlPoints(t *testing.T) {
	for _, values := range [][]float64{baImpedance, baLoudness} {
		m := newBAModel(t, values)
		for i, f := range baFreqs {
			v, err := m.At(f)
			require.NoError(t, err)
			assert.Equal(t, values[i], v, "frequency %g", f)
		}
	}
}

func TestModel_BAImpedance(t *testing.T) {
	m := newBAModel(t, baImpedance)

	tests := []struct {
		name string
		f    float64
		want float64
	}{
		{name: "control point", f: 100, want: 15},
		{name: "below range", f: 10, want: 20.625},
		{name: "first segment midpoint", f: 60, want: 17.5},
		{name: "inner segment", f: 3000, want: 22.5},
		{name: "above range", f: 30000, want: 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := m.At(tt.f)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, v, 1e-12)
		})
	}
}

func TestModel_LinearWithinSegment(t *testing.T) {
	m := newBAModel(t, baLoudness)

	// 1000..5000 Hz rises 70 -> 75 dB.
	prev := 70.0
	for f := 1100.0; f < 5000; f += 100 {
		v, err := m.At(f)
		require.NoError(t, err)
		assert.Greater(t, v, prev)
		assert.InDelta(t, 70+(f-1000)/4000*5, v, 1e-9)
		prev = v
	}
}

func TestModel_ExtrapolationContinuesBoundarySlope(t *testing.T) {
	m := newBAModel(t, baLoudness)

	lowSlope := (65.0 - 1.0) / (100 - 20)
	highSlope := (85.0 - 80.0) / (20000 - 10000)

	for _, f := range []float64{1, 5, 19.999} {
		v, err := m.At(f)
		require.NoError(t, err)
		assert.InDelta(t, 1+(f-20)*lowSlope, v, 1e-9)
	}
	for _, f := range []float64{20000.001, 22050, 48000} {
		v, err := m.At(f)
		require.NoError(t, err)
		assert.InDelta(t, 85+(f-20000)*highSlope, v, 1e-9)
	}

	// No jump at the boundary points themselves.
	below, err := m.At(20 - 1e-9)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, below, 1e-6)
	above, err := m.At(20000 + 1e-6)
	require.NoError(t, err)
	assert.InDelta(t, 85.0, above, 1e-6)
}

func TestModel_InvalidQuery(t *testing.T) {
	m := newBAModel(t, baImpedance)

	for _, f := range []float64{0, -1, math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := m.At(f)
		assert.ErrorIs(t, err, ErrInvalidQuery, "frequency %g", f)
	}

	// A failed query leaves the model usable.
	v, err := m.At(100)
	require.NoError(t, err)
	assert.Equal(t, 15.0, v)
}

func TestModel_Evaluate(t *testing.T) {
	m := newBAModel(t, baImpedance)

	t.Run("empty grid", func(t *testing.T) {
		curve, err := m.Evaluate(nil)
		require.NoError(t, err)
		assert.NotNil(t, curve)
		assert.Empty(t, curve)
	})

	t.Run("unsorted with duplicates", func(t *testing.T) {
		grid := []float64{20000, 10, 100, 100, 60}
		curve, err := m.Evaluate(grid)
		require.NoError(t, err)
		require.Len(t, curve, len(grid))

		want := []float64{35, 20.625, 15, 15, 17.5}
		for i, p := range curve {
			assert.Equal(t, grid[i], p.Frequency)
			assert.InDelta(t, want[i], p.Value, 1e-12)
		}
	})

	t.Run("invalid frequency in grid", func(t *testing.T) {
		curve, err := m.Evaluate([]float64{100, 0, 200})
		assert.ErrorIs(t, err, ErrInvalidQuery)
		assert.Contains(t, err.Error(), "grid index 1")
		assert.Nil(t, curve)
	})
}

func TestModel_Range(t *testing.T) {
	m := newBAModel(t, baImpedance)
	fMin, fMax := m.Range()
	assert.Equal(t, 20.0, fMin)
	assert.Equal(t, 20000.0, fMax)
}

func TestModel_ConcurrentEvaluate(t *testing.T) {
	m := newBAModel(t, baLoudness)
	grid, err := Linspace(20, 20000, 500)
	require.NoError(t, err)

	want, err := m.Evaluate(grid)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := m.Evaluate(grid)
			assert.NoError(t, err)
			assert.Equal(t, want, got)
		}()
	}
	wg.Wait()
}

func TestNewModel_ValueStepOverflow(t *testing.T) {
	_, err := NewModel([]models.ControlPoint{
		{Frequency: 1, Value: -math.MaxFloat64},
		{Frequency: 2, Value: math.MaxFloat64},
	})
	assert.ErrorIs(t, err, ErrInvalidControlPoints)
}

func TestModel_ExtrapolationOverflow(t *testing.T) {
	m, err := NewModel([]models.ControlPoint{{Frequency: 1, Value: 0}, {Frequency: 2, Value: 10}})
	require.NoError(t, err)

	_, err = m.At(1.7e308)
	assert.ErrorIs(t, err, ErrInvalidQuery)

	curve, err := m.Evaluate([]float64{1.5, 1.7e308})
	assert.ErrorIs(t, err, ErrInvalidQuery)
	assert.Nil(t, curve)

	// Large but representable results still succeed.
	v, err := m.At(1e300)
	require.NoError(t, err)
	assert.False(t, math.IsInf(v, 0))
}
