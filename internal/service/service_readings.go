package service

import (
	"cmp"
	"context"
	"fmt"
	"math/rand"
	"slices"

	"github.com/MKhiriev/go-garden-keeper/internal/logger"
	"github.com/MKhiriev/go-garden-keeper/models"
)

// IntN returns a non-negative pseudo-random number in [0, n).
type IntN func(n int) int

// sample is the raw data of one period keyed by metric.
type sample struct {
	labels []string
	values map[models.Metric][]float64
}

// reportMetrics is the order series appear in a period report.
var reportMetrics = []models.Metric{
	models.MetricMoisture,
	models.MetricTemperature,
	models.MetricPH,
	models.MetricLight,
}

// overviewMetrics is the order series appear in the overview.
var overviewMetrics = []models.Metric{
	models.MetricTemperature,
	models.MetricPH,
	models.MetricHumidity,
	models.MetricLight,
}

// ReadingsService serves the sensor readings of the garden. Week and month
// are fixed samples; the day is generated once per instance so repeated
// reads agree.
type ReadingsService struct {
	samples  map[models.TimeRange]sample
	overview sample

	logger *logger.Logger
}

// NewReadingsService builds the readings. intN drives the generated day and
// defaults to math/rand.
func NewReadingsService(intN IntN, logger *logger.Logger) *ReadingsService {
	if intN == nil {
		intN = rand.Intn
	}

	return &ReadingsService{
		samples: map[models.TimeRange]sample{
			models.RangeDay:   generateDay(intN),
			models.RangeWeek:  weekSample(),
			models.RangeMonth: monthSample(),
		},
		overview: overviewSample(),
		logger:   logger,
	}
}

// Readings returns every series of period r with out-of-range points
// flagged. Unknown ranges fail with ErrInvalidTimeRange.
func (s *ReadingsService) Readings(ctx context.Context, r models.TimeRange) (models.ReadingsReport, error) {
	sm, ok := s.samples[r]
	if !ok {
		logger.FromContextOr(ctx, s.logger).Debug().
			Str("func", "ReadingsService.Readings").
			Str("range", string(r)).
			Msg("unknown time range")
		return models.ReadingsReport{}, fmt.Errorf("%w: %q", ErrInvalidTimeRange, r)
	}

	report := sm.report(reportMetrics)
	report.Range = r
	return report, nil
}

// Overview returns the weekly summary shown first on the dashboard.
func (s *ReadingsService) Overview(ctx context.Context) (models.ReadingsReport, error) {
	return s.overview.report(overviewMetrics), nil
}

func (sm sample) report(metrics []models.Metric) models.ReadingsReport {
	report := models.ReadingsReport{
		Labels: slices.Clone(sm.labels),
		Series: make([]models.Series, 0, len(metrics)),
	}
	for _, m := range metrics {
		report.Series = append(report.Series, models.NewSeries(m, sm.labels, sm.values[m]))
	}
	return report
}

// generateDay draws four readings at six hour steps: moisture falling
// through the day within 40-90%, temperature within 15-35°C and pH within
// 6.0-8.0. Light follows the sun.
func generateDay(intN IntN) sample {
	const points = 4

	moisture := randomValues(intN, points, 40, 90)
	slices.SortFunc(moisture, func(a, b float64) int { return cmp.Compare(b, a) })

	ph := randomValues(intN, points, 60, 80)
	for i := range ph {
		ph[i] /= 10
	}

	return sample{
		labels: []string{"00:00", "06:00", "12:00", "18:00"},
		values: map[models.Metric][]float64{
			models.MetricMoisture:    moisture,
			models.MetricTemperature: randomValues(intN, points, 15, 35),
			models.MetricPH:          ph,
			models.MetricLight:       {0, 300, 800, 500},
		},
	}
}

// randomValues returns count whole numbers in [lo, hi].
func randomValues(intN IntN, count, lo, hi int) []float64 {
	values := make([]float64, count)
	for i := range values {
		values[i] = float64(lo + intN(hi-lo+1))
	}
	return values
}

func weekSample() sample {
	return sample{
		labels: []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"},
		values: map[models.Metric][]float64{
			models.MetricMoisture:    {65, 59, 80, 81, 56, 55, 40},
			models.MetricTemperature: {22, 25, 26, 28, 24, 23, 25},
			models.MetricPH:          {6.5, 6.8, 7.0, 7.2, 7.1, 6.9, 6.8},
			models.MetricLight:       {450, 600, 750, 800, 700, 500, 400},
		},
	}
}

func monthSample() sample {
	return sample{
		labels: []string{"Week 1", "Week 2", "Week 3", "Week 4"},
		values: map[models.Metric][]float64{
			models.MetricMoisture:    {72, 68, 75, 80},
			models.MetricTemperature: {23, 25, 26, 24},
			models.MetricPH:          {6.7, 6.9, 7.0, 6.8},
			models.MetricLight:       {500, 600, 650, 700},
		},
	}
}

func overviewSample() sample {
	return sample{
		labels: []string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"},
		values: map[models.Metric][]float64{
			models.MetricTemperature: {20, 45, 28, 8, 11, 15, 22},
			models.MetricPH:          {7, 7.5, 7.8, 8.2, 8.5, 8.8, 9.2},
			models.MetricHumidity:    {60, 70, 65, 75, 80, 85, 90},
			models.MetricLight:       {100, 150, 200, 250, 300, 350, 400},
		},
	}
}
