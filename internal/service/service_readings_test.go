package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-garden-keeper/internal/logger"
	"github.com/MKhiriev/go-garden-keeper/internal/service"
	"github.com/MKhiriev/go-garden-keeper/models"
)

// fixedDraws returns the queued offsets in order, then zeros.
func fixedDraws(offsets ...int) service.IntN {
	i := 0
	return func(n int) int {
		if i >= len(offsets) {
			return 0
		}
		v := offsets[i] % n
		i++
		return v
	}
}

func seriesByMetric(t *testing.T, report models.ReadingsReport, metric models.Metric) models.Series {
	t.Helper()
	for _, s := range report.Series {
		if s.Metric == metric {
			return s
		}
	}
	t.Fatalf("no %s series", metric)
	return models.Series{}
}

func values(s models.Series) []float64 {
	out := make([]float64, len(s.Readings))
	for i, r := range s.Readings {
		out[i] = r.Value
	}
	return out
}

func TestReadingsService_Week(t *testing.T) {
	svc := service.NewReadingsService(nil, logger.Nop())

	report, err := svc.Readings(context.Background(), models.RangeWeek)
	require.NoError(t, err)

	assert.Equal(t, models.RangeWeek, report.Range)
	assert.Equal(t, []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}, report.Labels)
	require.Len(t, report.Series, 4)
	assert.Equal(t, models.MetricMoisture, report.Series[0].Metric)

	moisture := seriesByMetric(t, report, models.MetricMoisture)
	assert.Equal(t, []float64{65, 59, 80, 81, 56, 55, 40}, values(moisture))
	assert.True(t, moisture.Readings[6].OutOfRange, "40 is too dry")
	assert.Equal(t, 1, moisture.Alerts())

	ph := seriesByMetric(t, report, models.MetricPH)
	assert.Equal(t, 2, ph.Alerts(), "7.2 and 7.1 are too alkaline")
	assert.Equal(t, "Thu", ph.Readings[3].Label)

	assert.Zero(t, seriesByMetric(t, report, models.MetricLight).Alerts())
	assert.Zero(t, seriesByMetric(t, report, models.MetricTemperature).Alerts())
}

func TestReadingsService_Month(t *testing.T) {
	svc := service.NewReadingsService(nil, logger.Nop())

	report, err := svc.Readings(context.Background(), models.RangeMonth)
	require.NoError(t, err)

	assert.Equal(t, []string{"Week 1", "Week 2", "Week 3", "Week 4"}, report.Labels)
	for _, s := range report.Series {
		assert.Zero(t, s.Alerts(), "%s", s.Metric)
	}
}

func TestReadingsService_DayIsGeneratedOnce(t *testing.T) {
	// moisture offsets, then pH offsets, then temperature offsets
	svc := service.NewReadingsService(fixedDraws(
		0, 50, 10, 30,
		0, 20, 5, 15,
		0, 20, 5, 10,
	), logger.Nop())
	ctx := context.Background()

	report, err := svc.Readings(ctx, models.RangeDay)
	require.NoError(t, err)

	assert.Equal(t, []string{"00:00", "06:00", "12:00", "18:00"}, report.Labels)
	assert.Equal(t, []float64{90, 70, 50, 40}, values(seriesByMetric(t, report, models.MetricMoisture)), "drying out through the day")
	assert.Equal(t, []float64{6.0, 8.0, 6.5, 7.5}, values(seriesByMetric(t, report, models.MetricPH)))
	assert.Equal(t, []float64{15, 35, 20, 25}, values(seriesByMetric(t, report, models.MetricTemperature)))

	light := seriesByMetric(t, report, models.MetricLight)
	assert.Equal(t, []float64{0, 300, 800, 500}, values(light))
	assert.True(t, light.Readings[0].OutOfRange, "night")

	again, err := svc.Readings(ctx, models.RangeDay)
	require.NoError(t, err)
	assert.Equal(t, report, again)
}

func TestReadingsService_DayStaysInBounds(t *testing.T) {
	svc := service.NewReadingsService(nil, logger.Nop())

	report, err := svc.Readings(context.Background(), models.RangeDay)
	require.NoError(t, err)

	bounds := map[models.Metric][2]float64{
		models.MetricMoisture:    {40, 90},
		models.MetricTemperature: {15, 35},
		models.MetricPH:          {6.0, 8.0},
	}
	for metric, b := range bounds {
		for _, v := range values(seriesByMetric(t, report, metric)) {
			assert.GreaterOrEqual(t, v, b[0], "%s", metric)
			assert.LessOrEqual(t, v, b[1], "%s", metric)
		}
	}

	moisture := values(seriesByMetric(t, report, models.MetricMoisture))
	for i := 1; i < len(moisture); i++ {
		assert.LessOrEqual(t, moisture[i], moisture[i-1])
	}
}

func TestReadingsService_UnknownRange(t *testing.T) {
	svc := service.NewReadingsService(nil, logger.Nop())

	_, err := svc.Readings(context.Background(), "year")

	require.ErrorIs(t, err, service.ErrInvalidTimeRange)
	assert.Equal(t, "Unknown time range, expected day, week or month", service.UserMessage(err))
}

func TestReadingsService_Overview(t *testing.T) {
	svc := service.NewReadingsService(nil, logger.Nop())

	report, err := svc.Overview(context.Background())
	require.NoError(t, err)

	assert.Empty(t, report.Range)
	assert.Equal(t, []string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"}, report.Labels)
	assert.Equal(t, 6, seriesByMetric(t, report, models.MetricPH).Alerts())
	assert.Equal(t, 2, seriesByMetric(t, report, models.MetricLight).Alerts())
	assert.Zero(t, seriesByMetric(t, report, models.MetricHumidity).Alerts())

	// callers get their own copy
	report.Labels[0] = "changed"
	fresh, err := svc.Overview(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Mo", fresh.Labels[0])
}
