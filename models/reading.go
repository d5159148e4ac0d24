// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Metric is one kind of garden sensor reading.
type Metric string

const (
	MetricMoisture    Metric = "moisture"
	MetricTemperature Metric = "temperature"
	MetricPH          Metric = "ph"
	MetricLight       Metric = "light"
	MetricHumidity    Metric = "humidity"
)

// Healthy bounds of the highlighted metrics.
const (
	MinMoisture = 50.0
	MinPH       = 5.5
	MaxPH       = 7.0
	MinLight    = 200.0
)

// Unit is the suffix readings of m are shown with.
func (m Metric) Unit() string {
	switch m {
	case MetricMoisture, MetricHumidity:
		return "%"
	case MetricTemperature:
		return "°C"
	case MetricLight:
		return " lux"
	}
	return ""
}

// OutOfRange reports whether v needs the gardener's attention: moisture
// under 50%, pH outside 5.5-7 or light under 200 lux. Temperature and
// humidity have no bounds.
func (m Metric) OutOfRange(v float64) bool {
	switch m {
	case MetricMoisture:
		return v < MinMoisture
	case MetricPH:
		return v < MinPH || v > MaxPH
	case MetricLight:
		return v < MinLight
	}
	return false
}

// TimeRange selects the period a readings report covers.
type TimeRange string

const (
	RangeDay   TimeRange = "day"
	RangeWeek  TimeRange = "week"
	RangeMonth TimeRange = "month"
)

// TimeRanges lists the ranges in the order the dashboard cycles through them.
var TimeRanges = []TimeRange{RangeDay, RangeWeek, RangeMonth}

func (r TimeRange) Valid() bool {
	switch r {
	case RangeDay, RangeWeek, RangeMonth:
		return true
	}
	return false
}

// Next returns the range after r, wrapping from month back to day.
func (r TimeRange) Next() TimeRange {
	switch r {
	case RangeDay:
		return RangeWeek
	case RangeWeek:
		return RangeMonth
	default:
		return RangeDay
	}
}

// Title is the heading of r on the dashboard.
func (r TimeRange) Title() string {
	switch r {
	case RangeDay:
		return "Today"
	case RangeWeek:
		return "This Week"
	case RangeMonth:
		return "This Month"
	}
	return string(r)
}

// Reading is one point of a series.
type Reading struct {
	Label      string  `json:"label"`
	Value      float64 `json:"value"`
	OutOfRange bool    `json:"outOfRange,omitempty"`
}

// Series holds the readings of one metric, point i taken at label i of the
// report.
type Series struct {
	Metric   Metric    `json:"metric"`
	Unit     string    `json:"unit,omitempty"`
	Readings []Reading `json:"readings"`
}

// Alerts counts the out-of-range points.
func (s Series) Alerts() int {
	n := 0
	for _, r := range s.Readings {
		if r.OutOfRange {
			n++
		}
	}
	return n
}

// ReadingsReport is every series of one period.
type ReadingsReport struct {
	Range  TimeRange `json:"range,omitempty"`
	Labels []string  `json:"labels"`
	Series []Series  `json:"series"`
}

// NewSeries flags each value against the bounds of metric.
func NewSeries(metric Metric, labels []string, values []float64) Series {
	s := Series{Metric: metric, Unit: metric.Unit(), Readings: make([]Reading, len(values))}
	for i, v := range values {
		label := ""
		if i < len(labels) {
			label = labels[i]
		}
		s.Readings[i] = Reading{Label: label, Value: v, OutOfRange: metric.OutOfRange(v)}
	}
	return s
}
