package adapter

import (
	"context"

	"github.com/MKhiriev/go-garden-keeper/internal/service"
	"github.com/MKhiriev/go-garden-keeper/models"
)

var _ service.ReadingsProvider = (*RemoteReadings)(nil)

// RemoteReadings implements service.ReadingsProvider against garden-server.
// Nothing is cached; every call is a request.
type RemoteReadings struct {
	server ServerAdapter
}

func NewRemoteReadings(server ServerAdapter) *RemoteReadings {
	return &RemoteReadings{server: server}
}

func (r *RemoteReadings) Readings(ctx context.Context, timeRange models.TimeRange) (models.ReadingsReport, error) {
	return r.server.GetReadings(ctx, timeRange)
}

func (r *RemoteReadings) Overview(ctx context.Context) (models.ReadingsReport, error) {
	return r.server.GetOverview(ctx)
}
