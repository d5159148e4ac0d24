package service_test

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-garden-keeper/internal/metrics"
	"github.com/MKhiriev/go-garden-keeper/internal/service"
	"github.com/MKhiriev/go-garden-keeper/internal/store"
	"github.com/MKhiriev/go-garden-keeper/models"
)

func TestMetricsWrapper_CountsOutcomes(t *testing.T) {
	registry := metrics.NewRegistry()
	svc := service.NewMetricsWrapper(registry).Wrap(newAccountService(store.NewMemoryStore()))
	ctx := context.Background()

	_, _, err := svc.UpdateProfile(ctx, models.ProfileUpdate{Name: strPtr("x")})
	require.NoError(t, err)

	_, err = svc.Register(ctx, "Ann", "ann@x.io", "secret1")
	require.NoError(t, err)
	assert.Equal(t, float64(1), testutil.ToFloat64(registry.SessionActive))

	_, err = svc.Register(ctx, "Ann", "ann@x.io", "secret1")
	require.Error(t, err)

	_, err = svc.Authenticate(ctx, "ann@x.io", "wrong!")
	require.Error(t, err)

	require.NoError(t, svc.EndSession(ctx))
	assert.Equal(t, float64(0), testutil.ToFloat64(registry.SessionActive))

	ops := registry.Operations
	assert.Equal(t, float64(1), testutil.ToFloat64(ops.WithLabelValues("update_profile", "no_session")))
	assert.Equal(t, float64(1), testutil.ToFloat64(ops.WithLabelValues("register", "ok")))
	assert.Equal(t, float64(1), testutil.ToFloat64(ops.WithLabelValues("register", "duplicate")))
	assert.Equal(t, float64(1), testutil.ToFloat64(ops.WithLabelValues("authenticate", "invalid_credentials")))
	assert.Equal(t, float64(1), testutil.ToFloat64(ops.WithLabelValues("end_session", "ok")))
}

func TestMetricsWrapper_PassesThroughState(t *testing.T) {
	inner := newAccountService(store.NewMemoryStore())
	svc := service.NewMetricsWrapper(metrics.NewRegistry()).Wrap(inner)

	assert.Equal(t, inner.State(), svc.State())
	assert.Equal(t, inner.IsLoading(), svc.IsLoading())
}
