package http

import (
	"github.com/MKhiriev/go-garden-keeper/internal/logger"
	"github.com/MKhiriev/go-garden-keeper/internal/metrics"
	"github.com/MKhiriev/go-garden-keeper/internal/service"
	"github.com/MKhiriev/go-garden-keeper/internal/validators"
)

type Handler struct {
	services  *service.Services
	validator validators.Validator

	// metrics is optional; without it /metrics is not served and requests
	// are not instrumented.
	metrics *metrics.Registry

	logger *logger.Logger
}

func NewHandler(services *service.Services, registry *metrics.Registry, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		validator: validators.NewAccountValidator(),
		metrics:   registry,
		logger:    logger,
	}
}
