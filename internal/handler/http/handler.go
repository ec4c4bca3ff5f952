package http

import (
	"github.com/aidocs/doc-browser/internal/logger"
	"github.com/aidocs/doc-browser/internal/service"
)

type Handler struct {
	services *service.Services

	version string

	logger *logger.Logger
}

func NewHandler(services *service.Services, version string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		version:  version,
		logger:   logger,
	}
}
