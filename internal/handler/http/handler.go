package http

import (
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/internal/validators"
)

type Handler struct {
	services *service.Services

	authValidator validators.Validator
	noteValidator validators.Validator

	// requestTimeout is applied to every request when positive.
	requestTimeout time.Duration
	now            func() time.Time

	logger *logger.Logger
}

func NewHandler(services *service.Services, requestTimeout time.Duration, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		authValidator:  validators.NewAuthValidator(),
		noteValidator:  validators.NewNoteValidator(),
		requestTimeout: requestTimeout,
		now:            time.Now,
		logger:         logger,
	}
}
