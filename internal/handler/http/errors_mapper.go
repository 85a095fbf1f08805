package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-notes-keeper/internal/app"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/internal/validators"
	"github.com/MKhiriev/go-notes-keeper/models"
)

type errorResponse struct {
	status  int
	message string
}

var errorStatusMap = map[error]errorResponse{
	service.ErrInvalidDataProvided: {http.StatusBadRequest, app.MsgInvalidDataProvided},
	service.ErrPageOutOfRange:      {http.StatusBadRequest, app.MsgPageOutOfRange},

	ErrEmptyAuthorizationHeader:   {http.StatusUnauthorized, app.MsgEmptyAuthorizationHeader},
	ErrInvalidAuthorizationHeader: {http.StatusUnauthorized, app.MsgInvalidAuthorizationHeader},
	ErrEmptyToken:                 {http.StatusUnauthorized, app.MsgInvalidAuthorizationHeader},
	service.ErrTokenIsInvalid:     {http.StatusUnauthorized, app.MsgInvalidToken},
	service.ErrInvalidCredentials: {http.StatusUnauthorized, app.MsgInvalidCredentials},

	service.ErrTokenIsExpired: {http.StatusForbidden, app.MsgTokenIsExpired},
	service.ErrAccessDenied:   {http.StatusForbidden, app.MsgAccessDenied},
	service.ErrUnknownUser:    {http.StatusForbidden, app.MsgUnknownUser},

	store.ErrNoteNotFound: {http.StatusNotFound, app.MsgNoteNotFound},

	store.ErrEmailAlreadyExists: {http.StatusConflict, app.MsgEmailAlreadyExists},

	context.DeadlineExceeded: {http.StatusGatewayTimeout, app.MsgRequestTimeout},
}

func statusFromError(err error) int {
	return responseFromError(err).status
}

func responseFromError(err error) errorResponse {
	if errors.Is(err, validators.ErrValidationFailed) {
		return errorResponse{http.StatusBadRequest, app.MsgValidationFailed}
	}
	for target, resp := range errorStatusMap {
		if errors.Is(err, target) {
			return resp
		}
	}
	return errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}
}

// writeError logs err and writes its JSON error body. Field errors are
// rendered as a validation error map.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	resp := responseFromError(err)

	if resp.status >= http.StatusInternalServerError {
		log.Err(err).Int("status", resp.status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", resp.status).Msg("request rejected")
	}

	var fieldErrs validators.FieldErrors
	if errors.As(err, &fieldErrs) {
		utils.WriteJSON(w, models.ValidationErrorResponse{
			Message: resp.message,
			Errors:  fieldErrs,
		}, resp.status)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: resp.message}, resp.status)
}
