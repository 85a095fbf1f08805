package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/internal/validators"
	"github.com/MKhiriev/go-notes-keeper/models"
)

type requestCtxKey string

const (
	bodyCtxKey       requestCtxKey = "requestBody"
	paginationCtxKey requestCtxKey = "pagination"
)

// requestValidation selects the request parts a route validates.
type requestValidation struct {
	// validator checks the body, the {id} parameter and the list query.
	validator validators.Validator

	// header requires a non-empty Authorization header.
	header bool

	// noteID validates the {id} path parameter.
	noteID bool

	// listQuery validates the page and limit query parameters.
	listQuery bool

	// newBody returns a pointer to decode the JSON body into. Nil means the
	// route takes no body.
	newBody func() any

	// fields restricts body validation to the listed JSON keys. Empty means
	// every field.
	fields []string
}

// validate checks every selected request part and answers 400 with all
// field errors at once. On success the decoded body and pagination are put
// into the request context for the handler.
func (h *Handler) validate(rv requestValidation) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := logger.FromRequest(r)
			errs := validators.FieldErrors{}

			collect := func(err error) bool {
				var fieldErrs validators.FieldErrors
				if errors.As(err, &fieldErrs) {
					errs.Merge(fieldErrs)
					return true
				}
				if err != nil {
					log.Err(err).Str("func", "*Handler.validate").Msg("validator failed")
					writeError(w, r, err)
					return false
				}
				return true
			}

			if rv.header {
				header := models.AuthorizationHeader(r.Header.Get("Authorization"))
				if !collect(h.authValidator.Validate(ctx, header)) {
					return
				}
			}

			if rv.noteID {
				id := models.NoteIDParam(chi.URLParam(r, "id"))
				if !collect(rv.validator.Validate(ctx, id)) {
					return
				}
			}

			if rv.listQuery {
				query := models.ListNotesQuery{
					Page:  r.URL.Query().Get("page"),
					Limit: r.URL.Query().Get("limit"),
				}
				if !collect(rv.validator.Validate(ctx, query)) {
					return
				}
				ctx = context.WithValue(ctx, paginationCtxKey, query.Pagination())
			}

			if rv.newBody != nil {
				body := rv.newBody()
				typeErrs, err := decodeBody(r.Body, body)
				if err != nil {
					log.Debug().Err(err).Msg("invalid JSON was passed")
					writeError(w, r, service.ErrInvalidDataProvided)
					return
				}
				if !collect(rv.validator.Validate(ctx, body, rv.fields...)) {
					return
				}
				// a field of the wrong JSON type is reported once, without the
				// messages its zero value produced
				for field, msgs := range typeErrs {
					errs[field] = msgs
				}
				ctx = context.WithValue(ctx, bodyCtxKey, body)
			}

			if len(errs) > 0 {
				writeError(w, r, errs)
				return
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// decodeBody decodes a JSON body into dst. An empty body leaves dst at its
// zero value. Values of the wrong JSON type are returned as field errors;
// any other decoding problem is returned as err.
func decodeBody(body io.Reader, dst any) (validators.FieldErrors, error) {
	typeErrs := validators.FieldErrors{}

	err := json.NewDecoder(body).Decode(dst)
	switch {
	case err == nil, errors.Is(err, io.EOF):
		return typeErrs, nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		typeErrs.Add(typeErr.Field, fmt.Sprintf("%s must be a %s", capitalize(typeErr.Field), typeErr.Type.Kind()))
		return typeErrs, nil
	}

	return nil, err
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// requestBody returns the body decoded by [Handler.validate].
func requestBody[T any](r *http.Request) (T, error) {
	body, ok := r.Context().Value(bodyCtxKey).(*T)
	if !ok || body == nil {
		var zero T
		return zero, errUnexpectedRequestBody
	}
	return *body, nil
}

// requestPagination returns the pagination parsed by [Handler.validate], or
// the defaults when the route did not parse one.
func requestPagination(r *http.Request) models.Pagination {
	if p, ok := r.Context().Value(paginationCtxKey).(models.Pagination); ok {
		return p
	}
	return models.ListNotesQuery{}.Pagination()
}
