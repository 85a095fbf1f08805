package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrGatewayTimeout      = errors.New("server timed out")
	ErrInternalServerError = errors.New("internal server error")

	ErrNoToken = errors.New("not logged in")
)
