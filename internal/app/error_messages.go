// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains message strings shared by the notes server handlers
// and middleware. They end up in the "message" field of JSON error bodies.
package app

const (
	// MsgInvalidDataProvided is returned when a request body cannot be decoded.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgValidationFailed heads the field error map of a 400 response.
	MsgValidationFailed = "validation failed"

	// MsgInvalidCredentials is returned for an unknown email as well as for a
	// wrong password.
	MsgInvalidCredentials = "invalid credentials"

	// MsgInternalServerError is returned for failures the client cannot fix.
	MsgInternalServerError = "internal server error"

	// MsgEmptyAuthorizationHeader is returned when a protected route is called
	// without an Authorization header.
	MsgEmptyAuthorizationHeader = "authorization header is missing"

	// MsgInvalidAuthorizationHeader is returned when the header is not of the
	// form "Bearer <token>".
	MsgInvalidAuthorizationHeader = "invalid authorization header"

	// MsgInvalidToken is returned when the token signature or structure does
	// not verify.
	MsgInvalidToken = "invalid token"

	// MsgTokenIsExpired is returned when a verified token is past its expiry.
	MsgTokenIsExpired = "token is expired"

	// MsgUnknownUser is returned when the token subject no longer exists.
	MsgUnknownUser = "unknown user"

	// MsgEmailAlreadyExists is returned when registering a taken email.
	MsgEmailAlreadyExists = "email already exists"

	// MsgNoteNotFound is returned when the addressed note does not exist.
	MsgNoteNotFound = "note not found"

	// MsgAccessDenied is returned when the note belongs to another user.
	MsgAccessDenied = "access denied"

	// MsgPageOutOfRange is returned when the requested page is past the last
	// page of a non-empty result.
	MsgPageOutOfRange = "page is out of range"

	// MsgRequestTimeout is returned when a request outlives the configured
	// server request timeout.
	MsgRequestTimeout = "request timed out"

	// MsgRouteNotFound is returned for unknown routes.
	MsgRouteNotFound = "Route not found"

	// MsgMethodNotAllowed is returned when a route exists but not for the
	// requested method.
	MsgMethodNotAllowed = "method not allowed"
)
