// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-notes-keeper/internal/adapter"
)

var errTitleTooShort = errors.New("заголовок должен быть не короче 3 символов")

func humanizeServerUnavailableError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Отсутствует сеть или Сервер недоступен"
	}

	return err.Error()
}

// isSessionError reports whether err means the stored token is no longer
// accepted and the user has to log in again.
func isSessionError(err error) bool {
	return errors.Is(err, adapter.ErrUnauthorized) ||
		errors.Is(err, adapter.ErrNoToken) ||
		(errors.Is(err, adapter.ErrForbidden) && strings.Contains(err.Error(), "token is expired"))
}
