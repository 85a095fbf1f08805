// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-notes-keeper/models"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run() error
}

// UI is the part of the terminal interface the application drives.
// [tui.TUI] implements it.
type UI interface {
	// LoginFlow blocks until the user is authenticated or quits.
	LoginFlow(ctx context.Context) (models.AuthResponse, error)
	// MainLoop blocks until the user quits or logs out.
	MainLoop(ctx context.Context, user models.AuthResponse) (logout bool, err error)
}
