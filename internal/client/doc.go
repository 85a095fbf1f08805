// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It ties the terminal UI flows to the notes API adapter: the user logs in,
// works with notes in the main loop and may log out to start over.
package client
