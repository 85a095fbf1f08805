// Package server wires and runs the notes transport servers.
//
// It provides orchestration for the HTTP API and the gRPC health endpoint,
// including startup, signal handling, and graceful shutdown of all enabled
// transports.
package server
