// Package http implements the REST transport of the notes server.
//
// It exposes route wiring, request handlers and middleware. Request
// validation, authentication, tracing and access logging happen in this
// package before requests are delegated to the service layer.
package http
