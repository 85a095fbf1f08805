package server

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/handler"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
)

var (
	errNoServersAreCreated = errors.New("no transport has both an address and a handler")
	errNoServersToRun      = errors.New("no transports to run")
)

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := new(server)

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		servers.gRPCServer = newGRPCServer(handlers.GRPC, cfg, logger)
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	servers.logger = logger

	return servers, nil
}

// RunServer blocks until SIGTERM, SIGINT or SIGQUIT arrives or a transport
// fails, then shuts every transport down.
func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.run(ctx); err != nil {
		s.logger.Err(err).Msg("error running server")
	}
}

func (s *server) Shutdown() {
	// finish HTTP server
	if s.httpServer != nil {
		s.httpServer.Shutdown()
	}

	// finish gRPC server
	if s.gRPCServer != nil {
		s.gRPCServer.Shutdown()
	}
}

func (s *server) transports() []transport {
	var ts []transport
	if s.httpServer != nil {
		ts = append(ts, s.httpServer)
	}
	if s.gRPCServer != nil {
		ts = append(ts, s.gRPCServer)
	}
	return ts
}

func (s *server) run(ctx context.Context) error {
	ts := s.transports()
	// check if any server was created
	if len(ts) == 0 {
		return errNoServersToRun
	}

	// bind every address first so a busy port fails the start
	for _, t := range ts {
		if err := t.listen(); err != nil {
			s.Shutdown()
			return err
		}
	}

	serveErrs := make(chan error, len(ts))
	for _, t := range ts {
		go func() {
			serveErrs <- t.serve()
		}()
	}

	var runErr error
	select {
	case <-ctx.Done():
		s.logger.Info().Msg("stop signal received")
	case runErr = <-serveErrs:
	}

	// finish started servers
	s.Shutdown()
	s.logger.Info().Msg("server Shutdown gracefully")

	return runErr
}
