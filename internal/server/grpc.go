package server

import (
	"context"
	"fmt"
	"net"
	"time"

	"google.golang.org/grpc"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	myGRPC "github.com/MKhiriev/go-notes-keeper/internal/handler/grpc"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
)

const readinessInterval = 5 * time.Second

type grpcServer struct {
	handler *myGRPC.Handler

	address         string
	server          *grpc.Server
	gRPCNetListener net.Listener

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	s := grpc.NewServer()
	handler.Register(s)

	return &grpcServer{
		handler: handler,
		address: cfg.GRPCAddress,
		server:  s,
		logger:  logger,
	}
}

// listen binds the configured address. It is a no-op once bound.
func (g *grpcServer) listen() error {
	if g.gRPCNetListener != nil {
		return nil
	}

	l, err := net.Listen("tcp", g.address)
	if err != nil {
		return fmt.Errorf("gRPC server listen on %s: %w", g.address, err)
	}
	g.gRPCNetListener = l

	return nil
}

// serve accepts connections while the handler keeps the health status in
// step with the database. An unreachable database reports NOT_SERVING but
// does not stop the server.
func (g *grpcServer) serve() error {
	go g.handler.WatchReadiness(context.Background(), readinessInterval)

	g.logger.Info().Str("address", g.gRPCNetListener.Addr().String()).Msg("gRPC server is listening")

	if err := g.server.Serve(g.gRPCNetListener); err != nil {
		return fmt.Errorf("gRPC server Serve: %w", err)
	}
	return nil
}

func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("GRPC server Shutdown")
	g.handler.Shutdown()
	g.server.GracefulStop()
}
