package grpc

import (
	"context"
	"sync"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
)

// ServiceName is the health-checked service name. The empty name reports
// the overall server status.
const ServiceName = "notes.NotesKeeper"

// Pinger reports whether a backing dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler is the root gRPC transport handler. It serves the standard
// grpc.health.v1 service, reporting SERVING once the database answers.
type Handler struct {
	health *health.Server
	pinger Pinger

	// stop ends WatchReadiness loops once the handler is shut down.
	stop     chan struct{}
	stopOnce sync.Once

	// logger is used for diagnostic log output.
	logger *logger.Logger
}

// NewHandler constructs a [Handler]. Every service starts as NOT_SERVING
// until [Handler.CheckReadiness] succeeds.
func NewHandler(pinger Pinger, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	h := &Handler{
		health: health.NewServer(),
		pinger: pinger,
		stop:   make(chan struct{}),
		logger: logger,
	}
	h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)

	return h
}

// Register attaches the health and reflection services to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
	reflection.Register(s)
}

// CheckReadiness pings the database and updates the health status.
func (h *Handler) CheckReadiness(ctx context.Context) error {
	if h.pinger != nil {
		if err := h.pinger.Ping(ctx); err != nil {
			h.logger.Err(err).Str("func", "*Handler.CheckReadiness").Msg("database is not reachable")
			h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)
			return err
		}
	}

	h.setStatus(healthpb.HealthCheckResponse_SERVING)
	return nil
}

// WatchReadiness runs CheckReadiness every interval, each check bounded by
// interval, until ctx is done or the handler is shut down. Status changes
// are logged.
func (h *Handler) WatchReadiness(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	ready := false
	for {
		checkCtx, cancel := context.WithTimeout(ctx, interval)
		err := h.CheckReadiness(checkCtx)
		cancel()

		if ok := err == nil; ok != ready {
			ready = ok
			if ready {
				h.logger.Info().Msg("database is reachable, health status SERVING")
			}
		}

		select {
		case <-ctx.Done():
			return
		case <-h.stop:
			return
		case <-ticker.C:
		}
	}
}

// Shutdown switches every service to NOT_SERVING, ignores later updates and
// stops readiness watching.
func (h *Handler) Shutdown() {
	h.stopOnce.Do(func() { close(h.stop) })
	h.health.Shutdown()
}

// HealthServer exposes the underlying health implementation.
func (h *Handler) HealthServer() healthpb.HealthServer {
	return h.health
}

func (h *Handler) setStatus(status healthpb.HealthCheckResponse_ServingStatus) {
	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)
}
