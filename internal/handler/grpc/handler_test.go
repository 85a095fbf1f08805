package grpc

import (
	"context"
	"errors"
	"net"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/test/bufconn"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func checkStatus(t *testing.T, h *Handler, service string) healthpb.HealthCheckResponse_ServingStatus {
	t.Helper()

	resp, err := h.HealthServer().Check(context.Background(), &healthpb.HealthCheckRequest{Service: service})
	require.NoError(t, err)
	return resp.GetStatus()
}

func TestNewHandler_StartsNotServing(t *testing.T) {
	h := NewHandler(nil, logger.Nop())

	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, checkStatus(t, h, ""))
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, checkStatus(t, h, ServiceName))
}

func TestCheckReadiness(t *testing.T) {
	dbUp := true
	h := NewHandler(pingerFunc(func(context.Context) error {
		if dbUp {
			return nil
		}
		return errors.New("connection refused")
	}), logger.Nop())

	require.NoError(t, h.CheckReadiness(context.Background()))
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, checkStatus(t, h, ""))

	dbUp = false
	require.Error(t, h.CheckReadiness(context.Background()))
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, checkStatus(t, h, ServiceName))
}

func TestWatchReadiness_FollowsDatabase(t *testing.T) {
	var (
		dbUp  atomic.Bool
		pings atomic.Int32
	)
	h := NewHandler(pingerFunc(func(context.Context) error {
		pings.Add(1)
		if dbUp.Load() {
			return nil
		}
		return errors.New("connection refused")
	}), logger.Nop())

	done := make(chan struct{})
	go func() {
		h.WatchReadiness(context.Background(), 10*time.Millisecond)
		close(done)
	}()

	assert.Eventually(t, func() bool { return pings.Load() >= 2 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, checkStatus(t, h, ServiceName))

	dbUp.Store(true)
	assert.Eventually(t, func() bool {
		return checkStatus(t, h, ServiceName) == healthpb.HealthCheckResponse_SERVING
	}, time.Second, 5*time.Millisecond)

	dbUp.Store(false)
	assert.Eventually(t, func() bool {
		return checkStatus(t, h, "") == healthpb.HealthCheckResponse_NOT_SERVING
	}, time.Second, 5*time.Millisecond)

	h.Shutdown()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("WatchReadiness did not stop after Shutdown")
	}
}

func TestWatchReadiness_StopsOnContext(t *testing.T) {
	h := NewHandler(nil, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		h.WatchReadiness(ctx, time.Hour)
		close(done)
	}()

	assert.Eventually(t, func() bool {
		return checkStatus(t, h, "") == healthpb.HealthCheckResponse_SERVING
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("WatchReadiness did not stop after cancel")
	}
}

func TestShutdown_ReportsNotServing(t *testing.T) {
	h := NewHandler(nil, logger.Nop())
	require.NoError(t, h.CheckReadiness(context.Background()))

	h.Shutdown()
	_ = h.CheckReadiness(context.Background())

	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, checkStatus(t, h, ""))
}

func TestRegister_ServesHealthOverGRPC(t *testing.T) {
	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()

	h := NewHandler(nil, logger.Nop())
	h.Register(srv)
	require.NoError(t, h.CheckReadiness(context.Background()))

	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	resp, err := healthpb.NewHealthClient(conn).Check(context.Background(), &healthpb.HealthCheckRequest{Service: ServiceName})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())
}
