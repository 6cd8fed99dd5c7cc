package healthcheck

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

const checkTimeout = 2 * time.Second

// Check reports whether a backing store answers.
type Check func(ctx context.Context) error

// Server exposes grpc.health.v1. The overall status is SERVING only while every
// registered check passes; each check is also published under its own name.
type Server struct {
	logger *slog.Logger

	health   *health.Server
	checks   map[string]Check
	interval time.Duration
}

func New(logger *slog.Logger, interval time.Duration, checks map[string]Check) *Server {
	return &Server{
		logger:   logger,
		health:   health.NewServer(),
		checks:   checks,
		interval: interval,
	}
}

func (that *Server) Register(registrar grpc.ServiceRegistrar) {
	healthpb.RegisterHealthServer(registrar, that.health)
}

// Refresh runs every check once and publishes the result.
func (that *Server) Refresh(ctx context.Context) {
	log := that.logger.With("method", "Refresh")

	overall := healthpb.HealthCheckResponse_SERVING

	for name, check := range that.checks {
		checkCtx, cancel := context.WithTimeout(ctx, checkTimeout)
		err := check(checkCtx)
		cancel()

		status := healthpb.HealthCheckResponse_SERVING
		if err != nil {
			log.Warn("health check failed", "check", name, "error", err)
			status = healthpb.HealthCheckResponse_NOT_SERVING
			overall = healthpb.HealthCheckResponse_NOT_SERVING
		}

		that.health.SetServingStatus(name, status)
	}

	that.health.SetServingStatus("", overall)
}

// Start - serves health checks on port until ctx is done.
func (that *Server) Start(ctx context.Context, port string) error {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	server := grpc.NewServer()
	that.Register(server)

	go that.watch(ctx)

	go func() {
		<-ctx.Done()
		that.health.Shutdown()
		server.GracefulStop()
	}()

	if err = server.Serve(listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("failed to serve grpc: %w", err)
	}

	return nil
}

func (that *Server) watch(ctx context.Context) {
	ticker := time.NewTicker(that.interval)
	defer ticker.Stop()

	that.Refresh(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			that.Refresh(ctx)
		}
	}
}
