package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/rocketscienceinc/tictactoe-rooms/internal/entity"
	"github.com/rocketscienceinc/tictactoe-rooms/internal/usecase"
)

const shutdownTimeout = 5 * time.Second

type playerService interface {
	GetByID(ctx context.Context, id string) (*entity.Profile, error)
	Leaderboard(ctx context.Context, limit int) ([]*entity.Profile, error)
}

type roomLister interface {
	Rooms() []usecase.RoomSummary
}

type Server struct {
	logger *slog.Logger

	players playerService
	rooms   roomLister
}

func New(logger *slog.Logger, players playerService, rooms roomLister) *Server {
	return &Server{
		logger:  logger,
		players: players,
		rooms:   rooms,
	}
}

func (that *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(that.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/ping", that.PingHandler)

	r.Route("/api", func(r chi.Router) {
		r.Get("/leaderboard", that.LeaderboardHandler)
		r.Get("/players/{id}", that.PlayerHandler)
		r.Post("/analyze", that.AnalyzeHandler)
		r.Get("/rooms", that.RoomsHandler)
	})

	return r
}

// Start - starts HTTP server and stops it when ctx is done.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      that.Router(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()

		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

func (that *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		that.logger.Info("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"requestID", middleware.GetReqID(r.Context()),
		)
	})
}
