package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo/readpref"
	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/tictactoe-rooms/internal/config"
	"github.com/rocketscienceinc/tictactoe-rooms/internal/repository"
	"github.com/rocketscienceinc/tictactoe-rooms/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-rooms/internal/service"
	"github.com/rocketscienceinc/tictactoe-rooms/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-rooms/transport/healthcheck"
	"github.com/rocketscienceinc/tictactoe-rooms/transport/rest"
	"github.com/rocketscienceinc/tictactoe-rooms/transport/websocket"
)

const healthInterval = 15 * time.Second

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application until SIGINT or SIGTERM.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedis(ctx, redisAddrString)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	mongoClient, err := storage.NewMongo(ctx, conf.Mongo.URI)
	if err != nil {
		return fmt.Errorf("could not connect to mongo storage: %w", err)
	}

	defer func() {
		if err = mongoClient.Disconnect(context.Background()); err != nil {
			log.Error("could not close mongo storage", "error", err)
		}
	}()

	playerRepo := repository.NewPlayerRepository(redisStorage, conf.Prediction.DefaultRating)
	historyRepo := repository.NewHistoryRepository(mongoClient.Database(conf.Mongo.Database))

	if err = historyRepo.EnsureIndexes(ctx); err != nil {
		log.Warn("could not create history indexes", "error", err)
	}

	playerService := service.NewPlayerService(logger, playerRepo, conf.Prediction.DefaultRating)
	predictionService := service.NewPredictionService(logger, playerService, historyRepo, service.PredictionConfig{
		RatingBand:   conf.Prediction.RatingBand,
		HistoryLimit: conf.Prediction.HistoryLimit,
	})
	recorderService := service.NewRecorderService(logger, playerService, historyRepo)
	botService := service.NewBotService(conf.Bot.SkillLevel)

	hub := websocket.NewHub(logger)
	roomManager := usecase.NewRoomManager(logger, predictionService, recorderService, botService, hub)

	wsServer := websocket.New(logger, roomManager, playerService, hub, websocket.Config{
		WriteTimeout: conf.WebSocket.WriteTimeout,
		PingInterval: conf.WebSocket.PingInterval,
		SendBuffer:   conf.WebSocket.SendBuffer,
	})
	restServer := rest.New(logger, playerService, roomManager)
	healthServer := healthcheck.New(logger, healthInterval, map[string]healthcheck.Check{
		"redis": func(ctx context.Context) error {
			return redisStorage.Ping(ctx).Err()
		},
		"mongo": func(ctx context.Context) error {
			return mongoClient.Ping(ctx, readpref.Primary())
		},
	})

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		if httpErr := restServer.Start(groupCtx, conf.HTTPPort); httpErr != nil {
			return fmt.Errorf("HTTP server error: %w", httpErr)
		}
		return nil
	})

	group.Go(func() error {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)
		if wsErr := wsServer.Start(groupCtx, conf.SocketPort); wsErr != nil {
			return fmt.Errorf("WebSocket server error: %w", wsErr)
		}
		return nil
	})

	group.Go(func() error {
		log.Info("Starting gRPC health server", "port", conf.GRPCPort)
		if grpcErr := healthServer.Start(groupCtx, conf.GRPCPort); grpcErr != nil {
			return fmt.Errorf("gRPC health server error: %w", grpcErr)
		}
		return nil
	})

	// a failing server cancels groupCtx, which stops the others
	err = group.Wait()

	log.Info("Waiting for pending game records")
	roomManager.Wait()

	if err != nil {
		return err
	}

	log.Info("Application context canceled, shutting down")

	return nil
}
