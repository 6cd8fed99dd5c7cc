package websocket

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-rooms/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-rooms/internal/entity"
)

const shutdownTimeout = 5 * time.Second

type roomUseCase interface {
	JoinRoom(ctx context.Context, playerID, code string, vsBot bool) (entity.Room, error)
	MakeMove(ctx context.Context, playerID, code string, cell int) (entity.Room, error)
	ResetRoom(ctx context.Context, code string) (entity.Room, error)
	NewGame(ctx context.Context, code string) (entity.Room, error)
	LeaveRoom(ctx context.Context, playerID, code string)
	Disconnect(ctx context.Context, playerID string)
}

type playerService interface {
	GetOrCreate(ctx context.Context, id, name string) (*entity.Profile, error)
}

type Config struct {
	WriteTimeout time.Duration
	PingInterval time.Duration
	SendBuffer   int
}

type handlerFunc func(ctx context.Context, c *client, msg *Message) error

type Server struct {
	logger *slog.Logger

	rooms   roomUseCase
	players playerService
	hub     *Hub
	conf    Config

	upgrader websocket.Upgrader
	handlers map[string]handlerFunc
}

func New(logger *slog.Logger, rooms roomUseCase, players playerService, hub *Hub, conf Config) *Server {
	server := &Server{
		logger:  logger,
		rooms:   rooms,
		players: players,
		hub:     hub,
		conf:    conf,

		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(_ *http.Request) bool {
				return true
			},
		},
		handlers: make(map[string]handlerFunc),
	}

	server.handlers[ActionConnect] = server.handleConnect
	server.handlers[ActionRoomJoin] = server.handleJoin
	server.handlers[ActionRoomMove] = server.handleMove
	server.handlers[ActionRoomReset] = server.handleReset
	server.handlers[ActionRoomNew] = server.handleNewGame
	server.handlers[ActionRoomLeave] = server.handleLeave

	return server
}

func (that *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", that.serveWS)

	return mux
}

// Start - starts WebSocket server and stops it when ctx is done.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           that.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
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

func (that *Server) serveWS(writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "serveWS")

	conn, err := that.upgrader.Upgrade(writer, req, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	c := newClient(conn, that.conf.SendBuffer)

	go func() {
		if writeErr := c.writeLoop(that.conf.WriteTimeout, that.conf.PingInterval); writeErr != nil {
			log.Debug("write loop stopped", "error", writeErr)
		}
		c.close()
	}()

	log.Info("WebSocket connection established")

	that.handleMessages(req.Context(), c)
	c.close()

	if c.playerID != "" && that.hub.unregister(c.playerID, c) {
		that.rooms.Disconnect(context.WithoutCancel(req.Context()), c.playerID)
		log.Info("player disconnected", "playerID", c.playerID)
	}
}

// handleMessages - processes messages from the client until the connection drops.
func (that *Server) handleMessages(ctx context.Context, c *client) {
	log := that.logger.With("method", "handleMessages")

	pongWait := 2 * that.conf.PingInterval

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var message Message
		if err := c.conn.ReadJSON(&message); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Error("error reading message", "error", err)
			}
			return
		}

		_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))

		handler, ok := that.handlers[message.Action]
		if !ok {
			log.Warn("unknown action", "action", message.Action)
			that.errorReply(c, message.Action, fmt.Errorf("%w: %q", ErrUnknownAction, message.Action))
			continue
		}

		if message.Action != ActionConnect && c.playerID == "" {
			that.errorReply(c, message.Action, apperror.ErrNotAuthenticated)
			continue
		}

		if err := handler(ctx, c, &message); err != nil {
			log.Info("request rejected", "action", message.Action, "playerID", c.playerID, "error", err)
			that.errorReply(c, message.Action, err)
		}
	}
}

// errorReply answers only the requester; the room is not told.
func (that *Server) errorReply(c *client, action string, err error) {
	that.reply(c, errorEvent(err), ErrorPayload{Action: action, Reason: err.Error()})
}

func (that *Server) reply(c *client, event string, payload any) {
	data, err := encode(event, payload)
	if err != nil {
		that.logger.Error("failed to encode reply", "event", event, "error", err)
		return
	}

	c.enqueue(data)
}
