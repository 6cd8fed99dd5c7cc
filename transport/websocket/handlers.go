package websocket

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-rooms/internal/apperror"
)

// handleConnect binds an identity to the connection. An unknown or missing playerId
// gets a fresh one.
func (that *Server) handleConnect(ctx context.Context, c *client, msg *Message) error {
	log := that.logger.With("method", "handleConnect")

	var req ConnectRequest
	if err := decodePayload(msg.Payload, &req); err != nil {
		return err
	}

	profile, err := that.players.GetOrCreate(ctx, req.PlayerID, req.Name)
	if err != nil {
		return fmt.Errorf("failed to get or create player: %w", err)
	}

	if c.playerID != "" && c.playerID != profile.ID && that.hub.unregister(c.playerID, c) {
		that.rooms.Disconnect(ctx, c.playerID)
	}

	c.playerID = profile.ID
	that.hub.register(profile.ID, c)

	that.reply(c, EventConnected, ConnectedPayload{
		Player: profile,
		League: profile.League(),
	})

	log.Info("successfully connected player", "playerID", profile.ID)

	return nil
}

func (that *Server) handleJoin(ctx context.Context, c *client, msg *Message) error {
	var req JoinRequest
	if err := decodePayload(msg.Payload, &req); err != nil {
		return err
	}

	if _, err := that.rooms.JoinRoom(ctx, c.playerID, req.RoomID, req.VsBot); err != nil {
		return fmt.Errorf("room %s: %w", req.RoomID, err)
	}

	return nil
}

func (that *Server) handleMove(ctx context.Context, c *client, msg *Message) error {
	var req MoveRequest
	if err := decodePayload(msg.Payload, &req); err != nil {
		return fmt.Errorf("%w: %w", apperror.ErrInvalidMove, err)
	}

	if req.Cell == nil {
		return fmt.Errorf("%w: %w: cell", apperror.ErrInvalidMove, ErrMissingField)
	}

	if _, err := that.rooms.MakeMove(ctx, c.playerID, req.RoomID, *req.Cell); err != nil {
		return fmt.Errorf("room %s: %w", req.RoomID, err)
	}

	return nil
}

func (that *Server) handleReset(ctx context.Context, _ *client, msg *Message) error {
	var req RoomRequest
	if err := decodePayload(msg.Payload, &req); err != nil {
		return err
	}

	if _, err := that.rooms.ResetRoom(ctx, req.RoomID); err != nil {
		return fmt.Errorf("room %s: %w", req.RoomID, err)
	}

	return nil
}

func (that *Server) handleNewGame(ctx context.Context, _ *client, msg *Message) error {
	var req RoomRequest
	if err := decodePayload(msg.Payload, &req); err != nil {
		return err
	}

	if _, err := that.rooms.NewGame(ctx, req.RoomID); err != nil {
		return fmt.Errorf("room %s: %w", req.RoomID, err)
	}

	return nil
}

func (that *Server) handleLeave(ctx context.Context, c *client, msg *Message) error {
	var req RoomRequest
	if err := decodePayload(msg.Payload, &req); err != nil {
		return err
	}

	that.rooms.LeaveRoom(ctx, c.playerID, req.RoomID)

	return nil
}
