package websocket

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mitchellh/mapstructure"

	"github.com/rocketscienceinc/tictactoe-rooms/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-rooms/internal/entity"
	"github.com/rocketscienceinc/tictactoe-rooms/internal/usecase"
)

const (
	ActionConnect   = "connect"
	ActionRoomJoin  = "room:join"
	ActionRoomMove  = "room:move"
	ActionRoomReset = "room:reset"
	ActionRoomNew   = "room:new"
	ActionRoomLeave = "room:leave"

	EventConnected = "connected"
)

var (
	ErrMissingField  = errors.New("missing required field")
	ErrUnknownAction = errors.New("unknown action")
)

// Message is the envelope for both directions.
type Message struct {
	Action  string         `json:"action"`
	Payload map[string]any `json:"payload,omitempty"`
}

type outboundMessage struct {
	Action  string `json:"action"`
	Payload any    `json:"payload"`
}

type ConnectRequest struct {
	PlayerID string `json:"playerId"`
	Name     string `json:"name"`
}

type JoinRequest struct {
	RoomID string `json:"roomId"`
	VsBot  bool   `json:"vsBot"`
}

type MoveRequest struct {
	RoomID string `json:"roomId"`
	Cell   *int   `json:"cell"`
}

type RoomRequest struct {
	RoomID string `json:"roomId"`
}

type ConnectedPayload struct {
	Player *entity.Profile `json:"player"`
	League entity.League   `json:"leagueTier"`
}

type ErrorPayload struct {
	Action string `json:"action,omitempty"`
	Reason string `json:"reason"`
}

// decodePayload maps a loosely typed payload onto a request struct. Numbers sent as
// strings and similar client quirks are accepted.
func decodePayload(payload map[string]any, target any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           target,
	})
	if err != nil {
		return fmt.Errorf("failed to create decoder: %w", err)
	}

	if err = decoder.Decode(payload); err != nil {
		return fmt.Errorf("failed to decode payload: %w", err)
	}

	return nil
}

func encode(action string, payload any) ([]byte, error) {
	data, err := json.Marshal(outboundMessage{Action: action, Payload: payload})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s: %w", action, err)
	}

	return data, nil
}

// errorEvent picks the notification a rejected request is answered with.
func errorEvent(err error) string {
	if errors.Is(err, apperror.ErrInvalidMove) {
		return usecase.EventInvalidMove
	}

	return usecase.EventError
}
