package apperror

import "errors"

var (
	ErrRoomNotFound            = errors.New("room not found")
	ErrRoomFull                = errors.New("room is full")
	ErrNotYourTurn             = errors.New("it's not your turn")
	ErrInvalidMove             = errors.New("invalid move")
	ErrNotAuthenticated        = errors.New("player is not authenticated")
	ErrCollaboratorUnavailable = errors.New("collaborator is unavailable")

	ErrPlayerNotFound = errors.New("player not found")
)
