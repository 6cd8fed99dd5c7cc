package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rocketscienceinc/tictactoe-rooms/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-rooms/internal/entity"
	"github.com/rocketscienceinc/tictactoe-rooms/internal/tictactoe"
)

const (
	defaultLeaderboardLimit = 10
	maxLeaderboardLimit     = 100
)

type ProfileResponse struct {
	*entity.Profile

	League entity.League `json:"leagueTier"`
}

type AnalyzeRequest struct {
	Board      string `json:"board"`
	SkillLevel *int   `json:"skillLevel"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (that *Server) LeaderboardHandler(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "LeaderboardHandler")

	limit := defaultLeaderboardLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			that.writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = min(parsed, maxLeaderboardLimit)
	}

	profiles, err := that.players.Leaderboard(r.Context(), limit)
	if err != nil {
		log.Error("failed to get leaderboard", "error", err)
		that.writeError(w, http.StatusServiceUnavailable, "leaderboard is unavailable")
		return
	}

	response := make([]ProfileResponse, 0, len(profiles))
	for _, profile := range profiles {
		response = append(response, newProfileResponse(profile))
	}

	that.writeJSON(w, http.StatusOK, response)
}

func (that *Server) PlayerHandler(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "PlayerHandler")

	id := chi.URLParam(r, "id")

	profile, err := that.players.GetByID(r.Context(), id)
	if errors.Is(err, apperror.ErrPlayerNotFound) {
		that.writeError(w, http.StatusNotFound, "player not found")
		return
	}

	if err != nil {
		log.Error("failed to get player", "playerID", id, "error", err)
		that.writeError(w, http.StatusServiceUnavailable, "player store is unavailable")
		return
	}

	that.writeJSON(w, http.StatusOK, newProfileResponse(profile))
}

// AnalyzeHandler evaluates a position. The board is nine cells of X, O or '-'.
func (that *Server) AnalyzeHandler(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		that.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	board, err := entity.ParseBoard(req.Board)
	if err != nil {
		that.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	skillLevel := entity.DefaultRating
	if req.SkillLevel != nil {
		skillLevel = *req.SkillLevel
	}

	that.writeJSON(w, http.StatusOK, tictactoe.Analyze(board, skillLevel))
}

func (that *Server) RoomsHandler(w http.ResponseWriter, _ *http.Request) {
	that.writeJSON(w, http.StatusOK, that.rooms.Rooms())
}

func newProfileResponse(profile *entity.Profile) ProfileResponse {
	return ProfileResponse{
		Profile: profile,
		League:  profile.League(),
	}
}

func (that *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}

func (that *Server) writeError(w http.ResponseWriter, status int, message string) {
	that.writeJSON(w, status, errorResponse{Error: message})
}
