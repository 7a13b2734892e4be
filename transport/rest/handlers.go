package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/Juansebayala/react-clase-dos-master/internal/apperror"
	"github.com/Juansebayala/react-clase-dos-master/internal/entity"
)

const maxBodySize = 1 << 10

var ErrMissingCell = errors.New("cell is required")

type startRequest struct {
	StartingPlayer string `json:"starting_player"`
}

type moveRequest struct {
	Cell *int `json:"cell"`
}

type Response struct {
	Game  *entity.SessionSnapshot `json:"game,omitempty"`
	Error string                  `json:"error,omitempty"`
}

func (that *Server) handlePing(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	if _, err := w.Write([]byte("pong")); err != nil {
		that.logger.Error("failed to write pong", "error", err)
	}
}

func (that *Server) handleCreateGame(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "handleCreateGame")

	starting, err := that.readStartingPlayer(r)
	if err != nil {
		that.writeError(w, err, nil)
		return
	}

	session, err := that.games.CreateGame(r.Context(), starting)
	if err != nil {
		log.Error("failed to create game", "error", err)
		that.writeError(w, err, nil)
		return
	}

	that.writeGame(w, http.StatusCreated, session)
}

func (that *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	session, err := that.games.GetGame(r.Context(), r.PathValue("id"))
	if err != nil {
		that.writeError(w, err, nil)
		return
	}

	that.writeGame(w, http.StatusOK, session)
}

func (that *Server) handleDeleteGame(w http.ResponseWriter, r *http.Request) {
	if err := that.games.DeleteGame(r.Context(), r.PathValue("id")); err != nil {
		that.writeError(w, err, nil)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (that *Server) handleMakeTurn(w http.ResponseWriter, r *http.Request) {
	var req moveRequest
	if err := decodeBody(r, &req); err != nil {
		that.writeError(w, err, nil)
		return
	}

	if req.Cell == nil {
		that.writeError(w, ErrMissingCell, nil)
		return
	}

	// a rejected move still returns the unchanged game so the client can redraw it
	session, err := that.games.MakeTurn(r.Context(), r.PathValue("id"), *req.Cell)
	if err != nil {
		that.writeError(w, err, session)
		return
	}

	that.writeGame(w, http.StatusOK, session)
}

func (that *Server) handleRestart(w http.ResponseWriter, r *http.Request) {
	starting, err := that.readStartingPlayer(r)
	if err != nil {
		that.writeError(w, err, nil)
		return
	}

	session, err := that.games.Restart(r.Context(), r.PathValue("id"), starting)
	if err != nil {
		that.writeError(w, err, nil)
		return
	}

	that.writeGame(w, http.StatusOK, session)
}

func (that *Server) readStartingPlayer(r *http.Request) (entity.Player, error) {
	var req startRequest
	if err := decodeBody(r, &req); err != nil {
		return 0, err
	}

	value := strings.TrimSpace(req.StartingPlayer)
	if value == "" {
		return that.starting, nil
	}

	return entity.ParsePlayer(value)
}

// decodeBody accepts an empty body and leaves dst untouched in that case.
func decodeBody(r *http.Request, dst any) error {
	decoder := json.NewDecoder(io.LimitReader(r.Body, maxBodySize))
	if err := decoder.Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %w", errMalformedBody, err)
	}

	return nil
}

var errMalformedBody = errors.New("malformed request body")

func (that *Server) writeGame(w http.ResponseWriter, status int, session *entity.Session) {
	snapshot := session.Snapshot()
	that.writeJSON(w, status, Response{Game: &snapshot})
}

func (that *Server) writeError(w http.ResponseWriter, err error, session *entity.Session) {
	resp := Response{Error: err.Error()}
	if session != nil {
		snapshot := session.Snapshot()
		resp.Game = &snapshot
	}

	that.writeJSON(w, statusFor(err), resp)
}

func (that *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, apperror.ErrGameNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrCellOccupied), errors.Is(err, apperror.ErrGameAlreadyEnded):
		return http.StatusConflict
	case errors.Is(err, apperror.ErrTooManyGames):
		return http.StatusTooManyRequests
	case errors.Is(err, apperror.ErrOutOfRange),
		errors.Is(err, apperror.ErrInvalidPlayer),
		errors.Is(err, ErrMissingCell),
		errors.Is(err, errMalformedBody):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
