package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/Juansebayala/react-clase-dos-master/internal/entity"
)

var ErrMissingCell = errors.New("cell is required")

func (that *Server) handleGameState(ctx context.Context, gameID string, c *client, msg *Message) error {
	session, err := that.games.GetGame(ctx, gameID)
	if err != nil {
		that.sendError(c, msg.Action, err, nil)
		return nil
	}

	c.enqueue(stateMessage(session.Snapshot()))

	return nil
}

// handleGameTurn - an accepted move reaches the sender through the hub like every other watcher.
func (that *Server) handleGameTurn(ctx context.Context, gameID string, c *client, msg *Message) error {
	payload, err := decodePayload(msg)
	if err != nil {
		that.sendError(c, msg.Action, err, nil)
		return err
	}

	if payload.Cell == nil {
		that.sendError(c, msg.Action, ErrMissingCell, nil)
		return nil
	}

	session, err := that.games.MakeTurn(ctx, gameID, *payload.Cell)
	if err != nil {
		that.sendError(c, msg.Action, err, session)
	}

	return nil
}

func (that *Server) handleGameRestart(ctx context.Context, gameID string, c *client, msg *Message) error {
	payload, err := decodePayload(msg)
	if err != nil {
		that.sendError(c, msg.Action, err, nil)
		return err
	}

	starting := that.starting
	if value := strings.TrimSpace(payload.StartingPlayer); value != "" {
		if starting, err = entity.ParsePlayer(value); err != nil {
			that.sendError(c, msg.Action, err, nil)
			return nil
		}
	}

	if _, err = that.games.Restart(ctx, gameID, starting); err != nil {
		that.sendError(c, msg.Action, err, nil)
	}

	return nil
}

func decodePayload(msg *Message) (Payload, error) {
	var payload Payload
	if len(msg.Payload) == 0 {
		return payload, nil
	}

	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return payload, fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	return payload, nil
}
