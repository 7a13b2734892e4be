package websocket

import (
	"encoding/json"

	"github.com/Juansebayala/react-clase-dos-master/internal/entity"
)

const (
	actionGameState   = "game:state"
	actionGameTurn    = "game:turn"
	actionGameRestart = "game:restart"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type Payload struct {
	Cell           *int   `json:"cell,omitempty"`
	StartingPlayer string `json:"starting_player,omitempty"`
}

type ResponsePayload struct {
	Game  *entity.SessionSnapshot `json:"game,omitempty"`
	Error string                  `json:"error,omitempty"`
}

func newMessage(action string, payload ResponsePayload) Message {
	return Message{
		Action:  action,
		Payload: mustMarshal(payload),
	}
}

func stateMessage(snapshot entity.SessionSnapshot) Message {
	return newMessage(actionGameState, ResponsePayload{Game: &snapshot})
}

// mustMarshal panics only if ResponsePayload stops being encodable.
func mustMarshal(v any) json.RawMessage {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}

	return b
}
