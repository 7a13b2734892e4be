package entity

import "fmt"

// Snapshot is the read-only view handed to whatever renders the game.
type Snapshot struct {
	Board      [BoardSize]string `json:"board"`
	Turn       string            `json:"turn"`
	Status     string            `json:"status"`
	Winner     string            `json:"winner,omitempty"`
	ShowTurn   bool              `json:"show_turn"`
	ShowResult bool              `json:"show_result"`
	Message    string            `json:"message"`
}

// Snapshot copies the game state. Turn indicator and result banner visibility both follow the outcome.
func (that *Game) Snapshot() Snapshot {
	outcome := that.Outcome()

	snapshot := Snapshot{
		Board:      that.board.Strings(),
		Turn:       that.CurrentPlayer().String(),
		Status:     outcome.Status,
		ShowTurn:   outcome.IsInProgress(),
		ShowResult: !outcome.IsInProgress(),
	}

	switch {
	case outcome.IsWon():
		snapshot.Winner = outcome.Winner.String()
		snapshot.Message = fmt.Sprintf("Player %s has won the game!", outcome.Winner)
	case outcome.IsDraw():
		snapshot.Message = "It's a tie!"
	default:
		snapshot.Message = fmt.Sprintf("It's the turn of player: %s", snapshot.Turn)
	}

	return snapshot
}

// Session is a game owned by one collaborator, addressed by ID.
type Session struct {
	ID   string
	Game Game
}

type SessionSnapshot struct {
	ID string `json:"id"`
	Snapshot
}

func NewSession(id string, starting Player) *Session {
	return &Session{
		ID:   id,
		Game: *NewGame(starting),
	}
}

func (that *Session) Snapshot() SessionSnapshot {
	return SessionSnapshot{
		ID:       that.ID,
		Snapshot: that.Game.Snapshot(),
	}
}
