package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/Juansebayala/react-clase-dos-master/internal/apperror"
	"github.com/Juansebayala/react-clase-dos-master/internal/entity"
	"github.com/Juansebayala/react-clase-dos-master/internal/pkg"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, session *entity.Session) error
	GetByID(ctx context.Context, id string) (*entity.Session, error)
	DeleteByID(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

type publisher interface {
	Publish(gameID string, snapshot entity.SessionSnapshot)
}

// GameManager owns the game sessions and serializes every mutation of a session.
type GameManager struct {
	logger    *slog.Logger
	gameRepo  gameRepo
	publisher publisher
	maxGames  int

	locksMutex sync.Mutex
	locks      map[string]*sync.Mutex
}

// NewGameManager - maxGames <= 0 disables the limit. publisher may be nil.
func NewGameManager(logger *slog.Logger, gameRepo gameRepo, publisher publisher, maxGames int) *GameManager {
	return &GameManager{
		logger:    logger.With("component", "game_manager"),
		gameRepo:  gameRepo,
		publisher: publisher,
		maxGames:  maxGames,
		locks:     make(map[string]*sync.Mutex),
	}
}

func (that *GameManager) CreateGame(ctx context.Context, starting entity.Player) (*entity.Session, error) {
	if that.maxGames > 0 {
		count, err := that.gameRepo.Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to count games: %w", err)
		}

		if count >= that.maxGames {
			return nil, fmt.Errorf("%w: limit %d", apperror.ErrTooManyGames, that.maxGames)
		}
	}

	session := entity.NewSession(pkg.GenerateGameID(), starting)
	if err := that.gameRepo.CreateOrUpdate(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.logger.Info("game created", "gameID", session.ID, "starting", session.Game.CurrentPlayer().String())

	return session, nil
}

func (that *GameManager) GetGame(ctx context.Context, id string) (*entity.Session, error) {
	session, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return session, nil
}

// MakeTurn applies a move for whoever is to play. A rule rejection returns the unchanged session with the error.
func (that *GameManager) MakeTurn(ctx context.Context, id string, cell int) (*entity.Session, error) {
	log := that.logger.With("method", "MakeTurn", "gameID", id)

	unlock := that.lock(id)
	defer unlock()

	session, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		that.forgetMissing(id, err)
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	player := session.Game.CurrentPlayer()
	if err = session.Game.ApplyMove(cell); err != nil {
		log.Debug("move rejected", "cell", cell, "player", player.String(), "reason", err)

		return session, fmt.Errorf("failed to make turn: %w", err)
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	log.Debug("move applied", "cell", cell, "player", player.String(), "outcome", session.Game.Outcome().String())

	if session.Game.IsEnded() {
		log.Info("game finished", "outcome", session.Game.Outcome().String())
	}

	that.publish(session)

	return session, nil
}

func (that *GameManager) Restart(ctx context.Context, id string, starting entity.Player) (*entity.Session, error) {
	unlock := that.lock(id)
	defer unlock()

	session, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		that.forgetMissing(id, err)
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	session.Game.Restart(starting)

	if err = that.gameRepo.CreateOrUpdate(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	that.logger.Info("game restarted", "gameID", id, "starting", session.Game.CurrentPlayer().String())

	that.publish(session)

	return session, nil
}

func (that *GameManager) DeleteGame(ctx context.Context, id string) error {
	unlock := that.lock(id)
	defer unlock()

	if err := that.gameRepo.DeleteByID(ctx, id); err != nil {
		that.forgetMissing(id, err)
		return fmt.Errorf("failed to delete game: %w", err)
	}

	that.forget(id)

	that.logger.Info("game deleted", "gameID", id)

	return nil
}

// lock takes the per-game mutex and returns its release func.
func (that *GameManager) lock(id string) func() {
	that.locksMutex.Lock()
	mu, ok := that.locks[id]
	if !ok {
		mu = &sync.Mutex{}
		that.locks[id] = mu
	}
	that.locksMutex.Unlock()

	mu.Lock()

	return mu.Unlock
}

func (that *GameManager) forget(id string) {
	that.locksMutex.Lock()
	delete(that.locks, id)
	that.locksMutex.Unlock()
}

// forgetMissing drops the lock entry of an id that does not name a stored game.
func (that *GameManager) forgetMissing(id string, err error) {
	if errors.Is(err, apperror.ErrGameNotFound) {
		that.forget(id)
	}
}

func (that *GameManager) publish(session *entity.Session) {
	if that.publisher == nil {
		return
	}

	that.publisher.Publish(session.ID, session.Snapshot())
}
