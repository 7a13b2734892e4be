package repository

import (
	"context"
	"sync"

	"github.com/Juansebayala/react-clase-dos-master/internal/apperror"
	"github.com/Juansebayala/react-clase-dos-master/internal/entity"
)

type GameRepository interface {
	CreateOrUpdate(ctx context.Context, session *entity.Session) error
	GetByID(ctx context.Context, id string) (*entity.Session, error)
	DeleteByID(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

// memoryGame keeps sessions for the lifetime of the process only.
// Stored values are copies, so callers only change stored state through CreateOrUpdate.
type memoryGame struct {
	mu       sync.RWMutex
	sessions map[string]entity.Session
}

func NewGameRepository() GameRepository {
	return &memoryGame{
		sessions: make(map[string]entity.Session),
	}
}

func (that *memoryGame) CreateOrUpdate(ctx context.Context, session *entity.Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	that.sessions[session.ID] = *session

	return nil
}

func (that *memoryGame) GetByID(ctx context.Context, id string) (*entity.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	that.mu.RLock()
	defer that.mu.RUnlock()

	session, ok := that.sessions[id]
	if !ok {
		return nil, apperror.ErrGameNotFound
	}

	return &session, nil
}

func (that *memoryGame) DeleteByID(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.sessions[id]; !ok {
		return apperror.ErrGameNotFound
	}

	delete(that.sessions, id)

	return nil
}

func (that *memoryGame) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	that.mu.RLock()
	defer that.mu.RUnlock()

	return len(that.sessions), nil
}
