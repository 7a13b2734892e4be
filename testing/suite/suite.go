package suite

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/Juansebayala/react-clase-dos-master/internal/repository"
	"github.com/Juansebayala/react-clase-dos-master/internal/usecase"
)

const (
	maxWaitDuration = 10 * time.Second
	maxGames        = 16
)

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Storage repository.GameRepository
	Games   *usecase.GameManager
}

// New builds a fresh in-memory game stack; the returned context is canceled when the test ends.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	storage := repository.NewGameRepository()

	return ctx, &Suite{
		T:       t,
		Logger:  logger,
		Storage: storage,
		Games:   usecase.NewGameManager(logger, storage, nil, maxGames),
	}
}
