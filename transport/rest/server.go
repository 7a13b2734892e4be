package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/Juansebayala/react-clase-dos-master/internal/entity"
)

const shutdownTimeout = 5 * time.Second

type gameUseCase interface {
	CreateGame(ctx context.Context, starting entity.Player) (*entity.Session, error)
	GetGame(ctx context.Context, id string) (*entity.Session, error)
	MakeTurn(ctx context.Context, id string, cell int) (*entity.Session, error)
	Restart(ctx context.Context, id string, starting entity.Player) (*entity.Session, error)
	DeleteGame(ctx context.Context, id string) error
}

type Server struct {
	logger   *slog.Logger
	games    gameUseCase
	starting entity.Player
}

// New - starting is used whenever a request does not name the player to move first.
func New(logger *slog.Logger, games gameUseCase, starting entity.Player) *Server {
	return &Server{
		logger:   logger.With("component", "rest"),
		games:    games,
		starting: starting,
	}
}

func (that *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /ping", that.handlePing)

	mux.HandleFunc("POST /games", that.handleCreateGame)
	mux.HandleFunc("GET /games/{id}", that.handleGetGame)
	mux.HandleFunc("DELETE /games/{id}", that.handleDeleteGame)
	mux.HandleFunc("POST /games/{id}/moves", that.handleMakeTurn)
	mux.HandleFunc("POST /games/{id}/restart", that.handleRestart)

	return mux
}

// Start - serves HTTP on addr until ctx is canceled.
func (that *Server) Start(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      that.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("failed to start server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server stopped with error: %w", err)
	}

	return nil
}
