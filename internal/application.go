package application

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/Juansebayala/react-clase-dos-master/internal/config"
	"github.com/Juansebayala/react-clase-dos-master/internal/entity"
	"github.com/Juansebayala/react-clase-dos-master/internal/repository"
	"github.com/Juansebayala/react-clase-dos-master/internal/usecase"
	"github.com/Juansebayala/react-clase-dos-master/transport/rest"
	"github.com/Juansebayala/react-clase-dos-master/transport/websocket"
)

// RunApp - serves the HTTP and WebSocket collaborators until ctx is canceled or a signal arrives.
func RunApp(ctx context.Context, logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	starting, err := entity.ParsePlayer(conf.StartingPlayer)
	if err != nil {
		return fmt.Errorf("bad starting-player: %w", err)
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gameRepo := repository.NewGameRepository()
	hub := websocket.NewHub(logger)
	gameUseCase := usecase.NewGameManager(logger, gameRepo, hub, conf.MaxGames)

	group, ctx := errgroup.WithContext(ctx)

	// run HTTP server
	group.Go(func() error {
		log.Info("Starting HTTP server", "addr", conf.HTTPAddr())
		if httpErr := rest.New(logger, gameUseCase, starting).Start(ctx, conf.HTTPAddr()); httpErr != nil {
			return fmt.Errorf("HTTP server error: %w", httpErr)
		}
		return nil
	})

	// run Websocket server
	group.Go(func() error {
		log.Info("Starting WebSocket server", "addr", conf.SocketAddr())
		wsServer := websocket.New(logger, gameUseCase, hub, starting)
		if wsErr := wsServer.Start(ctx, conf.SocketAddr()); wsErr != nil {
			return fmt.Errorf("WebSocket server error: %w", wsErr)
		}
		return nil
	})

	if err = group.Wait(); err != nil {
		return err
	}

	log.Info("Application context canceled, shutting down")

	return nil
}
