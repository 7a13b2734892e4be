package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"
	"nhooyr.io/websocket"

	"github.com/Juansebayala/react-clase-dos-master/internal/apperror"
	"github.com/Juansebayala/react-clase-dos-master/internal/entity"
)

const shutdownTimeout = 5 * time.Second

type gameUseCase interface {
	GetGame(ctx context.Context, id string) (*entity.Session, error)
	MakeTurn(ctx context.Context, id string, cell int) (*entity.Session, error)
	Restart(ctx context.Context, id string, starting entity.Player) (*entity.Session, error)
}

type handlerFunc func(ctx context.Context, gameID string, c *client, msg *Message) error

type Server struct {
	logger   *slog.Logger
	games    gameUseCase
	hub      *Hub
	starting entity.Player

	handlers map[string]handlerFunc
}

// New - hub must also be the publisher of games so that accepted moves reach every watcher.
func New(logger *slog.Logger, games gameUseCase, hub *Hub, starting entity.Player) *Server {
	server := &Server{
		logger:   logger.With("component", "websocket"),
		games:    games,
		hub:      hub,
		starting: starting,

		handlers: make(map[string]handlerFunc),
	}

	server.handlers[actionGameState] = server.handleGameState
	server.handlers[actionGameTurn] = server.handleGameTurn
	server.handlers[actionGameRestart] = server.handleGameRestart

	return server
}

func (that *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /ws", that.serveWS)

	return mux
}

// Start - serves WebSocket connections on addr until ctx is canceled.
func (that *Server) Start(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:        addr,
		Handler:     that.Handler(),
		ReadTimeout: 10 * time.Second,
		IdleTimeout: 30 * time.Second,
		// hijacked connections outlive Shutdown, so they watch ctx directly
		BaseContext: func(net.Listener) context.Context { return ctx },
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

// serveWS - upgrades the connection and attaches it to the game named by the "game" query parameter.
func (that *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	gameID := r.URL.Query().Get("game")
	log := that.logger.With("method", "serveWS", "gameID", gameID)

	session, err := that.games.GetGame(r.Context(), gameID)
	if err != nil {
		if errors.Is(err, apperror.ErrGameNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}

		log.Error("failed to get game", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
	if err != nil {
		log.Error("failed to accept websocket", "error", err)
		return
	}
	defer conn.Close(websocket.StatusNormalClosure, "")

	c := newClient(conn)

	that.hub.subscribe(gameID, c)
	defer that.hub.unsubscribe(gameID, c)

	log.Info("WebSocket connection established")

	c.enqueue(stateMessage(session.Snapshot()))

	group, ctx := errgroup.WithContext(r.Context())
	group.Go(func() error {
		return c.writeLoop(ctx)
	})
	group.Go(func() error {
		return that.handleMessages(ctx, gameID, c)
	})

	err = group.Wait()

	switch websocket.CloseStatus(err) {
	case websocket.StatusNormalClosure, websocket.StatusGoingAway:
		log.Info("WebSocket connection closed")
	default:
		if !errors.Is(err, context.Canceled) {
			log.Warn("WebSocket connection lost", "error", err)
		}
	}
}

// handleMessages - processes messages from the client until the connection fails.
func (that *Server) handleMessages(ctx context.Context, gameID string, c *client) error {
	log := that.logger.With("method", "handleMessages", "gameID", gameID)

	for {
		_, data, err := c.conn.Read(ctx)
		if err != nil {
			return err
		}

		var message Message
		if err = json.Unmarshal(data, &message); err != nil {
			log.Warn("failed to unmarshal message", "error", err)
			continue
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			log.Warn("unknown action", "action", message.Action)
			that.sendError(c, message.Action, fmt.Errorf("unknown action %q", message.Action), nil)
			continue
		}

		if err = handler(ctx, gameID, c, &message); err != nil {
			log.Error("error processing message", "action", message.Action, "error", err)
		}
	}
}

func (that *Server) sendError(c *client, action string, err error, session *entity.Session) {
	payload := ResponsePayload{Error: err.Error()}
	if session != nil {
		snapshot := session.Snapshot()
		payload.Game = &snapshot
	}

	c.enqueue(newMessage(action, payload))
}
