package websocket

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"

	"github.com/Juansebayala/react-clase-dos-master/internal/entity"
)

const (
	sendBufferSize = 16
	pingInterval   = 15 * time.Second
	writeTimeout   = 5 * time.Second
)

type client struct {
	conn *websocket.Conn
	send chan Message
}

func newClient(conn *websocket.Conn) *client {
	return &client{
		conn: conn,
		send: make(chan Message, sendBufferSize),
	}
}

// enqueue drops the message when the client is not keeping up.
func (that *client) enqueue(msg Message) bool {
	select {
	case that.send <- msg:
		return true
	default:
		return false
	}
}

// writeLoop is the only writer of conn. It returns when ctx is done or a write fails.
func (that *client) writeLoop(ctx context.Context) error {
	ping := time.NewTicker(pingInterval)
	defer ping.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg := <-that.send:
			writeCtx, cancel := context.WithTimeout(ctx, writeTimeout)
			err := wsjson.Write(writeCtx, that.conn, msg)
			cancel()

			if err != nil {
				return err
			}
		case <-ping.C:
			if err := that.conn.Ping(ctx); err != nil {
				return err
			}
		}
	}
}

// Hub fans game snapshots out to every connection watching the game.
type Hub struct {
	logger *slog.Logger

	mu            sync.RWMutex
	subscriptions map[string]map[*client]struct{}
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		logger:        logger.With("component", "ws_hub"),
		subscriptions: make(map[string]map[*client]struct{}),
	}
}

// Publish sends the snapshot as a game:state message to the game's subscribers.
func (that *Hub) Publish(gameID string, snapshot entity.SessionSnapshot) {
	msg := stateMessage(snapshot)

	that.mu.RLock()
	defer that.mu.RUnlock()

	for c := range that.subscriptions[gameID] {
		if !c.enqueue(msg) {
			that.logger.Warn("dropping message for slow client", "gameID", gameID)
		}
	}
}

// subscribers reports how many connections currently watch the game.
func (that *Hub) subscribers(gameID string) int {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return len(that.subscriptions[gameID])
}

func (that *Hub) subscribe(gameID string, c *client) {
	that.mu.Lock()
	defer that.mu.Unlock()

	clients, ok := that.subscriptions[gameID]
	if !ok {
		clients = make(map[*client]struct{})
		that.subscriptions[gameID] = clients
	}

	clients[c] = struct{}{}
}

func (that *Hub) unsubscribe(gameID string, c *client) {
	that.mu.Lock()
	defer that.mu.Unlock()

	clients := that.subscriptions[gameID]
	delete(clients, c)

	if len(clients) == 0 {
		delete(that.subscriptions, gameID)
	}
}
