package feed

import (
	"context"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"wearecars/internal/domains/dashboard/service"
	"wearecars/shared/cache"
	"wearecars/shared/constant"
)

// Hub pushes dashboard summary snapshots to connected websocket clients.
// Every booking change notification triggers a full recomputation from the
// store; clients always receive complete snapshots, never deltas.
type Hub struct {
	dashboard service.Dashboard
	cache     cache.RedisCache
	upgrader  websocket.Upgrader

	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

func New(dashboard service.Dashboard, cache cache.RedisCache) *Hub {
	return &Hub{
		dashboard: dashboard,
		cache:     cache,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		clients: make(map[*websocket.Conn]struct{}),
	}
}

// Run blocks until the context is done, relaying booking change notifications
// into summary broadcasts.
func (h *Hub) Run(ctx context.Context) {
	events, cancel := h.cache.Subscribe(ctx, constant.ChannelBookingsChanged)
	defer cancel()

	log.Info().Str("channel", constant.ChannelBookingsChanged).Msg("dashboard feed subscribed")

	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-events:
			if !ok {
				return
			}

			h.broadcast(ctx)
		}
	}
}

func (h *Hub) broadcast(ctx context.Context) {
	summary, err := h.dashboard.Summary(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to compute dashboard summary for broadcast")

		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.clients {
		if err := conn.WriteJSON(summary); err != nil {
			log.Error().Err(err).Msg("failed to push dashboard summary, dropping client")

			conn.Close()
			delete(h.clients, conn)
		}
	}
}

// ServeHTTP upgrades the request, sends the current snapshot, and keeps the
// socket registered until the client disconnects.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error().Err(err).Msg("failed to upgrade dashboard feed connection")

		return
	}

	summary, err := h.dashboard.Summary(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to compute initial dashboard summary")

		conn.Close()

		return
	}

	if err := conn.WriteJSON(summary); err != nil {
		log.Error().Err(err).Msg("failed to send initial dashboard summary")

		conn.Close()

		return
	}

	h.mu.Lock()
	h.clients[conn] = struct{}{}
	h.mu.Unlock()

	go h.readLoop(conn)
}

// readLoop drains the connection to detect the close frame.
func (h *Hub) readLoop(conn *websocket.Conn) {
	defer func() {
		h.mu.Lock()
		delete(h.clients, conn)
		h.mu.Unlock()

		conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// Clients reports the number of connected subscribers.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.clients)
}
