// Package overlay pushes draw snapshots to connected overlay clients (the
// OBS browser source and the operator UI).
package overlay

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/gorilla/websocket"

	"github.com/sandiskgamer1-ops/giveaway-wheel-MEGAMU/internal/domain"
)

const (
	maxClients   = 50
	writeTimeout = 5 * time.Second
)

// --- Command types ---

type hubCmd interface{ hubCmd() }

type cmdRegister struct {
	conn  *websocket.Conn
	errCh chan error
}

func (cmdRegister) hubCmd() {}

type cmdUnregister struct {
	conn *websocket.Conn
}

func (cmdUnregister) hubCmd() {}

type cmdBroadcast struct {
	data []byte
}

func (cmdBroadcast) hubCmd() {}

type cmdStop struct{}

func (cmdStop) hubCmd() {}

// --- Per-connection writer ---

type clientWriter struct {
	conn   *websocket.Conn
	sendCh chan []byte
	done   chan struct{}
}

func newClientWriter(conn *websocket.Conn) *clientWriter {
	cw := &clientWriter{
		conn:   conn,
		sendCh: make(chan []byte, 16),
		done:   make(chan struct{}),
	}
	go cw.run()
	return cw
}

func (cw *clientWriter) run() {
	for {
		select {
		case msg, ok := <-cw.sendCh:
			if !ok {
				return
			}
			_ = cw.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := cw.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-cw.done:
			return
		}
	}
}

func (cw *clientWriter) stop() {
	close(cw.done)
	_ = cw.conn.Close()
}

// --- Hub ---

// Hub fans draw snapshots out to every connected overlay client. All client
// bookkeeping happens on one goroutine fed by the command channel.
type Hub struct {
	cmdCh   chan hubCmd
	clients map[*websocket.Conn]*clientWriter

	// lastSnapshot is replayed to newly connected clients so the overlay
	// renders immediately instead of waiting for the next state change.
	lastSnapshot []byte
}

func NewHub() *Hub {
	hub := &Hub{
		cmdCh:   make(chan hubCmd, 256),
		clients: make(map[*websocket.Conn]*clientWriter),
	}
	go hub.run()
	return hub
}

func (h *Hub) run() {
	for cmd := range h.cmdCh {
		switch c := cmd.(type) {
		case cmdRegister:
			h.handleRegister(c)
		case cmdUnregister:
			h.handleUnregister(c.conn)
		case cmdBroadcast:
			h.lastSnapshot = c.data
			for conn, cw := range h.clients {
				select {
				case cw.sendCh <- c.data:
				default:
					// Slow client: drop it rather than block the hub.
					cw.stop()
					delete(h.clients, conn)
				}
			}
		case cmdStop:
			for conn, cw := range h.clients {
				cw.stop()
				delete(h.clients, conn)
			}
			return
		}
	}
}

func (h *Hub) handleRegister(c cmdRegister) {
	if len(h.clients) >= maxClients {
		_ = c.conn.Close()
		c.errCh <- fmt.Errorf("max overlay clients (%d) reached", maxClients)
		return
	}
	cw := newClientWriter(c.conn)
	h.clients[c.conn] = cw
	if h.lastSnapshot != nil {
		cw.sendCh <- h.lastSnapshot
	}
	slog.Debug("Overlay client registered", "clients", len(h.clients))
	c.errCh <- nil
}

func (h *Hub) handleUnregister(conn *websocket.Conn) {
	if cw, ok := h.clients[conn]; ok {
		cw.stop()
		delete(h.clients, conn)
	}
}

// Register adds a connection to the broadcast set.
func (h *Hub) Register(conn *websocket.Conn) error {
	errCh := make(chan error, 1)
	h.cmdCh <- cmdRegister{conn: conn, errCh: errCh}
	return <-errCh
}

// Unregister removes and closes a connection.
func (h *Hub) Unregister(conn *websocket.Conn) {
	h.cmdCh <- cmdUnregister{conn: conn}
}

// Publish implements domain.EventPublisher.
func (h *Hub) Publish(snap domain.Snapshot) {
	data, err := json.Marshal(snap)
	if err != nil {
		slog.Error("Failed to encode overlay snapshot", "error", err)
		return
	}
	h.cmdCh <- cmdBroadcast{data: data}
}

// Stop closes every client connection and shuts the hub down.
func (h *Hub) Stop() {
	h.cmdCh <- cmdStop{}
}
