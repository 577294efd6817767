package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// handleOverlayWebSocket upgrades the connection and parks it in the hub.
// The read loop only watches for the client going away; the overlay never
// sends application data.
func (s *Server) handleOverlayWebSocket(c echo.Context) error {
	conn, err := s.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "websocket upgrade failed")
	}

	if err := s.hub.Register(conn); err != nil {
		return nil // hub already closed the connection
	}

	go func() {
		defer s.hub.Unregister(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	return nil
}
