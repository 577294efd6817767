package server

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/sandiskgamer1-ops/giveaway-wheel-MEGAMU/internal/config"
)

func (s *Server) handleGetSettings(c echo.Context) error {
	return c.JSON(http.StatusOK, s.settings.Current())
}

func (s *Server) handleSaveSettings(c echo.Context) error {
	var settings config.Settings
	if err := c.Bind(&settings); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid settings payload")
	}

	settings.Channel = strings.TrimSpace(settings.Channel)
	settings.OAuth = strings.TrimSpace(settings.OAuth)
	settings.Command = strings.TrimSpace(settings.Command)
	settings.DV = sanitizeToken(settings.DV)
	settings.APIKey = strings.TrimSpace(settings.APIKey)
	if settings.Command == "" {
		settings.Command = "!join"
	}
	if settings.Language == "" {
		settings.Language = "es"
	}

	if err := s.settings.Save(settings); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to save settings")
	}

	// Credentials may have changed; drop the chat connection so the run
	// loop redials with the new ones.
	s.chat.Reconnect()

	return c.JSON(http.StatusOK, s.settings.Current())
}

// sanitizeToken strips whitespace and anything outside [\w-], mirroring the
// cleanup applied to the dv field in the settings form.
func sanitizeToken(v string) string {
	var b strings.Builder
	for _, r := range v {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			b.WriteRune(r)
		}
	}
	return b.String()
}

func (s *Server) handleStatus(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"chatConnected": s.chat.Connected(),
		"catalog":       s.catalog.Status(),
	})
}
