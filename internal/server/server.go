package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/sandiskgamer1-ops/giveaway-wheel-MEGAMU/internal/catalog"
	"github.com/sandiskgamer1-ops/giveaway-wheel-MEGAMU/internal/config"
	"github.com/sandiskgamer1-ops/giveaway-wheel-MEGAMU/internal/domain"
	"github.com/sandiskgamer1-ops/giveaway-wheel-MEGAMU/internal/overlay"
)

// chatClient is the transport subset the operator surface needs: connection
// status for the settings view and a reconnect after credential edits.
type chatClient interface {
	Connected() bool
	Reconnect()
}

// catalogStatus reports the last catalog fetch outcome.
type catalogStatus interface {
	Status() catalog.Status
}

type Server struct {
	echo     *echo.Echo
	config   *config.Config
	settings *config.SettingsStore
	engine   domain.DrawController
	history  domain.HistoryStore
	chat     chatClient
	catalog  catalogStatus
	hub      *overlay.Hub
	upgrader websocket.Upgrader
}

func NewServer(cfg *config.Config, settings *config.SettingsStore, engine domain.DrawController, history domain.HistoryStore, chat chatClient, catalogSt catalogStatus, hub *overlay.Hub) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	srv := &Server{
		echo:     e,
		config:   cfg,
		settings: settings,
		engine:   engine,
		history:  history,
		chat:     chat,
		catalog:  catalogSt,
		hub:      hub,
		upgrader: websocket.Upgrader{
			// The overlay is consumed by OBS browser sources and local
			// operator tabs; origin checks add nothing here.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}

	srv.registerRoutes()
	return srv
}

func (s *Server) Start() error {
	return s.echo.Start(fmt.Sprintf(":%s", s.config.Port))
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
