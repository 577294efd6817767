package server

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *Server) registerRoutes() {
	// Observability endpoints
	s.echo.GET("/health/live", s.handleLiveness)
	s.echo.GET("/health/ready", s.handleReadiness)
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Draw state and operator commands
	s.echo.GET("/api/state", s.handleState)
	s.echo.GET("/api/participants", s.handleParticipants)
	s.echo.GET("/api/prizes", s.handlePrizes)
	s.echo.POST("/api/draw/start", s.handleStartDraw)
	s.echo.POST("/api/draw/advance", s.handleAdvanceToPrize)
	s.echo.POST("/api/draw/ack", s.handleAcknowledge)
	s.echo.POST("/api/draw/reset", s.handleResetAll)

	// History
	s.echo.GET("/api/history", s.handleHistory)
	s.echo.DELETE("/api/history", s.handleClearHistory)

	// Settings and connection status
	s.echo.GET("/api/settings", s.handleGetSettings)
	s.echo.PUT("/api/settings", s.handleSaveSettings)
	s.echo.GET("/api/status", s.handleStatus)

	// Debug panel (rejected unless debug mode is on)
	s.echo.POST("/api/debug/participants", s.handleDebugAddParticipant)
	s.echo.POST("/api/debug/participants/generate", s.handleDebugGenerateParticipants)
	s.echo.POST("/api/debug/force", s.handleDebugForceOutcome)

	// Overlay push
	s.echo.GET("/ws/overlay", s.handleOverlayWebSocket)
}
