package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const fakeParticipantBatch = 20

func (s *Server) requireDebug() error {
	if !s.settings.Current().Debug {
		return echo.NewHTTPError(http.StatusForbidden, "debug mode is disabled")
	}
	return nil
}

type debugParticipantRequest struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

func (s *Server) handleDebugAddParticipant(c echo.Context) error {
	if err := s.requireDebug(); err != nil {
		return err
	}

	var req debugParticipantRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid participant payload")
	}
	if req.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name is required")
	}

	s.engine.AddDebugParticipant(req.Name, req.Role)
	return c.JSON(http.StatusAccepted, s.engine.Snapshot())
}

func (s *Server) handleDebugGenerateParticipants(c echo.Context) error {
	if err := s.requireDebug(); err != nil {
		return err
	}

	s.engine.GenerateFakeParticipants(fakeParticipantBatch)
	return c.JSON(http.StatusAccepted, s.engine.Snapshot())
}

type debugForceRequest struct {
	Winner string `json:"winner"`
	Prize  string `json:"prize"`
}

func (s *Server) handleDebugForceOutcome(c echo.Context) error {
	if err := s.requireDebug(); err != nil {
		return err
	}

	var req debugForceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid force payload")
	}

	s.engine.ForceOutcome(req.Winner, req.Prize)
	return c.NoContent(http.StatusNoContent)
}
