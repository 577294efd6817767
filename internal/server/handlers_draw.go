package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sandiskgamer1-ops/giveaway-wheel-MEGAMU/internal/domain"
)

func (s *Server) handleState(c echo.Context) error {
	return c.JSON(http.StatusOK, s.engine.Snapshot())
}

type participantView struct {
	domain.Participant
	// Probability is the display share used by the roster view, zero for
	// eliminated entries.
	Probability float64 `json:"probability"`
}

func (s *Server) handleParticipants(c echo.Context) error {
	snap := s.engine.Snapshot()

	totalWeight := 0
	for _, p := range snap.Participants {
		if !p.Eliminated {
			totalWeight += p.Weight
		}
	}

	views := make([]participantView, 0, len(snap.Participants))
	for _, p := range snap.Participants {
		view := participantView{Participant: p}
		if !p.Eliminated && totalWeight > 0 {
			view.Probability = float64(p.Weight) / float64(totalWeight)
		}
		views = append(views, view)
	}
	return c.JSON(http.StatusOK, views)
}

func (s *Server) handlePrizes(c echo.Context) error {
	return c.JSON(http.StatusOK, s.engine.Snapshot().Prizes)
}

// The draw commands below are guarded no-ops inside the engine when issued
// from the wrong phase; the handler always answers with the resulting state.

func (s *Server) handleStartDraw(c echo.Context) error {
	s.engine.StartDraw()
	return c.JSON(http.StatusAccepted, s.engine.Snapshot())
}

func (s *Server) handleAdvanceToPrize(c echo.Context) error {
	s.engine.AdvanceToPrize()
	return c.JSON(http.StatusAccepted, s.engine.Snapshot())
}

func (s *Server) handleAcknowledge(c echo.Context) error {
	s.engine.Acknowledge()
	return c.JSON(http.StatusAccepted, s.engine.Snapshot())
}

func (s *Server) handleResetAll(c echo.Context) error {
	s.engine.ResetAll()
	return c.JSON(http.StatusAccepted, s.engine.Snapshot())
}

func (s *Server) handleHistory(c echo.Context) error {
	return c.JSON(http.StatusOK, s.history.Entries())
}

func (s *Server) handleClearHistory(c echo.Context) error {
	if err := s.history.Clear(); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to clear history")
	}
	return c.NoContent(http.StatusNoContent)
}
