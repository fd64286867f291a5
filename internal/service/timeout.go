package service

import (
	"time"

	"github.com/SebastianignacioDS/camino-ahorro/internal/constants"
	"github.com/SebastianignacioDS/camino-ahorro/internal/engine"
	"github.com/SebastianignacioDS/camino-ahorro/internal/game"
	"github.com/SebastianignacioDS/camino-ahorro/internal/logging"
)

// HandleTimedOutSession aborts a session whose action deadline has passed.
// The scanner claims IDs first, so concurrent workers never both abort the
// same session.
func HandleTimedOutSession(repo SessionRepo, s *game.Session) error {
	if !s.Active() {
		return nil
	}
	if s.ActionDeadline.IsZero() || s.ActionDeadline.After(time.Now()) {
		return nil
	}
	phase := s.Phase
	engine.Abort(s, "Session ended due to inactivity.")
	s.ActionDeadline = time.Time{}
	logging.Info("session expired due to inactivity", logging.Fields{
		constants.LogFieldSessionID: s.ID,
		constants.LogFieldJoinCode:  s.JoinCode,
		constants.LogFieldPhase:     phase,
	})
	return repo.UpdateSession(s)
}
