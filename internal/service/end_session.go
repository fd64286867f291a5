package service

import (
	"time"

	"github.com/SebastianignacioDS/camino-ahorro/internal/engine"
	"github.com/SebastianignacioDS/camino-ahorro/internal/game"
)

// EndSession aborts a session from any phase. Aborted sessions never reach
// the leaderboard. Ending an already-finished session is a no-op.
func EndSession(repo SessionRepo, sessionID uint, reason string) (*game.Session, error) {
	s, err := repo.GetSessionByID(sessionID)
	if err != nil || s == nil {
		return nil, ErrSessionNotFound
	}
	if !s.Active() {
		return s, nil
	}
	engine.Abort(s, reason)
	s.ActionDeadline = time.Time{}
	if err := repo.UpdateSession(s); err != nil {
		return nil, err
	}
	return s, nil
}
