package service

import (
	"errors"
	"time"

	"github.com/SebastianignacioDS/camino-ahorro/internal/game"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionFinished = errors.New("session already finished")
)

// SessionRepo is the narrow repository surface the command operations need.
// storage.Repository satisfies it; tests use small mocks.
type SessionRepo interface {
	GetSessionByID(id uint) (*game.Session, error)
	UpdateSession(s *game.Session) error
}

// ScoreRepo extends SessionRepo with leaderboard writes for operations that
// can finish a session.
type ScoreRepo interface {
	SessionRepo
	SaveScores(entries []game.ScoreEntry) error
}

// mutate is the shared validate-then-apply wrapper for commands: load the
// session, run the engine operation, refresh the inactivity deadline and
// persist. A rejected operation persists nothing.
func mutate(repo SessionRepo, sessionID uint, timeout time.Duration, op func(*game.Session) error) (*game.Session, error) {
	s, err := repo.GetSessionByID(sessionID)
	if err != nil || s == nil {
		return nil, ErrSessionNotFound
	}
	if !s.Active() {
		return nil, ErrSessionFinished
	}
	if err := op(s); err != nil {
		return nil, err
	}
	if s.Active() {
		s.ActionDeadline = time.Now().Add(timeout)
	} else {
		s.ActionDeadline = time.Time{}
	}
	if err := repo.UpdateSession(s); err != nil {
		return nil, err
	}
	return s, nil
}
