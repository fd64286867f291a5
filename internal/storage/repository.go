package storage

import (
	"time"

	"github.com/SebastianignacioDS/camino-ahorro/internal/game"
)

// Repository is the persistence boundary for sessions and scores. The engine
// itself never touches it; the service layer loads a session, runs engine
// operations and persists the result.
type Repository interface {
	CreateSession(s *game.Session) error
	GetSessionByID(id uint) (*game.Session, error)
	FindSessionByJoinCode(code string) (*game.Session, error)
	UpdateSession(s *game.Session) error
	// ListRecentSessions returns sessions created within the TTL window,
	// newest first.
	ListRecentSessions() ([]game.Session, error)

	// Leaderboard
	SaveScores(entries []game.ScoreEntry) error
	GetTopScores(limit int) ([]game.ScoreEntry, error)

	// ClaimTimedOutSessionIDs atomically claims up to limit active sessions
	// whose action deadline is at or before now. A claim expires after
	// claimTTL so a crashed worker does not park sessions forever.
	ClaimTimedOutSessionIDs(now time.Time, limit int, claimTTL time.Duration, workerID string) ([]uint, error)
}
