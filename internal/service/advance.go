package service

import (
	"time"

	"github.com/SebastianignacioDS/camino-ahorro/internal/constants"
	"github.com/SebastianignacioDS/camino-ahorro/internal/engine"
	"github.com/SebastianignacioDS/camino-ahorro/internal/game"
	"github.com/SebastianignacioDS/camino-ahorro/internal/logging"
)

// AdvanceEvent applies the active participant's resolved random event.
func AdvanceEvent(repo SessionRepo, sessionID uint, timeout time.Duration) (*game.Session, error) {
	return mutate(repo, sessionID, timeout, engine.AdvanceEvent)
}

// AdvanceRound plays one full accrual round for the roster. When the last
// round completes the session finishes and final scores are recorded on the
// leaderboard.
func AdvanceRound(repo ScoreRepo, sessionID uint, timeout time.Duration) (*game.Session, error) {
	return mutate(repo, sessionID, timeout, func(s *game.Session) error {
		if err := engine.AdvanceRound(s); err != nil {
			return err
		}
		if s.Phase == game.PhaseFinished && !s.ScoresCounted {
			if err := repo.SaveScores(finalScores(s)); err != nil {
				// Scores are a side ledger; a failed write must not undo
				// the finished session.
				logging.Error("failed to record final scores", err, logging.Fields{
					constants.LogFieldSessionID: s.ID,
				})
			} else {
				s.ScoresCounted = true
			}
		}
		return nil
	})
}

func finalScores(s *game.Session) []game.ScoreEntry {
	entries := make([]game.ScoreEntry, 0, len(s.Participants))
	for i := range s.Participants {
		p := &s.Participants[i]
		entries = append(entries, game.ScoreEntry{
			SessionID:       s.ID,
			SessionName:     s.Name,
			ParticipantName: p.Name,
			Mode:            s.Mode,
			NetWorth:        engine.NetWorth(p),
			Winner:          p.Name == s.Winner,
		})
	}
	return entries
}
