package service

import (
	"time"

	"github.com/SebastianignacioDS/camino-ahorro/internal/constants"
	"github.com/SebastianignacioDS/camino-ahorro/internal/engine"
	"github.com/SebastianignacioDS/camino-ahorro/internal/game"
	"github.com/SebastianignacioDS/camino-ahorro/internal/keys"
	"github.com/SebastianignacioDS/camino-ahorro/internal/logging"
	"github.com/SebastianignacioDS/camino-ahorro/internal/storage"
)

// CreateSession validates the setup parameters, builds the roster and
// persists the new session with a fresh join code.
func CreateSession(repo storage.Repository, cfg engine.SessionConfig, timeout time.Duration) (*game.Session, error) {
	if cfg.Seed == 0 {
		// Clients that do not care about reproducibility omit the seed.
		cfg.Seed = time.Now().UnixNano()
	}
	s, err := engine.StartSession(cfg)
	if err != nil {
		return nil, err
	}
	s.JoinCode = keys.NewJoinCode()
	s.ActionDeadline = time.Now().Add(timeout)
	if err := repo.CreateSession(s); err != nil {
		return nil, err
	}
	logging.Info("session created", logging.Fields{
		constants.LogFieldSessionID: s.ID,
		constants.LogFieldJoinCode:  s.JoinCode,
		"mode":                      s.Mode,
		"participants":              len(s.Participants),
		"rounds":                    s.RoundCount,
	})
	return s, nil
}
