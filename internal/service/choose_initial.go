package service

import (
	"time"

	"github.com/SebastianignacioDS/camino-ahorro/internal/engine"
	"github.com/SebastianignacioDS/camino-ahorro/internal/game"
)

// ChooseInitial applies the active participant's A/B endowment decision.
func ChooseInitial(repo SessionRepo, sessionID uint, choice game.InitialChoice, timeout time.Duration) (*game.Session, error) {
	return mutate(repo, sessionID, timeout, func(s *game.Session) error {
		return engine.ChooseInitial(s, choice)
	})
}

// Acknowledge advances past the round-1 introduction.
func Acknowledge(repo SessionRepo, sessionID uint, timeout time.Duration) (*game.Session, error) {
	return mutate(repo, sessionID, timeout, engine.Acknowledge)
}
