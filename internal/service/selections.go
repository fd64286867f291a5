package service

import (
	"time"

	"github.com/SebastianignacioDS/camino-ahorro/internal/engine"
	"github.com/SebastianignacioDS/camino-ahorro/internal/game"
)

// ToggleOption adds or removes a round-1 option from the active
// participant's pending selection.
func ToggleOption(repo SessionRepo, sessionID uint, opt game.Option, timeout time.Duration) (*game.Session, error) {
	return mutate(repo, sessionID, timeout, func(s *game.Session) error {
		return engine.ToggleOption(s, opt)
	})
}

// SetInvestmentAmount records how much the active participant invests.
func SetInvestmentAmount(repo SessionRepo, sessionID uint, amount int, timeout time.Duration) (*game.Session, error) {
	return mutate(repo, sessionID, timeout, func(s *game.Session) error {
		return engine.SetInvestmentAmount(s, amount)
	})
}

// ConfirmSelections commits the active participant's round-1 selection.
// Returns resolved=true when this confirmation was the last one and the
// random-event pass ran for the whole roster.
func ConfirmSelections(repo SessionRepo, sessionID uint, timeout time.Duration) (s *game.Session, resolved bool, err error) {
	s, err = mutate(repo, sessionID, timeout, func(s *game.Session) error {
		return engine.ConfirmSelections(s)
	})
	if err != nil {
		return nil, false, err
	}
	return s, s.Phase == game.PhaseRandomEvent, nil
}
