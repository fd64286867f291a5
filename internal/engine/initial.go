package engine

import "github.com/SebastianignacioDS/camino-ahorro/internal/game"

// ChooseInitial commits the one-time A/B endowment decision for the active
// participant and passes the turn. When the roster is exhausted the session
// advances to the round-1 introduction.
func ChooseInitial(s *game.Session, choice game.InitialChoice) error {
	if s.Phase != game.PhaseInitialDecision {
		return ErrInvalidPhaseTransition
	}
	money, income, ok := StartingTuple(choice)
	if !ok {
		return ErrUnknownChoice
	}
	p := s.ActiveParticipant()
	if p == nil {
		return ErrInvalidPhaseTransition
	}
	if p.InitialChoice != game.ChoiceUnset {
		return ErrAlreadyDecided
	}

	p.InitialChoice = choice
	p.Money = money
	p.PerRoundIncome = income

	if advanceParticipant(s) {
		s.Phase = game.PhaseRound1Intro
		s.Message = "Everyone has chosen a path. Round 1 is about to begin."
	}
	return nil
}
