package engine

import (
	"fmt"

	"github.com/SebastianignacioDS/camino-ahorro/internal/game"
)

// AdvanceRound plays out one full round for the whole roster: per-round
// income, car income, house appreciation, study-ladder progression and loan
// interest accrual. After the configured number of rounds the session
// finishes and the final ranking is computed.
func AdvanceRound(s *game.Session) error {
	if s.Phase != game.PhasePlaying {
		return ErrInvalidPhaseTransition
	}

	s.CurrentRound++
	for i := range s.Participants {
		accrueRound(&s.Participants[i])
	}

	if s.CurrentRound >= s.RoundCount {
		finishSession(s)
		return nil
	}
	s.Message = fmt.Sprintf("Round %d of %d complete.", s.CurrentRound, s.RoundCount)
	return nil
}

// accrueRound applies one round of income and asset movement to a single
// participant. All gains are non-negative, so the money invariant holds
// without clamping.
func accrueRound(p *game.Participant) {
	p.Money += p.PerRoundIncome

	d := &p.Round1
	if d.Has(game.OptionCar) {
		p.Money += d.CarIncome
	}
	if d.Has(game.OptionHouse) {
		d.HouseValue += percentOf(d.HouseValue, HouseAppreciationPercent)
	}
	if d.Has(game.OptionStudy) && !d.StudyGraduated {
		if d.StudyLevel < len(StudyLadder) {
			p.Money += StudyLadder[d.StudyLevel]
			d.StudyLevel++
		}
		if d.StudyLevel >= len(StudyLadder) {
			// The ladder is complete: pay the one-time graduation bonus.
			p.Money += GraduationBonus
			d.StudyGraduated = true
		}
	}
	if d.Has(game.OptionLoan) && d.LoanOutstanding > 0 {
		interest := percentOf(d.LoanOutstanding, LoanInterestPercent)
		d.LoanInterest += interest
		d.LoanOutstanding += interest
	}
}

// finishSession ranks the roster by net worth and closes the session. Ties
// go to the earlier roster position.
func finishSession(s *game.Session) {
	s.Phase = game.PhaseFinished
	best := -1
	winner := ""
	for i := range s.Participants {
		if nw := NetWorth(&s.Participants[i]); nw > best {
			best = nw
			winner = s.Participants[i].Name
		}
	}
	s.Winner = winner
	s.Message = fmt.Sprintf("The road ends. %s finishes with the highest net worth (%d).", winner, best)
}
