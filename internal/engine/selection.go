package engine

import "github.com/SebastianignacioDS/camino-ahorro/internal/game"

// MaxSelections is the ceiling on round-1 options per participant.
const MaxSelections = 3

// ToggleOption adds or removes an option from the active participant's
// pending (uncommitted) selection. Adding is rejected when it would exceed
// the option ceiling or when the resulting pending cost exceeds current
// money. Removing is always legal and restores the set to its prior value.
func ToggleOption(s *game.Session, opt game.Option) error {
	if s.Phase != game.PhaseRound1Selection {
		return ErrInvalidPhaseTransition
	}
	p := s.ActiveParticipant()
	if p == nil {
		return ErrInvalidPhaseTransition
	}

	pending := p.PendingSet()
	for i, o := range pending {
		if o == opt {
			pending = append(pending[:i], pending[i+1:]...)
			p.SetPendingSet(pending)
			if opt == game.OptionInvest {
				p.PendingInvestment = 0
			}
			return nil
		}
	}

	if len(pending) >= MaxSelections {
		return ErrTooManyOptions
	}
	next := append(pending, opt)
	// Invest contributes whatever amount is currently entered; the amount
	// itself is validated again on confirmation.
	if RemainingMoney(p.Money, next, p.PendingInvestment) < 0 {
		return ErrInsufficientFunds
	}
	p.SetPendingSet(next)
	return nil
}

// SetInvestmentAmount records the amount to invest. Legal only while Invest
// is part of the pending set; the amount must be positive and fit inside the
// money remaining after the other pending options.
func SetInvestmentAmount(s *game.Session, amount int) error {
	if s.Phase != game.PhaseRound1Selection {
		return ErrInvalidPhaseTransition
	}
	p := s.ActiveParticipant()
	if p == nil {
		return ErrInvalidPhaseTransition
	}
	if !p.HasPending(game.OptionInvest) {
		return ErrInvestNotSelected
	}
	if amount <= 0 {
		return ErrMissingInvestmentAmount
	}
	// Remaining money with the investment contribution zeroed out: the new
	// amount must fit in what the other options leave over.
	if amount > RemainingMoney(p.Money, p.PendingSet(), 0) {
		return ErrInsufficientFunds
	}
	p.PendingInvestment = amount
	return nil
}

// ConfirmSelections commits the active participant's pending selection:
// costs and credits are applied to the ledger, derived option state is
// recorded, and the turn passes. An empty pending set is a valid "do
// nothing". After the last participant confirms, the random-event pass runs
// for the whole roster and the session enters the event phase.
func ConfirmSelections(s *game.Session) error {
	if s.Phase != game.PhaseRound1Selection {
		return ErrInvalidPhaseTransition
	}
	p := s.ActiveParticipant()
	if p == nil {
		return ErrInvalidPhaseTransition
	}

	pending := p.PendingSet()
	if hasOption(pending, game.OptionInvest) && p.PendingInvestment <= 0 {
		return ErrMissingInvestmentAmount
	}
	remaining := RemainingMoney(p.Money, pending, p.PendingInvestment)
	if remaining < 0 {
		return ErrInsufficientFunds
	}

	// Commit: all-or-nothing. Validation is complete, so from here on every
	// mutation must succeed.
	p.Money = remaining
	p.Round1 = game.Round1Data{Options: ""}
	p.Round1.Options = p.PendingOptions
	for _, opt := range pending {
		switch opt {
		case game.OptionCar:
			p.Round1.CarIncome = CarRoundIncome
		case game.OptionHouse:
			p.Round1.HouseValue = HouseCost
		case game.OptionStudy:
			p.Round1.StudyLevel = 0
		case game.OptionInvest:
			p.Round1.InvestmentValue = p.PendingInvestment
		case game.OptionLoan:
			p.Round1.LoanAmount = LoanCredit
			p.Round1.LoanOutstanding = LoanCredit
		}
	}
	p.PendingOptions = ""
	p.PendingInvestment = 0
	p.HasConfirmed = true

	if advanceParticipant(s) {
		resolveEvents(s)
		s.Phase = game.PhaseRandomEvent
		s.Message = "Round 1 committed. Resolving what fate has in store..."
	}
	return nil
}

func hasOption(opts []game.Option, opt game.Option) bool {
	for _, o := range opts {
		if o == opt {
			return true
		}
	}
	return false
}
