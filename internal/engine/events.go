package engine

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/SebastianignacioDS/camino-ahorro/internal/game"
)

// Fixed outcome tables for the random-event pass. The monetary delta of the
// percentage-based outcomes depends on the participant's committed round-1
// data, so the table stores closures over that data.
type eventOutcome struct {
	emoji     string
	narrative string
	amount    func(d *game.Round1Data) int
}

var positiveOutcomes = map[game.Option]eventOutcome{
	game.OptionCar: {"🚗", "Ride-share income: a week of paying passengers", func(d *game.Round1Data) int {
		return 100
	}},
	game.OptionHouse: {"🏡", "The neighborhood improves and your house gains value", func(d *game.Round1Data) int {
		return percentOf(d.HouseValue, 30)
	}},
	game.OptionStudy: {"🎓", "Scholarship awarded for good grades", func(d *game.Round1Data) int {
		return 100
	}},
	game.OptionInvest: {"📈", "The market rallies", func(d *game.Round1Data) int {
		return percentOf(d.InvestmentValue, 15)
	}},
	game.OptionLoan: {"🏦", "Bank bonus for good repayment behavior", func(d *game.Round1Data) int {
		return 200
	}},
}

var negativeOutcomes = map[game.Option]eventOutcome{
	game.OptionCar: {"🚓", "Speeding fine", func(d *game.Round1Data) int {
		return -100
	}},
	game.OptionHouse: {"🔧", "Unexpected repairs", func(d *game.Round1Data) int {
		return -50
	}},
	game.OptionStudy: {"📚", "Failed a course and paid retake fees", func(d *game.Round1Data) int {
		return -50
	}},
	game.OptionInvest: {"📉", "The market dips", func(d *game.Round1Data) int {
		return -percentOf(d.InvestmentValue, 10)
	}},
	game.OptionLoan: {"⏰", "Late-payment penalty", func(d *game.Round1Data) int {
		return -100
	}},
}

// resolveEvents assigns exactly one event to every participant with a
// non-empty committed selection, and none to participants who did nothing.
// The pass walks the roster in order and draws from a generator seeded with
// the session's fixed seed, so an identical roster and seed always yields
// identical events.
func resolveEvents(s *game.Session) {
	rng := rand.New(rand.NewSource(s.RNGSeed))
	summary := make([]string, 0, len(s.Participants))
	for i := range s.Participants {
		p := &s.Participants[i]
		committed := p.Round1.OptionSet()
		if len(committed) == 0 {
			continue
		}
		category := committed[rng.Intn(len(committed))]
		positive := rng.Intn(2) == 0
		table := negativeOutcomes
		if positive {
			table = positiveOutcomes
		}
		outcome := table[category]
		ev := game.EventRecord{
			Round:     s.CurrentRound,
			Category:  category,
			Positive:  positive,
			Amount:    outcome.amount(&p.Round1),
			Emoji:     outcome.emoji,
			Narrative: outcome.narrative,
		}
		p.Events = append(p.Events, ev)
		summary = append(summary, fmt.Sprintf("%s %s — %s: %+d", ev.Emoji, p.Name, ev.Narrative, ev.Amount))
	}
	s.LastEventSummary = strings.Join(summary, "\n")
}

// AdvanceEvent applies the active participant's resolved event delta to the
// ledger and passes the turn. Participants without an event are skipped in
// the same step. When the roster is exhausted the session enters the playing
// phase for the remaining rounds.
func AdvanceEvent(s *game.Session) error {
	if s.Phase != game.PhaseRandomEvent {
		return ErrInvalidPhaseTransition
	}
	p := s.ActiveParticipant()
	if p == nil {
		return ErrInvalidPhaseTransition
	}

	if ev := unappliedEvent(p); ev != nil {
		p.Money += ev.Amount
		// Committed money never goes below zero; losses bottom out.
		if p.Money < 0 {
			p.Money = 0
		}
		ev.Applied = true
	}

	if advanceParticipant(s) {
		s.Phase = game.PhasePlaying
		s.Message = "Events resolved. The road continues."
	}
	return nil
}

func unappliedEvent(p *game.Participant) *game.EventRecord {
	for i := range p.Events {
		if !p.Events[i].Applied {
			return &p.Events[i]
		}
	}
	return nil
}
