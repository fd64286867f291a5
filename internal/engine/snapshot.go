package engine

import "github.com/SebastianignacioDS/camino-ahorro/internal/game"

// Snapshot builds the immutable read-only view of a session. Every slice is
// freshly allocated, so the caller can hand the result to any renderer
// without exposing engine state to mutation.
func Snapshot(s *game.Session) game.Snapshot {
	out := game.Snapshot{
		JoinCode:                s.JoinCode,
		Name:                    s.Name,
		Mode:                    s.Mode,
		Phase:                   s.Phase,
		RoundCount:              s.RoundCount,
		CurrentRound:            s.CurrentRound,
		CurrentParticipantIndex: s.CurrentParticipantIndex,
		Winner:                  s.Winner,
		Message:                 s.Message,
		LastEventSummary:        s.LastEventSummary,
		Participants:            make([]game.ParticipantView, len(s.Participants)),
	}
	for i := range s.Participants {
		p := &s.Participants[i]
		view := game.ParticipantView{
			PublicID:          p.PublicID,
			Name:              p.Name,
			Kind:              p.Kind,
			Money:             p.Money,
			InitialChoice:     p.InitialChoice,
			PerRoundIncome:    p.PerRoundIncome,
			PendingOptions:    p.PendingSet(),
			PendingInvestment: p.PendingInvestment,
			HasConfirmed:      p.HasConfirmed,
			Round1: game.Round1View{
				Options:         p.Round1.OptionSet(),
				CarIncome:       p.Round1.CarIncome,
				HouseValue:      p.Round1.HouseValue,
				StudyLevel:      p.Round1.StudyLevel,
				StudyGraduated:  p.Round1.StudyGraduated,
				InvestmentValue: p.Round1.InvestmentValue,
				LoanAmount:      p.Round1.LoanAmount,
				LoanOutstanding: p.Round1.LoanOutstanding,
				LoanInterest:    p.Round1.LoanInterest,
			},
			Events: make([]game.EventView, len(p.Events)),
		}
		for j := range p.Events {
			ev := &p.Events[j]
			view.Events[j] = game.EventView{
				Round:     ev.Round,
				Category:  ev.Category,
				Positive:  ev.Positive,
				Amount:    ev.Amount,
				Emoji:     ev.Emoji,
				Narrative: ev.Narrative,
				Applied:   ev.Applied,
			}
		}
		out.Participants[i] = view
	}
	return out
}
