package engine

import (
	"testing"

	"github.com/SebastianignacioDS/camino-ahorro/internal/game"
)

func TestSnapshot_MirrorsSessionState(t *testing.T) {
	s := sessionWithEvents(t, 5,
		[]game.Option{game.OptionCar, game.OptionInvest},
		[]game.Option{game.OptionLoan},
	)
	s.JoinCode = "TESTCD12"

	snap := Snapshot(s)
	if snap.JoinCode != "TESTCD12" || snap.Phase != game.PhaseRandomEvent {
		t.Fatalf("header fields wrong: %+v", snap)
	}
	if len(snap.Participants) != 2 {
		t.Fatalf("expected 2 participant views")
	}
	v := snap.Participants[0]
	if v.Money != s.Participants[0].Money || v.Round1.InvestmentValue != 200 {
		t.Fatalf("ledger not mirrored: %+v", v)
	}
	if len(v.Events) != 1 || v.Events[0].Category != s.Participants[0].Events[0].Category {
		t.Fatalf("events not mirrored")
	}
	if len(v.Round1.Options) != 2 {
		t.Fatalf("committed options not mirrored: %v", v.Round1.Options)
	}
}

func TestSnapshot_IsDetachedFromSession(t *testing.T) {
	s := sessionWithEvents(t, 5, []game.Option{game.OptionCar}, nil)
	snap := Snapshot(s)

	s.Participants[0].Money = 9999
	s.Participants[0].Events[0].Applied = true
	if snap.Participants[0].Money == 9999 {
		t.Fatalf("snapshot shares participant state with the session")
	}
	if snap.Participants[0].Events[0].Applied {
		t.Fatalf("snapshot shares event state with the session")
	}
}
