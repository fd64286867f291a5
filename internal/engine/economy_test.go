package engine

import (
	"testing"

	"github.com/SebastianignacioDS/camino-ahorro/internal/game"
)

func TestStartingTuple(t *testing.T) {
	if m, i, ok := StartingTuple(game.ChoiceA); !ok || m != 1000 || i != 150 {
		t.Fatalf("choice A: got (%d,%d,%v)", m, i, ok)
	}
	if m, i, ok := StartingTuple(game.ChoiceB); !ok || m != 500 || i != 300 {
		t.Fatalf("choice B: got (%d,%d,%v)", m, i, ok)
	}
	if _, _, ok := StartingTuple(game.ChoiceUnset); ok {
		t.Fatalf("unset choice must not resolve")
	}
}

func TestRemainingMoney(t *testing.T) {
	cases := []struct {
		name    string
		money   int
		pending []game.Option
		invest  int
		want    int
	}{
		{"empty", 1000, nil, 0, 1000},
		{"car and study", 1000, []game.Option{game.OptionCar, game.OptionStudy}, 0, 800},
		{"loan is a credit", 500, []game.Option{game.OptionLoan}, 0, 1000},
		{"invest uses entered amount", 1000, []game.Option{game.OptionInvest}, 400, 600},
		{"loan funds other options", 100, []game.Option{game.OptionLoan, game.OptionHouse}, 0, 300},
		{"can go negative", 100, []game.Option{game.OptionHouse}, 0, -200},
	}
	for _, tc := range cases {
		if got := RemainingMoney(tc.money, tc.pending, tc.invest); got != tc.want {
			t.Fatalf("%s: got %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestPercentOfTruncates(t *testing.T) {
	if got := percentOf(333, 20); got != 66 {
		t.Fatalf("got %d, want 66", got)
	}
	if got := percentOf(0, 30); got != 0 {
		t.Fatalf("got %d, want 0", got)
	}
}

func TestNetWorth(t *testing.T) {
	p := &game.Participant{Money: 700}
	p.Round1 = game.Round1Data{HouseValue: 360, InvestmentValue: 200, LoanOutstanding: 550}
	if got := NetWorth(p); got != 710 {
		t.Fatalf("got %d, want 710", got)
	}
}
