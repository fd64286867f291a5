package game

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestParseOption(t *testing.T) {
	if opt, ok := ParseOption("  Car \n"); !ok || opt != OptionCar {
		t.Fatalf("got (%v,%v)", opt, ok)
	}
	if _, ok := ParseOption("yacht"); ok {
		t.Fatalf("unknown option must not parse")
	}
	if _, ok := ParseOption(""); ok {
		t.Fatalf("empty option must not parse")
	}
}

func TestPendingSet_PreservesToggleOrder(t *testing.T) {
	p := &Participant{}
	p.SetPendingSet([]Option{OptionStudy, OptionCar, OptionLoan})
	got := p.PendingSet()
	want := []Option{OptionStudy, OptionCar, OptionLoan}
	if len(got) != len(want) {
		t.Fatalf("got %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order lost: got %v", got)
		}
	}
}

func TestSessionJSON_HidesInternalFields(t *testing.T) {
	s := Session{RNGSeed: 42, ScoresCounted: true, ClaimedBy: "worker-1"}
	body, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	for _, hidden := range []string{"rng_seed", "RNGSeed", "claimed_by", "ClaimedBy", "42", "worker-1"} {
		if strings.Contains(string(body), hidden) {
			t.Fatalf("serialized session leaks %q: %s", hidden, body)
		}
	}
}

func TestPendingSet_Empty(t *testing.T) {
	p := &Participant{}
	if got := p.PendingSet(); got != nil {
		t.Fatalf("expected nil for empty pending set, got %v", got)
	}
	p.SetPendingSet(nil)
	if p.PendingOptions != "" {
		t.Fatalf("empty set should store empty string, got %q", p.PendingOptions)
	}
}
