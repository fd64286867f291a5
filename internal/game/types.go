package game

import "strings"

// Phase is a named stage of the session state machine. Using a dedicated
// string type instead of plain string makes code safer and self-documenting.
type Phase string

const (
	PhaseSetup           Phase = "setup"
	PhaseInitialDecision Phase = "initial_decision"
	PhaseRound1Intro     Phase = "round1_intro"
	PhaseRound1Selection Phase = "round1_selection"
	PhaseRandomEvent     Phase = "random_event"
	PhasePlaying         Phase = "playing"
	PhaseFinished        Phase = "finished"
)

// Mode selects between individual players and teams. The two modes share the
// same participant shape; they differ only in display label and roster bounds.
type Mode string

const (
	ModeIndividual Mode = "individual"
	ModeTeam       Mode = "team"
)

// ParticipantKind tags a participant as a single player or a group.
type ParticipantKind string

const (
	KindPlayer ParticipantKind = "player"
	KindTeam   ParticipantKind = "team"
)

// InitialChoice is the one-time A/B endowment decision made before round 1.
type InitialChoice string

const (
	ChoiceUnset InitialChoice = ""
	ChoiceA     InitialChoice = "A"
	ChoiceB     InitialChoice = "B"
)

// Option is one of the round-1 allocation options.
type Option string

const (
	OptionCar    Option = "car"
	OptionHouse  Option = "house"
	OptionStudy  Option = "study"
	OptionInvest Option = "invest"
	OptionLoan   Option = "loan"
)

// AllOptions lists the selectable round-1 options in canonical order.
var AllOptions = []Option{OptionCar, OptionHouse, OptionStudy, OptionInvest, OptionLoan}

// ParseOption normalizes a wire value into an Option. Returns false when the
// value is not a known option.
func ParseOption(s string) (Option, bool) {
	o := Option(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range AllOptions {
		if o == known {
			return o, true
		}
	}
	return "", false
}

// joinOptions / splitOptions convert between an option slice and the
// comma-joined form stored in a single DB column. Order is preserved so the
// pending set round-trips exactly as the participant built it.
func joinOptions(opts []Option) string {
	if len(opts) == 0 {
		return ""
	}
	parts := make([]string, len(opts))
	for i, o := range opts {
		parts[i] = string(o)
	}
	return strings.Join(parts, ",")
}

func splitOptions(s string) []Option {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	opts := make([]Option, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			continue
		}
		opts = append(opts, Option(p))
	}
	return opts
}
