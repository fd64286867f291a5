package engine

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/SebastianignacioDS/camino-ahorro/internal/game"
)

// Roster bounds per mode and the supported round range.
const (
	IndividualMinParticipants = 2
	IndividualMaxParticipants = 10
	TeamMinParticipants       = 2
	TeamMaxParticipants       = 7
	MinRounds                 = 3
	MaxRounds                 = 7
)

// SessionConfig carries the setup parameters for a new session.
type SessionConfig struct {
	Name             string
	Mode             game.Mode
	ParticipantCount int
	RoundCount       int
	Seed             int64
	// ParticipantNames optionally labels the roster; missing entries get a
	// default "Player N" / "Team N" label.
	ParticipantNames []string
}

// StartSession validates the setup parameters and instantiates the roster
// with empty ledgers. The returned session is already in the
// initial-decision phase with the first participant active.
func StartSession(cfg SessionConfig) (*game.Session, error) {
	min, max := IndividualMinParticipants, IndividualMaxParticipants
	kind := game.KindPlayer
	label := "Player"
	switch cfg.Mode {
	case game.ModeIndividual:
	case game.ModeTeam:
		min, max = TeamMinParticipants, TeamMaxParticipants
		kind = game.KindTeam
		label = "Team"
	default:
		return nil, ErrOutOfRangeConfig
	}
	if cfg.ParticipantCount < min || cfg.ParticipantCount > max {
		return nil, ErrOutOfRangeConfig
	}
	if cfg.RoundCount < MinRounds || cfg.RoundCount > MaxRounds {
		return nil, ErrOutOfRangeConfig
	}

	participants := make([]game.Participant, cfg.ParticipantCount)
	for i := range participants {
		name := ""
		if i < len(cfg.ParticipantNames) {
			name = cfg.ParticipantNames[i]
		}
		if name == "" {
			name = fmt.Sprintf("%s %d", label, i+1)
		}
		participants[i] = game.Participant{
			PublicID: uuid.NewString(),
			Name:     name,
			Kind:     kind,
		}
	}

	return &game.Session{
		Name:                    cfg.Name,
		Mode:                    cfg.Mode,
		Phase:                   game.PhaseInitialDecision,
		RoundCount:              cfg.RoundCount,
		CurrentRound:            1,
		CurrentParticipantIndex: 0,
		RNGSeed:                 cfg.Seed,
		Participants:            participants,
		Message:                 "Session started. Each participant chooses path A or B.",
	}, nil
}

// Acknowledge advances from the round-1 introduction to the selection phase.
// It mutates nothing else.
func Acknowledge(s *game.Session) error {
	if s.Phase != game.PhaseRound1Intro {
		return ErrInvalidPhaseTransition
	}
	s.Phase = game.PhaseRound1Selection
	s.Message = "Round 1: pick up to three options."
	return nil
}

// Abort terminates the session from any phase without further mutation.
func Abort(s *game.Session, reason string) {
	if s.Phase == game.PhaseFinished {
		return
	}
	s.Phase = game.PhaseFinished
	if reason == "" {
		reason = "Session aborted."
	}
	s.Message = reason
}

// advanceParticipant moves the active index forward and reports whether the
// roster was exhausted; in that case the index is reset to 0 so the next
// phase starts from the first participant.
func advanceParticipant(s *game.Session) (exhausted bool) {
	s.CurrentParticipantIndex++
	if s.CurrentParticipantIndex >= len(s.Participants) {
		s.CurrentParticipantIndex = 0
		return true
	}
	return false
}
