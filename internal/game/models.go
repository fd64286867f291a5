package game

import (
	"time"

	"gorm.io/gorm"
)

// Session is the aggregate root of one run of "El Camino del Ahorro". The
// session and its participants are mutated only through engine operations.
// Reads go through the Snapshot built from it; the recent-sessions listing
// serializes the aggregate itself with internal fields hidden.
type Session struct {
	gorm.Model
	Name     string `json:"name" gorm:"size:32"`
	JoinCode string `json:"join_code" gorm:"unique"`
	Mode     Mode   `json:"mode"`
	Phase    Phase  `json:"phase"`
	// RoundCount is the configured number of rounds (3-7). CurrentRound is
	// 1-based; round 1 is the allocation round, later rounds accrue income.
	RoundCount   int `json:"round_count"`
	CurrentRound int `json:"current_round"`
	// CurrentParticipantIndex points at the participant whose turn it is in
	// the current phase. Exactly one participant is active at any moment.
	CurrentParticipantIndex int `json:"current_participant_index"`
	// RNGSeed makes the random-event pass reproducible. It is fixed at
	// session start and never changes. Hidden from JSON so clients cannot
	// predict event outcomes from the session listing.
	RNGSeed          int64         `json:"-"`
	Participants     []Participant `json:"participants"`
	Winner           string        `json:"winner"`
	Message          string        `json:"message"`
	LastEventSummary string        `json:"last_event_summary"`
	ScoresCounted    bool          `json:"-"`
	// ActionDeadline marks when the session expires if no command arrives.
	// The inactivity scanner claims and aborts sessions past this deadline.
	ActionDeadline time.Time `json:"action_deadline"`
	ClaimedBy      string    `json:"-"`
	ClaimedAt      time.Time `json:"-"`
}

// Store sessions in a dedicated table name matching the product.
func (Session) TableName() string { return "savings_sessions" }

// Active reports whether the session still accepts commands.
func (s *Session) Active() bool { return s.Phase != PhaseFinished }

// ActiveParticipant returns the participant whose turn it is, or nil when the
// index is out of range (finished or malformed session).
func (s *Session) ActiveParticipant() *Participant {
	if s.CurrentParticipantIndex < 0 || s.CurrentParticipantIndex >= len(s.Participants) {
		return nil
	}
	return &s.Participants[s.CurrentParticipantIndex]
}

// Participant is a player or team with an independent money ledger and
// decision history. The two kinds behave identically inside the engine.
type Participant struct {
	gorm.Model
	SessionID uint            `json:"-"`
	PublicID  string          `json:"public_id" gorm:"size:36"`
	Name      string          `json:"name"`
	Kind      ParticipantKind `json:"kind"`
	// Money is the committed liquid balance. The engine never commits a
	// negative value; shortfalls are rejected during validation instead.
	Money int `json:"money"`
	// InitialChoice is set exactly once during the initial-decision phase
	// and is immutable afterwards. PerRoundIncome derives from it.
	InitialChoice  InitialChoice `json:"initial_choice"`
	PerRoundIncome int           `json:"per_round_income"`
	// PendingOptions holds the uncommitted round-1 selection as a
	// comma-joined list (single DB column; see joinOptions). It is cleared
	// on confirmation, when its contents move into Round1.
	PendingOptions    string        `json:"pending_options" gorm:"size:64"`
	PendingInvestment int           `json:"pending_investment"`
	HasConfirmed      bool          `json:"has_confirmed"`
	Round1            Round1Data    `json:"round1_data" gorm:"embedded;embeddedPrefix:round1_"`
	Events            []EventRecord `json:"event_history"`
}

// Store per-session participants in a dedicated table for clarity.
func (Participant) TableName() string { return "session_participants" }

// PendingSet returns the uncommitted selection as a slice, in toggle order.
func (p *Participant) PendingSet() []Option { return splitOptions(p.PendingOptions) }

// SetPendingSet replaces the uncommitted selection.
func (p *Participant) SetPendingSet(opts []Option) { p.PendingOptions = joinOptions(opts) }

// HasPending reports whether opt is part of the uncommitted selection.
func (p *Participant) HasPending(opt Option) bool {
	for _, o := range p.PendingSet() {
		if o == opt {
			return true
		}
	}
	return false
}

// Round1Data is the option-specific derived state produced when a round-1
// selection is confirmed. Fields are populated only for committed options.
type Round1Data struct {
	// Options is the committed selection, comma-joined like PendingOptions.
	Options string `json:"options" gorm:"size:64"`
	// Car: recurring income per round, recorded at commit, paid from round 2.
	CarIncome int `json:"car_income"`
	// House: current value; appreciates 20% per round from its initial 300.
	HouseValue int `json:"house_value"`
	// Study: index into the study income ladder, plus the one-time
	// graduation bonus flag.
	StudyLevel     int  `json:"study_level"`
	StudyGraduated bool `json:"study_graduated"`
	// Invest: committed principal; revalued only through random events.
	InvestmentValue int `json:"investment_value"`
	// Loan: the original credit and the outstanding liability. Interest
	// accrues on the outstanding principal and is recorded, not deducted.
	LoanAmount      int `json:"loan_amount"`
	LoanOutstanding int `json:"loan_outstanding"`
	LoanInterest    int `json:"loan_interest"`
}

// OptionSet returns the committed selection as a slice.
func (d *Round1Data) OptionSet() []Option { return splitOptions(d.Options) }

// Has reports whether opt was committed.
func (d *Round1Data) Has(opt Option) bool {
	for _, o := range d.OptionSet() {
		if o == opt {
			return true
		}
	}
	return false
}

// EventRecord is a single resolved random event for one participant. At most
// one record exists per participant per event pass.
type EventRecord struct {
	gorm.Model
	ParticipantID uint   `json:"-"`
	Round         int    `json:"round"`
	Category      Option `json:"category"`
	Positive      bool   `json:"positive"`
	// Amount is the signed monetary delta; it is applied to the ledger when
	// the session controller processes the event, not when it is resolved.
	Amount    int    `json:"amount"`
	Emoji     string `json:"emoji"`
	Narrative string `json:"narrative"`
	Applied   bool   `json:"applied"`
}

func (EventRecord) TableName() string { return "session_events" }

// ScoreEntry stores a participant's final net worth when a session finishes
// normally. It feeds the leaderboard and survives session deletion.
type ScoreEntry struct {
	gorm.Model
	SessionID       uint   `json:"-"`
	SessionName     string `json:"session_name"`
	ParticipantName string `json:"participant_name"`
	Mode            Mode   `json:"mode"`
	NetWorth        int    `json:"net_worth"`
	Winner          bool   `json:"winner"`
}

func (ScoreEntry) TableName() string { return "leaderboard_scores" }
