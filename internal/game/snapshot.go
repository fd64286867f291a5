package game

// Snapshot is the immutable read-only view of a session handed to the
// presentation layer. It contains only value types and fresh slices, so a
// renderer can hold it without observing later engine mutations.
type Snapshot struct {
	JoinCode                string            `json:"join_code"`
	Name                    string            `json:"name"`
	Mode                    Mode              `json:"mode"`
	Phase                   Phase             `json:"phase"`
	RoundCount              int               `json:"round_count"`
	CurrentRound            int               `json:"current_round"`
	CurrentParticipantIndex int               `json:"current_participant_index"`
	Participants            []ParticipantView `json:"participants"`
	Winner                  string            `json:"winner"`
	Message                 string            `json:"message"`
	LastEventSummary        string            `json:"last_event_summary"`
}

// ParticipantView mirrors Participant without the ORM bookkeeping.
type ParticipantView struct {
	PublicID          string          `json:"public_id"`
	Name              string          `json:"name"`
	Kind              ParticipantKind `json:"kind"`
	Money             int             `json:"money"`
	InitialChoice     InitialChoice   `json:"initial_choice"`
	PerRoundIncome    int             `json:"per_round_income"`
	PendingOptions    []Option        `json:"pending_options"`
	PendingInvestment int             `json:"pending_investment"`
	HasConfirmed      bool            `json:"has_confirmed"`
	Round1            Round1View      `json:"round1_data"`
	Events            []EventView     `json:"event_history"`
}

// Round1View is the committed round-1 state of one participant.
type Round1View struct {
	Options         []Option `json:"options"`
	CarIncome       int      `json:"car_income"`
	HouseValue      int      `json:"house_value"`
	StudyLevel      int      `json:"study_level"`
	StudyGraduated  bool     `json:"study_graduated"`
	InvestmentValue int      `json:"investment_value"`
	LoanAmount      int      `json:"loan_amount"`
	LoanOutstanding int      `json:"loan_outstanding"`
	LoanInterest    int      `json:"loan_interest"`
}

// EventView is a resolved random event as exposed to renderers.
type EventView struct {
	Round     int    `json:"round"`
	Category  Option `json:"category"`
	Positive  bool   `json:"positive"`
	Amount    int    `json:"amount"`
	Emoji     string `json:"emoji"`
	Narrative string `json:"narrative"`
	Applied   bool   `json:"applied"`
}
