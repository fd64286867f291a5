package engine

import "github.com/SebastianignacioDS/camino-ahorro/internal/game"

// Economic model: pure functions computing costs, yields, appreciation and
// depreciation for each allocation option, independent of phase logic.

const (
	// Starting endowments. Choice A trades a large endowment for low income,
	// choice B the opposite. These are the only two valid starting tuples.
	ChoiceAMoney  = 1000
	ChoiceAIncome = 150
	ChoiceBMoney  = 500
	ChoiceBIncome = 300

	CarCost        = 150
	CarRoundIncome = 100

	HouseCost                = 300
	HouseAppreciationPercent = 20

	StudyCost       = 50
	GraduationBonus = 50

	// Loan is a credit, not a cost: it adds to available funds at commit
	// time and accrues interest on the outstanding principal per round.
	LoanCredit          = 500
	LoanInterestPercent = 10
)

// StudyLadder is the per-round study income indexed by elapsed rounds. After
// the ladder completes the participant graduates and earns the one-time bonus.
var StudyLadder = [4]int{25, 50, 100, 200}

// StartingTuple returns the endowment for an initial choice.
func StartingTuple(c game.InitialChoice) (money, perRoundIncome int, ok bool) {
	switch c {
	case game.ChoiceA:
		return ChoiceAMoney, ChoiceAIncome, true
	case game.ChoiceB:
		return ChoiceBMoney, ChoiceBIncome, true
	}
	return 0, 0, false
}

// OptionCost returns the up-front cost of an option at confirmation time.
// Invest costs the player-chosen amount and Loan is a credit, so both return
// zero here and are handled explicitly by the caller.
func OptionCost(opt game.Option) int {
	switch opt {
	case game.OptionCar:
		return CarCost
	case game.OptionHouse:
		return HouseCost
	case game.OptionStudy:
		return StudyCost
	}
	return 0
}

// RemainingMoney computes the funds left after a pending, uncommitted
// selection: money minus option costs and the entered investment amount,
// plus the loan credit when Loan is pending. May be negative; the validator
// rejects any transition that would commit a negative balance.
func RemainingMoney(money int, pending []game.Option, pendingInvestment int) int {
	remaining := money
	for _, opt := range pending {
		switch opt {
		case game.OptionLoan:
			remaining += LoanCredit
		case game.OptionInvest:
			remaining -= pendingInvestment
		default:
			remaining -= OptionCost(opt)
		}
	}
	return remaining
}

// percentOf returns pct% of v, truncated toward zero. All engine money math
// stays in integers.
func percentOf(v, pct int) int { return v * pct / 100 }

// NetWorth is the final score of a participant: liquid money plus the value
// of house and investment, minus the outstanding loan liability.
func NetWorth(p *game.Participant) int {
	return p.Money + p.Round1.HouseValue + p.Round1.InvestmentValue - p.Round1.LoanOutstanding
}
