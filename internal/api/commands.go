package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SebastianignacioDS/camino-ahorro/internal/constants"
	"github.com/SebastianignacioDS/camino-ahorro/internal/engine"
	"github.com/SebastianignacioDS/camino-ahorro/internal/game"
	"github.com/SebastianignacioDS/camino-ahorro/internal/service"
)

type ChoicePayload struct {
	Choice string `json:"choice"`
}

// ChooseInitial records the active participant's A/B endowment decision.
func (h *SessionHandler) ChooseInitial(c *gin.Context) {
	s := h.resolveSession(c)
	if s == nil {
		return
	}
	var req ChoicePayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	s2, err := service.ChooseInitial(h.repo, s.ID, game.InitialChoice(req.Choice), h.inactivityTimeout)
	if err != nil {
		respondCommandError(c, err)
		return
	}
	c.JSON(http.StatusOK, engine.Snapshot(s2))
}

// Acknowledge advances past the round-1 introduction screen.
func (h *SessionHandler) Acknowledge(c *gin.Context) {
	s := h.resolveSession(c)
	if s == nil {
		return
	}
	s2, err := service.Acknowledge(h.repo, s.ID, h.inactivityTimeout)
	if err != nil {
		respondCommandError(c, err)
		return
	}
	c.JSON(http.StatusOK, engine.Snapshot(s2))
}

type TogglePayload struct {
	Option string `json:"option"`
}

// ToggleOption adds/removes a pending round-1 option for the active
// participant.
func (h *SessionHandler) ToggleOption(c *gin.Context) {
	s := h.resolveSession(c)
	if s == nil {
		return
	}
	var req TogglePayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	opt, ok := game.ParseOption(req.Option)
	if !ok {
		respondCommandError(c, engine.ErrUnknownOption)
		return
	}
	s2, err := service.ToggleOption(h.repo, s.ID, opt, h.inactivityTimeout)
	if err != nil {
		respondCommandError(c, err)
		return
	}
	c.JSON(http.StatusOK, engine.Snapshot(s2))
}

type InvestmentPayload struct {
	Amount int `json:"amount"`
}

// SetInvestmentAmount records the amount the active participant invests.
func (h *SessionHandler) SetInvestmentAmount(c *gin.Context) {
	s := h.resolveSession(c)
	if s == nil {
		return
	}
	var req InvestmentPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	s2, err := service.SetInvestmentAmount(h.repo, s.ID, req.Amount, h.inactivityTimeout)
	if err != nil {
		respondCommandError(c, err)
		return
	}
	c.JSON(http.StatusOK, engine.Snapshot(s2))
}

// ConfirmSelections commits the active participant's pending selection.
func (h *SessionHandler) ConfirmSelections(c *gin.Context) {
	s := h.resolveSession(c)
	if s == nil {
		return
	}
	s2, resolved, err := service.ConfirmSelections(h.repo, s.ID, h.inactivityTimeout)
	if err != nil {
		respondCommandError(c, err)
		return
	}
	msg := "Selection confirmed. Next participant's turn."
	if resolved {
		msg = "Round 1 committed for everyone. Events resolved."
	}
	c.JSON(http.StatusOK, gin.H{
		constants.JSONKeyMessage: msg,
		"snapshot":               engine.Snapshot(s2),
	})
}

// AdvanceEvent applies the active participant's resolved random event.
func (h *SessionHandler) AdvanceEvent(c *gin.Context) {
	s := h.resolveSession(c)
	if s == nil {
		return
	}
	s2, err := service.AdvanceEvent(h.repo, s.ID, h.inactivityTimeout)
	if err != nil {
		respondCommandError(c, err)
		return
	}
	c.JSON(http.StatusOK, engine.Snapshot(s2))
}

// AdvanceRound plays one accrual round for the whole roster.
func (h *SessionHandler) AdvanceRound(c *gin.Context) {
	s := h.resolveSession(c)
	if s == nil {
		return
	}
	s2, err := service.AdvanceRound(h.repo, s.ID, h.inactivityTimeout)
	if err != nil {
		respondCommandError(c, err)
		return
	}
	c.JSON(http.StatusOK, engine.Snapshot(s2))
}
