package api

import (
	"errors"
	"net/http"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"github.com/SebastianignacioDS/camino-ahorro/internal/constants"
	"github.com/SebastianignacioDS/camino-ahorro/internal/engine"
	"github.com/SebastianignacioDS/camino-ahorro/internal/game"
	"github.com/SebastianignacioDS/camino-ahorro/internal/logging"
	"github.com/SebastianignacioDS/camino-ahorro/internal/service"
)

type CreateSessionPayload struct {
	Name             string   `json:"name"`
	Mode             string   `json:"mode"`
	ParticipantCount int      `json:"participant_count"`
	RoundCount       int      `json:"round_count"`
	Seed             int64    `json:"seed"`
	ParticipantNames []string `json:"participant_names"`
}

// CreateSession creates a new session and returns its join code.
func (h *SessionHandler) CreateSession(c *gin.Context) {
	var req CreateSessionPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	if utf8.RuneCountInString(req.Name) > 32 {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrSessionNameExceeds})
		return
	}

	cfg := engine.SessionConfig{
		Name:             req.Name,
		Mode:             game.Mode(req.Mode),
		ParticipantCount: req.ParticipantCount,
		RoundCount:       req.RoundCount,
		Seed:             req.Seed,
		ParticipantNames: req.ParticipantNames,
	}
	s, err := service.CreateSession(h.repo, cfg, h.inactivityTimeout)
	if err != nil {
		if errors.Is(err, engine.ErrOutOfRangeConfig) {
			respondCommandError(c, err)
			return
		}
		logging.Error("failed to create session", err, nil)
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedCreate})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"session_id": s.ID,
		"join_code":  s.JoinCode,
	})
}

type EndSessionPayload struct {
	Reason string `json:"reason"`
}

// EndSession aborts the session for everyone. Always legal.
func (h *SessionHandler) EndSession(c *gin.Context) {
	s := h.resolveSession(c)
	if s == nil {
		return
	}
	var req EndSessionPayload
	_ = c.ShouldBindJSON(&req) // optional body

	if _, err := service.EndSession(h.repo, s.ID, req.Reason); err != nil {
		respondCommandError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyMessage: "Session ended"})
}
