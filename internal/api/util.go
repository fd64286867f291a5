package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SebastianignacioDS/camino-ahorro/internal/constants"
	"github.com/SebastianignacioDS/camino-ahorro/internal/engine"
	"github.com/SebastianignacioDS/camino-ahorro/internal/game"
	"github.com/SebastianignacioDS/camino-ahorro/internal/keys"
	"github.com/SebastianignacioDS/camino-ahorro/internal/service"
)

// resolveSession turns the join-code path parameter into a loaded session.
// Responds with the right status and returns nil when resolution fails.
func (h *SessionHandler) resolveSession(c *gin.Context) *game.Session {
	code := keys.NormalizeJoinCode(c.Param("sessionCode"))
	if code == "" || !keys.ValidJoinCode(code) {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidSessionCode})
		return nil
	}
	s, err := h.repo.FindSessionByJoinCode(code)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrSessionNotFound})
		return nil
	}
	return s
}

// respondCommandError maps engine and service errors to HTTP statuses. All
// engine rejections are client errors: the session is untouched and the
// caller simply re-prompts the user.
func respondCommandError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrSessionNotFound})
	case errors.Is(err, service.ErrSessionFinished):
		c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrSessionFinished})
	case errors.Is(err, engine.ErrInvalidPhaseTransition):
		c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: err.Error()})
	case errors.Is(err, engine.ErrAlreadyDecided),
		errors.Is(err, engine.ErrTooManyOptions),
		errors.Is(err, engine.ErrInsufficientFunds),
		errors.Is(err, engine.ErrMissingInvestmentAmount),
		errors.Is(err, engine.ErrOutOfRangeConfig),
		errors.Is(err, engine.ErrUnknownOption),
		errors.Is(err, engine.ErrUnknownChoice),
		errors.Is(err, engine.ErrInvestNotSelected):
		c.JSON(http.StatusUnprocessableEntity, gin.H{constants.JSONKeyError: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedUpdate})
	}
}
