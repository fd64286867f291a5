package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/SebastianignacioDS/camino-ahorro/internal/constants"
	"github.com/SebastianignacioDS/camino-ahorro/internal/dedupe"
	"github.com/SebastianignacioDS/camino-ahorro/internal/engine"
	"github.com/SebastianignacioDS/camino-ahorro/internal/keys"
	"github.com/SebastianignacioDS/camino-ahorro/internal/logging"
)

// GetSession returns the presentation snapshot for one session. Clients
// poll this endpoint, so concurrent reads for the same join code are
// collapsed through a singleflight group.
func (h *SessionHandler) GetSession(c *gin.Context) {
	code := keys.NormalizeJoinCode(c.Param("sessionCode"))
	if !keys.ValidJoinCode(code) {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidSessionCode})
		return
	}

	v, err, _ := dedupe.SnapshotGroup.Do(keys.SnapshotKey(code), func() (interface{}, error) {
		s, err := h.repo.FindSessionByJoinCode(code)
		if err != nil {
			return nil, err
		}
		return engine.Snapshot(s), nil
	})
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrSessionNotFound})
		return
	}
	c.JSON(http.StatusOK, v)
}

// ListRecentSessions returns sessions created within the configured
// retention window, most recent first.
func (h *SessionHandler) ListRecentSessions(c *gin.Context) {
	sessions, err := h.repo.ListRecentSessions()
	if err != nil {
		logging.Error("failed to list recent sessions", err, nil)
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetch})
		return
	}
	c.JSON(http.StatusOK, sessions)
}

// Leaderboard returns the top final net worths across finished sessions.
func (h *SessionHandler) Leaderboard(c *gin.Context) {
	limit := 10
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
			return
		}
		if n > 100 {
			n = 100
		}
		limit = n
	}
	scores, err := h.repo.GetTopScores(limit)
	if err != nil {
		logging.Error("failed to fetch leaderboard", err, nil)
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedLeaderboard})
		return
	}
	c.JSON(http.StatusOK, scores)
}
