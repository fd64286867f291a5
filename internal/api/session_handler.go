package api

import (
	"time"

	"github.com/SebastianignacioDS/camino-ahorro/internal/storage"
)

// SessionHandler groups all session-related HTTP handlers.
type SessionHandler struct {
	repo              storage.Repository
	inactivityTimeout time.Duration
}

// NewSessionHandler creates a SessionHandler with the given repository and
// configured per-command inactivity timeout.
func NewSessionHandler(repo storage.Repository, inactivityTimeout time.Duration) *SessionHandler {
	return &SessionHandler{repo: repo, inactivityTimeout: inactivityTimeout}
}
