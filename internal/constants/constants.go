package constants

// Centralized constants for routes, JSON keys, API error strings and log
// field names.

// Routes used by the backend router
const (
	RouteAPIPrefix      = "/api"
	RouteSessions       = "/sessions"
	RouteRecentSessions = "/recent-sessions"
	RouteLeaderboard    = "/leaderboard"

	RouteSessionByCode    = "/sessions/:sessionCode"
	RouteSessionChoice    = "/sessions/:sessionCode/choice"
	RouteSessionAck       = "/sessions/:sessionCode/acknowledge"
	RouteSessionToggle    = "/sessions/:sessionCode/options/toggle"
	RouteSessionInvest    = "/sessions/:sessionCode/investment"
	RouteSessionConfirm   = "/sessions/:sessionCode/confirm"
	RouteSessionNextEvent = "/sessions/:sessionCode/events/next"
	RouteSessionNextRound = "/sessions/:sessionCode/rounds/next"
	RouteSessionEnd       = "/sessions/:sessionCode/end"
)

// Common JSON response keys
const (
	JSONKeyError   = "error"
	JSONKeyMessage = "message"
)

// Common error messages used across API handlers
const (
	ErrInvalidRequest     = "Invalid request"
	ErrInvalidSessionCode = "Invalid session code"
	ErrSessionNotFound    = "Session not found"
	ErrSessionFinished    = "Session already finished"
	ErrFailedCreate       = "Failed to create session"
	ErrFailedUpdate       = "Failed to update session"
	ErrFailedFetch        = "Failed to fetch sessions"
	ErrFailedLeaderboard  = "Failed to fetch leaderboard"
	ErrSessionNameExceeds = "Session name exceeds 32 characters"
)

// Logging field names
const (
	LogFieldSessionID = "session_id"
	LogFieldJoinCode  = "join_code"
	LogFieldPhase     = "phase"
	LogFieldAddr      = "addr"
	LogFieldWorkerID  = "worker_id"
)
