package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SebastianignacioDS/camino-ahorro/internal/constants"
	"github.com/SebastianignacioDS/camino-ahorro/internal/game"
)

type stubRepo struct {
	createErr error
	created   *game.Session
}

func (r *stubRepo) CreateSession(s *game.Session) error {
	if r.createErr != nil {
		return r.createErr
	}
	s.ID = 1
	r.created = s
	return nil
}

func (r *stubRepo) GetSessionByID(id uint) (*game.Session, error) {
	return nil, errors.New("not found")
}

func (r *stubRepo) FindSessionByJoinCode(code string) (*game.Session, error) {
	return nil, errors.New("not found")
}

func (r *stubRepo) UpdateSession(s *game.Session) error              { return nil }
func (r *stubRepo) ListRecentSessions() ([]game.Session, error)      { return nil, nil }
func (r *stubRepo) SaveScores(entries []game.ScoreEntry) error       { return nil }
func (r *stubRepo) GetTopScores(limit int) ([]game.ScoreEntry, error) { return nil, nil }
func (r *stubRepo) ClaimTimedOutSessionIDs(now time.Time, limit int, claimTTL time.Duration, workerID string) ([]uint, error) {
	return nil, nil
}

func postCreate(h *SessionHandler, body string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/sessions", strings.NewReader(body))
	h.CreateSession(c)
	return w
}

func TestCreateSession_OK(t *testing.T) {
	repo := &stubRepo{}
	h := NewSessionHandler(repo, time.Minute)
	w := postCreate(h, `{"mode":"individual","participant_count":2,"round_count":3}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if repo.created == nil || !strings.Contains(w.Body.String(), repo.created.JoinCode) {
		t.Fatalf("response does not carry the join code: %s", w.Body.String())
	}
}

func TestCreateSession_OutOfRange(t *testing.T) {
	h := NewSessionHandler(&stubRepo{}, time.Minute)
	w := postCreate(h, `{"mode":"individual","participant_count":1,"round_count":3}`)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", w.Code, w.Body.String())
	}
}

func TestCreateSession_RepoFailure(t *testing.T) {
	h := NewSessionHandler(&stubRepo{createErr: errors.New("disk full")}, time.Minute)
	w := postCreate(h, `{"mode":"individual","participant_count":2,"round_count":3}`)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), constants.ErrFailedCreate) {
		t.Fatalf("expected create error message, got %s", w.Body.String())
	}
}
