package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/SebastianignacioDS/camino-ahorro/internal/engine"
	"github.com/SebastianignacioDS/camino-ahorro/internal/game"
)

type mockRepo struct {
	sessions map[uint]*game.Session
	scores   []game.ScoreEntry
	updates  int
}

func newMockRepo(sessions ...*game.Session) *mockRepo {
	m := &mockRepo{sessions: map[uint]*game.Session{}}
	for _, s := range sessions {
		m.sessions[s.ID] = s
	}
	return m
}

func (m *mockRepo) GetSessionByID(id uint) (*game.Session, error) {
	if s, ok := m.sessions[id]; ok {
		return s, nil
	}
	return nil, ErrSessionNotFound
}

func (m *mockRepo) UpdateSession(s *game.Session) error {
	m.sessions[s.ID] = s
	m.updates++
	return nil
}

func (m *mockRepo) SaveScores(entries []game.ScoreEntry) error {
	m.scores = append(m.scores, entries...)
	return nil
}

func startedSession(t *testing.T, count int) *game.Session {
	t.Helper()
	s, err := engine.StartSession(engine.SessionConfig{
		Name:             "aula 3B",
		Mode:             game.ModeIndividual,
		ParticipantCount: count,
		RoundCount:       3,
		Seed:             11,
	})
	require.NoError(t, err)
	s.ID = 1
	s.JoinCode = "ABCD1234"
	return s
}

func TestChooseInitial_RefreshesDeadline(t *testing.T) {
	repo := newMockRepo(startedSession(t, 2))

	s, err := ChooseInitial(repo, 1, game.ChoiceA, time.Minute)
	require.NoError(t, err)
	require.Equal(t, 1000, s.Participants[0].Money)
	require.False(t, s.ActionDeadline.IsZero())
	require.Equal(t, 1, repo.updates)
}

func TestChooseInitial_RejectedCommandPersistsNothing(t *testing.T) {
	repo := newMockRepo(startedSession(t, 2))

	_, err := ChooseInitial(repo, 1, game.InitialChoice("Z"), time.Minute)
	require.ErrorIs(t, err, engine.ErrUnknownChoice)
	require.Zero(t, repo.updates)
}

func TestCommands_UnknownSession(t *testing.T) {
	repo := newMockRepo()
	_, err := Acknowledge(repo, 99, time.Minute)
	require.ErrorIs(t, err, ErrSessionNotFound)
}

func TestCommands_FinishedSession(t *testing.T) {
	s := startedSession(t, 2)
	s.Phase = game.PhaseFinished
	repo := newMockRepo(s)

	_, err := ChooseInitial(repo, 1, game.ChoiceA, time.Minute)
	require.ErrorIs(t, err, ErrSessionFinished)
}

func TestConfirmSelections_ResolvedFlag(t *testing.T) {
	s := startedSession(t, 2)
	repo := newMockRepo(s)

	_, err := ChooseInitial(repo, 1, game.ChoiceA, time.Minute)
	require.NoError(t, err)
	_, err = ChooseInitial(repo, 1, game.ChoiceB, time.Minute)
	require.NoError(t, err)
	_, err = Acknowledge(repo, 1, time.Minute)
	require.NoError(t, err)

	_, err = ToggleOption(repo, 1, game.OptionCar, time.Minute)
	require.NoError(t, err)
	_, resolved, err := ConfirmSelections(repo, 1, time.Minute)
	require.NoError(t, err)
	require.False(t, resolved, "first confirmation must not resolve events")

	_, err = ToggleOption(repo, 1, game.OptionInvest, time.Minute)
	require.NoError(t, err)
	_, err = SetInvestmentAmount(repo, 1, 250, time.Minute)
	require.NoError(t, err)
	out, resolved, err := ConfirmSelections(repo, 1, time.Minute)
	require.NoError(t, err)
	require.True(t, resolved, "last confirmation resolves events")
	require.Equal(t, game.PhaseRandomEvent, out.Phase)
	require.NotEmpty(t, out.LastEventSummary)
}

func TestAdvanceRound_RecordsScoresOnFinish(t *testing.T) {
	s := startedSession(t, 2)
	s.Phase = game.PhasePlaying
	s.Participants[0].Name = "Ana"
	s.Participants[0].Money = 900
	s.Participants[1].Name = "Ben"
	s.Participants[1].Money = 100
	repo := newMockRepo(s)

	// two playing rounds close a three-round session
	_, err := AdvanceRound(repo, 1, time.Minute)
	require.NoError(t, err)
	out, err := AdvanceRound(repo, 1, time.Minute)
	require.NoError(t, err)

	require.Equal(t, game.PhaseFinished, out.Phase)
	require.Equal(t, "Ana", out.Winner)
	require.True(t, out.ScoresCounted)
	require.True(t, out.ActionDeadline.IsZero(), "finished sessions carry no deadline")
	require.Len(t, repo.scores, 2)
	require.Equal(t, "Ana", repo.scores[0].ParticipantName)
	require.True(t, repo.scores[0].Winner)
	require.False(t, repo.scores[1].Winner)

	// a third advance is rejected and records nothing new
	_, err = AdvanceRound(repo, 1, time.Minute)
	require.ErrorIs(t, err, ErrSessionFinished)
	require.Len(t, repo.scores, 2)
}

func TestEndSession_AbortSkipsLeaderboard(t *testing.T) {
	s := startedSession(t, 2)
	repo := newMockRepo(s)

	out, err := EndSession(repo, 1, "teacher closed the room")
	require.NoError(t, err)
	require.Equal(t, game.PhaseFinished, out.Phase)
	require.Equal(t, "teacher closed the room", out.Message)
	require.Empty(t, repo.scores)

	// ending twice is a quiet no-op
	again, err := EndSession(repo, 1, "again")
	require.NoError(t, err)
	require.Equal(t, "teacher closed the room", again.Message)
}

func TestHandleTimedOutSession(t *testing.T) {
	s := startedSession(t, 2)
	s.ActionDeadline = time.Now().Add(-time.Minute)
	repo := newMockRepo(s)

	require.NoError(t, HandleTimedOutSession(repo, s))
	require.Equal(t, game.PhaseFinished, s.Phase)
	require.Equal(t, "Session ended due to inactivity.", s.Message)
	require.Equal(t, 1, repo.updates)
}

func TestHandleTimedOutSession_SkipsFutureDeadline(t *testing.T) {
	s := startedSession(t, 2)
	s.ActionDeadline = time.Now().Add(time.Hour)
	repo := newMockRepo(s)

	require.NoError(t, HandleTimedOutSession(repo, s))
	require.Equal(t, game.PhaseInitialDecision, s.Phase)
	require.Zero(t, repo.updates)
}
