package janitor

import (
	"context"
	"testing"
	"time"

	clockMocks "github.com/friendships-game/partyserver/internal/common/clock/mocks"
	"github.com/friendships-game/partyserver/internal/models"
	sessionRepo "github.com/friendships-game/partyserver/internal/repositories/session"
	presenceMocks "github.com/friendships-game/partyserver/internal/services/presence/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type JanitorTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	mockClock *clockMocks.MockClock
	repo      sessionRepo.Repository
	janitor   *Janitor
	ctx       context.Context

	// Test data
	testTime time.Time
}

func (s *JanitorTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.repo = sessionRepo.NewMemory()
	s.ctx = context.Background()

	s.testTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	j, err := New(&Config{
		SessionRepo: s.repo,
		Clock:       s.mockClock,
	})
	s.Require().NoError(err)
	s.janitor = j
}

func (s *JanitorTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *JanitorTestSuite) saveGame(id string, started bool, createdAt, lastActivity time.Time) {
	game := &models.Game{
		ID:           id,
		HostID:       "conn-1",
		Players:      []*models.Player{models.NewPlayer("conn-1", "Alice", "cat", "park", true)},
		Day:          1,
		Started:      started,
		CreatedAt:    createdAt,
		LastActivity: lastActivity,
	}
	s.Require().NoError(s.repo.SaveGame(s.ctx, &sessionRepo.SaveGameInput{Game: game}))
}

func (s *JanitorTestSuite) exists(id string) bool {
	_, err := s.repo.GetGame(s.ctx, &sessionRepo.GetGameInput{GameID: id})
	return err == nil
}

func (s *JanitorTestSuite) TestSweep_RemovesIdleStartedGame() {
	s.mockClock.EXPECT().Now().Return(s.testTime)

	s.saveGame("FRNDSTALE1", true, s.testTime.Add(-12*time.Hour), s.testTime.Add(-7*time.Hour))
	s.saveGame("FRNDLIVE22", true, s.testTime.Add(-12*time.Hour), s.testTime.Add(-time.Hour))

	s.janitor.Sweep(s.ctx)

	s.False(s.exists("FRNDSTALE1"))
	s.True(s.exists("FRNDLIVE22"))
}

func (s *JanitorTestSuite) TestSweep_RemovesAbandonedLobby() {
	s.mockClock.EXPECT().Now().Return(s.testTime)

	s.saveGame("FRNDOLDLOB", false, s.testTime.Add(-3*time.Hour), s.testTime.Add(-3*time.Hour))
	s.saveGame("FRNDNEWLOB", false, s.testTime.Add(-time.Hour), s.testTime.Add(-time.Hour))

	s.janitor.Sweep(s.ctx)

	s.False(s.exists("FRNDOLDLOB"))
	s.True(s.exists("FRNDNEWLOB"))
}

func (s *JanitorTestSuite) TestSweep_LobbyAgeIgnoresActivity() {
	s.mockClock.EXPECT().Now().Return(s.testTime)

	// A lobby is judged by creation age even when recently active.
	s.saveGame("FRNDBUSY22", false, s.testTime.Add(-3*time.Hour), s.testTime.Add(-time.Minute))

	s.janitor.Sweep(s.ctx)

	s.False(s.exists("FRNDBUSY22"))
}

func (s *JanitorTestSuite) TestSweep_StartedGameUsesActivityNotAge() {
	s.mockClock.EXPECT().Now().Return(s.testTime)

	// Old but active started games survive.
	s.saveGame("FRNDOLDIE2", true, s.testTime.Add(-48*time.Hour), s.testTime.Add(-time.Minute))

	s.janitor.Sweep(s.ctx)

	s.True(s.exists("FRNDOLDIE2"))
}

func (s *JanitorTestSuite) TestSweep_ExactThresholdIsNotStale() {
	s.mockClock.EXPECT().Now().Return(s.testTime)

	s.saveGame("FRNDEDGE22", true, s.testTime.Add(-12*time.Hour), s.testTime.Add(-6*time.Hour))
	s.saveGame("FRNDEDGE33", false, s.testTime.Add(-2*time.Hour), s.testTime.Add(-2*time.Hour))

	s.janitor.Sweep(s.ctx)

	s.True(s.exists("FRNDEDGE22"))
	s.True(s.exists("FRNDEDGE33"))
}

func (s *JanitorTestSuite) TestSweep_ReleasesPresenceBookkeeping() {
	mockPresence := presenceMocks.NewMockTracker(s.mockCtrl)
	j, err := New(&Config{
		SessionRepo: s.repo,
		Clock:       s.mockClock,
		Presence:    mockPresence,
	})
	s.Require().NoError(err)

	s.mockClock.EXPECT().Now().Return(s.testTime)
	s.saveGame("FRNDSTALE1", true, s.testTime.Add(-12*time.Hour), s.testTime.Add(-7*time.Hour))
	s.saveGame("FRNDLIVE22", true, s.testTime.Add(-12*time.Hour), s.testTime.Add(-time.Hour))

	mockPresence.EXPECT().ForgetGame("FRNDSTALE1")

	j.Sweep(s.ctx)

	s.False(s.exists("FRNDSTALE1"))
}

func (s *JanitorTestSuite) TestSweep_EmptyRegistry() {
	s.mockClock.EXPECT().Now().Return(s.testTime)

	s.janitor.Sweep(s.ctx)
}

func TestJanitorTestSuite(t *testing.T) {
	suite.Run(t, new(JanitorTestSuite))
}
