package turns

import (
	"context"
	"testing"
	"time"

	"github.com/friendships-game/partyserver/internal/broadcast"
	broadcastMocks "github.com/friendships-game/partyserver/internal/broadcast/mocks"
	clockMocks "github.com/friendships-game/partyserver/internal/common/clock/mocks"
	"github.com/friendships-game/partyserver/internal/models"
	sessionRepo "github.com/friendships-game/partyserver/internal/repositories/session"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// eventNamed matches a broadcast.Event by name.
type eventNamed string

func (m eventNamed) Matches(x any) bool {
	ev, ok := x.(broadcast.Event)
	return ok && ev.Name == string(m)
}

func (m eventNamed) String() string {
	return "event named " + string(m)
}

type TurnsServiceTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockPublisher *broadcastMocks.MockPublisher
	mockClock     *clockMocks.MockClock
	repo          sessionRepo.Repository
	turnsService  *service
	ctx           context.Context

	// Test data
	testTime   time.Time
	testGameID string
	game       *models.Game
}

func (s *TurnsServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockPublisher = broadcastMocks.NewMockPublisher(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.repo = sessionRepo.NewMemory()
	s.ctx = context.Background()

	s.testTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s.testGameID = "FRNDABC234"

	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	alice := models.NewPlayer("conn-1", "Alice", "cat", "park", true)
	bob := models.NewPlayer("conn-2", "Bob", "dog", "park", false)
	carol := models.NewPlayer("conn-3", "Carol", "fox", "beach", false)

	s.game = &models.Game{
		ID:           s.testGameID,
		HostID:       "conn-1",
		Players:      []*models.Player{alice, bob, carol},
		CurrentTurn:  "conn-1",
		Day:          1,
		Started:      true,
		CreatedAt:    s.testTime,
		LastActivity: s.testTime,
	}
	s.Require().NoError(s.repo.SaveGame(s.ctx, &sessionRepo.SaveGameInput{Game: s.game}))

	svc, err := New(&Config{
		SessionRepo: s.repo,
		Publisher:   s.mockPublisher,
		Clock:       s.mockClock,
	})
	s.Require().NoError(err)
	s.turnsService = svc
}

func (s *TurnsServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *TurnsServiceTestSuite) endTurn(playerID string) {
	err := s.turnsService.EndTurn(s.ctx, &EndTurnInput{
		GameID:      s.testGameID,
		PlayerID:    playerID,
		Time:        90,
		Energy:      70,
		SuperEnergy: 40,
	})
	s.Require().NoError(err)
}

func (s *TurnsServiceTestSuite) TestEndTurn_RotatesThroughRoster() {
	s.mockPublisher.EXPECT().
		Broadcast(s.testGameID, eventNamed(broadcast.EventTurnEnded), "").
		Times(3)

	s.endTurn("conn-1")
	s.Equal("conn-2", s.game.CurrentTurn)
	s.Equal(1, s.game.Day)

	s.endTurn("conn-2")
	s.Equal("conn-3", s.game.CurrentTurn)
	s.Equal(1, s.game.Day)

	// Wrapping back to the first player advances the day exactly once
	s.endTurn("conn-3")
	s.Equal("conn-1", s.game.CurrentTurn)
	s.Equal(2, s.game.Day)
}

func (s *TurnsServiceTestSuite) TestEndTurn_ClampsResourcesButNotTime() {
	s.mockPublisher.EXPECT().Broadcast(s.testGameID, eventNamed(broadcast.EventTurnEnded), "")

	err := s.turnsService.EndTurn(s.ctx, &EndTurnInput{
		GameID:      s.testGameID,
		PlayerID:    "conn-1",
		Time:        250,
		Energy:      150,
		SuperEnergy: -20,
	})
	s.Require().NoError(err)

	alice := s.game.FindPlayer("conn-1")
	s.Equal(250, alice.Time)
	s.Equal(100, alice.Energy)
	s.Equal(0, alice.SuperEnergy)
}

func (s *TurnsServiceTestSuite) TestEndTurn_AbsentHolderDoesNotAdvanceDay() {
	// The turn holder left before their turn_ended arrived
	s.game.Players = s.game.Players[1:]
	s.game.CurrentTurn = "conn-1"

	s.mockPublisher.EXPECT().Broadcast(s.testGameID, eventNamed(broadcast.EventTurnEnded), "")

	s.endTurn("conn-1")
	s.Equal("conn-2", s.game.CurrentTurn)
	s.Equal(1, s.game.Day)
}

func (s *TurnsServiceTestSuite) TestEndTurn_NotStartedIsSilent() {
	s.game.Started = false

	s.endTurn("conn-1")
	s.Equal("conn-1", s.game.CurrentTurn)
}

func (s *TurnsServiceTestSuite) TestEndTurn_UnknownGameIsSilent() {
	err := s.turnsService.EndTurn(s.ctx, &EndTurnInput{
		GameID:   "FRNDZZZZZZ",
		PlayerID: "conn-1",
	})
	s.NoError(err)
}

func (s *TurnsServiceTestSuite) TestPlayerAction_ExcludesSender() {
	s.mockPublisher.EXPECT().
		Broadcast(s.testGameID, eventNamed(broadcast.EventPlayerAction), "conn-2")

	err := s.turnsService.PlayerAction(s.ctx, &PlayerActionInput{
		GameID:      s.testGameID,
		PlayerID:    "conn-2",
		ActionID:    "call_friend",
		FriendName:  "Maya",
		Time:        85,
		Energy:      60,
		SuperEnergy: 30,
	})
	s.Require().NoError(err)

	bob := s.game.FindPlayer("conn-2")
	s.Equal(85, bob.Time)
	s.Equal(60, bob.Energy)
	s.Equal(30, bob.SuperEnergy)
}

func (s *TurnsServiceTestSuite) TestPlayerAction_UnknownPlayerIsSilent() {
	err := s.turnsService.PlayerAction(s.ctx, &PlayerActionInput{
		GameID:   s.testGameID,
		PlayerID: "conn-stranger",
	})
	s.NoError(err)
}

func (s *TurnsServiceTestSuite) TestHelpPlayer_ClampsEnergy() {
	target := s.game.FindPlayer("conn-2")
	target.Energy = 90

	s.mockPublisher.EXPECT().
		Broadcast(s.testGameID, gomock.Cond(func(x any) bool {
			ev, ok := x.(broadcast.Event)
			if !ok || ev.Name != broadcast.EventPlayerHelped {
				return false
			}
			payload, ok := ev.Payload.(playerHelpedPayload)
			return ok && payload.NewEnergy == 100 && payload.TargetName == "Bob"
		}), "")

	err := s.turnsService.HelpPlayer(s.ctx, &HelpPlayerInput{
		GameID:      s.testGameID,
		PlayerID:    "conn-1",
		TargetID:    "conn-2",
		EnergyBonus: 50,
	})
	s.Require().NoError(err)
	s.Equal(100, target.Energy)
}

func (s *TurnsServiceTestSuite) TestHelpPlayer_UnknownTargetIsSilent() {
	err := s.turnsService.HelpPlayer(s.ctx, &HelpPlayerInput{
		GameID:      s.testGameID,
		PlayerID:    "conn-1",
		TargetID:    "conn-gone",
		EnergyBonus: 20,
	})
	s.NoError(err)
}

func (s *TurnsServiceTestSuite) TestShareSuper_ClampsSuperEnergy() {
	target := s.game.FindPlayer("conn-3")
	target.SuperEnergy = 95

	s.mockPublisher.EXPECT().
		Broadcast(s.testGameID, gomock.Cond(func(x any) bool {
			ev, ok := x.(broadcast.Event)
			if !ok || ev.Name != broadcast.EventSuperShared {
				return false
			}
			payload, ok := ev.Payload.(superSharedPayload)
			return ok && payload.NewSuperEnergy == 100
		}), "")

	err := s.turnsService.ShareSuper(s.ctx, &ShareSuperInput{
		GameID:     s.testGameID,
		PlayerID:   "conn-1",
		TargetID:   "conn-3",
		SuperBonus: 25,
	})
	s.Require().NoError(err)
	s.Equal(100, target.SuperEnergy)
}

func (s *TurnsServiceTestSuite) TestChangeEnvironment() {
	s.mockPublisher.EXPECT().
		Broadcast(s.testGameID, eventNamed(broadcast.EventEnvironmentChanged), "")

	err := s.turnsService.ChangeEnvironment(s.ctx, &ChangeEnvironmentInput{
		GameID:         s.testGameID,
		PlayerID:       "conn-2",
		NewEnvironment: "arcade",
		NewTime:        75,
	})
	s.Require().NoError(err)

	bob := s.game.FindPlayer("conn-2")
	s.Equal("arcade", bob.Environment)
	s.Equal(75, bob.Time)
}

func TestTurnsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TurnsServiceTestSuite))
}
