package session

import (
	"context"
	"testing"
	"time"

	"github.com/friendships-game/partyserver/internal/models"
	"github.com/stretchr/testify/suite"
)

type MemoryRepositoryTestSuite struct {
	suite.Suite
	repo *memoryRepository
	ctx  context.Context
}

func (s *MemoryRepositoryTestSuite) SetupTest() {
	s.repo = NewMemory()
	s.ctx = context.Background()
}

func (s *MemoryRepositoryTestSuite) newGame(id string, players ...*models.Player) *models.Game {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return &models.Game{
		ID:           id,
		Players:      players,
		Day:          1,
		CreatedAt:    now,
		LastActivity: now,
	}
}

func (s *MemoryRepositoryTestSuite) TestSaveAndGet() {
	game := s.newGame("FRNDABC234")

	err := s.repo.SaveGame(s.ctx, &SaveGameInput{Game: game})
	s.Require().NoError(err)

	got, err := s.repo.GetGame(s.ctx, &GetGameInput{GameID: "FRNDABC234"})
	s.Require().NoError(err)
	s.Equal(game, got)
}

func (s *MemoryRepositoryTestSuite) TestGet_CaseInsensitive() {
	game := s.newGame("FRNDABC234")

	err := s.repo.SaveGame(s.ctx, &SaveGameInput{Game: game})
	s.Require().NoError(err)

	got, err := s.repo.GetGame(s.ctx, &GetGameInput{GameID: "frndabc234"})
	s.Require().NoError(err)
	s.Equal(game, got)
}

func (s *MemoryRepositoryTestSuite) TestGet_NotFound() {
	_, err := s.repo.GetGame(s.ctx, &GetGameInput{GameID: "FRNDZZZZZZ"})
	s.ErrorIs(err, ErrGameNotFound)
}

func (s *MemoryRepositoryTestSuite) TestDelete() {
	game := s.newGame("FRNDABC234")

	err := s.repo.SaveGame(s.ctx, &SaveGameInput{Game: game})
	s.Require().NoError(err)

	err = s.repo.DeleteGame(s.ctx, &DeleteGameInput{GameID: "frndabc234"})
	s.Require().NoError(err)

	_, err = s.repo.GetGame(s.ctx, &GetGameInput{GameID: "FRNDABC234"})
	s.ErrorIs(err, ErrGameNotFound)

	// Deleting again is not an error
	err = s.repo.DeleteGame(s.ctx, &DeleteGameInput{GameID: "FRNDABC234"})
	s.NoError(err)
}

func (s *MemoryRepositoryTestSuite) TestListGames() {
	s.Require().NoError(s.repo.SaveGame(s.ctx, &SaveGameInput{Game: s.newGame("FRNDAAAAAA")}))
	s.Require().NoError(s.repo.SaveGame(s.ctx, &SaveGameInput{Game: s.newGame("FRNDBBBBBB")}))

	out, err := s.repo.ListGames(s.ctx, &ListGamesInput{})
	s.Require().NoError(err)
	s.Len(out.Games, 2)
}

func (s *MemoryRepositoryTestSuite) TestCountPlayers() {
	s.Require().NoError(s.repo.SaveGame(s.ctx, &SaveGameInput{Game: s.newGame("FRNDAAAAAA",
		models.NewPlayer("p1", "Alice", "cat", "park", true),
		models.NewPlayer("p2", "Bob", "dog", "park", false),
	)}))
	s.Require().NoError(s.repo.SaveGame(s.ctx, &SaveGameInput{Game: s.newGame("FRNDBBBBBB",
		models.NewPlayer("p3", "Carol", "fox", "beach", true),
	)}))

	total, err := s.repo.CountPlayers(s.ctx)
	s.Require().NoError(err)
	s.Equal(3, total)
}

func (s *MemoryRepositoryTestSuite) TestSave_InvalidInput() {
	s.Error(s.repo.SaveGame(s.ctx, nil))
	s.Error(s.repo.SaveGame(s.ctx, &SaveGameInput{}))
	s.Error(s.repo.SaveGame(s.ctx, &SaveGameInput{Game: &models.Game{}}))
}

func TestMemoryRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(MemoryRepositoryTestSuite))
}
