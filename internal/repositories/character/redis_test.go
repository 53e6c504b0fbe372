package character_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/natelandau/valentina-sub000/internal/entities/wod"
	"github.com/natelandau/valentina-sub000/internal/errors"
	"github.com/natelandau/valentina-sub000/internal/pkg/clock"
	"github.com/natelandau/valentina-sub000/internal/repositories/character"
	"github.com/natelandau/valentina-sub000/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	repo    character.Repository
	cleanup func()
	ctx     context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()

	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup

	repo, err := character.NewRedis(&character.RedisConfig{
		Client: client,
		Clock:  &clock.Fixed{T: time.Unix(1700000000, 0)},
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	if s.cleanup != nil {
		s.cleanup()
	}
}

func (s *RedisRepositoryTestSuite) testCharacter(id string) *wod.Character {
	return &wod.Character{
		ID:         id,
		Name:       "Armand",
		UserID:     "user-1",
		CampaignID: "campaign-1",
		Class:      wod.CharClassVampire,
		Clan:       wod.ClanToreador,
		Level:      wod.LevelNew,
		Traits: []*wod.CharacterTrait{
			{Name: "Strength", Category: wod.CategoryPhysical, Value: 3, MaxValue: 5, CharacterID: id},
			{Name: "Willpower", Category: wod.CategoryOther, Value: 5, MaxValue: 10, CharacterID: id},
		},
	}
}

func (s *RedisRepositoryTestSuite) TestCreateAndGet() {
	char := s.testCharacter("char-1")

	created, err := s.repo.Create(s.ctx, character.CreateInput{Character: char})
	s.Require().NoError(err)
	s.Equal(int64(1700000000), created.Character.CreatedAt)

	got, err := s.repo.Get(s.ctx, character.GetInput{ID: "char-1"})
	s.Require().NoError(err)
	s.Equal("Armand", got.Character.Name)
	s.Equal(wod.CharClassVampire, got.Character.Class)
	s.Len(got.Character.Traits, 2)
	s.Equal(3, got.Character.Trait("Strength").Value)
}

func (s *RedisRepositoryTestSuite) TestCreateDuplicate() {
	char := s.testCharacter("char-1")

	_, err := s.repo.Create(s.ctx, character.CreateInput{Character: char})
	s.Require().NoError(err)

	_, err = s.repo.Create(s.ctx, character.CreateInput{Character: char})
	s.True(errors.IsAlreadyExists(err))
}

func (s *RedisRepositoryTestSuite) TestCreateValidation() {
	_, err := s.repo.Create(s.ctx, character.CreateInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Create(s.ctx, character.CreateInput{Character: &wod.Character{}})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestGetNotFound() {
	_, err := s.repo.Get(s.ctx, character.GetInput{ID: "missing"})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestUpdate() {
	char := s.testCharacter("char-1")
	_, err := s.repo.Create(s.ctx, character.CreateInput{Character: char})
	s.Require().NoError(err)

	char.Trait("Strength").Value = 4
	_, err = s.repo.Update(s.ctx, character.UpdateInput{Character: char})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, character.GetInput{ID: "char-1"})
	s.Require().NoError(err)
	s.Equal(4, got.Character.Trait("Strength").Value)
}

func (s *RedisRepositoryTestSuite) TestUpdateReindexesCampaign() {
	char := s.testCharacter("char-1")
	_, err := s.repo.Create(s.ctx, character.CreateInput{Character: char})
	s.Require().NoError(err)

	char.CampaignID = "campaign-2"
	_, err = s.repo.Update(s.ctx, character.UpdateInput{Character: char})
	s.Require().NoError(err)

	old, err := s.repo.ListByCampaignID(s.ctx, character.ListByCampaignIDInput{CampaignID: "campaign-1"})
	s.Require().NoError(err)
	s.Empty(old.Characters)

	moved, err := s.repo.ListByCampaignID(s.ctx, character.ListByCampaignIDInput{CampaignID: "campaign-2"})
	s.Require().NoError(err)
	s.Len(moved.Characters, 1)
}

func (s *RedisRepositoryTestSuite) TestUpdateNotFound() {
	_, err := s.repo.Update(s.ctx, character.UpdateInput{Character: s.testCharacter("missing")})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestDelete() {
	char := s.testCharacter("char-1")
	_, err := s.repo.Create(s.ctx, character.CreateInput{Character: char})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, character.DeleteInput{ID: "char-1"})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, character.GetInput{ID: "char-1"})
	s.True(errors.IsNotFound(err))

	byUser, err := s.repo.ListByUserID(s.ctx, character.ListByUserIDInput{UserID: "user-1"})
	s.Require().NoError(err)
	s.Empty(byUser.Characters)
}

func (s *RedisRepositoryTestSuite) TestListByUserID() {
	a := s.testCharacter("char-a")
	b := s.testCharacter("char-b")
	b.Name = "Daniel"

	_, err := s.repo.Create(s.ctx, character.CreateInput{Character: a})
	s.Require().NoError(err)
	_, err = s.repo.Create(s.ctx, character.CreateInput{Character: b})
	s.Require().NoError(err)

	out, err := s.repo.ListByUserID(s.ctx, character.ListByUserIDInput{UserID: "user-1"})
	s.Require().NoError(err)
	s.Len(out.Characters, 2)
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}
