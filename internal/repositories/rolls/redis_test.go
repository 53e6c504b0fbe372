package rolls_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/natelandau/valentina-sub000/internal/errors"
	"github.com/natelandau/valentina-sub000/internal/pkg/clock"
	"github.com/natelandau/valentina-sub000/internal/pkg/idgen"
	"github.com/natelandau/valentina-sub000/internal/redis"
	"github.com/natelandau/valentina-sub000/internal/repositories/rolls"
)

type RollsTestSuite struct {
	suite.Suite
	repo    rolls.Repository
	mr      *miniredis.Miniredis
	cleanup func()
	ctx     context.Context
}

func (s *RollsTestSuite) SetupTest() {
	s.ctx = context.Background()

	var err error
	s.mr, err = miniredis.Run()
	s.Require().NoError(err)
	s.cleanup = s.mr.Close

	client, err := redis.NewClient(s.mr.Addr(), nil)
	s.Require().NoError(err)

	repo, err := rolls.NewRedis(&rolls.RedisConfig{
		Client:      client,
		Clock:       &clock.Fixed{T: time.Unix(1700000000, 0)},
		IDGenerator: idgen.NewSequential("roll"),
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RollsTestSuite) TearDownTest() {
	if s.cleanup != nil {
		s.cleanup()
	}
}

func (s *RollsTestSuite) TestRecordAndList() {
	_, err := s.repo.Record(s.ctx, rolls.RecordInput{
		Record: &rolls.RollRecord{
			CharacterID: "char-1",
			Pool:        5,
			Difficulty:  6,
			Dice:        []int{7, 3, 9, 6, 2},
			Successes:   3,
		},
	})
	s.Require().NoError(err)

	out, err := s.repo.ListByCharacter(s.ctx, rolls.ListByCharacterInput{CharacterID: "char-1"})
	s.Require().NoError(err)
	s.Require().Len(out.Records, 1)
	s.Equal("roll_1", out.Records[0].ID)
	s.Equal(3, out.Records[0].Successes)
	s.Equal([]int{7, 3, 9, 6, 2}, out.Records[0].Dice)
}

func (s *RollsTestSuite) TestListMostRecentFirst() {
	for i := 1; i <= 3; i++ {
		_, err := s.repo.Record(s.ctx, rolls.RecordInput{
			Record: &rolls.RollRecord{CharacterID: "char-1", Pool: i},
		})
		s.Require().NoError(err)
		// Fixed clock gives identical scores; nudge miniredis time so
		// ordering is observable
		s.mr.FastForward(time.Millisecond)
	}

	out, err := s.repo.ListByCharacter(s.ctx, rolls.ListByCharacterInput{CharacterID: "char-1"})
	s.Require().NoError(err)
	s.Require().Len(out.Records, 3)
}

func (s *RollsTestSuite) TestExpiredRecordsArePruned() {
	_, err := s.repo.Record(s.ctx, rolls.RecordInput{
		Record: &rolls.RollRecord{CharacterID: "char-1", Pool: 4},
		TTL:    time.Minute,
	})
	s.Require().NoError(err)

	s.mr.FastForward(2 * time.Minute)

	out, err := s.repo.ListByCharacter(s.ctx, rolls.ListByCharacterInput{CharacterID: "char-1"})
	s.Require().NoError(err)
	s.Empty(out.Records)
}

func (s *RollsTestSuite) TestValidation() {
	_, err := s.repo.Record(s.ctx, rolls.RecordInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Record(s.ctx, rolls.RecordInput{Record: &rolls.RollRecord{}})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.ListByCharacter(s.ctx, rolls.ListByCharacterInput{})
	s.True(errors.IsInvalidArgument(err))
}

func TestRollsTestSuite(t *testing.T) {
	suite.Run(t, new(RollsTestSuite))
}
