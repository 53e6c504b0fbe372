package roll_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/natelandau/valentina-sub000/internal/errors"
	"github.com/natelandau/valentina-sub000/internal/orchestrators/roll"
	"github.com/natelandau/valentina-sub000/internal/repositories/rolls"
	rollsmock "github.com/natelandau/valentina-sub000/internal/repositories/rolls/mock"
)

// scriptedRoller returns a fixed dice sequence so outcomes are exact
type scriptedRoller struct {
	dice []int
}

func (r *scriptedRoller) Roll(_ int) (int, error) {
	die := r.dice[0]
	r.dice = r.dice[1:]
	return die, nil
}

func (r *scriptedRoller) RollN(count, _ int) ([]int, error) {
	out := make([]int, 0, count)
	for range count {
		die, _ := r.Roll(0)
		out = append(out, die)
	}
	return out, nil
}

type RollTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *rollsmock.MockRepository
	ctx      context.Context
}

func (s *RollTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = rollsmock.NewMockRepository(s.ctrl)
}

func (s *RollTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *RollTestSuite) newService(dice []int) roll.Service {
	svc, err := roll.NewOrchestrator(&roll.Config{
		RollsRepo: s.mockRepo,
		Roller:    &scriptedRoller{dice: dice},
	})
	s.Require().NoError(err)
	return svc
}

func (s *RollTestSuite) expectRecord() {
	s.mockRepo.EXPECT().
		Record(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input rolls.RecordInput) (*rolls.RecordOutput, error) {
			input.Record.ID = "roll_1"
			return &rolls.RecordOutput{Record: input.Record}, nil
		})
}

func (s *RollTestSuite) TestRollPoolOutcomes() {
	testCases := []struct {
		name           string
		dice           []int
		difficulty     int
		wantSuccesses  int
		wantCriticals  int
		wantBotches    int
		wantResult     int
		wantResultType roll.ResultType
	}{
		{
			name:           "plain successes",
			dice:           []int{6, 7, 3, 2},
			difficulty:     6,
			wantSuccesses:  2,
			wantResult:     2,
			wantResultType: roll.ResultSuccess,
		},
		{
			name:           "criticals count double",
			dice:           []int{10, 10, 6},
			difficulty:     6,
			wantSuccesses:  1,
			wantCriticals:  2,
			wantResult:     5,
			wantResultType: roll.ResultCritical,
		},
		{
			name:           "ones cancel criticals",
			dice:           []int{10, 1, 6},
			difficulty:     6,
			wantSuccesses:  1,
			wantCriticals:  1,
			wantBotches:    1,
			wantResult:     1,
			wantResultType: roll.ResultSuccess,
		},
		{
			name:           "botch when ones outnumber everything",
			dice:           []int{1, 1, 3},
			difficulty:     6,
			wantBotches:    2,
			wantResult:     -2,
			wantResultType: roll.ResultBotch,
		},
		{
			name:           "failure on no successes and no ones",
			dice:           []int{2, 3, 5},
			difficulty:     6,
			wantResult:     0,
			wantResultType: roll.ResultFailure,
		},
		{
			name:           "higher difficulty narrows the window",
			dice:           []int{6, 7, 8, 9},
			difficulty:     8,
			wantSuccesses:  2,
			wantResult:     2,
			wantResultType: roll.ResultSuccess,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.expectRecord()
			svc := s.newService(tc.dice)

			out, err := svc.RollPool(s.ctx, &roll.RollPoolInput{
				CharacterID: "char-1",
				CampaignID:  "camp-1",
				Pool:        len(tc.dice),
				Difficulty:  tc.difficulty,
			})
			s.Require().NoError(err)
			s.Equal(tc.dice, out.Dice)
			s.Equal(tc.wantSuccesses, out.Successes)
			s.Equal(tc.wantCriticals, out.Criticals)
			s.Equal(tc.wantBotches, out.Botches)
			s.Equal(tc.wantResult, out.Result)
			s.Equal(tc.wantResultType, out.ResultType)
		})
	}
}

func (s *RollTestSuite) TestRollPoolRecordsHistory() {
	s.expectRecord()
	svc := s.newService([]int{6, 6, 2})

	out, err := svc.RollPool(s.ctx, &roll.RollPoolInput{
		CharacterID: "char-1",
		CampaignID:  "camp-1",
		Pool:        3,
	})
	s.Require().NoError(err)
	s.Equal("roll_1", out.Record.ID)
	s.Equal("char-1", out.Record.CharacterID)
	s.Equal("camp-1", out.Record.CampaignID)
	s.Equal(roll.DefaultDifficulty, out.Record.Difficulty)
	s.Equal(string(roll.ResultSuccess), out.Record.ResultType)
}

func (s *RollTestSuite) TestRollPoolValidation() {
	svc := s.newService(nil)

	testCases := []struct {
		name  string
		input *roll.RollPoolInput
	}{
		{name: "nil input", input: nil},
		{name: "missing character", input: &roll.RollPoolInput{Pool: 3}},
		{name: "negative pool", input: &roll.RollPoolInput{CharacterID: "char-1", Pool: -1}},
		{name: "oversized pool", input: &roll.RollPoolInput{CharacterID: "char-1", Pool: roll.MaxPoolSize + 1}},
		{name: "difficulty above die size", input: &roll.RollPoolInput{CharacterID: "char-1", Pool: 3, Difficulty: 11}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := svc.RollPool(s.ctx, tc.input)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *RollTestSuite) TestListRolls() {
	s.mockRepo.EXPECT().
		ListByCharacter(gomock.Any(), rolls.ListByCharacterInput{CharacterID: "char-1"}).
		Return(&rolls.ListByCharacterOutput{
			Records: []*rolls.RollRecord{{ID: "roll_2"}, {ID: "roll_1"}},
		}, nil)

	svc := s.newService(nil)
	out, err := svc.ListRolls(s.ctx, &roll.ListRollsInput{CharacterID: "char-1"})
	s.Require().NoError(err)
	s.Require().Len(out.Records, 2)
	s.Equal("roll_2", out.Records[0].ID)
}

func TestRollTestSuite(t *testing.T) {
	suite.Run(t, new(RollTestSuite))
}
