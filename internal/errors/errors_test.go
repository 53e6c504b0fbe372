package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/natelandau/valentina-sub000/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "not found error",
			code:     errors.CodeNotFound,
			message:  "character not found",
			expected: "NOT_FOUND: character not found",
		},
		{
			name:     "trait at max value error",
			code:     errors.CodeTraitAtMaxValue,
			message:  "Brawl is already at 5 dots",
			expected: "TRAIT_AT_MAX_VALUE: Brawl is already at 5 dots",
		},
		{
			name:     "not enough points error",
			code:     errors.CodeNotEnoughPoints,
			message:  "need 6 xp, have 4",
			expected: "NOT_ENOUGH_POINTS: need 6 xp, have 4",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Assert().Equal(tc.expected, err.Error())
			s.Assert().Equal(tc.code, err.Code)
			s.Assert().Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestErrorWithMeta() {
	err := errors.NotFound("character not found").
		WithMeta("character_id", "123").
		WithMeta("user_id", "456")

	s.Assert().Equal("123", err.Meta["character_id"])
	s.Assert().Equal("456", err.Meta["user_id"])
}

func (s *ErrorsTestSuite) TestWrap() {
	baseErr := fmt.Errorf("redis connection failed")
	wrapped := errors.Wrap(baseErr, "failed to get character")

	s.Assert().Equal(errors.CodeInternal, wrapped.Code)
	s.Assert().Equal("failed to get character", wrapped.Message)
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapPreservesCode() {
	base := errors.NotEnoughPoints("need 10 xp, have 2")
	wrapped := errors.Wrap(base, "failed to upgrade trait")

	s.Assert().Equal(errors.CodeNotEnoughPoints, wrapped.Code)
	s.Assert().True(errors.IsNotEnoughPoints(wrapped))
}

func (s *ErrorsTestSuite) TestTypeCheckHelpers() {
	s.Assert().True(errors.IsTraitAtMaxValue(errors.TraitAtMaxValue("at max")))
	s.Assert().True(errors.IsTraitAtMinValue(errors.TraitAtMinValue("at zero")))
	s.Assert().True(errors.IsInfeasiblePartition(errors.InfeasiblePartitionf("total %d does not fit", 40)))
	s.Assert().False(errors.IsNotEnoughPoints(errors.Internal("boom")))
	s.Assert().Equal(errors.CodeOK, errors.GetCode(nil))
}

func (s *ErrorsTestSuite) TestValidationBuilder() {
	err := errors.NewValidationBuilder().
		RequiredField("CharacterRepo").
		RequiredField("Roller").
		Build()

	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))

	s.Assert().NoError(errors.NewValidationBuilder().Build())
}
