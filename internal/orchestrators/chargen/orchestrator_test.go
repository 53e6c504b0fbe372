package chargen_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/natelandau/valentina-sub000/internal/entities/wod"
	"github.com/natelandau/valentina-sub000/internal/errors"
	"github.com/natelandau/valentina-sub000/internal/orchestrators/chargen"
	"github.com/natelandau/valentina-sub000/internal/pkg/idgen"
	"github.com/natelandau/valentina-sub000/internal/pkg/rng"
	"github.com/natelandau/valentina-sub000/internal/repositories/character"
	charactermock "github.com/natelandau/valentina-sub000/internal/repositories/character/mock"
)

type GenerateTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *charactermock.MockRepository
	service  chargen.Service
	ctx      context.Context
}

func (s *GenerateTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = charactermock.NewMockRepository(s.ctrl)

	svc, err := chargen.NewOrchestrator(&chargen.Config{
		CharacterRepo: s.mockRepo,
		Roller:        rng.New(42),
		IDGenerator:   idgen.NewSequential("char"),
	})
	s.Require().NoError(err)
	s.service = svc
}

func (s *GenerateTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

// expectCreate has the mock repository echo back whatever character the
// orchestrator built
func (s *GenerateTestSuite) expectCreate() {
	s.mockRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input character.CreateInput) (*character.CreateOutput, error) {
			return &character.CreateOutput{Character: input.Character}, nil
		})
}

func categorySum(char *wod.Character, cat wod.TraitCategory) int {
	sum := 0
	for _, t := range char.TraitsInCategory(cat) {
		sum += t.Value
	}
	return sum
}

func (s *GenerateTestSuite) TestGenerateVampire() {
	s.expectCreate()

	out, err := s.service.GenerateCharacter(s.ctx, &chargen.GenerateCharacterInput{
		UserID:     "user-1",
		CampaignID: "camp-1",
		Name:       "Armand",
		Class:      wod.CharClassVampire,
		Concept:    wod.ConceptSoldier,
		Clan:       wod.ClanToreador,
		Level:      wod.LevelNew,
	})
	s.Require().NoError(err)
	char := out.Character

	s.True(char.Clan.IsValid())

	// Nine attribute traits splitting 10+8+6 dots, each within [1, 5]
	attrSum := 0
	attrCount := 0
	for _, cat := range wod.AttributeCategories() {
		for _, t := range char.TraitsInCategory(cat) {
			s.GreaterOrEqual(t.Value, 1)
			s.LessOrEqual(t.Value, 5)
			attrSum += t.Value
			attrCount++
		}
	}
	s.Equal(9, attrCount)
	s.Equal(24, attrSum)

	// Soldier's specialty category gets the biggest share
	s.Equal(10, categorySum(char, wod.CategoryPhysical))

	// Ability dots: 13+9+5 at the lowest level
	abilitySum := 0
	for _, cat := range wod.AbilityCategories() {
		abilitySum += categorySum(char, cat)
	}
	s.Equal(27, abilitySum)

	// Clan disciplines are always present, capped at 2 for new blood
	for _, name := range wod.ClanToreador.Info().Disciplines {
		trait := char.Trait(name)
		s.Require().NotNil(trait, "missing clan discipline %s", name)
		s.GreaterOrEqual(trait.Value, 1)
		s.LessOrEqual(trait.Value, 2)
	}

	s.Equal(7, categorySum(char, wod.CategoryVirtues))

	// Derived traits follow from the virtues
	willpower := char.Trait("Willpower")
	s.Require().NotNil(willpower)
	s.Equal(char.Trait("Self-Control").Value+char.Trait("Courage").Value, willpower.Value)
	s.Equal(10, willpower.MaxValue)

	humanity := char.Trait("Humanity")
	s.Require().NotNil(humanity)
	s.Equal(char.Trait("Conscience").Value, humanity.Value)
}

func (s *GenerateTestSuite) TestGenerateMortalConceptBonus() {
	s.expectCreate()

	out, err := s.service.GenerateCharacter(s.ctx, &chargen.GenerateCharacterInput{
		UserID:  "user-1",
		Class:   wod.CharClassMortal,
		Concept: wod.ConceptBerserker,
		Level:   wod.LevelNew,
	})
	s.Require().NoError(err)
	char := out.Character

	// Mortals start one attribute dot short: 9+8+6
	attrSum := 0
	for _, cat := range wod.AttributeCategories() {
		attrSum += categorySum(char, cat)
	}
	s.Equal(23, attrSum)

	// Berserker grants one dot of Potence
	potence := char.Trait("Potence")
	s.Require().NotNil(potence)
	s.Equal(1, potence.Value)
	s.Equal(wod.CategoryDisciplines, potence.Category)
}

func (s *GenerateTestSuite) TestGenerateHunter() {
	s.expectCreate()

	out, err := s.service.GenerateCharacter(s.ctx, &chargen.GenerateCharacterInput{
		UserID: "user-1",
		Class:  wod.CharClassHunter,
		Creed:  wod.CreedDefender,
		Level:  wod.LevelNew,
	})
	s.Require().NoError(err)
	char := out.Character

	willpower := char.Trait("Willpower")
	s.Require().NotNil(willpower)
	s.Equal(3, willpower.Value, "hunter willpower is fixed, not derived")

	conviction := char.Trait("Conviction")
	s.Require().NotNil(conviction)
	s.Equal(wod.CreedDefender.Info().Conviction, conviction.Value)

	s.Equal(5, categorySum(char, wod.CategoryEdges))
	s.Len(char.TraitsInCategory(wod.CategoryEdges), len(wod.CreedDefender.Info().Edges))
}

func (s *GenerateTestSuite) TestHunterWithoutConceptUsesCreedSpecialties() {
	s.expectCreate()

	out, err := s.service.GenerateCharacter(s.ctx, &chargen.GenerateCharacterInput{
		UserID: "user-1",
		Class:  wod.CharClassHunter,
		Creed:  wod.CreedDefender,
		Level:  wod.LevelNew,
	})
	s.Require().NoError(err)
	char := out.Character

	// No concept is rolled; the creed stands in for it
	s.False(char.Concept.IsValid())

	// Defender specialties take the primary dot totals: Mental gets 9
	// of the hunter's 9+8+6 attribute dots, Talents 13 of the 13+9+5
	// ability dots
	s.Equal(9, categorySum(char, wod.CategoryMental))
	s.Equal(13, categorySum(char, wod.CategoryTalents))

	// Empathy is the Defender signature ability: it meets the floor
	// unless every possible donor was drained
	empathy := char.Trait("Empathy")
	s.Require().NotNil(empathy)
	if empathy.Value < 3 {
		for _, t := range char.TraitsInCategory(wod.CategoryTalents) {
			if t.Name != "Empathy" {
				s.Equal(0, t.Value)
			}
		}
	}
}

func (s *GenerateTestSuite) TestGenerateWerewolf() {
	s.expectCreate()

	out, err := s.service.GenerateCharacter(s.ctx, &chargen.GenerateCharacterInput{
		UserID: "user-1",
		Class:  wod.CharClassWerewolf,
		Level:  wod.LevelNew,
	})
	s.Require().NoError(err)
	char := out.Character

	s.True(char.Breed.Info().StartingGnosis > 0 || char.Trait("Gnosis") != nil)
	s.Require().NotNil(char.Trait("Gnosis"))
	s.Require().NotNil(char.Trait("Rage"))
	s.Require().NotNil(char.Trait("Willpower"))
	s.NotEmpty(char.Totem)

	s.Equal(char.Breed.Info().StartingGnosis, char.Trait("Gnosis").Value)
	s.Equal(char.Auspice.Info().StartingRage, char.Trait("Rage").Value)
	s.Equal(char.Tribe.Info().StartingWillpower, char.Trait("Willpower").Value)

	// Werewolves have no virtues and derive nothing from them
	s.Empty(char.TraitsInCategory(wod.CategoryVirtues))

	// Rank starts at one for a new character
	rank := char.Trait("Rank")
	s.Require().NotNil(rank)
	s.Equal(1, rank.Value)

	for _, gift := range char.TraitsInCategory(wod.CategoryGifts) {
		s.Equal(1, gift.Value)
		s.Equal(1, gift.MaxValue)
	}
}

func (s *GenerateTestSuite) TestGenerateRandomIdentity() {
	s.expectCreate()

	out, err := s.service.GenerateCharacter(s.ctx, &chargen.GenerateCharacterInput{
		UserID: "user-1",
	})
	s.Require().NoError(err)
	char := out.Character

	s.True(char.Class.IsValid())
	s.True(char.Level.IsValid())
	if char.Class == wod.CharClassVampire {
		s.True(char.Clan.IsValid())
	}
	if char.Class == wod.CharClassHunter {
		s.True(char.Creed.IsValid())
	}
}

func (s *GenerateTestSuite) TestPlayerCharacterGetsFreebiePoints() {
	s.expectCreate()

	out, err := s.service.GenerateCharacter(s.ctx, &chargen.GenerateCharacterInput{
		UserID:          "user-1",
		Class:           wod.CharClassMortal,
		Level:           wod.LevelNew,
		PlayerCharacter: true,
	})
	s.Require().NoError(err)
	s.Equal(chargen.StartingFreebiePoints, out.Character.FreebiePoints)
}

func (s *GenerateTestSuite) TestGenerateValidation() {
	_, err := s.service.GenerateCharacter(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = s.service.GenerateCharacter(s.ctx, &chargen.GenerateCharacterInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *GenerateTestSuite) TestLevelScalesAttributeDots() {
	s.expectCreate()

	out, err := s.service.GenerateCharacter(s.ctx, &chargen.GenerateCharacterInput{
		UserID: "user-1",
		Class:  wod.CharClassVampire,
		Clan:   wod.ClanToreador,
		Level:  wod.LevelElite,
	})
	s.Require().NoError(err)
	char := out.Character

	attrSum := 0
	for _, cat := range wod.AttributeCategories() {
		attrSum += categorySum(char, cat)
	}
	// Elite adds 3+2+1 to the 10+8+6 base
	s.Equal(30, attrSum)
}

func (s *GenerateTestSuite) TestSameSeedGeneratesIdenticalCharacter() {
	generate := func(seed uint64) *wod.Character {
		s.expectCreate()
		svc, err := chargen.NewOrchestrator(&chargen.Config{
			CharacterRepo: s.mockRepo,
			Roller:        rng.New(seed),
			IDGenerator:   idgen.NewSequential("char"),
		})
		s.Require().NoError(err)

		out, err := svc.GenerateCharacter(s.ctx, &chargen.GenerateCharacterInput{
			UserID:     "user-1",
			CampaignID: "camp-1",
		})
		s.Require().NoError(err)
		return out.Character
	}

	first := generate(99)
	second := generate(99)

	s.Equal(first.Class, second.Class)
	s.Equal(first.Concept, second.Concept)
	s.Equal(first.Clan, second.Clan)
	s.Equal(first.Creed, second.Creed)
	s.Equal(first.Level, second.Level)

	s.Require().Equal(len(first.Traits), len(second.Traits))
	for i, trait := range first.Traits {
		s.Equal(trait.Name, second.Traits[i].Name)
		s.Equal(trait.Category, second.Traits[i].Category)
		s.Equal(trait.Value, second.Traits[i].Value)
	}
}

func TestGenerateTestSuite(t *testing.T) {
	suite.Run(t, new(GenerateTestSuite))
}
