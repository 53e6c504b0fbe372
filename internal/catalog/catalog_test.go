package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/natelandau/valentina-sub000/internal/catalog"
	"github.com/natelandau/valentina-sub000/internal/entities/wod"
)

type CatalogTestSuite struct {
	suite.Suite
	catalog catalog.Catalog
}

func (s *CatalogTestSuite) SetupTest() {
	s.catalog = catalog.Default()
}

func (s *CatalogTestSuite) TestTraitNamesCommon() {
	names := s.catalog.TraitNames(wod.CharClassMortal, wod.CategoryPhysical)
	s.Equal([]string{"Strength", "Dexterity", "Stamina"}, names)
}

func (s *CatalogTestSuite) TestTraitNamesClassExtras() {
	testCases := []struct {
		name     string
		class    wod.CharClass
		category wod.TraitCategory
		contains []string
		excludes []string
	}{
		{
			name:     "hunter talents include edges feeders",
			class:    wod.CharClassHunter,
			category: wod.CategoryTalents,
			contains: []string{"Alertness", "Awareness", "Insight", "Persuasion"},
		},
		{
			name:     "vampire talents are common only",
			class:    wod.CharClassVampire,
			category: wod.CategoryTalents,
			contains: []string{"Alertness", "Subterfuge"},
			excludes: []string{"Awareness", "Primal-Urge"},
		},
		{
			name:     "werewolf knowledges include lore",
			class:    wod.CharClassWerewolf,
			category: wod.CategoryKnowledges,
			contains: []string{"Occult", "Wyrm Lore", "Enigmas"},
		},
		{
			name:     "vampire backgrounds include generation",
			class:    wod.CharClassVampire,
			category: wod.CategoryBackgrounds,
			contains: []string{"Allies", "Generation", "Herd"},
		},
		{
			name:     "hunter virtues replace the common three",
			class:    wod.CharClassHunter,
			category: wod.CategoryVirtues,
			contains: []string{"Mercy", "Vision", "Zeal"},
			excludes: []string{"Conscience", "Self-Control", "Courage"},
		},
		{
			name:     "vampire other includes blood pool",
			class:    wod.CharClassVampire,
			category: wod.CategoryOther,
			contains: []string{"Willpower", "Blood Pool", "Humanity"},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			names := s.catalog.TraitNames(tc.class, tc.category)
			for _, want := range tc.contains {
				s.Contains(names, want)
			}
			for _, not := range tc.excludes {
				s.NotContains(names, not)
			}
		})
	}
}

func (s *CatalogTestSuite) TestTraitNamesAbsentCategory() {
	s.Empty(s.catalog.TraitNames(wod.CharClassMortal, wod.CategoryDisciplines))
	s.Empty(s.catalog.TraitNames(wod.CharClassVampire, wod.CategoryRenown))
	s.Empty(s.catalog.TraitNames(wod.CharClassWerewolf, wod.CategoryVirtues))
}

func (s *CatalogTestSuite) TestMaxValue() {
	s.Equal(5, s.catalog.MaxValue("Strength", wod.CategoryPhysical))
	s.Equal(10, s.catalog.MaxValue("Willpower", wod.CategoryOther))
	s.Equal(20, s.catalog.MaxValue("Blood Pool", wod.CategoryOther))
	s.Equal(1, s.catalog.MaxValue("Sense Wyrm", wod.CategoryGifts))
	s.Equal(10, s.catalog.MaxValue("Glory", wod.CategoryRenown))
}

func (s *CatalogTestSuite) TestMultiplier() {
	s.Equal(5, s.catalog.Multiplier("Strength", wod.CategoryPhysical))
	s.Equal(2, s.catalog.Multiplier("Brawl", wod.CategoryTalents))
	s.Equal(7, s.catalog.Multiplier("Dominate", wod.CategoryDisciplines))
	s.Equal(1, s.catalog.Multiplier("Willpower", wod.CategoryOther))
	s.Equal(10, s.catalog.Multiplier("Arete", wod.CategoryOther))
	s.Equal(2, s.catalog.Multiplier("Unheard Of", wod.CategoryOther))
}

func (s *CatalogTestSuite) TestFirstDotCost() {
	s.Equal(10, s.catalog.FirstDotCost("Dominate", wod.CategoryDisciplines))
	s.Equal(3, s.catalog.FirstDotCost("Brawl", wod.CategoryTalents))
	s.Equal(3, s.catalog.FirstDotCost("Allies", wod.CategoryBackgrounds))
	s.Equal(1, s.catalog.FirstDotCost("Willpower", wod.CategoryOther))
}

func TestCatalogTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogTestSuite))
}
