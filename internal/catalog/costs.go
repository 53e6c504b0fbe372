package catalog

import "github.com/natelandau/valentina-sub000/internal/entities/wod"

const (
	defaultMaxValue   = 5
	defaultMultiplier = 2
	defaultFirstDot   = 1
)

// Name lookups use the sheet name of the trait and take precedence
// over the category tables.

var maxValueByName = map[string]int{
	"Arete":        10,
	"Blood Pool":   20,
	"Conviction":   10,
	"Glory":        10,
	"Gnosis":       10,
	"Honor":        10,
	"Humanity":     10,
	"Quintessence": 20,
	"Rage":         10,
	"Willpower":    10,
	"Wisdom":       10,
}

var maxValueByCategory = map[wod.TraitCategory]int{
	wod.CategoryGifts:  1,
	wod.CategoryRenown: 10,
}

var multiplierByName = map[string]int{
	"Arete":        10,
	"Conviction":   2,
	"Gnosis":       2,
	"Humanity":     2,
	"Quintessence": 1,
	"Rage":         1,
	"Willpower":    1,
}

var multiplierByCategory = map[wod.TraitCategory]int{
	wod.CategoryPhysical:    5,
	wod.CategorySocial:      5,
	wod.CategoryMental:      5,
	wod.CategoryTalents:     2,
	wod.CategorySkills:      2,
	wod.CategoryKnowledges:  2,
	wod.CategoryVirtues:     2,
	wod.CategoryBackgrounds: 2,
	wod.CategoryMerits:      2,
	wod.CategoryFlaws:       2,
	wod.CategoryDisciplines: 7,
	wod.CategorySpheres:     7,
	wod.CategoryGifts:       3,
}

var firstDotByCategory = map[wod.TraitCategory]int{
	wod.CategoryDisciplines: 10,
	wod.CategorySpheres:     10,
	wod.CategoryBackgrounds: 3,
	wod.CategoryTalents:     3,
	wod.CategorySkills:      3,
	wod.CategoryKnowledges:  3,
	wod.CategoryPhysical:    5,
	wod.CategorySocial:      5,
	wod.CategoryMental:      5,
	wod.CategoryGifts:       7,
}
