package chargen

import (
	"github.com/natelandau/valentina-sub000/internal/entities/wod"
	"github.com/natelandau/valentina-sub000/internal/pkg/rng"
)

// prioritizeCategories orders a stage's categories as primary,
// secondary, tertiary. Primary is the concept's specialty when it
// belongs to the stage; otherwise a uniform pick. The rest land in
// random order.
func prioritizeCategories(r rng.Roller, categories []wod.TraitCategory, specialty wod.TraitCategory) []wod.TraitCategory {
	remaining := make([]wod.TraitCategory, len(categories))
	copy(remaining, categories)

	ordered := make([]wod.TraitCategory, 0, len(categories))

	primaryIdx := -1
	for i, c := range remaining {
		if c == specialty {
			primaryIdx = i
			break
		}
	}
	if primaryIdx < 0 {
		primaryIdx = r.Intn(len(remaining))
	}
	ordered = append(ordered, remaining[primaryIdx])
	remaining = append(remaining[:primaryIdx], remaining[primaryIdx+1:]...)

	r.Shuffle(len(remaining), func(i, j int) {
		remaining[i], remaining[j] = remaining[j], remaining[i]
	})
	return append(ordered, remaining...)
}
