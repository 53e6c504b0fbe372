package chargen

import "github.com/natelandau/valentina-sub000/internal/entities/wod"

// Dot budgets are pure data. Each stage adds the level bonus to its
// base totals before splitting the totals across the prioritized
// categories.

type dotBudget struct {
	base  []int
	bonus map[wod.Level][]int
}

// totals returns base plus the level bonus, element-wise
func (b dotBudget) totals(level wod.Level) []int {
	out := make([]int, len(b.base))
	bonus := b.bonus[level]
	for i, v := range b.base {
		out[i] = v + bonus[i]
	}
	return out
}

// attributeBudget covers the physical/social/mental stage. Mortals and
// hunters start one dot short in their primary category.
var attributeBudget = dotBudget{
	base: []int{10, 8, 6},
	bonus: map[wod.Level][]int{
		wod.LevelNew:          {0, 0, 0},
		wod.LevelIntermediate: {1, 0, 0},
		wod.LevelAdvanced:     {2, 1, 0},
		wod.LevelElite:        {3, 2, 1},
	},
}

var mortalAttributeBudget = dotBudget{
	base:  []int{9, 8, 6},
	bonus: attributeBudget.bonus,
}

var abilityBudget = dotBudget{
	base: []int{13, 9, 5},
	bonus: map[wod.Level][]int{
		wod.LevelNew:          {0, 0, 0},
		wod.LevelIntermediate: {5, 3, 1},
		wod.LevelAdvanced:     {10, 6, 3},
		wod.LevelElite:        {15, 9, 5},
	},
}

type scalarBudget struct {
	base  int
	bonus map[wod.Level]int
}

func (b scalarBudget) total(level wod.Level) int {
	return b.base + b.bonus[level]
}

var virtueBudget = scalarBudget{
	base: 7,
	bonus: map[wod.Level]int{
		wod.LevelNew:          0,
		wod.LevelIntermediate: 0,
		wod.LevelAdvanced:     1,
		wod.LevelElite:        2,
	},
}

// backgroundBudget carries only the level bonus; the base comes from
// the character's class
var backgroundBonus = map[wod.Level]int{
	wod.LevelNew:          0,
	wod.LevelIntermediate: 1,
	wod.LevelAdvanced:     3,
	wod.LevelElite:        5,
}

var hunterEdgeBudget = scalarBudget{
	base: 5,
	bonus: map[wod.Level]int{
		wod.LevelNew:          0,
		wod.LevelIntermediate: 0,
		wod.LevelAdvanced:     1,
		wod.LevelElite:        2,
	},
}

// extraDisciplines is how many disciplines beyond the clan's fixed
// three a vampire picks up at each level
var extraDisciplines = map[wod.Level]int{
	wod.LevelNew:          0,
	wod.LevelIntermediate: 1,
	wod.LevelAdvanced:     2,
	wod.LevelElite:        3,
}

// werewolfLevelBonus is added to each werewolf starting trait
var werewolfLevelBonus = map[wod.Level]int{
	wod.LevelNew:          0,
	wod.LevelIntermediate: 1,
	wod.LevelAdvanced:     2,
	wod.LevelElite:        3,
}
