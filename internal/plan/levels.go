package plan

import "strings"

// levelNames orders the recognized activity level names from least to most
// trained. "Media" sits at index 3 and is the default for unknown names.
var levelNames = []string{
	"Sedentario",
	"Principiante",
	"Baja",
	"Media",
	"Activa",
	"Alta",
	"Atleta",
}

const defaultLevelIndex = 3

// levelProfiles holds one row per level name. Every column is monotonically
// non-decreasing with the index so harder levels never prescribe less work.
var levelProfiles = [7]LevelProfile{
	{MinSets: 2, MaxSets: 3, RepBase: 8, RepStep: 1, WorkBase: 20, WorkStep: 5, RestBase: 25, RestStep: 3, DayExerciseCount: 4},
	{MinSets: 2, MaxSets: 3, RepBase: 8, RepStep: 1, WorkBase: 22, WorkStep: 5, RestBase: 25, RestStep: 3, DayExerciseCount: 4},
	{MinSets: 3, MaxSets: 4, RepBase: 9, RepStep: 1, WorkBase: 24, WorkStep: 5, RestBase: 28, RestStep: 4, DayExerciseCount: 5},
	{MinSets: 3, MaxSets: 4, RepBase: 9, RepStep: 1, WorkBase: 26, WorkStep: 5, RestBase: 28, RestStep: 4, DayExerciseCount: 6},
	{MinSets: 3, MaxSets: 5, RepBase: 10, RepStep: 1, WorkBase: 28, WorkStep: 5, RestBase: 30, RestStep: 5, DayExerciseCount: 6},
	{MinSets: 4, MaxSets: 5, RepBase: 10, RepStep: 1, WorkBase: 30, WorkStep: 5, RestBase: 30, RestStep: 5, DayExerciseCount: 7},
	{MinSets: 4, MaxSets: 6, RepBase: 11, RepStep: 1, WorkBase: 32, WorkStep: 5, RestBase: 32, RestStep: 6, DayExerciseCount: 7},
}

// LevelNames returns the recognized activity level names in ascending order.
func LevelNames() []string {
	names := make([]string, len(levelNames))
	copy(names, levelNames)
	return names
}

// LevelIndex maps an activity level name to its index in the level table.
// Unknown names map to the middle level.
func LevelIndex(name string) int {
	for i, candidate := range levelNames {
		if strings.EqualFold(candidate, strings.TrimSpace(name)) {
			return i
		}
	}
	return defaultLevelIndex
}

// GetLevelProfile returns the level profile row for the given index, clamping
// out-of-range indices to the nearest valid row.
func GetLevelProfile(levelIndex int) LevelProfile {
	return levelProfiles[clamp(levelIndex, 0, len(levelProfiles)-1)]
}

// goalBodyParts maps a goal name to the catalog body parts fetched and
// favored for that goal.
var goalBodyParts = map[string][]string{
	"Salud":           {"chest", "back", "upper legs", "waist", "cardio"},
	"Fuerza":          {"chest", "back", "upper legs", "shoulders", "upper arms"},
	"Pérdida de peso": {"cardio", "waist", "upper legs", "chest"},
	"Resistencia":     {"cardio", "upper legs", "waist", "back"},
	"Movilidad":       {"waist", "upper legs", "lower legs", "back", "neck"},
}

// GoalBodyParts returns the catalog body parts relevant to a goal. Unknown
// goals fall back to the general health set.
func GoalBodyParts(goal string) []string {
	if parts, ok := goalBodyParts[strings.TrimSpace(goal)]; ok {
		return parts
	}
	return goalBodyParts["Salud"]
}

// XPForDay computes the experience points awarded by completing one plan day.
func XPForDay(levelIndex, exerciseCount int) int {
	return 50 + levelIndex*10 + exerciseCount*5
}

// LevelAdjustment turns last week's goal completion ratios into a level delta
// in {-1, 0, +1}. Each ratio votes +1 when the goal was clearly exceeded and
// -1 when it was badly missed; the votes only move the level when they agree.
func LevelAdjustment(xpRatio, minutesRatio float64) int {
	vote := func(ratio float64) int {
		switch {
		case ratio >= 1.1:
			return 1
		case ratio <= 0.4:
			return -1
		default:
			return 0
		}
	}
	return (vote(xpRatio) + vote(minutesRatio)) / 2
}

func clamp(v, low, high int) int {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}
