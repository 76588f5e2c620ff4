package plan

import (
	"fmt"
	"math/rand/v2"
	"sort"
	"time"

	"github.com/AlvaroMoyaL/fitapp/internal/catalog"
)

// GenerateOptions tunes one plan generation. AdjustLevelDelta is the adaptive
// nudge in {-1, 0, +1} from LevelAdjustment; Rand may be nil.
type GenerateOptions struct {
	AdjustLevelDelta int
	Rand             *rand.Rand
}

const defaultTrainDayCount = 3

// normalizeTrainDays returns the valid weekday indices (0 = Monday) from the
// profile selection, sorted and deduplicated.
func normalizeTrainDays(trainDays []int) []int {
	seen := make(map[int]struct{}, len(trainDays))
	normalized := make([]int, 0, len(trainDays))
	for _, day := range trainDays {
		if day < 0 || day > 6 {
			continue
		}
		if _, ok := seen[day]; ok {
			continue
		}
		seen[day] = struct{}{}
		normalized = append(normalized, day)
	}
	sort.Ints(normalized)
	return normalized
}

// AssemblePlan generates a complete weekly plan from a catalog pool and a
// profile. The pool is treated as an immutable snapshot; a fully empty pool
// yields a degenerate plan with zero-exercise days rather than an error.
func AssemblePlan(pool []catalog.Exercise, profile Profile, opts GenerateOptions) Plan {
	levelIndex := clamp(LevelIndex(profile.Nivel)+opts.AdjustLevelDelta, 0, 6)
	level := GetLevelProfile(levelIndex)

	trainDays := normalizeTrainDays(profile.TrainDays)
	dayCount := len(trainDays)
	if dayCount == 0 {
		dayCount = defaultTrainDayCount
	}
	dayCount = clamp(dayCount, 1, 7)

	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	// Exercises picked on earlier days are excluded on later ones so the
	// week does not repeat movements while the pool allows it.
	excluded := make(map[string]struct{})
	days := make([]PlanDay, 0, dayCount)
	totalXP := 0
	for dayIndex := 0; dayIndex < dayCount; dayIndex++ {
		blueprint := buildDayBlueprint(profile.PlanTemplate, dayIndex, profile.Objetivo)
		count := blueprint.ExerciseCount()
		if count == 0 {
			count = level.DayExerciseCount
		}

		// Coarse pre-narrowing by the day's body parts before the
		// blueprint filters run inside the selector.
		dayPool := coarseDayPool(pool, blueprint)

		selection := BuildExercises(dayPool, SelectionOptions{
			Mode:        ModeWeek,
			Quiet:       true,
			Count:       count,
			LevelIndex:  levelIndex,
			Blueprint:   blueprint,
			ExcludedIDs: excluded,
			Rand:        rng,
		})
		for _, exercise := range selection.Exercises {
			excluded[exercise.ID] = struct{}{}
		}

		xp := XPForDay(levelIndex, len(selection.Exercises))
		totalXP += xp
		days = append(days, PlanDay{
			Title:     fmt.Sprintf("Día %d: %s", dayIndex+1, blueprint.FocusName()),
			Mode:      ModeWeek,
			Quiet:     true,
			Focus:     blueprint.FocusName(),
			Exercises: selection.Exercises,
			XP:        xp,
		})
	}

	return Plan{
		CreatedAt:    time.Now().UTC(),
		Days:         days,
		TotalXP:      totalXP,
		Pool:         pool,
		Template:     profile.PlanTemplate,
		WeekSchedule: buildWeekSchedule(trainDays, days),
	}
}

func coarseDayPool(pool []catalog.Exercise, blueprint Blueprint) []catalog.Exercise {
	var bodyParts []string
	switch b := blueprint.(type) {
	case SplitBlueprint:
		bodyParts = b.BodyParts
	case StagedBlueprint:
		bodyParts = b.BodyParts
	}
	if len(bodyParts) == 0 {
		return pool
	}
	return FilterByBodyParts(pool, bodyParts)
}

// buildWeekSchedule maps generated plan days onto the 7 weekday slots by
// walking the selected train days in increasing order. Unselected weekdays
// and selected weekdays beyond the generated day count stay rest slots.
func buildWeekSchedule(trainDays []int, days []PlanDay) [7]WeekSlot {
	var schedule [7]WeekSlot
	for i := range schedule {
		schedule[i] = WeekSlot{Type: SlotRest}
	}
	for i, weekday := range trainDays {
		if i >= len(days) {
			break
		}
		schedule[weekday] = WeekSlot{Type: SlotTrain, Title: days[i].Title}
	}
	return schedule
}

// RebuildDay regenerates the exercises of one day of an existing plan from
// its stored pool snapshot, excluding every exercise used by the other days.
// Day indices outside the plan are ignored.
func RebuildDay(p *Plan, dayIndex int, profile Profile, opts GenerateOptions) {
	if dayIndex < 0 || dayIndex >= len(p.Days) {
		return
	}
	levelIndex := clamp(LevelIndex(profile.Nivel)+opts.AdjustLevelDelta, 0, 6)
	level := GetLevelProfile(levelIndex)

	excluded := make(map[string]struct{})
	for i, day := range p.Days {
		if i == dayIndex {
			continue
		}
		for _, exercise := range day.Exercises {
			excluded[exercise.ID] = struct{}{}
		}
	}

	blueprint := buildDayBlueprint(p.Template, dayIndex, profile.Objetivo)
	count := blueprint.ExerciseCount()
	if count == 0 {
		count = level.DayExerciseCount
	}

	day := &p.Days[dayIndex]
	selection := BuildExercises(coarseDayPool(p.Pool, blueprint), SelectionOptions{
		Mode:          day.Mode,
		Quiet:         day.Quiet,
		Count:         count,
		LevelIndex:    levelIndex,
		EquipmentList: day.EquipmentList,
		Blueprint:     blueprint,
		ExcludedIDs:   excluded,
		Rand:          opts.Rand,
	})
	day.Exercises = selection.Exercises

	totalXP := 0
	for i := range p.Days {
		if i == dayIndex {
			p.Days[i].XP = XPForDay(levelIndex, len(selection.Exercises))
		}
		totalXP += p.Days[i].XP
	}
	p.TotalXP = totalXP
}
