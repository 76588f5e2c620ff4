package plan

import (
	"math/rand/v2"
	"strings"

	"github.com/google/uuid"

	"github.com/AlvaroMoyaL/fitapp/internal/catalog"
)

// SelectionOptions parametrizes one call to BuildExercises. A non-empty
// EquipmentList takes precedence over Mode. Rand may be nil, in which case an
// unseeded source is used; tests inject a seeded one for determinism.
type SelectionOptions struct {
	Mode          EquipmentMode
	Quiet         bool
	Count         int
	LevelIndex    int
	EquipmentList []string
	Blueprint     Blueprint
	ExcludedIDs   map[string]struct{}
	Rand          *rand.Rand
}

// Selection is the outcome of one selector call. Relaxed reports that at
// least one filter fell back to its unfiltered input because the constraint
// would have emptied the pool, so the result may contain exercises that
// violate the requested constraints.
type Selection struct {
	Exercises []PlannedExercise
	Relaxed   bool
}

// picker draws exercises without replacement across successive sample calls,
// tracking used ids so no exercise appears twice in one selection.
type picker struct {
	rng  *rand.Rand
	used map[string]struct{}
}

func newPicker(rng *rand.Rand, excluded map[string]struct{}) *picker {
	used := make(map[string]struct{}, len(excluded))
	for id := range excluded {
		used[id] = struct{}{}
	}
	return &picker{rng: rng, used: used}
}

func (p *picker) sample(pool []catalog.Exercise, count int) []catalog.Exercise {
	if count <= 0 {
		return nil
	}
	candidates := make([]catalog.Exercise, 0, len(pool))
	for _, exercise := range pool {
		if _, ok := p.used[exercise.ID]; !ok {
			candidates = append(candidates, exercise)
		}
	}
	p.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	if count > len(candidates) {
		count = len(candidates)
	}
	picked := candidates[:count]
	for _, exercise := range picked {
		p.used[exercise.ID] = struct{}{}
	}
	return picked
}

func isCoreExercise(exercise catalog.Exercise) bool {
	if strings.ToLower(exercise.BodyPart) == "waist" {
		return true
	}
	switch strings.ToLower(exercise.Target) {
	case "core", "abs", "obliques":
		return true
	}
	return strings.ToLower(exercise.Category) == "core"
}

func isStrengthExercise(exercise catalog.Exercise) bool {
	if isCoreExercise(exercise) {
		return false
	}
	switch strings.ToLower(exercise.Category) {
	case "cardio", "mobility", "stretching", "balance":
		return false
	}
	return true
}

func restrictToBlueprint(pool []catalog.Exercise, bodyParts, targets, categories []string) ([]catalog.Exercise, bool) {
	relaxed := false
	restricted, fellBack := filterByField(pool, bodyParts, func(e catalog.Exercise) string { return e.BodyPart })
	relaxed = relaxed || fellBack
	restricted, fellBack = filterByField(restricted, targets, func(e catalog.Exercise) string { return e.Target })
	relaxed = relaxed || fellBack
	restricted, fellBack = filterByField(restricted, categories, func(e catalog.Exercise) string { return e.Category })
	return restricted, relaxed || fellBack
}

// BuildExercises draws a deduplicated exercise list for one training day and
// attaches a prescription to each pick. The result never exceeds
// opts.Count entries but may fall short when the catalog is too small after
// all fallbacks; an empty pool yields an empty selection, not an error.
func BuildExercises(pool []catalog.Exercise, opts SelectionOptions) Selection {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	var (
		basePool []catalog.Exercise
		relaxed  bool
		fellBack bool
	)
	if len(opts.EquipmentList) > 0 {
		basePool, fellBack = filterByAllowedEquipment(pool, allowedSet(opts.EquipmentList), opts.Quiet)
	} else {
		allowed, ok := modeEquipment[opts.Mode]
		if !ok {
			allowed = modeEquipment[ModeWeek]
		}
		basePool, fellBack = filterByAllowedEquipment(pool, allowedSet(allowed), opts.Quiet)
	}
	relaxed = relaxed || fellBack

	filtered, fellBack := filterByLevel(basePool, opts.LevelIndex)
	relaxed = relaxed || fellBack
	uniqueFiltered := UniqueByID(filtered)

	p := newPicker(rng, opts.ExcludedIDs)
	var picks []catalog.Exercise
	switch blueprint := opts.Blueprint.(type) {
	case nil:
		picks = p.sample(uniqueFiltered, opts.Count)
	case SplitBlueprint:
		picks, fellBack = selectSplit(p, uniqueFiltered, blueprint, opts.Count)
		relaxed = relaxed || fellBack
	case StagedBlueprint:
		picks, fellBack = selectStaged(p, uniqueFiltered, blueprint, opts.Count)
		relaxed = relaxed || fellBack
	}
	if len(picks) > opts.Count {
		picks = picks[:opts.Count]
	}

	exercises := make([]PlannedExercise, 0, len(picks))
	for _, exercise := range picks {
		exercises = append(exercises, PlannedExercise{
			Exercise:     exercise,
			InstanceID:   uuid.NewString(),
			Prescription: makePrescription(exercise, opts.LevelIndex),
		})
	}
	return Selection{Exercises: exercises, Relaxed: relaxed}
}

// selectSplit fills a strength quota and a core quota from the
// blueprint-restricted pool, backfilling each quota and then the day total
// from the wider filtered pool when candidates run out.
func selectSplit(p *picker, uniqueFiltered []catalog.Exercise, blueprint SplitBlueprint, count int) ([]catalog.Exercise, bool) {
	primaryPool, relaxed := restrictToBlueprint(uniqueFiltered, blueprint.BodyParts, blueprint.Targets, blueprint.Categories)

	var strengthPool, corePool []catalog.Exercise
	for _, exercise := range primaryPool {
		switch {
		case isCoreExercise(exercise):
			corePool = append(corePool, exercise)
		case isStrengthExercise(exercise):
			strengthPool = append(strengthPool, exercise)
		}
	}

	if len(blueprint.StrengthBodyParts) > 0 || len(blueprint.StrengthTargets) > 0 {
		narrowed := narrowStrengthPool(strengthPool, blueprint.StrengthBodyParts, blueprint.StrengthTargets)
		if len(narrowed) > 0 {
			strengthPool = narrowed
		} else if len(strengthPool) > 0 {
			relaxed = true
		}
	}

	strengthTarget := min(count, blueprint.StrengthCount)
	coreTarget := min(count-strengthTarget, blueprint.CoreCount)

	picks := p.sample(strengthPool, strengthTarget)
	if shortfall := strengthTarget - len(picks); shortfall > 0 {
		picks = append(picks, p.sample(uniqueFiltered, shortfall)...)
	}
	corePicks := p.sample(corePool, coreTarget)
	if shortfall := coreTarget - len(corePicks); shortfall > 0 {
		corePicks = append(corePicks, p.sample(uniqueFiltered, shortfall)...)
	}
	picks = append(picks, corePicks...)

	if shortfall := count - len(picks); shortfall > 0 {
		picks = append(picks, p.sample(uniqueFiltered, shortfall)...)
	}
	return picks, relaxed
}

// selectStaged draws the primary quota from the blueprint-restricted pool and
// the secondary quota from whatever else the filtered pool offers.
func selectStaged(p *picker, uniqueFiltered []catalog.Exercise, blueprint StagedBlueprint, count int) ([]catalog.Exercise, bool) {
	primaryPool, relaxed := restrictToBlueprint(uniqueFiltered, blueprint.BodyParts, blueprint.Targets, blueprint.Categories)

	picks := p.sample(primaryPool, blueprint.PrimaryCount)
	picks = append(picks, p.sample(uniqueFiltered, blueprint.SecondaryCount)...)
	if shortfall := count - len(picks); shortfall > 0 {
		picks = append(picks, p.sample(uniqueFiltered, shortfall)...)
	}
	return picks, relaxed
}

func narrowStrengthPool(strengthPool []catalog.Exercise, bodyParts, targets []string) []catalog.Exercise {
	partSet := make(map[string]struct{}, len(bodyParts))
	for _, part := range bodyParts {
		partSet[strings.ToLower(part)] = struct{}{}
	}
	targetSet := make(map[string]struct{}, len(targets))
	for _, target := range targets {
		targetSet[strings.ToLower(target)] = struct{}{}
	}
	var narrowed []catalog.Exercise
	for _, exercise := range strengthPool {
		if _, ok := partSet[strings.ToLower(exercise.BodyPart)]; ok {
			narrowed = append(narrowed, exercise)
			continue
		}
		if _, ok := targetSet[strings.ToLower(exercise.Target)]; ok {
			narrowed = append(narrowed, exercise)
		}
	}
	return narrowed
}

// makePrescription computes the dose for one exercise at the final adjusted
// level index. Cardio and stretching movements get timed work, everything
// else gets sets and reps. All outputs are clamped to fixed safe ranges.
func makePrescription(exercise catalog.Exercise, levelIndex int) Prescription {
	level := GetLevelProfile(levelIndex)

	difficultyAdj := 0
	switch strings.ToLower(exercise.Difficulty) {
	case "beginner":
		difficultyAdj = -1
	case "advanced":
		difficultyAdj = 1
	}

	category := strings.ToLower(exercise.Category)
	bodyPart := strings.ToLower(exercise.BodyPart)
	timed := strings.Contains(category, "cardio") ||
		strings.Contains(bodyPart, "cardio") ||
		strings.Contains(category, "stretching")

	if timed {
		return Prescription{
			Type:    PrescriptionTime,
			WorkSec: clamp(level.WorkBase+levelIndex*level.WorkStep+difficultyAdj*4, 20, 70),
			RestSec: clamp(level.RestBase+levelIndex*level.RestStep, 10, 60),
		}
	}
	return Prescription{
		Type:    PrescriptionReps,
		Reps:    clamp(level.RepBase+levelIndex*level.RepStep+difficultyAdj, 6, 18),
		Sets:    clamp(level.MinSets+levelIndex/2, level.MinSets, level.MaxSets),
		RestSec: clamp(level.RestBase+levelIndex*level.RestStep, 20, 90),
	}
}
