package plan

// Blueprint describes what one training day should contain. The two concrete
// shapes are SplitBlueprint (strength/core quota) and StagedBlueprint
// (primary/secondary draw); the selector branches exhaustively on them.
type Blueprint interface {
	FocusName() string
	ExerciseCount() int
	blueprint()
}

// SplitBlueprint asks for a strength/core quota split within the filtered
// pool. StrengthBodyParts/StrengthTargets optionally narrow the strength
// side further than the day's overall filters.
type SplitBlueprint struct {
	Focus             string
	BodyParts         []string
	Targets           []string
	Categories        []string
	StrengthBodyParts []string
	StrengthTargets   []string
	DailyCount        int
	StrengthCount     int
	CoreCount         int
}

func (b SplitBlueprint) FocusName() string  { return b.Focus }
func (b SplitBlueprint) ExerciseCount() int { return b.DailyCount }
func (SplitBlueprint) blueprint()           {}

// StagedBlueprint asks for a primary draw from the blueprint-restricted pool
// followed by a secondary draw from the rest of the filtered pool.
type StagedBlueprint struct {
	Focus          string
	BodyParts      []string
	Targets        []string
	Categories     []string
	PrimaryCount   int
	SecondaryCount int
}

func (b StagedBlueprint) FocusName() string  { return b.Focus }
func (b StagedBlueprint) ExerciseCount() int { return b.PrimaryCount + b.SecondaryCount }
func (StagedBlueprint) blueprint()           {}

// strengthCycleDay returns the 3-day rotating strength focus shared by the
// full-body and goal-driven templates.
func strengthCycleDay(dayIndex int) SplitBlueprint {
	switch dayIndex % 3 {
	case 0:
		return SplitBlueprint{
			Focus:             "Pecho y espalda",
			BodyParts:         []string{"chest", "back", "waist"},
			StrengthBodyParts: []string{"chest", "back"},
			DailyCount:        6,
			StrengthCount:     3,
			CoreCount:         3,
		}
	case 1:
		return SplitBlueprint{
			Focus:             "Piernas",
			BodyParts:         []string{"upper legs", "lower legs", "waist"},
			StrengthBodyParts: []string{"upper legs", "lower legs"},
			DailyCount:        6,
			StrengthCount:     3,
			CoreCount:         3,
		}
	default:
		return SplitBlueprint{
			Focus:             "Hombros y brazos",
			BodyParts:         []string{"shoulders", "upper arms", "lower arms", "waist"},
			StrengthBodyParts: []string{"shoulders", "upper arms"},
			DailyCount:        6,
			StrengthCount:     3,
			CoreCount:         3,
		}
	}
}

func upperLowerDay(dayIndex int) SplitBlueprint {
	if dayIndex%2 == 0 {
		return SplitBlueprint{
			Focus:             "Tren superior",
			BodyParts:         []string{"chest", "back", "shoulders", "upper arms", "waist"},
			StrengthBodyParts: []string{"chest", "back", "shoulders", "upper arms"},
			DailyCount:        6,
			StrengthCount:     3,
			CoreCount:         3,
		}
	}
	return SplitBlueprint{
		Focus:             "Tren inferior",
		BodyParts:         []string{"upper legs", "lower legs", "waist"},
		StrengthBodyParts: []string{"upper legs", "lower legs"},
		DailyCount:        6,
		StrengthCount:     3,
		CoreCount:         3,
	}
}

// coreTargets extends the push/pull/legs target sets so the core side of the
// split still has candidates under target-based filtering.
var coreTargets = []string{"core", "abs", "obliques"}

func pplDay(dayIndex int) SplitBlueprint {
	switch dayIndex % 3 {
	case 0:
		push := []string{"pectorals", "delts", "triceps", "serratus anterior"}
		return SplitBlueprint{
			Focus:           "Empuje",
			Targets:         append(append([]string{}, push...), coreTargets...),
			StrengthTargets: push,
			DailyCount:      6,
			StrengthCount:   3,
			CoreCount:       3,
		}
	case 1:
		pull := []string{"lats", "upper back", "biceps", "forearms", "levator scapulae"}
		return SplitBlueprint{
			Focus:           "Tirón",
			Targets:         append(append([]string{}, pull...), coreTargets...),
			StrengthTargets: pull,
			DailyCount:      6,
			StrengthCount:   3,
			CoreCount:       3,
		}
	default:
		legs := []string{"quads", "hamstrings", "glutes", "calves"}
		return SplitBlueprint{
			Focus:           "Piernas",
			Targets:         append(append([]string{}, legs...), coreTargets...),
			StrengthTargets: legs,
			DailyCount:      6,
			StrengthCount:   3,
			CoreCount:       3,
		}
	}
}

func mobilityDay(withCore bool) StagedBlueprint {
	categories := []string{"mobility", "stretching", "cardio"}
	if withCore {
		categories = append(categories, "core")
	}
	return StagedBlueprint{
		Focus:          "Movilidad",
		BodyParts:      []string{"waist", "upper legs", "lower legs", "back", "neck"},
		Categories:     categories,
		PrimaryCount:   4,
		SecondaryCount: 1,
	}
}

// buildDayBlueprint is a pure function of template, day index, and goal. The
// same inputs always yield a structurally identical blueprint. Unrecognized
// templates fall back to the rotating strength pattern.
func buildDayBlueprint(template Template, dayIndex int, goal string) Blueprint {
	switch template {
	case TemplateFullBody:
		return strengthCycleDay(dayIndex)
	case TemplateUpperLower:
		return upperLowerDay(dayIndex)
	case TemplatePPL:
		return pplDay(dayIndex)
	case TemplateCardioCore:
		return StagedBlueprint{
			Focus:          "Cardio y core",
			BodyParts:      []string{"cardio", "waist"},
			PrimaryCount:   3,
			SecondaryCount: 2,
		}
	case TemplateMobility:
		return mobilityDay(false)
	case TemplateGoal:
		if goal == "Movilidad" {
			return mobilityDay(true)
		}
		return strengthCycleDay(dayIndex)
	default:
		return strengthCycleDay(dayIndex)
	}
}
