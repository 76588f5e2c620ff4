package plan

import (
	"strings"

	"github.com/AlvaroMoyaL/fitapp/internal/catalog"
)

// equipmentVocabulary maps substrings of free-text equipment descriptors to
// the closed vocabulary used by all equipment comparisons. Order matters:
// more specific keys sit above the generic ones they contain.
var equipmentVocabulary = []struct {
	match      string
	normalized string
}{
	{"body weight", "bodyweight"},
	{"bodyweight", "bodyweight"},
	{"smith", "smith"},
	{"ez barbell", "ez barbell"},
	{"barbell", "barbell"},
	{"dumbbell", "dumbbell"},
	{"kettlebell", "kettlebell"},
	{"leverage", "leverage"},
	{"assisted", "assisted"},
	{"cable", "cable"},
	{"band", "band"},
	{"rope", "rope"},
	{"bench", "bench"},
	{"machine", "machine"},
}

// NormalizeEquipment maps a free-text equipment descriptor to the closed
// equipment vocabulary. Unrecognized descriptors pass through lowercased.
func NormalizeEquipment(equipment string) string {
	lowered := strings.ToLower(strings.TrimSpace(equipment))
	for _, entry := range equipmentVocabulary {
		if strings.Contains(lowered, entry.match) {
			return entry.normalized
		}
	}
	return lowered
}

// modeEquipment lists the allowed normalized equipment per mode. Each mode is
// a superset of the previous one.
var modeEquipment = map[EquipmentMode][]string{
	ModeWeek:    {"bodyweight"},
	ModeWeekend: {"bodyweight", "dumbbell", "barbell", "bench"},
	ModeGym: {
		"bodyweight", "dumbbell", "barbell", "bench",
		"cable", "machine", "leverage", "assisted",
		"band", "kettlebell", "smith", "ez barbell", "rope",
	},
}

// noiseBlocklist contains name substrings dropped in quiet mode. Matching is
// case-insensitive against the exercise name.
var noiseBlocklist = []string{
	"burpee",
	"jump",
	"sprint",
	"hop",
	"skater",
	"high knees",
	"mountain climber",
	"battle rope",
}

// advancedMovementKeywords are name substrings excluded below level index 4
// regardless of the record's declared difficulty.
var advancedMovementKeywords = []string{
	"snatch",
	"clean and jerk",
	"clean",
	"jerk",
	"muscle up",
	"muscle-up",
	"pistol",
	"planche",
	"handstand",
	"pull-up",
	"pull up",
	"pullup",
	"chin-up",
	"chin up",
	"front lever",
	"dragon flag",
	"plyo",
	"box jump",
	"clap push",
	"one arm push",
}

// fallbackIfEmpty enforces the never-empty guarantee shared by every filter:
// a filter that would eliminate all candidates returns its input unchanged
// instead. The second return reports whether the guarantee fired.
func fallbackIfEmpty(pool, filtered []catalog.Exercise) ([]catalog.Exercise, bool) {
	if len(filtered) == 0 && len(pool) > 0 {
		return pool, true
	}
	return filtered, false
}

func filterPool(pool []catalog.Exercise, keep func(catalog.Exercise) bool) ([]catalog.Exercise, bool) {
	filtered := make([]catalog.Exercise, 0, len(pool))
	for _, exercise := range pool {
		if keep(exercise) {
			filtered = append(filtered, exercise)
		}
	}
	return fallbackIfEmpty(pool, filtered)
}

func isNoisy(exercise catalog.Exercise) bool {
	name := strings.ToLower(exercise.Name)
	for _, substring := range noiseBlocklist {
		if strings.Contains(name, substring) {
			return true
		}
	}
	return false
}

func allowedSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, value := range values {
		set[NormalizeEquipment(value)] = struct{}{}
	}
	return set
}

func filterByAllowedEquipment(pool []catalog.Exercise, allowed map[string]struct{}, quiet bool) ([]catalog.Exercise, bool) {
	return filterPool(pool, func(exercise catalog.Exercise) bool {
		if _, ok := allowed[NormalizeEquipment(exercise.Equipment)]; !ok {
			return false
		}
		if quiet && isNoisy(exercise) {
			return false
		}
		return true
	})
}

// FilterByMode keeps exercises whose normalized equipment belongs to the
// mode's allowed set, additionally dropping noisy movements in quiet mode.
// Unrecognized modes behave like ModeWeek.
func FilterByMode(pool []catalog.Exercise, mode EquipmentMode, quiet bool) []catalog.Exercise {
	allowed, ok := modeEquipment[mode]
	if !ok {
		allowed = modeEquipment[ModeWeek]
	}
	filtered, _ := filterByAllowedEquipment(pool, allowedSet(allowed), quiet)
	return filtered
}

// FilterByEquipmentList keeps exercises matching a caller-supplied equipment
// list, normalized through the shared vocabulary. An empty list is a no-op.
func FilterByEquipmentList(pool []catalog.Exercise, equipment []string, quiet bool) []catalog.Exercise {
	if len(equipment) == 0 {
		return pool
	}
	filtered, _ := filterByAllowedEquipment(pool, allowedSet(equipment), quiet)
	return filtered
}

func hasAdvancedName(exercise catalog.Exercise) bool {
	name := strings.ToLower(exercise.Name)
	for _, keyword := range advancedMovementKeywords {
		if strings.Contains(name, keyword) {
			return true
		}
	}
	return false
}

// FilterByLevel drops movements too demanding for low fitness levels. From
// level index 4 upwards everything passes.
func FilterByLevel(pool []catalog.Exercise, levelIndex int) []catalog.Exercise {
	filtered, _ := filterByLevel(pool, levelIndex)
	return filtered
}

func filterByLevel(pool []catalog.Exercise, levelIndex int) ([]catalog.Exercise, bool) {
	if levelIndex >= 4 {
		return pool, false
	}
	return filterPool(pool, func(exercise catalog.Exercise) bool {
		difficulty := strings.ToLower(exercise.Difficulty)
		if difficulty == "advanced" {
			return false
		}
		if levelIndex <= 1 && difficulty == "intermediate" {
			return false
		}
		if hasAdvancedName(exercise) {
			return false
		}
		if levelIndex <= 1 {
			switch NormalizeEquipment(exercise.Equipment) {
			case "barbell", "kettlebell":
				return false
			}
		}
		if levelIndex <= 2 {
			category := strings.ToLower(exercise.Category)
			if strings.Contains(category, "olympic") || strings.Contains(category, "power") {
				return false
			}
		}
		return true
	})
}

func filterByField(pool []catalog.Exercise, values []string, field func(catalog.Exercise) string) ([]catalog.Exercise, bool) {
	if len(values) == 0 {
		return pool, false
	}
	set := make(map[string]struct{}, len(values))
	for _, value := range values {
		set[strings.ToLower(value)] = struct{}{}
	}
	return filterPool(pool, func(exercise catalog.Exercise) bool {
		_, ok := set[strings.ToLower(field(exercise))]
		return ok
	})
}

// FilterByBodyParts keeps exercises whose body part is in the given set. An
// empty set is a no-op.
func FilterByBodyParts(pool []catalog.Exercise, bodyParts []string) []catalog.Exercise {
	filtered, _ := filterByField(pool, bodyParts, func(e catalog.Exercise) string { return e.BodyPart })
	return filtered
}

// FilterByTargets keeps exercises whose target muscle is in the given set.
func FilterByTargets(pool []catalog.Exercise, targets []string) []catalog.Exercise {
	filtered, _ := filterByField(pool, targets, func(e catalog.Exercise) string { return e.Target })
	return filtered
}

// FilterByCategories keeps exercises whose category is in the given set.
func FilterByCategories(pool []catalog.Exercise, categories []string) []catalog.Exercise {
	filtered, _ := filterByField(pool, categories, func(e catalog.Exercise) string { return e.Category })
	return filtered
}

// UniqueByID keeps the first occurrence per exercise id, preserving order.
func UniqueByID(pool []catalog.Exercise) []catalog.Exercise {
	seen := make(map[string]struct{}, len(pool))
	unique := make([]catalog.Exercise, 0, len(pool))
	for _, exercise := range pool {
		if _, ok := seen[exercise.ID]; ok {
			continue
		}
		seen[exercise.ID] = struct{}{}
		unique = append(unique, exercise)
	}
	return unique
}
