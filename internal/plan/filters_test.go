package plan

import (
	"fmt"
	"testing"

	"github.com/AlvaroMoyaL/fitapp/internal/catalog"
)

func exercise(id, name, bodyPart, target, equipment, category, difficulty string) catalog.Exercise {
	return catalog.Exercise{
		ID:         id,
		Name:       name,
		BodyPart:   bodyPart,
		Target:     target,
		Equipment:  equipment,
		Category:   category,
		Difficulty: difficulty,
	}
}

func TestNormalizeEquipment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: "body weight", want: "bodyweight"},
		{in: "Bodyweight", want: "bodyweight"},
		{in: "dumbbell", want: "dumbbell"},
		{in: "olympic barbell", want: "barbell"},
		{in: "ez barbell", want: "ez barbell"},
		{in: "smith machine", want: "smith"},
		{in: "leverage machine", want: "leverage"},
		{in: "assisted pull-up machine", want: "assisted"},
		{in: "cable", want: "cable"},
		{in: "resistance band", want: "band"},
		{in: "flat bench", want: "bench"},
		{in: "Medicine Ball", want: "medicine ball"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			if got := NormalizeEquipment(tt.in); got != tt.want {
				t.Errorf("NormalizeEquipment(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// assertNeverEmptySubset checks the shared filter guarantee: the result is a
// subset of the input and non-empty whenever the input is non-empty.
func assertNeverEmptySubset(t *testing.T, pool, filtered []catalog.Exercise) {
	t.Helper()
	if len(pool) > 0 && len(filtered) == 0 {
		t.Fatal("filter returned an empty result for a non-empty pool")
	}
	inPool := make(map[string]struct{}, len(pool))
	for _, e := range pool {
		inPool[e.ID] = struct{}{}
	}
	for _, e := range filtered {
		if _, ok := inPool[e.ID]; !ok {
			t.Errorf("filter invented exercise %q not present in the input pool", e.ID)
		}
	}
}

func TestFiltersNeverEmptyInvariant(t *testing.T) {
	t.Parallel()

	// None of these match ModeWeek, quiet mode, a dumbbell list, low
	// levels, or the membership sets below, so every filter is forced
	// into its fallback.
	pool := []catalog.Exercise{
		exercise("1", "Burpee Jump Snatch", "cardio", "cardiovascular system", "barbell", "olympic weightlifting", "advanced"),
		exercise("2", "Kettlebell Clean", "upper legs", "glutes", "kettlebell", "power", "advanced"),
	}

	filters := map[string][]catalog.Exercise{
		"mode":       FilterByMode(pool, ModeWeek, true),
		"equipment":  FilterByEquipmentList(pool, []string{"dumbbell"}, true),
		"level":      FilterByLevel(pool, 0),
		"body parts": FilterByBodyParts(pool, []string{"chest"}),
		"targets":    FilterByTargets(pool, []string{"pectorals"}),
		"categories": FilterByCategories(pool, []string{"mobility"}),
	}
	for name, filtered := range filters {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assertNeverEmptySubset(t, pool, filtered)
			if len(filtered) != len(pool) {
				t.Errorf("expected fallback to the full pool, got %d of %d", len(filtered), len(pool))
			}
		})
	}
}

func TestFilterByModeQuiet(t *testing.T) {
	t.Parallel()

	pool := []catalog.Exercise{
		exercise("burpee", "Burpee", "cardio", "cardiovascular system", "body weight", "cardio", ""),
		exercise("jump", "Jump Squat", "upper legs", "quads", "body weight", "", ""),
		exercise("squat", "Squat", "upper legs", "quads", "body weight", "", ""),
		exercise("row", "Barbell Row", "back", "lats", "barbell", "", ""),
	}

	filtered := FilterByMode(pool, ModeWeek, true)
	if len(filtered) != 1 || filtered[0].ID != "squat" {
		t.Errorf("quiet week mode kept %v, want only the squat", ids(filtered))
	}

	loud := FilterByMode(pool, ModeWeek, false)
	if len(loud) != 3 {
		t.Errorf("week mode kept %v, want the three bodyweight exercises", ids(loud))
	}
}

func TestFilterByLevel(t *testing.T) {
	t.Parallel()

	pool := []catalog.Exercise{
		exercise("easy", "Incline Push-up", "chest", "pectorals", "body weight", "", "beginner"),
		exercise("mid", "Diamond Push-up", "chest", "pectorals", "body weight", "", "intermediate"),
		exercise("hard", "Weighted Dip", "chest", "pectorals", "body weight", "", "advanced"),
		exercise("named", "Handstand Push-up", "shoulders", "delts", "body weight", "", ""),
		exercise("barbell", "Barbell Bench Press", "chest", "pectorals", "barbell", "", ""),
		exercise("olympic", "Overhead Squat", "upper legs", "quads", "barbell", "olympic weightlifting", ""),
	}

	tests := []struct {
		levelIndex int
		want       []string
	}{
		{levelIndex: 0, want: []string{"easy"}},
		{levelIndex: 1, want: []string{"easy"}},
		{levelIndex: 2, want: []string{"easy", "mid", "barbell"}},
		{levelIndex: 3, want: []string{"easy", "mid", "barbell", "olympic"}},
		{levelIndex: 4, want: []string{"easy", "mid", "hard", "named", "barbell", "olympic"}},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("level %d", tt.levelIndex), func(t *testing.T) {
			t.Parallel()
			got := ids(FilterByLevel(pool, tt.levelIndex))
			if fmt.Sprint(got) != fmt.Sprint(tt.want) {
				t.Errorf("FilterByLevel at %d kept %v, want %v", tt.levelIndex, got, tt.want)
			}
		})
	}
}

func TestUniqueByIDKeepsFirstOccurrence(t *testing.T) {
	t.Parallel()

	pool := []catalog.Exercise{
		exercise("a", "First A", "chest", "pectorals", "body weight", "", ""),
		exercise("b", "B", "back", "lats", "body weight", "", ""),
		exercise("a", "Second A", "chest", "pectorals", "body weight", "", ""),
	}
	unique := UniqueByID(pool)
	if len(unique) != 2 || unique[0].Name != "First A" || unique[1].ID != "b" {
		t.Errorf("UniqueByID = %v, want first occurrences of a and b", ids(unique))
	}
}

func ids(exercises []catalog.Exercise) []string {
	out := make([]string, len(exercises))
	for i, e := range exercises {
		out[i] = e.ID
	}
	return out
}
