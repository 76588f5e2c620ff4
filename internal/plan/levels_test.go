package plan

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGetLevelProfileSaturates(t *testing.T) {
	t.Parallel()

	if diff := cmp.Diff(GetLevelProfile(0), GetLevelProfile(-5)); diff != "" {
		t.Errorf("GetLevelProfile(-5) mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(GetLevelProfile(6), GetLevelProfile(99)); diff != "" {
		t.Errorf("GetLevelProfile(99) mismatch (-want +got):\n%s", diff)
	}
}

func TestLevelProfileTableIsMonotone(t *testing.T) {
	t.Parallel()

	for i := 1; i < len(levelProfiles); i++ {
		prev, curr := levelProfiles[i-1], levelProfiles[i]
		if curr.MinSets < prev.MinSets || curr.MaxSets < prev.MaxSets ||
			curr.RepBase < prev.RepBase || curr.WorkBase < prev.WorkBase ||
			curr.RestBase < prev.RestBase || curr.DayExerciseCount < prev.DayExerciseCount {
			t.Errorf("level %d is easier than level %d: %+v < %+v", i, i-1, curr, prev)
		}
	}
}

func TestLevelIndex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		level string
		want  int
	}{
		{name: "lowest", level: "Sedentario", want: 0},
		{name: "middle", level: "Media", want: 3},
		{name: "highest", level: "Atleta", want: 6},
		{name: "case insensitive", level: "media", want: 3},
		{name: "surrounding whitespace", level: " Alta ", want: 5},
		{name: "unknown defaults to middle", level: "Sobrehumana", want: 3},
		{name: "empty defaults to middle", level: "", want: 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := LevelIndex(tt.level); got != tt.want {
				t.Errorf("LevelIndex(%q) = %d, want %d", tt.level, got, tt.want)
			}
		})
	}
}

func TestGoalBodyPartsUnknownGoalFallsBack(t *testing.T) {
	t.Parallel()

	if diff := cmp.Diff(GoalBodyParts("Salud"), GoalBodyParts("Ganar amigos")); diff != "" {
		t.Errorf("unknown goal body parts mismatch (-want +got):\n%s", diff)
	}
}

func TestXPForDay(t *testing.T) {
	t.Parallel()

	if got := XPForDay(3, 6); got != 110 {
		t.Errorf("XPForDay(3, 6) = %d, want 110", got)
	}
	if got := XPForDay(0, 0); got != 50 {
		t.Errorf("XPForDay(0, 0) = %d, want 50", got)
	}
}

func TestLevelAdjustment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		xpRatio      float64
		minutesRatio float64
		want         int
	}{
		{name: "both exceeded", xpRatio: 1.2, minutesRatio: 1.1, want: 1},
		{name: "both missed", xpRatio: 0.1, minutesRatio: 0.4, want: -1},
		{name: "both on track", xpRatio: 0.8, minutesRatio: 0.9, want: 0},
		{name: "split votes cancel", xpRatio: 1.5, minutesRatio: 0.2, want: 0},
		{name: "one exceeded one on track", xpRatio: 1.5, minutesRatio: 0.8, want: 0},
		{name: "one missed one on track", xpRatio: 0.2, minutesRatio: 0.8, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := LevelAdjustment(tt.xpRatio, tt.minutesRatio); got != tt.want {
				t.Errorf("LevelAdjustment(%v, %v) = %d, want %d", tt.xpRatio, tt.minutesRatio, got, tt.want)
			}
		})
	}
}
