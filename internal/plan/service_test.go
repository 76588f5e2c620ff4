package plan_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/AlvaroMoyaL/fitapp/internal/errors"
	"github.com/AlvaroMoyaL/fitapp/internal/plan"
	"github.com/AlvaroMoyaL/fitapp/internal/sqlite"
	"github.com/AlvaroMoyaL/fitapp/internal/testhelpers"
)

func newTestService(t *testing.T) *plan.Service {
	t.Helper()
	logger := testhelpers.NewLogger(testhelpers.NewWriter(t))
	ctx, cancel := context.WithCancel(context.Background())
	db, err := sqlite.NewDatabase(ctx, ":memory:", logger)
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() {
		cancel()
		_ = db.Close()
	})
	return plan.NewService(db, logger, nil, nil)
}

func TestServiceProfileRoundTrip(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	// The schema fixtures seed a default profile.
	initial, err := service.GetProfile(ctx)
	if err != nil {
		t.Fatalf("get initial profile: %v", err)
	}
	if initial.Nivel != "Media" || initial.Objetivo != "Salud" {
		t.Errorf("unexpected default profile: %+v", initial)
	}

	want := plan.Profile{
		Nivel:             "Alta",
		Objetivo:          "Fuerza",
		PlanTemplate:      plan.TemplatePPL,
		TrainDays:         []int{0, 2, 4, 5},
		Equipment:         []string{"dumbbell", "band"},
		Quiet:             false,
		WeeklyXPGoal:      700,
		WeeklyMinutesGoal: 200,
	}
	if err = service.SaveProfile(ctx, want); err != nil {
		t.Fatalf("save profile: %v", err)
	}
	got, err := service.GetProfile(ctx)
	if err != nil {
		t.Fatalf("get saved profile: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("profile mismatch (-want +got):\n%s", diff)
	}
}

func TestServiceGeneratePlanPersists(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	if _, err := service.LatestPlan(ctx); !errors.Is(err, plan.ErrNotFound) {
		t.Fatalf("latest plan before generation: got %v, want ErrNotFound", err)
	}

	// Without a network session the pool comes from the built-in exercise
	// list, which is enough for a complete plan.
	generated, err := service.GeneratePlan(ctx, plan.GenerateOpts{ForceLocal: true})
	if err != nil {
		t.Fatalf("generate plan: %v", err)
	}
	if len(generated.Days) != 3 {
		t.Fatalf("got %d plan days, want 3 from the default profile", len(generated.Days))
	}
	for dayIndex, day := range generated.Days {
		if len(day.Exercises) == 0 {
			t.Errorf("day %d has no exercises", dayIndex)
		}
	}

	latest, err := service.LatestPlan(ctx)
	if err != nil {
		t.Fatalf("latest plan after generation: %v", err)
	}
	if diff := cmp.Diff(generated, latest); diff != "" {
		t.Errorf("persisted plan mismatch (-generated +latest):\n%s", diff)
	}
}

func TestServiceRegenerateDay(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	generated, err := service.GeneratePlan(ctx, plan.GenerateOpts{ForceLocal: true})
	if err != nil {
		t.Fatalf("generate plan: %v", err)
	}

	updated, err := service.RegenerateDay(ctx, 1)
	if err != nil {
		t.Fatalf("regenerate day: %v", err)
	}
	if len(updated.Days) != len(generated.Days) {
		t.Fatalf("day count changed from %d to %d", len(generated.Days), len(updated.Days))
	}

	if _, err = service.RegenerateDay(ctx, 42); !errors.Is(err, plan.ErrNotFound) {
		t.Errorf("regenerating a missing day: got %v, want ErrNotFound", err)
	}
}

func TestServiceUpdateDayEquipment(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	if _, err := service.GeneratePlan(ctx, plan.GenerateOpts{ForceLocal: true}); err != nil {
		t.Fatalf("generate plan: %v", err)
	}

	updated, err := service.UpdateDayEquipment(ctx, 0, plan.ModeWeekend, []string{"dumbbell"}, false)
	if err != nil {
		t.Fatalf("update day equipment: %v", err)
	}
	day := updated.Days[0]
	if day.Mode != plan.ModeWeekend || day.Quiet {
		t.Errorf("day settings not applied: mode %q quiet %v", day.Mode, day.Quiet)
	}
	if len(day.EquipmentList) != 1 || day.EquipmentList[0] != "dumbbell" {
		t.Errorf("equipment list not applied: %v", day.EquipmentList)
	}
	if len(day.Exercises) == 0 {
		t.Error("updated day has no exercises")
	}
}

func TestServiceDescribeExercise(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	if _, err := service.GeneratePlan(ctx, plan.GenerateOpts{ForceLocal: true}); err != nil {
		t.Fatalf("generate plan: %v", err)
	}

	latest, err := service.LatestPlan(ctx)
	if err != nil {
		t.Fatalf("latest plan: %v", err)
	}
	wanted := latest.Pool[0]

	got, err := service.DescribeExercise(ctx, wanted.ID)
	if err != nil {
		t.Fatalf("describe exercise: %v", err)
	}
	if got.ID != wanted.ID {
		t.Errorf("got exercise %q, want %q", got.ID, wanted.ID)
	}

	if _, err = service.DescribeExercise(ctx, "no-such-exercise"); !errors.Is(err, plan.ErrNotFound) {
		t.Errorf("describing a missing exercise: got %v, want ErrNotFound", err)
	}
}
