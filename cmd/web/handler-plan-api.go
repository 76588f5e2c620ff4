package main

import (
	"net/http"

	"github.com/AlvaroMoyaL/fitapp/internal/errors"
	"github.com/AlvaroMoyaL/fitapp/internal/plan"
)

// Session keys for the trailing-week activity counters driving the adaptive
// level adjustment.
const (
	sessionKeyWeekXP      = "week_xp"
	sessionKeyWeekMinutes = "week_minutes"
)

// planGET returns the latest generated plan.
func (app *application) planGET(w http.ResponseWriter, r *http.Request) {
	latest, err := app.planService.LatestPlan(r.Context())
	if errors.Is(err, plan.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, latest)
}

// planGeneratePOST generates a fresh weekly plan. The effective level is
// nudged by how last week's tracked XP and minutes compare against the
// profile goals, after which the counters start a new week.
func (app *application) planGeneratePOST(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	profile, err := app.planService.GetProfile(ctx)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	delta := 0
	if profile.WeeklyXPGoal > 0 && profile.WeeklyMinutesGoal > 0 {
		xpRatio := float64(app.sessionManager.GetInt(ctx, sessionKeyWeekXP)) / float64(profile.WeeklyXPGoal)
		minutesRatio := float64(app.sessionManager.GetInt(ctx, sessionKeyWeekMinutes)) / float64(profile.WeeklyMinutesGoal)
		delta = plan.LevelAdjustment(xpRatio, minutesRatio)
	}

	generated, err := app.planService.GeneratePlan(ctx, plan.GenerateOpts{AdjustLevelDelta: delta})
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	app.sessionManager.Put(ctx, sessionKeyWeekXP, 0)
	app.sessionManager.Put(ctx, sessionKeyWeekMinutes, 0)

	app.writeJSON(w, r, http.StatusCreated, generated)
}

// planDayRegeneratePOST redraws the exercises of one day of the latest plan.
func (app *application) planDayRegeneratePOST(w http.ResponseWriter, r *http.Request) {
	dayIndex, ok := app.parseDayIndexParam(w, r)
	if !ok {
		return
	}

	updated, err := app.planService.RegenerateDay(r.Context(), dayIndex)
	if errors.Is(err, plan.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, updated)
}

// planDayEquipmentPOST switches one day to an explicit equipment selection
// and redraws it.
func (app *application) planDayEquipmentPOST(w http.ResponseWriter, r *http.Request) {
	dayIndex, ok := app.parseDayIndexParam(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	mode := plan.EquipmentMode(r.Form.Get("mode"))
	switch mode {
	case plan.ModeWeek, plan.ModeWeekend, plan.ModeGym:
	default:
		http.Error(w, "invalid mode", http.StatusBadRequest)
		return
	}
	equipment := r.Form["equipment"]
	quiet := r.Form.Get("quiet") == "true"

	updated, err := app.planService.UpdateDayEquipment(r.Context(), dayIndex, mode, equipment, quiet)
	if errors.Is(err, plan.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, updated)
}

// planDayCompletePOST records one completed plan day into the week's
// activity counters.
func (app *application) planDayCompletePOST(w http.ResponseWriter, r *http.Request) {
	dayIndex, ok := app.parseDayIndexParam(w, r)
	if !ok {
		return
	}
	ctx := r.Context()

	latest, err := app.planService.LatestPlan(ctx)
	if errors.Is(err, plan.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	if dayIndex >= len(latest.Days) {
		http.NotFound(w, r)
		return
	}
	day := latest.Days[dayIndex]

	app.sessionManager.Put(ctx, sessionKeyWeekXP,
		app.sessionManager.GetInt(ctx, sessionKeyWeekXP)+day.XP)
	app.sessionManager.Put(ctx, sessionKeyWeekMinutes,
		app.sessionManager.GetInt(ctx, sessionKeyWeekMinutes)+estimateDayMinutes(day))

	app.writeJSON(w, r, http.StatusOK, map[string]int{
		"weekXp":      app.sessionManager.GetInt(ctx, sessionKeyWeekXP),
		"weekMinutes": app.sessionManager.GetInt(ctx, sessionKeyWeekMinutes),
	})
}

// estimateDayMinutes approximates the duration of a plan day from its
// prescriptions: roughly three seconds per rep plus rest between sets, or
// three rounds of work and rest for timed exercises.
func estimateDayMinutes(day plan.PlanDay) int {
	const (
		secondsPerRep = 3
		timedRounds   = 3
	)
	totalSeconds := 0
	for _, exercise := range day.Exercises {
		prescription := exercise.Prescription
		if prescription.Type == plan.PrescriptionTime {
			totalSeconds += timedRounds * (prescription.WorkSec + prescription.RestSec)
			continue
		}
		totalSeconds += prescription.Sets * (prescription.Reps*secondsPerRep + prescription.RestSec)
	}
	return totalSeconds / 60
}
