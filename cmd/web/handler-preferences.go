package main

import (
	"net/http"
	"slices"
	"strconv"

	"github.com/AlvaroMoyaL/fitapp/internal/plan"
)

const (
	defaultWeeklyXPGoal      = 500
	defaultWeeklyMinutesGoal = 150
)

type weekdayOption struct {
	// Index is the Monday-based weekday index used as the form value.
	Index int
	Name  string
	// Selected indicates the day is part of the training schedule.
	Selected bool
}

type preferencesTemplateData struct {
	BaseTemplateData
	Profile          plan.Profile
	Levels           []string
	Goals            []string
	Templates        []plan.Template
	Weekdays         []weekdayOption
	EquipmentOptions []string
}

var goalOptions = []string{"Salud", "Fuerza", "Pérdida de peso", "Resistencia", "Movilidad"}

var templateOptions = []plan.Template{
	plan.TemplateFullBody,
	plan.TemplateUpperLower,
	plan.TemplatePPL,
	plan.TemplateCardioCore,
	plan.TemplateMobility,
	plan.TemplateGoal,
}

// equipmentOptions is the normalized equipment vocabulary offered in the
// preferences form.
var equipmentOptions = []string{
	"bodyweight", "dumbbell", "barbell", "bench", "band",
	"kettlebell", "cable", "machine", "rope",
}

func profileToWeekdays(profile plan.Profile, language string) []weekdayOption {
	names, ok := weekdayNames[language]
	if !ok {
		names = weekdayNames["es"]
	}
	weekdays := make([]weekdayOption, len(names))
	for i, name := range names {
		weekdays[i] = weekdayOption{
			Index:    i,
			Name:     name,
			Selected: slices.Contains(profile.TrainDays, i),
		}
	}
	return weekdays
}

func (app *application) preferencesGET(w http.ResponseWriter, r *http.Request) {
	profile, err := app.planService.GetProfile(r.Context())
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	data := preferencesTemplateData{
		BaseTemplateData: newBaseTemplateData(r),
		Profile:          profile,
		Levels:           plan.LevelNames(),
		Goals:            goalOptions,
		Templates:        templateOptions,
		Weekdays:         profileToWeekdays(profile, contextLanguage(r)),
		EquipmentOptions: equipmentOptions,
	}
	app.render(w, r, http.StatusOK, "preferences", data)
}

func (app *application) preferencesPOST(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	profile := plan.Profile{
		Nivel:             r.Form.Get("nivel"),
		Objetivo:          r.Form.Get("objetivo"),
		PlanTemplate:      plan.Template(r.Form.Get("plan_template")),
		TrainDays:         parseTrainDays(r.Form["train_days"]),
		Equipment:         r.Form["equipment"],
		Quiet:             r.Form.Get("quiet") == "true",
		WeeklyXPGoal:      parseGoal(r.Form.Get("weekly_xp_goal"), defaultWeeklyXPGoal),
		WeeklyMinutesGoal: parseGoal(r.Form.Get("weekly_minutes_goal"), defaultWeeklyMinutesGoal),
	}

	if err := app.planService.SaveProfile(r.Context(), profile); err != nil {
		app.serverError(w, r, err)
		return
	}
	redirect(w, r, "/preferences")
}

// parseTrainDays keeps the valid Monday-based day indices, dropping
// everything else. Out-of-range selections are not an error.
func parseTrainDays(values []string) []int {
	var days []int
	for _, value := range values {
		day, err := strconv.Atoi(value)
		if err != nil || day < 0 || day > 6 {
			continue
		}
		days = append(days, day)
	}
	return days
}

func parseGoal(value string, fallback int) int {
	goal, err := strconv.Atoi(value)
	if err != nil || goal <= 0 {
		return fallback
	}
	return goal
}
