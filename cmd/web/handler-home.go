package main

import (
	"net/http"

	"github.com/AlvaroMoyaL/fitapp/internal/errors"
	"github.com/AlvaroMoyaL/fitapp/internal/i18n"
	"github.com/AlvaroMoyaL/fitapp/internal/plan"
)

// weekdayNames indexes Monday-based weekday names per language.
var weekdayNames = map[string][7]string{
	"es": {"Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado", "Domingo"},
	"en": {"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"},
}

type weekdayView struct {
	// Name is the weekday name (e.g. "Lunes").
	Name string
	// IsTrain indicates whether a plan day is scheduled on this weekday.
	IsTrain bool
	// Title is the scheduled plan day title, empty on rest days.
	Title string
}

type homeTemplateData struct {
	BaseTemplateData
	HasPlan  bool
	Plan     plan.Plan
	Weekdays []weekdayView
}

func toWeekdays(weekSchedule [7]plan.WeekSlot, language string) []weekdayView {
	names, ok := weekdayNames[language]
	if !ok {
		names = weekdayNames[string(i18n.DefaultLanguage)]
	}
	weekdays := make([]weekdayView, len(names))
	for i, name := range names {
		weekdays[i] = weekdayView{
			Name:    name,
			IsTrain: weekSchedule[i].Type == plan.SlotTrain,
			Title:   weekSchedule[i].Title,
		}
	}
	return weekdays
}

// home renders the weekly plan overview.
func (app *application) home(w http.ResponseWriter, r *http.Request) {
	data := homeTemplateData{
		BaseTemplateData: newBaseTemplateData(r),
	}

	latest, err := app.planService.LatestPlan(r.Context())
	switch {
	case errors.Is(err, plan.ErrNotFound):
		// First visit, the page offers to generate a plan.
	case err != nil:
		app.serverError(w, r, err)
		return
	default:
		data.HasPlan = true
		data.Plan = latest
		data.Weekdays = toWeekdays(latest.WeekSchedule, data.Language)
	}

	app.render(w, r, http.StatusOK, "home", data)
}
