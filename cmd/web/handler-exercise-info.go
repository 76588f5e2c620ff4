package main

import (
	"net/http"

	"github.com/AlvaroMoyaL/fitapp/internal/catalog"
	"github.com/AlvaroMoyaL/fitapp/internal/errors"
	"github.com/AlvaroMoyaL/fitapp/internal/plan"
)

// exerciseInfoTemplateData contains data for the exercise info template.
type exerciseInfoTemplateData struct {
	BaseTemplateData
	Exercise    catalog.Exercise
	Name        string
	Description string
}

// exerciseInfoGET handles GET requests to view exercise information. The
// description is rendered from markdown and may be generated on demand.
func (app *application) exerciseInfoGET(w http.ResponseWriter, r *http.Request) {
	exerciseID := r.PathValue("exerciseID")

	exercise, err := app.planService.DescribeExercise(r.Context(), exerciseID)
	if errors.Is(err, plan.ErrNotFound) {
		app.notFound(w, r)
		return
	}
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	lang := contextLanguage(r)
	data := exerciseInfoTemplateData{
		BaseTemplateData: newBaseTemplateData(r),
		Exercise:         exercise,
		Name:             exercise.DisplayName(lang),
		Description:      exercise.LocalizedDescription(lang),
	}
	app.render(w, r, http.StatusOK, "exercise-info", data)
}
