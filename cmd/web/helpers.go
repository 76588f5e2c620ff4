package main

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/AlvaroMoyaL/fitapp/internal/contexthelpers"
	"github.com/AlvaroMoyaL/fitapp/internal/errors"
)

func contextLanguage(r *http.Request) string {
	return contexthelpers.Language(r.Context())
}

func (app *application) serverError(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.LogAttrs(r.Context(), slog.LevelError, "server error", errors.SlogError(err))
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func (app *application) notFound(w http.ResponseWriter, r *http.Request) {
	app.render(w, r, http.StatusNotFound, "not-found", newBaseTemplateData(r))
}

// writeJSON writes data as a JSON response body.
func (app *application) writeJSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	payload, err := json.Marshal(data)
	if err != nil {
		app.serverError(w, r, errors.Wrap(err, "encode response"))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(payload)
}

// redirect detects if the request is originating from a fetch API call or a top-level navigation and points the user
// to the correct URL.
func redirect(w http.ResponseWriter, r *http.Request, path string) {
	if r.Header.Get("Sec-Fetch-Dest") == "empty" {
		w.Header().Set("Content-Location", path)
		w.WriteHeader(http.StatusOK)
		return
	}

	http.Redirect(w, r, path, http.StatusSeeOther)
}

// parseDayIndexParam parses the "dayIndex" path parameter from the request URL.
// On failure, sends HTTP 404 response automatically.
func (app *application) parseDayIndexParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	dayIndex, err := strconv.Atoi(r.PathValue("dayIndex"))
	if err != nil || dayIndex < 0 {
		http.NotFound(w, r)
		return 0, false
	}
	return dayIndex, true
}
