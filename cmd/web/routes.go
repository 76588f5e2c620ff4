package main

import (
	"net/http"
)

func (app *application) routes() *http.ServeMux {
	mux := http.NewServeMux()

	var (
		shared = func(next http.Handler) http.Handler {
			return app.logAndTraceRequest(secureHeaders(app.crossOriginProtection(
				commonContext(app.language(next)))))
		}
		session = func(next http.Handler) http.Handler {
			return app.recoverPanic(noCache(app.sessionManager.LoadAndSave(shared(next))))
		}
	)

	mux.Handle("GET /api/plan", session(http.HandlerFunc(app.planGET)))
	mux.Handle("POST /api/plan/generate", session(http.HandlerFunc(app.planGeneratePOST)))
	mux.Handle("POST /api/plan/days/{dayIndex}/regenerate", session(http.HandlerFunc(app.planDayRegeneratePOST)))
	mux.Handle("POST /api/plan/days/{dayIndex}/equipment", session(http.HandlerFunc(app.planDayEquipmentPOST)))
	mux.Handle("POST /api/plan/days/{dayIndex}/complete", session(http.HandlerFunc(app.planDayCompletePOST)))
	mux.Handle("GET /api/healthy", session(http.HandlerFunc(app.healthy)))

	mux.Handle("GET /preferences", session(http.HandlerFunc(app.preferencesGET)))
	mux.Handle("POST /preferences", session(http.HandlerFunc(app.preferencesPOST)))

	mux.Handle("GET /exercises/{exerciseID}/info", session(http.HandlerFunc(app.exerciseInfoGET)))

	mux.Handle("POST /language", session(http.HandlerFunc(app.setLanguagePOST)))

	mux.Handle("GET /{$}", session(http.HandlerFunc(app.home)))

	mux.Handle("/", session(http.HandlerFunc(app.notFound)))

	return mux
}
