package main

import (
	"net/http"
	"strings"

	"github.com/AlvaroMoyaL/fitapp/internal/i18n"
)

const languageCookieMaxAge = 365 * 24 * 60 * 60 // 1 year.

// isRelativePath checks if a path is a relative path without scheme or host and doesn't allow ambiguous slashes.
func isRelativePath(path string) bool {
	// Reject paths that contain a scheme (e.g., http://, https://, //).
	if strings.Contains(path, "://") || strings.HasPrefix(path, "//") {
		return false
	}
	// Accept paths that start with /, but not if the second character is / or \.
	if strings.HasPrefix(path, "/") {
		if len(path) == 1 || (path[1] != '/' && path[1] != '\\') {
			return true
		}
	}
	return false
}

// setLanguagePOST handles the POST request to set the user's language preference.
func (app *application) setLanguagePOST(w http.ResponseWriter, r *http.Request) {
	lang := r.FormValue("language")

	if !i18n.IsSupported(i18n.Language(lang)) {
		http.Error(w, "Invalid language", http.StatusBadRequest)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "language",
		Value:    lang,
		Path:     "/",
		MaxAge:   languageCookieMaxAge,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})

	// Redirect back to the referrer or home page.
	// Only allow relative paths to prevent open redirects.
	referer := r.Header.Get("Referer")
	if referer == "" || !isRelativePath(referer) {
		referer = "/"
	}
	http.Redirect(w, r, referer, http.StatusSeeOther)
}
