package contexthelpers

import (
	"context"
	"net/http"
)

func SetCurrentPath(r *http.Request, currentPath string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), CurrentPathContextKey, currentPath))
}

func SetCSPNonce(r *http.Request, cspNonce string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), CspNonceContextKey, cspNonce))
}

func SetLanguage(r *http.Request, language string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), LanguageContextKey, language))
}
