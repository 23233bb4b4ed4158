package http

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
)

type sessionContextKey struct{}

const (
	// SessionCookieName is the cookie carrying the cart session id
	SessionCookieName = "storefront_session"
	// SessionHeaderName lets API clients pass the session id explicitly
	SessionHeaderName = "X-Session-Id"

	sessionCookieMaxAge = 30 * 24 * time.Hour
)

// SessionMiddleware resolves the cart session id for a request. The header
// wins over the cookie; when neither is present a new id is minted and set
// as a cookie so browser clients keep their cart across requests.
func SessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := r.Header.Get(SessionHeaderName)
		if sessionID == "" {
			if cookie, err := r.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
				sessionID = cookie.Value
			}
		}
		if sessionID == "" {
			sessionID = uuid.New().String()
			http.SetCookie(w, &http.Cookie{
				Name:     SessionCookieName,
				Value:    sessionID,
				Path:     "/",
				MaxAge:   int(sessionCookieMaxAge.Seconds()),
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		ctx := context.WithValue(r.Context(), sessionContextKey{}, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SessionFromContext returns the session id resolved by SessionMiddleware
func SessionFromContext(ctx context.Context) string {
	if sessionID, ok := ctx.Value(sessionContextKey{}).(string); ok {
		return sessionID
	}
	return ""
}
