package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	h "conferenceschedule/internal/delivery/http/helpers"
	"conferenceschedule/internal/domain"
)

type contextKey string

const userIDKey contextKey = "userID"

// SetUserID returns a context with the user ID set. Used by auth middleware.
func SetUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext returns the authenticated user ID from the context, if present.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok && id > 0
}

// bearerToken returns the token of a "Bearer" Authorization header, or "".
func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(auth) < len(prefix) || !strings.EqualFold(auth[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(auth[len(prefix):])
}

// Authenticate resolves the session of the request from a Bearer token or
// the session cookie and stores the user ID in the context. Requests without
// a valid session continue anonymously.
func Authenticate(verifier domain.TokenVerifier, cookieName string, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" && cookieName != "" {
				if c, err := r.Cookie(cookieName); err == nil {
					token = c.Value
				}
			}
			if token != "" {
				userID, err := verifier.Verify(token)
				if err != nil {
					logger.DebugContext(r.Context(), "session rejected", "path", r.URL.Path, "err", err)
				} else {
					r = r.WithContext(SetUserID(r.Context(), userID))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAuth returns a wrapper that answers 401 with the JSON error envelope
// when Authenticate found no user.
func RequireAuth() func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if _, ok := UserIDFromContext(r.Context()); !ok {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "authentication required")
				return
			}
			next(w, r)
		}
	}
}

// RequireLogin returns a wrapper that redirects anonymous users to loginURL,
// passing the requested URI in the "next" query parameter.
func RequireLogin(loginURL string) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if _, ok := UserIDFromContext(r.Context()); !ok {
				target := loginURL + "?" + url.Values{"next": {r.URL.RequestURI()}}.Encode()
				http.Redirect(w, r, target, http.StatusFound)
				return
			}
			next(w, r)
		}
	}
}
