package middleware

import (
	"context"
	"net/http"

	"github.com/knagata/partstrack/internal/entities"
	"github.com/knagata/partstrack/internal/services/flash"
	"github.com/knagata/partstrack/internal/services/sessiontoken"
)

type IdentityKey struct{}

const TokenCookieName = "session"

// Authenticate resolves the session cookie into an Identity in request
// context. It never rejects: anonymous requests pass through without one, and
// the gates below decide what that means per route.
func Authenticate(tokens *sessiontoken.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(resp http.ResponseWriter, req *http.Request) {
			tokenCookie, err := req.Cookie(TokenCookieName)
			if err != nil {
				next.ServeHTTP(resp, req)
				return
			}

			identity, err := tokens.Parse(tokenCookie.Value)
			if err != nil {
				next.ServeHTTP(resp, req)
				return
			}

			req = req.WithContext(context.WithValue(req.Context(), IdentityKey{}, identity))

			next.ServeHTTP(resp, req)
		})
	}
}

// IdentityFromContext returns the authenticated requester, if any.
func IdentityFromContext(ctx context.Context) (entities.Identity, bool) {
	identity, ok := ctx.Value(IdentityKey{}).(entities.Identity)
	return identity, ok
}

// RequireLogin sends anonymous requests to the login page.
func RequireLogin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(resp http.ResponseWriter, req *http.Request) {
		if _, ok := IdentityFromContext(req.Context()); !ok {
			http.Redirect(resp, req, "/login", http.StatusFound)
			return
		}

		next.ServeHTTP(resp, req)
	})
}

// RequireRole sends anonymous requests to the login page and logged-in users
// with the wrong role back to the dashboard with a warning.
func RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(resp http.ResponseWriter, req *http.Request) {
			identity, ok := IdentityFromContext(req.Context())
			if !ok {
				http.Redirect(resp, req, "/login", http.StatusFound)
				return
			}

			if identity.Role != role {
				flash.Set(resp, "This action is limited to purchasing staff.")
				http.Redirect(resp, req, "/dashboard", http.StatusFound)
				return
			}

			next.ServeHTTP(resp, req)
		})
	}
}
