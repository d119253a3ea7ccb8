package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/jrsteele09/go-photo-catalog/githubauth"
	"github.com/jrsteele09/go-photo-catalog/session"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

// ContextKeyUser stores the verified session claim
const ContextKeyUser ContextKey = "user"

// RequireUser is the identity gate every catalog operation passes through.
// It extracts the session cookie, verifies the signed credential and checks
// the allow-list, then injects the decoded claim into the request context.
// Handlers downstream read it with UserFromContext.
func (s *Server) RequireUser() func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(session.CookieName)
			if err != nil {
				if errors.Is(err, http.ErrNoCookie) {
					s.writeError(w, session.ErrUserNotAuthorized)
					return
				}
				// Anything else is a server-side anomaly, not a
				// credential problem.
				s.writeError(w, githubauth.ErrAuthorize)
				return
			}

			claim, err := s.sessions.Authorize(cookie.Value, s.config.GetAllowedEmails())
			if err != nil {
				s.writeError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyUser, claim)
			next(w, r.WithContext(ctx))
		}
	}
}

// UserFromContext returns the claim injected by RequireUser.
func UserFromContext(ctx context.Context) (session.Claim, bool) {
	claim, ok := ctx.Value(ContextKeyUser).(session.Claim)
	return claim, ok
}
