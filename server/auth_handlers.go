package server

import (
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/jrsteele09/go-photo-catalog/githubauth"
	"github.com/jrsteele09/go-photo-catalog/session"
)

// GithubRedirectHandler sends the client to GitHub's authorization endpoint.
// An optional redirect query parameter is remembered and honoured after the
// callback.
func (s *Server) GithubRedirectHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		redirect := sanitizeRedirect(r.URL.Query().Get("redirect"))
		http.Redirect(w, r, s.github.AuthorizeURL(redirect), http.StatusFound)
	}
}

// AuthorizedCallbackHandler completes the OAuth flow: validates the
// anti-forgery state, exchanges the code, builds the identity claim from the
// user's verified GitHub emails, mints the signed session credential and
// sets it as the session cookie.
func (s *Server) AuthorizedCallbackHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		code := query.Get("code")
		state := query.Get("state")
		if code == "" || state == "" {
			s.writeError(w, badRequestf("missing code or state parameter"))
			return
		}

		redirect, err := s.github.ConsumeState(state)
		if err != nil {
			s.writeError(w, err)
			return
		}

		claim, err := s.github.Authorize(r.Context(), code)
		if err != nil {
			s.writeError(w, err)
			return
		}

		token, err := s.sessions.Issue(claim)
		if err != nil {
			log.Error().Err(err).Msg("minting session token failed")
			s.writeError(w, githubauth.ErrAuthorize)
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     session.CookieName,
			Value:    token,
			Path:     "/",
			HttpOnly: true,
			Secure:   getScheme(r) == "https",
			SameSite: http.SameSiteLaxMode,
			MaxAge:   int(s.config.GetSessionExpiry().Seconds()),
		})

		if redirect == "" {
			redirect = "/"
		}
		http.Redirect(w, r, redirect, http.StatusFound)
	}
}

// LogoutHandler clears the session cookie. The credential itself stays valid
// until it expires; with a self-contained token there is nothing server-side
// to revoke.
func (s *Server) LogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{
			Name:     session.CookieName,
			Value:    "",
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
			MaxAge:   -1,
		})
		http.Redirect(w, r, "/", http.StatusFound)
	}
}

// sanitizeRedirect keeps post-login redirects on this site. Anything that is
// not a local absolute path falls back to the root.
func sanitizeRedirect(redirect string) string {
	if redirect == "" || !strings.HasPrefix(redirect, "/") || strings.HasPrefix(redirect, "//") {
		return ""
	}
	return redirect
}
