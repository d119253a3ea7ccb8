// Package githubauth drives the GitHub OAuth login flow: authorize-URL
// construction, code exchange, and verified-email lookup. GitHub is an
// external dependency; every network or protocol failure it produces is
// collapsed to the opaque ErrAuthorize so no provider detail leaks to the
// client.
package githubauth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/endpoints"

	"github.com/jrsteele09/go-photo-catalog/internal/config"
	"github.com/jrsteele09/go-photo-catalog/session"
)

// ErrAuthorize is the single error surfaced for identity-provider or
// token-minting anomalies. Detail goes to the log, never to the client.
var ErrAuthorize = errors.New("unexpected error while authorizing")

const (
	emailScope    = "user:email"
	userEmailsURL = "https://api.github.com/user/emails"
)

// Client wraps the OAuth2 exchange and the GitHub emails API. Safe for
// concurrent use.
type Client struct {
	oauth      oauth2.Config
	httpClient *http.Client
	emailsURL  string
	states     *StateStore
}

func NewClient(cfg config.OAuthConfig) *Client {
	return &Client{
		oauth: oauth2.Config{
			ClientID:     cfg.GetGithubClientID(),
			ClientSecret: cfg.GetGithubClientSecret(),
			Endpoint:     endpoints.GitHub,
			Scopes:       []string{emailScope},
			RedirectURL:  strings.TrimSuffix(cfg.GetPublicURL(), "/") + "/auth/authorized",
		},
		httpClient: &http.Client{Timeout: 10 * time.Second},
		emailsURL:  userEmailsURL,
		states:     NewStateStore(),
	}
}

// AuthorizeURL returns the provider's authorization URL carrying a fresh
// anti-forgery state. The caller-supplied post-login redirect target is
// remembered against the state until the callback returns.
func (c *Client) AuthorizeURL(redirect string) string {
	state := c.states.Create(redirect)
	return c.oauth.AuthCodeURL(state)
}

// ConsumeState validates and removes the anti-forgery state, returning the
// remembered post-login redirect target.
func (c *Client) ConsumeState(state string) (string, error) {
	redirect, ok := c.states.Consume(state)
	if !ok {
		return "", ErrAuthorize
	}
	return redirect, nil
}

// Authorize exchanges the authorization code and builds the identity claim
// from the user's GitHub emails: the first email marked primary becomes
// PrimaryEmail (falling back to the first verified one), and all verified
// emails form the claim's email set. No verified email fails the flow.
func (c *Client) Authorize(ctx context.Context, code string) (session.Claim, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
	token, err := c.oauth.Exchange(ctx, code)
	if err != nil {
		log.Error().Err(err).Msg("github code exchange failed")
		return session.Claim{}, ErrAuthorize
	}

	emails, err := c.fetchEmails(ctx, token.AccessToken)
	if err != nil {
		log.Error().Err(err).Msg("github email listing failed")
		return session.Claim{}, ErrAuthorize
	}

	var primaryEmail string
	var verified []string
	for _, email := range emails {
		if email.Primary && primaryEmail == "" {
			primaryEmail = email.Email
		}
		if email.Verified {
			verified = append(verified, email.Email)
		}
	}
	if len(verified) == 0 {
		log.Warn().Msg("github account has no verified email")
		return session.Claim{}, ErrAuthorize
	}
	if primaryEmail == "" {
		primaryEmail = verified[0]
	}

	return session.Claim{PrimaryEmail: primaryEmail, Emails: verified}, nil
}

type githubEmail struct {
	Email    string `json:"email"`
	Verified bool   `json:"verified"`
	Primary  bool   `json:"primary"`
}

func (c *Client) fetchEmails(ctx context.Context, accessToken string) ([]githubEmail, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.emailsURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("X-GitHub-Api-Version", "2022-11-28")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("github emails endpoint returned %d: %s", resp.StatusCode, body)
	}

	var emails []githubEmail
	if err := json.NewDecoder(resp.Body).Decode(&emails); err != nil {
		return nil, err
	}
	return emails, nil
}
