// Package session mints and verifies the signed, self-contained credential
// that carries a user's verified emails between requests. Nothing is stored
// server-side: a claim is live exactly as long as its signature verifies and
// its expiry has not passed. The trade-off is accepted up front — there is
// no way to revoke a credential before it expires.
package session

import (
	"errors"
	"fmt"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jrsteele09/go-photo-catalog/internal/config"
)

// NowTimeFunc returns the current time. It can be overridden in tests.
var NowTimeFunc = time.Now

// CookieName is the fixed cookie the credential travels in.
const CookieName = "SESSION"

var (
	// ErrUserNotAuthorized means no credential or an invalid one: missing
	// cookie, bad signature, expired or malformed claim.
	ErrUserNotAuthorized = errors.New("user not authorized")
	// ErrUserNotAllowed means the credential verified but none of its
	// emails is on the allow-list.
	ErrUserNotAllowed = errors.New("user not allowed")
)

// Claim is the authenticated identity carried inside the token.
type Claim struct {
	PrimaryEmail string   `json:"primaryEmail"`
	Emails       []string `json:"emails"`
}

// Service signs and verifies session credentials with the configured
// secret. It is safe for concurrent use.
type Service struct {
	secret []byte
	expiry time.Duration
}

func New(cfg config.SecurityConfig) *Service {
	return &Service{
		secret: cfg.GetJWTSecret(),
		expiry: cfg.GetSessionExpiry(),
	}
}

// Issue mints a signed credential for the claim, expiring a fixed offset
// from now.
func (s *Service) Issue(claim Claim) (string, error) {
	now := NowTimeFunc()
	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, jwtlib.MapClaims{
		"primaryEmail": claim.PrimaryEmail,
		"emails":       claim.Emails,
		"iat":          now.Unix(),
		"exp":          now.Add(s.expiry).Unix(),
		"jti":          uuid.New().String(),
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("signing session token: %w", err)
	}
	return signed, nil
}

// Verify checks signature and expiry and returns the embedded claim. Every
// failure mode collapses to ErrUserNotAuthorized: a credential that does not
// verify is simply absent.
func (s *Service) Verify(raw string) (Claim, error) {
	token, err := jwtlib.Parse(raw, func(t *jwtlib.Token) (any, error) {
		if _, ok := t.Method.(*jwtlib.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return s.secret, nil
	}, jwtlib.WithTimeFunc(func() time.Time { return NowTimeFunc() }))
	if err != nil || !token.Valid {
		return Claim{}, ErrUserNotAuthorized
	}

	claims, ok := token.Claims.(jwtlib.MapClaims)
	if !ok {
		return Claim{}, ErrUserNotAuthorized
	}

	primaryEmail, _ := claims["primaryEmail"].(string)
	rawEmails, _ := claims["emails"].([]any)
	emails := make([]string, 0, len(rawEmails))
	for _, e := range rawEmails {
		if email, ok := e.(string); ok {
			emails = append(emails, email)
		}
	}
	if primaryEmail == "" || len(emails) == 0 {
		return Claim{}, ErrUserNotAuthorized
	}

	return Claim{PrimaryEmail: primaryEmail, Emails: emails}, nil
}

// Authorize verifies the raw credential and enforces the allow-list: any of
// the claim's emails on the list grants access. An empty list blocks
// everyone.
func (s *Service) Authorize(raw string, allowed config.AllowedEmails) (Claim, error) {
	claim, err := s.Verify(raw)
	if err != nil {
		return Claim{}, err
	}
	for _, email := range claim.Emails {
		if allowed.IsAllowed(email) {
			return claim, nil
		}
	}
	return Claim{}, ErrUserNotAllowed
}
