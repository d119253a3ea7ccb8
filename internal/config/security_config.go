package config

import (
	"os"
	"strings"
	"time"
)

const (
	allowedEmailsVar = "ALLOWED_EMAILS"
	jwtSecretVar     = "JWT_SECRET"
)

type SecurityConfig interface {
	GetAllowedEmails() AllowedEmails
	GetJWTSecret() []byte
	GetSessionExpiry() time.Duration
}

type AllowedEmails map[string]struct{}

func (a AllowedEmails) IsAllowed(email string) bool {
	_, ok := a[email]
	return ok
}

func (a AllowedEmails) String() string {
	var emails []string
	for k := range a {
		emails = append(emails, k)
	}
	return strings.Join(emails, ", ")
}

type Security struct{}

var _ SecurityConfig = Security{}

// GetAllowedEmails parses the comma-separated allow-list. An empty variable
// yields an empty set, which blocks every login.
func (Security) GetAllowedEmails() AllowedEmails {
	allowed := AllowedEmails{}
	for _, email := range strings.Split(os.Getenv(allowedEmailsVar), ",") {
		email = strings.TrimSpace(email)
		if email == "" {
			continue
		}
		allowed[email] = struct{}{}
	}
	return allowed
}

func (Security) GetJWTSecret() []byte {
	return []byte(os.Getenv(jwtSecretVar))
}

func (Security) GetSessionExpiry() time.Duration {
	return 24 * time.Hour
}
