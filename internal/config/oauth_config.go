package config

import "os"

const (
	githubClientIDVar     = "GITHUB_CLIENT_ID"
	githubClientSecretVar = "GITHUB_CLIENT_SECRET"
	publicURLVar          = "PUBLIC_URL"
)

type OAuthConfig interface {
	GetGithubClientID() string
	GetGithubClientSecret() string
	GetPublicURL() string
}

type OAuth struct{}

var _ OAuthConfig = OAuth{}

func (OAuth) GetGithubClientID() string {
	return os.Getenv(githubClientIDVar)
}

func (OAuth) GetGithubClientSecret() string {
	return os.Getenv(githubClientSecretVar)
}

// GetPublicURL returns the externally reachable base URL of the service,
// used to build the OAuth callback redirect URI.
func (OAuth) GetPublicURL() string {
	return os.Getenv(publicURLVar)
}
