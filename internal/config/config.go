package config

import (
	"errors"
	"fmt"
)

type Config interface {
	EnvConfig
	CorsConfig
	OAuthConfig
	SecurityConfig
	StorageConfig
}

type mainConfig struct {
	EnvVars
	Cors
	OAuth
	Security
	Storage
}

// New builds the configuration from the process environment. It is called
// once in main; the returned value is passed into every component that needs
// it, there is no package-level singleton.
func New() (Config, error) {
	c := mainConfig{}
	var missing []error
	for name, value := range map[string]string{
		githubClientIDVar:     c.GetGithubClientID(),
		githubClientSecretVar: c.GetGithubClientSecret(),
		publicURLVar:          c.GetPublicURL(),
		jwtSecretVar:          string(c.GetJWTSecret()),
		s3BucketVar:           c.GetS3BucketName(),
	} {
		if value == "" {
			missing = append(missing, fmt.Errorf("missing required environment variable %s", name))
		}
	}
	if len(missing) > 0 {
		return nil, errors.Join(missing...)
	}
	return c, nil
}
