package config_test

import (
	"testing"
	"time"

	"github.com/jrsteele09/go-photo-catalog/internal/config"
	"github.com/stretchr/testify/require"
)

func setRequiredVars(t *testing.T) {
	t.Helper()
	t.Setenv("GITHUB_CLIENT_ID", "client-id")
	t.Setenv("GITHUB_CLIENT_SECRET", "client-secret")
	t.Setenv("PUBLIC_URL", "http://localhost:3001")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("S3_BUCKET_NAME", "photos")
}

func TestNewWithCompleteEnvironment(t *testing.T) {
	setRequiredVars(t)

	cfg, err := config.New()
	require.NoError(t, err)
	require.Equal(t, "client-id", cfg.GetGithubClientID())
	require.Equal(t, "photos", cfg.GetS3BucketName())
	require.Equal(t, []byte("test-secret"), cfg.GetJWTSecret())
}

func TestNewReportsEveryMissingVariable(t *testing.T) {
	setRequiredVars(t)
	t.Setenv("JWT_SECRET", "")
	t.Setenv("S3_BUCKET_NAME", "")

	_, err := config.New()
	require.Error(t, err)
	require.Contains(t, err.Error(), "JWT_SECRET")
	require.Contains(t, err.Error(), "S3_BUCKET_NAME")
	require.NotContains(t, err.Error(), "GITHUB_CLIENT_ID")
}

func TestDefaults(t *testing.T) {
	setRequiredVars(t)
	t.Setenv("LISTEN_ADDR", "")
	t.Setenv("ENV", "")

	cfg, err := config.New()
	require.NoError(t, err)
	require.Equal(t, "0.0.0.0:3001", cfg.GetListenAddr())
	require.Equal(t, "DEV", cfg.GetEnv())
	require.Equal(t, 24*time.Hour, cfg.GetSessionExpiry())
}

func TestAllowedEmailsParsing(t *testing.T) {
	setRequiredVars(t)
	t.Setenv("ALLOWED_EMAILS", " john.doe@example.com , jd@example.org ,,")

	cfg, err := config.New()
	require.NoError(t, err)

	allowed := cfg.GetAllowedEmails()
	require.Len(t, allowed, 2)
	require.True(t, allowed.IsAllowed("john.doe@example.com"))
	require.True(t, allowed.IsAllowed("jd@example.org"))
	require.False(t, allowed.IsAllowed("stranger@example.com"))
}

func TestAllowedEmailsEmptyBlocksEveryone(t *testing.T) {
	setRequiredVars(t)
	t.Setenv("ALLOWED_EMAILS", "")

	cfg, err := config.New()
	require.NoError(t, err)
	require.Empty(t, cfg.GetAllowedEmails())
	require.False(t, cfg.GetAllowedEmails().IsAllowed("john.doe@example.com"))
}
