package session_test

import (
	"strings"
	"testing"
	"time"

	"github.com/jrsteele09/go-photo-catalog/internal/config"
	"github.com/jrsteele09/go-photo-catalog/session"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) *session.Service {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	return session.New(config.Security{})
}

func TestIssueVerifyRoundTrip(t *testing.T) {
	service := newService(t)

	claim := session.Claim{
		PrimaryEmail: "john.doe@example.com",
		Emails:       []string{"john.doe@example.com", "jd@example.org"},
	}
	raw, err := service.Issue(claim)
	require.NoError(t, err)

	verified, err := service.Verify(raw)
	require.NoError(t, err)
	require.Equal(t, claim, verified)
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	service := newService(t)

	raw, err := service.Issue(session.Claim{
		PrimaryEmail: "john.doe@example.com",
		Emails:       []string{"john.doe@example.com"},
	})
	require.NoError(t, err)

	// Flip the first byte of the signature segment
	parts := strings.Split(raw, ".")
	require.Len(t, parts, 3)
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = service.Verify(tampered)
	require.ErrorIs(t, err, session.ErrUserNotAuthorized)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "first-secret")
	raw, err := session.New(config.Security{}).Issue(session.Claim{
		PrimaryEmail: "john.doe@example.com",
		Emails:       []string{"john.doe@example.com"},
	})
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "second-secret")
	_, err = session.New(config.Security{}).Verify(raw)
	require.ErrorIs(t, err, session.ErrUserNotAuthorized)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	service := newService(t)

	issued := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	session.NowTimeFunc = func() time.Time { return issued }
	defer func() { session.NowTimeFunc = time.Now }()

	raw, err := service.Issue(session.Claim{
		PrimaryEmail: "john.doe@example.com",
		Emails:       []string{"john.doe@example.com"},
	})
	require.NoError(t, err)

	// Still valid just before the expiry boundary
	session.NowTimeFunc = func() time.Time { return issued.Add(23 * time.Hour) }
	_, err = service.Verify(raw)
	require.NoError(t, err)

	session.NowTimeFunc = func() time.Time { return issued.Add(25 * time.Hour) }
	_, err = service.Verify(raw)
	require.ErrorIs(t, err, session.ErrUserNotAuthorized)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	service := newService(t)
	for _, raw := range []string{"", "not-a-token", "a.b.c"} {
		_, err := service.Verify(raw)
		require.ErrorIs(t, err, session.ErrUserNotAuthorized)
	}
}

func TestAuthorizeAllowList(t *testing.T) {
	service := newService(t)

	raw, err := service.Issue(session.Claim{
		PrimaryEmail: "john.doe@example.com",
		Emails:       []string{"john.doe@example.com", "jd@example.org"},
	})
	require.NoError(t, err)

	tests := []struct {
		name    string
		allowed config.AllowedEmails
		wantErr error
	}{
		{"primary email on list", config.AllowedEmails{"john.doe@example.com": {}}, nil},
		{"secondary email on list", config.AllowedEmails{"jd@example.org": {}}, nil},
		{"no email on list", config.AllowedEmails{"someone.else@example.com": {}}, session.ErrUserNotAllowed},
		{"empty list blocks everyone", config.AllowedEmails{}, session.ErrUserNotAllowed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Authorize(raw, tt.allowed)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestAuthorizeInvalidTokenBeatsAllowList(t *testing.T) {
	service := newService(t)
	_, err := service.Authorize("garbage", config.AllowedEmails{"john.doe@example.com": {}})
	require.ErrorIs(t, err, session.ErrUserNotAuthorized)
}
