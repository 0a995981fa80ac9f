//go:build e2e

package authtest

import (
	"testing"
	"time"

	"pantryshare/internal/pkg/config"
	"pantryshare/internal/pkg/identity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// BearerToken mints a token for userID signed with the suite's secret. There
// is no login endpoint; tokens come straight from the identity service.
func BearerToken(t *testing.T, cfg config.AuthConfig, userID uuid.UUID) string {
	t.Helper()

	svc := identity.NewService(cfg.JWTSecret, cfg.Issuer)
	token, err := svc.GenerateToken(userID, time.Hour)
	require.NoError(t, err, "failed to generate test token")
	return token
}

// ExpiredToken mints a token that is already past its expiry.
func ExpiredToken(t *testing.T, cfg config.AuthConfig, userID uuid.UUID) string {
	t.Helper()

	svc := identity.NewService(cfg.JWTSecret, cfg.Issuer)
	token, err := svc.GenerateToken(userID, -time.Minute)
	require.NoError(t, err, "failed to generate expired test token")
	return token
}
