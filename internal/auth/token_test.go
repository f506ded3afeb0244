package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marketops/backoffice/internal/httperr"
	"github.com/marketops/backoffice/internal/models"
)

func testStaff() *models.Staff {
	return &models.Staff{
		ID:       "staff-1",
		Role:     models.RoleAdmin,
		IsActive: true,
	}
}

func TestIssueAndVerify(t *testing.T) {
	ta := NewTokenAuthority("access-secret", "refresh-secret", time.Minute, time.Hour)

	pair, err := ta.Issue(testStaff())
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)

	claims, err := ta.Verify("Bearer " + pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "staff-1", claims.ID)
	assert.Equal(t, models.RoleAdmin, claims.Role)
	assert.True(t, claims.IsActive)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	ta := NewTokenAuthority("access-secret", "refresh-secret", time.Minute, time.Hour)
	other := NewTokenAuthority("different", "refresh-secret", time.Minute, time.Hour)

	pair, err := ta.Issue(testStaff())
	require.NoError(t, err)

	_, err = other.Verify("Bearer " + pair.AccessToken)
	assert.Error(t, err)
}

func TestVerifyRejectsRefreshAsAccess(t *testing.T) {
	ta := NewTokenAuthority("access-secret", "refresh-secret", time.Minute, time.Hour)

	pair, err := ta.Issue(testStaff())
	require.NoError(t, err)

	_, err = ta.Verify("Bearer " + pair.RefreshToken)
	assert.Error(t, err)
}

func TestVerifyRejectsExpired(t *testing.T) {
	ta := NewTokenAuthority("access-secret", "refresh-secret", -time.Minute, time.Hour)

	pair, err := ta.Issue(testStaff())
	require.NoError(t, err)

	_, err = ta.Verify("Bearer " + pair.AccessToken)
	assert.Error(t, err)
}

func TestVerifyHeaderShape(t *testing.T) {
	ta := NewTokenAuthority("access-secret", "refresh-secret", time.Minute, time.Hour)

	var authErr *httperr.AuthError

	_, err := ta.Verify("")
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "missing_token", authErr.Code)

	_, err = ta.Verify("Token abc")
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "missing_token", authErr.Code)

	_, err = ta.Verify("Bearer not-a-jwt")
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "invalid_token", authErr.Code)
}
