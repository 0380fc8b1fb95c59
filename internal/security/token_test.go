package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RupeshP0713/roomrent-backend/internal/domain"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestTokenManager_RoundTrip(t *testing.T) {
	tm := NewTokenManager(testSecret, 30, 5)

	token, err := tm.GenerateUserToken("OWNER_9876543210", domain.RoleOwner)
	require.NoError(t, err)

	claims, err := tm.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "OWNER_9876543210", claims.UserID)
	assert.Equal(t, domain.RoleOwner, claims.Role)
}

func TestTokenManager_AdminToken(t *testing.T) {
	tm := NewTokenManager(testSecret, 30, 5)

	token, err := tm.GenerateAdminToken("rohit")
	require.NoError(t, err)

	claims, err := tm.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
}

func TestTokenManager_RejectsGarbage(t *testing.T) {
	tm := NewTokenManager(testSecret, 30, 5)

	_, err := tm.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_RejectsWrongSecret(t *testing.T) {
	tm := NewTokenManager(testSecret, 30, 5)
	other := NewTokenManager("ffffffffffffffffffffffffffffffff", 30, 5)

	token, err := tm.GenerateUserToken("TENANT_1112223334", domain.RoleTenant)
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
