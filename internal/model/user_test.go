package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	r, err := ParseRole("Admin")
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, r)

	r, err = ParseRole("User")
	require.NoError(t, err)
	assert.Equal(t, RoleUser, r)

	for _, bad := range []string{"", "admin", "ADMIN", "superuser"} {
		_, err := ParseRole(bad)
		assert.Error(t, err, "role %q should be rejected", bad)
	}
}

func TestParseStatus(t *testing.T) {
	for _, s := range []string{"Active", "Inactive", "Pending"} {
		got, err := ParseStatus(s)
		require.NoError(t, err)
		assert.Equal(t, Status(s), got)
	}

	for _, bad := range []string{"", "active", "Disabled", "PENDING"} {
		_, err := ParseStatus(bad)
		assert.Error(t, err, "status %q should be rejected", bad)
	}
}

func TestStatus_Blocked(t *testing.T) {
	assert.False(t, StatusActive.Blocked())
	assert.True(t, StatusInactive.Blocked())
	assert.True(t, StatusPending.Blocked())
}

func TestUser_SecretsNeverSerialized(t *testing.T) {
	u := User{
		ID:           "u-1",
		Email:        "alice@example.com",
		PasswordHash: "$2a$10$secret",
		RefreshToken: "some.jwt.token",
		Role:         RoleUser,
		Status:       StatusActive,
	}
	b, err := json.Marshal(u)
	require.NoError(t, err)

	assert.NotContains(t, string(b), "secret")
	assert.NotContains(t, string(b), "some.jwt.token")
	assert.Contains(t, string(b), `"user_status":"Active"`)
}
