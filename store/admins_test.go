package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"wecare/models"
)

func TestAdminsSeedDefaultSuperAdmin(t *testing.T) {
	s, err := NewAdmins(filepath.Join(t.TempDir(), "admins.json"))
	require.NoError(t, err)

	a, err := s.Authenticate("admin", "admin123")
	require.NoError(t, err)
	require.Equal(t, 1, a.AdminID)
	require.Equal(t, models.RoleSuperAdmin, a.Role)
	require.NotEmpty(t, a.LastLogin)
}

func TestAdminsCreateRejectsDuplicateUsername(t *testing.T) {
	s, err := NewAdmins(filepath.Join(t.TempDir(), "admins.json"))
	require.NoError(t, err)

	id, err := s.Create("manager", "secret123", "manager@wecarebeauty.com", "Store Manager", "")
	require.NoError(t, err)
	require.Equal(t, 2, id)

	a, err := s.Get(id)
	require.NoError(t, err)
	require.Equal(t, models.RoleAdmin, a.Role)
	require.True(t, a.IsActive)

	_, err = s.Create("manager", "other456", "x@y.com", "Other", "")
	require.ErrorIs(t, err, ErrUsernameTaken)
}

func TestAdminsAuthenticateWrongPassword(t *testing.T) {
	s, err := NewAdmins(filepath.Join(t.TempDir(), "admins.json"))
	require.NoError(t, err)

	_, err = s.Authenticate("admin", "nope")
	require.ErrorIs(t, err, ErrBadCredentials)

	_, err = s.Authenticate("ghost", "admin123")
	require.ErrorIs(t, err, ErrBadCredentials)
}
