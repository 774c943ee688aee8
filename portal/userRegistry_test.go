package portal

import (
	"testing"

	"lumina/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleStatusRoundTrip(t *testing.T) {
	r := NewUserRegistryState()

	user, err := r.ToggleStatus("3")
	require.NoError(t, err)
	assert.Equal(t, models.StatusSuspended, user.Status)

	user, err = r.ToggleStatus("3")
	require.NoError(t, err)
	assert.Equal(t, models.StatusActive, user.Status)

	_, err = r.ToggleStatus("missing")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestChangeRoleKeepsInstitutionalID(t *testing.T) {
	r := NewUserRegistryState()

	user, err := r.ChangeRole("3", models.RoleTeacher)
	require.NoError(t, err)
	assert.Equal(t, models.RoleTeacher, user.Role)
	assert.Equal(t, "LUM/2024/01221", user.StudentID, "id keeps its issued prefix")

	user, err = r.ChangeRole("3", models.RoleStudent)
	require.NoError(t, err)
	assert.Equal(t, models.RoleStudent, user.Role)
}

func TestFilterCombinesSearchAndRole(t *testing.T) {
	r := NewUserRegistryState()

	assert.Len(t, r.Filter("", ""), 4)

	found := r.Filter("alice", "")
	require.Len(t, found, 1)
	assert.Equal(t, "Alice Thompson", found[0].Name)

	assert.Len(t, r.Filter("", models.RoleStudent), 2)
	assert.Len(t, r.Filter("bob", models.RoleStudent), 1)
	assert.Empty(t, r.Filter("bob", models.RoleAdmin))

	// the id is searchable too
	found = r.Filter("tea/2024", "")
	require.Len(t, found, 1)
	assert.Equal(t, models.RoleTeacher, found[0].Role)
}

func TestFilterDoesNotMutate(t *testing.T) {
	r := NewUserRegistryState()

	r.Filter("alice", models.RoleStudent)
	assert.Len(t, r.Users, 4)
}
