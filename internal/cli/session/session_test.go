package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_RoundTrip(t *testing.T) {
	store := NewMemoryStore()

	user := UserRecord{ID: 1, Name: "Test User", Email: "a@b.com", Role: RoleUser, IsActive: true}
	require.NoError(t, store.Save("t1", user))

	sess, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.Equal(t, "t1", sess.Token)
	assert.Equal(t, user, sess.User)
}

func TestMemoryStore_SaveReplacesWholesale(t *testing.T) {
	store := NewMemoryStore()

	require.NoError(t, store.Save("t1", UserRecord{ID: 1, Role: RoleUser}))
	require.NoError(t, store.Save("t2", UserRecord{ID: 2, Role: RoleAdmin}))

	sess, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.Equal(t, "t2", sess.Token)
	assert.Equal(t, int64(2), sess.User.ID)
}

func TestMemoryStore_ClearIsIdempotent(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Save("t1", UserRecord{ID: 1}))

	require.NoError(t, store.Clear())
	// Clearing an already-empty store is a no-op that still succeeds.
	require.NoError(t, store.Clear())

	sess, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, sess)
}

func TestMemoryStore_LoadCopiesSession(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Save("t1", UserRecord{ID: 1, Name: "a"}))

	sess, err := store.Load()
	require.NoError(t, err)
	sess.User.Name = "mutated"

	again, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "a", again.User.Name)
}

func TestIsAuthenticated(t *testing.T) {
	store := NewMemoryStore()
	assert.False(t, IsAuthenticated(store))

	require.NoError(t, store.Save("t1", UserRecord{ID: 1, Role: RoleUser}))
	assert.True(t, IsAuthenticated(store))

	require.NoError(t, store.Clear())
	assert.False(t, IsAuthenticated(store))
}

func TestHasRole(t *testing.T) {
	store := NewMemoryStore()

	// No session: no role, not even USER.
	assert.False(t, HasRole(store, RoleUser, RoleAdmin, RoleSuperAdmin))

	require.NoError(t, store.Save("t1", UserRecord{ID: 1, Role: RoleUser}))
	assert.True(t, HasRole(store, RoleUser))
	assert.False(t, HasRole(store, RoleAdmin, RoleSuperAdmin))

	require.NoError(t, store.Save("t2", UserRecord{ID: 2, Role: RoleSuperAdmin}))
	assert.True(t, HasRole(store, RoleAdmin, RoleSuperAdmin))
}

func TestParseRole(t *testing.T) {
	tests := []struct {
		input string
		want  Role
		valid bool
	}{
		{"USER", RoleUser, true},
		{"ADMIN", RoleAdmin, true},
		{"SUPER_ADMIN", RoleSuperAdmin, true},
		{"user", Role("user"), false},
		{"", Role(""), false},
		{"ROOT", Role("ROOT"), false},
	}

	for _, tt := range tests {
		role, valid := ParseRole(tt.input)
		assert.Equal(t, tt.want, role, "input %q", tt.input)
		assert.Equal(t, tt.valid, valid, "input %q", tt.input)
	}
}

func TestRole_IsAdmin(t *testing.T) {
	assert.False(t, RoleUser.IsAdmin())
	assert.True(t, RoleAdmin.IsAdmin())
	assert.True(t, RoleSuperAdmin.IsAdmin())
	assert.False(t, Role("").IsAdmin())
}
