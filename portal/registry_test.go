package portal

import (
	"os"
	"testing"
	"time"

	"lumina/auth"
	"lumina/config"
	"lumina/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	config.AppConfig = &config.Config{SaltRound: 4}
	os.Exit(m.Run())
}

func TestRegistryAttachAndDrop(t *testing.T) {
	r := NewRegistry(0)
	user := studentUser()

	state := r.Attach(user)
	require.NotNil(t, state)
	assert.Same(t, state, r.Get(user.ID))
	assert.Same(t, state, r.Attach(user), "reattach keeps the existing state")

	r.Drop(user.ID)
	assert.Nil(t, r.Get(user.ID))
}

func TestRegistryRefreshesUserOnAttach(t *testing.T) {
	r := NewRegistry(0)
	user := studentUser()

	state := r.Attach(user)
	state.Navigate(RouteStore)

	promoted := *user
	promoted.Role = models.RoleAdmin
	refreshed := r.Attach(&promoted)

	assert.Same(t, state, refreshed)
	assert.Equal(t, models.RoleAdmin, refreshed.User().Role)
	assert.Equal(t, RouteStore, refreshed.Render().Route, "navigation survives the refresh")
}

func TestRegistryFollowsSessionEvents(t *testing.T) {
	svc := auth.NewService(auth.NewMemoryStore())

	r := NewRegistry(0)
	r.unsubscribe = svc.Subscribe(r.onSessionChange)
	defer r.Close()

	user, err := svc.SignUp(auth.SignUpInput{
		Name:     "Alice Thompson",
		Email:    "alice.t@gmail.com",
		Phone:    "0771234567",
		Password: "password123",
	})
	require.NoError(t, err)
	require.NotNil(t, r.Get(user.ID), "sign-in creates portal state")

	require.Error(t, svc.SignOut(user.ID+"-stale"))
	assert.NotNil(t, r.Get(user.ID), "unrelated sign-out leaves the state")

	_ = svc.SignOut(user.ID)
	assert.Nil(t, r.Get(user.ID), "sign-out tears the state down")
}

func TestSweepIdleEvictsStaleStates(t *testing.T) {
	r := NewRegistry(30 * time.Minute)

	r.Attach(studentUser())
	stale := r.Attach(adminUser())
	stale.mu.Lock()
	stale.lastSeen = time.Now().Add(-time.Hour)
	stale.mu.Unlock()

	assert.Equal(t, 1, r.SweepIdle())
	assert.Nil(t, r.Get(adminUser().ID))
	require.NotNil(t, r.Get(studentUser().ID))

	assert.Zero(t, NewRegistry(0).SweepIdle(), "sweeping is disabled without a TTL")
}
