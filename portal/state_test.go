package portal

import (
	"encoding/json"
	"testing"

	"lumina/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func studentUser() *models.User {
	return &models.User{ID: "stu-1", Name: "Alice Thompson", Role: models.RoleStudent}
}

func teacherUser() *models.User {
	return &models.User{ID: "tea-1", Name: "Dr. Sarah Mitchell", Role: models.RoleTeacher}
}

func adminUser() *models.User {
	return &models.User{ID: "adm-1", Name: "Rashmika Perera", Role: models.RoleAdmin}
}

func TestHomeResolvesByRole(t *testing.T) {
	screen := newState(studentUser()).Render()
	assert.Equal(t, RouteHome, screen.Route)
	assert.IsType(t, &DashboardState{}, screen.Data)

	screen = newState(teacherUser()).Render()
	assert.Equal(t, RouteHome, screen.Route)
	assert.IsType(t, &TeacherDashboardState{}, screen.Data)
}

func TestNavigateToAdminRouteCollapsesForStudent(t *testing.T) {
	state := newState(studentUser())

	screen := state.Navigate(RouteAdminCourses)
	assert.Equal(t, RouteHome, screen.Route)
	assert.IsType(t, &DashboardState{}, screen.Data)
}

func TestNavigationDiscardsScreenState(t *testing.T) {
	state := newState(studentUser())

	_, err := state.ConfirmPurchase("c1")
	require.NoError(t, err)

	dashboard, err := state.DashboardView()
	require.NoError(t, err)
	assert.True(t, dashboard.Courses[0].IsPurchased)

	state.Navigate(RouteStore)
	state.Navigate(RouteHome)

	dashboard, err = state.DashboardView()
	require.NoError(t, err)
	assert.False(t, dashboard.Courses[0].IsPurchased, "home screen should remount from seed data")
}

func TestAdminRegistryResetsOnRemount(t *testing.T) {
	state := newState(adminUser())
	state.Navigate(RouteAdminCourses)

	_, err := state.CreateCourse(CourseInput{Name: "Ethics in Tech", Instructor: "Prof. White"})
	require.NoError(t, err)

	courses, err := state.AdminCourses("")
	require.NoError(t, err)
	assert.Len(t, courses, 3)

	state.Navigate(RouteHome)
	state.Navigate(RouteAdminCourses)

	courses, err = state.AdminCourses("")
	require.NoError(t, err)
	assert.Len(t, courses, 2, "registry should remount from seed data")
}

func TestScreenOpsRequireActiveRoute(t *testing.T) {
	state := newState(adminUser())

	_, err := state.AdminCourses("")
	assert.ErrorIs(t, err, ErrScreenNotActive)

	_, err = state.ToggleUserStatus("3")
	assert.ErrorIs(t, err, ErrScreenNotActive)

	_, err = state.TimetableView()
	assert.ErrorIs(t, err, ErrScreenNotActive)
}

func TestAdminOpsFailForStudent(t *testing.T) {
	state := newState(studentUser())
	state.Navigate(RouteAdminUsers)

	_, err := state.AdminUsers("", "")
	assert.ErrorIs(t, err, ErrScreenNotActive)
}

func TestContentManagerWithoutSelectionIsBlank(t *testing.T) {
	state := newState(adminUser())

	screen := state.Navigate(RouteContentManager)
	assert.Equal(t, RouteContentManager, screen.Route)
	assert.Nil(t, screen.Data)

	_, err := state.AddModule()
	assert.ErrorIs(t, err, ErrNoCourseSelected)
}

func TestOpenContentManagerRequiresRegistry(t *testing.T) {
	state := newState(adminUser())

	_, err := state.OpenContentManager("c1")
	assert.ErrorIs(t, err, ErrScreenNotActive)
}

func TestContentEditsNeverReachRegistry(t *testing.T) {
	state := newState(adminUser())
	state.Navigate(RouteAdminCourses)

	screen, err := state.OpenContentManager("c1")
	require.NoError(t, err)
	assert.Equal(t, RouteContentManager, screen.Route)

	_, err = state.AddModule()
	require.NoError(t, err)

	screen = state.Back()
	assert.Equal(t, RouteAdminCourses, screen.Route)

	courses, err := state.AdminCourses("")
	require.NoError(t, err)
	for _, c := range courses {
		assert.Empty(t, c.Modules)
	}
}

func TestBackFromLiveSchedulerReturnsToRegistry(t *testing.T) {
	state := newState(adminUser())
	state.Navigate(RouteAdminCourses)

	_, err := state.OpenLiveScheduler("c2")
	require.NoError(t, err)

	screen := state.Back()
	assert.Equal(t, RouteAdminCourses, screen.Route)

	screen = state.Back()
	assert.Equal(t, RouteHome, screen.Route)
}

func TestRenderReappliesGateAfterDemotion(t *testing.T) {
	state := newState(adminUser())
	state.Navigate(RouteAdminUsers)

	demoted := adminUser()
	demoted.Role = models.RoleStudent
	state.setUser(demoted)

	screen := state.Render()
	assert.Equal(t, RouteHome, screen.Route)
}

func TestAdminReportsRendersPlaceholder(t *testing.T) {
	state := newState(adminUser())

	screen := state.Navigate(RouteAdminReports)
	assert.Equal(t, RouteAdminReports, screen.Route)
	assert.Nil(t, screen.Data)
}

func TestTeacherViewRejectedForStudent(t *testing.T) {
	state := newState(studentUser())

	_, err := state.TeacherView()
	assert.ErrorIs(t, err, ErrScreenNotActive)

	_, err = newState(teacherUser()).DashboardView()
	assert.ErrorIs(t, err, ErrScreenNotActive)
}

func TestTimetableAndEvaluationViews(t *testing.T) {
	state := newState(studentUser())

	state.Navigate(RouteTimetable)
	days, err := state.TimetableView()
	require.NoError(t, err)
	assert.Len(t, days, 5)
	assert.Equal(t, "Monday", days[0].Day)

	state.Navigate(RouteEvaluation)
	exams, err := state.EvaluationView()
	require.NoError(t, err)
	assert.Len(t, exams, 3)
}

func TestViewResultsAreDetached(t *testing.T) {
	state := newState(studentUser())

	before, err := state.DashboardView()
	require.NoError(t, err)

	_, err = state.ConfirmPurchase("c1")
	require.NoError(t, err)

	assert.False(t, before.Courses[0].IsPurchased, "earlier view must not see later mutations")

	screen := state.Render()
	data, ok := screen.Data.(*DashboardState)
	require.True(t, ok)

	_, err = state.OpenCheckout("c3")
	require.NoError(t, err)
	assert.Empty(t, data.Checkout, "rendered screen must not see later mutations")
}

func TestConcurrentViewAndMutation(t *testing.T) {
	state := newState(studentUser())

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 200; i++ {
			if view, err := state.DashboardView(); err == nil {
				_, _ = json.Marshal(view)
			}
			_, _ = json.Marshal(state.Render().Data)
		}
	}()

	for i := 0; i < 200; i++ {
		_, _ = state.OpenCheckout("c1")
		_, _ = state.ConfirmPurchase("c1")
	}
	<-done
}

func TestChatTranscriptDiscardedOnLeave(t *testing.T) {
	state := newState(studentUser())
	state.Navigate(RouteQABoard)

	require.NoError(t, state.AppendChat(ChatRoleUser, "What is a derivative?"))

	chat, err := state.ChatTranscript()
	require.NoError(t, err)
	assert.Len(t, chat.Messages, 1)

	state.Navigate(RouteHome)
	state.Navigate(RouteQABoard)

	chat, err = state.ChatTranscript()
	require.NoError(t, err)
	assert.Empty(t, chat.Messages)
}
