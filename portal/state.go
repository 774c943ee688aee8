package portal

import (
	"errors"
	"sync"
	"time"

	"lumina/models"
)

// Screen op errors.
var (
	ErrScreenNotActive  = errors.New("screen is not active")
	ErrNoCourseSelected = errors.New("no course selected")
)

// Screen is the payload rendered for the resolved route. Data is nil for the
// defined degenerate states (content-manager or live-scheduler without a
// selected course, and the admin-reports placeholder).
type Screen struct {
	Route Route       `json:"route"`
	Data  interface{} `json:"data"`
}

// State is one signed-in user's portal: the current route, the selected
// course context and the live screen components. A screen is created when
// its route is entered and discarded when the user navigates away, so every
// visit starts from the seed data.
type State struct {
	mu             sync.Mutex
	user           *models.User
	currentRoute   Route
	selectedCourse *models.Course
	lastSeen       time.Time

	dashboard      *DashboardState
	teacherBoard   *TeacherDashboardState
	courseRegistry *CourseRegistryState
	userRegistry   *UserRegistryState
	content        *ContentState
	live           *LiveState
	chat           *ChatState
}

func newState(user *models.User) *State {
	return &State{user: user, currentRoute: RouteHome, lastSeen: time.Now()}
}

// User returns the authenticated user behind this state.
func (s *State) User() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

func (s *State) setUser(user *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
	s.lastSeen = time.Now()
}

func (s *State) idleSince(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastSeen)
}

func (s *State) touch() {
	s.lastSeen = time.Now()
}

// Navigate requests a route change and returns the resolved screen.
func (s *State) Navigate(route Route) Screen {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	s.setRoute(route)
	return s.render()
}

// Render re-resolves the current screen without changing the requested route.
func (s *State) Render() Screen {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	return s.render()
}

// Back leaves the content-manager or live-scheduler back to the course
// registry; anywhere else it returns home.
func (s *State) Back() Screen {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	switch s.currentRoute {
	case RouteContentManager, RouteLiveScheduler:
		s.setRoute(RouteAdminCourses)
	default:
		s.setRoute(RouteHome)
	}
	return s.render()
}

// OpenContentManager copies the course out of the registry into the selected
// course context and switches to the curriculum builder.
func (s *State) OpenContentManager(courseID string) (Screen, error) {
	return s.openCourseScreen(courseID, RouteContentManager)
}

// OpenLiveScheduler does the same for the live-session scheduler.
func (s *State) OpenLiveScheduler(courseID string) (Screen, error) {
	return s.openCourseScreen(courseID, RouteLiveScheduler)
}

func (s *State) openCourseScreen(courseID string, route Route) (Screen, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	if s.resolved() != RouteAdminCourses {
		return Screen{}, ErrScreenNotActive
	}

	course, err := s.courses().Find(courseID)
	if err != nil {
		return Screen{}, err
	}

	selected := *course // by value, edits never reach the registry
	s.selectedCourse = &selected
	s.setRoute(route)
	return s.render(), nil
}

// setRoute applies the permission gate and discards the screens of the route
// being left.
func (s *State) setRoute(route Route) {
	route = Authorize(s.user, route)
	if route == s.currentRoute {
		return
	}
	s.discard(s.currentRoute)
	s.currentRoute = route
}

// discard drops the screen component owned by the departed route.
func (s *State) discard(route Route) {
	switch route {
	case RouteHome:
		s.dashboard = nil
		s.teacherBoard = nil
	case RouteAdminCourses:
		s.courseRegistry = nil
	case RouteAdminUsers:
		s.userRegistry = nil
	case RouteContentManager:
		s.content = nil
	case RouteLiveScheduler:
		s.live = nil
	case RouteQABoard:
		s.chat = nil
	}
}

// resolved re-evaluates the gate for the current route. The override is
// applied to the stored route, matching the source behavior of resetting the
// selector itself.
func (s *State) resolved() Route {
	route := Authorize(s.user, s.currentRoute)
	if route != s.currentRoute {
		s.discard(s.currentRoute)
		s.currentRoute = route
	}
	return route
}

// render resolves the screen payload. Data is always a detached copy: the
// encoder runs after the lock is released, so nothing live may escape.
func (s *State) render() Screen {
	route := s.resolved()

	switch route {
	case RouteHome:
		if s.user != nil && s.user.Role == models.RoleTeacher {
			return Screen{Route: route, Data: s.teacherDashboard().snapshot()}
		}
		return Screen{Route: route, Data: s.studentDashboard().snapshot()}
	case RouteTimetable:
		return Screen{Route: route, Data: seedTimetable()}
	case RouteEvaluation:
		return Screen{Route: route, Data: seedExams()}
	case RouteQABoard:
		return Screen{Route: route, Data: s.chatState().snapshot()}
	case RouteStore:
		return Screen{Route: route, Data: map[string]string{
			"title":       "Lumina Course Store",
			"description": "Explore professional certifications and premium academic materials.",
		}}
	case RouteSettings:
		if s.user == nil {
			return Screen{Route: route}
		}
		user := *s.user
		return Screen{Route: route, Data: &user}
	case RouteAdminCourses:
		return Screen{Route: route, Data: s.courses().snapshot()}
	case RouteAdminUsers:
		return Screen{Route: route, Data: s.users().snapshot()}
	case RouteContentManager:
		if s.selectedCourse == nil {
			return Screen{Route: route}
		}
		return Screen{Route: route, Data: s.contentState().snapshot()}
	case RouteLiveScheduler:
		if s.selectedCourse == nil {
			return Screen{Route: route}
		}
		return Screen{Route: route, Data: s.liveState().snapshot()}
	default:
		// admin-reports has no implemented screen yet
		return Screen{Route: route}
	}
}

// Lazy screen constructors. Each seeds fresh state on first access after a
// route change.

func (s *State) studentDashboard() *DashboardState {
	if s.dashboard == nil {
		s.dashboard = NewDashboardState()
	}
	return s.dashboard
}

func (s *State) teacherDashboard() *TeacherDashboardState {
	if s.teacherBoard == nil {
		name := ""
		if s.user != nil {
			name = s.user.Name
		}
		s.teacherBoard = NewTeacherDashboardState(name)
	}
	return s.teacherBoard
}

func (s *State) courses() *CourseRegistryState {
	if s.courseRegistry == nil {
		s.courseRegistry = NewCourseRegistryState()
	}
	return s.courseRegistry
}

func (s *State) users() *UserRegistryState {
	if s.userRegistry == nil {
		s.userRegistry = NewUserRegistryState()
	}
	return s.userRegistry
}

func (s *State) contentState() *ContentState {
	if s.content == nil && s.selectedCourse != nil {
		s.content = NewContentState(*s.selectedCourse)
	}
	return s.content
}

func (s *State) liveState() *LiveState {
	if s.live == nil && s.selectedCourse != nil {
		s.live = NewLiveState(*s.selectedCourse)
	}
	return s.live
}

func (s *State) chatState() *ChatState {
	if s.chat == nil {
		s.chat = NewChatState()
	}
	return s.chat
}

// Screen operations. Each requires its screen to be the active resolved
// route; for admin screens that check subsumes the permission gate. Every
// result is a detached copy, callers serialize it after the lock is gone.

func (s *State) requireRoute(route Route) error {
	if s.resolved() != route {
		return ErrScreenNotActive
	}
	return nil
}

// DashboardView returns the student home screen state.
func (s *State) DashboardView() (*DashboardState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	if err := s.requireRoute(RouteHome); err != nil {
		return nil, err
	}
	if s.user != nil && s.user.Role == models.RoleTeacher {
		return nil, ErrScreenNotActive
	}
	return s.studentDashboard().snapshot(), nil
}

// OpenCheckout selects the checkout course on the student dashboard.
func (s *State) OpenCheckout(courseID string) (*models.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	if err := s.requireRoute(RouteHome); err != nil {
		return nil, err
	}
	course, err := s.studentDashboard().OpenCheckout(courseID)
	if err != nil {
		return nil, err
	}
	out := copyCourse(*course)
	return &out, nil
}

// ConfirmPurchase completes the enrollment flow for the course.
func (s *State) ConfirmPurchase(courseID string) (*models.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	if err := s.requireRoute(RouteHome); err != nil {
		return nil, err
	}
	course, err := s.studentDashboard().ConfirmPurchase(courseID)
	if err != nil {
		return nil, err
	}
	out := copyCourse(*course)
	return &out, nil
}

// TeacherView returns the teacher home screen state.
func (s *State) TeacherView() (*TeacherDashboardState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	if err := s.requireRoute(RouteHome); err != nil {
		return nil, err
	}
	if s.user == nil || s.user.Role != models.RoleTeacher {
		return nil, ErrScreenNotActive
	}
	return s.teacherDashboard().snapshot(), nil
}

// AdminCourses searches the course registry.
func (s *State) AdminCourses(query string) ([]models.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	if err := s.requireRoute(RouteAdminCourses); err != nil {
		return nil, err
	}
	return s.courses().Search(query), nil
}

// CreateCourse appends a new course to the registry.
func (s *State) CreateCourse(in CourseInput) (*models.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	if err := s.requireRoute(RouteAdminCourses); err != nil {
		return nil, err
	}
	out := copyCourse(*s.courses().Create(in))
	return &out, nil
}

// UpdateCourse merges the patch into the matching registry course.
func (s *State) UpdateCourse(id string, patch CoursePatch) (*models.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	if err := s.requireRoute(RouteAdminCourses); err != nil {
		return nil, err
	}
	course, err := s.courses().Update(id, patch)
	if err != nil {
		return nil, err
	}
	out := copyCourse(*course)
	return &out, nil
}

// AdminUsers filters the user registry.
func (s *State) AdminUsers(search, role string) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	if err := s.requireRoute(RouteAdminUsers); err != nil {
		return nil, err
	}
	return s.users().Filter(search, role), nil
}

// ToggleUserStatus flips a registry user between active and suspended.
func (s *State) ToggleUserStatus(id string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	if err := s.requireRoute(RouteAdminUsers); err != nil {
		return nil, err
	}
	user, err := s.users().ToggleStatus(id)
	if err != nil {
		return nil, err
	}
	out := *user
	return &out, nil
}

// ChangeUserRole overwrites a registry user's role.
func (s *State) ChangeUserRole(id, role string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	if err := s.requireRoute(RouteAdminUsers); err != nil {
		return nil, err
	}
	user, err := s.users().ChangeRole(id, role)
	if err != nil {
		return nil, err
	}
	out := *user
	return &out, nil
}

// contentView requires the lock to be held.
func (s *State) contentView() (*ContentState, error) {
	if err := s.requireRoute(RouteContentManager); err != nil {
		return nil, err
	}
	if s.selectedCourse == nil {
		return nil, ErrNoCourseSelected
	}
	return s.contentState(), nil
}

// ContentView returns the curriculum builder state for the selected course.
func (s *State) ContentView() (*ContentState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	content, err := s.contentView()
	if err != nil {
		return nil, err
	}
	return content.snapshot(), nil
}

// AddModule appends a module to the selected course's curriculum.
func (s *State) AddModule() (*models.Module, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	content, err := s.contentView()
	if err != nil {
		return nil, err
	}
	out := copyModule(*content.AddModule())
	return &out, nil
}

// AddLesson appends a lesson to the named module.
func (s *State) AddLesson(moduleID string) (*models.Lesson, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	content, err := s.contentView()
	if err != nil {
		return nil, err
	}
	lesson, err := content.AddLesson(moduleID)
	if err != nil {
		return nil, err
	}
	out := *lesson
	return &out, nil
}

// RenameModule replaces a module title.
func (s *State) RenameModule(moduleID, title string) (*models.Module, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	content, err := s.contentView()
	if err != nil {
		return nil, err
	}
	module, err := content.RenameModule(moduleID, title)
	if err != nil {
		return nil, err
	}
	out := copyModule(*module)
	return &out, nil
}

// RenameLesson replaces a lesson title.
func (s *State) RenameLesson(lessonID, title string) (*models.Lesson, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	content, err := s.contentView()
	if err != nil {
		return nil, err
	}
	lesson, err := content.RenameLesson(lessonID, title)
	if err != nil {
		return nil, err
	}
	out := *lesson
	return &out, nil
}

// liveView requires the lock to be held.
func (s *State) liveView() (*LiveState, error) {
	if err := s.requireRoute(RouteLiveScheduler); err != nil {
		return nil, err
	}
	if s.selectedCourse == nil {
		return nil, ErrNoCourseSelected
	}
	return s.liveState(), nil
}

// LiveView returns the scheduler state for the selected course.
func (s *State) LiveView() (*LiveState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	live, err := s.liveView()
	if err != nil {
		return nil, err
	}
	return live.snapshot(), nil
}

// CreateLiveSession books a session for the selected course.
func (s *State) CreateLiveSession(form LiveSessionForm) (*models.LiveSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	live, err := s.liveView()
	if err != nil {
		return nil, err
	}
	out := *live.Create(form)
	return &out, nil
}

// TimetableView returns the weekly schedule. The data is a static seed, but
// the screen still has to be the active route.
func (s *State) TimetableView() ([]TimetableDay, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	if err := s.requireRoute(RouteTimetable); err != nil {
		return nil, err
	}
	return seedTimetable(), nil
}

// EvaluationView returns the upcoming exam list.
func (s *State) EvaluationView() ([]models.Exam, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	if err := s.requireRoute(RouteEvaluation); err != nil {
		return nil, err
	}
	return seedExams(), nil
}

// MeetingCredentials produces a fresh credential set for the booking form.
func (s *State) MeetingCredentials() (*models.MeetingCredentials, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	if _, err := s.liveView(); err != nil {
		return nil, err
	}
	creds := GenerateCredentials()
	return &creds, nil
}

// ChatTranscript returns the locally held Q&A transcript.
func (s *State) ChatTranscript() (*ChatState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	if err := s.requireRoute(RouteQABoard); err != nil {
		return nil, err
	}
	return s.chatState().snapshot(), nil
}

// AppendChat records a transcript message on the Q&A board.
func (s *State) AppendChat(role, content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	if err := s.requireRoute(RouteQABoard); err != nil {
		return err
	}
	s.chatState().Append(role, content)
	return nil
}
