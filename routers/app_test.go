package routers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"lumina/assistant"
	"lumina/auth"
	"lumina/config"
	"lumina/models"
	"lumina/portal"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	app   *fiber.App
	store *flakyStore
)

// flakyStore lets a test simulate the account database going away while
// tokens stay valid.
type flakyStore struct {
	*auth.MemoryStore
	failLookups bool
}

func (f *flakyStore) FindByUID(uid string) (*models.Account, error) {
	if f.failLookups {
		return nil, errors.New("account store unavailable")
	}
	return f.MemoryStore.FindByUID(uid)
}

func TestMain(m *testing.M) {
	config.AppConfig = &config.Config{
		Port:      "3000",
		JWTKey:    "testsecret",
		SaltRound: 4,
	}

	store = &flakyStore{MemoryStore: auth.NewMemoryStore()}
	auth.Init(store)
	portal.Init(auth.Default, 2*time.Hour)

	app = SetupApp()

	code := m.Run()
	portal.Sessions.Close()
	os.Exit(code)
}

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func doJSON(t *testing.T, method, path, token string, body interface{}) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

type sessionData struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

func signup(t *testing.T, name, email, role string) sessionData {
	t.Helper()

	code, out := doJSON(t, http.MethodPost, "/auth/signup", "", fiber.Map{
		"name":     name,
		"email":    email,
		"phone":    "0771234567",
		"password": "password123",
		"role":     role,
	})
	require.Equal(t, http.StatusCreated, code, out.Message)

	var data sessionData
	require.NoError(t, json.Unmarshal(out.Data, &data))
	require.NotEmpty(t, data.Token)
	return data
}

func TestSignupAndLogin(t *testing.T) {
	session := signup(t, "Alice Thompson", "alice.signup@lumina.edu", "")
	assert.Equal(t, models.RoleStudent, session.User.Role)

	code, out := doJSON(t, http.MethodPost, "/auth/login", "", fiber.Map{
		"identifier": "alice.signup@lumina.edu",
		"password":   "password123",
	})
	assert.Equal(t, http.StatusOK, code)
	assert.True(t, out.Status)

	code, _ = doJSON(t, http.MethodPost, "/auth/login", "", fiber.Map{
		"identifier": "alice.signup@lumina.edu",
		"password":   "wrongpass123",
	})
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestSignupValidation(t *testing.T) {
	code, out := doJSON(t, http.MethodPost, "/auth/signup", "", fiber.Map{
		"name":            "Bob Roberts",
		"email":           "not-an-email",
		"phone":           "0770000000",
		"password":        "password123",
		"confirmPassword": "different123",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.False(t, out.Status)

	var fields map[string]string
	require.NoError(t, json.Unmarshal(out.Data, &fields))
	assert.Equal(t, "Invalid email!", fields["email"])
	assert.Equal(t, "Passwords do not match.", fields["confirmPassword"])
}

func TestSessionEndpoint(t *testing.T) {
	session := signup(t, "Charlie Dean", "charlie.session@lumina.edu", "")

	code, out := doJSON(t, http.MethodGet, "/auth/session", session.Token, nil)
	assert.Equal(t, http.StatusOK, code)

	var user models.User
	require.NoError(t, json.Unmarshal(out.Data, &user))
	assert.Equal(t, session.User.ID, user.ID)

	code, _ = doJSON(t, http.MethodGet, "/auth/session", "", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestAdminGateOverHTTP(t *testing.T) {
	session := signup(t, "Diana Prince", "diana.gate@lumina.edu", "")

	code, out := doJSON(t, http.MethodPost, "/portal/navigate", session.Token, fiber.Map{"route": "admin-users"})
	require.Equal(t, http.StatusOK, code)

	var screen portal.Screen
	require.NoError(t, json.Unmarshal(out.Data, &screen))
	assert.Equal(t, portal.RouteHome, screen.Route, "admin route collapses to home")

	code, _ = doJSON(t, http.MethodGet, "/admin/users", session.Token, nil)
	assert.Equal(t, http.StatusConflict, code)
}

func TestNavigateUnknownRoute(t *testing.T) {
	session := signup(t, "Edward Norton", "edward.routes@lumina.edu", "")

	code, _ := doJSON(t, http.MethodPost, "/portal/navigate", session.Token, fiber.Map{"route": "profile"})
	assert.Equal(t, http.StatusUnprocessableEntity, code)
}

func TestAdminAuthoringFlow(t *testing.T) {
	session := signup(t, "Rashmika Perera", "rashmika.flow@lumina.edu", models.RoleAdmin)

	code, _ := doJSON(t, http.MethodPost, "/portal/navigate", session.Token, fiber.Map{"route": "admin-courses"})
	require.Equal(t, http.StatusOK, code)

	code, out := doJSON(t, http.MethodGet, "/admin/courses?query=wilson", session.Token, nil)
	require.Equal(t, http.StatusOK, code)

	var courses []models.Course
	require.NoError(t, json.Unmarshal(out.Data, &courses))
	require.Len(t, courses, 1)
	assert.Equal(t, "c2", courses[0].ID)

	code, out = doJSON(t, http.MethodPost, "/admin/courses", session.Token, fiber.Map{
		"name":       "Ethics in Tech",
		"instructor": "Prof. White",
		"price":      12.5,
	})
	require.Equal(t, http.StatusCreated, code)

	var created models.Course
	require.NoError(t, json.Unmarshal(out.Data, &created))
	assert.Equal(t, models.CourseDraft, created.Status)

	newStatus := models.CoursePublished
	code, out = doJSON(t, http.MethodPatch, "/admin/courses/"+created.ID, session.Token, fiber.Map{"status": newStatus})
	require.Equal(t, http.StatusOK, code)

	var updated models.Course
	require.NoError(t, json.Unmarshal(out.Data, &updated))
	assert.Equal(t, newStatus, updated.Status)
	assert.Equal(t, "Ethics in Tech", updated.Name)

	// drill into the curriculum builder for a seeded course
	code, _ = doJSON(t, http.MethodPost, "/portal/open/content", session.Token, fiber.Map{"courseId": "c1"})
	require.Equal(t, http.StatusOK, code)

	code, out = doJSON(t, http.MethodPost, "/content/modules", session.Token, nil)
	require.Equal(t, http.StatusCreated, code)

	var module models.Module
	require.NoError(t, json.Unmarshal(out.Data, &module))
	assert.Equal(t, 1, module.Order)

	code, out = doJSON(t, http.MethodPost, fmt.Sprintf("/content/modules/%s/lessons", module.ID), session.Token, nil)
	require.Equal(t, http.StatusCreated, code)

	var lesson models.Lesson
	require.NoError(t, json.Unmarshal(out.Data, &lesson))
	assert.Equal(t, models.LessonVideo, lesson.Type)
}

func TestLiveSchedulerFlow(t *testing.T) {
	session := signup(t, "Sarah Mitchell", "sarah.live@lumina.edu", models.RoleAdmin)

	code, _ := doJSON(t, http.MethodPost, "/portal/navigate", session.Token, fiber.Map{"route": "admin-courses"})
	require.Equal(t, http.StatusOK, code)

	code, _ = doJSON(t, http.MethodPost, "/portal/open/live", session.Token, fiber.Map{"courseId": "c1"})
	require.Equal(t, http.StatusOK, code)

	code, out := doJSON(t, http.MethodPost, "/live/credentials", session.Token, nil)
	require.Equal(t, http.StatusOK, code)

	var creds models.MeetingCredentials
	require.NoError(t, json.Unmarshal(out.Data, &creds))
	assert.Len(t, creds.MeetingID, 9)

	code, out = doJSON(t, http.MethodPost, "/live/sessions", session.Token, fiber.Map{
		"title":     "Week 3 Review",
		"startTime": "2024-04-01T10:00",
		"endTime":   "2024-04-01T12:00",
		"meetingId": creds.MeetingID,
		"passcode":  creds.Passcode,
	})
	require.Equal(t, http.StatusCreated, code)

	var created models.LiveSession
	require.NoError(t, json.Unmarshal(out.Data, &created))
	assert.Equal(t, "c1", created.CourseID)
	assert.Equal(t, "Dr. Sarah Mitchell", created.Instructor)
}

func TestAssistantFallbackOverHTTP(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()
	assistant.Default = assistant.NewClient(server.URL, "test-key", "gemini-3-flash-preview")

	session := signup(t, "Alice Thompson", "alice.assistant@lumina.edu", "")

	code, _ := doJSON(t, http.MethodPost, "/portal/navigate", session.Token, fiber.Map{"route": "qa-board"})
	require.Equal(t, http.StatusOK, code)

	code, out := doJSON(t, http.MethodPost, "/assistant/ask", session.Token, fiber.Map{"question": "What is a derivative?"})
	require.Equal(t, http.StatusOK, code)

	var reply struct {
		Reply string `json:"reply"`
	}
	require.NoError(t, json.Unmarshal(out.Data, &reply))
	assert.Equal(t, assistant.Fallback, reply.Reply)

	code, out = doJSON(t, http.MethodGet, "/assistant/", session.Token, nil)
	require.Equal(t, http.StatusOK, code)

	var chat portal.ChatState
	require.NoError(t, json.Unmarshal(out.Data, &chat))
	require.Len(t, chat.Messages, 2)
	assert.Equal(t, portal.ChatRoleUser, chat.Messages[0].Role)
	assert.Equal(t, assistant.Fallback, chat.Messages[1].Content)
}

func TestAssistantRequiresActiveBoard(t *testing.T) {
	session := signup(t, "Bob Roberts", "bob.assistant@lumina.edu", "")

	code, _ := doJSON(t, http.MethodPost, "/assistant/ask", session.Token, fiber.Map{"question": "hello?"})
	assert.Equal(t, http.StatusConflict, code)
}

func TestLogoutClearsStateEvenWhenStoreFails(t *testing.T) {
	session := signup(t, "Frank Castle", "frank.logout@lumina.edu", "")
	require.NotNil(t, portal.Sessions.Get(session.User.ID))

	store.failLookups = true
	defer func() { store.failLookups = false }()

	code, out := doJSON(t, http.MethodPost, "/auth/logout", session.Token, nil)
	assert.Equal(t, http.StatusOK, code)
	assert.True(t, out.Status)

	assert.Nil(t, portal.Sessions.Get(session.User.ID), "portal state is gone despite the store failure")
}

func TestPurchaseFlowOverHTTP(t *testing.T) {
	session := signup(t, "Grace Hopper", "grace.purchase@lumina.edu", "")

	code, out := doJSON(t, http.MethodGet, "/dashboard/", session.Token, nil)
	require.Equal(t, http.StatusOK, code)

	var dashboard portal.DashboardState
	require.NoError(t, json.Unmarshal(out.Data, &dashboard))
	require.Len(t, dashboard.Courses, 3)
	assert.False(t, dashboard.Courses[0].IsPurchased)

	code, _ = doJSON(t, http.MethodPost, "/dashboard/checkout/c1", session.Token, nil)
	require.Equal(t, http.StatusOK, code)

	code, out = doJSON(t, http.MethodPost, "/dashboard/purchase/c1", session.Token, nil)
	require.Equal(t, http.StatusOK, code)

	var course models.Course
	require.NoError(t, json.Unmarshal(out.Data, &course))
	assert.True(t, course.IsPurchased)

	code, _ = doJSON(t, http.MethodPost, "/dashboard/purchase/missing", session.Token, nil)
	assert.Equal(t, http.StatusNotFound, code)
}
