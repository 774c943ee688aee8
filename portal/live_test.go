package portal

import (
	"fmt"
	"regexp"
	"testing"

	"lumina/models"

	"github.com/stretchr/testify/assert"
)

func TestCreateSessionCopiesCourseContext(t *testing.T) {
	s := NewLiveState(models.Course{ID: "c1", Name: "Advanced Mathematics for Engineers", Instructor: "Dr. Sarah Mitchell"})

	session := s.Create(LiveSessionForm{
		Title:     "  Week 3 Review  ",
		StartTime: "2024-04-01T10:00",
		EndTime:   "2024-04-01T12:00",
	})

	assert.Equal(t, "Week 3 Review", session.Title)
	assert.Equal(t, "c1", session.CourseID)
	assert.Equal(t, "Dr. Sarah Mitchell", session.Instructor)
	assert.NotEmpty(t, session.ID)
	assert.Len(t, s.Sessions, 1)
}

func TestCreateSessionCoercesMissingFields(t *testing.T) {
	s := NewLiveState(models.Course{ID: "c2"})

	session := s.Create(LiveSessionForm{Title: "Office Hours"})
	assert.Empty(t, session.StartTime)
	assert.Empty(t, session.MeetingLink)
	assert.Empty(t, session.Passcode)
}

func TestGenerateCredentialsFormat(t *testing.T) {
	creds := GenerateCredentials()

	assert.Regexp(t, regexp.MustCompile(`^[1-9]\d{8}$`), creds.MeetingID)
	assert.Regexp(t, regexp.MustCompile(`^[a-z0-9]{8}$`), creds.Passcode)
	assert.Equal(t, fmt.Sprintf("https://zoom.us/j/%s?pwd=%s", creds.MeetingID, creds.Passcode), creds.MeetingLink)
}
