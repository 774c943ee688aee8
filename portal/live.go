package portal

import (
	"strings"

	"lumina/models"
	"lumina/utils"
)

// LiveState backs the live-session scheduler for one course. Sessions live
// only here, they are never persisted to the course record.
type LiveState struct {
	Course   models.Course        `json:"course"`
	Sessions []models.LiveSession `json:"sessions"`
}

func NewLiveState(course models.Course) *LiveState {
	return &LiveState{Course: course, Sessions: []models.LiveSession{}}
}

// snapshot returns a detached copy safe to serialize outside the state lock.
func (s *LiveState) snapshot() *LiveState {
	out := &LiveState{
		Course:   copyCourse(s.Course),
		Sessions: make([]models.LiveSession, len(s.Sessions)),
	}
	copy(out.Sessions, s.Sessions)
	return out
}

// LiveSessionForm is the booking form. Absent fields are coerced to empty
// strings; no ordering check between start and end time is performed.
type LiveSessionForm struct {
	Title       string
	StartTime   string
	EndTime     string
	MeetingLink string
	MeetingID   string
	Passcode    string
}

// Create appends a session, copying the course id and instructor from the
// scheduled course.
func (s *LiveState) Create(form LiveSessionForm) *models.LiveSession {
	session := models.LiveSession{
		ID:          utils.NewID(),
		CourseID:    s.Course.ID,
		Title:       strings.TrimSpace(form.Title),
		StartTime:   strings.TrimSpace(form.StartTime),
		EndTime:     strings.TrimSpace(form.EndTime),
		MeetingLink: strings.TrimSpace(form.MeetingLink),
		MeetingID:   strings.TrimSpace(form.MeetingID),
		Passcode:    strings.TrimSpace(form.Passcode),
		Instructor:  s.Course.Instructor,
	}
	s.Sessions = append(s.Sessions, session)
	return &s.Sessions[len(s.Sessions)-1]
}

// GenerateCredentials produces a meeting id, passcode and join link as a
// form pre-fill. No uniqueness check is made against existing sessions.
func GenerateCredentials() models.MeetingCredentials {
	meetingID := utils.GenerateMeetingID()
	passcode := utils.GeneratePasscode()
	return models.MeetingCredentials{
		MeetingID:   meetingID,
		Passcode:    passcode,
		MeetingLink: utils.BuildMeetingLink(meetingID, passcode),
	}
}
