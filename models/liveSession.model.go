package models

// LiveSession is a scheduled video class for one course. The course name and
// instructor are denormalized copies, there is no referential integrity back
// to the course record.
type LiveSession struct {
	ID          string `json:"id"`
	CourseID    string `json:"courseId"`
	Title       string `json:"title"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	MeetingLink string `json:"meetingLink"`
	MeetingID   string `json:"meetingId,omitempty"`
	Passcode    string `json:"passcode,omitempty"`
	Instructor  string `json:"instructor"`
}

// MeetingCredentials is a generated pre-fill for the session form. The
// operator may still edit all three fields before submitting.
type MeetingCredentials struct {
	MeetingID   string `json:"meetingId"`
	Passcode    string `json:"passcode"`
	MeetingLink string `json:"meetingLink"`
}
