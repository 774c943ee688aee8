package models

// Notice is a read-only announcement shown on the student dashboard.
type Notice struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Date    string `json:"date"`
	Type    string `json:"type"` // alert or info
}

// Exam is a read-only evaluation list entry.
type Exam struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Subject string `json:"subject"`
	DueDate string `json:"dueDate"`
	Status  string `json:"status"` // pending, completed or missed
}

// TimetableEntry is one slot in the weekly schedule.
type TimetableEntry struct {
	Time    string `json:"time"`
	Subject string `json:"subject"`
	Room    string `json:"room"`
	Tutor   string `json:"tutor"`
}

// ClassStudent is a roster row on the teacher dashboard.
type ClassStudent struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Grade    string `json:"grade"`
	Progress int    `json:"progress"`
	Status   string `json:"status"` // Online or Offline
}

// TeacherTask is a pending administrative item on the teacher dashboard.
type TeacherTask struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Students int    `json:"students,omitempty"`
	Due      string `json:"due"`
}
