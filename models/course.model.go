package models

// Course lifecycle statuses.
const (
	CourseDraft     = "draft"
	CoursePublished = "published"
	CourseArchived  = "archived"
)

// Lesson content kinds.
const (
	LessonVideo   = "video"
	LessonPDF     = "pdf"
	LessonReading = "reading"
	LessonQuiz    = "quiz"
)

// Course is a catalog entry. Price 0 means free. IsPurchased is local to the
// student dashboard that holds the course, nothing syncs it anywhere else.
type Course struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Instructor    string   `json:"instructor"`
	Image         string   `json:"image"`
	Progress      int      `json:"progress"` // completion percentage 0-100
	NextSession   string   `json:"nextSession"`
	Description   string   `json:"description,omitempty"`
	Category      string   `json:"category,omitempty"`
	Status        string   `json:"status,omitempty"`
	EnrolledCount int      `json:"enrolledCount,omitempty"`
	Price         float64  `json:"price"`
	IsPurchased   bool     `json:"isPurchased"`
	Modules       []Module `json:"modules,omitempty"`
}

// Module is one curriculum unit. Order is a positive display index, unique
// within a course but never renumbered, so gaps are possible.
type Module struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Order   int      `json:"order"`
	Lessons []Lesson `json:"lessons"`
}

// Lesson is a single content item inside a module.
type Lesson struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Type       string `json:"type"`
	ContentURL string `json:"contentUrl,omitempty"`
	Duration   string `json:"duration,omitempty"`
}

// ValidCourseStatus reports whether status is a known lifecycle value.
func ValidCourseStatus(status string) bool {
	return status == CourseDraft || status == CoursePublished || status == CourseArchived
}
