package portal

import (
	"strings"

	"lumina/models"
	"lumina/utils"
)

// CourseRegistryState backs the admin course authoring screen. The
// collection keeps insertion order and is never re-sorted.
type CourseRegistryState struct {
	Courses []models.Course `json:"courses"`
}

func NewCourseRegistryState() *CourseRegistryState {
	return &CourseRegistryState{Courses: seedRegistryCourses()}
}

// snapshot returns a detached copy safe to serialize outside the state lock.
func (r *CourseRegistryState) snapshot() *CourseRegistryState {
	return &CourseRegistryState{Courses: copyCourses(r.Courses)}
}

// CourseInput carries the authoring form for a new course.
type CourseInput struct {
	Name        string
	Instructor  string
	Image       string
	Category    string
	NextSession string
	Status      string
	Price       float64
	Description string
}

// CoursePatch holds partial updates. Nil fields are left untouched.
type CoursePatch struct {
	Name        *string
	Instructor  *string
	Image       *string
	Category    *string
	NextSession *string
	Status      *string
	Price       *float64
	Description *string
}

// Create appends a new course with a fresh identity. Status defaults to
// draft, enrollment and progress start at zero.
func (r *CourseRegistryState) Create(in CourseInput) *models.Course {
	status := in.Status
	if !models.ValidCourseStatus(status) {
		status = models.CourseDraft
	}
	nextSession := in.NextSession
	if nextSession == "" {
		nextSession = "TBD"
	}

	course := models.Course{
		ID:          utils.NewID(),
		Name:        in.Name,
		Instructor:  in.Instructor,
		Image:       in.Image,
		Category:    in.Category,
		NextSession: nextSession,
		Status:      status,
		Price:       in.Price,
		Description: in.Description,
	}
	r.Courses = append(r.Courses, course)
	return &r.Courses[len(r.Courses)-1]
}

// Update merges the patch into the matching course.
func (r *CourseRegistryState) Update(id string, patch CoursePatch) (*models.Course, error) {
	for i := range r.Courses {
		if r.Courses[i].ID != id {
			continue
		}
		c := &r.Courses[i]
		if patch.Name != nil {
			c.Name = *patch.Name
		}
		if patch.Instructor != nil {
			c.Instructor = *patch.Instructor
		}
		if patch.Image != nil {
			c.Image = *patch.Image
		}
		if patch.Category != nil {
			c.Category = *patch.Category
		}
		if patch.NextSession != nil {
			c.NextSession = *patch.NextSession
		}
		if patch.Status != nil {
			c.Status = *patch.Status
		}
		if patch.Price != nil {
			c.Price = *patch.Price
		}
		if patch.Description != nil {
			c.Description = *patch.Description
		}
		return c, nil
	}
	return nil, ErrCourseNotFound
}

// Search filters by a case-insensitive substring of the course name or the
// instructor name. The underlying collection is never mutated.
func (r *CourseRegistryState) Search(query string) []models.Course {
	query = strings.ToLower(query)

	out := make([]models.Course, 0, len(r.Courses))
	for _, c := range r.Courses {
		if strings.Contains(strings.ToLower(c.Name), query) ||
			strings.Contains(strings.ToLower(c.Instructor), query) {
			out = append(out, c)
		}
	}
	return out
}

// Find returns the course with the given id.
func (r *CourseRegistryState) Find(id string) (*models.Course, error) {
	for i := range r.Courses {
		if r.Courses[i].ID == id {
			return &r.Courses[i], nil
		}
	}
	return nil, ErrCourseNotFound
}
