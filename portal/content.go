package portal

import (
	"errors"

	"lumina/models"
	"lumina/utils"
)

// Content authoring errors.
var (
	ErrModuleNotFound = errors.New("module not found")
	ErrLessonNotFound = errors.New("lesson not found")
)

// ContentState backs the curriculum builder. It holds a by-value copy of the
// selected course; edits are not synchronized back to the course registry.
type ContentState struct {
	Course  models.Course   `json:"course"`
	Modules []models.Module `json:"modules"`
}

func NewContentState(course models.Course) *ContentState {
	modules := make([]models.Module, len(course.Modules))
	copy(modules, course.Modules)
	return &ContentState{Course: course, Modules: modules}
}

// snapshot returns a detached copy safe to serialize outside the state lock.
func (s *ContentState) snapshot() *ContentState {
	return &ContentState{
		Course:  copyCourse(s.Course),
		Modules: copyModules(s.Modules),
	}
}

// AddModule appends a new empty module. Order is the current module count
// plus one; existing orders are never renumbered.
func (s *ContentState) AddModule() *models.Module {
	module := models.Module{
		ID:      utils.NewID(),
		Title:   "New Module",
		Order:   len(s.Modules) + 1,
		Lessons: []models.Lesson{},
	}
	s.Modules = append(s.Modules, module)
	return &s.Modules[len(s.Modules)-1]
}

// AddLesson appends a video lesson with an empty content reference to the
// named module's lesson list.
func (s *ContentState) AddLesson(moduleID string) (*models.Lesson, error) {
	for i := range s.Modules {
		if s.Modules[i].ID != moduleID {
			continue
		}
		lesson := models.Lesson{
			ID:         utils.NewID(),
			Title:      "New Lesson",
			Type:       models.LessonVideo,
			ContentURL: "",
		}
		s.Modules[i].Lessons = append(s.Modules[i].Lessons, lesson)
		return &s.Modules[i].Lessons[len(s.Modules[i].Lessons)-1], nil
	}
	return nil, ErrModuleNotFound
}

// RenameModule replaces the title of the matching module.
func (s *ContentState) RenameModule(moduleID, title string) (*models.Module, error) {
	for i := range s.Modules {
		if s.Modules[i].ID == moduleID {
			s.Modules[i].Title = title
			return &s.Modules[i], nil
		}
	}
	return nil, ErrModuleNotFound
}

// RenameLesson replaces the title of the matching lesson, searching the full
// nested structure.
func (s *ContentState) RenameLesson(lessonID, title string) (*models.Lesson, error) {
	for i := range s.Modules {
		for j := range s.Modules[i].Lessons {
			if s.Modules[i].Lessons[j].ID == lessonID {
				s.Modules[i].Lessons[j].Title = title
				return &s.Modules[i].Lessons[j], nil
			}
		}
	}
	return nil, ErrLessonNotFound
}
