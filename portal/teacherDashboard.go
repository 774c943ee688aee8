package portal

import "lumina/models"

// TeacherDashboardState backs the teacher home screen: taught courses, the
// class roster and pending administrative tasks.
type TeacherDashboardState struct {
	Courses  []models.Course       `json:"courses"`
	Students []models.ClassStudent `json:"students"`
	Tasks    []models.TeacherTask  `json:"tasks"`
}

func NewTeacherDashboardState(instructor string) *TeacherDashboardState {
	return &TeacherDashboardState{
		Courses:  seedTeacherCourses(instructor),
		Students: seedClassStudents(),
		Tasks:    seedTeacherTasks(),
	}
}

// snapshot returns a detached copy safe to serialize outside the state lock.
func (d *TeacherDashboardState) snapshot() *TeacherDashboardState {
	out := &TeacherDashboardState{
		Courses:  copyCourses(d.Courses),
		Students: make([]models.ClassStudent, len(d.Students)),
		Tasks:    make([]models.TeacherTask, len(d.Tasks)),
	}
	copy(out.Students, d.Students)
	copy(out.Tasks, d.Tasks)
	return out
}
