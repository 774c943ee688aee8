package portal

import "lumina/models"

// Copy helpers for the course tree. View methods hand their results to the
// JSON encoder after the state lock is released, so every returned value must
// be detached from the live screen structures.

func copyLessons(in []models.Lesson) []models.Lesson {
	out := make([]models.Lesson, len(in))
	copy(out, in)
	return out
}

func copyModule(m models.Module) models.Module {
	m.Lessons = copyLessons(m.Lessons)
	return m
}

func copyModules(in []models.Module) []models.Module {
	out := make([]models.Module, len(in))
	for i, m := range in {
		out[i] = copyModule(m)
	}
	return out
}

func copyCourse(c models.Course) models.Course {
	c.Modules = copyModules(c.Modules)
	return c
}

func copyCourses(in []models.Course) []models.Course {
	out := make([]models.Course, len(in))
	for i, c := range in {
		out[i] = copyCourse(c)
	}
	return out
}
