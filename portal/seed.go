package portal

import "lumina/models"

// Seed data mirrors what each screen starts with on mount. Every screen gets
// fresh copies, nothing is shared between visits or between users.

func seedDashboardCourses() []models.Course {
	return []models.Course{
		{
			ID:          "c1",
			Name:        "Advanced Mathematics for Engineers",
			Instructor:  "Dr. Sarah Mitchell",
			Image:       "https://images.unsplash.com/photo-1509228468518-180dd48a5d5f?auto=format&fit=crop&q=80&w=400",
			Progress:    0,
			NextSession: "Tomorrow, 10:00 AM",
			Price:       15.00,
			IsPurchased: false,
		},
		{
			ID:          "c2",
			Name:        "Introduction to Artificial Intelligence",
			Instructor:  "Prof. James Wilson",
			Image:       "https://images.unsplash.com/photo-1677442136019-21780ecad995?auto=format&fit=crop&q=80&w=400",
			Progress:    30,
			NextSession: "Wednesday, 02:00 PM",
			Price:       0,
			IsPurchased: true,
		},
		{
			ID:          "c3",
			Name:        "Quantum Physics & Relativity",
			Instructor:  "Dr. Robert Oppen",
			Image:       "https://images.unsplash.com/photo-1635070041078-e363dbe005cb?auto=format&fit=crop&q=80&w=400",
			Progress:    12,
			NextSession: "Friday, 09:00 AM",
			Price:       25.00,
			IsPurchased: false,
		},
	}
}

func seedNotices() []models.Notice {
	return []models.Notice{
		{
			ID:      "1",
			Title:   "Quarterly Maintenance Scheduled",
			Content: "Lumina systems will be undergoing routine maintenance this Saturday.",
			Date:    "March 20, 2024",
			Type:    "alert",
		},
	}
}

func seedRegistryCourses() []models.Course {
	return []models.Course{
		{
			ID:            "c1",
			Name:          "Advanced Mathematics for Engineers",
			Instructor:    "Dr. Sarah Mitchell",
			Image:         "https://images.unsplash.com/photo-1509228468518-180dd48a5d5f?auto=format&fit=crop&q=80&w=400",
			Progress:      0,
			NextSession:   "Monday, 10:00 AM",
			Category:      "Mathematics",
			Status:        models.CoursePublished,
			EnrolledCount: 124,
			Price:         15.00,
			Description:   "A deep dive into multivariable calculus and linear algebra.",
		},
		{
			ID:            "c2",
			Name:          "Introduction to Artificial Intelligence",
			Instructor:    "Prof. James Wilson",
			Image:         "https://images.unsplash.com/photo-1677442136019-21780ecad995?auto=format&fit=crop&q=80&w=400",
			Progress:      0,
			NextSession:   "Wednesday, 02:00 PM",
			Category:      "Computer Science",
			Status:        models.CoursePublished,
			EnrolledCount: 89,
			Price:         0,
			Description:   "Understanding neural networks and machine learning foundations.",
		},
	}
}

func seedRegistryUsers() []models.User {
	return []models.User{
		{
			ID: "1", Name: "Rashmika Perera", StudentID: "LUM/2024/00001",
			Role: models.RoleAdmin, Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=admin",
			Email: "rashmika@lumina.edu", Status: models.StatusActive, JoinedDate: "Jan 12, 2024",
		},
		{
			ID: "2", Name: "Dr. Sarah Mitchell", StudentID: "TEA/2024/10201",
			Role: models.RoleTeacher, Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=sarah",
			Email: "sarah.m@lumina.edu", Status: models.StatusActive, JoinedDate: "Feb 05, 2024",
		},
		{
			ID: "3", Name: "Alice Thompson", StudentID: "LUM/2024/01221",
			Role: models.RoleStudent, Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=alice",
			Email: "alice.t@gmail.com", Status: models.StatusActive, JoinedDate: "Mar 01, 2024",
		},
		{
			ID: "4", Name: "Bob Roberts", StudentID: "LUM/2024/05432",
			Role: models.RoleStudent, Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=bob",
			Email: "bob.r@outlook.com", Status: models.StatusSuspended, JoinedDate: "Mar 15, 2024",
		},
	}
}

func seedTeacherCourses(instructor string) []models.Course {
	return []models.Course{
		{
			ID:          "c1",
			Name:        "Advanced Mathematics for Engineers",
			Instructor:  instructor,
			Image:       "https://images.unsplash.com/photo-1509228468518-180dd48a5d5f?auto=format&fit=crop&q=80&w=400",
			Progress:    100, // syllabus coverage from the teacher's point of view
			NextSession: "Today, 04:00 PM",
			Category:    "Physical Science",
		},
		{
			ID:          "c2",
			Name:        "Introduction to Artificial Intelligence",
			Instructor:  instructor,
			Image:       "https://images.unsplash.com/photo-1677442136019-21780ecad995?auto=format&fit=crop&q=80&w=400",
			Progress:    45,
			NextSession: "Wednesday, 10:00 AM",
			Category:    "Technology",
		},
	}
}

func seedClassStudents() []models.ClassStudent {
	return []models.ClassStudent{
		{ID: "LUM/2024/01221", Name: "Alice Thompson", Grade: "Undergraduate", Progress: 88, Status: "Online"},
		{ID: "LUM/2024/05432", Name: "Bob Roberts", Grade: "Undergraduate", Progress: 42, Status: "Offline"},
		{ID: "LUM/2024/09812", Name: "Charlie Dean", Grade: "Grade 12", Progress: 95, Status: "Online"},
		{ID: "LUM/2024/03341", Name: "Diana Prince", Grade: "Undergraduate", Progress: 78, Status: "Online"},
		{ID: "LUM/2024/07765", Name: "Edward Norton", Grade: "Grade 12", Progress: 12, Status: "Offline"},
	}
}

func seedTeacherTasks() []models.TeacherTask {
	return []models.TeacherTask{
		{ID: 1, Title: "Grade Mid-term: AI Foundations", Students: 24, Due: "Today"},
		{ID: 2, Title: "Review Lab Reports: Physics II", Students: 18, Due: "Tomorrow"},
		{ID: 3, Title: "Update Syllabus: Mathematics", Due: "Friday"},
	}
}

func seedExams() []models.Exam {
	return []models.Exam{
		{ID: "1", Title: "Mid-term Assessment", Subject: "Mathematics", DueDate: "2024-04-15", Status: "pending"},
		{ID: "2", Title: "Unit 4 Quiz", Subject: "Artificial Intelligence", DueDate: "2024-03-28", Status: "missed"},
		{ID: "3", Title: "Practical Lab Exam", Subject: "Physics II", DueDate: "2024-03-10", Status: "completed"},
	}
}

// TimetableDay groups the weekly schedule while keeping weekday order.
type TimetableDay struct {
	Day   string                  `json:"day"`
	Slots []models.TimetableEntry `json:"slots"`
}

func seedTimetable() []TimetableDay {
	return []TimetableDay{
		{Day: "Monday", Slots: []models.TimetableEntry{
			{Time: "08:00 AM - 10:00 AM", Subject: "Advanced Math", Room: "Virtual Hall A", Tutor: "Dr. Mitchell"},
			{Time: "02:00 PM - 04:00 PM", Subject: "Physics II", Room: "Lab 04", Tutor: "Prof. Grant"},
		}},
		{Day: "Tuesday", Slots: []models.TimetableEntry{
			{Time: "10:00 AM - 12:00 PM", Subject: "AI Foundations", Room: "Virtual Hall B", Tutor: "Prof. Wilson"},
		}},
		{Day: "Wednesday", Slots: []models.TimetableEntry{
			{Time: "09:00 AM - 11:00 AM", Subject: "Algorithm Design", Room: "Hall 12", Tutor: "Dr. Lee"},
		}},
		{Day: "Thursday", Slots: []models.TimetableEntry{
			{Time: "11:00 AM - 01:00 PM", Subject: "Statistics", Room: "Virtual Hall A", Tutor: "Dr. Mitchell"},
		}},
		{Day: "Friday", Slots: []models.TimetableEntry{
			{Time: "01:00 PM - 03:00 PM", Subject: "Ethics in Tech", Room: "Seminar Room", Tutor: "Prof. White"},
		}},
	}
}
