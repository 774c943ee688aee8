package portal

import (
	"errors"

	"lumina/models"
)

// ErrCourseNotFound is returned when a course id matches nothing on the
// active screen.
var ErrCourseNotFound = errors.New("course not found")

// DashboardState backs the student home screen: the enrolled course cards,
// notices and the single checkout context.
type DashboardState struct {
	Courses  []models.Course `json:"courses"`
	Notices  []models.Notice `json:"notices"`
	Checkout string          `json:"checkout,omitempty"` // course id currently in checkout
}

func NewDashboardState() *DashboardState {
	return &DashboardState{
		Courses: seedDashboardCourses(),
		Notices: seedNotices(),
	}
}

// snapshot returns a detached copy safe to serialize outside the state lock.
func (d *DashboardState) snapshot() *DashboardState {
	out := &DashboardState{
		Courses:  copyCourses(d.Courses),
		Notices:  make([]models.Notice, len(d.Notices)),
		Checkout: d.Checkout,
	}
	copy(out.Notices, d.Notices)
	return out
}

// OpenCheckout selects the course for the enrollment flow. Only one checkout
// context exists at a time, opening another replaces it.
func (d *DashboardState) OpenCheckout(courseID string) (*models.Course, error) {
	for i := range d.Courses {
		if d.Courses[i].ID == courseID {
			d.Checkout = courseID
			return &d.Courses[i], nil
		}
	}
	return nil, ErrCourseNotFound
}

// ConfirmPurchase flips the purchased flag and closes the checkout context.
// The purchased state is terminal: confirming again is a no-op that leaves
// the flag true. No payment details are transmitted anywhere.
func (d *DashboardState) ConfirmPurchase(courseID string) (*models.Course, error) {
	for i := range d.Courses {
		if d.Courses[i].ID == courseID {
			d.Courses[i].IsPurchased = true
			d.Checkout = ""
			return &d.Courses[i], nil
		}
	}
	return nil, ErrCourseNotFound
}
