package store

import (
	"github.com/oguzk/unienroll/internal/app/models"
	"github.com/oguzk/unienroll/internal/app/models/dto/enums"
)

// EnrollmentStore caches the enrollment collections: one student's
// enrollments, one course's enrollments, and the currently open
// enrollment. Both collections may hold a copy of the same enrollment,
// so every mutation effect walks both.
type EnrollmentStore struct {
	studentEnrollments *Collection[models.StudentEnrollment]
	courseEnrollments  *Collection[models.Enrollment]
	current            *Single[models.Enrollment]
}

// NewEnrollmentStore creates an empty enrollment store.
func NewEnrollmentStore() *EnrollmentStore {
	return &EnrollmentStore{
		studentEnrollments: NewCollection(func(e models.StudentEnrollment) int64 { return e.ID }),
		courseEnrollments:  NewCollection(func(e models.Enrollment) int64 { return e.ID }),
		current:            NewSingle[models.Enrollment](),
	}
}

// StudentEnrollments returns the student-scoped collection.
func (s *EnrollmentStore) StudentEnrollments() *Collection[models.StudentEnrollment] {
	return s.studentEnrollments
}

// CourseEnrollments returns the course-scoped collection.
func (s *EnrollmentStore) CourseEnrollments() *Collection[models.Enrollment] {
	return s.courseEnrollments
}

// Current returns the single-entity slot for the open enrollment.
func (s *EnrollmentStore) Current() *Single[models.Enrollment] { return s.current }

// ApplyCreate appends a freshly created enrollment to the
// course-scoped collection.
func (s *EnrollmentStore) ApplyCreate(enrollment models.Enrollment) {
	s.courseEnrollments.Append(enrollment)
}

// ApplyGrade sets the grade on every cached copy of the enrollment.
// The grade endpoint returns an empty body, so the request value is
// the authoritative echo.
func (s *EnrollmentStore) ApplyGrade(id int64, grade enums.Grade) {
	s.courseEnrollments.UpdateByID(id, func(e *models.Enrollment) {
		g := grade
		e.Grade = &g
	})
	s.studentEnrollments.UpdateByID(id, func(e *models.StudentEnrollment) {
		g := grade
		e.Grade = &g
	})
	if current, _, _ := s.current.Get(); current != nil && current.ID == id {
		g := grade
		current.Grade = &g
		s.current.Set(current)
	}
}

// ApplyStatus sets the lifecycle status on every cached copy of the
// enrollment.
func (s *EnrollmentStore) ApplyStatus(id int64, status enums.EnrollmentStatus) {
	s.courseEnrollments.UpdateByID(id, func(e *models.Enrollment) {
		e.Status = status
	})
	s.studentEnrollments.UpdateByID(id, func(e *models.StudentEnrollment) {
		e.Status = status
	})
	if current, _, _ := s.current.Get(); current != nil && current.ID == id {
		current.Status = status
		s.current.Set(current)
	}
}

// ApplyEdit replaces every cached copy with the edited enrollment the
// server returned.
func (s *EnrollmentStore) ApplyEdit(enrollment models.Enrollment) {
	s.courseEnrollments.ReplaceByID(enrollment.ID, enrollment)
	s.studentEnrollments.ReplaceByID(enrollment.ID, models.StudentEnrollment{
		ID:             enrollment.ID,
		CourseID:       enrollment.CourseID,
		CourseName:     enrollment.CourseName,
		EnrollmentDate: enrollment.EnrollmentDate,
		Grade:          enrollment.Grade,
		Semester:       enrollment.Semester,
		Status:         enrollment.Status,
	})
	if current, _, _ := s.current.Get(); current != nil && current.ID == enrollment.ID {
		s.current.Set(&enrollment)
	}
}

// ApplyDelete removes the enrollment by id from both collections and
// clears the current slot when it shows that enrollment.
func (s *EnrollmentStore) ApplyDelete(id int64) {
	s.courseEnrollments.RemoveByID(id)
	s.studentEnrollments.RemoveByID(id)
	if current, _, _ := s.current.Get(); current != nil && current.ID == id {
		s.current.Clear()
	}
}

// Reset returns every slot to its initial empty state.
func (s *EnrollmentStore) Reset() {
	s.studentEnrollments.Reset()
	s.courseEnrollments.Reset()
	s.current.Clear()
}
