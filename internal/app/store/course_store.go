package store

import (
	"github.com/oguzk/unienroll/internal/app/models"
)

// CourseStore caches the course collections: the full catalog, the
// courses of one lecturer, the prerequisites of one course, and the
// currently open course.
type CourseStore struct {
	courses         *Collection[models.Course]
	lecturerCourses *Collection[models.Course]
	prerequisites   *Collection[models.Course]
	current         *Single[models.Course]
}

// NewCourseStore creates an empty course store.
func NewCourseStore() *CourseStore {
	courseID := func(c models.Course) int64 { return c.ID }
	return &CourseStore{
		courses:         NewCollection(courseID),
		lecturerCourses: NewCollection(courseID),
		prerequisites:   NewCollection(courseID),
		current:         NewSingle[models.Course](),
	}
}

// Courses returns the catalog collection.
func (s *CourseStore) Courses() *Collection[models.Course] { return s.courses }

// LecturerCourses returns the lecturer-scoped collection.
func (s *CourseStore) LecturerCourses() *Collection[models.Course] { return s.lecturerCourses }

// Prerequisites returns the prerequisites collection.
func (s *CourseStore) Prerequisites() *Collection[models.Course] { return s.prerequisites }

// Current returns the single-entity slot for the open course.
func (s *CourseStore) Current() *Single[models.Course] { return s.current }

// ApplyUpdate replaces the course in every collection that may hold a
// copy and makes it the current course, as the edit screen shows the
// result it just saved.
func (s *CourseStore) ApplyUpdate(course models.Course) {
	s.courses.ReplaceByID(course.ID, course)
	s.lecturerCourses.ReplaceByID(course.ID, course)
	s.prerequisites.ReplaceByID(course.ID, course)
	s.current.Set(&course)
}

// ApplyDelete removes the course by id from every collection that may
// hold it and clears the current slot when it shows that course.
func (s *CourseStore) ApplyDelete(id int64) {
	s.courses.RemoveByID(id)
	s.lecturerCourses.RemoveByID(id)
	s.prerequisites.RemoveByID(id)
	if current, _, _ := s.current.Get(); current != nil && current.ID == id {
		s.current.Clear()
	}
}

// Reset returns every slot to its initial empty state.
func (s *CourseStore) Reset() {
	s.courses.Reset()
	s.lecturerCourses.Reset()
	s.prerequisites.Reset()
	s.current.Clear()
}
