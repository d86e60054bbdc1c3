package services

import (
	"context"

	"github.com/oguzk/unienroll/internal/app/models"
	"github.com/oguzk/unienroll/internal/app/models/dto"
	"github.com/oguzk/unienroll/internal/app/store"
	"github.com/oguzk/unienroll/internal/client"
	"github.com/oguzk/unienroll/internal/session"
)

// CourseService coordinates course fetches and mutations.
type CourseService struct {
	api     *client.Client
	courses *store.CourseStore
	session *session.Session
}

// NewCourseService creates a new course service instance.
func NewCourseService(api *client.Client, courses *store.CourseStore, sess *session.Session) *CourseService {
	return &CourseService{
		api:     api,
		courses: courses,
		session: sess,
	}
}

// FetchCourses refreshes the course catalog.
func (s *CourseService) FetchCourses(ctx context.Context) ([]models.Course, error) {
	coll := s.courses.Courses()
	coll.SetLoading()

	courses, err := s.api.GetCourses(ctx)
	if err != nil {
		coll.SetFailed(err.Error())
		return nil, err
	}

	coll.SetSucceeded(courses)
	return courses, nil
}

// FetchCourse loads one course into the current slot.
func (s *CourseService) FetchCourse(ctx context.Context, id int64) (*models.Course, error) {
	current := s.courses.Current()
	current.SetLoading()

	course, err := s.api.GetCourse(ctx, id)
	if err != nil {
		current.SetFailed(err.Error())
		return nil, err
	}

	current.Set(course)
	return course, nil
}

// FetchLecturerCourses refreshes the lecturer-scoped collection.
func (s *CourseService) FetchLecturerCourses(ctx context.Context, lecturerID int64) ([]models.Course, error) {
	coll := s.courses.LecturerCourses()
	coll.SetLoading()

	courses, err := s.api.GetCoursesByLecturer(ctx, lecturerID)
	if err != nil {
		coll.SetFailed(err.Error())
		return nil, err
	}

	coll.SetSucceeded(courses)
	return courses, nil
}

// FetchPrerequisites refreshes the prerequisites collection for one
// course.
func (s *CourseService) FetchPrerequisites(ctx context.Context, courseID int64) ([]models.Course, error) {
	coll := s.courses.Prerequisites()
	coll.SetLoading()

	courses, err := s.api.GetCoursePrerequisites(ctx, courseID)
	if err != nil {
		coll.SetFailed(err.Error())
		return nil, err
	}

	coll.SetSucceeded(courses)
	return courses, nil
}

// CreateCourse creates a course and appends the server's record to the
// catalog cache. withPrerequisites selects the endpoint that links
// prerequisite courses in the same request.
func (s *CourseService) CreateCourse(ctx context.Context, req dto.CourseCreationReq, withPrerequisites bool) (*models.Course, error) {
	if err := authorize(s.session, OpCreateCourse); err != nil {
		return nil, err
	}
	if err := checkRequest(req); err != nil {
		return nil, err
	}

	var (
		course *models.Course
		err    error
	)
	if withPrerequisites {
		course, err = s.api.CreateCourseWithPrerequisites(ctx, req)
	} else {
		course, err = s.api.CreateCourse(ctx, req)
	}
	if err != nil {
		return nil, err
	}

	s.courses.Courses().Append(*course)
	return course, nil
}

// AddPrerequisite links an existing course as a prerequisite and
// replaces the cached copies with the updated course.
func (s *CourseService) AddPrerequisite(ctx context.Context, courseID, prerequisiteID int64) (*models.Course, error) {
	if err := authorize(s.session, OpUpdateCourse); err != nil {
		return nil, err
	}

	course, err := s.api.AddPrerequisite(ctx, courseID, prerequisiteID)
	if err != nil {
		return nil, err
	}

	s.courses.ApplyUpdate(*course)
	return course, nil
}

// UpdateCourse edits a course and replaces the cached copy in every
// collection that holds it.
func (s *CourseService) UpdateCourse(ctx context.Context, id int64, req dto.CourseUpdateReq) (*models.Course, error) {
	if err := authorize(s.session, OpUpdateCourse); err != nil {
		return nil, err
	}
	if err := checkRequest(req); err != nil {
		return nil, err
	}

	course, err := s.api.UpdateCourse(ctx, id, req)
	if err != nil {
		return nil, err
	}

	s.courses.ApplyUpdate(*course)
	return course, nil
}

// DeleteCourse removes a course and prunes the id from every
// collection that held it.
func (s *CourseService) DeleteCourse(ctx context.Context, id int64) error {
	if err := authorize(s.session, OpDeleteCourse); err != nil {
		return err
	}

	if err := s.api.DeleteCourse(ctx, id); err != nil {
		return err
	}

	s.courses.ApplyDelete(id)
	return nil
}
