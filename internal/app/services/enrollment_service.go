package services

import (
	"context"

	"github.com/oguzk/unienroll/internal/app/models"
	"github.com/oguzk/unienroll/internal/app/models/dto"
	"github.com/oguzk/unienroll/internal/app/store"
	"github.com/oguzk/unienroll/internal/client"
	"github.com/oguzk/unienroll/internal/session"
)

// EnrollmentService coordinates enrollment fetches and mutations.
type EnrollmentService struct {
	api         *client.Client
	enrollments *store.EnrollmentStore
	session     *session.Session
}

// NewEnrollmentService creates a new enrollment service instance.
func NewEnrollmentService(api *client.Client, enrollments *store.EnrollmentStore, sess *session.Session) *EnrollmentService {
	return &EnrollmentService{
		api:         api,
		enrollments: enrollments,
		session:     sess,
	}
}

// FetchStudentEnrollments refreshes the student-scoped collection.
func (s *EnrollmentService) FetchStudentEnrollments(ctx context.Context, studentID int64) ([]models.StudentEnrollment, error) {
	coll := s.enrollments.StudentEnrollments()
	coll.SetLoading()

	enrollments, err := s.api.GetStudentEnrollments(ctx, studentID)
	if err != nil {
		coll.SetFailed(err.Error())
		return nil, err
	}

	coll.SetSucceeded(enrollments)
	return enrollments, nil
}

// FetchCourseEnrollments refreshes the course-scoped collection.
func (s *EnrollmentService) FetchCourseEnrollments(ctx context.Context, courseID int64) ([]models.Enrollment, error) {
	coll := s.enrollments.CourseEnrollments()
	coll.SetLoading()

	enrollments, err := s.api.GetCourseEnrollments(ctx, courseID)
	if err != nil {
		coll.SetFailed(err.Error())
		return nil, err
	}

	coll.SetSucceeded(enrollments)
	return enrollments, nil
}

// FetchEnrollment loads one enrollment into the current slot.
func (s *EnrollmentService) FetchEnrollment(ctx context.Context, id int64) (*models.Enrollment, error) {
	current := s.enrollments.Current()
	current.SetLoading()

	enrollment, err := s.api.GetEnrollment(ctx, id)
	if err != nil {
		current.SetFailed(err.Error())
		return nil, err
	}

	current.Set(enrollment)
	return enrollment, nil
}

// FetchEnrollmentCount returns how many students a course has. The
// count is fetched per course and never merged into the enrollment
// collections; the full list is not always loaded.
func (s *EnrollmentService) FetchEnrollmentCount(ctx context.Context, courseID int64) (int64, error) {
	return s.api.GetEnrollmentCount(ctx, courseID)
}

// Enroll creates an enrollment and appends the server's record to the
// course-scoped cache. afterDue selects the administrative endpoint
// that bypasses the registration window.
func (s *EnrollmentService) Enroll(ctx context.Context, req dto.EnrollmentRequest, afterDue bool) (*models.Enrollment, error) {
	op := OpCreateEnrollment
	if afterDue {
		op = OpEnrollAfterDue
	}
	if err := authorize(s.session, op); err != nil {
		return nil, err
	}
	if err := checkRequest(req); err != nil {
		return nil, err
	}

	var (
		enrollment *models.Enrollment
		err        error
	)
	if afterDue {
		enrollment, err = s.api.CreateEnrollmentAfterDue(ctx, req)
	} else {
		enrollment, err = s.api.CreateEnrollment(ctx, req)
	}
	if err != nil {
		return nil, err
	}

	s.enrollments.ApplyCreate(*enrollment)
	return enrollment, nil
}

// ChangeGrade assigns a grade to an enrollment. The endpoint answers
// with an empty body, so on success the request's grade is applied to
// every cached copy.
func (s *EnrollmentService) ChangeGrade(ctx context.Context, req dto.GradeChangeReq) error {
	if err := authorize(s.session, OpChangeGrade); err != nil {
		return err
	}
	if err := checkRequest(req); err != nil {
		return err
	}

	if err := s.api.ChangeEnrollmentGrade(ctx, req); err != nil {
		return err
	}

	s.enrollments.ApplyGrade(req.EnrollID, req.Grade)
	return nil
}

// ChangeStatus moves an enrollment between lifecycle states, applying
// the request's status to every cached copy on success.
func (s *EnrollmentService) ChangeStatus(ctx context.Context, req dto.StatusChangeReq) error {
	if err := authorize(s.session, OpChangeStatus); err != nil {
		return err
	}
	if err := checkRequest(req); err != nil {
		return err
	}

	if err := s.api.ChangeEnrollmentStatus(ctx, req); err != nil {
		return err
	}

	s.enrollments.ApplyStatus(req.EnrollID, req.Status)
	return nil
}

// Edit replaces semester, status and grade in one request and swaps
// the server's record into every cached copy.
func (s *EnrollmentService) Edit(ctx context.Context, id int64, req dto.EnrollmentEditRequest) (*models.Enrollment, error) {
	if err := authorize(s.session, OpEditEnrollment); err != nil {
		return nil, err
	}
	if err := checkRequest(req); err != nil {
		return nil, err
	}

	enrollment, err := s.api.EditEnrollment(ctx, id, req)
	if err != nil {
		return nil, err
	}

	s.enrollments.ApplyEdit(*enrollment)
	return enrollment, nil
}

// Delete removes an enrollment and prunes the id from both the
// course-scoped and student-scoped caches.
func (s *EnrollmentService) Delete(ctx context.Context, id int64) error {
	if err := authorize(s.session, OpDeleteEnrollment); err != nil {
		return err
	}

	if err := s.api.DeleteEnrollment(ctx, id); err != nil {
		return err
	}

	s.enrollments.ApplyDelete(id)
	return nil
}
