package client

import (
	"context"
	"fmt"

	"github.com/oguzk/unienroll/internal/app/models"
	"github.com/oguzk/unienroll/internal/app/models/dto"
)

// GetStudentEnrollments retrieves all enrollments of one student.
func (c *Client) GetStudentEnrollments(ctx context.Context, studentID int64) ([]models.StudentEnrollment, error) {
	var enrollments []models.StudentEnrollment
	if err := c.get(ctx, fmt.Sprintf("/enrollments/student/%d", studentID), &enrollments); err != nil {
		return nil, fmt.Errorf("error retrieving student enrollments: %w", err)
	}
	return enrollments, nil
}

// GetCourseEnrollments retrieves all enrollments in one course.
func (c *Client) GetCourseEnrollments(ctx context.Context, courseID int64) ([]models.Enrollment, error) {
	var enrollments []models.Enrollment
	if err := c.get(ctx, fmt.Sprintf("/enrollments/course/%d", courseID), &enrollments); err != nil {
		return nil, fmt.Errorf("error retrieving course enrollments: %w", err)
	}
	return enrollments, nil
}

// GetEnrollment retrieves a single enrollment by id.
func (c *Client) GetEnrollment(ctx context.Context, id int64) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	if err := c.get(ctx, fmt.Sprintf("/enrollments/%d", id), &enrollment); err != nil {
		return nil, fmt.Errorf("error retrieving enrollment %d: %w", id, err)
	}
	return &enrollment, nil
}

// GetEnrollmentCount retrieves the number of students enrolled in a
// course. The endpoint returns a bare JSON number.
func (c *Client) GetEnrollmentCount(ctx context.Context, courseID int64) (int64, error) {
	var count int64
	if err := c.get(ctx, fmt.Sprintf("/enrollments/%d/count", courseID), &count); err != nil {
		return 0, fmt.Errorf("error retrieving enrollment count: %w", err)
	}
	return count, nil
}

// CreateEnrollment enrolls a student in a course inside the
// registration window.
func (c *Client) CreateEnrollment(ctx context.Context, req dto.EnrollmentRequest) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	if err := c.post(ctx, "/enrollments", req, &enrollment); err != nil {
		return nil, fmt.Errorf("error creating enrollment: %w", err)
	}
	return &enrollment, nil
}

// CreateEnrollmentAfterDue enrolls a student past the registration
// deadline; the server gates this to administrators.
func (c *Client) CreateEnrollmentAfterDue(ctx context.Context, req dto.EnrollmentRequest) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	if err := c.post(ctx, "/enrollments/after-due", req, &enrollment); err != nil {
		return nil, fmt.Errorf("error creating enrollment: %w", err)
	}
	return &enrollment, nil
}

// ChangeEnrollmentStatus moves an enrollment between lifecycle states.
// The endpoint returns an empty body on success.
func (c *Client) ChangeEnrollmentStatus(ctx context.Context, req dto.StatusChangeReq) error {
	if err := c.put(ctx, "/enrollments/status", req, nil); err != nil {
		return fmt.Errorf("error changing enrollment status: %w", err)
	}
	return nil
}

// ChangeEnrollmentGrade assigns a grade to an enrollment. The endpoint
// returns an empty body on success.
func (c *Client) ChangeEnrollmentGrade(ctx context.Context, req dto.GradeChangeReq) error {
	if err := c.put(ctx, "/enrollments/grade", req, nil); err != nil {
		return fmt.Errorf("error changing enrollment grade: %w", err)
	}
	return nil
}

// EditEnrollment replaces semester, status and grade in one request.
func (c *Client) EditEnrollment(ctx context.Context, id int64, req dto.EnrollmentEditRequest) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	if err := c.put(ctx, fmt.Sprintf("/enrollments/%d", id), req, &enrollment); err != nil {
		return nil, fmt.Errorf("error editing enrollment %d: %w", id, err)
	}
	return &enrollment, nil
}

// DeleteEnrollment removes an enrollment by id.
func (c *Client) DeleteEnrollment(ctx context.Context, id int64) error {
	if err := c.delete(ctx, fmt.Sprintf("/enrollments/%d", id)); err != nil {
		return fmt.Errorf("error deleting enrollment %d: %w", id, err)
	}
	return nil
}
