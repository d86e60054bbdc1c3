package client

import (
	"context"
	"fmt"

	"github.com/oguzk/unienroll/internal/app/models"
	"github.com/oguzk/unienroll/internal/app/models/dto"
)

// GetCourses retrieves the full course catalog.
func (c *Client) GetCourses(ctx context.Context) ([]models.Course, error) {
	var courses []models.Course
	if err := c.get(ctx, "/courses", &courses); err != nil {
		return nil, fmt.Errorf("error retrieving courses: %w", err)
	}
	return courses, nil
}

// GetCourse retrieves a single course by id.
func (c *Client) GetCourse(ctx context.Context, id int64) (*models.Course, error) {
	var course models.Course
	if err := c.get(ctx, fmt.Sprintf("/courses/%d", id), &course); err != nil {
		return nil, fmt.Errorf("error retrieving course %d: %w", id, err)
	}
	return &course, nil
}

// GetCoursesByLecturer retrieves the courses taught by one lecturer.
func (c *Client) GetCoursesByLecturer(ctx context.Context, lecturerID int64) ([]models.Course, error) {
	var courses []models.Course
	if err := c.get(ctx, fmt.Sprintf("/courses/by-lecturer/%d", lecturerID), &courses); err != nil {
		return nil, fmt.Errorf("error retrieving lecturer courses: %w", err)
	}
	return courses, nil
}

// GetCoursePrerequisites retrieves the prerequisites of a course.
func (c *Client) GetCoursePrerequisites(ctx context.Context, courseID int64) ([]models.Course, error) {
	var courses []models.Course
	if err := c.get(ctx, fmt.Sprintf("/courses/%d/prerequisites", courseID), &courses); err != nil {
		return nil, fmt.Errorf("error retrieving course prerequisites: %w", err)
	}
	return courses, nil
}

// CreateCourse creates a course without prerequisites.
func (c *Client) CreateCourse(ctx context.Context, req dto.CourseCreationReq) (*models.Course, error) {
	var course models.Course
	if err := c.post(ctx, "/courses", req, &course); err != nil {
		return nil, fmt.Errorf("error creating course: %w", err)
	}
	return &course, nil
}

// CreateCourseWithPrerequisites creates a course and links its
// prerequisites in one request.
func (c *Client) CreateCourseWithPrerequisites(ctx context.Context, req dto.CourseCreationReq) (*models.Course, error) {
	var course models.Course
	if err := c.post(ctx, "/courses/create/withPrerequisites", req, &course); err != nil {
		return nil, fmt.Errorf("error creating course: %w", err)
	}
	return &course, nil
}

// AddPrerequisite links an existing course as a prerequisite. The
// endpoint takes the bare prerequisite id as its JSON body.
func (c *Client) AddPrerequisite(ctx context.Context, courseID, prerequisiteID int64) (*models.Course, error) {
	var course models.Course
	if err := c.post(ctx, fmt.Sprintf("/courses/%d/prerequisites", courseID), prerequisiteID, &course); err != nil {
		return nil, fmt.Errorf("error adding prerequisite: %w", err)
	}
	return &course, nil
}

// UpdateCourse edits a course in place.
func (c *Client) UpdateCourse(ctx context.Context, id int64, req dto.CourseUpdateReq) (*models.Course, error) {
	var course models.Course
	if err := c.patch(ctx, fmt.Sprintf("/courses/%d", id), req, &course); err != nil {
		return nil, fmt.Errorf("error updating course %d: %w", id, err)
	}
	return &course, nil
}

// DeleteCourse removes a course by id.
func (c *Client) DeleteCourse(ctx context.Context, id int64) error {
	if err := c.delete(ctx, fmt.Sprintf("/courses/%d", id)); err != nil {
		return fmt.Errorf("error deleting course %d: %w", id, err)
	}
	return nil
}
