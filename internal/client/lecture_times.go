package client

import (
	"context"
	"fmt"

	"github.com/oguzk/unienroll/internal/app/models"
	"github.com/oguzk/unienroll/internal/app/models/dto"
	"github.com/oguzk/unienroll/internal/app/models/dto/enums"
)

// GetLectureTimes retrieves every lecture slot on the platform.
func (c *Client) GetLectureTimes(ctx context.Context) ([]models.LectureTimeDetail, error) {
	var slots []models.LectureTimeDetail
	if err := c.get(ctx, "/lecture-times", &slots); err != nil {
		return nil, fmt.Errorf("error retrieving lecture times: %w", err)
	}
	return slots, nil
}

// GetCourseLectureTimes retrieves the lecture slots of one course.
func (c *Client) GetCourseLectureTimes(ctx context.Context, courseID int64) ([]models.LectureTime, error) {
	var slots []models.LectureTime
	if err := c.get(ctx, fmt.Sprintf("/lecture-times/course/%d", courseID), &slots); err != nil {
		return nil, fmt.Errorf("error retrieving course lecture times: %w", err)
	}
	return slots, nil
}

// GetDayLectureTimes retrieves every lecture slot on one day of the
// week.
func (c *Client) GetDayLectureTimes(ctx context.Context, day enums.Day) ([]models.LectureTimeDetail, error) {
	var slots []models.LectureTimeDetail
	if err := c.get(ctx, "/lecture-times/day/"+string(day), &slots); err != nil {
		return nil, fmt.Errorf("error retrieving day lecture times: %w", err)
	}
	return slots, nil
}

// GetLectureTime retrieves a single lecture slot by id.
func (c *Client) GetLectureTime(ctx context.Context, id int64) (*models.LectureTimeDetail, error) {
	var slot models.LectureTimeDetail
	if err := c.get(ctx, fmt.Sprintf("/lecture-times/%d", id), &slot); err != nil {
		return nil, fmt.Errorf("error retrieving lecture time %d: %w", id, err)
	}
	return &slot, nil
}

// CreateLectureTime adds a weekly lecture slot to a course.
func (c *Client) CreateLectureTime(ctx context.Context, req dto.LectureTimeRequest) (*models.LectureTime, error) {
	var slot models.LectureTime
	if err := c.post(ctx, "/lecture-times", req, &slot); err != nil {
		return nil, fmt.Errorf("error creating lecture time: %w", err)
	}
	return &slot, nil
}

// DeleteLectureTime removes a lecture slot by id.
func (c *Client) DeleteLectureTime(ctx context.Context, id int64) error {
	if err := c.delete(ctx, fmt.Sprintf("/lecture-times/%d", id)); err != nil {
		return fmt.Errorf("error deleting lecture time %d: %w", id, err)
	}
	return nil
}
