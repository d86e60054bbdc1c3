package dto

import "github.com/oguzk/unienroll/internal/app/models/dto/enums"

// LectureTimeRequest represents the body for adding a weekly lecture
// slot to a course.
type LectureTimeRequest struct {
	CourseID int64     `json:"courseId" validate:"required,min=1"`
	Day      enums.Day `json:"day" validate:"required"`
	Time     string    `json:"time" validate:"required"`
}
