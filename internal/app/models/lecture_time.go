package models

import (
	"github.com/oguzk/unienroll/internal/app/models/dto/enums"
)

// LectureTime is a weekly lecture slot owned by a course. Time is the
// start time in "HH:MM" or "HH:MM:SS" form, as the API serializes it.
type LectureTime struct {
	ID   int64     `json:"id"`
	Day  enums.Day `json:"day"`
	Time string    `json:"time"`
}

// LectureTimeDetail is a lecture slot with its owning course attached.
// The flat listing endpoints (all slots, slots by day) return this
// shape; the course-scoped endpoint returns plain LectureTime.
type LectureTimeDetail struct {
	LectureTime
	CourseID   int64  `json:"courseId,omitempty"`
	CourseName string `json:"courseName,omitempty"`
}
