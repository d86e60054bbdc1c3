package dto

import "github.com/oguzk/unienroll/internal/app/models/dto/enums"

// EnrollmentRequest represents the body for enrolling a student in a
// course.
type EnrollmentRequest struct {
	StudentID int64 `json:"studentId" validate:"required,min=1"`
	CourseID  int64 `json:"courseId" validate:"required,min=1"`
	Semester  int   `json:"semester" validate:"required,min=1"`
}

// GradeChangeReq represents the body for assigning a grade to an
// enrollment.
type GradeChangeReq struct {
	EnrollID int64       `json:"enrollId" validate:"required,min=1"`
	Grade    enums.Grade `json:"grade" validate:"required"`
}

// StatusChangeReq represents the body for moving an enrollment between
// lifecycle states.
type StatusChangeReq struct {
	EnrollID int64                  `json:"enrollId" validate:"required,min=1"`
	Status   enums.EnrollmentStatus `json:"status" validate:"required"`
}

// EnrollmentEditRequest represents the body for the full-edit endpoint,
// replacing semester, status and grade in one request.
type EnrollmentEditRequest struct {
	StudentID int64                  `json:"studentId" validate:"required,min=1"`
	CourseID  int64                  `json:"courseId" validate:"required,min=1"`
	Semester  int                    `json:"semester" validate:"required,min=1"`
	Status    enums.EnrollmentStatus `json:"status" validate:"required"`
	Grade     enums.Grade            `json:"grade"`
}
