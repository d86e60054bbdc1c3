package dto

import "github.com/oguzk/unienroll/internal/app/models"

// CourseCreationReq represents the body for creating a course. The
// registration window field names follow the platform's wire spelling.
type CourseCreationReq struct {
	Name              string      `json:"name" validate:"required"`
	StartDate         models.Date `json:"startDate" validate:"required"`
	EndDate           models.Date `json:"endDate" validate:"required"`
	RegistrationStart models.Date `json:"courseStartRegistirationDate" validate:"required"`
	RegistrationEnd   models.Date `json:"courseEndRegistirationDate" validate:"required"`
	LecturerID        int64       `json:"lecturerId" validate:"required,min=1"`
	PrerequisiteIDs   []int64     `json:"prerequisiteCoursesIds"`
	IsActive          bool        `json:"isActive"`
}

// CourseUpdateReq represents the body for editing a course. It carries
// the full replacement value for every editable field.
type CourseUpdateReq struct {
	Name              string      `json:"name" validate:"required"`
	StartDate         models.Date `json:"startDate" validate:"required"`
	EndDate           models.Date `json:"endDate" validate:"required"`
	RegistrationStart models.Date `json:"courseStartRegistirationDate" validate:"required"`
	RegistrationEnd   models.Date `json:"courseEndRegistirationDate" validate:"required"`
	LecturerID        int64       `json:"lecturerId" validate:"required,min=1"`
	IsActive          bool        `json:"isActive"`
}
