package models

import (
	"github.com/oguzk/unienroll/internal/app/models/dto/enums"
)

// Enrollment links a student to a course, as the course-scoped
// enrollment endpoints return it. Grade is nil until the server
// assigns one; it is only meaningful when Status is Completed, which
// the server enforces.
type Enrollment struct {
	ID             int64                  `json:"id"`
	StudentID      int64                  `json:"studentId"`
	StudentName    string                 `json:"studentName"`
	CourseID       int64                  `json:"courseId"`
	CourseName     string                 `json:"courseName"`
	EnrollmentDate Date                   `json:"enrollmentDate"`
	Grade          *enums.Grade           `json:"grade"`
	Semester       int                    `json:"semester"`
	Status         enums.EnrollmentStatus `json:"status"`
}

// StudentEnrollment is the student-scoped projection of an enrollment
// (the student is implied by the request path, so the API omits it).
type StudentEnrollment struct {
	ID             int64                  `json:"id"`
	CourseID       int64                  `json:"courseId"`
	CourseName     string                 `json:"courseName"`
	EnrollmentDate Date                   `json:"enrollmentDate"`
	Grade          *enums.Grade           `json:"grade"`
	Semester       int                    `json:"semester"`
	Status         enums.EnrollmentStatus `json:"status"`
}
