// Package views derives read-only values from cached entities. Every
// function is pure: it never touches the network or mutates a cache.
package views

import (
	"math"

	"github.com/oguzk/unienroll/internal/app/models"
	"github.com/oguzk/unienroll/internal/app/models/dto/enums"
)

// GPA returns the mean grade point over a student's graded completed
// courses, rounded to two decimals. Rows without a grade do not count,
// and neither does an F: failed courses lower the success rate but
// carry no weight here. Returns 0 when no row qualifies.
func GPA(enrollments []models.StudentEnrollment) float64 {
	var sum float64
	var count int
	for _, e := range enrollments {
		if e.Status != enums.StatusCompleted || e.Grade == nil {
			continue
		}
		if *e.Grade == enums.GradeF {
			continue
		}
		sum += e.Grade.Points()
		count++
	}
	if count == 0 {
		return 0
	}
	return math.Round(sum/float64(count)*100) / 100
}

// SuccessRate returns the share of completed enrollments as a whole
// percentage, rounded to the nearest integer. Returns 0 for an empty
// list.
func SuccessRate(enrollments []models.StudentEnrollment) int {
	if len(enrollments) == 0 {
		return 0
	}
	completed := CompletedCount(enrollments)
	return int(math.Round(float64(completed) / float64(len(enrollments)) * 100))
}

// CompletedCount returns how many enrollments reached Completed.
func CompletedCount(enrollments []models.StudentEnrollment) int {
	var count int
	for _, e := range enrollments {
		if e.Status == enums.StatusCompleted {
			count++
		}
	}
	return count
}

// FilterByStatus returns the enrollments with the given status in
// their original order.
func FilterByStatus(enrollments []models.StudentEnrollment, status enums.EnrollmentStatus) []models.StudentEnrollment {
	var filtered []models.StudentEnrollment
	for _, e := range enrollments {
		if e.Status == status {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// RegistrationOpen reports whether a course accepts enrollment on the
// given date. Both window boundaries are inclusive: registration opens
// on the start date and closes at the end of the end date.
func RegistrationOpen(course models.Course, today models.Date) bool {
	if course.RegistrationStart.IsZero() || course.RegistrationEnd.IsZero() {
		return false
	}
	if today.Before(course.RegistrationStart.Time) {
		return false
	}
	if today.After(course.RegistrationEnd.Time) {
		return false
	}
	return true
}
