package models

// Course is a course as the courses API returns it. The registration
// window field names carry the platform's historical spelling; they
// must not be corrected on the wire.
type Course struct {
	ID                int64         `json:"id"`
	Name              string        `json:"name"`
	StartDate         Date          `json:"startDate"`
	EndDate           Date          `json:"endDate"`
	RegistrationStart Date          `json:"courseStartRegistirationDate"`
	RegistrationEnd   Date          `json:"courseEndRegistirationDate"`
	LecturerID        int64         `json:"lecturerID"`
	LecturerName      string        `json:"lecturerName"`
	PrerequisiteNames []string      `json:"prerequisiteCoursesNames"`
	LectureTimes      []LectureTime `json:"lecturesTime"`
}
