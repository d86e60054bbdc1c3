package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oguzk/unienroll/internal/app/models"
	"github.com/oguzk/unienroll/internal/app/models/dto/enums"
)

func seedEnrollmentStore() *EnrollmentStore {
	s := NewEnrollmentStore()
	s.CourseEnrollments().SetSucceeded([]models.Enrollment{
		{ID: 10, StudentID: 1, CourseID: 100, Status: enums.StatusInProgress},
		{ID: 11, StudentID: 2, CourseID: 100, Status: enums.StatusInProgress},
	})
	s.StudentEnrollments().SetSucceeded([]models.StudentEnrollment{
		{ID: 10, CourseID: 100, Status: enums.StatusInProgress},
		{ID: 12, CourseID: 200, Status: enums.StatusCompleted},
	})
	return s
}

func TestEnrollmentStore_ApplyGradeTouchesEveryCopy(t *testing.T) {
	s := seedEnrollmentStore()
	current := models.Enrollment{ID: 10, CourseID: 100, Status: enums.StatusCompleted}
	s.Current().Set(&current)

	s.ApplyGrade(10, enums.GradeA)

	byCourse, _, _ := s.CourseEnrollments().Get()
	require.NotNil(t, byCourse[0].Grade)
	assert.Equal(t, enums.GradeA, *byCourse[0].Grade)
	assert.Nil(t, byCourse[1].Grade)

	byStudent, _, _ := s.StudentEnrollments().Get()
	require.NotNil(t, byStudent[0].Grade)
	assert.Equal(t, enums.GradeA, *byStudent[0].Grade)
	assert.Nil(t, byStudent[1].Grade)

	open, _, _ := s.Current().Get()
	require.NotNil(t, open)
	require.NotNil(t, open.Grade)
	assert.Equal(t, enums.GradeA, *open.Grade)
}

func TestEnrollmentStore_ApplyStatus(t *testing.T) {
	s := seedEnrollmentStore()

	s.ApplyStatus(10, enums.StatusDropped)

	byCourse, _, _ := s.CourseEnrollments().Get()
	assert.Equal(t, enums.StatusDropped, byCourse[0].Status)
	assert.Equal(t, enums.StatusInProgress, byCourse[1].Status)

	byStudent, _, _ := s.StudentEnrollments().Get()
	assert.Equal(t, enums.StatusDropped, byStudent[0].Status)
	assert.Equal(t, enums.StatusCompleted, byStudent[1].Status)
}

func TestEnrollmentStore_ApplyDeletePrunesEveryCollection(t *testing.T) {
	s := seedEnrollmentStore()
	current := models.Enrollment{ID: 10}
	s.Current().Set(&current)

	s.ApplyDelete(10)

	byCourse, _, _ := s.CourseEnrollments().Get()
	assert.Equal(t, []models.Enrollment{{ID: 11, StudentID: 2, CourseID: 100, Status: enums.StatusInProgress}}, byCourse)

	byStudent, _, _ := s.StudentEnrollments().Get()
	assert.Equal(t, []models.StudentEnrollment{{ID: 12, CourseID: 200, Status: enums.StatusCompleted}}, byStudent)

	open, _, _ := s.Current().Get()
	assert.Nil(t, open)
}

func TestEnrollmentStore_ApplyDeleteLeavesOtherCurrentAlone(t *testing.T) {
	s := seedEnrollmentStore()
	current := models.Enrollment{ID: 11}
	s.Current().Set(&current)

	s.ApplyDelete(10)

	open, _, _ := s.Current().Get()
	require.NotNil(t, open)
	assert.Equal(t, int64(11), open.ID)
}

func TestEnrollmentStore_ApplyEditProjectsStudentShape(t *testing.T) {
	s := seedEnrollmentStore()
	grade := enums.GradeBPlus

	s.ApplyEdit(models.Enrollment{
		ID:         10,
		StudentID:  1,
		CourseID:   100,
		CourseName: "Algorithms",
		Semester:   3,
		Status:     enums.StatusCompleted,
		Grade:      &grade,
	})

	byStudent, _, _ := s.StudentEnrollments().Get()
	assert.Equal(t, "Algorithms", byStudent[0].CourseName)
	assert.Equal(t, 3, byStudent[0].Semester)
	assert.Equal(t, enums.StatusCompleted, byStudent[0].Status)
	require.NotNil(t, byStudent[0].Grade)
	assert.Equal(t, enums.GradeBPlus, *byStudent[0].Grade)
}

func TestEnrollmentStore_Reset(t *testing.T) {
	s := seedEnrollmentStore()
	current := models.Enrollment{ID: 10}
	s.Current().Set(&current)

	s.Reset()

	byCourse, status, _ := s.CourseEnrollments().Get()
	assert.Empty(t, byCourse)
	assert.Equal(t, StatusIdle, status)
	byStudent, _, _ := s.StudentEnrollments().Get()
	assert.Empty(t, byStudent)
	open, _, _ := s.Current().Get()
	assert.Nil(t, open)
}

func TestUserStore_SuperAdminSharesAdminCollection(t *testing.T) {
	s := NewUserStore()

	s.Collection(enums.RoleAdmin).SetSucceeded([]models.User{{ID: 1, Name: "Root"}})

	admins, _, _ := s.Collection(enums.RoleSuperAdmin).Get()
	require.Len(t, admins, 1)
	assert.Equal(t, "Root", admins[0].Name)
}

func TestUserStore_ApplyUpdateRefreshesSelected(t *testing.T) {
	s := NewUserStore()
	s.Collection(enums.RoleStudent).SetSucceeded([]models.User{
		{ID: 1, Name: "Ada", Role: enums.RoleStudent},
	})
	selected := models.User{ID: 1, Name: "Ada", Role: enums.RoleStudent}
	s.Selected().Set(&selected)

	s.ApplyUpdate(models.User{ID: 1, Name: "Ada L.", Role: enums.RoleStudent})

	students, _, _ := s.Collection(enums.RoleStudent).Get()
	assert.Equal(t, "Ada L.", students[0].Name)
	fresh, _, _ := s.Selected().Get()
	require.NotNil(t, fresh)
	assert.Equal(t, "Ada L.", fresh.Name)
}

func TestUserStore_ApplyDeletePrunesEveryRole(t *testing.T) {
	s := NewUserStore()
	s.Collection(enums.RoleStudent).SetSucceeded([]models.User{{ID: 1}, {ID: 2}})
	s.Collection(enums.RoleLecturer).SetSucceeded([]models.User{{ID: 1}})
	selected := models.User{ID: 1}
	s.Selected().Set(&selected)

	s.ApplyDelete(1)

	students, _, _ := s.Collection(enums.RoleStudent).Get()
	assert.Equal(t, []models.User{{ID: 2}}, students)
	lecturers, _, _ := s.Collection(enums.RoleLecturer).Get()
	assert.Empty(t, lecturers)
	fresh, _, _ := s.Selected().Get()
	assert.Nil(t, fresh)
}

func TestLectureTimeStore_ApplyDelete(t *testing.T) {
	s := NewLectureTimeStore()
	s.All().SetSucceeded([]models.LectureTimeDetail{
		{LectureTime: models.LectureTime{ID: 1, Day: enums.DayMonday}},
		{LectureTime: models.LectureTime{ID: 2, Day: enums.DayFriday}},
	})
	s.ByCourse().SetSucceeded([]models.LectureTime{{ID: 1, Day: enums.DayMonday}})
	current := models.LectureTimeDetail{LectureTime: models.LectureTime{ID: 1}}
	s.Current().Set(&current)

	s.ApplyDelete(1)

	all, _, _ := s.All().Get()
	require.Len(t, all, 1)
	assert.Equal(t, int64(2), all[0].ID)
	byCourse, _, _ := s.ByCourse().Get()
	assert.Empty(t, byCourse)
	open, _, _ := s.Current().Get()
	assert.Nil(t, open)
}
