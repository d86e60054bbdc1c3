package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oguzk/unienroll/internal/app/models"
	"github.com/oguzk/unienroll/internal/app/models/dto"
	"github.com/oguzk/unienroll/internal/app/models/dto/enums"
	"github.com/oguzk/unienroll/internal/app/services"
	"github.com/oguzk/unienroll/internal/app/store"
	"github.com/oguzk/unienroll/internal/bootstrap"
	"github.com/oguzk/unienroll/internal/client"
	"github.com/oguzk/unienroll/internal/session"
)

func setup(t *testing.T, handlers func(*gin.Engine)) *commandLine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handlers(router)
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	sess := session.NewSession(session.NewTokenFile(filepath.Join(t.TempDir(), "token")))
	api := client.NewClient(server.URL+"/api", 5*time.Second, sess, zerolog.Nop())

	app := &bootstrap.App{
		Session:      sess,
		Client:       api,
		Users:        store.NewUserStore(),
		Courses:      store.NewCourseStore(),
		Enrollments:  store.NewEnrollmentStore(),
		LectureTimes: store.NewLectureTimeStore(),
	}
	app.Auth = services.NewAuthService(api, sess, app.Users, app.Courses, app.Enrollments, app.LectureTimes)
	app.UserService = services.NewUserService(api, app.Users, sess)
	app.CourseService = services.NewCourseService(api, app.Courses, sess)
	app.Enrollment = services.NewEnrollmentService(api, app.Enrollments, sess)
	app.LectureTime = services.NewLectureTimeService(api, app.LectureTimes, sess)

	return &commandLine{app: app}
}

type cliTest struct {
	name    string
	args    []string // without program name
	wantErr error
}

func Test_commandLine_usage(t *testing.T) {
	cli := setup(t, func(r *gin.Engine) {})

	tests := []cliTest{
		{name: "no subcommand", args: []string{}, wantErr: errHelp},
		{name: "unknown subcommand", args: []string{"lol"}, wantErr: errHelp},
		{name: "login: no email", args: []string{"login"}, wantErr: errHelp},
		{name: "course: no id", args: []string{"course"}, wantErr: errHelp},
		{name: "enroll: no flags", args: []string{"enroll"}, wantErr: errHelp},
		{name: "grade: bad grade", args: []string{"grade", "-enroll", "1", "-grade", "Z"}, wantErr: errHelp},
		{name: "status: bad status", args: []string{"status", "-enroll", "1", "-status", "Done"}, wantErr: errHelp},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := cli.run(context.Background(), append([]string{"unienroll"}, tt.args...))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func Test_commandLine_login(t *testing.T) {
	cli := setup(t, func(r *gin.Engine) {
		r.POST("/api/auth/login", func(c *gin.Context) {
			var req dto.LoginRequest
			require.NoError(t, c.ShouldBindJSON(&req))
			if req.Password != "secret" {
				c.JSON(http.StatusBadRequest, gin.H{"message": "invalid credentials"})
				return
			}
			c.JSON(http.StatusOK, dto.JwtResponse{
				Token: "tok-cli",
				User:  models.User{ID: 1, Name: "Ada", Email: req.Email, Role: enums.RoleStudent},
			})
		})
	})

	orig := readPasswordFunc
	readPasswordFunc = func(fd int) ([]byte, error) { return []byte("secret"), nil }
	defer func() { readPasswordFunc = orig }()

	err := cli.run(context.Background(), []string{"unienroll", "login", "-email", "ada@uni.edu"})
	require.NoError(t, err)

	assert.True(t, cli.app.Session.IsAuthenticated())
	assert.Equal(t, "tok-cli", cli.app.Session.Token())
}

func Test_commandLine_loginEmptyPassword(t *testing.T) {
	cli := setup(t, func(r *gin.Engine) {})

	orig := readPasswordFunc
	readPasswordFunc = func(fd int) ([]byte, error) { return nil, nil }
	defer func() { readPasswordFunc = orig }()

	err := cli.run(context.Background(), []string{"unienroll", "login", "-email", "ada@uni.edu"})
	assert.ErrorIs(t, err, errHelp)
}

func Test_commandLine_courses(t *testing.T) {
	cli := setup(t, func(r *gin.Engine) {
		r.GET("/api/courses", func(c *gin.Context) {
			c.JSON(http.StatusOK, []models.Course{
				{ID: 1, Name: "Algorithms", LecturerName: "Turing"},
			})
		})
	})

	err := cli.run(context.Background(), []string{"unienroll", "courses"})
	require.NoError(t, err)

	cached, status, _ := cli.app.Courses.Courses().Get()
	assert.Equal(t, store.StatusSucceeded, status)
	require.Len(t, cached, 1)
	assert.Equal(t, "Algorithms", cached[0].Name)
}

func Test_commandLine_mycoursesRequiresLogin(t *testing.T) {
	cli := setup(t, func(r *gin.Engine) {})

	err := cli.run(context.Background(), []string{"unienroll", "mycourses"})
	assert.EqualError(t, err, "not logged in")
}

func Test_commandLine_enroll(t *testing.T) {
	cli := setup(t, func(r *gin.Engine) {
		r.POST("/api/enrollments", func(c *gin.Context) {
			var req dto.EnrollmentRequest
			require.NoError(t, c.ShouldBindJSON(&req))
			c.JSON(http.StatusCreated, models.Enrollment{
				ID: 50, StudentID: req.StudentID, CourseID: req.CourseID,
				CourseName: "Algorithms", Semester: req.Semester,
				Status: enums.StatusInProgress,
			})
		})
	})
	cli.app.Session.Establish(models.User{ID: 1, Role: enums.RoleStudent}, "tok")

	err := cli.run(context.Background(), []string{"unienroll", "enroll", "-course", "2", "-semester", "3"})
	require.NoError(t, err)

	cached, _, _ := cli.app.Enrollments.CourseEnrollments().Get()
	require.Len(t, cached, 1)
	assert.Equal(t, int64(50), cached[0].ID)
}

func Test_commandLine_grade(t *testing.T) {
	cli := setup(t, func(r *gin.Engine) {
		r.PUT("/api/enrollments/grade", func(c *gin.Context) {
			c.Status(http.StatusOK)
		})
	})
	cli.app.Session.Establish(models.User{ID: 2, Role: enums.RoleLecturer}, "tok")
	cli.app.Enrollments.CourseEnrollments().SetSucceeded([]models.Enrollment{{ID: 7}})

	err := cli.run(context.Background(), []string{"unienroll", "grade", "-enroll", "7", "-grade", "A-"})
	require.NoError(t, err)

	cached, _, _ := cli.app.Enrollments.CourseEnrollments().Get()
	require.NotNil(t, cached[0].Grade)
	assert.Equal(t, enums.GradeAMinus, *cached[0].Grade)
}

func Test_commandLine_students(t *testing.T) {
	var gotSearch string
	cli := setup(t, func(r *gin.Engine) {
		r.GET("/api/users/students", func(c *gin.Context) {
			c.JSON(http.StatusOK, []models.User{{ID: 1, Name: "Ada"}})
		})
		r.GET("/api/users/studentsByName", func(c *gin.Context) {
			gotSearch = c.Query("searchWord")
			c.JSON(http.StatusOK, []models.User{{ID: 1, Name: "Ada"}})
		})
	})
	cli.app.Session.Establish(models.User{ID: 3, Role: enums.RoleAdmin}, "tok")

	require.NoError(t, cli.run(context.Background(), []string{"unienroll", "students"}))
	require.NoError(t, cli.run(context.Background(), []string{"unienroll", "students", "-search", "Ada"}))

	assert.Equal(t, "Ada", gotSearch)
	cached, _, _ := cli.app.Users.Collection(enums.RoleStudent).Get()
	require.Len(t, cached, 1)
}
