package client

import (
	"context"
	"errors"
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
	"github.com/oguzk/unienroll/internal/pkg/apperrors"
	"github.com/oguzk/unienroll/internal/session"
)

func newTestSession(t *testing.T) *session.Session {
	t.Helper()
	return session.NewSession(session.NewTokenFile(filepath.Join(t.TempDir(), "token")))
}

func newTestClient(t *testing.T, handlers func(*gin.Engine)) (*Client, *session.Session) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handlers(router)
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	sess := newTestSession(t)
	return NewClient(server.URL+"/api", 5*time.Second, sess, zerolog.Nop()), sess
}

func TestClient_AttachesBearerAndRequestID(t *testing.T) {
	var gotAuth, gotRequestID string
	client, sess := newTestClient(t, func(r *gin.Engine) {
		r.GET("/api/courses", func(c *gin.Context) {
			gotAuth = c.GetHeader("Authorization")
			gotRequestID = c.GetHeader("X-Request-ID")
			c.JSON(http.StatusOK, []models.Course{})
		})
	})
	sess.Establish(models.User{ID: 1, Role: enums.RoleStudent}, "tok-123")

	_, err := client.GetCourses(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.NotEmpty(t, gotRequestID)
}

func TestClient_NoBearerWhenUnauthenticated(t *testing.T) {
	var gotAuth string
	client, _ := newTestClient(t, func(r *gin.Engine) {
		r.GET("/api/courses", func(c *gin.Context) {
			gotAuth = c.GetHeader("Authorization")
			c.JSON(http.StatusOK, []models.Course{})
		})
	})

	_, err := client.GetCourses(context.Background())
	require.NoError(t, err)

	assert.Empty(t, gotAuth)
}

func TestClient_UnauthorizedEvictsSession(t *testing.T) {
	client, sess := newTestClient(t, func(r *gin.Engine) {
		r.GET("/api/courses", func(c *gin.Context) {
			c.Status(http.StatusUnauthorized)
		})
	})
	sess.Establish(models.User{ID: 1, Role: enums.RoleStudent}, "tok-stale")

	_, err := client.GetCourses(context.Background())

	assert.ErrorIs(t, err, apperrors.ErrSessionExpired)
	assert.False(t, sess.IsAuthenticated())
	assert.Empty(t, sess.Token())
}

func TestClient_NotFound(t *testing.T) {
	client, _ := newTestClient(t, func(r *gin.Engine) {
		r.GET("/api/courses/:id", func(c *gin.Context) {
			c.Status(http.StatusNotFound)
		})
	})

	_, err := client.GetCourse(context.Background(), 99)

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestClient_ServerErrorCarriesMessage(t *testing.T) {
	client, _ := newTestClient(t, func(r *gin.Engine) {
		r.POST("/api/enrollments", func(c *gin.Context) {
			c.JSON(http.StatusConflict, gin.H{"message": "already enrolled"})
		})
	})

	_, err := client.CreateEnrollment(context.Background(), dto.EnrollmentRequest{
		StudentID: 1, CourseID: 2, Semester: 1,
	})

	var serverErr *apperrors.ServerError
	require.True(t, errors.As(err, &serverErr))
	assert.Equal(t, http.StatusConflict, serverErr.StatusCode)
	assert.Contains(t, serverErr.Message, "already enrolled")
}

func TestClient_TransportFailure(t *testing.T) {
	sess := newTestSession(t)
	client := NewClient("http://127.0.0.1:1", time.Second, sess, zerolog.Nop())

	_, err := client.GetCourses(context.Background())

	assert.ErrorIs(t, err, apperrors.ErrTransport)
}

func TestClient_EnrollmentCountIsBareNumber(t *testing.T) {
	client, _ := newTestClient(t, func(r *gin.Engine) {
		r.GET("/api/enrollments/:courseId/count", func(c *gin.Context) {
			c.String(http.StatusOK, "42")
		})
	})

	count, err := client.GetEnrollmentCount(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, int64(42), count)
}

func TestClient_SearchUsersEscapesQuery(t *testing.T) {
	var gotSearch string
	client, _ := newTestClient(t, func(r *gin.Engine) {
		r.GET("/api/users/studentsByName", func(c *gin.Context) {
			gotSearch = c.Query("searchWord")
			c.JSON(http.StatusOK, []models.User{{ID: 1, Name: "Ada L"}})
		})
	})

	users, err := client.SearchUsers(context.Background(), enums.RoleStudent, "Ada L")
	require.NoError(t, err)

	assert.Equal(t, "Ada L", gotSearch)
	require.Len(t, users, 1)
}

func TestClient_GradeChangeSendsEmptyResponseBody(t *testing.T) {
	var got dto.GradeChangeReq
	client, _ := newTestClient(t, func(r *gin.Engine) {
		r.PUT("/api/enrollments/grade", func(c *gin.Context) {
			require.NoError(t, c.ShouldBindJSON(&got))
			c.Status(http.StatusOK)
		})
	})

	err := client.ChangeEnrollmentGrade(context.Background(), dto.GradeChangeReq{
		EnrollID: 5, Grade: enums.GradeA,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(5), got.EnrollID)
	assert.Equal(t, enums.GradeA, got.Grade)
}

func TestClient_CourseDatesUseWireSpelling(t *testing.T) {
	client, _ := newTestClient(t, func(r *gin.Engine) {
		r.GET("/api/courses/:id", func(c *gin.Context) {
			c.String(http.StatusOK, `{
				"id": 1,
				"name": "Algorithms",
				"courseStartRegistirationDate": "2026-09-01",
				"courseEndRegistirationDate": "2026-09-15"
			}`)
		})
	})

	course, err := client.GetCourse(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, "2026-09-01", course.RegistrationStart.String())
	assert.Equal(t, "2026-09-15", course.RegistrationEnd.String())
}
