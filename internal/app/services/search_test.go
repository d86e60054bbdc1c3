package services

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oguzk/unienroll/internal/app/models"
	"github.com/oguzk/unienroll/internal/app/models/dto/enums"
	"github.com/oguzk/unienroll/internal/app/store"
)

func TestStudentSearch_CollapsesRapidKeystrokes(t *testing.T) {
	var searches atomic.Int64
	f := setup(t, func(r *gin.Engine) {
		r.GET("/api/users/studentsByName", func(c *gin.Context) {
			searches.Add(1)
			c.JSON(http.StatusOK, []models.User{{ID: 1, Name: c.Query("searchWord")}})
		})
	})
	search := NewStudentSearch(f.client, f.users, 30*time.Millisecond)

	ctx := context.Background()
	search.Query(ctx, "A")
	search.Query(ctx, "Ad")
	search.Query(ctx, "Ada")

	require.Eventually(t, func() bool {
		students, status, _ := f.users.Collection(enums.RoleStudent).Get()
		return status == store.StatusSucceeded && len(students) == 1 && students[0].Name == "Ada"
	}, time.Second, 5*time.Millisecond)

	assert.Equal(t, int64(1), searches.Load(), "keystrokes within the interval collapse into one request")
}

func TestStudentSearch_BlankQueryCancelsPendingTimer(t *testing.T) {
	f := setup(t, func(r *gin.Engine) {
		r.GET("/api/users/studentsByName", func(c *gin.Context) {
			c.JSON(http.StatusOK, []models.User{{ID: 1}})
		})
	})
	search := NewStudentSearch(f.client, f.users, 20*time.Millisecond)

	ctx := context.Background()
	search.Query(ctx, "Ada")
	search.Query(ctx, "")

	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, int64(0), f.requestCount.Load())
	_, status, _ := f.users.Collection(enums.RoleStudent).Get()
	assert.Equal(t, store.StatusIdle, status)
}

func TestStudentSearch_StaleResolutionDiscarded(t *testing.T) {
	release := make(chan struct{})
	f := setup(t, func(r *gin.Engine) {
		r.GET("/api/users/studentsByName", func(c *gin.Context) {
			word := c.Query("searchWord")
			if word == "slow" {
				<-release
			}
			c.JSON(http.StatusOK, []models.User{{ID: 1, Name: word}})
		})
	})
	search := NewStudentSearch(f.client, f.users, time.Millisecond)

	ctx := context.Background()
	search.Query(ctx, "slow")
	// the first request is in flight and blocked on the server

	require.Eventually(t, func() bool {
		return f.requestCount.Load() == 1
	}, time.Second, time.Millisecond)

	search.Query(ctx, "fresh")
	require.Eventually(t, func() bool {
		students, status, _ := f.users.Collection(enums.RoleStudent).Get()
		return status == store.StatusSucceeded && len(students) == 1 && students[0].Name == "fresh"
	}, time.Second, time.Millisecond)

	// the stale response resolves last but must not clobber the cache
	close(release)
	time.Sleep(50 * time.Millisecond)

	students, status, _ := f.users.Collection(enums.RoleStudent).Get()
	assert.Equal(t, store.StatusSucceeded, status)
	require.Len(t, students, 1)
	assert.Equal(t, "fresh", students[0].Name)
}

func TestStudentSearch_CancelStopsPendingTimer(t *testing.T) {
	f := setup(t, func(r *gin.Engine) {
		r.GET("/api/users/studentsByName", func(c *gin.Context) {
			c.JSON(http.StatusOK, []models.User{})
		})
	})
	search := NewStudentSearch(f.client, f.users, 20*time.Millisecond)

	search.Query(context.Background(), "Ada")
	search.Cancel()

	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, int64(0), f.requestCount.Load())
}
