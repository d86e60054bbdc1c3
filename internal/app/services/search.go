package services

import (
	"context"
	"sync"
	"time"

	"github.com/oguzk/unienroll/internal/app/models/dto/enums"
	"github.com/oguzk/unienroll/internal/app/store"
	"github.com/oguzk/unienroll/internal/client"
	"github.com/oguzk/unienroll/internal/pkg/logger"
)

// StudentSearch debounces student-name lookups. Keystrokes arriving
// within the debounce interval collapse into one request, and every
// fired request carries a sequence number so a response that resolves
// after a newer query never overwrites the student collection.
type StudentSearch struct {
	api      *client.Client
	users    *store.UserStore
	interval time.Duration

	mu    sync.Mutex
	timer *time.Timer
	seq   uint64
}

// NewStudentSearch creates a debounced search over the student
// collection.
func NewStudentSearch(api *client.Client, users *store.UserStore, interval time.Duration) *StudentSearch {
	return &StudentSearch{
		api:      api,
		users:    users,
		interval: interval,
	}
}

// Query records a keystroke. A blank search word cancels any pending
// timer without firing; anything else restarts the timer, and the
// request fires once the interval elapses with no newer keystroke.
func (s *StudentSearch) Query(ctx context.Context, searchWord string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	if searchWord == "" {
		return
	}

	s.seq++
	seq := s.seq
	s.timer = time.AfterFunc(s.interval, func() {
		s.fire(ctx, seq, searchWord)
	})
}

// Cancel stops any pending timer without firing.
func (s *StudentSearch) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// fire performs the network request and applies the result only when
// no newer query has been issued since this one was scheduled.
func (s *StudentSearch) fire(ctx context.Context, seq uint64, searchWord string) {
	coll := s.users.Collection(enums.RoleStudent)
	coll.SetLoading()

	students, err := s.api.SearchUsers(ctx, enums.RoleStudent, searchWord)

	s.mu.Lock()
	stale := seq != s.seq
	s.mu.Unlock()
	if stale {
		logger.Debug().
			Uint64("seq", seq).
			Str("searchWord", searchWord).
			Msg("Discarding stale search resolution")
		return
	}

	if err != nil {
		coll.SetFailed(err.Error())
		return
	}
	coll.SetSucceeded(students)
}
