package store

import (
	"sync"

	"github.com/oguzk/unienroll/internal/app/models"
	"github.com/oguzk/unienroll/internal/app/models/dto/enums"
)

// UserStore caches the role-scoped user collections (students,
// lecturers, admins) plus the currently selected user. One generic
// collection per role replaces the three near-identical slices the
// role-specific screens would otherwise each maintain.
type UserStore struct {
	mu       sync.Mutex
	byRole   map[enums.Role]*Collection[models.User]
	selected *Single[models.User]
	opStatus Status
	opErr    string
}

// NewUserStore creates an empty user store with one collection per
// managed role.
func NewUserStore() *UserStore {
	userID := func(u models.User) int64 { return u.ID }
	return &UserStore{
		byRole: map[enums.Role]*Collection[models.User]{
			enums.RoleStudent:  NewCollection(userID),
			enums.RoleLecturer: NewCollection(userID),
			enums.RoleAdmin:    NewCollection(userID),
		},
		selected: NewSingle[models.User](),
		opStatus: StatusIdle,
	}
}

// Collection returns the cache slot for the given role. Super admins
// share the admins collection, mirroring the API's collection paths.
func (s *UserStore) Collection(role enums.Role) *Collection[models.User] {
	if role == enums.RoleSuperAdmin {
		role = enums.RoleAdmin
	}
	return s.byRole[role]
}

// Selected returns the single-entity slot for the selected user.
func (s *UserStore) Selected() *Single[models.User] {
	return s.selected
}

// SetOperation records the outcome of the latest user mutation.
func (s *UserStore) SetOperation(status Status, errMsg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.opStatus = status
	s.opErr = errMsg
}

// Operation returns the status and error of the latest user mutation.
func (s *UserStore) Operation() (Status, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.opStatus, s.opErr
}

// ApplyUpdate replaces the user in every collection that may hold a
// copy and refreshes the selected slot when it shows the same user.
func (s *UserStore) ApplyUpdate(user models.User) {
	for _, c := range s.byRole {
		c.ReplaceByID(user.ID, user)
	}
	if selected, _, _ := s.selected.Get(); selected != nil && selected.ID == user.ID {
		s.selected.Set(&user)
	}
}

// ApplyDelete removes the user by id from every collection that may
// hold it and clears the selected slot when it shows that user.
func (s *UserStore) ApplyDelete(id int64) {
	for _, c := range s.byRole {
		c.RemoveByID(id)
	}
	if selected, _, _ := s.selected.Get(); selected != nil && selected.ID == id {
		s.selected.Clear()
	}
}

// Reset returns every slot to its initial empty state.
func (s *UserStore) Reset() {
	for _, c := range s.byRole {
		c.Reset()
	}
	s.selected.Clear()
	s.SetOperation(StatusIdle, "")
}
