package services

import (
	"context"

	"github.com/oguzk/unienroll/internal/app/models"
	"github.com/oguzk/unienroll/internal/app/models/dto"
	"github.com/oguzk/unienroll/internal/app/models/dto/enums"
	"github.com/oguzk/unienroll/internal/app/store"
	"github.com/oguzk/unienroll/internal/client"
	"github.com/oguzk/unienroll/internal/session"
)

// UserService coordinates user fetches and mutations against the
// role-scoped collections.
type UserService struct {
	api     *client.Client
	users   *store.UserStore
	session *session.Session
}

// NewUserService creates a new user service instance.
func NewUserService(api *client.Client, users *store.UserStore, sess *session.Session) *UserService {
	return &UserService{
		api:     api,
		users:   users,
		session: sess,
	}
}

// createOp maps a target role onto the create operation guarding it.
func createOp(role enums.Role) Operation {
	switch role {
	case enums.RoleLecturer:
		return OpCreateLecturer
	case enums.RoleAdmin, enums.RoleSuperAdmin:
		return OpCreateAdmin
	default:
		return OpCreateStudent
	}
}

// updateOp maps a target role onto the update operation guarding it.
func updateOp(role enums.Role) Operation {
	if role == enums.RoleLecturer {
		return OpUpdateLecturer
	}
	return OpUpdateStudent
}

// deleteOp maps a target role onto the delete operation guarding it.
func deleteOp(role enums.Role) Operation {
	switch role {
	case enums.RoleLecturer:
		return OpDeleteLecturer
	case enums.RoleAdmin, enums.RoleSuperAdmin:
		return OpDeleteAdmin
	default:
		return OpDeleteStudent
	}
}

// FetchUsers refreshes the collection for one role. Previously cached
// users keep showing while the fetch is in flight.
func (s *UserService) FetchUsers(ctx context.Context, role enums.Role) ([]models.User, error) {
	coll := s.users.Collection(role)
	coll.SetLoading()

	users, err := s.api.GetUsers(ctx, role)
	if err != nil {
		coll.SetFailed(err.Error())
		return nil, err
	}

	coll.SetSucceeded(users)
	return users, nil
}

// SearchUsers replaces the role collection with the users matching the
// search word; an empty result is a valid success.
func (s *UserService) SearchUsers(ctx context.Context, role enums.Role, searchWord string) ([]models.User, error) {
	coll := s.users.Collection(role)
	coll.SetLoading()

	users, err := s.api.SearchUsers(ctx, role, searchWord)
	if err != nil {
		coll.SetFailed(err.Error())
		return nil, err
	}

	coll.SetSucceeded(users)
	return users, nil
}

// FetchUser loads one user into the selected slot.
func (s *UserService) FetchUser(ctx context.Context, role enums.Role, id int64) (*models.User, error) {
	s.users.SetOperation(store.StatusLoading, "")

	user, err := s.api.GetUser(ctx, role, id)
	if err != nil {
		s.users.SetOperation(store.StatusFailed, err.Error())
		return nil, err
	}

	s.users.Selected().Set(user)
	s.users.SetOperation(store.StatusSucceeded, "")
	return user, nil
}

// CreateUser creates a user in the given role collection and appends
// the server's record to the cache. The capability check fails before
// any network call when the session's role may not create this kind
// of user.
func (s *UserService) CreateUser(ctx context.Context, role enums.Role, req dto.UserCreationReq) (*models.User, error) {
	if err := authorize(s.session, createOp(role)); err != nil {
		return nil, err
	}
	if err := checkRequest(req); err != nil {
		return nil, err
	}

	s.users.SetOperation(store.StatusLoading, "")
	user, err := s.api.CreateUser(ctx, role, req)
	if err != nil {
		s.users.SetOperation(store.StatusFailed, err.Error())
		return nil, err
	}

	s.users.Collection(role).Append(*user)
	s.users.SetOperation(store.StatusSucceeded, "")
	return user, nil
}

// UpdateUser edits a user and replaces the cached copy in every
// collection that holds it; collections without the id stay untouched.
func (s *UserService) UpdateUser(ctx context.Context, role enums.Role, id int64, req dto.UserUpdateReq) (*models.User, error) {
	if err := authorize(s.session, updateOp(role)); err != nil {
		return nil, err
	}
	if err := checkRequest(req); err != nil {
		return nil, err
	}

	s.users.SetOperation(store.StatusLoading, "")
	user, err := s.api.UpdateUser(ctx, role, id, req)
	if err != nil {
		s.users.SetOperation(store.StatusFailed, err.Error())
		return nil, err
	}

	s.users.ApplyUpdate(*user)
	s.users.SetOperation(store.StatusSucceeded, "")
	return user, nil
}

// DeleteUser removes a user and prunes the id from every collection
// that held it.
func (s *UserService) DeleteUser(ctx context.Context, role enums.Role, id int64) error {
	if err := authorize(s.session, deleteOp(role)); err != nil {
		return err
	}

	s.users.SetOperation(store.StatusLoading, "")
	if err := s.api.DeleteUser(ctx, role, id); err != nil {
		s.users.SetOperation(store.StatusFailed, err.Error())
		return err
	}

	s.users.ApplyDelete(id)
	s.users.SetOperation(store.StatusSucceeded, "")
	return nil
}
