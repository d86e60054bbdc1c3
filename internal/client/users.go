package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/oguzk/unienroll/internal/app/models"
	"github.com/oguzk/unienroll/internal/app/models/dto"
	"github.com/oguzk/unienroll/internal/app/models/dto/enums"
)

// GetUsers retrieves the full collection for one role (students,
// lecturers or admins).
func (c *Client) GetUsers(ctx context.Context, role enums.Role) ([]models.User, error) {
	var users []models.User
	if err := c.get(ctx, "/users/"+role.CollectionPath(), &users); err != nil {
		return nil, fmt.Errorf("error retrieving %s: %w", role.CollectionPath(), err)
	}
	return users, nil
}

// SearchUsers retrieves the users of one role whose name matches the
// search word.
func (c *Client) SearchUsers(ctx context.Context, role enums.Role, searchWord string) ([]models.User, error) {
	var users []models.User
	path := fmt.Sprintf("/users/%sByName?searchWord=%s", role.CollectionPath(), url.QueryEscape(searchWord))
	if err := c.get(ctx, path, &users); err != nil {
		return nil, fmt.Errorf("error searching %s: %w", role.CollectionPath(), err)
	}
	return users, nil
}

// GetUser retrieves a single user by role and id.
func (c *Client) GetUser(ctx context.Context, role enums.Role, id int64) (*models.User, error) {
	var user models.User
	if err := c.get(ctx, fmt.Sprintf("/users/%s/%d", role.CollectionPath(), id), &user); err != nil {
		return nil, fmt.Errorf("error retrieving user %d: %w", id, err)
	}
	return &user, nil
}

// CreateUser creates a user in the given role collection.
func (c *Client) CreateUser(ctx context.Context, role enums.Role, req dto.UserCreationReq) (*models.User, error) {
	var user models.User
	if err := c.post(ctx, "/users/"+role.CollectionPath(), req, &user); err != nil {
		return nil, fmt.Errorf("error creating %s user: %w", role.CollectionPath(), err)
	}
	return &user, nil
}

// UpdateUser edits a user in place.
func (c *Client) UpdateUser(ctx context.Context, role enums.Role, id int64, req dto.UserUpdateReq) (*models.User, error) {
	var user models.User
	if err := c.put(ctx, fmt.Sprintf("/users/%s/%d", role.CollectionPath(), id), req, &user); err != nil {
		return nil, fmt.Errorf("error updating user %d: %w", id, err)
	}
	return &user, nil
}

// DeleteUser removes a user by role and id.
func (c *Client) DeleteUser(ctx context.Context, role enums.Role, id int64) error {
	if err := c.delete(ctx, fmt.Sprintf("/users/%s/%d", role.CollectionPath(), id)); err != nil {
		return fmt.Errorf("error deleting user %d: %w", id, err)
	}
	return nil
}
