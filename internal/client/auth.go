package client

import (
	"context"
	"fmt"

	"github.com/oguzk/unienroll/internal/app/models/dto"
)

// Login authenticates against the platform and returns the issued
// token with the user record.
func (c *Client) Login(ctx context.Context, req dto.LoginRequest) (*dto.JwtResponse, error) {
	var resp dto.JwtResponse
	if err := c.post(ctx, "/auth/login", req, &resp); err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}
	return &resp, nil
}
